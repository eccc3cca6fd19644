package ident

import (
	"fmt"
	"strconv"
)

// PlaceholderPrefix starts every generated identifier. It cannot collide with
// a derived one because underscore is never a start rune.
const PlaceholderPrefix = "_C"

// keywords reserved by the Ren'Py script language (Python keywords plus "_").
var keywords = map[string]bool{
	"False": true, "None": true, "True": true,
	"and": true, "as": true, "assert": true, "async": true, "await": true,
	"break": true, "case": true, "class": true, "continue": true,
	"def": true, "del": true, "elif": true, "else": true, "except": true,
	"finally": true, "for": true, "from": true, "global": true,
	"if": true, "import": true, "in": true, "is": true,
	"lambda": true, "match": true, "nonlocal": true, "not": true,
	"or": true, "pass": true, "raise": true, "return": true,
	"try": true, "while": true, "with": true, "yield": true,
	"_": true,
}

func IsKeyword(s string) bool {
	return keywords[s]
}

// InvariantError means the derivation could not give every name exactly one
// identifier. It signals a defect, not bad input, and must abort the export.
type InvariantError struct {
	Names    []string
	Keys     []string
	Resolved int
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("ident: resolved %d identifiers for %d names (names %q, keys %q)",
		e.Resolved, len(e.Names), e.Names, e.Keys)
}

// pool is an insertion-ordered map from key to sanitized runes.
type pool struct {
	order []string
	chars map[string][]rune
}

func newPool() *pool {
	return &pool{chars: make(map[string][]rune)}
}

// put keeps the original position of a key that is already present.
func (p *pool) put(key string, chars []rune) {
	if _, ok := p.chars[key]; !ok {
		p.order = append(p.order, key)
	}
	p.chars[key] = chars
}

func (p *pool) remove(key string) {
	if _, ok := p.chars[key]; !ok {
		return
	}
	delete(p.chars, key)
	for i, k := range p.order {
		if k == key {
			p.order = append(p.order[:i], p.order[i+1:]...)
			break
		}
	}
}

func (p *pool) len() int {
	return len(p.order)
}

func (p *pool) longest() int {
	n := 0
	for _, chars := range p.chars {
		if len(chars) > n {
			n = len(chars)
		}
	}
	return n
}

// deriver holds the per-call counters.
type deriver struct {
	placeholders int
	finished     map[string]string
}

func (d *deriver) placeholder() string {
	d.placeholders++
	return PlaceholderPrefix + strconv.Itoa(d.placeholders)
}

// dedupKeys renames later exact duplicates to name+counter, with one counter
// shared by all duplicates. A synthesized key may still equal another name.
func dedupKeys(names []string) []string {
	seen := make(map[string]bool, len(names))
	counter := 0
	keys := make([]string, 0, len(names))
	for _, name := range names {
		if seen[name] {
			counter++
			keys = append(keys, name+strconv.Itoa(counter))
			continue
		}
		seen[name] = true
		keys = append(keys, name)
	}
	return keys
}

// Derive maps each display name to the shortest unique prefix of its
// sanitized form that is not a reserved keyword. Names that cannot be told
// apart get a placeholder. The output has one identifier per input position.
func Derive(names []string) ([]string, error) {
	keys := dedupKeys(names)
	d := &deriver{finished: make(map[string]string, len(keys))}

	remaining := newPool()
	// full sanitized string -> key that produced it
	whole := make(map[string]string)
	for _, key := range keys {
		if key == "" {
			d.finished[key] = d.placeholder()
			continue
		}
		chars := Sanitize(key)
		if len(chars) == 0 {
			d.finished[key] = d.placeholder()
			continue
		}
		s := string(chars)
		if existing, ok := whole[s]; ok {
			// identical sanitized forms never separate by truncation
			d.finished[key] = d.placeholder()
			d.finished[existing] = d.placeholder()
			remaining.remove(existing)
			continue
		}
		remaining.put(key, chars)
		whole[s] = key
	}

	longest := remaining.longest()
	for n := 1; n <= longest && remaining.len() > 0; n++ {
		next := newPool()
		// attempt -> key that claimed it this round
		claims := make(map[string]string)
		for _, key := range remaining.order {
			chars := remaining.chars[key]
			attempt := string(chars[:min(n, len(chars))])
			switch owner, claimed := claims[attempt]; {
			case IsKeyword(attempt):
				if len(chars) <= n {
					d.finished[key] = d.placeholder()
				} else {
					next.put(key, chars)
				}
			case !claimed:
				claims[attempt] = key
				d.finished[key] = attempt
			default:
				next.put(key, chars)
				next.put(owner, remaining.chars[owner])
				delete(d.finished, owner)
			}
		}
		remaining = next
	}

	if remaining.len() > 0 || len(d.finished) != len(names) {
		return nil, &InvariantError{Names: names, Keys: keys, Resolved: len(d.finished)}
	}

	out := make([]string, len(keys))
	for i, key := range keys {
		out[i] = d.finished[key]
	}
	return out, nil
}
