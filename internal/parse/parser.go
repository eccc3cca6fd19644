package parse

import (
	"fmt"
	"strings"
)

type state int

const (
	seeking state = iota // no grammar recognized a header yet
	locked               // one grammar owns the rest of the document
)

type parser struct {
	state   state
	grammar int
	entries []Entry
}

// Parse detects the export format from the first recognizable header and
// splits the transcript into speaker-attributed entries. Once a grammar is
// locked no other grammar is tried. An empty result means no known format
// was found.
func Parse(text string) Result {
	p := &parser{}
	p.scan(text)
	return p.result()
}

// ParseAs parses text with the named grammar only.
func ParseAs(text, grammar string) (Result, error) {
	idx, ok := lookupGrammar(grammar)
	if !ok {
		return Result{}, fmt.Errorf("unknown grammar: %s", grammar)
	}
	p := &parser{state: locked, grammar: idx}
	p.scan(text)
	return p.result(), nil
}

func (p *parser) scan(text string) {
	for _, line := range strings.Split(text, "\n") {
		p.feed(strings.TrimSuffix(line, "\r"))
	}
}

func (p *parser) feed(line string) {
	switch p.state {
	case seeking:
		// lines before the first header are discarded
		for i, g := range grammars {
			if h, ok := g.Recognize(line); ok {
				p.state = locked
				p.grammar = i
				p.open(h)
				return
			}
		}
	case locked:
		if h, ok := grammars[p.grammar].Recognize(line); ok {
			p.open(h)
			return
		}
		if n := len(p.entries); n > 0 {
			p.entries[n-1].Content = append(p.entries[n-1].Content, line)
		}
	}
}

func (p *parser) open(h Header) {
	e := Entry{Time: h.Time, Speaker: h.Speaker, Content: []string{}}
	if h.Inline != "" {
		e.Content = append(e.Content, h.Inline)
	}
	p.entries = append(p.entries, e)
}

func (p *parser) result() Result {
	if p.state == seeking {
		return Result{Entries: []Entry{}}
	}
	g := grammars[p.grammar]
	entries := make([]Entry, 0, len(p.entries))
	for _, e := range p.entries {
		if converted, ok := g.Convert(e); ok {
			entries = append(entries, converted)
		}
	}
	return Result{Grammar: g.Name, Entries: entries}
}
