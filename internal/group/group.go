package group

import "github.com/Zuo-Peng/logdye/internal/parse"

// Identity is one speaker as far as the log can tell. Entries with the same
// account id, or with the same name when no account id is known, share it.
type Identity struct {
	ID    string   `json:"id" yaml:"id"`
	Names []string `json:"names" yaml:"names"` // every name seen under ID, first use first
}

// LastName is the most recent name seen for the identity.
func (i Identity) LastName() string {
	if len(i.Names) == 0 {
		return ""
	}
	return i.Names[len(i.Names)-1]
}

type Line struct {
	IdentityID string   `json:"identity" yaml:"identity"`
	Time       string   `json:"time,omitempty" yaml:"time,omitempty"`
	Title      string   `json:"title,omitempty" yaml:"title,omitempty"`
	Content    []string `json:"content" yaml:"content"`
}

type Result struct {
	Identities []Identity `json:"identities" yaml:"identities"`
	Lines      []Line     `json:"lines" yaml:"lines"`
}

// IdentityID returns "acct:<id>" when the speaker has an account id and
// "name:<name>" otherwise.
func IdentityID(s parse.Speaker) string {
	if s.AccountID != "" {
		return "acct:" + s.AccountID
	}
	return "name:" + s.Name
}

// Group merges parsed entries into identities, keeping first-appearance order.
func Group(r parse.Result) Result {
	out := Result{
		Identities: []Identity{},
		Lines:      make([]Line, 0, len(r.Entries)),
	}
	index := make(map[string]int)
	for _, e := range r.Entries {
		id := IdentityID(e.Speaker)
		i, ok := index[id]
		if !ok {
			i = len(out.Identities)
			index[id] = i
			out.Identities = append(out.Identities, Identity{ID: id})
		}
		if !contains(out.Identities[i].Names, e.Speaker.Name) {
			out.Identities[i].Names = append(out.Identities[i].Names, e.Speaker.Name)
		}
		out.Lines = append(out.Lines, Line{
			IdentityID: id,
			Time:       e.Time,
			Title:      e.Speaker.Title,
			Content:    e.Content,
		})
	}
	return out
}

func contains(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}
