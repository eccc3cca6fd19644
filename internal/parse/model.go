package parse

type Speaker struct {
	Name      string `json:"name" yaml:"name"`
	AccountID string `json:"account_id,omitempty" yaml:"account_id,omitempty"` // numeric id or email
	Title     string `json:"title,omitempty" yaml:"title,omitempty"`           // group title, e.g. 【PL】
}

// Header is what a grammar extracts from a message header line.
type Header struct {
	Speaker Speaker
	Time    string
	Inline  string // content on the header line itself (reparse grammars)
}

type Entry struct {
	Time    string   `json:"time,omitempty" yaml:"time,omitempty"`
	Speaker Speaker  `json:"speaker" yaml:"speaker"`
	Content []string `json:"content" yaml:"content"`
}

type Result struct {
	Grammar string  `json:"grammar" yaml:"grammar"` // "" when nothing was recognized
	Entries []Entry `json:"entries" yaml:"entries"`
}

// Empty reports whether no recognizable log was found.
func (r Result) Empty() bool {
	return len(r.Entries) == 0
}
