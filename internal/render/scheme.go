package render

import "fmt"

const (
	StandardText = "standard-text"
	BoldText     = "bold-text"
	StandardBBS  = "standard-bbs"
	BoldBBS      = "bold-bbs"
	StandardHTML = "standard-html"
	BoldHTML     = "bold-html"
	TabText      = "tab-text"
	Renpy        = "renpy"
)

// Scheme is one output format.
type Scheme struct {
	ID          string
	Description string
	// NamedColorsOnly is set for targets that only understand CSS color
	// names, which rules out the hex palette.
	NamedColorsOnly bool
}

var schemes = []Scheme{
	{ID: StandardText, Description: "<name> text, the most common form; can be parsed again"},
	{ID: BoldText, Description: "【name】text; can be parsed again"},
	{ID: StandardBBS, Description: "BBS code with <name> prefix", NamedColorsOnly: true},
	{ID: BoldBBS, Description: "BBS code with 【name】 prefix", NamedColorsOnly: true},
	{ID: StandardHTML, Description: "HTML paragraphs with <name> prefix"},
	{ID: BoldHTML, Description: "HTML paragraphs with 【name】 prefix"},
	{ID: TabText, Description: "tab separated name and text, keeps columns aligned in word processors"},
	{ID: Renpy, Description: "Ren'Py script with one Character per speaker"},
}

func Schemes() []Scheme {
	out := make([]Scheme, len(schemes))
	copy(out, schemes)
	return out
}

func SchemeIDs() []string {
	ids := make([]string, len(schemes))
	for i, s := range schemes {
		ids[i] = s.ID
	}
	return ids
}

func LookupScheme(id string) (Scheme, error) {
	for _, s := range schemes {
		if s.ID == id {
			return s, nil
		}
	}
	return Scheme{}, fmt.Errorf("unknown scheme: %s", id)
}
