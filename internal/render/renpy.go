package render

import (
	"fmt"
	"strings"

	"github.com/Zuo-Peng/logdye/internal/ident"
	"github.com/Zuo-Peng/logdye/internal/palette"
)

var renpyEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"[", "[[",
	"{", "{{",
	"\n", `\n`,
)

// RenpyString escapes s for a double-quoted Ren'Py string. Brackets and
// braces are doubled so they are not read as interpolation or text tags.
func RenpyString(s string) string {
	return `"` + renpyEscaper.Replace(s) + `"`
}

// Character binds one derived identifier to a speaker.
type Character struct {
	Ident string
	Name  string
	Color string // #rrggbb
}

// Characters derives one identifier per distinct identity, in order of first
// appearance.
func Characters(msgs []Message) (map[string]Character, []string, error) {
	var (
		order []string
		names []string
		seen  = make(map[string]bool)
		color = make(map[string]string)
	)
	for _, m := range msgs {
		if seen[m.IdentityID] {
			continue
		}
		seen[m.IdentityID] = true
		order = append(order, m.IdentityID)
		names = append(names, m.Name)
		color[m.IdentityID] = m.Color
	}

	idents, err := ident.Derive(names)
	if err != nil {
		return nil, nil, fmt.Errorf("derive identifiers: %w", err)
	}

	chars := make(map[string]Character, len(order))
	for i, id := range order {
		chars[id] = Character{Ident: idents[i], Name: names[i], Color: palette.Hex(color[id])}
	}
	return chars, order, nil
}

func writeRenpy(b *strings.Builder, msgs []Message) error {
	chars, order, err := Characters(msgs)
	if err != nil {
		return err
	}
	for _, id := range order {
		c := chars[id]
		fmt.Fprintf(b, "define %s = Character(%s, color=%s)\n", c.Ident, RenpyString(c.Name), RenpyString(c.Color))
	}
	b.WriteString("\nlabel start:\n")
	for _, m := range msgs {
		fmt.Fprintf(b, "    %s %s\n", chars[m.IdentityID].Ident, RenpyString(strings.Join(m.Content, "\n")))
	}
	b.WriteString("    return\n")
	return nil
}
