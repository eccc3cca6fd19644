package render

import (
	"html"
	"strings"

	"github.com/Zuo-Peng/logdye/internal/group"
	"github.com/Zuo-Peng/logdye/internal/palette"
	"github.com/Zuo-Peng/logdye/internal/store"
)

// unknownName is shown for identities without a setting.
const unknownName = "错误"

// Message is a grouped line resolved against the display settings.
type Message struct {
	IdentityID string
	Name       string
	Color      string
	Time       string
	Content    []string
}

// Messages drops lines of disabled identities and attaches display name and
// color to the rest. Identities without a setting are kept.
func Messages(lines []group.Line, settings map[string]store.Setting) []Message {
	out := make([]Message, 0, len(lines))
	for _, l := range lines {
		m := Message{
			IdentityID: l.IdentityID,
			Name:       unknownName,
			Color:      palette.DefaultColor,
			Time:       l.Time,
			Content:    l.Content,
		}
		if s, ok := settings[l.IdentityID]; ok {
			if !s.Enabled {
				continue
			}
			m.Name = s.DisplayName
			m.Color = s.Color
		}
		out = append(out, m)
	}
	return out
}

// Render writes the messages in the given scheme.
func Render(scheme string, lines []group.Line, settings map[string]store.Setting) (string, error) {
	if _, err := LookupScheme(scheme); err != nil {
		return "", err
	}
	msgs := Messages(lines, settings)

	var b strings.Builder
	switch scheme {
	case StandardText:
		writeText(&b, msgs, "<", "> ")
	case BoldText:
		writeText(&b, msgs, "【", "】")
	case StandardBBS:
		writeBBS(&b, msgs, "<", "> ")
	case BoldBBS:
		writeBBS(&b, msgs, "【", "】")
	case StandardHTML:
		writeHTML(&b, msgs, "<", "> ")
	case BoldHTML:
		writeHTML(&b, msgs, "【", "】")
	case TabText:
		writeTab(&b, msgs)
	case Renpy:
		if err := writeRenpy(&b, msgs); err != nil {
			return "", err
		}
	}
	return b.String(), nil
}

func writeText(b *strings.Builder, msgs []Message, left, right string) {
	for _, m := range msgs {
		b.WriteString(left + m.Name + right)
		b.WriteString(strings.Join(m.Content, "\n"))
		b.WriteString("\n")
	}
}

func writeBBS(b *strings.Builder, msgs []Message, left, right string) {
	for _, m := range msgs {
		b.WriteString("[color=" + m.Color + "]")
		b.WriteString(left + m.Name + right)
		b.WriteString(strings.Join(m.Content, "\n"))
		b.WriteString("[/color]\n")
	}
}

func writeHTML(b *strings.Builder, msgs []Message, left, right string) {
	for _, m := range msgs {
		b.WriteString(`<p style="color: ` + html.EscapeString(m.Color) + `">`)
		b.WriteString(html.EscapeString(left + m.Name + right))
		for i, c := range m.Content {
			if i > 0 {
				b.WriteString("<br/>")
			}
			b.WriteString(html.EscapeString(c))
		}
		b.WriteString("</p>\n")
	}
}

func writeTab(b *strings.Builder, msgs []Message) {
	for _, m := range msgs {
		b.WriteString("\t" + m.Name + "\t")
		b.WriteString(strings.Join(m.Content, "\v"))
		b.WriteString("\n")
	}
}
