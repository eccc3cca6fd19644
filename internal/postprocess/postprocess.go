package postprocess

import (
	"strings"

	"github.com/Zuo-Peng/logdye/internal/group"
)

// Options are the general content filters applied before rendering.
type Options struct {
	RemoveParenthesis bool // lines starting with ( or （, usually out-of-character talk
	RemoveDot         bool // lines starting with . or 。, usually dice bot commands
	RemoveLenticular  bool // lines starting with 【
	RegularizeQuotes  bool
}

// Apply filters content lines and drops messages left without content.
// The input is not modified.
func Apply(lines []group.Line, opts Options) []group.Line {
	var prefixes []string
	if opts.RemoveParenthesis {
		prefixes = append(prefixes, "(", "（")
	}
	if opts.RemoveDot {
		prefixes = append(prefixes, ".", "。")
	}
	if opts.RemoveLenticular {
		prefixes = append(prefixes, "【")
	}

	out := make([]group.Line, 0, len(lines))
	for _, l := range lines {
		content := make([]string, 0, len(l.Content))
		for _, c := range l.Content {
			if hasAnyPrefix(c, prefixes) {
				continue
			}
			content = append(content, c)
		}
		if opts.RegularizeQuotes {
			content = RegularizeQuotes(content)
		}
		if len(content) == 0 {
			continue
		}
		l.Content = content
		out = append(out, l)
	}
	return out
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}

// RegularizeQuotes rewrites every ", “ and ” as alternating “ and ”.
// The alternation continues from one line to the next.
func RegularizeQuotes(lines []string) []string {
	open := true
	out := make([]string, len(lines))
	for i, line := range lines {
		var b strings.Builder
		b.Grow(len(line))
		for _, r := range line {
			switch r {
			case '"', '“', '”':
				if open {
					b.WriteRune('“')
				} else {
					b.WriteRune('”')
				}
				open = !open
			default:
				b.WriteRune(r)
			}
		}
		out[i] = b.String()
	}
	return out
}
