package parse

import (
	"regexp"
	"strings"
)

const (
	GrammarToolExportISO  = "tool-export-iso"
	GrammarManagerExport  = "manager-export"
	GrammarMobileExport   = "mobile-export"
	GrammarLogFileExport  = "log-file-export"
	GrammarChatWindow     = "chat-window-export"
	GrammarReparseAngular = "reparse-angular"
	GrammarReparseBold    = "reparse-bold"
)

// shared header fragments
const (
	reAccount = `\(\d+\)|<.+@.+\..+>`
	reTitle   = `(?:【(.{1,6})】)?`
	reTime    = `(?:(?:上午|下午) )?\d{1,2}:\d{2}:\d{2}(?: (?:AM|PM))?`
)

var (
	// 名字(123456) 2021-11-08 04:07:37
	toolExportHeader = regexp.MustCompile(`^(.*?)(` + reAccount + `) (\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2})$`)
	// 【1】织练取(958884) 3:13:28 AM
	managerHeader = regexp.MustCompile(`^` + reTitle + `(.*?)(` + reAccount + `) (` + reTime + `)$`)
	// a dark ideation  23:50:40
	mobileHeader = regexp.MustCompile(`^(.*?) {2}(\d{1,2}:\d{2}:\d{2}) *$`)
	// 2019-09-23 8:43:38 PM 骰娘-Roll100(872001750)
	logFileHeader = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2} ` + reTime + `) (.*?)(` + reAccount + `)?$`)
	// 【冒泡】无情的围观熊 2/14/2020 9:16:13 PM
	chatWindowHeader = regexp.MustCompile(`^` + reTitle + `(.*?) ((?:\d{1,4}/\d{1,2}/\d{1,4} (?:星期. )?)?` + reTime + `)$`)
	// <小明> 内容
	angularHeader = regexp.MustCompile(`^<(.+)> (.+)$`)
	// 【小明】内容
	boldHeader = regexp.MustCompile(`^【(.+)】(.+)$`)
)

// systemAccounts post group notices in log file exports.
var systemAccounts = map[string]bool{
	"10000":   true,
	"1000000": true,
}

type converter func(Entry) (Entry, bool)

// Grammar describes one chat export format: how its header lines look and
// how noise is stripped from the entries it produced.
type Grammar struct {
	Name    string
	header  func(line string) (Header, bool)
	convert converter
}

func (g Grammar) Recognize(line string) (Header, bool) {
	return g.header(line)
}

// Convert cleans an entry. false means the entry must be dropped.
func (g Grammar) Convert(e Entry) (Entry, bool) {
	return g.convert(e)
}

// grammars is ordered from the most specific header shape to the most permissive.
var grammars = []Grammar{
	{
		Name: GrammarToolExportISO,
		header: func(line string) (Header, bool) {
			m := toolExportHeader.FindStringSubmatch(line)
			if m == nil {
				return Header{}, false
			}
			return Header{
				Speaker: Speaker{Name: m[1], AccountID: trimAccount(m[2])},
				Time:    m[3],
			}, true
		},
		convert: trimBlank,
	},
	{
		Name: GrammarManagerExport,
		header: func(line string) (Header, bool) {
			m := managerHeader.FindStringSubmatch(line)
			if m == nil {
				return Header{}, false
			}
			return Header{
				Speaker: Speaker{Name: m[2], Title: m[1], AccountID: trimAccount(m[3])},
				Time:    m[4],
			}, true
		},
		convert: chain(stripTrailing(managerNoise), trimBlank),
	},
	{
		Name: GrammarMobileExport,
		header: func(line string) (Header, bool) {
			m := mobileHeader.FindStringSubmatch(line)
			if m == nil {
				return Header{}, false
			}
			return Header{Speaker: Speaker{Name: m[1]}, Time: m[2]}, true
		},
		convert: chain(stripTrailing(mobileNoise), trimBlank),
	},
	{
		Name: GrammarLogFileExport,
		header: func(line string) (Header, bool) {
			m := logFileHeader.FindStringSubmatch(line)
			if m == nil {
				return Header{}, false
			}
			return Header{
				Speaker: Speaker{Name: m[2], AccountID: trimAccount(m[3])},
				Time:    m[1],
			}, true
		},
		convert: func(e Entry) (Entry, bool) {
			if systemAccounts[e.Speaker.AccountID] {
				return Entry{}, false
			}
			return trimBlank(e)
		},
	},
	{
		Name: GrammarChatWindow,
		header: func(line string) (Header, bool) {
			m := chatWindowHeader.FindStringSubmatch(line)
			if m == nil {
				return Header{}, false
			}
			return Header{Speaker: Speaker{Name: m[2], Title: m[1]}, Time: m[3]}, true
		},
		convert: chain(stripTrailing(chatNoise), trimBlank),
	},
	{
		Name:    GrammarReparseAngular,
		header:  inlineHeader(angularHeader),
		convert: trimBlank,
	},
	{
		Name:    GrammarReparseBold,
		header:  inlineHeader(boldHeader),
		convert: trimBlank,
	},
}

// Grammars returns the grammar table in priority order.
func Grammars() []Grammar {
	out := make([]Grammar, len(grammars))
	copy(out, grammars)
	return out
}

func lookupGrammar(name string) (int, bool) {
	for i, g := range grammars {
		if g.Name == name {
			return i, true
		}
	}
	return -1, false
}

func inlineHeader(re *regexp.Regexp) func(string) (Header, bool) {
	return func(line string) (Header, bool) {
		m := re.FindStringSubmatch(line)
		if m == nil {
			return Header{}, false
		}
		return Header{Speaker: Speaker{Name: m[1]}, Inline: m[2]}, true
	}
}

// trimAccount unwraps "(123)" and "<a@b.c>" to their bare value.
func trimAccount(s string) string {
	return strings.Trim(s, "()<>")
}
