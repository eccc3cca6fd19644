package parse

import (
	"regexp"
	"strings"
)

var blankLine = regexp.MustCompile(`^ *$`)

// chatNoise matches system notices copied along with chat window messages.
var chatNoise = []*regexp.Regexp{
	blankLine,
	regexp.MustCompile(`^.*撤回了一条消息`),
	regexp.MustCompile(`^.* recalled a message( Re-edit)?$`),
	regexp.MustCompile(`^.*撤回了成员.*的一条消息$`),
	regexp.MustCompile(`^.*撤回了一条成员消息$`),
	regexp.MustCompile(`^你和.*有\d+个共同好友，点击添加好友。$`),
	regexp.MustCompile(`^.*加入本群。$`),
	regexp.MustCompile(`^.*邀请.*加入了本群。$`),
}

// managerNoise notices carry their own leading time; date lines separate days.
var managerNoise = []*regexp.Regexp{
	blankLine,
	regexp.MustCompile(`^ \d{4}-\d{2}-\d{2}$`),
	regexp.MustCompile(`^` + reTime + `.*撤回了一条消息`),
	regexp.MustCompile(`^` + reTime + `.* recalled a message( Re-edit)?`),
	regexp.MustCompile(`^` + reTime + `.*撤回了成员.*的一条消息$`),
	regexp.MustCompile(`^` + reTime + `.*撤回了一条成员消息$`),
	regexp.MustCompile(`^` + reTime + `.*加入本群。$`),
}

var mobileNoise = []*regexp.Regexp{
	blankLine,
	regexp.MustCompile(`^— —  \d{4}-\d{1,2}-\d{1,2}  — —$`),
}

func chain(convs ...converter) converter {
	return func(e Entry) (Entry, bool) {
		for _, conv := range convs {
			var ok bool
			if e, ok = conv(e); !ok {
				return Entry{}, false
			}
		}
		return e, true
	}
}

// stripTrailing removes the longest run of trailing lines that each match
// one of the patterns. Scanning stops at the first line that matches none.
func stripTrailing(patterns []*regexp.Regexp) converter {
	return func(e Entry) (Entry, bool) {
		end := len(e.Content)
		for end > 0 && matchesAny(patterns, e.Content[end-1]) {
			end--
		}
		e.Content = e.Content[:end]
		return e, true
	}
}

func matchesAny(patterns []*regexp.Regexp, line string) bool {
	for _, re := range patterns {
		if re.MatchString(line) {
			return true
		}
	}
	return false
}

// trimBlank drops leading and trailing blank lines; an entry left empty is dropped.
func trimBlank(e Entry) (Entry, bool) {
	lo, hi := 0, len(e.Content)
	for lo < hi && strings.TrimSpace(e.Content[lo]) == "" {
		lo++
	}
	for hi > lo && strings.TrimSpace(e.Content[hi-1]) == "" {
		hi--
	}
	if lo == hi {
		return Entry{}, false
	}
	e.Content = e.Content[lo:hi]
	return e, true
}
