package display

import "strings"

const (
	ansiReset     = "\x1b[0m"
	ansiBold      = "\x1b[1m"
	ansiUnderline = "\x1b[4m"
)

// ansiHelp wraps text in the given ANSI codes, closing with a reset.
func ansiHelp(text string, codes ...string) string {
	if len(codes) == 0 {
		return text
	}
	return strings.Join(codes, "") + text + ansiReset
}
