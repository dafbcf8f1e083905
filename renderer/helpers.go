package renderer

import "strings"

// mdEscaper escapes characters that would break a markdown table cell or
// turn text into emphasis.
var mdEscaper = strings.NewReplacer(
	`\`, `\\`,
	`*`, `\*`,
	`_`, `\_`,
	"`", "\\`",
)

func escape(s string) string { return mdEscaper.Replace(s) }
