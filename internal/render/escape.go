package render

import "strings"

var jsxReplacer = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"`", "\\`",
	`$`, `\$`,
)

// EscapeJSX makes arbitrary text safe inside a double-quoted JSX attribute or
// template-literal context: backslashes, double quotes, backticks, and dollar
// signs are escaped.
func EscapeJSX(s string) string {
	if s == "" {
		return ""
	}
	return jsxReplacer.Replace(s)
}
