package submission

import "strings"

// htmlReplacer rewrites the five characters that could break out of the
// generated markup. A single Replacer pass never rescans its own output, so
// applying it once cannot double-escape.
var htmlReplacer = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#039;",
)

// EscapeHTML sanitizes a raw user-supplied string for interpolation into
// email markup. Every field rendered into a template must pass through this
// exactly once.
func EscapeHTML(raw string) string {
	return htmlReplacer.Replace(raw)
}
