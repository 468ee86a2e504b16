package converter

import (
	"strings"

	"github.com/riverfjs/telegramify-html/internal/placeholder"
)

// Only the three characters Telegram's HTML parser treats as markup.
var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
)

// EscapeHTML 转义 &、<、>
func EscapeHTML(text string) string {
	return htmlEscaper.Replace(text)
}

func escapeStage(text string, _ *placeholder.Registry, _ *Env) string {
	return EscapeHTML(text)
}
