package converter

import (
	"regexp"

	"github.com/riverfjs/telegramify-html/internal/placeholder"
)

type emphasisRule struct {
	re   *regexp.Regexp
	repl string
}

// Double markers must run before the single marker of the same character,
// otherwise **x** is eaten by the italic rule.
//
// Rules apply one after another with no nesting check, so overlapping
// markers ("**a _b** c_") produce crossed tags that Telegram rejects.
// Callers fall back to PlainText when sending fails.
var emphasisRules = []emphasisRule{
	{regexp.MustCompile(`\*\*(.+?)\*\*`), "<b>${1}</b>"},
	{regexp.MustCompile(`\*(.+?)\*`), "<i>${1}</i>"},
	{regexp.MustCompile(`__(.+?)__`), "<b>${1}</b>"},
	{regexp.MustCompile(`_(.+?)_`), "<i>${1}</i>"},
	{regexp.MustCompile(`~~(.+?)~~`), "<s>${1}</s>"},
}

// RenderEmphasis applies bold, italic and strikethrough to escaped text.
func RenderEmphasis(text string) string {
	for _, rule := range emphasisRules {
		text = rule.re.ReplaceAllString(text, rule.repl)
	}
	return text
}

func emphasisStage(text string, _ *placeholder.Registry, _ *Env) string {
	return RenderEmphasis(text)
}
