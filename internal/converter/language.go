package converter

import (
	"strings"

	"github.com/alecthomas/chroma/v2/lexers"
)

// NormalizeLanguage maps a fence tag to the canonical lexer name chroma
// knows it by ("py" -> "python", "golang" -> "go"). Unknown tags are
// returned as given.
func NormalizeLanguage(lang string) string {
	if lang == "" {
		return lang
	}
	lexer := lexers.Get(lang)
	if lexer == nil {
		return lang
	}
	name := strings.ToLower(lexer.Config().Name)
	name = strings.ReplaceAll(name, " ", "")
	if name == "" {
		return lang
	}
	return name
}
