package converter

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/riverfjs/telegramify-html/internal/placeholder"
	"github.com/riverfjs/telegramify-html/internal/table"
	"github.com/riverfjs/telegramify-html/internal/types"
)

// Placeholder control bytes are excluded from every class that could
// otherwise run into a neighbouring token.
var (
	// ```lang\ncode```
	codeBlockRe = regexp.MustCompile("(?s)```(\\w*)\\n?(.*?)```")

	// 连续的以 | 开头并以 | 结尾的行
	tableRe = regexp.MustCompile(`(?m)(?:^\|.+\|$\n?)+`)

	inlineCodeRe = regexp.MustCompile("`([^`\\x00\\x01]+)`")

	// @ 前必须是行首或非单词字符，URL 路径、查询参数和邮箱中的 @ 不算提及
	mentionRe = regexp.MustCompile(`(^|[^\w/=@])(@\w+)`)

	// URL 或邮箱地址
	urlRe = regexp.MustCompile(`https?://[^\s<>\x00\x01]+|[\w.+-]+@[\w-]+(?:\.[\w-]+)+`)
)

type patterns struct {
	idToken *regexp.Regexp
}

var patternCache sync.Map // int -> *patterns

// patternsFor compiles the ID token pattern for a minimum length once.
func patternsFor(minLen int) *patterns {
	if minLen <= 0 {
		minLen = types.DefaultIDTokenMinLength
	}
	if p, ok := patternCache.Load(minLen); ok {
		return p.(*patterns)
	}
	p := &patterns{
		idToken: regexp.MustCompile(fmt.Sprintf(`\b[A-Za-z0-9_-]{%d,}\b`, minLen)),
	}
	actual, _ := patternCache.LoadOrStore(minLen, p)
	return actual.(*patterns)
}

func (e *Env) idTokenPattern() *regexp.Regexp {
	if e.patterns == nil {
		e.patterns = patternsFor(e.config().IDTokenMinLength)
	}
	return e.patterns.idToken
}

func (e *Env) config() *RenderConfig {
	if e.Config == nil {
		e.Config = types.DefaultRenderConfig()
	}
	return e.Config
}

// Protect runs the extraction stages alone, in pipeline order. The result
// still contains tokens and is not HTML-escaped.
func Protect(text string, reg *placeholder.Registry, env *Env) string {
	for _, stage := range Stages() {
		switch stage.Name {
		case "escape", "emphasis", "restore":
			continue
		}
		text = stage.Apply(text, reg, env)
	}
	return text
}

// protectCodeBlocks 提取围栏代码块，渲染为 <pre><code>
func protectCodeBlocks(text string, reg *placeholder.Registry, env *Env) string {
	return codeBlockRe.ReplaceAllStringFunc(text, func(match string) string {
		m := codeBlockRe.FindStringSubmatch(match)
		lang, code := m[1], m[2]
		if env.config().NormalizeLanguage {
			lang = NormalizeLanguage(lang)
		}
		return reg.Add(placeholder.CodeBlock, match, renderCodeBlock(lang, code)).Encode()
	})
}

func renderCodeBlock(lang, code string) string {
	var sb strings.Builder
	sb.WriteString("<pre><code")
	if lang != "" {
		sb.WriteString(` class="language-`)
		sb.WriteString(lang)
		sb.WriteString(`"`)
	}
	sb.WriteString(">")
	sb.WriteString(EscapeHTML(strings.TrimSpace(code)))
	sb.WriteString("</code></pre>")
	return sb.String()
}

// convertTables 将表格就地转换为列表，不使用占位符
func convertTables(text string, _ *placeholder.Registry, env *Env) string {
	bullet := env.config().TableBullet
	return tableRe.ReplaceAllStringFunc(text, func(block string) string {
		converted := table.ConvertWithBullet(block, bullet)
		if converted == block || converted == "" {
			return converted
		}
		if strings.HasSuffix(block, "\n") {
			converted += "\n"
		}
		return converted
	})
}

func protectInlineCode(text string, reg *placeholder.Registry, _ *Env) string {
	return inlineCodeRe.ReplaceAllStringFunc(text, func(match string) string {
		code := match[1 : len(match)-1]
		return reg.Add(placeholder.InlineCode, match, "<code>"+EscapeHTML(code)+"</code>").Encode()
	})
}

// protectMentions keeps @handles verbatim: no escaping, no emphasis.
// The leading boundary character stays outside the token.
func protectMentions(text string, reg *placeholder.Registry, _ *Env) string {
	return mentionRe.ReplaceAllStringFunc(text, func(match string) string {
		at := strings.IndexByte(match, '@')
		handle := match[at:]
		return match[:at] + reg.Add(placeholder.Mention, handle, handle).Encode()
	})
}

// protectURLs keeps underscores and asterisks in paths and email addresses
// from turning into emphasis.
func protectURLs(text string, reg *placeholder.Registry, _ *Env) string {
	return protectVerbatim(text, reg, urlRe, placeholder.URL)
}

// protectIDTokens 保护较长的带下划线标识符（如存储 key、文件 ID）
func protectIDTokens(text string, reg *placeholder.Registry, env *Env) string {
	return env.idTokenPattern().ReplaceAllStringFunc(text, func(word string) string {
		if !strings.Contains(word, "_") {
			return word
		}
		return reg.Add(placeholder.IDToken, word, word).Encode()
	})
}

func protectVerbatim(text string, reg *placeholder.Registry, re *regexp.Regexp, kind placeholder.Kind) string {
	return re.ReplaceAllStringFunc(text, func(match string) string {
		return reg.Add(kind, match, match).Encode()
	})
}

func normalizeNewlines(text string) string {
	if !strings.Contains(text, "\r\n") {
		return text
	}
	return strings.ReplaceAll(text, "\r\n", "\n")
}
