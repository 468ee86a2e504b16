package converter

import (
	"strings"

	"github.com/riverfjs/telegramify-html/internal/placeholder"
)

// Restore 将占位符替换回渲染结果
//
// 按 placeholder.Kinds 的顺序、同类按序号递增，每个占位符只替换一次。
// 之后仍残留的占位符（不应发生）会被修复并记录：代码块替换为
// Config.CodeFallback，其他类型直接删除。
func Restore(text string, reg *placeholder.Registry, env *Env) string {
	for _, kind := range placeholder.Kinds {
		for i, entry := range reg.Entries(kind) {
			tok := placeholder.Token{Kind: kind, Index: i}
			text = strings.Replace(text, tok.Encode(), entry.Rendered, 1)
		}
	}
	return repairLeftovers(text, env)
}

func repairLeftovers(text string, env *Env) string {
	if !strings.ContainsRune(text, placeholder.Open) {
		return text
	}

	leftover := make(map[string]int)
	fallback := env.config().CodeFallback
	text = placeholder.Pattern.ReplaceAllStringFunc(text, func(match string) string {
		tok, ok := placeholder.Decode(match)
		if !ok {
			leftover["unknown"]++
			return ""
		}
		leftover[tok.Kind.String()]++
		if tok.Kind == placeholder.CodeBlock {
			return fallback
		}
		return ""
	})

	if len(leftover) > 0 && env.Logger != nil {
		env.Logger.Warn("leftover placeholders after restore", "counts", leftover)
	}
	return text
}
