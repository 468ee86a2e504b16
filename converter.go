package telegramify

import (
	"github.com/riverfjs/telegramify-html/internal/converter"
	"github.com/riverfjs/telegramify-html/internal/plain"
)

// Convert 将 Markdown 转换为 Telegram HTML（parse_mode=HTML）
//
// 输出只包含 <b>、<i>、<s>、<code>、<pre><code class="language-x">。
// 代码、@提及、URL、长 ID 原样保留，不会被强调规则改写。
//
// 参数:
//   - markdown: 原始 Markdown 文本（通常来自 LLM）
//   - opts: 可选配置
//
// 返回:
//   - string: Telegram HTML
func Convert(markdown string, opts ...Option) string {
	options := applyOptions(opts...)
	return converter.NewPipeline(options.Config, options.Logger).Run(markdown)
}

// PlainText 将 Markdown 转换为无格式纯文本
//
// 当 Telegram 拒绝 HTML（例如 "can't parse entities"）时作为回退使用。
// 表格与 Convert 一样展开为列表。
func PlainText(markdown string, opts ...Option) string {
	options := applyOptions(opts...)
	return plain.Render(markdown, options.Config.TableBullet)
}

// StageNames 返回转换管道的阶段名称（按执行顺序）
func StageNames() []string {
	return converter.NewPipeline(nil, Logger).StageNames()
}
