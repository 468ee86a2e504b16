// Package telegramify 将 LLM 输出的 Markdown 转换为 Telegram HTML 并拆分为消息
//
// 转换管道（顺序固定）：
//   - 保护：代码块、表格（就地展开为列表）、行内代码、@提及、URL、长 ID
//     被替换为哨兵占位符
//   - 转义：&、<、>
//   - 渲染：**粗体**、*斜体*、__粗体__、_斜体_、~~删除线~~
//   - 还原：占位符替换回渲染结果
//
// 拆分按行进行，绝不截断一行；单行超长时作为一个超长片段单独发送。
//
// 主要 API：
//   - Convert(): Markdown → Telegram HTML
//   - SplitMessage(): HTML → 消息片段
//   - Telegramify(): 两者组合
//   - ProcessMarkdown(): 返回可直接发送的 Content 列表
//
// 示例：
//
//	html := telegramify.Convert(markdown)
//	for _, chunk := range telegramify.SplitMessage(html, 4096) {
//	    // sendMessage(chat_id, chunk, parse_mode="HTML")
//	}
package telegramify

// Telegramify 将 Markdown 转换为 Telegram HTML 并拆分
//
// 参数：
//   - markdown: 原始 Markdown 文本
//   - maxMessageLength: 每条消息的最大 UTF-16 code units（Telegram 限制为 4096），<= 0 时使用默认值
//   - opts: 可选配置
//
// 返回：
//   - []string: 按顺序发送的 HTML 片段，以 "\n" 连接即为完整转换结果
func Telegramify(markdown string, maxMessageLength int, opts ...Option) []string {
	return SplitMessage(Convert(markdown, opts...), maxMessageLength)
}
