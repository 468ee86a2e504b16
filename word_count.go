package telegramify

// CountText 计算文本在 Telegram 中的有效长度（UTF-16 code units）
//
// HTML 模式下 Telegram 按解析后的文本计数，标签不计入；这里按原始 HTML 计数，
// 结果偏大，用于拆分时是安全的上界。
func CountText(text string) int {
	return UTF16Len(text)
}
