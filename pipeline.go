package telegramify

import (
	"context"
	"errors"
	"strings"
)

// ErrEmptyMarkdown is returned when there is nothing to send.
var ErrEmptyMarkdown = errors.New("markdown content is empty")

// ProcessMarkdown 完整管道：markdown → 可发送的内容列表
//
// 步骤：
//  1. Convert 得到 Telegram HTML
//  2. SplitMessage 按 maxMessageLength 拆分
//  3. 丢弃只含空白的片段（Telegram 拒绝空消息），其余包装为 *Text
//
// plain 为 true 时使用 PlainText 渲染，ParseMode 为空。
func ProcessMarkdown(
	ctx context.Context,
	content string,
	maxMessageLength int,
	plain bool,
	opts ...Option,
) ([]Content, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyMarkdown
	}
	if maxMessageLength <= 0 {
		maxMessageLength = DefaultMaxLength
	}

	rendered, parseMode, source := "", ParseModeHTML, "html"
	if plain {
		rendered, parseMode, source = PlainText(content, opts...), ParseModeNone, "plain"
	} else {
		rendered = Convert(content, opts...)
	}

	chunks := SplitMessage(rendered, maxMessageLength)
	result := make([]Content, 0, len(chunks))
	for i, chunk := range chunks {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if strings.TrimSpace(chunk) == "" {
			continue
		}
		result = append(result, &Text{
			Text:      chunk,
			ParseMode: parseMode,
			ContentTrace: ContentTrace{
				SourceType: source,
				Extra: map[string]interface{}{
					"chunk": i,
					"total": len(chunks),
				},
			},
		})
	}

	if len(result) == 0 {
		return nil, ErrEmptyMarkdown
	}
	return result, nil
}
