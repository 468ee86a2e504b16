package telegramify

import (
	"log/slog"
	"os"
)

// Logger 全局日志记录器
//
// 管道阶段在 Debug 级别记录，残留占位符在 Warn 级别记录。
var Logger = slog.New(slog.NewTextHandler(os.Stderr, nil)).With("component", "telegramify")

// SetLogger 设置自定义日志记录器；nil 被忽略
func SetLogger(logger *slog.Logger) {
	if logger != nil {
		Logger = logger
	}
}
