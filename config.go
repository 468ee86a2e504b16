package telegramify

import (
	"sync"

	"github.com/riverfjs/telegramify-html/internal/types"
)

// 导出类型别名
type RenderConfig = types.RenderConfig

// DefaultMaxLength is Telegram's text message limit in UTF-16 code units.
const DefaultMaxLength = types.DefaultMaxLength

var (
	defaultConfig     *RenderConfig
	defaultConfigOnce sync.Once
)

// DefaultConfig returns the default render configuration (singleton).
//
// The returned value is shared; use Clone before modifying it.
func DefaultConfig() *RenderConfig {
	defaultConfigOnce.Do(func() {
		defaultConfig = types.DefaultRenderConfig()
	})
	return defaultConfig
}
