package types

// DefaultMaxLength 是 Telegram 单条文本消息的上限（UTF-16 code units）
const DefaultMaxLength = 4096

// DefaultIDTokenMinLength 是 ID 类 token 的最小长度
//
// 这是一个启发式阈值：过短会误伤普通带下划线的单词，过长会漏掉短 ID。
const DefaultIDTokenMinLength = 15

// RenderConfig 渲染配置
type RenderConfig struct {
	// IDTokenMinLength 含下划线的裸词达到此长度时视为 ID 并原样保留
	IDTokenMinLength int `yaml:"idTokenMinLength" json:"id_token_min_length"`
	// CodeFallback 替换残留代码块占位符的中性文本
	CodeFallback string `yaml:"codeFallback" json:"code_fallback"`
	// NormalizeLanguage 通过 chroma 词法器别名规范化代码块语言标签
	NormalizeLanguage bool `yaml:"normalizeLanguage" json:"normalize_language"`
	// TableBullet 表格行的列表符号
	TableBullet string `yaml:"tableBullet" json:"table_bullet"`
	// MaxLength 拆分时每条消息的最大长度
	MaxLength int `yaml:"maxLength" json:"max_length"`
}

// DefaultRenderConfig 返回默认渲染配置
func DefaultRenderConfig() *RenderConfig {
	return &RenderConfig{
		IDTokenMinLength:  DefaultIDTokenMinLength,
		CodeFallback:      "[code]",
		NormalizeLanguage: false,
		TableBullet:       "•",
		MaxLength:         DefaultMaxLength,
	}
}

// Clone returns a copy that can be modified without touching the receiver.
func (c *RenderConfig) Clone() *RenderConfig {
	if c == nil {
		return DefaultRenderConfig()
	}
	cp := *c
	return &cp
}

// Normalize fills zero values with defaults.
func (c *RenderConfig) Normalize() {
	if c.IDTokenMinLength <= 0 {
		c.IDTokenMinLength = DefaultIDTokenMinLength
	}
	if c.TableBullet == "" {
		c.TableBullet = "•"
	}
	if c.MaxLength <= 0 {
		c.MaxLength = DefaultMaxLength
	}
}
