package converter

import (
	"log/slog"

	"github.com/riverfjs/telegramify-html/internal/placeholder"
	"github.com/riverfjs/telegramify-html/internal/types"
)

// RenderConfig 渲染配置（别名）
type RenderConfig = types.RenderConfig

// Env carries what stages need besides the buffer and the registry.
type Env struct {
	Config *RenderConfig
	Logger *slog.Logger

	patterns *patterns
}

// StageFunc transforms the buffer. Stages may append to the registry but
// never rewrite existing entries.
type StageFunc func(text string, reg *placeholder.Registry, env *Env) string

// Stage 命名的管道阶段
type Stage struct {
	Name  string
	Apply StageFunc
}

// Stages 返回固定顺序的阶段列表
//
// 顺序即不变式：
//   - sanitize 之后输入中不再有占位符控制字节
//   - code_blocks 先于一切，代码内容不会被其他模式匹配
//   - tables 先于 inline_code，表格单元中的反引号由后续阶段照常处理
//   - mentions / urls / id_tokens 在 escape 之前，保持原样
//   - escape 只执行一次，emphasis 只看到转义后的文本和占位符
//   - restore 最后执行，按 CodeBlock、InlineCode、Mention、URL、IDToken 顺序
func Stages() []Stage {
	return []Stage{
		{Name: "sanitize", Apply: sanitize},
		{Name: "code_blocks", Apply: protectCodeBlocks},
		{Name: "tables", Apply: convertTables},
		{Name: "inline_code", Apply: protectInlineCode},
		{Name: "mentions", Apply: protectMentions},
		{Name: "urls", Apply: protectURLs},
		{Name: "id_tokens", Apply: protectIDTokens},
		{Name: "escape", Apply: escapeStage},
		{Name: "emphasis", Apply: emphasisStage},
		{Name: "restore", Apply: Restore},
	}
}

// Pipeline runs the stages in order over one input.
type Pipeline struct {
	stages []Stage
	env    *Env
}

// NewPipeline 创建管道；config 和 logger 可为 nil
func NewPipeline(config *RenderConfig, logger *slog.Logger) *Pipeline {
	cfg := config.Clone()
	cfg.Normalize()
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{
		stages: Stages(),
		env: &Env{
			Config:   cfg,
			Logger:   logger,
			patterns: patternsFor(cfg.IDTokenMinLength),
		},
	}
}

// StageNames returns the stage names in execution order.
func (p *Pipeline) StageNames() []string {
	names := make([]string, len(p.stages))
	for i, s := range p.stages {
		names[i] = s.Name
	}
	return names
}

// Run converts markdown to Telegram HTML. A fresh registry is used per call.
func (p *Pipeline) Run(markdown string) string {
	reg := placeholder.NewRegistry()
	text := markdown
	for _, stage := range p.stages {
		text = stage.Apply(text, reg, p.env)
		p.env.Logger.Debug("stage done",
			"stage", stage.Name,
			"len", len(text),
			"extracted", reg.Total(),
		)
	}
	return text
}

func sanitize(text string, _ *placeholder.Registry, _ *Env) string {
	return normalizeNewlines(placeholder.Sanitize(text))
}
