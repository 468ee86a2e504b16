package bus

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	telegramify "github.com/riverfjs/telegramify-html"
	"github.com/riverfjs/telegramify-html/internal/types"
)

// RenderRequest asks the worker to render markdown for a chat.
type RenderRequest struct {
	ID        string `json:"id,omitempty"`
	ReplyTo   string `json:"reply_to,omitempty"`
	ChatID    int64  `json:"chat_id"`
	Markdown  string `json:"markdown"`
	MaxLength int    `json:"max_length,omitempty"`
	Plain     bool   `json:"plain,omitempty"`
}

// RenderResult lists the chunks to send, in order.
type RenderResult struct {
	ID        string   `json:"id"`
	ChatID    int64    `json:"chat_id"`
	ParseMode string   `json:"parse_mode"`
	Chunks    []string `json:"chunks"`
	Error     string   `json:"error,omitempty"`
}

// Worker renders requests from the bus and publishes the results.
type Worker struct {
	pub           Publisher
	resultSubject string
	config        *types.RenderConfig
	logger        *slog.Logger
}

// NewWorker 创建渲染 worker；resultSubject 为空时使用 SubjectRenderResult
func NewWorker(pub Publisher, resultSubject string, config *types.RenderConfig, logger *slog.Logger) *Worker {
	if resultSubject == "" {
		resultSubject = SubjectRenderResult
	}
	if logger == nil {
		logger = slog.Default()
	}
	cfg := config.Clone()
	cfg.Normalize()
	return &Worker{
		pub:           pub,
		resultSubject: resultSubject,
		config:        cfg,
		logger:        logger,
	}
}

// Handle matches the Client.Subscribe handler signature. Malformed
// payloads are logged and dropped.
func (w *Worker) Handle(subject string, data []byte) {
	var req RenderRequest
	if err := json.Unmarshal(data, &req); err != nil {
		w.logger.Warn("invalid render request", "subject", subject, "error", err)
		return
	}

	result := w.Render(context.Background(), req)
	target := req.ReplyTo
	if target == "" {
		target = w.resultSubject
	}
	if err := w.pub.Publish(target, result); err != nil {
		w.logger.Error("failed to publish render result", "id", result.ID, "subject", target, "error", err)
		return
	}
	w.logger.Debug("render result published", "id", result.ID, "chunks", len(result.Chunks))
}

// Render converts one request. Errors are reported in the result.
func (w *Worker) Render(ctx context.Context, req RenderRequest) RenderResult {
	result := RenderResult{
		ID:        req.ID,
		ChatID:    req.ChatID,
		ParseMode: telegramify.ParseModeHTML,
		Chunks:    []string{},
	}
	if result.ID == "" {
		result.ID = uuid.NewString()
	}
	if req.Plain {
		result.ParseMode = telegramify.ParseModeNone
	}

	maxLength := req.MaxLength
	if maxLength <= 0 {
		maxLength = w.config.MaxLength
	}

	contents, err := telegramify.ProcessMarkdown(ctx, req.Markdown, maxLength, req.Plain,
		telegramify.WithConfig(w.config),
		telegramify.WithLogger(w.logger),
	)
	if err != nil {
		if !errors.Is(err, telegramify.ErrEmptyMarkdown) {
			w.logger.Warn("render failed", "id", result.ID, "error", err)
		}
		result.Error = err.Error()
		return result
	}

	for _, c := range contents {
		if text, ok := c.(*telegramify.Text); ok {
			result.Chunks = append(result.Chunks, text.Text)
		}
	}
	return result
}
