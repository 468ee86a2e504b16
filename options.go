package telegramify

import "log/slog"

// ConvertOptions holds options for markdown conversion.
type ConvertOptions struct {
	Config *RenderConfig
	Logger *slog.Logger
}

// Option is a function that configures ConvertOptions.
type Option func(*ConvertOptions)

// WithConfig replaces the render configuration. Options applied after it
// modify a copy, never the caller's value.
func WithConfig(config *RenderConfig) Option {
	return func(opts *ConvertOptions) {
		opts.Config = config.Clone()
	}
}

// WithIDTokenMinLength sets how long an underscore-bearing word must be
// before it is treated as an opaque identifier.
func WithIDTokenMinLength(n int) Option {
	return func(opts *ConvertOptions) {
		opts.Config.IDTokenMinLength = n
	}
}

// WithLanguageNormalization canonicalises code fence languages ("py" -> "python").
func WithLanguageNormalization(enable bool) Option {
	return func(opts *ConvertOptions) {
		opts.Config.NormalizeLanguage = enable
	}
}

// WithCodeFallback sets the text that replaces an unrestorable code block.
func WithCodeFallback(text string) Option {
	return func(opts *ConvertOptions) {
		opts.Config.CodeFallback = text
	}
}

// WithTableBullet sets the prefix of flattened table rows.
func WithTableBullet(bullet string) Option {
	return func(opts *ConvertOptions) {
		opts.Config.TableBullet = bullet
	}
}

// WithLogger sets the logger for a single call instead of the package Logger.
func WithLogger(logger *slog.Logger) Option {
	return func(opts *ConvertOptions) {
		opts.Logger = logger
	}
}

// defaultConvertOptions returns the default conversion options.
func defaultConvertOptions() *ConvertOptions {
	return &ConvertOptions{
		Config: DefaultConfig().Clone(),
	}
}

// applyOptions applies the given options to the default options.
func applyOptions(opts ...Option) *ConvertOptions {
	options := defaultConvertOptions()
	for _, opt := range opts {
		opt(options)
	}
	options.Config.Normalize()
	if options.Logger == nil {
		options.Logger = Logger
	}
	return options
}
