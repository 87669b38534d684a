package envpick

import (
	"os"

	"github.com/harrison/envpick/notify"
	"github.com/harrison/envpick/pattern"
	"github.com/spf13/afero"
)

// options collects the optional parameters of a resolution call.
type options struct {
	pattern                 pattern.Pattern
	fs                      afero.Fs
	sink                    notify.Sink
	environment             string
	environmentVariable     string
	suppressFallbackWarning bool
}

func newOptions() options {
	return options{
		pattern:             pattern.Default(),
		fs:                  afero.NewOsFs(),
		sink:                notify.NewConsoleSink(os.Stderr),
		environmentVariable: DefaultEnvironmentVariable,
	}
}

func (o *options) apply(opts []Option) {
	for _, opt := range opts {
		opt(o)
	}
}

// Option adjusts how a resolution call behaves.
type Option func(*options)

// WithPattern replaces the default filename pattern. The bare fallback is
// still appended after the pattern's own candidates.
func WithPattern(p pattern.Pattern) Option {
	return func(o *options) { o.pattern = p }
}

// WithFs routes existence checks through fs instead of the host filesystem.
func WithFs(fs afero.Fs) Option {
	return func(o *options) { o.fs = fs }
}

// WithSink routes notifications to sink instead of the process's stderr.
func WithSink(s notify.Sink) Option {
	return func(o *options) { o.sink = s }
}

// WithEnvironment fixes the active environment name, bypassing the
// environment variable lookup entirely. An empty name re-enables the lookup.
func WithEnvironment(env string) Option {
	return func(o *options) { o.environment = env }
}

// WithEnvironmentVariable changes which process environment variable is
// consulted for the active environment name.
func WithEnvironmentVariable(name string) Option {
	return func(o *options) { o.environmentVariable = name }
}

// SuppressFallbackWarning downgrades the fallback notification from warning
// to info. Use it when running from the bare ".env" is expected, such as in
// images that ship exactly one environment file.
func SuppressFallbackWarning() Option {
	return func(o *options) { o.suppressFallbackWarning = true }
}
