// Package envpick selects which environment file an application should load.
//
// Given a base directory, envpick expands a filename pattern against the
// active environment name into an ordered candidate list, probes the
// directory for each candidate, and returns the absolute path of the first
// one that exists:
//
//	path, err := envpick.Resolve(".")
//	if err != nil {
//		// no candidate exists; the error lists everything tried
//	}
//
// With the default pattern and NODE_ENV=production the candidates are
// ".env.production" followed by ".env". A bare ".env" fallback is always
// tried last regardless of the configured pattern, and resolving to it is
// reported through the notification sink as a warning.
//
// envpick only picks the file. Reading it, parsing its contents, and
// applying them to the process environment are deliberately left to the
// caller.
package envpick

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/harrison/envpick/pattern"
	"github.com/spf13/afero"
)

const (
	// DefaultEnvironment is assumed when the environment variable is unset
	// or empty.
	DefaultEnvironment = "development"

	// DefaultEnvironmentVariable names the process environment variable
	// consulted for the active environment name.
	DefaultEnvironmentVariable = "NODE_ENV"

	// FallbackName is the unconditional last candidate. A selected candidate
	// equal to it triggers the fallback notification, even when the match
	// came from the configured pattern rather than the appended fallback.
	FallbackName = ".env"
)

// ResolutionError reports that no candidate file exists under the base
// directory. Tried holds every candidate filename in the order probed.
type ResolutionError struct {
	// Dir is the base directory as passed to Resolve.
	Dir string

	// Tried lists the probed candidate filenames, highest priority first.
	Tried []string
}

// Error enumerates the probed candidates.
func (e *ResolutionError) Error() string {
	return fmt.Sprintf("no environment file found in %s (tried %s)",
		e.Dir, strings.Join(e.Tried, ", "))
}

// Resolve returns the absolute path of the environment file to load for the
// given base directory.
//
// The configured pattern (pattern.Default unless WithPattern overrides it)
// is expanded against the active environment name, and the bare fallback is
// appended after the expansion. Candidates are probed in order; the first
// existing one wins and no further candidates are checked. The choice is
// reported through the sink: a specific match at info level, the bare
// fallback as a warning, downgraded to info by SuppressFallbackWarning.
//
// When no candidate exists, Resolve returns a *ResolutionError listing every
// candidate in the order tried.
func Resolve(dir string, opts ...Option) (string, error) {
	o := newOptions()
	o.apply(opts)

	candidates := o.candidates()

	for _, name := range candidates {
		path, err := filepath.Abs(filepath.Join(dir, name))
		if err != nil {
			continue
		}
		if ok, err := afero.Exists(o.fs, path); err != nil || !ok {
			continue
		}

		notifyChoice(o, name)
		return path, nil
	}

	return "", &ResolutionError{Dir: dir, Tried: candidates}
}

// Candidates returns the ordered candidate list Resolve would probe for the
// same options, without touching the filesystem.
func Candidates(opts ...Option) []string {
	o := newOptions()
	o.apply(opts)

	return o.candidates()
}

// notifyChoice reports the selected candidate. Matching the bare fallback
// name is classified by string equality, so a pattern combination that
// collapses to ".env" is reported the same way as the appended fallback.
func notifyChoice(o options, name string) {
	if name == FallbackName {
		msg := fmt.Sprintf("no environment-specific file found, falling back to %q", FallbackName)
		if o.suppressFallbackWarning {
			o.sink.Info(msg)
		} else {
			o.sink.Warn(msg)
		}
		return
	}

	o.sink.Info(fmt.Sprintf("using environment file %q", name))
}

// candidates expands the configured pattern and appends the fallback
// expansion. The active environment name is read once here.
func (o options) candidates() []string {
	env := o.environment
	if env == "" {
		env = ambientEnvironment(o.environmentVariable)
	}

	names := o.pattern.Expand(env)
	return append(names, pattern.Fallback().Expand(env)...)
}

// ambientEnvironment reads the active environment name from the process
// environment. An unset or empty variable yields DefaultEnvironment.
func ambientEnvironment(variable string) string {
	if env := os.Getenv(variable); env != "" {
		return env
	}
	return DefaultEnvironment
}
