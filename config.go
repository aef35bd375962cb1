package rexfa

import (
	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/gologger/levels"
)

// Config controls how CompileWithConfig runs. The zero value currently
// equals DefaultConfig's value (tracing off); going through DefaultConfig
// gives any field added later its default too.
type Config struct {
	// Debug traces each pipeline stage (normalize, shunting-yard, parse,
	// Thompson construction, determinization) through gologger at debug
	// level. Off by default: a production matcher compiling thousands of
	// patterns should not pay for string formatting it never prints.
	Debug bool
}

// DefaultConfig returns the configuration Compile uses: debug tracing off.
func DefaultConfig() Config {
	return Config{Debug: false}
}

// tracer emits one debug line per compiler stage when a Config asks for it.
// With Debug unset it does nothing, so CompileWithConfig can call it
// unconditionally without branching at every call site.
type tracer struct {
	enabled bool
	pattern string
}

func newTracer(cfg Config, pattern string) *tracer {
	if cfg.Debug {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelDebug)
	}
	return &tracer{enabled: cfg.Debug, pattern: pattern}
}

func (t *tracer) stage(name, value string) {
	if !t.enabled {
		return
	}
	gologger.Debug().Msgf("rexfa: compiling %q: %s -> %s", t.pattern, name, value)
}

func (t *tracer) stageCount(name string, count int) {
	if !t.enabled {
		return
	}
	gologger.Debug().Msgf("rexfa: compiling %q: %s produced %d states", t.pattern, name, count)
}
