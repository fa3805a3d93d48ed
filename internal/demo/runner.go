// Package demo runs the idiom scenarios and prints their output.
package demo

import (
	"context"
	"errors"
	"fmt"
	"io"

	"idioms/internal/config"
	"idioms/internal/logging"
	"idioms/internal/stopwatch"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrUnknownScenario is returned when a requested scenario is not registered.
var ErrUnknownScenario = errors.New("unknown scenario")

// Runner executes registered scenarios in registration order.
type Runner struct {
	cfg       *config.Config
	scenarios []Scenario
	byName    map[string]int
	loggers   *logging.Loggers
	clock     stopwatch.Clock
}

// Option configures a Runner.
type Option func(r *Runner)

// WithLoggers routes runner and scenario logs through l.
func WithLoggers(l *logging.Loggers) Option {
	return func(r *Runner) { r.loggers = l }
}

// WithClock replaces the clock used by the timer scenario.
func WithClock(c stopwatch.Clock) Option {
	return func(r *Runner) { r.clock = c }
}

// WithScenarios replaces the builtin scenario set.
func WithScenarios(s ...Scenario) Option {
	return func(r *Runner) { r.scenarios = s }
}

// NewRunner builds a runner. A nil cfg uses config.DefaultConfig.
func NewRunner(cfg *config.Config, opts ...Option) *Runner {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	r := &Runner{
		cfg:       cfg,
		scenarios: Builtin(),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.byName = make(map[string]int, len(r.scenarios))
	for i, s := range r.scenarios {
		r.byName[s.Name] = i
	}
	return r
}

// List returns the registered scenarios in run order.
func (r *Runner) List() []Scenario {
	out := make([]Scenario, len(r.scenarios))
	copy(out, r.scenarios)
	return out
}

// Lookup finds a scenario by name.
func (r *Runner) Lookup(name string) (Scenario, bool) {
	i, ok := r.byName[name]
	if !ok {
		return Scenario{}, false
	}
	return r.scenarios[i], true
}

// Run writes the named scenarios to w, or all of them when names is empty.
// Names are resolved before anything is written. The context is checked
// between scenarios only.
func (r *Runner) Run(ctx context.Context, w io.Writer, names ...string) error {
	selected, err := r.resolve(names)
	if err != nil {
		return err
	}

	log := r.loggers.Get(logging.CategoryRunner).With(zap.String("run_id", uuid.NewString()))
	log.Debug("run starting", zap.Int("scenarios", len(selected)))

	env := &Env{
		P:     NewPrinter(w, r.cfg.Output),
		In:    r.cfg.Inputs,
		Clock: r.clock,
		Log:   r.loggers.Get(logging.CategoryScenario),
	}

	for _, s := range selected {
		if err := ctx.Err(); err != nil {
			log.Warn("run interrupted", zap.String("next", s.Name), zap.Error(err))
			return fmt.Errorf("run interrupted before %s: %w", s.Name, err)
		}
		log.Debug("scenario starting", zap.String("scenario", s.Name))
		env.P.Section(s.Title)
		s.Run(env)
	}

	if footer := r.cfg.Output.Footer; footer != "" {
		env.P.Blank()
		env.P.Line("%s", footer)
	}
	log.Debug("run finished")
	return nil
}

func (r *Runner) resolve(names []string) ([]Scenario, error) {
	if len(names) == 0 {
		return r.List(), nil
	}
	out := make([]Scenario, 0, len(names))
	for _, name := range names {
		s, ok := r.Lookup(name)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownScenario, name)
		}
		out = append(out, s)
	}
	return out, nil
}
