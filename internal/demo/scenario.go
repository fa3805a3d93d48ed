package demo

import (
	"idioms/internal/config"
	"idioms/internal/stopwatch"

	"go.uber.org/zap"
)

// Env is everything a scenario may touch while it runs.
type Env struct {
	P     *Printer
	In    config.InputsConfig
	Clock stopwatch.Clock
	Log   *zap.Logger
}

// Scenario is one self-contained demo.
type Scenario struct {
	Name  string
	Title string
	Run   func(env *Env)
}

// Builtin returns the standard scenarios in run order.
func Builtin() []Scenario {
	return []Scenario{
		{Name: "data", Title: "data operations", Run: runData},
		{Name: "object", Title: "object creation", Run: runObject},
		{Name: "bytes", Title: "byte array iteration", Run: runBytes},
		{Name: "strings", Title: "string iteration", Run: runStrings},
		{Name: "adapters", Title: "string iteration adapters", Run: runAdapters},
		{Name: "generic", Title: "generic sequence rendering", Run: runGeneric},
		{Name: "dip", Title: "dependency inversion", Run: runDIP},
		{Name: "timer", Title: "timer", Run: runTimer},
		{Name: "hello", Title: "console app", Run: runHello},
	}
}
