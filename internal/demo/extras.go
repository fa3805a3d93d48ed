package demo

import (
	"idioms/internal/dip"
	"idioms/internal/stopwatch"

	"go.uber.org/zap"
)

// runDIP drives the high-level parts through their abstractions only.
func runDIP(env *Env) {
	p := env.P

	df := dip.NewDemo[dip.First]()
	df.SetID(1)
	df.SayIt(p.Writer(), p.Indent())
	p.Blank()

	ds := dip.NewDemo[dip.Second]()
	ds.SetID(2)
	ds.SayIt(p.Writer(), p.Indent())
	p.Blank()

	for _, c := range []*dip.Calc[int]{
		dip.NewCalc[int](dip.Plus[int]{}),
		dip.NewCalc[int](dip.Times[int]{}),
	} {
		p.Line("int:     2 %s 3 = %d", c.OpName(), c.Do(2, 3))
	}
	for _, c := range []*dip.Calc[float64]{
		dip.NewCalc[float64](dip.Plus[float64]{}),
		dip.NewCalc[float64](dip.Times[float64]{}),
	} {
		p.Line("float64: 1.5 %s 2.5 = %g", c.OpName(), c.Do(1.5, 2.5))
	}
}

// runTimer times a fixed amount of work.
func runTimer(env *Env) {
	p := env.P

	sw := stopwatch.New(env.Clock)
	sw.Start()
	result := stopwatch.Converge(1.01, env.In.WorkIterations)
	sw.Stop()

	env.Log.Debug("work timed", zap.Duration("elapsed", sw.Elapsed()))
	p.Line("work result = %.4f", result)
	p.Line("RunTime %s", stopwatch.Format(sw.Elapsed()))
}

// runHello is the smallest possible console program.
func runHello(env *Env) {
	env.P.Line("Hello, new dev - this is idioms with %s", helper())
}

func helper() string {
	s := "helper string"
	return s
}
