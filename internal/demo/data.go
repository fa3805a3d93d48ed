package demo

import (
	"idioms/internal/seq"
	"idioms/internal/value"

	"go.uber.org/zap"
)

// runData contrasts scalar copies with moving and cloning a growable
// sequence.
func runData(env *Env) {
	p := env.P

	p.Line("-- integer ops --")
	x := env.In.Scalar
	y := x - 2 // copy construction
	p.Line("x = %d, y = %d", x, y)
	x = y // copy assign
	p.Line("after copy assign: x = y")
	p.Line("x = %d, y = %d", x, y)

	p.Blank()
	p.Line("-- growable sequence ops --")
	v := value.Own(append([]int32(nil), env.In.Growable...))
	p.Line("v = %s", seq.RenderSlice(v.Get()))

	w := v.Move()
	p.Line("after move: w := v.Move()")
	p.Line("w = %s", seq.RenderSlice(w.Get()))
	p.Line("now v is invalid (moved: %t)", v.Moved())
	env.Log.Debug("sequence moved", zap.Stringer("source", v), zap.Int("len", w.Len()))

	c := w.Clone()
	p.Blank()
	p.Line("after clone: x := w.Clone()")
	p.Line("w = %s", seq.RenderSlice(w.Get()))
	p.Line("x = %s", seq.RenderSlice(c.Get()))

	c.Set(0, 99)
	c.Push(8)
	p.Line("after x.Set(0, 99); x.Push(8):")
	p.Line("w = %s", seq.RenderSlice(w.Get()))
	p.Line("x = %s", seq.RenderSlice(c.Get()))
}

// runObject clones a named record.
func runObject(env *Env) {
	p := env.P

	dob := value.NewNamed(env.In.RecordName)
	p.Line("instance name is %q", dob.Name())

	cdob := dob.Clone()
	p.Line("name of clone is %q", cdob.Name())

	cdob.Rename(cdob.Name() + " (clone)")
	p.Line("after renaming clone: original %q, clone %q", dob.Name(), cdob.Name())
}
