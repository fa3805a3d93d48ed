package dip

// Number constrains Calc to types that support + and *.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Operation is a low-level binary operation over T.
type Operation[T Number] interface {
	Name() string
	Apply(a, b T) T
}

// Plus adds its operands.
type Plus[T Number] struct{}

func (Plus[T]) Name() string   { return "plus" }
func (Plus[T]) Apply(a, b T) T { return a + b }

// Times multiplies its operands.
type Times[T Number] struct{}

func (Times[T]) Name() string   { return "times" }
func (Times[T]) Apply(a, b T) T { return a * b }

// Calc is the high-level calculator. It knows only the Operation
// abstraction, never Plus or Times.
type Calc[T Number] struct {
	op Operation[T]
}

// NewCalc binds a calculator to op.
func NewCalc[T Number](op Operation[T]) *Calc[T] {
	return &Calc[T]{op: op}
}

// Do applies the bound operation.
func (c *Calc[T]) Do(a, b T) T {
	return c.op.Apply(a, b)
}

// OpName names the bound operation.
func (c *Calc[T]) OpName() string {
	return c.op.Name()
}
