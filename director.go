package dia

// NewDirector returns a director bound to the given builder.
func NewDirector(b Builder) *Director {
	return &Director{builder: b}
}

type Director struct {
	builder Builder
}

// Construct runs the fixed build sequence calc, draw and drag for the
// given coordinate.
func (d *Director) Construct(coord string) {
	d.builder.Calc(coord)
	d.builder.Draw()
	d.builder.Drag(coord)
}
