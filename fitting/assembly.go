package fitting

import (
	"github.com/soypat/sdf"

	"github.com/printforge/turnbuckle/thread"
)

// Part is one printable solid of the turnbuckle.
type Part struct {
	// Name is stable across invocations: "body", "eye-a", "eye-b".
	Name  string
	Solid sdf.SDF3
}

// Assembly holds the three printable parts of one turnbuckle. EyeA is the
// left-hand fitting and screws into the body's left-hand end, EyeB the
// right-hand one.
type Assembly struct {
	Body Part
	EyeA Part
	EyeB Part
}

// Parts returns the parts in print order.
func (a Assembly) Parts() []Part {
	return []Part{a.Body, a.EyeA, a.EyeB}
}

// Assembler builds turnbuckle assemblies. The zero value uses the thread
// builder defaults.
type Assembler struct {
	// Threads builds and verifies every thread solid. Its Tolerance is
	// overridden per assembly from Params.
	Threads thread.Builder
}

// Assemble validates p, fills its defaults and builds the three parts.
// Every part is verified watertight before it is returned.
func (a *Assembler) Assemble(p Params) (Assembly, error) {
	p, err := p.resolve()
	if err != nil {
		return Assembly{}, err
	}
	b := a.Threads
	b.Tolerance = p.Tolerance

	bodySolid, err := body(p, b)
	if err != nil {
		return Assembly{}, err
	}
	eyeA, err := eye(p, b, thread.Left)
	if err != nil {
		return Assembly{}, err
	}
	eyeB, err := eye(p, b, thread.Right)
	if err != nil {
		return Assembly{}, err
	}
	return Assembly{
		Body: Part{Name: "body", Solid: bodySolid},
		EyeA: Part{Name: "eye-a", Solid: eyeA},
		EyeB: Part{Name: "eye-b", Solid: eyeB},
	}, nil
}
