package material

type technique struct {
	name   string
	passes []*Pass // indexed by pass index, nil where absent
}

// Technique is a named set of passes describing how a material is drawn.
// Techniques are immutable after creation and safe for concurrent use.
type Technique interface {
	// Name returns the technique identifier.
	//
	// Returns:
	//   - string: the technique name
	Name() string

	// Pass returns the pass registered at index or nil if the technique does not have it.
	//
	// Parameters:
	//   - index: a pass index obtained from PassIndex
	//
	// Returns:
	//   - *Pass: the pass, or nil
	Pass(index int) *Pass

	// HasPass reports whether the technique has a pass at index.
	HasPass(index int) bool

	// Passes returns all passes of the technique in pass index order.
	//
	// Returns:
	//   - []*Pass: the passes
	Passes() []*Pass
}

var _ Technique = &technique{}

// NewTechnique creates a Technique with one pass per name.
// The pipeline key of each pass is "<technique>/<pass>".
//
// Parameters:
//   - name: the technique name
//   - passNames: names of the passes the technique provides
//
// Returns:
//   - Technique: the new technique
func NewTechnique(name string, passNames ...string) Technique {
	t := &technique{name: name}
	for _, passName := range passNames {
		index := PassIndex(passName)
		if index >= len(t.passes) {
			grown := make([]*Pass, index+1)
			copy(grown, t.passes)
			t.passes = grown
		}
		t.passes[index] = &Pass{
			Name:        PassName(index),
			Index:       index,
			PipelineKey: name + "/" + PassName(index),
		}
	}
	return t
}

func (t *technique) Name() string {
	return t.name
}

func (t *technique) Pass(index int) *Pass {
	if index < 0 || index >= len(t.passes) {
		return nil
	}
	return t.passes[index]
}

func (t *technique) HasPass(index int) bool {
	return t.Pass(index) != nil
}

func (t *technique) Passes() []*Pass {
	out := make([]*Pass, 0, len(t.passes))
	for _, p := range t.passes {
		if p != nil {
			out = append(out, p)
		}
	}
	return out
}
