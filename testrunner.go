package cadence

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// testStep is a single action in a test script.
type testStep struct {
	Action string  `yaml:"action"`
	Label  string  `yaml:"label,omitempty"`
	X      float64 `yaml:"x,omitempty"`
	Y      float64 `yaml:"y,omitempty"`
	FromX  float64 `yaml:"from_x,omitempty"`
	FromY  float64 `yaml:"from_y,omitempty"`
	ToX    float64 `yaml:"to_x,omitempty"`
	ToY    float64 `yaml:"to_y,omitempty"`
	Key    string  `yaml:"key,omitempty"`
	Down   bool    `yaml:"down,omitempty"`
	Frames int     `yaml:"frames,omitempty"`
}

// testScript is the top-level structure of a test script.
type testScript struct {
	Steps []testStep `yaml:"steps"`
}

// TestRunner plays a scripted sequence of input changes into a Director's
// ManualInput, one step per frame, for automated checks of input-driven
// effects. Scripts are YAML (JSON is accepted too):
//
//	steps:
//	  - {action: move, x: 640, y: 100}
//	  - {action: key, key: left, down: true}
//	  - {action: wait, frames: 30}
//	  - {action: mark, label: settled}
//	  - {action: sweep, from_x: 0, from_y: 360, to_x: 1280, to_y: 360, frames: 60}
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool

	// OnMark is called for each "mark" step with its label.
	OnMark func(label string, d *Director)
}

// LoadTestScript parses a test script and returns a TestRunner ready to be
// attached with Director.SetTestRunner.
func LoadTestScript(data []byte) (*TestRunner, error) {
	var script testScript
	if err := yaml.Unmarshal(data, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, errors.New("parse test script: no steps")
	}
	for i, st := range script.Steps {
		switch st.Action {
		case "move", "sweep", "wait", "mark":
		case "key":
			if _, ok := ParseKey(st.Key); !ok {
				return nil, fmt.Errorf("parse test script: step %d: unknown key %q", i, st.Key)
			}
		default:
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// SetTestRunner attaches a runner. The Director's input must be a
// *ManualInput. The runner steps at the start of every Update.
func (d *Director) SetTestRunner(r *TestRunner) {
	if r != nil {
		if _, ok := d.input.(*ManualInput); !ok {
			panic("cadence: SetTestRunner requires a *ManualInput input")
		}
	}
	d.runner = r
}

// Done reports whether every step has been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// step advances the runner by one frame.
func (r *TestRunner) step(d *Director) {
	if r.done {
		return
	}
	in := d.input.(*ManualInput)
	// Let queued injections drain first.
	if in.Queued() > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "move":
		in.InjectMove(st.X, st.Y)
	case "sweep":
		in.InjectSweep(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "key":
		k, _ := ParseKey(st.Key)
		in.InjectKey(k, st.Down)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "mark":
		if r.OnMark != nil {
			r.OnMark(st.Label, d)
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && in.Queued() == 0 {
		r.done = true
	}
}
