package sprig

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// testStep represents a single action in a test script.
type testStep struct {
	Action string  `json:"action" yaml:"action"`
	Label  string  `json:"label,omitempty" yaml:"label,omitempty"`
	X      float64 `json:"x,omitempty" yaml:"x,omitempty"`
	Y      float64 `json:"y,omitempty" yaml:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty" yaml:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty" yaml:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty" yaml:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty" yaml:"toY,omitempty"`
	DX     float64 `json:"dx,omitempty" yaml:"dx,omitempty"`
	DY     float64 `json:"dy,omitempty" yaml:"dy,omitempty"`
	Touch  int     `json:"touch,omitempty" yaml:"touch,omitempty"`
	Frames int     `json:"frames,omitempty" yaml:"frames,omitempty"`
}

// testScript is the top-level structure for a test script.
type testScript struct {
	Steps []testStep `json:"steps" yaml:"steps"`
}

var knownActions = map[string]bool{
	"move": true, "press": true, "release": true, "click": true, "drag": true,
	"leave": true, "dragover": true, "dragleave": true, "wheel": true,
	"touchstart": true, "touchmove": true, "touchend": true,
	"wait": true, "checkpoint": true,
}

// TestRunner sequences injected input across frames for automated
// interaction testing. Each frame, call Step with the surface the
// dispatcher is bound to, then let the surface deliver one queued frame.
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool

	// OnCheckpoint, if set, is called for every "checkpoint" step.
	OnCheckpoint func(label string)
}

// LoadTestScript parses a JSON test script and returns a TestRunner.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	return newTestRunner(script)
}

// LoadTestScriptYAML parses a YAML test script and returns a TestRunner.
func LoadTestScriptYAML(yamlData []byte) (*TestRunner, error) {
	var script testScript
	if err := yaml.Unmarshal(yamlData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	return newTestRunner(script)
}

func newTestRunner(script testScript) (*TestRunner, error) {
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	for i, st := range script.Steps {
		if !knownActions[st.Action] {
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// Done reports whether all steps in the test script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// Step advances the runner by one frame, queueing the next step's input on s.
// It waits for s to drain pending frames before advancing.
func (r *TestRunner) Step(s *InjectSurface) {
	if r.done {
		return
	}
	if s.Pending() > 0 {
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
	case "checkpoint":
		if r.OnCheckpoint != nil {
			r.OnCheckpoint(st.Label)
		}
	case "move":
		s.InjectMove(st.X, st.Y)
	case "press":
		s.InjectPress(st.X, st.Y)
	case "release":
		s.InjectRelease(st.X, st.Y)
	case "click":
		s.InjectClick(st.X, st.Y)
	case "drag":
		s.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "leave":
		s.InjectLeave()
	case "dragover":
		s.InjectDragOver(st.X, st.Y)
	case "dragleave":
		s.InjectDragLeave()
	case "wheel":
		s.InjectWheel(st.X, st.Y, st.DX, st.DY)
	case "touchstart":
		s.InjectTouchStart(st.Touch, st.X, st.Y)
	case "touchmove":
		s.InjectTouchMove(st.Touch, st.X, st.Y)
	case "touchend":
		s.InjectTouchEnd(st.Touch, st.X, st.Y)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && s.Pending() == 0 {
		r.done = true
	}
}

// Run drives the script to completion, alternating runner steps with surface
// frames. Returns the number of frames consumed.
func (r *TestRunner) Run(s *InjectSurface) int {
	frames := 0
	for !r.done || s.Pending() > 0 {
		r.Step(s)
		s.Step()
		frames++
	}
	return frames
}
