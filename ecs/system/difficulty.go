package system

import (
	"fmt"
	"math"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/skyclimb/prefabs"
)

// DifficultyCurve maps the best height reached to a difficulty level.
type DifficultyCurve interface {
	Difficulty(maxHeight float64) (int, error)
}

// StepCurve raises difficulty by one every Step world units.
type StepCurve struct {
	Step float64
}

func (c StepCurve) Difficulty(maxHeight float64) (int, error) {
	if c.Step <= 0 || maxHeight <= 0 || math.IsInf(maxHeight, 0) {
		return 0, nil
	}
	return int(math.Floor(maxHeight / c.Step)), nil
}

// ScriptCurve evaluates a tengo script that reads max_height and assigns
// difficulty.
type ScriptCurve struct {
	name     string
	compiled *tengo.Compiled
}

func NewScriptCurve(name string) (*ScriptCurve, error) {
	src, err := prefabs.LoadScript(name)
	if err != nil {
		return nil, fmt.Errorf("difficulty script %q: %w", name, err)
	}

	script := tengo.NewScript(src)
	_ = script.Add("max_height", 0.0)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("difficulty script %q: compile: %w", name, err)
	}

	// globals only exist after a run
	curve := &ScriptCurve{name: name, compiled: compiled}
	if _, err := curve.Difficulty(0); err != nil {
		return nil, err
	}
	return curve, nil
}

func (c *ScriptCurve) Difficulty(maxHeight float64) (int, error) {
	if math.IsInf(maxHeight, 0) {
		return 0, nil
	}
	if err := c.compiled.Set("max_height", maxHeight); err != nil {
		return 0, fmt.Errorf("difficulty script %q: %w", c.name, err)
	}
	if err := c.compiled.Run(); err != nil {
		return 0, fmt.Errorf("difficulty script %q: run: %w", c.name, err)
	}
	if !c.compiled.IsDefined("difficulty") {
		return 0, fmt.Errorf("difficulty script %q: difficulty is never assigned", c.name)
	}
	return c.compiled.Get("difficulty").Int(), nil
}

// NewDifficultyCurve returns the scripted curve when one is configured and
// the step curve otherwise.
func NewDifficultyCurve(spec prefabs.DifficultySpec) (DifficultyCurve, error) {
	if spec.Script == "" {
		return StepCurve{Step: spec.Step}, nil
	}
	curve, err := NewScriptCurve(spec.Script)
	if err != nil {
		return nil, err
	}
	return curve, nil
}
