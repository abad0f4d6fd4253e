package system

import (
	"fmt"

	"github.com/d5/tengo/v2"
)

// DifficultyScaler evaluates a tengo expression of `kills` into an enemy
// speed multiplier. A nil scaler always yields 1.
type DifficultyScaler struct {
	expr     string
	compiled *tengo.Compiled
}

// NewDifficultyScaler compiles expr. An empty expr returns a nil scaler.
func NewDifficultyScaler(expr string) (*DifficultyScaler, error) {
	if expr == "" {
		return nil, nil
	}

	script := tengo.NewScript([]byte("scale := " + expr))
	if err := script.Add("kills", 0); err != nil {
		return nil, fmt.Errorf("failed to bind kills: %w", err)
	}
	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("failed to compile speed scale %q: %w", expr, err)
	}

	return &DifficultyScaler{expr: expr, compiled: compiled}, nil
}

// SpeedScale returns the multiplier for the given kill count
func (s *DifficultyScaler) SpeedScale(kills int) (float64, error) {
	if s == nil {
		return 1, nil
	}

	if err := s.compiled.Set("kills", kills); err != nil {
		return 1, fmt.Errorf("failed to set kills: %w", err)
	}
	if err := s.compiled.Run(); err != nil {
		return 1, fmt.Errorf("failed to run speed scale %q: %w", s.expr, err)
	}

	scale := s.compiled.Get("scale").Float()
	if scale <= 0 {
		return 1, fmt.Errorf("speed scale %q gave %v for %d kills", s.expr, scale, kills)
	}
	return scale, nil
}
