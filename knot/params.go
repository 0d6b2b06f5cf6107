package knot

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// ErrBadParams indicates simulation parameters that would break the
// integrator (non-positive mass or epsilon).
var ErrBadParams = errors.New("knot: mass and epsilon must be positive")

// SimulationParams holds the scalar configuration of the relaxation
// engine. All force laws are power functions of Euclidean distance;
// exponents and scales are configuration, never hardcoded.
type SimulationParams struct {
	// StickLength is the nominal segment length prior to relaxation; the
	// default step and proximity distances derive from it.
	StickLength float64 `yaml:"stick_length"`
	// DMax is the maximum distance a bead may travel per step.
	DMax float64 `yaml:"d_max"`
	// DClose is the closest any two non-adjacent segments may approach
	// before the offending bead is locked. Keep it larger than DMax.
	DClose float64 `yaml:"d_close"`
	// Mass is the mass of each bead.
	Mass float64 `yaml:"mass"`
	// Damping scales velocity each step.
	Damping float64 `yaml:"damping"`
	// AnchorWeight scales the restoring pull toward the anchor curve;
	// zero disables anchoring.
	AnchorWeight float64 `yaml:"anchor_weight"`
	// Beta and H shape the neighbor attraction force h·r^(1+β).
	Beta float64 `yaml:"beta"`
	H    float64 `yaml:"h"`
	// Alpha and K shape the non-neighbor repulsion force k·r^−(2+α).
	Alpha float64 `yaml:"alpha"`
	K     float64 `yaml:"k"`
	// Epsilon is the distance below which a pairwise force contribution
	// is skipped entirely to avoid normalizing a near-zero vector.
	Epsilon float64 `yaml:"epsilon"`
}

// DefaultSimulationParams returns the reference parameter set.
func DefaultSimulationParams() SimulationParams {
	const stick = 0.25
	return SimulationParams{
		StickLength:  stick,
		DMax:         stick * 0.025,
		DClose:       stick * 0.25,
		Mass:         1.0,
		Damping:      0.25,
		AnchorWeight: 0.01,
		Beta:         1.0,
		H:            1.0,
		Alpha:        4.0,
		K:            1.0,
		Epsilon:      0.001,
	}
}

// Validate reports ErrBadParams if the parameters would break integration.
func (p SimulationParams) Validate() error {
	if p.Mass <= 0 || p.Epsilon <= 0 {
		return ErrBadParams
	}

	return nil
}

// LoadParams reads a YAML parameter preset, starting from the defaults so
// a preset may override only the fields it cares about.
func LoadParams(r io.Reader) (SimulationParams, error) {
	p := DefaultSimulationParams()
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&p); err != nil {
		return SimulationParams{}, fmt.Errorf("knot: decoding params: %w", err)
	}
	if err := p.Validate(); err != nil {
		return SimulationParams{}, err
	}

	return p, nil
}
