package column

import (
	"encoding/json"
	"fmt"
	"os"
)

// Section represents a rectangular reinforced concrete column section.
// The consistent unit system of the reference parameters is tonf and cm
// (E in tonf/cm², dimensions in cm); moments come out in tonf-m.
//
// Reinforcement is described by horizontal bar lines distributed uniformly
// between the covers; line 0 sits at the bottom extreme, line n-1 at the
// top extreme.
type Section struct {
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`

	// Geometry (cm)
	Width  float64 `json:"width"`    // b - section width
	Height float64 `json:"high"`     // h - overall section depth
	Cover  float64 `json:"covering"` // concrete cover to bar line centroid

	// Material properties
	Es        float64 `json:"elastic_module"`                // Steel elastic modulus (tonf/cm²)
	Fy        float64 `json:"yield_strength"`                // Steel yield strength (tonf/cm²)
	EpsilonCU float64 `json:"ultimate_deformation_concrete"` // Ultimate concrete strain
	Fc        float64 `json:"concrete_compressive_stress"`   // Concrete compressive strength (tonf/cm²)
	Alpha     float64 `json:"alpha"`                         // Stress block intensity factor
	Beta      float64 `json:"beta"`                          // Stress block depth factor

	// Reinforcement layout (parallel, one entry per bar line)
	BarsPerLine  []int     `json:"bars_per_line"`
	BarsDiameter []float64 `json:"bars_diameter"` // cm
}

// LoadFromFile loads a column section definition from a JSON file
func LoadFromFile(filepath string) (*Section, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, err
	}

	var sec Section
	if err := json.Unmarshal(data, &sec); err != nil {
		return nil, err
	}

	if err := sec.Validate(); err != nil {
		return nil, err
	}

	return &sec, nil
}

// EffectiveDepth returns d = h - cover, measured from the extreme
// compression fiber to the far bar line.
func (s *Section) EffectiveDepth() float64 {
	return s.Height - s.Cover
}

// Validate checks the section definition for configuration errors
func (s *Section) Validate() error {
	if s.Width <= 0 {
		return &ConfigError{"width must be positive"}
	}
	if s.Height <= 0 {
		return &ConfigError{"height must be positive"}
	}
	if s.Cover <= 0 {
		return &ConfigError{"covering must be positive"}
	}
	if s.Cover >= s.Height/2 {
		return &ConfigError{fmt.Sprintf("covering %.2f must be less than half the section height %.2f", s.Cover, s.Height)}
	}
	if s.Es <= 0 {
		return &ConfigError{"elastic modulus must be positive"}
	}
	if s.Fy <= 0 {
		return &ConfigError{"yield strength must be positive"}
	}
	if s.EpsilonCU <= 0 {
		return &ConfigError{"ultimate concrete strain must be positive"}
	}
	if s.Fc <= 0 {
		return &ConfigError{"concrete compressive stress must be positive"}
	}
	if s.Alpha <= 0 || s.Alpha > 1 {
		return &ConfigError{fmt.Sprintf("alpha %.3f must be in (0, 1]", s.Alpha)}
	}
	if s.Beta <= 0 || s.Beta > 1 {
		return &ConfigError{fmt.Sprintf("beta %.3f must be in (0, 1]", s.Beta)}
	}
	if len(s.BarsPerLine) == 0 {
		return &ConfigError{"section must have at least one reinforcement line"}
	}
	if len(s.BarsPerLine) != len(s.BarsDiameter) {
		return &ConfigError{fmt.Sprintf("bars_per_line has %d entries but bars_diameter has %d", len(s.BarsPerLine), len(s.BarsDiameter))}
	}
	for i, count := range s.BarsPerLine {
		if count <= 0 {
			return &ConfigError{fmt.Sprintf("reinforcement line %d must have a positive bar count", i+1)}
		}
		if s.BarsDiameter[i] <= 0 {
			return &ConfigError{fmt.Sprintf("reinforcement line %d must have a positive bar diameter", i+1)}
		}
	}
	return nil
}

// ConfigError reports an invalid section definition, detected at
// construction time
type ConfigError struct {
	msg string
}

func (e *ConfigError) Error() string {
	return e.msg
}

// DomainError reports an invalid numerical domain reached while sweeping
// the neutral axis
type DomainError struct {
	msg string
}

func (e *DomainError) Error() string {
	return e.msg
}
