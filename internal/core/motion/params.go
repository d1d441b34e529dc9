package motion

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultDistanceThreshold is the translation below which a motion is treated
// as an in-place rotation.
const DefaultDistanceThreshold = 0.01

// Params configures a DifferentialDrive. See Probabilistic Robotics, table 5.6;
// the four coefficients are alpha1 to alpha4 there.
type Params struct {
	// RotationFromRotation is rotational noise per unit of rotation (alpha1).
	RotationFromRotation float64 `json:"rotation_from_rotation" yaml:"rotation_from_rotation"`
	// RotationFromTranslation is rotational noise per unit of squared translation (alpha2).
	RotationFromTranslation float64 `json:"rotation_from_translation" yaml:"rotation_from_translation"`
	// TranslationFromTranslation is translational noise per unit of squared translation (alpha3).
	TranslationFromTranslation float64 `json:"translation_from_translation" yaml:"translation_from_translation"`
	// TranslationFromRotation is translational noise per unit of rotation (alpha4).
	TranslationFromRotation float64 `json:"translation_from_rotation" yaml:"translation_from_rotation"`
	// DistanceThreshold is the distance at or below which the heading of the
	// translation is not trusted.
	DistanceThreshold float64 `json:"distance_threshold" yaml:"distance_threshold"`
}

// DefaultParams returns noiseless parameters with the default distance threshold.
func DefaultParams() Params {
	return Params{DistanceThreshold: DefaultDistanceThreshold}
}

// Validate checks that every coefficient is finite and non-negative.
func (p Params) Validate() error {
	return validateNonNegative(map[string]float64{
		"rotation_from_rotation":       p.RotationFromRotation,
		"rotation_from_translation":    p.RotationFromTranslation,
		"translation_from_translation": p.TranslationFromTranslation,
		"translation_from_rotation":    p.TranslationFromRotation,
		"distance_threshold":           p.DistanceThreshold,
	})
}

// OmniParams configures an Omnidirectional model.
type OmniParams struct {
	Params `yaml:",inline"`
	// StrafeFromTranslation is lateral noise per unit of squared translation (alpha5).
	StrafeFromTranslation float64 `json:"strafe_from_translation" yaml:"strafe_from_translation"`
}

func (p OmniParams) Validate() error {
	if err := p.Params.Validate(); err != nil {
		return err
	}
	return validateNonNegative(map[string]float64{
		"strafe_from_translation": p.StrafeFromTranslation,
	})
}

func validateNonNegative(values map[string]float64) error {
	var bad []string
	for name, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			bad = append(bad, fmt.Sprintf("%s=%v", name, v))
		}
	}
	if len(bad) == 0 {
		return nil
	}
	sort.Strings(bad)
	return fmt.Errorf("%w: must be finite and non-negative: %s", ErrConfiguration, strings.Join(bad, ", "))
}

const (
	ModelDifferential    = "differential"
	ModelOmnidirectional = "omnidirectional"
)

// Config selects and parameterizes a motion model. It is the shape used in
// YAML and JSON configuration files.
type Config struct {
	Model  string     `json:"model" yaml:"model"`
	Params OmniParams `json:"params" yaml:"params"`
}

// DefaultConfig returns a differential drive configuration with default params.
func DefaultConfig() Config {
	return Config{
		Model:  ModelDifferential,
		Params: OmniParams{Params: DefaultParams()},
	}
}

func (c *Config) Validate() error {
	switch c.Model {
	case ModelDifferential:
		return c.Params.Params.Validate()
	case ModelOmnidirectional:
		return c.Params.Validate()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownModel, c.Model)
	}
}

// Build constructs the configured model.
func (c *Config) Build(opts ...Option) (MotionModel, error) {
	var (
		model MotionModel
		err   error
	)
	switch c.Model {
	case ModelDifferential:
		model, err = NewDifferentialDrive(c.Params.Params, opts...)
	case ModelOmnidirectional:
		model, err = NewOmnidirectional(c.Params, opts...)
	default:
		err = fmt.Errorf("%w: %q", ErrUnknownModel, c.Model)
	}
	if err != nil {
		return nil, err
	}
	return model, nil
}

// LoadJSON loads config from a JSON reader. Omitted fields keep their defaults.
func LoadJSON(r io.Reader) (*Config, error) {
	c := DefaultConfig()
	if err := json.NewDecoder(r).Decode(&c); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// LoadYAML loads config from a YAML reader. Omitted fields keep their defaults.
func LoadYAML(r io.Reader) (*Config, error) {
	c := DefaultConfig()
	if err := yaml.NewDecoder(r).Decode(&c); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}
