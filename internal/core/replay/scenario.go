package replay

import (
	"errors"
	"fmt"
	"io"

	"github.com/zeusync/motion/internal/core/motion"
	"github.com/zeusync/motion/internal/core/physics"
	"gopkg.in/yaml.v3"
)

const defaultParticles = 100

// PoseRecord is the on-disk form of a pose.
type PoseRecord struct {
	X     float64 `json:"x" yaml:"x"`
	Y     float64 `json:"y" yaml:"y"`
	Theta float64 `json:"theta" yaml:"theta"`
}

func (r PoseRecord) Pose() physics.Pose { return physics.NewPose(r.X, r.Y, r.Theta) }

// Scenario describes an odometry replay: the motion model to use, where the
// particle cloud starts and the odometry readings to feed it.
type Scenario struct {
	Name      string        `json:"name" yaml:"name"`
	Motion    motion.Config `json:"motion" yaml:"motion"`
	Seed      uint64        `json:"seed" yaml:"seed"`
	Particles int           `json:"particles" yaml:"particles"`
	Workers   int           `json:"workers" yaml:"workers"`
	Initial   PoseRecord    `json:"initial" yaml:"initial"`
	Track     []PoseRecord  `json:"track" yaml:"track"`
}

// Validate validates the scenario
func (s *Scenario) Validate() error {
	if s.Particles <= 0 {
		return fmt.Errorf("particles must be positive, got %d", s.Particles)
	}
	if s.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", s.Workers)
	}
	if len(s.Track) == 0 {
		return errors.New("track is empty")
	}
	if err := s.Motion.Validate(); err != nil {
		return fmt.Errorf("motion: %w", err)
	}
	return nil
}

// Poses returns the odometry track as poses.
func (s *Scenario) Poses() []physics.Pose {
	poses := make([]physics.Pose, len(s.Track))
	for i, r := range s.Track {
		poses[i] = r.Pose()
	}
	return poses
}

// Cloud returns the initial particle cloud, every particle at the initial pose.
func (s *Scenario) Cloud() []physics.Pose {
	cloud := make([]physics.Pose, s.Particles)
	initial := s.Initial.Pose()
	for i := range cloud {
		cloud[i] = initial
	}
	return cloud
}

// LoadScenario loads a scenario from a YAML reader.
func LoadScenario(r io.Reader) (*Scenario, error) {
	s := Scenario{
		Motion:    motion.DefaultConfig(),
		Particles: defaultParticles,
	}
	if err := yaml.NewDecoder(r).Decode(&s); err != nil {
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}
