package injector

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeusync/motion/internal/core/motion"
	"github.com/zeusync/motion/internal/core/observability/log"
	"github.com/zeusync/motion/internal/core/replay"
)

func TestInitializeReplayer(t *testing.T) {
	scenario := &replay.Scenario{
		Motion:    motion.DefaultConfig(),
		Seed:      3,
		Particles: 16,
		Track: []replay.PoseRecord{
			{X: 0, Y: 0, Theta: 0},
			{X: 2, Y: 0, Theta: 0},
		},
	}
	require.NoError(t, scenario.Validate())

	r, err := InitializeReplayer(scenario, log.LevelSilent)
	require.NoError(t, err)

	cloud := scenario.Cloud()
	require.NoError(t, r.Run(context.Background(), scenario.Poses(), cloud))
	for _, p := range cloud {
		assert.InDelta(t, 2, p.X(), 1e-9)
	}
}

func TestInitializeReplayer_InvalidModel(t *testing.T) {
	scenario := &replay.Scenario{Motion: motion.Config{Model: "legged"}}
	_, err := InitializeReplayer(scenario, log.LevelSilent)
	require.ErrorIs(t, err, motion.ErrUnknownModel)
}
