package motion

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParamsValidate(t *testing.T) {
	tests := []struct {
		name    string
		params  Params
		wantErr string
	}{
		{name: "defaults", params: DefaultParams()},
		{name: "all set", params: Params{0.1, 0.2, 0.3, 0.4, 0.05}},
		{name: "zero threshold", params: Params{0.1, 0.1, 0.1, 0.1, 0}},
		{name: "negative alpha2", params: Params{0.1, -0.2, 0.1, 0.1, 0.01}, wantErr: "rotation_from_translation=-0.2"},
		{name: "negative threshold", params: Params{DistanceThreshold: -1}, wantErr: "distance_threshold=-1"},
		{name: "infinite alpha3", params: Params{TranslationFromTranslation: math.Inf(1)}, wantErr: "translation_from_translation=+Inf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.params.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, ErrConfiguration)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestParamsValidate_ListsEveryField(t *testing.T) {
	err := Params{-1, -1, 0, 0, 0}.Validate()
	require.ErrorIs(t, err, ErrConfiguration)
	assert.Contains(t, err.Error(), "rotation_from_rotation=-1, rotation_from_translation=-1")
}

func TestLoadYAML(t *testing.T) {
	t.Run("differential with default threshold", func(t *testing.T) {
		cfg, err := LoadYAML(strings.NewReader(`
model: differential
params:
  rotation_from_rotation: 0.1
  rotation_from_translation: 0.2
  translation_from_translation: 0.3
  translation_from_rotation: 0.4
`))
		require.NoError(t, err)
		assert.Equal(t, Params{0.1, 0.2, 0.3, 0.4, DefaultDistanceThreshold}, cfg.Params.Params)

		m, err := cfg.Build()
		require.NoError(t, err)
		require.IsType(t, &DifferentialDrive{}, m)
		assert.Equal(t, cfg.Params.Params, m.(*DifferentialDrive).Params())
	})

	t.Run("omnidirectional", func(t *testing.T) {
		cfg, err := LoadYAML(strings.NewReader(`
model: omnidirectional
params:
  strafe_from_translation: 0.5
  distance_threshold: 0.2
`))
		require.NoError(t, err)
		assert.Equal(t, 0.5, cfg.Params.StrafeFromTranslation)
		assert.Equal(t, 0.2, cfg.Params.DistanceThreshold)

		m, err := cfg.Build()
		require.NoError(t, err)
		require.IsType(t, &Omnidirectional{}, m)
	})

	t.Run("model defaults to differential", func(t *testing.T) {
		cfg, err := LoadYAML(strings.NewReader("params:\n  rotation_from_rotation: 1\n"))
		require.NoError(t, err)
		assert.Equal(t, ModelDifferential, cfg.Model)
	})

	t.Run("negative coefficient", func(t *testing.T) {
		_, err := LoadYAML(strings.NewReader("params:\n  translation_from_rotation: -0.4\n"))
		require.ErrorIs(t, err, ErrConfiguration)
	})

	t.Run("unknown model", func(t *testing.T) {
		_, err := LoadYAML(strings.NewReader("model: ackermann\n"))
		require.ErrorIs(t, err, ErrUnknownModel)
	})
}

func TestLoadJSON(t *testing.T) {
	cfg, err := LoadJSON(strings.NewReader(`{
		"model": "omnidirectional",
		"params": {"rotation_from_rotation": 0.1, "strafe_from_translation": 0.05}
	}`))
	require.NoError(t, err)
	assert.Equal(t, 0.1, cfg.Params.RotationFromRotation)
	assert.Equal(t, 0.05, cfg.Params.StrafeFromTranslation)
	assert.Equal(t, DefaultDistanceThreshold, cfg.Params.DistanceThreshold)

	_, err = LoadJSON(strings.NewReader(`{"model": "differential", "params": {"distance_threshold": -2}}`))
	require.ErrorIs(t, err, ErrConfiguration)

	bad := Config{Model: "tracked"}
	_, err = bad.Build()
	require.ErrorIs(t, err, ErrUnknownModel)
}
