package project

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/PatioPlan/internal/model"
)

func TestLoadAppConfig_MissingYieldsDefaults(t *testing.T) {
	cfg, err := LoadAppConfig(filepath.Join(t.TempDir(), "config.json"))
	require.NoError(t, err)
	assert.Equal(t, model.DefaultAppConfig(), cfg)
}

func TestSaveLoadAppConfig_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg", "config.json")

	cfg := model.DefaultAppConfig()
	cfg.DefaultSeed = 1234
	cfg.DefaultWeights.CrossJoints = 3
	cfg.RememberPlan("garden.json")
	require.NoError(t, SaveAppConfig(path, cfg))

	loaded, err := LoadAppConfig(path)
	require.NoError(t, err)
	assert.Equal(t, int64(1234), loaded.DefaultSeed)
	assert.Equal(t, 3.0, loaded.DefaultWeights.CrossJoints)
	assert.Equal(t, []string{"garden.json"}, loaded.RecentPlans)
}
