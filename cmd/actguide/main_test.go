package main

import (
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gubarz/actguide/internal/config"
)

func resetConfig(t *testing.T) {
	t.Helper()
	viper.Reset()
	config.SetDefaults()
	t.Cleanup(viper.Reset)
}

func TestPathArgUpdatesConfig(t *testing.T) {
	resetConfig(t)

	assert.Equal(t, ".", pathArg(nil, 0))
	assert.Equal(t, "/srv/guides", pathArg([]string{"1_1_1", "/srv/guides"}, 1))
	assert.Equal(t, "/srv/guides", config.GetPath())
	assert.Equal(t, "/srv/guides", pathArg(nil, 0))
}

func TestRunLookupMiss(t *testing.T) {
	resetConfig(t)
	dir := guideDir(t)

	err := runLookup(lookupCmd, []string{"9_9_9", dir})
	require.Error(t, err)
	assert.Equal(t, "no layout for zone 9_9_9", err.Error())

	require.NoError(t, lookupCmd.Flags().Set("act", "2"))
	t.Cleanup(func() { lookupCmd.Flags().Set("act", "0") })

	// 1_1_1 is parsed, but in act 1
	err = runLookup(lookupCmd, []string{"1_1_1", dir})
	require.Error(t, err)
	assert.Equal(t, "no layout for zone 1_1_1 in act 2", err.Error())
}

func TestRunLookupBadPath(t *testing.T) {
	resetConfig(t)

	err := runLookup(lookupCmd, []string{"1_1_1", filepath.Join(t.TempDir(), "missing")})
	assert.ErrorContains(t, err, "path error")
}

func TestRunGuideInvalidAct(t *testing.T) {
	resetConfig(t)
	dir := guideDir(t)

	for _, act := range []string{"abc", "-1", "1.5"} {
		err := runGuide(guideCmd, []string{act, dir})
		assert.ErrorContains(t, err, "invalid act", act)
	}
}

func TestRunGuideMissing(t *testing.T) {
	resetConfig(t)

	err := runGuide(guideCmd, []string{"4", guideDir(t)})
	assert.ErrorContains(t, err, "load act 4 guide")
}

func TestPrepareCopyFlag(t *testing.T) {
	resetConfig(t)

	require.NoError(t, rootCmd.ParseFlags([]string{"--copy"}))
	t.Cleanup(func() { rootCmd.PersistentFlags().Set("copy", "false") })

	require.NoError(t, prepare(rootCmd, nil))
	assert.Equal(t, "copy", config.GetOutput())
}
