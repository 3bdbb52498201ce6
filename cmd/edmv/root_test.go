package main

import (
	"testing"

	"github.com/mattgleeson/edmv/pkg/edmv/plan"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootFlagsRegistered(t *testing.T) {
	for _, name := range []string{"force", "delete", "git", "dry-run", "marker", "output", "json"} {
		assert.NotNil(t, rootCmd.Flags().Lookup(name), "missing flag %q", name)
	}
	for _, name := range []string{"config", "quiet", "verbose"} {
		assert.NotNil(t, rootCmd.PersistentFlags().Lookup(name), "missing persistent flag %q", name)
	}
}

func TestRootShorthands(t *testing.T) {
	assert.Equal(t, "f", rootCmd.Flags().Lookup("force").Shorthand)
	assert.Equal(t, "n", rootCmd.Flags().Lookup("dry-run").Shorthand)
	assert.Equal(t, "g", rootCmd.Flags().Lookup("git").Shorthand)
}

func TestPlanOptions_EmptyMarker(t *testing.T) {
	viper.Set("marker", "empty")
	viper.Set("force", true)
	viper.Set("delete", false)
	t.Cleanup(viper.Reset)

	opts := planOptions()
	assert.Equal(t, plan.MarkerEmptyLine, opts.Marker)
	assert.True(t, opts.Force)
	assert.False(t, opts.Delete)
}

func TestPlanOptions_PrefixMarker(t *testing.T) {
	viper.Set("marker", "#")
	t.Cleanup(viper.Reset)

	opts := planOptions()
	assert.Equal(t, plan.MarkerPrefix, opts.Marker)
	assert.Equal(t, "#", opts.Prefix)
}

func TestBuildServices_Default(t *testing.T) {
	viper.Set("git", false)
	t.Cleanup(viper.Reset)

	deleter, mover, err := buildServices()
	require.NoError(t, err)
	assert.NotNil(t, deleter)
	assert.NotNil(t, mover)
}

func TestSubcommandsRegistered(t *testing.T) {
	names := map[string]bool{}
	for _, cmd := range rootCmd.Commands() {
		names[cmd.Name()] = true
	}
	assert.True(t, names["version"])
	assert.True(t, names["config"])
	assert.True(t, names["history"])
}

func TestTruncateString(t *testing.T) {
	assert.Equal(t, "short", truncateString("short", 10))
	assert.Equal(t, "exactly", truncateString("exactly", 7))
	assert.Equal(t, "long...", truncateString("long string", 7))
	assert.Equal(t, "ab", truncateString("abcdef", 2))
}
