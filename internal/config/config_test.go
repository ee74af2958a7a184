// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Sigil Contributors

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sigil-dev/promptshape/internal/config"
	promptserr "github.com/sigil-dev/promptshape/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultValues(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.TargetChat, cfg.Render.Target)
	assert.Equal(t, config.FormatJSON, cfg.Output.Format)
}

func TestLoad_FromFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "promptshape.yaml")

	content := `
render:
  target: "text"
output:
  format: "yaml"
`
	err := os.WriteFile(cfgPath, []byte(content), 0o644)
	require.NoError(t, err)

	cfg, err := config.Load(cfgPath)
	require.NoError(t, err)
	assert.Equal(t, config.TargetText, cfg.Render.Target)
	assert.Equal(t, config.FormatYAML, cfg.Output.Format)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("PROMPTSHAPE_RENDER_TARGET", "text")

	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.TargetText, cfg.Render.Target)
}

func TestLoad_MissingFileFails(t *testing.T) {
	_, err := config.Load("/nonexistent/promptshape.yaml")
	require.Error(t, err)
	assert.True(t, promptserr.HasCode(err, promptserr.CodeConfigLoadReadFailure))
}

func TestValidate_CollectsAllErrors(t *testing.T) {
	cfg := &config.Config{
		Render: config.RenderConfig{Target: "binary"},
		Output: config.OutputConfig{Format: "xml"},
	}

	errs := cfg.Validate()
	require.Len(t, errs, 2)
	assert.Contains(t, errs[0].Error(), "render.target")
	assert.Contains(t, errs[1].Error(), "output.format")
}

func TestLoad_InvalidTargetFails(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "promptshape.yaml")

	content := `
render:
  target: "binary"
`
	err := os.WriteFile(cfgPath, []byte(content), 0o644)
	require.NoError(t, err)

	_, err = config.Load(cfgPath)
	require.Error(t, err)
	assert.True(t, promptserr.IsInvalidInput(err))
}
