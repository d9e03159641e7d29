package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mosberg/alchemy/internal/config"
	"github.com/mosberg/alchemy/internal/domain"
	"github.com/mosberg/alchemy/internal/identifier"
	"github.com/mosberg/alchemy/internal/loader"
	"github.com/mosberg/alchemy/internal/logger"
)

func writeContent(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	lager := `{"type":"alchemy:alcohol","id":"demo:coppercap_lager","container":"demo:can",
		"effects":[{"effect":"minecraft:haste","chance":1.0},{"effect":"minecraft:nausea","chance":0.0}]}`
	files := map[string]string{
		"containers/can.json":            `{"type":"alchemy:container","id":"demo:can"}`,
		"beverages/coppercap_lager.json": lager,
		"beverages/broken.json":          `{"type":"alchemy:alcohol","id":"demo:broken","container":"demo:can","effects":[]}`,
	}
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
	return root
}

func TestPrintSummary(t *testing.T) {
	result := loader.Load(context.Background(), writeContent(t), loader.WithLogger(logger.Discard()))

	var out bytes.Buffer
	printSummary(&out, result)

	text := out.String()
	assert.Contains(t, text, "Coppercap Lager")
	assert.Contains(t, text, "["+domain.ErrorKindEmptyEffectList+"]")
	assert.Contains(t, text, "beverages/broken.json")
}

func TestRunSimulation(t *testing.T) {
	result := loader.Load(context.Background(), writeContent(t), loader.WithLogger(logger.Discard()))
	seed := int64(3)

	var out bytes.Buffer
	err := runSimulation(&out, result.Catalog, identifier.MustParse("demo:coppercap_lager"), 10, &seed)
	require.NoError(t, err)

	text := out.String()
	assert.Contains(t, text, "fired 10/10")
	assert.Contains(t, text, "fired 0/10")
	assert.Contains(t, text, "returns demo:can")

	err = runSimulation(&out, result.Catalog, identifier.MustParse("demo:broken"), 1, &seed)
	assert.ErrorIs(t, err, domain.ErrDefinitionNotFound)
}

func TestBuildRegistry(t *testing.T) {
	reg, err := buildRegistry("")
	require.NoError(t, err)
	assert.True(t, reg.Has(identifier.MustParse("minecraft:haste")))

	path := filepath.Join(t.TempDir(), "effects.json")
	require.NoError(t, os.WriteFile(path, []byte(`["demo:tipsy"]`), 0644))
	reg, err = buildRegistry(path)
	require.NoError(t, err)
	assert.True(t, reg.Has(identifier.MustParse("demo:tipsy")))
	assert.True(t, reg.Has(identifier.MustParse("minecraft:haste")))

	_, err = buildRegistry(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestLoggerConfig(t *testing.T) {
	t.Run("nil config falls back to defaults", func(t *testing.T) {
		assert.Equal(t, logger.DefaultConfig(), loggerConfig(nil))
	})

	t.Run("dev turns on source locations", func(t *testing.T) {
		cfg := loggerConfig(&config.Config{LogLevel: "warn", LogFormat: "json", Environment: logger.EnvironmentDev})

		assert.Equal(t, "warn", cfg.Level)
		assert.True(t, cfg.IsJSON())
		assert.True(t, cfg.AddSource)
		assert.Equal(t, logger.DefaultServiceName, cfg.ServiceName)
		assert.Equal(t, version, cfg.Version)
	})

	t.Run("prod keeps source off unless asked", func(t *testing.T) {
		cfg := loggerConfig(&config.Config{LogLevel: "info", LogFormat: "text", Environment: "prod"})
		assert.False(t, cfg.AddSource)
		assert.Equal(t, "prod", cfg.Environment)

		cfg = loggerConfig(&config.Config{Environment: "prod", LogSource: true})
		assert.True(t, cfg.AddSource)
		assert.Equal(t, logger.LogLevelInfo, cfg.Level)
	})
}
