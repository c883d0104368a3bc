package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prashantv/gostub"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"godis-dict/lib/logger"
)

func TestParse(t *testing.T) {
	src := "# engine selection\n" +
		"engine bst\n" +
		"initial-capacity 4096\n" +
		"load-factor 0.75\n" +
		"growth-rate oops\n" +
		"LOGLEVEL debug\n"
	p, err := parse(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, "bst", p.Engine)
	assert.Equal(t, 4096, p.InitialCapacity)
	assert.InDelta(t, 0.75, p.LoadFactor, 1e-9)
	// unparsable values keep their defaults
	assert.InDelta(t, 2.0, p.GrowthRate, 1e-9)
	assert.Equal(t, "debug", p.LogLevel)
	assert.Equal(t, 1024, p.MinCapacity)
}

func TestSetupConfigPropertiesTOML(t *testing.T) {
	stubs := gostub.Stub(&Properties, Default())
	defer stubs.Reset()

	path := filepath.Join(t.TempDir(), "dict.toml")
	content := "engine = \"hashtable\"\n" +
		"min-capacity = 17\n" +
		"small-growth-rate = 3.5\n" +
		"loglevel = \"warn\"\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	require.NoError(t, SetupConfigProperties(path))
	defer logger.SetLevel("info")
	assert.Equal(t, 17, Properties.MinCapacity)
	assert.InDelta(t, 3.5, Properties.SmallGrowthRate, 1e-9)
	assert.Equal(t, "warn", Properties.LogLevel)
	assert.InDelta(t, 0.60, Properties.LoadFactor, 1e-9)
}

func TestSetupConfigPropertiesMissingFile(t *testing.T) {
	stubs := gostub.Stub(&Properties, Default())
	defer stubs.Reset()
	before := Properties

	err := SetupConfigProperties(filepath.Join(t.TempDir(), "nope.conf"))
	require.Error(t, err)
	assert.Same(t, before, Properties)
}

func TestLoggerSettings(t *testing.T) {
	p := Default()
	p.LogLevel = "debug"
	s := p.LoggerSettings()
	assert.Equal(t, "debug", s.Level)
	assert.Empty(t, s.Path)

	p.LogFile = filepath.Join("var", "log", "dict.log")
	s = p.LoggerSettings()
	assert.Equal(t, filepath.Join("var", "log"), s.Path)
	assert.Equal(t, "dict", s.Name)
	assert.Equal(t, "log", s.Ext)
}
