package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestSetupWritesToFile(t *testing.T) {
	dir := t.TempDir()
	err := Setup(&Settings{Path: dir, Name: "dict", Ext: "log", Level: "debug"})
	require.NoError(t, err)
	defer func() {
		require.NoError(t, Reset())
		SetLevel("info")
	}()

	require.True(t, Enabled(zapcore.DebugLevel))
	Debugf("rehash %d -> %d", 1021, 5101)
	Info("hello")
	require.NoError(t, Sync())

	data, err := os.ReadFile(filepath.Join(dir, "dict.log"))
	require.NoError(t, err)
	require.Contains(t, string(data), "rehash 1021 -> 5101")
	require.Contains(t, string(data), "hello")
}

func TestSetLevelIgnoresGarbage(t *testing.T) {
	SetLevel("warn")
	defer SetLevel("info")
	SetLevel("not-a-level")
	require.False(t, Enabled(zapcore.InfoLevel))
	require.True(t, Enabled(zapcore.WarnLevel))
}

func openHandles(t *testing.T, name string) int {
	fds, err := os.ReadDir("/proc/self/fd")
	if err != nil {
		t.Skip("no /proc/self/fd")
	}
	n := 0
	for _, fd := range fds {
		target, err := os.Readlink(filepath.Join("/proc/self/fd", fd.Name()))
		if err == nil && filepath.Base(target) == name {
			n++
		}
	}
	return n
}

func TestSetupClosesPreviousFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Setup(&Settings{Path: dir, Name: "first"}))
	defer func() {
		require.NoError(t, Reset())
	}()
	first := writer()
	require.NotNil(t, first)
	Info("to first")
	require.NoError(t, Sync())
	require.Equal(t, 1, openHandles(t, "first.log"))

	require.NoError(t, Setup(&Settings{Path: dir, Name: "second"}))
	require.NotSame(t, first, writer())
	Info("to second")
	require.NoError(t, Sync())
	require.Equal(t, 0, openHandles(t, "first.log"))
	require.Equal(t, 1, openHandles(t, "second.log"))

	data, err := os.ReadFile(filepath.Join(dir, "first.log"))
	require.NoError(t, err)
	require.Contains(t, string(data), "to first")
	require.NotContains(t, string(data), "to second")

	require.NoError(t, Reset())
	require.Nil(t, writer())
	require.Equal(t, 0, openHandles(t, "second.log"))
}
