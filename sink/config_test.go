package sink_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-stream-utils/sink"
)

func TestConfigApplyDefaults(t *testing.T) {
	t.Parallel()

	var cfg sink.Config
	cfg.ApplyDefaults()
	assert.Equal(t, sink.OutputStdout, cfg.Output)
	assert.Equal(t, sink.FormatText, cfg.Format)
	assert.Equal(t, "info", cfg.Level)
	assert.NoError(t, cfg.Validate())
}

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cfg     sink.Config
		wantErr bool
	}{
		{name: "text", cfg: sink.Config{Output: "stdout", Format: "text", Level: "info"}},
		{name: "log", cfg: sink.Config{Output: "stderr", Format: "log", Level: "debug"}},
		{name: "unknown format", cfg: sink.Config{Output: "stdout", Format: "xml", Level: "info"}, wantErr: true},
		{name: "unknown level", cfg: sink.Config{Output: "stdout", Format: "log", Level: "loud"}, wantErr: true},
		{name: "missing output", cfg: sink.Config{Format: "text", Level: "info"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.cfg.Validate()
			if tt.wantErr {
				require.ErrorIs(t, err, sink.ErrInvalidConfig)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := sink.LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, sink.OutputStdout, cfg.Output)
	assert.Equal(t, sink.FormatText, cfg.Format)
}

func TestLoadConfigFileThenEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sink.yml")
	require.NoError(t, os.WriteFile(path, []byte("format: log\nlevel: warn\nprefix: \"> \"\n"), 0o600))
	t.Setenv("SEQUENCE_SINK_LEVEL", "error")

	cfg, err := sink.LoadConfig(sink.WithConfigFile(path))
	require.NoError(t, err)
	assert.Equal(t, sink.FormatLog, cfg.Format)
	assert.Equal(t, "error", cfg.Level, "environment should override the file")
	assert.Equal(t, "> ", cfg.Prefix)
}

func TestLoadConfigEnvFile(t *testing.T) {
	dir := t.TempDir()
	envPath := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envPath, []byte("SEQUENCE_SINK_SUFFIX=!\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("SEQUENCE_SINK_SUFFIX") })

	cfg, err := sink.LoadConfig(sink.WithEnvFile(envPath))
	require.NoError(t, err)
	assert.Equal(t, "!", cfg.Suffix)
}

func TestLoadConfigMissingFiles(t *testing.T) {
	_, err := sink.LoadConfig(sink.WithConfigFile(filepath.Join(t.TempDir(), "nope.yml")))
	require.Error(t, err)

	_, err = sink.LoadConfig(sink.WithEnvFile(filepath.Join(t.TempDir(), "nope.env")))
	require.Error(t, err)
}

func TestLoadConfigInvalid(t *testing.T) {
	t.Setenv("SEQUENCE_SINK_FORMAT", "xml")
	_, err := sink.LoadConfig()
	require.ErrorIs(t, err, sink.ErrInvalidConfig)
}

func TestNewFileTextSink(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out.txt")
	s, err := sink.New(sink.Config{Output: path, Prefix: "[", Suffix: "]"})
	require.NoError(t, err)
	require.NoError(t, s.Emit("", 1, ""))
	require.NoError(t, s.Emit("#", 2, "\n"))
	require.NoError(t, s.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[1][#2]\n", string(data))
}

func TestNewAffixesKeepLines(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "lines.txt")
	s, err := sink.New(sink.Config{Output: path, Prefix: "[", Suffix: "]"})
	require.NoError(t, err)
	require.NoError(t, s.Emit("", 1, "\n"))
	require.NoError(t, s.Emit("- ", 2, ";\n\n"))
	require.NoError(t, s.Emit("", 3, ""))
	require.NoError(t, s.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[1]\n[- 2;]\n\n[3]", string(data))
}

func TestNewFileLogSink(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out.log")
	s, err := sink.New(sink.Config{Output: path, Format: sink.FormatLog, Level: "warn"})
	require.NoError(t, err)
	require.NoError(t, s.Emit("", "x", "\n"))
	require.NoError(t, s.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.Contains(data, []byte(`"level":"warn"`)), string(data))
	assert.True(t, bytes.Contains(data, []byte(`"message":"x"`)), string(data))
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	t.Parallel()

	_, err := sink.New(sink.Config{Format: "xml"})
	require.ErrorIs(t, err, sink.ErrInvalidConfig)
}

func TestNewUnopenableOutput(t *testing.T) {
	t.Parallel()

	_, err := sink.New(sink.Config{Output: filepath.Join(t.TempDir(), "missing", "out.txt")})
	require.Error(t, err)
}
