package sink

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// Supported values for Config.Format and Config.Output.
const (
	FormatText = "text"
	FormatLog  = "log"

	OutputStdout = "stdout"
	OutputStderr = "stderr"

	// EnvPrefix is the prefix of environment variables read by LoadConfig,
	// e.g. SEQUENCE_SINK_FORMAT.
	EnvPrefix = "SEQUENCE_SINK"
)

// Config describes where and how triples are emitted.
type Config struct {
	// Output is "stdout", "stderr" or a file path opened in append mode.
	Output string `yaml:"output" mapstructure:"output" validate:"required"`
	// Format is "text" for plain rendering or "log" for zerolog events.
	Format string `yaml:"format" mapstructure:"format" validate:"oneof=text log"`
	// Level is the zerolog level used when Format is "log".
	Level string `yaml:"level" mapstructure:"level" validate:"oneof=trace debug info warn error"`
	// Prefix and Suffix wrap every emitted triple. Suffix is placed before
	// the trailing newlines of a line-oriented triple, so "[" and "]" turn
	// "1\n" into "[1]\n".
	Prefix string `yaml:"prefix" mapstructure:"prefix"`
	Suffix string `yaml:"suffix" mapstructure:"suffix"`
}

// ApplyDefaults fills unset fields.
func (c *Config) ApplyDefaults() {
	if c.Output == "" {
		c.Output = OutputStdout
	}
	if c.Format == "" {
		c.Format = FormatText
	}
	if c.Level == "" {
		c.Level = "info"
	}
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// Validate checks the config against its struct tags.
func (c *Config) Validate() error {
	if err := getValidator().Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// loaderConfig holds optional file overrides for LoadConfig.
type loaderConfig struct {
	configFile string
	envFile    string
}

// LoaderOption is a functional option for LoadConfig.
type LoaderOption func(*loaderConfig)

// WithConfigFile reads a YAML (or any viper-supported) config file first.
func WithConfigFile(path string) LoaderOption {
	return func(lc *loaderConfig) { lc.configFile = path }
}

// WithEnvFile loads a .env file into the process environment before
// environment variables are read. Variables already set are kept.
func WithEnvFile(path string) LoaderOption {
	return func(lc *loaderConfig) { lc.envFile = path }
}

// LoadConfig builds a Config from, in increasing precedence: defaults, the
// config file, then SEQUENCE_SINK_* environment variables (including those
// loaded from the .env file). The result has defaults applied and is
// validated.
func LoadConfig(opts ...LoaderOption) (Config, error) {
	var lc loaderConfig
	for _, opt := range opts {
		opt(&lc)
	}

	if lc.envFile != "" {
		if err := godotenv.Load(lc.envFile); err != nil {
			return Config{}, fmt.Errorf("sink: load env file %s: %w", lc.envFile, err)
		}
	}

	v := viper.New()
	v.SetDefault("output", OutputStdout)
	v.SetDefault("format", FormatText)
	v.SetDefault("level", "info")
	v.SetDefault("prefix", "")
	v.SetDefault("suffix", "")

	if lc.configFile != "" {
		v.SetConfigFile(lc.configFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("sink: read config file %s: %w", lc.configFile, err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("sink: unmarshal config: %w", err)
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// New builds the sink described by cfg. The caller owns the result and
// should Close it; closing is a no-op for stdout and stderr.
func New(cfg Config) (Closer, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	w, closer, err := openOutput(cfg.Output)
	if err != nil {
		return nil, err
	}

	var s Closer
	switch cfg.Format {
	case FormatText:
		s = &WriterSink{w: w, closer: closer}
	case FormatLog:
		level, err := zerolog.ParseLevel(cfg.Level)
		if err != nil {
			closeQuietly(closer)
			return nil, fmt.Errorf("%w: level %q", ErrInvalidConfig, cfg.Level)
		}
		logger := zerolog.New(w).With().Timestamp().Logger()
		s = &LogSink{logger: logger, level: level, closer: closer}
	default:
		closeQuietly(closer)
		return nil, fmt.Errorf("%w: format %q", ErrInvalidConfig, cfg.Format)
	}

	if cfg.Prefix != "" || cfg.Suffix != "" {
		s = &affixed{Closer: s, prefix: cfg.Prefix, suffix: cfg.Suffix}
	}
	return s, nil
}

func openOutput(output string) (io.Writer, io.Closer, error) {
	switch strings.ToLower(output) {
	case OutputStdout:
		return os.Stdout, nil, nil
	case OutputStderr:
		return os.Stderr, nil, nil
	}
	f, err := os.OpenFile(output, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("sink: open output %s: %w", output, err)
	}
	return f, f, nil
}

func closeQuietly(c io.Closer) {
	if c != nil {
		_ = c.Close()
	}
}
