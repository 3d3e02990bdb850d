// Package config layers defaults, an optional YAML file and SURPRISE_*
// environment variables into a single Config.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/julianstephens/surprise/internal/audio"
	"github.com/julianstephens/surprise/internal/constants"
	"github.com/julianstephens/surprise/internal/utils"
)

// Config keys.
const (
	KeyRecipient         = "recipient"
	KeySender            = "sender"
	KeyTarget            = "target"
	KeyTimezone          = "timezone"
	KeyVolume            = "volume"
	KeyAutoplay          = "autoplay"
	KeyMute              = "mute"
	KeyStrictTransitions = "strict_transitions"
	KeySampleRate        = "sample_rate"
	KeyContent           = "content"
)

type Config struct {
	Recipient         string  `mapstructure:"recipient"`
	Sender            string  `mapstructure:"sender"`
	Target            string  `mapstructure:"target"`
	Timezone          string  `mapstructure:"timezone"`
	Volume            float64 `mapstructure:"volume"`
	Autoplay          bool    `mapstructure:"autoplay"`
	Mute              bool    `mapstructure:"mute"`
	StrictTransitions bool    `mapstructure:"strict_transitions"`
	SampleRate        int     `mapstructure:"sample_rate"`
	Content           string  `mapstructure:"content"`

	// File is the config file that was read, empty when none was found.
	File string `mapstructure:"-"`
}

// Overrides carries flag values. Nil fields leave the layered value alone.
type Overrides struct {
	Content  string
	Volume   *float64
	Mute     bool
	Autoplay bool
	Strict   bool
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyRecipient, constants.DefaultRecipient)
	v.SetDefault(KeySender, constants.DefaultSender)
	v.SetDefault(KeyTarget, constants.DefaultTarget)
	v.SetDefault(KeyTimezone, constants.DefaultTimezone)
	v.SetDefault(KeyVolume, constants.DefaultVolume)
	v.SetDefault(KeyAutoplay, false)
	v.SetDefault(KeyMute, false)
	v.SetDefault(KeyStrictTransitions, false)
	v.SetDefault(KeySampleRate, audio.DefaultSampleRate)
	v.SetDefault(KeyContent, "")
}

// DefaultPath returns ~/.config/surprise/surprise.yaml with the home
// directory expanded.
func DefaultPath() string {
	return filepath.Join(ExpandHome(constants.DefaultConfigDir), constants.DefaultConfigFile)
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

// Load reads configuration. An empty path falls back to DefaultPath, and a
// missing default file is not an error. An explicit path must exist.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}
	path = ExpandHome(path)

	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	file := path
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case explicit:
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		case errors.As(err, &notFound), errors.Is(err, fs.ErrNotExist):
			file = ""
		default:
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	cfg.File = file
	cfg.Content = ExpandHome(cfg.Content)
	return &cfg, nil
}

// Apply layers flag values on top of the loaded configuration.
func (c *Config) Apply(o Overrides) {
	if o.Content != "" {
		c.Content = ExpandHome(o.Content)
	}
	if o.Volume != nil {
		c.Volume = *o.Volume
	}
	if o.Mute {
		c.Mute = true
	}
	if o.Autoplay {
		c.Autoplay = true
	}
	if o.Strict {
		c.StrictTransitions = true
	}
}

// Validate reports every invalid value at once.
func (c *Config) Validate() error {
	var errs []error

	if c.Volume < 0 || c.Volume > 1 {
		errs = append(errs, fmt.Errorf("volume must be between 0 and 1, got %g", c.Volume))
	}
	if c.SampleRate <= 0 {
		errs = append(errs, fmt.Errorf("sample_rate must be positive, got %d", c.SampleRate))
	}
	if _, err := utils.LoadLocation(c.Timezone); err != nil {
		errs = append(errs, fmt.Errorf("invalid timezone %q: %w", c.Timezone, err))
	}
	if _, err := time.Parse(time.RFC3339, c.Target); err != nil {
		errs = append(errs, fmt.Errorf("target must be RFC 3339, got %q", c.Target))
	}
	if strings.TrimSpace(c.Recipient) == "" {
		errs = append(errs, errors.New("recipient must not be empty"))
	}

	return errors.Join(errs...)
}

// TargetTime returns the countdown target in the configured timezone.
func (c *Config) TargetTime() (time.Time, error) {
	return utils.ParseTarget(c.Target, c.Timezone)
}
