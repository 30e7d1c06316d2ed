package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Settings keys.
const (
	GridSizeKey       = "grid-size"
	LexiconPathKey    = "lexicon-path"
	DefaultLexiconKey = "default-lexicon"
	DailySaltKey      = "daily-salt"
	DebugKey          = "debug"
)

// Config wraps viper; settings come from flags, WORDGRID_ environment
// variables, and an optional wordgrid.yaml config file, in that order
// of precedence.
type Config struct {
	v *viper.Viper
}

func DefaultConfig() *Config {
	v := viper.New()
	v.SetDefault(GridSizeKey, 10)
	v.SetDefault(LexiconPathKey, "./data")
	v.SetDefault(DefaultLexiconKey, "english")
	v.SetDefault(DailySaltKey, "wordgrid")
	v.SetDefault(DebugKey, false)
	return &Config{v: v}
}

// Load parses flags and the environment into the config.
func (c *Config) Load(args []string) error {
	if c.v == nil {
		*c = *DefaultConfig()
	}
	fs := pflag.NewFlagSet("wordgrid", pflag.ContinueOnError)
	fs.Int(GridSizeKey, 10, "the grid is this many squares on a side")
	fs.String(LexiconPathKey, "./data", "directory holding word lists")
	fs.String(DefaultLexiconKey, "english", "the word list to use")
	fs.String(DailySaltKey, "wordgrid", "salt for the daily seed derivation")
	fs.Bool(DebugKey, false, "debug logging")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := c.v.BindPFlags(fs); err != nil {
		return err
	}

	c.v.SetEnvPrefix("wordgrid")
	c.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.v.AutomaticEnv()

	c.v.SetConfigName("wordgrid")
	c.v.SetConfigType("yaml")
	c.v.AddConfigPath(".")
	if err := c.v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return err
		}
		log.Debug().Msg("no config file found; using flags/env/defaults")
	}
	return nil
}

func (c *Config) GetString(key string) string {
	return c.v.GetString(key)
}

func (c *Config) GetInt(key string) int {
	return c.v.GetInt(key)
}

func (c *Config) GetBool(key string) bool {
	return c.v.GetBool(key)
}

func (c *Config) Set(key string, value interface{}) {
	c.v.Set(key, value)
}

// AdjustRelativePaths makes the lexicon path absolute relative to the
// executable's directory, so the binary finds its data files no matter
// where it is invoked from.
func (c *Config) AdjustRelativePaths(basepath string) {
	p := c.GetString(LexiconPathKey)
	if !filepath.IsAbs(p) {
		c.v.Set(LexiconPathKey, filepath.Clean(filepath.Join(basepath, p)))
	}
}

// SanitizedSettings returns the settings for logging.
func (c *Config) SanitizedSettings() string {
	return fmt.Sprintf(
		"grid-size: %d lexicon-path: %v default-lexicon: %v debug: %v",
		c.GetInt(GridSizeKey), c.GetString(LexiconPathKey),
		c.GetString(DefaultLexiconKey), c.GetBool(DebugKey))
}
