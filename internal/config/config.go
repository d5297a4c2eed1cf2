// Package config loads the section, load case and logging settings from an
// optional YAML file, a .env file and ACIBEAM_ environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/alexiusacademia/acibeam/internal/design"
	"github.com/alexiusacademia/acibeam/internal/section"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment overrides, e.g. ACIBEAM_SECTION_B.
const EnvPrefix = "ACIBEAM"

// Config wraps the resolved settings.
type Config struct {
	v *viper.Viper
}

// Load reads cfgFile, or acibeam.yaml from the working directory when cfgFile
// is empty. A missing default file is not an error; a missing explicit one is.
func Load(cfgFile string) (*Config, error) {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			return nil, fmt.Errorf("load .env: %w", err)
		}
	}

	v := viper.New()
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName("acibeam")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}
	return &Config{v: v}, nil
}

func setDefaults(v *viper.Viper) {
	def := design.Defaults()

	v.SetDefault("section.b", 30.0)
	v.SetDefault("section.h", 50.0)
	v.SetDefault("section.fc", 28.0)
	v.SetDefault("section.fy", 420.0)
	v.SetDefault("section.cover", 4.0)

	v.SetDefault("loads.mu_pos", def.MuPos)
	v.SetDefault("loads.mu_neg", def.MuNeg)
	v.SetDefault("loads.vu", def.Vu)
	v.SetDefault("loads.tu", def.Tu)
	// loads.vu_torsion falls back to loads.vu

	v.SetDefault("detailing.n_legs", def.NLegs)
	v.SetDefault("detailing.stirrup_bar", def.StirrupBar)
	v.SetDefault("detailing.n_bars_torsion", def.NBarsTorsion)

	v.SetDefault("log.debug", false)
	v.SetDefault("log.file", "")
}

// Set overrides a key, used for explicitly given command line flags.
func (c *Config) Set(key string, value any) {
	c.v.Set(key, value)
}

// FileUsed returns the config file that was read, empty if none.
func (c *Config) FileUsed() string {
	return c.v.ConfigFileUsed()
}

func (c *Config) Debug() bool     { return c.v.GetBool("log.debug") }
func (c *Config) LogFile() string { return c.v.GetString("log.file") }

// Section builds the validated section.
func (c *Config) Section() (section.Section, error) {
	return section.New(
		c.v.GetFloat64("section.b"),
		c.v.GetFloat64("section.h"),
		c.v.GetFloat64("section.fc"),
		c.v.GetFloat64("section.fy"),
		c.v.GetFloat64("section.cover"),
	)
}

// DesignInputs builds the validated load case.
func (c *Config) DesignInputs() (design.Inputs, error) {
	in := design.Inputs{
		MuPos:        c.v.GetFloat64("loads.mu_pos"),
		MuNeg:        c.v.GetFloat64("loads.mu_neg"),
		Vu:           c.v.GetFloat64("loads.vu"),
		Tu:           c.v.GetFloat64("loads.tu"),
		NLegs:        c.v.GetInt("detailing.n_legs"),
		StirrupBar:   c.v.GetString("detailing.stirrup_bar"),
		NBarsTorsion: c.v.GetInt("detailing.n_bars_torsion"),
	}
	in.VuTorsion = in.Vu
	if c.v.IsSet("loads.vu_torsion") {
		in.VuTorsion = c.v.GetFloat64("loads.vu_torsion")
	}

	if err := in.Validate(); err != nil {
		return design.Inputs{}, err
	}
	return in, nil
}
