// Package config loads chiroforge settings from defaults, an optional
// chiroforge.yaml and CHIROFORGE_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Default clinic header printed on reports.
const (
	DefaultClinicName    = "AUTO ACCIDENT & CHIROPRACTIC CENTER"
	DefaultClinicAddress = "2409 E. Plaza Blvd. National City, CA 91950"
	DefaultClinicPhone   = "Phone: (619) 434-7333 Fax: (619) 434-7399"
)

type Clinic struct {
	Name    string `mapstructure:"name"`
	Address string `mapstructure:"address"`
	Phone   string `mapstructure:"phone"`
}

type Log struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	File   string `mapstructure:"file"`
}

type ROF struct {
	MaxGroups int `mapstructure:"max_groups"`
}

type Report struct {
	PageWidth int `mapstructure:"page_width"`
}

type Config struct {
	DataDir    string `mapstructure:"data_dir"`
	ActiveYear int    `mapstructure:"active_year"`
	Clinic     Clinic `mapstructure:"clinic"`
	Log        Log    `mapstructure:"log"`
	ROF        ROF    `mapstructure:"rof"`
	Report     Report `mapstructure:"report"`
}

// Load reads settings. When path is empty, chiroforge.yaml is looked up in
// the working directory and a missing file is not an error.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("data_dir", "./patients")
	v.SetDefault("active_year", time.Now().Year())
	v.SetDefault("clinic.name", DefaultClinicName)
	v.SetDefault("clinic.address", DefaultClinicAddress)
	v.SetDefault("clinic.phone", DefaultClinicPhone)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.file", "")
	v.SetDefault("rof.max_groups", 4)
	v.SetDefault("report.page_width", 850)

	v.SetEnvPrefix("CHIROFORGE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		v.SetConfigName("chiroforge")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the values that would otherwise fail later and far away.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.DataDir) == "" {
		return fmt.Errorf("data_dir is required")
	}
	if c.ROF.MaxGroups < 1 {
		return fmt.Errorf("rof.max_groups must be at least 1, got %d", c.ROF.MaxGroups)
	}
	if c.Report.PageWidth < 300 {
		return fmt.Errorf("report.page_width must be at least 300, got %d", c.Report.PageWidth)
	}
	return nil
}
