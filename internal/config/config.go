package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/mdsim/internal/barostat"
)

const (
	DefaultSteps       = 10000
	DefaultParticles   = 216
	DefaultBoxNm       = 3.0
	DefaultPressure    = 1.0
	DefaultTemperature = 298.15
	DefaultFrequency   = 25
	DefaultMassAmu     = 18.0
	DefaultEpsilon     = 0.5
	DefaultSigma       = 0.3
)

type Config struct {
	Platform string        `yaml:"platform"`
	Steps    int           `yaml:"steps"`
	Seed     int64         `yaml:"seed"`
	System   SystemConfig  `yaml:"system"`
	Barostat BarostatYAML  `yaml:"barostat"`
	Energy   EnergyConfig  `yaml:"energy"`
	Store    StorageConfig `yaml:"store"`
}

type SystemConfig struct {
	Particles int     `yaml:"particles"`
	MassAmu   float64 `yaml:"mass_amu"`
	BoxX      float64 `yaml:"box_x"`
	BoxY      float64 `yaml:"box_y"`
	BoxZ      float64 `yaml:"box_z"`
}

type BarostatYAML struct {
	Pressure       float64 `yaml:"pressure"`        // bar
	SurfaceTension float64 `yaml:"surface_tension"` // bar*nm
	Temperature    float64 `yaml:"temperature"`     // K
	Frequency      int     `yaml:"frequency"`
	XYMode         string  `yaml:"xy_mode"` // isotropic | anisotropic
	ZMode          string  `yaml:"z_mode"`  // free | fixed | constant-volume
}

type EnergyConfig struct {
	Model   string  `yaml:"model"` // ideal | softsphere
	Epsilon float64 `yaml:"epsilon"`
	Sigma   float64 `yaml:"sigma"`
}

type StorageConfig struct {
	Backend string `yaml:"backend"` // memory | sqlite
	Path    string `yaml:"path"`
}

func DefaultConfig() *Config {
	return &Config{
		Platform: "Reference",
		Steps:    DefaultSteps,
		System: SystemConfig{
			Particles: DefaultParticles,
			MassAmu:   DefaultMassAmu,
			BoxX:      DefaultBoxNm,
			BoxY:      DefaultBoxNm,
			BoxZ:      DefaultBoxNm,
		},
		Barostat: BarostatYAML{
			Pressure:    DefaultPressure,
			Temperature: DefaultTemperature,
			Frequency:   DefaultFrequency,
			XYMode:      "isotropic",
			ZMode:       "free",
		},
		Energy: EnergyConfig{
			Model:   "softsphere",
			Epsilon: DefaultEpsilon,
			Sigma:   DefaultSigma,
		},
		Store: StorageConfig{
			Backend: "sqlite",
			Path:    "mdsim.db",
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// BarostatConfig converts the YAML barostat section to the controller's
// definition.
func (c *Config) BarostatConfig() (*barostat.Config, error) {
	xy, err := ParseXYMode(c.Barostat.XYMode)
	if err != nil {
		return nil, err
	}
	z, err := ParseZMode(c.Barostat.ZMode)
	if err != nil {
		return nil, err
	}
	return &barostat.Config{
		Pressure:       c.Barostat.Pressure,
		SurfaceTension: c.Barostat.SurfaceTension,
		Temperature:    c.Barostat.Temperature,
		Frequency:      c.Barostat.Frequency,
		Seed:           c.Seed,
		XYMode:         xy,
		ZMode:          z,
	}, nil
}

func ParseXYMode(s string) (barostat.XYMode, error) {
	switch s {
	case "", "isotropic":
		return barostat.XYIsotropic, nil
	case "anisotropic":
		return barostat.XYAnisotropic, nil
	}
	return 0, fmt.Errorf("unknown xy_mode: %q", s)
}

func ParseZMode(s string) (barostat.ZMode, error) {
	switch s {
	case "", "free":
		return barostat.ZFree, nil
	case "fixed":
		return barostat.ZFixed, nil
	case "constant-volume", "constant_volume":
		return barostat.ZConstantVolume, nil
	}
	return 0, fmt.Errorf("unknown z_mode: %q", s)
}
