package config

// Presets are named starting points for common ensembles.
var Presets = map[string]*Config{
	"membrane": {
		Platform: "Reference",
		Steps:    20000,
		System:   SystemConfig{Particles: 512, MassAmu: 18.0, BoxX: 6.0, BoxY: 6.0, BoxZ: 8.0},
		Barostat: BarostatYAML{
			Pressure: 1.0, SurfaceTension: 50.0, Temperature: 310.0,
			Frequency: 25, XYMode: "isotropic", ZMode: "free",
		},
		Energy: EnergyConfig{Model: "softsphere", Epsilon: 0.5, Sigma: 0.3},
		Store:  StorageConfig{Backend: "sqlite", Path: "mdsim.db"},
	},
	"tensionless": {
		Platform: "Reference",
		Steps:    20000,
		System:   SystemConfig{Particles: 512, MassAmu: 18.0, BoxX: 6.0, BoxY: 6.0, BoxZ: 8.0},
		Barostat: BarostatYAML{
			Pressure: 1.0, SurfaceTension: 0.0, Temperature: 310.0,
			Frequency: 25, XYMode: "isotropic", ZMode: "free",
		},
		Energy: EnergyConfig{Model: "softsphere", Epsilon: 0.5, Sigma: 0.3},
		Store:  StorageConfig{Backend: "sqlite", Path: "mdsim.db"},
	},
	"constant-volume": {
		Platform: "Reference",
		Steps:    20000,
		System:   SystemConfig{Particles: 512, MassAmu: 18.0, BoxX: 6.0, BoxY: 6.0, BoxZ: 8.0},
		Barostat: BarostatYAML{
			Pressure: 1.0, SurfaceTension: 20.0, Temperature: 310.0,
			Frequency: 25, XYMode: "isotropic", ZMode: "constant-volume",
		},
		Energy: EnergyConfig{Model: "softsphere", Epsilon: 0.5, Sigma: 0.3},
		Store:  StorageConfig{Backend: "sqlite", Path: "mdsim.db"},
	},
	"ideal": {
		Platform: "Reference",
		Steps:    5000,
		System:   SystemConfig{Particles: 216, MassAmu: 18.0, BoxX: 3.0, BoxY: 3.0, BoxZ: 3.0},
		Barostat: BarostatYAML{
			Pressure: 1.0, Temperature: 298.15,
			Frequency: 1, XYMode: "isotropic", ZMode: "free",
		},
		Energy: EnergyConfig{Model: "ideal"},
		Store:  StorageConfig{Backend: "memory"},
	},
}

func GetPreset(name string) *Config {
	return Presets[name]
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
