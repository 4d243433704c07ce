package barostat

// Context parameter names for the quantities that may change at runtime.
// The controller reads them every evaluation rather than caching them.
const (
	PressureParameter       = "MembraneBarostatPressure"
	SurfaceTensionParameter = "MembraneBarostatSurfaceTension"
)

// XYMode selects how the two lateral (membrane-plane) axes couple.
type XYMode int

const (
	// XYIsotropic scales both lateral axes together.
	XYIsotropic XYMode = iota
	// XYAnisotropic scales the lateral axes independently.
	XYAnisotropic
)

func (m XYMode) String() string {
	switch m {
	case XYIsotropic:
		return "isotropic"
	case XYAnisotropic:
		return "anisotropic"
	}
	return "unknown"
}

// ZMode selects how the normal (membrane-perpendicular) axis behaves.
type ZMode int

const (
	// ZFree lets the normal axis fluctuate like the lateral ones.
	ZFree ZMode = iota
	// ZFixed keeps the normal axis length constant.
	ZFixed
	// ZConstantVolume scales the normal axis to cancel lateral volume
	// changes exactly.
	ZConstantVolume
)

func (m ZMode) String() string {
	switch m {
	case ZFree:
		return "free"
	case ZFixed:
		return "fixed"
	case ZConstantVolume:
		return "constant-volume"
	}
	return "unknown"
}

// Config is the owning definition of a membrane barostat. The controller
// reads Temperature, Frequency and the axis modes from it on every tick, so
// runtime changes take effect at the next evaluation. Pressure and
// SurfaceTension are defaults installed as context parameters.
type Config struct {
	Pressure       float64 // bar
	SurfaceTension float64 // bar*nm
	Temperature    float64 // K
	Frequency      int     // ticks between trials; 0 disables
	Seed           int64   // 0 selects an OS-derived seed
	XYMode         XYMode
	ZMode          ZMode
}

// DefaultConfig returns a 1 bar, tensionless, room-temperature barostat
// evaluating every 25 ticks.
func DefaultConfig() *Config {
	return &Config{
		Pressure:       1.0,
		SurfaceTension: 0.0,
		Temperature:    298.15,
		Frequency:      25,
	}
}

// DefaultParameters returns the context parameters this barostat expects,
// keyed by parameter name.
func (c *Config) DefaultParameters() map[string]float64 {
	return map[string]float64{
		PressureParameter:       c.Pressure,
		SurfaceTensionParameter: c.SurfaceTension,
	}
}
