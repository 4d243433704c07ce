// Package units defines the internal unit system and physical constants.
//
// Internally all lengths are nanometers, energies are kJ/mol, masses are
// atomic mass units and temperatures are Kelvin. Pressures and surface
// tensions cross the configuration surface in bar and bar·nm.
package units

const (
	// Boltzmann constant in J/K.
	Boltzmann = 1.380658e-23

	// Avogadro's number in 1/mol.
	Avogadro = 6.0221367e23

	// GasConstant in J/(mol K).
	GasConstant = Boltzmann * Avogadro

	// KB is the Boltzmann constant in internal energy units, kJ/(mol K).
	KB = GasConstant / 1000

	// PressureScale converts bar to kJ/mol/nm^3. The same factor converts
	// bar·nm surface tensions to kJ/mol/nm^2.
	PressureScale = Avogadro * 1e-25

	// DensityScale converts amu/nm^3 to g/cm^3.
	DensityScale = 1.6605402e-3
)

// KT returns the thermal energy kT in kJ/mol for a temperature in Kelvin.
func KT(temperature float64) float64 {
	return KB * temperature
}
