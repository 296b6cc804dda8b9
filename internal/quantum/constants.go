package quantum

// CODATA 2018 values, SI units.
const (
	ElectronCharge = 1.602176634e-19  // C
	ElectronMass   = 9.1093837015e-31 // kg
	DefaultGFactor = 2.00231930436    // electron g-factor
	SpeedOfLight   = 299792458.0      // m/s

	// FineStructure is α, used as the per-proton velocity proxy v/c ≈ Zα.
	FineStructure = 1 / 137.035999084
)

// Model thresholds.
const (
	// VelocityCap clamps Zα so that γ stays finite as Z approaches 137.
	// This is a modelling choice of the visualizer, not physics.
	VelocityCap = 0.9

	// RelativisticThreshold is the γ above which relativistic effects are
	// flagged as significant.
	RelativisticThreshold = 1.05
)

// ChargeToMass is e/mₑ in C/kg.
const ChargeToMass = ElectronCharge / ElectronMass
