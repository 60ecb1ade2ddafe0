package workout

// Constants is the read-only table of conversion factors and per-variant
// coefficients used by the calorie formulas
type Constants struct {
	MetersPerKm    float64
	MinutesPerHour float64

	// Step (or stroke) length in meters
	StepLength   float64
	StrokeLength float64

	RunSpeedMultiplier float64 // 18
	RunSpeedShift      float64 // 20

	WalkWeightMultiplier float64 // 0.035
	WalkSpeedMultiplier  float64 // 0.029
	WalkSpeedExponent    float64 // speed is squared

	SwimSpeedShift       float64 // 1.1
	SwimWeightMultiplier float64 // 2
}

// Default holds the coefficients every variant shares
var Default = Constants{
	MetersPerKm:    1000,
	MinutesPerHour: 60,

	StepLength:   0.65,
	StrokeLength: 1.38,

	RunSpeedMultiplier: 18,
	RunSpeedShift:      20,

	WalkWeightMultiplier: 0.035,
	WalkSpeedMultiplier:  0.029,
	WalkSpeedExponent:    2,

	SwimSpeedShift:       1.1,
	SwimWeightMultiplier: 2,
}

// Workout type codes reported by the sensor
const (
	CodeRunning  = "RUN"
	CodeWalking  = "WLK"
	CodeSwimming = "SWM"
)

// Canonical type names shown in reports
const (
	NameRunning  = "Running"
	NameWalking  = "SportsWalking"
	NameSwimming = "Swimming"
)
