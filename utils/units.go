package utils

// Boundary unit conversions. The app stores kilograms, milliliters and
// Celsius; the HTTP/display boundary speaks pounds, ounces and Fahrenheit.
//
// The lb→kg and kg→lb factors are deliberately not exact reciprocals; both
// literals are part of the numeric contract and must stay as written.
const (
	LbsToKg = 0.453592 // profile setup input
	KgToLbs = 2.205    // goal/display output
	MLPerOz = 29.5735
)

func MLToOz(ml float64) float64 {
	return ml / MLPerOz
}

func CToF(c float64) float64 {
	return c*9/5 + 32
}
