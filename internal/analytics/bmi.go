package analytics

import "errors"

// ErrInvalidMeasurements is returned when weight or height is not strictly positive.
var ErrInvalidMeasurements = errors.New("weight and height must be positive")

// Category is a BMI classification bucket.
type Category string

const (
	Underweight  Category = "Underweight"
	NormalWeight Category = "Normal weight"
	Overweight   Category = "Overweight"
	Obese        Category = "Obese"
)

// BMI computes the body mass index from weight in kilograms and height in
// centimeters.
func BMI(weightKg, heightCm float64) (float64, error) {
	if weightKg <= 0 || heightCm <= 0 {
		return 0, ErrInvalidMeasurements
	}
	heightM := heightCm / 100
	return weightKg / (heightM * heightM), nil
}

// Categorize maps a BMI value onto its classification. The breakpoints
// replicate the deployed behavior exactly: the normal band ends at 24.9, the
// overweight band runs [25, 29.9), and everything else (including the
// [24.9, 25) gap) falls through to Obese.
func Categorize(bmi float64) Category {
	switch {
	case bmi < 18.5:
		return Underweight
	case bmi >= 18.5 && bmi < 24.9:
		return NormalWeight
	case bmi >= 25 && bmi < 29.9:
		return Overweight
	default:
		return Obese
	}
}

// Color returns the display color associated with the category.
func (c Category) Color() string {
	switch c {
	case Underweight:
		return "orange"
	case NormalWeight:
		return "green"
	case Overweight:
		return "red"
	case Obese:
		return "darkred"
	default:
		return "black"
	}
}
