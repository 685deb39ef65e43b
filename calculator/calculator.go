// Package calculator provides basic arithmetic operations over float64
// values. Every operation validates all of its arguments before computing,
// so a single bad argument fails the whole call with no partial result.
package calculator

import (
	"fmt"
	"math"

	apperrors "github.com/utafrali/CommerceCalc/errors"
)

// finite rejects NaN and infinite values for a named argument.
func finite(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return apperrors.InvalidType(fmt.Sprintf("%s must be a finite number", name))
	}
	return nil
}

// finiteAt rejects NaN and infinite values at a 1-based argument position.
func finiteAt(position int, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return apperrors.InvalidType(fmt.Sprintf("argument %d must be a finite number", position))
	}
	return nil
}

func allFinite(numbers []float64, offset int) error {
	for i, n := range numbers {
		if err := finiteAt(offset+i+1, n); err != nil {
			return err
		}
	}
	return nil
}

// Add returns the sum of the given numbers. At least one number is required.
func Add(numbers ...float64) (float64, error) {
	if len(numbers) == 0 {
		return 0, apperrors.MissingArgument("at least one number is required")
	}
	if err := allFinite(numbers, 0); err != nil {
		return 0, err
	}

	var sum float64
	for _, n := range numbers {
		sum += n
	}
	return sum, nil
}

// Subtract subtracts the rest of the numbers from the first. With no
// subtrahends the first number is returned unchanged.
func Subtract(first float64, rest ...float64) (float64, error) {
	if err := finiteAt(1, first); err != nil {
		return 0, err
	}
	if err := allFinite(rest, 1); err != nil {
		return 0, err
	}

	result := first
	for _, n := range rest {
		result -= n
	}
	return result, nil
}

// Multiply returns the product of the given numbers. At least one number is
// required.
func Multiply(numbers ...float64) (float64, error) {
	if len(numbers) == 0 {
		return 0, apperrors.MissingArgument("at least one number is required")
	}
	if err := allFinite(numbers, 0); err != nil {
		return 0, err
	}

	product := 1.0
	for _, n := range numbers {
		product *= n
	}
	return product, nil
}

// Divide divides the dividend by each divisor in turn, left to right.
// At least one divisor is required and no divisor may be zero.
func Divide(dividend float64, divisors ...float64) (float64, error) {
	if len(divisors) == 0 {
		return 0, apperrors.MissingArgument("at least one divisor is required")
	}
	if err := finite("dividend", dividend); err != nil {
		return 0, err
	}
	if err := allFinite(divisors, 1); err != nil {
		return 0, err
	}
	for i, d := range divisors {
		if d == 0 {
			return 0, apperrors.InvalidValue(fmt.Sprintf("divisor %d must not be zero", i+1))
		}
	}

	result := dividend
	for _, d := range divisors {
		result /= d
	}
	return result, nil
}

// Modulo returns the remainder of dividend divided by divisor, using
// truncated division semantics (the result takes the sign of the dividend).
func Modulo(dividend, divisor float64) (float64, error) {
	if err := finite("dividend", dividend); err != nil {
		return 0, err
	}
	if err := finite("divisor", divisor); err != nil {
		return 0, err
	}
	if divisor == 0 {
		return 0, apperrors.InvalidValue("divisor must not be zero")
	}
	return math.Mod(dividend, divisor), nil
}

// Power returns base raised to exponent, following IEEE-754 semantics.
// A negative base with a fractional exponent yields NaN; that combination
// is deliberately not guarded.
func Power(base, exponent float64) (float64, error) {
	if err := finite("base", base); err != nil {
		return 0, err
	}
	if err := finite("exponent", exponent); err != nil {
		return 0, err
	}
	return math.Pow(base, exponent), nil
}

// SquareRoot returns the non-negative square root of x.
func SquareRoot(x float64) (float64, error) {
	if err := finite("x", x); err != nil {
		return 0, err
	}
	if x < 0 {
		return 0, apperrors.InvalidValue("cannot take the square root of a negative number")
	}
	return math.Sqrt(x), nil
}

// Absolute returns the absolute value of x.
func Absolute(x float64) (float64, error) {
	if err := finite("x", x); err != nil {
		return 0, err
	}
	return math.Abs(x), nil
}

// Round rounds x to the nearest integer, with ties rounding away from zero.
func Round(x float64) (float64, error) {
	if err := finite("x", x); err != nil {
		return 0, err
	}
	return math.Round(x), nil
}

// RoundUp rounds x up to the nearest integer.
func RoundUp(x float64) (float64, error) {
	if err := finite("x", x); err != nil {
		return 0, err
	}
	return math.Ceil(x), nil
}

// RoundDown rounds x down to the nearest integer.
func RoundDown(x float64) (float64, error) {
	if err := finite("x", x); err != nil {
		return 0, err
	}
	return math.Floor(x), nil
}
