package math

import (
	m "math"
)

const (
	/** @brief An approximate representation of PI. */
	K_PI float64 = 3.14159265358979323846
	/** @brief An approximate representation of PI multiplied by 2. */
	K_PI_2 float64 = 2.0 * K_PI
	/** @brief An approximate representation of PI divided by 2. */
	K_HALF_PI float64 = 0.5 * K_PI
	/** @brief An approximate representation of PI divided by 4. */
	K_QUARTER_PI float64 = 0.25 * K_PI
	/** @brief One divided by an approximate representation of PI. */
	K_ONE_OVER_PI float64 = 1.0 / K_PI
	/** @brief An approximation of the square root of 2. */
	K_SQRT_TWO float64 = 1.41421356237309504880
	/** @brief One divided by an approximation of the square root of 2. */
	K_SQRT_ONE_OVER_TWO float64 = 0.70710678118654752440
	/** @brief A multiplier used to convert degrees to radians. */
	K_DEG2RAD_MULTIPLIER float64 = K_PI / 180.0
	/** @brief A multiplier used to convert radians to degrees. */
	K_RAD2DEG_MULTIPLIER float64 = 180.0 / K_PI
	/** @brief Smallest positive number where 1.0 + FLOAT_EPSILON != 1.0 */
	K_FLOAT_EPSILON float64 = 2.220446049250313e-16
)

const (
	// Epsilon is the default tolerance used by the Equals methods.
	Epsilon = 1e-6

	// DecomposeScaleEpsilon is the column length at or below which Decompose
	// treats the transform as collapsed.
	DecomposeScaleEpsilon = 1e-12

	// DecomposeHandednessEpsilon is how far below zero the basis triple
	// product must fall before Decompose treats the matrix as mirrored.
	DecomposeHandednessEpsilon = 1e-6

	// slerpDotThreshold is the cosine above which Slerp falls back to a
	// normalized linear interpolation.
	slerpDotThreshold = 0.9995

	// gimbalThreshold is the pivot magnitude at which Euler extraction
	// considers the two outer axes aligned.
	gimbalThreshold = 0.9999999
)

func ksin(x float64) float64 {
	return m.Sin(x)
}

func kcos(x float64) float64 {
	return m.Cos(x)
}

func ktan(x float64) float64 {
	return m.Tan(x)
}

func kacos(x float64) float64 {
	return m.Acos(Clamp(x, -1, 1))
}

func kasin(x float64) float64 {
	return m.Asin(Clamp(x, -1, 1))
}

func katan2(y, x float64) float64 {
	return m.Atan2(y, x)
}

func ksqrt(x float64) float64 {
	return m.Sqrt(x)
}

func kabs(x float64) float64 {
	return m.Abs(x)
}

/**
 * @brief Converts provided degrees to radians.
 *
 * @param degrees The degrees to be converted.
 * @return The amount in radians.
 */
func DegToRad(degrees float64) float64 {
	return degrees * K_DEG2RAD_MULTIPLIER
}

/**
 * @brief Converts provided radians to degrees.
 *
 * @param radians The radians to be converted.
 * @return The amount in degrees.
 */
func RadToDeg(radians float64) float64 {
	return radians * K_RAD2DEG_MULTIPLIER
}

// FloatEquals reports whether a and b differ by at most tolerance.
func FloatEquals(a, b, tolerance float64) bool {
	return kabs(a-b) <= tolerance
}

// ensureLen returns arr if it can hold n elements starting at offset,
// otherwise a copy grown to fit.
func ensureLen(arr []float64, offset, n int) []float64 {
	if len(arr) >= offset+n {
		return arr
	}
	grown := make([]float64, offset+n)
	copy(grown, arr)
	return grown
}
