// Package numeric provides utility functions for numerical computations,
// particularly focused on handling floating-point precision issues.
//
// # Overview
//
// The numeric package contains a set of helper functions designed for
// common numerical operations that arise in computational geometry, where
// precision is important. This includes a module-wide epsilon tolerance,
// floating-point comparisons with that tolerance, and precision adjustments.
//
// # Features
//
//   - Module-wide epsilon: Epsilon/SetEpsilon hold the single tolerance
//     value shared by point equality, collinearity, and parameter-interval
//     slack across every package in this module.
//
//   - Floating-Point Comparisons: Functions such as FloatEquals,
//     FloatGreaterThan, FloatLessThan, and their variants provide
//     robust comparisons between floating-point numbers using an epsilon
//     threshold to mitigate precision errors.
//
//   - Precision Adjustment: The SnapToEpsilon function allows
//     floating-point numbers to be snapped to the nearest whole number if
//     they are within an acceptable tolerance, reducing small precision
//     artifacts.
//
// # Usage
//
// This package is particularly useful in scenarios where direct equality
// checks for floating-point numbers are unreliable due to the inherent
// imprecision of floating-point arithmetic.
package numeric
