// Package interp provides the sample read-out kernels used to evaluate a
// frequency trace between its bins.
//
//   - [Linear2]: 2-point linear interpolation
//   - [Hermite4]: 4-point cubic Hermite
//   - [At]: picks Hermite4 where both neighbours exist, Linear2 otherwise
package interp
