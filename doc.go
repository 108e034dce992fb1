// Package texture is a small, dependency-light toolkit for grey-level
// texture analysis on quantized images.
//
// 🚀 What is texture?
//
//	A pure-Go home for the counting primitives that texture descriptors
//	are built on:
//		• Level & Grid: explicit grey-level / missing cells on an immutable grid
//		• GLCM: directional co-occurrence counts at 0°, 45°, 90°, 135°
//		• Parallel counting: row-block workers merged deterministically
//
// ✨ Why texture?
//
//   - Explicit missing values – a dedicated trailing row/column, never a magic number
//   - Strict validation – malformed grey levels are rejected before any counting
//   - Deterministic – identical input always yields a bit-identical matrix
//
// Under the hood:
//
//	glcm/ — Level, Grid, Direction, Counts and the directional counters
//
// Statistics (contrast, homogeneity, entropy), symmetrization and
// quantization are left to the caller.
//
//	go get github.com/katalvlaran/texture/glcm
package texture
