// Package conv provides shape-aware 2-D linear convolution over real grids.
//
// The convolution follows the classic linear-system convention: the kernel
// is supplied in natural orientation and flipped internally, and samples
// outside the source grid contribute zero. The three output shapes match the
// familiar FULL/SAME/VALID sizing policies:
//
//   - [Full]: every sample touched by the kernel, (rows+kh-1) x (cols+kw-1)
//   - [Same]: centered crop to the source size
//   - [Valid]: only samples computed without any zero padding,
//     (rows-kh+1) x (cols-kw+1)
//
// For example, the row [1 2 3 4] convolved with the kernel [0.5 0 0.5]
// yields [0.5 1 2 3 1.5 2] for Full, [1 2 3 1.5] for Same, and [2 3]
// for Valid.
package conv
