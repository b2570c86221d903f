// Package spectral builds frequency-domain representations of real grids
// and provides the complex-plane utilities used around them: real-part
// extraction, quadrant swapping for DC-centered spectra, symmetric and
// min-max normalization, and a log-magnitude view.
//
// Transforms are computed as separable row and column passes over FFT plans.
// The plans require power-of-two lengths; Spectrum can zero-pad trailing
// rows and columns up to the next power of two so arbitrary grid sizes
// transform efficiently.
package spectral
