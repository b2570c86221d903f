// Package taper synthesizes border-tapered versions of grayscale images so
// frequency-domain processing does not see hard seams at a region-of-interest
// boundary.
//
// EdgeTaper fills zero-valued (occluded) pixel runs from their nearest
// nonzero neighbors in both scan directions, blends the directional fills,
// re-fills the mask interior from its surrounding context so the later blur
// cannot bleed region content across the boundary, diffuses the result
// against a Gaussian-blurred guide image, and finally restores the original
// pixels everywhere the mask is active. The region of interest comes back
// bit-identical; only its surroundings are replaced by the taper.
package taper
