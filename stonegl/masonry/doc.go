// Package masonry builds the stone modules of the sevenstone enclosure.
//
// The enclosure is a regular arrangement of 7 walls alternating with 7
// corner joints. Walls are tiled from block modules (an outward prism with
// an inward carved frustum); corner joints are tapered wedges that own the
// seam between adjacent walls. All builders fail fast on invalid parameters
// and never return a partial result.
//
// Colors are opaque to this package: a ColorResolver collaborator maps
// (wall, row, column, face kind) to fill/outline pairs.
package masonry
