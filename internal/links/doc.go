// Package links defines the boundary to the external navigation-link
// generator. Projection code decides when a bundle is needed and with what
// input, and treats the produced bundle as an opaque value.
package links
