// Package render rasterizes a site plan to PNG: parcel boundary,
// buildable envelope, forbidden-zone bands with hatching, and drawn
// objects with area labels.
package render
