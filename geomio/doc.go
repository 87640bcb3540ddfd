// Package geomio reads parcel boundaries from GeoJSON or raw
// coordinate-array payloads and writes plan results back out as a
// GeoJSON feature collection.
package geomio
