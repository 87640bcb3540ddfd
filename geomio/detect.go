package geomio

import (
	"bytes"
	"encoding/json"
)

// Format represents a supported parcel input format.
type Format int

const (
	// Unknown indicates an unrecognized payload.
	Unknown Format = iota
	// GeoJSON indicates a GeoJSON geometry, feature, or feature
	// collection.
	GeoJSON
	// CoordinateArray indicates a bare [[lng, lat], ...] ring.
	CoordinateArray
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case GeoJSON:
		return "GeoJSON"
	case CoordinateArray:
		return "CoordinateArray"
	default:
		return "Unknown"
	}
}

// Detect determines the payload format from its content. GeoJSON
// payloads are JSON objects carrying a "type" member; a bare JSON
// array is treated as a coordinate ring.
func Detect(data []byte) Format {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) == 0 {
		return Unknown
	}
	switch trimmed[0] {
	case '[':
		return CoordinateArray
	case '{':
		var probe struct {
			Type string `json:"type"`
		}
		if err := json.Unmarshal(data, &probe); err == nil && probe.Type != "" {
			return GeoJSON
		}
	}
	return Unknown
}
