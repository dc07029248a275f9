package model

import "encoding/json"

// RawPoint is one untransformed input sample for a paint stroke:
// position, pressure, tilt and the time it was captured, relative to
// the start of the stroke. flostore never interprets these samples,
// only stores and returns them losslessly.
type RawPoint struct {
	X, Y         float64
	Pressure     float64
	TiltX, TiltY float64
	TimeOffsetMs float64
}

// rawPointsWire is the on-disk shape. Keeping it distinct from
// RawPoint (even though today it's identical) means a future field
// added to RawPoint doesn't silently change the blob format for
// already-stored rows.
type rawPointsWire struct {
	Points []RawPoint `json:"points"`
}

// EncodeRawPoints serializes a sequence of raw input samples into the
// stable blob format stored in EL_RawPoints.Points.
func EncodeRawPoints(points []RawPoint) ([]byte, error) {
	buf, err := json.Marshal(rawPointsWire{Points: points})
	if err != nil {
		return nil, NewEncodingError(err)
	}
	return buf, nil
}

// DecodeRawPoints reverses EncodeRawPoints.
func DecodeRawPoints(blob []byte) ([]RawPoint, error) {
	var wire rawPointsWire
	if err := json.Unmarshal(blob, &wire); err != nil {
		return nil, NewEncodingError(err)
	}
	return wire.Points, nil
}
