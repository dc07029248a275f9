package model

import (
	"errors"
	"testing"
)

func TestRawPointsRoundTrip(t *testing.T) {
	points := []RawPoint{
		{X: 1, Y: 2, Pressure: 0.5, TiltX: 10, TiltY: -5, TimeOffsetMs: 0},
		{X: 3.5, Y: -2.25, Pressure: 1, TiltX: 0, TiltY: 0, TimeOffsetMs: 16.6},
	}

	blob, err := EncodeRawPoints(points)
	if err != nil {
		t.Fatalf("EncodeRawPoints: %v", err)
	}

	got, err := DecodeRawPoints(blob)
	if err != nil {
		t.Fatalf("DecodeRawPoints: %v", err)
	}
	if len(got) != len(points) {
		t.Fatalf("got %d points, want %d", len(got), len(points))
	}
	for i := range points {
		if got[i] != points[i] {
			t.Fatalf("point %d: got %+v, want %+v", i, got[i], points[i])
		}
	}
}

func TestRawPointsRoundTripEmpty(t *testing.T) {
	blob, err := EncodeRawPoints(nil)
	if err != nil {
		t.Fatalf("EncodeRawPoints(nil): %v", err)
	}
	got, err := DecodeRawPoints(blob)
	if err != nil {
		t.Fatalf("DecodeRawPoints: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("got %d points, want 0", len(got))
	}
}

func TestIsNotFoundDetectsSentinel(t *testing.T) {
	if !IsNotFound(ErrNotFound) {
		t.Fatalf("IsNotFound(ErrNotFound) = false")
	}
	if IsNotFound(&EncodingError{Detail: errUnrelated}) {
		t.Fatalf("IsNotFound should not match an unrelated error")
	}
}

var errUnrelated = errors.New("unrelated failure")

func TestIsStorageDetectsWrappedDriverError(t *testing.T) {
	err := NewStorageError("insert", errUnrelated)
	if _, ok := IsStorage(err); !ok {
		t.Fatalf("IsStorage(NewStorageError(...)) = false")
	}
}
