package gesture

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// LandmarkCount is the number of points in a hand skeleton.
const LandmarkCount = 21

// Landmark indices, in the order the hand detector reports them.
const (
	Wrist     = 0
	ThumbMCP  = 2
	ThumbTip  = 4
	IndexMCP  = 5
	IndexTip  = 8
	MiddleMCP = 9
	MiddleTip = 12
	RingMCP   = 13
	RingTip   = 16
	PinkyMCP  = 17
	PinkyTip  = 20
)

// Landmark is a normalized image-space point. X and Y are in [0,1] with Y
// growing downward, Z is depth relative to the wrist.
type Landmark struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

func (l Landmark) Vec() mgl64.Vec3 {
	return mgl64.Vec3{l.X, l.Y, l.Z}
}

func (l Landmark) finite() bool {
	for _, v := range [3]float64{l.X, l.Y, l.Z} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Skeleton is one hand as reported for a single video frame.
type Skeleton []Landmark

// Valid reports whether s has exactly LandmarkCount finite landmarks.
func (s Skeleton) Valid() bool {
	if len(s) != LandmarkCount {
		return false
	}
	for _, l := range s {
		if !l.finite() {
			return false
		}
	}
	return true
}

func distance(a, b Landmark) float64 {
	return a.Vec().Sub(b.Vec()).Len()
}
