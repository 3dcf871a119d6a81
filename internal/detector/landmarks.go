// Package detector provides hand landmark detection for the gesture pipeline.
package detector

import "math"

// Hand landmark indices following the MediaPipe convention.
// See: https://developers.google.com/mediapipe/solutions/vision/hand_landmarker
const (
	Wrist        = 0
	ThumbCMC     = 1
	ThumbMCP     = 2
	ThumbIP      = 3
	ThumbTip     = 4
	IndexMCP     = 5
	IndexPIP     = 6
	IndexDIP     = 7
	IndexTip     = 8
	MiddleMCP    = 9
	MiddlePIP    = 10
	MiddleDIP    = 11
	MiddleTip    = 12
	RingMCP      = 13
	RingPIP      = 14
	RingDIP      = 15
	RingTip      = 16
	PinkyMCP     = 17
	PinkyPIP     = 18
	PinkyDIP     = 19
	PinkyTip     = 20
	NumLandmarks = 21
)

// Point3D is a single landmark position in normalized image space.
// X and Y are in [0,1] with Y increasing downward; Z is depth relative
// to the wrist, negative toward the camera.
type Point3D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// HandLandmarks is one frame's detection result for a single hand:
// exactly 21 ordered points, valid for that frame only.
type HandLandmarks struct {
	Points     [NumLandmarks]Point3D `json:"points"`
	Handedness string                `json:"handedness"` // "Left" or "Right"
	Score      float64               `json:"score"`
}

// Finger names the two landmarks the classifier compares for one finger:
// the fingertip and the proximal interphalangeal joint below it.
type Finger struct {
	Tip int
	PIP int
}

// TrackedFingers are the four fingers that vote in the open/fist
// classification. The thumb is excluded; its tip-versus-joint vertical
// ordering is unstable across hand orientations.
var TrackedFingers = [4]Finger{
	{Tip: IndexTip, PIP: IndexPIP},
	{Tip: MiddleTip, PIP: MiddlePIP},
	{Tip: RingTip, PIP: RingPIP},
	{Tip: PinkyTip, PIP: PinkyPIP},
}

// Sanitize returns a copy of the landmarks with every coordinate forced
// into a usable range: NaN and infinite values become 0, X and Y are
// clamped to [0,1]. The per-frame loop must never abort on a malformed
// estimate, so bad values are repaired rather than rejected.
func (h *HandLandmarks) Sanitize() *HandLandmarks {
	if h == nil {
		return nil
	}

	out := &HandLandmarks{
		Handedness: h.Handedness,
		Score:      h.Score,
	}
	for i := 0; i < NumLandmarks; i++ {
		p := h.Points[i]
		out.Points[i] = Point3D{
			X: clamp01(finite(p.X)),
			Y: clamp01(finite(p.Y)),
			Z: finite(p.Z),
		}
	}
	return out
}

func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
