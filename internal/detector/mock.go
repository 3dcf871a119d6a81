package detector

import "gocv.io/x/gocv"

// MockDetector is a test implementation of the Detector interface.
// It returns whatever hands the test configures, ignoring the frame.
type MockDetector struct {
	hands []HandLandmarks
	err   error
}

// NewMockDetector creates a new MockDetector instance.
func NewMockDetector() *MockDetector {
	return &MockDetector{}
}

// SetHands sets the hands that will be returned by Detect.
func (m *MockDetector) SetHands(hands []HandLandmarks) {
	m.hands = hands
}

// SetError sets the error that will be returned by Detect.
func (m *MockDetector) SetError(err error) {
	m.err = err
}

// Detect returns the pre-configured hands or error.
func (m *MockDetector) Detect(frame *gocv.Mat) ([]HandLandmarks, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.hands, nil
}

// Close is a no-op for the mock detector.
func (m *MockDetector) Close() error {
	return nil
}

// OpenPalmLandmarks returns a hand with all four tracked fingers
// extended: every fingertip sits above (smaller Y than) its PIP joint.
func OpenPalmLandmarks() HandLandmarks {
	lm := HandLandmarks{Handedness: "Right", Score: 0.95}

	lm.Points[Wrist] = Point3D{X: 0.50, Y: 0.80}

	lm.Points[ThumbCMC] = Point3D{X: 0.56, Y: 0.76}
	lm.Points[ThumbMCP] = Point3D{X: 0.62, Y: 0.70}
	lm.Points[ThumbIP] = Point3D{X: 0.67, Y: 0.65}
	lm.Points[ThumbTip] = Point3D{X: 0.72, Y: 0.61}

	lm.Points[IndexMCP] = Point3D{X: 0.55, Y: 0.66}
	lm.Points[IndexPIP] = Point3D{X: 0.56, Y: 0.54}
	lm.Points[IndexDIP] = Point3D{X: 0.57, Y: 0.45}
	lm.Points[IndexTip] = Point3D{X: 0.57, Y: 0.36}

	lm.Points[MiddleMCP] = Point3D{X: 0.50, Y: 0.64}
	lm.Points[MiddlePIP] = Point3D{X: 0.50, Y: 0.51}
	lm.Points[MiddleDIP] = Point3D{X: 0.50, Y: 0.40}
	lm.Points[MiddleTip] = Point3D{X: 0.50, Y: 0.30}

	lm.Points[RingMCP] = Point3D{X: 0.45, Y: 0.66}
	lm.Points[RingPIP] = Point3D{X: 0.44, Y: 0.53}
	lm.Points[RingDIP] = Point3D{X: 0.43, Y: 0.43}
	lm.Points[RingTip] = Point3D{X: 0.43, Y: 0.34}

	lm.Points[PinkyMCP] = Point3D{X: 0.40, Y: 0.69}
	lm.Points[PinkyPIP] = Point3D{X: 0.38, Y: 0.59}
	lm.Points[PinkyDIP] = Point3D{X: 0.37, Y: 0.51}
	lm.Points[PinkyTip] = Point3D{X: 0.36, Y: 0.44}

	return lm
}

// FistLandmarks returns a curled hand: every tracked fingertip has
// dropped below (larger Y than) its PIP joint.
func FistLandmarks() HandLandmarks {
	lm := HandLandmarks{Handedness: "Right", Score: 0.95}

	lm.Points[Wrist] = Point3D{X: 0.50, Y: 0.80}

	lm.Points[ThumbCMC] = Point3D{X: 0.56, Y: 0.76}
	lm.Points[ThumbMCP] = Point3D{X: 0.59, Y: 0.70}
	lm.Points[ThumbIP] = Point3D{X: 0.58, Y: 0.66}
	lm.Points[ThumbTip] = Point3D{X: 0.55, Y: 0.64}

	lm.Points[IndexMCP] = Point3D{X: 0.55, Y: 0.66}
	lm.Points[IndexPIP] = Point3D{X: 0.55, Y: 0.60, Z: -0.03}
	lm.Points[IndexDIP] = Point3D{X: 0.54, Y: 0.64, Z: -0.04}
	lm.Points[IndexTip] = Point3D{X: 0.53, Y: 0.68, Z: -0.02}

	lm.Points[MiddleMCP] = Point3D{X: 0.50, Y: 0.64}
	lm.Points[MiddlePIP] = Point3D{X: 0.50, Y: 0.58, Z: -0.03}
	lm.Points[MiddleDIP] = Point3D{X: 0.49, Y: 0.63, Z: -0.04}
	lm.Points[MiddleTip] = Point3D{X: 0.48, Y: 0.67, Z: -0.02}

	lm.Points[RingMCP] = Point3D{X: 0.45, Y: 0.66}
	lm.Points[RingPIP] = Point3D{X: 0.45, Y: 0.60, Z: -0.03}
	lm.Points[RingDIP] = Point3D{X: 0.44, Y: 0.65, Z: -0.04}
	lm.Points[RingTip] = Point3D{X: 0.43, Y: 0.69, Z: -0.02}

	lm.Points[PinkyMCP] = Point3D{X: 0.40, Y: 0.69}
	lm.Points[PinkyPIP] = Point3D{X: 0.40, Y: 0.64, Z: -0.03}
	lm.Points[PinkyDIP] = Point3D{X: 0.39, Y: 0.68, Z: -0.04}
	lm.Points[PinkyTip] = Point3D{X: 0.38, Y: 0.72, Z: -0.02}

	return lm
}
