package capture

import (
	"image"
	"sync"

	"gocv.io/x/gocv"
)

const (
	// blurKernel is the Gaussian kernel size used to suppress sensor
	// noise before differencing.
	blurKernel = 21
	// diffThreshold is the per-pixel binary threshold on the frame
	// difference.
	diffThreshold = 25
)

// MotionGate detects motion between consecutive frames by blurred
// frame differencing. The pipeline uses it to drop to a low capture
// rate while the scene in front of the camera is static.
type MotionGate struct {
	mu        sync.Mutex
	threshold float64
	prev      gocv.Mat
	primed    bool
}

// NewMotionGate creates a gate. threshold is the percentage of pixels
// that must change for a frame to count as motion (1.0 means 1%).
func NewMotionGate(threshold float64) *MotionGate {
	return &MotionGate{
		threshold: threshold,
		prev:      gocv.NewMat(),
	}
}

// Detect compares the frame against the previous one. Returns whether
// motion was detected and the percentage of changed pixels. The first
// frame primes the baseline and never counts as motion.
func (m *MotionGate) Detect(frame *gocv.Mat) (bool, float64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if frame == nil || frame.Empty() {
		return false, 0
	}

	gray := gocv.NewMat()
	defer gray.Close()
	if frame.Channels() > 1 {
		gocv.CvtColor(*frame, &gray, gocv.ColorBGRToGray)
	} else {
		frame.CopyTo(&gray)
	}

	blurred := gocv.NewMat()
	defer blurred.Close()
	gocv.GaussianBlur(gray, &blurred, image.Point{X: blurKernel, Y: blurKernel}, 0, 0, gocv.BorderDefault)

	if !m.primed {
		blurred.CopyTo(&m.prev)
		m.primed = true
		return false, 0
	}

	diff := gocv.NewMat()
	defer diff.Close()
	gocv.AbsDiff(blurred, m.prev, &diff)

	thresh := gocv.NewMat()
	defer thresh.Close()
	gocv.Threshold(diff, &thresh, diffThreshold, 255, gocv.ThresholdBinary)

	changed := gocv.CountNonZero(thresh)
	total := thresh.Rows() * thresh.Cols()
	percent := float64(changed) / float64(total) * 100.0

	blurred.CopyTo(&m.prev)
	return percent > m.threshold, percent
}

// Reset clears the baseline so the next frame primes a fresh one.
func (m *MotionGate) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.prev.Empty() {
		m.prev.Close()
		m.prev = gocv.NewMat()
	}
	m.primed = false
}

// SetThreshold updates the changed-pixel percentage threshold.
// Non-positive values are ignored.
func (m *MotionGate) SetThreshold(threshold float64) {
	if threshold <= 0 {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.threshold = threshold
}

// Close releases the baseline frame.
func (m *MotionGate) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.prev.Empty() {
		m.prev.Close()
		m.prev = gocv.NewMat()
	}
	m.primed = false
}
