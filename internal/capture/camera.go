// Package capture provides camera capture and motion gating on top of
// GoCV (OpenCV).
package capture

import (
	"errors"
	"sync"

	"gocv.io/x/gocv"
)

// Default camera settings. The resolution is deliberately modest: the
// landmark estimator does not benefit from more pixels and the capture
// loop shares a core with the render loop.
const (
	DefaultFPS    = 15
	DefaultWidth  = 640
	DefaultHeight = 480
)

// Errors returned by ReadFrame.
var (
	ErrCameraNotOpen = errors.New("camera is not open")
	ErrReadFailed    = errors.New("failed to read frame from camera")
	ErrEmptyFrame    = errors.New("captured frame is empty")
)

// Camera is the interface for frame sources. The device-backed
// implementation and the test mock both satisfy it.
type Camera interface {
	Open() error
	Close() error
	// ReadFrame returns the next frame. The caller owns the returned
	// Mat and must Close it.
	ReadFrame() (*gocv.Mat, error)
	SetFPS(fps int)
	FPS() int
	IsOpen() bool
}

// device captures from a physical camera via GoCV.
type device struct {
	deviceID int
	mu       sync.Mutex
	capture  *gocv.VideoCapture
	fps      int
	open     bool
}

// NewCamera creates a Camera for the given device ID.
func NewCamera(deviceID int) Camera {
	return &device{
		deviceID: deviceID,
		fps:      DefaultFPS,
	}
}

// Open acquires the camera device and configures resolution and FPS.
func (d *device) Open() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.open {
		return nil
	}

	cap, err := gocv.OpenVideoCapture(d.deviceID)
	if err != nil {
		return err
	}
	cap.Set(gocv.VideoCaptureFrameWidth, DefaultWidth)
	cap.Set(gocv.VideoCaptureFrameHeight, DefaultHeight)
	cap.Set(gocv.VideoCaptureFPS, float64(d.fps))

	d.capture = cap
	d.open = true
	return nil
}

// Close releases the camera device. Safe to call when already closed.
func (d *device) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.open || d.capture == nil {
		d.open = false
		return nil
	}

	err := d.capture.Close()
	d.capture = nil
	d.open = false
	return err
}

// ReadFrame reads a single frame from the camera.
func (d *device) ReadFrame() (*gocv.Mat, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.open || d.capture == nil {
		return nil, ErrCameraNotOpen
	}

	mat := gocv.NewMat()
	if ok := d.capture.Read(&mat); !ok {
		mat.Close()
		return nil, ErrReadFailed
	}
	if mat.Empty() {
		mat.Close()
		return nil, ErrEmptyFrame
	}
	return &mat, nil
}

// SetFPS sets the capture rate. Non-positive values are ignored.
func (d *device) SetFPS(fps int) {
	if fps <= 0 {
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	d.fps = fps
	if d.capture != nil {
		d.capture.Set(gocv.VideoCaptureFPS, float64(fps))
	}
}

// FPS returns the current capture rate setting.
func (d *device) FPS() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.fps
}

// IsOpen reports whether the camera device is acquired.
func (d *device) IsOpen() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.open
}
