package capture

import (
	"errors"
	"testing"

	"gocv.io/x/gocv"
)

func testFrames(n int) []*gocv.Mat {
	frames := make([]*gocv.Mat, n)
	for i := range frames {
		mat := gocv.NewMatWithSize(4, 4, gocv.MatTypeCV8UC3)
		frames[i] = &mat
	}
	return frames
}

func closeFrames(frames []*gocv.Mat) {
	for _, f := range frames {
		f.Close()
	}
}

func TestMockCamera_Playback(t *testing.T) {
	frames := testFrames(2)
	defer closeFrames(frames)

	cam := NewMockCamera(frames, false)

	if _, err := cam.ReadFrame(); !errors.Is(err, ErrCameraNotOpen) {
		t.Errorf("read before open: err = %v, want ErrCameraNotOpen", err)
	}

	if err := cam.Open(); err != nil {
		t.Fatalf("Open() error = %v", err)
	}

	for i := 0; i < 2; i++ {
		frame, err := cam.ReadFrame()
		if err != nil {
			t.Fatalf("frame %d: %v", i, err)
		}
		frame.Close()
	}

	if _, err := cam.ReadFrame(); !errors.Is(err, ErrReadFailed) {
		t.Errorf("exhausted sequence: err = %v, want ErrReadFailed", err)
	}
}

func TestMockCamera_Loop(t *testing.T) {
	frames := testFrames(1)
	defer closeFrames(frames)

	cam := NewMockCamera(frames, true)
	if err := cam.Open(); err != nil {
		t.Fatalf("Open() error = %v", err)
	}

	for i := 0; i < 5; i++ {
		frame, err := cam.ReadFrame()
		if err != nil {
			t.Fatalf("loop read %d: %v", i, err)
		}
		frame.Close()
	}
}

func TestMockCamera_FPS(t *testing.T) {
	cam := NewMockCamera(nil, false)

	cam.SetFPS(5)
	if got := cam.FPS(); got != 5 {
		t.Errorf("FPS() = %d, want 5", got)
	}

	cam.SetFPS(0) // ignored
	if got := cam.FPS(); got != 5 {
		t.Errorf("FPS() after SetFPS(0) = %d, want 5", got)
	}
}

func TestMockCamera_OpenClose(t *testing.T) {
	cam := NewMockCamera(nil, false)

	if cam.IsOpen() {
		t.Error("camera open before Open()")
	}
	cam.Open()
	if !cam.IsOpen() {
		t.Error("camera not open after Open()")
	}
	cam.Close()
	if cam.IsOpen() {
		t.Error("camera still open after Close()")
	}
}
