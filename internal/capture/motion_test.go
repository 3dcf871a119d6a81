package capture

import (
	"testing"

	"gocv.io/x/gocv"
)

func TestMotionGate(t *testing.T) {
	black := gocv.NewMatWithSize(64, 64, gocv.MatTypeCV8UC3)
	defer black.Close()
	white := gocv.NewMatWithSizeFromScalar(gocv.NewScalar(255, 255, 255, 0), 64, 64, gocv.MatTypeCV8UC3)
	defer white.Close()

	t.Run("first frame primes without motion", func(t *testing.T) {
		gate := NewMotionGate(1.0)
		defer gate.Close()

		if moved, _ := gate.Detect(&black); moved {
			t.Error("priming frame counted as motion")
		}
	})

	t.Run("full frame change is motion", func(t *testing.T) {
		gate := NewMotionGate(1.0)
		defer gate.Close()

		gate.Detect(&black)
		moved, percent := gate.Detect(&white)
		if !moved {
			t.Error("black to white transition not detected")
		}
		if percent < 50 {
			t.Errorf("changed percent = %f, want most of the frame", percent)
		}
	})

	t.Run("identical frames are static", func(t *testing.T) {
		gate := NewMotionGate(1.0)
		defer gate.Close()

		gate.Detect(&white)
		if moved, percent := gate.Detect(&white); moved {
			t.Errorf("identical frames counted as motion (%f%%)", percent)
		}
	})

	t.Run("reset reprimes the baseline", func(t *testing.T) {
		gate := NewMotionGate(1.0)
		defer gate.Close()

		gate.Detect(&black)
		gate.Reset()
		if moved, _ := gate.Detect(&white); moved {
			t.Error("first frame after Reset counted as motion")
		}
	})

	t.Run("nil and empty frames are ignored", func(t *testing.T) {
		gate := NewMotionGate(1.0)
		defer gate.Close()

		if moved, _ := gate.Detect(nil); moved {
			t.Error("nil frame counted as motion")
		}
		empty := gocv.NewMat()
		defer empty.Close()
		if moved, _ := gate.Detect(&empty); moved {
			t.Error("empty frame counted as motion")
		}
	})
}
