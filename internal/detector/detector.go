package detector

import "gocv.io/x/gocv"

// Detector is the interface for hand landmark estimators.
type Detector interface {
	// Detect analyzes a video frame and returns landmarks for every
	// detected hand. An empty slice means no hand in the frame.
	Detect(frame *gocv.Mat) ([]HandLandmarks, error)

	// Close releases any resources held by the detector.
	Close() error
}

// Config holds hand detection options.
type Config struct {
	// MaxHands is the maximum number of hands to detect. The scene is
	// driven by a single hand, so the default is 1.
	MaxHands int

	// MinConfidence is the minimum detection confidence (0.0-1.0).
	MinConfidence float64

	// MinTrackingConf is the minimum tracking confidence (0.0-1.0).
	MinTrackingConf float64
}

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() Config {
	return Config{
		MaxHands:        1,
		MinConfidence:   0.5,
		MinTrackingConf: 0.5,
	}
}
