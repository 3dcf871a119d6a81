package app

import (
	"log"
	"time"

	"github.com/ayusman/orrery/internal/detector"
	"github.com/ayusman/orrery/internal/gesture"
)

// run is the pipeline goroutine. Two independent tickers drive it: the
// render ticker steps the scene engine at a fixed rate regardless of
// camera health, and the capture ticker samples frames at a motion
// dependent rate. The scene never waits on the camera.
func (a *App) run(stopCh chan struct{}) {
	render := time.NewTicker(time.Second / RenderFPS)
	defer render.Stop()

	capture := time.NewTicker(time.Second / IdleFPS)
	defer capture.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-render.C:
			a.engine.Step(a.State())
		case <-capture.C:
			if next := a.captureOnce(); next > 0 {
				capture.Reset(time.Second / time.Duration(next))
			}
		}
	}
}

// captureOnce processes one capture tick: read a frame, update the
// motion gate, and classify when active. It returns a new capture FPS
// when the idle/active mode flipped, or 0 to keep the current rate.
// Only the pipeline goroutine calls this.
func (a *App) captureOnce() int {
	if !a.IsEnabled() || !a.cameraOK {
		return 0
	}

	frame, err := a.camera.ReadFrame()
	if err != nil {
		// Transient read failures are expected during camera warmup.
		return 0
	}
	defer frame.Close()

	moved, _ := a.motion.Detect(frame)
	now := time.Now().UnixMilli()

	next := 0
	if moved {
		a.lastMotion = now
		if !a.active {
			a.active = true
			a.camera.SetFPS(ActiveFPS)
			next = ActiveFPS
			log.Println("Motion detected, switching to active capture")
		}
	} else if a.active && now-a.lastMotion > IdleTimeoutMs {
		a.active = false
		a.camera.SetFPS(IdleFPS)
		next = IdleFPS
		log.Println("No motion, dropping to idle capture")
		// No tracked hand once idle. The scene returns to orbit.
		a.setState(gesture.Open)
	}

	if !a.active {
		return next
	}

	hands, err := a.Detector().Detect(frame)
	if err != nil {
		// Best effort. A failed detection keeps the previous state.
		log.Printf("Detection failed: %v", err)
		return next
	}

	var hand *detector.HandLandmarks
	if len(hands) > 0 {
		hand = hands[0].Sanitize()
	}
	a.setState(gesture.Classify(hand))
	return next
}
