// Package app wires the capture, classification, and scene components
// into the running pipeline.
package app

import (
	"fmt"
	"image"
	"log"
	"strconv"
	"sync"

	"github.com/ayusman/orrery/internal/capture"
	"github.com/ayusman/orrery/internal/detector"
	"github.com/ayusman/orrery/internal/gesture"
	"github.com/ayusman/orrery/internal/scene"
	"github.com/ayusman/orrery/internal/store"
	"github.com/ayusman/orrery/internal/texture"
)

// Pipeline timing constants.
const (
	// RenderFPS is the rate of the scene transition loop. The engine
	// steps once per render tick, unconditionally.
	RenderFPS = 30
	// IdleFPS is the capture rate when no motion is detected.
	IdleFPS = 5
	// ActiveFPS is the capture rate during active detection.
	ActiveFPS = 15
	// IdleTimeoutMs is how long without motion before dropping back to
	// idle capture.
	IdleTimeoutMs = 2000
)

// Config holds application options. Store settings override the zero
// values here.
type Config struct {
	Store        *store.Store
	CameraID     int
	MotionThresh float64
	TextureSeed  int64
	TextureSize  int
}

// App owns the full pipeline: camera, motion gate, landmark detector,
// gesture state, texture cache, and the scene engine.
type App struct {
	config   Config
	camera   capture.Camera
	motion   *capture.MotionGate
	graph    *scene.SnapshotGraph
	engine   *scene.Engine
	textures *texture.Cache

	mu       sync.RWMutex
	detector detector.Detector
	enabled  bool
	state    gesture.State
	onState  func(gesture.State)
	stopCh   chan struct{}

	// capture-loop state, touched only from the pipeline goroutine
	// (or single-threaded tests).
	active     bool
	lastMotion int64 // unix milliseconds
	cameraOK   bool
}

// New creates an App. Persisted settings from the store override the
// config's camera ID, motion threshold, and speed factor.
func New(config Config) *App {
	cfg := scene.DefaultConfig()
	applyStoredSettings(config.Store, &config, &cfg)

	if config.MotionThresh <= 0 {
		config.MotionThresh = 1.0 // 1% pixel change
	}
	if config.TextureSize <= 0 {
		config.TextureSize = texture.DefaultSize
	}

	graph := scene.NewSnapshotGraph()
	sun := scene.Sun()
	planets := scene.Planets()

	a := &App{
		config:   config,
		camera:   capture.NewCamera(config.CameraID),
		motion:   capture.NewMotionGate(config.MotionThresh),
		graph:    graph,
		engine:   scene.NewEngine(graph, sun, planets, cfg),
		textures: texture.NewCache(),
		state:    gesture.Open,
	}

	a.buildTextures(sun, planets)

	// Prefer MediaPipe; a missing estimator is a degraded mode, not an
	// error. The mock detector reports no hands, so classification
	// permanently yields Open.
	if mp, err := detector.NewMediaPipeDetector(detector.DefaultConfig()); err == nil {
		a.detector = mp
		log.Println("Using MediaPipe hand detection")
	} else {
		log.Printf("MediaPipe not available (%v), scene will stay in orbit mode", err)
		a.detector = detector.NewMockDetector()
	}

	return a
}

// applyStoredSettings copies persisted tunables into the configs.
func applyStoredSettings(s *store.Store, config *Config, cfg *scene.Config) {
	if s == nil {
		return
	}
	if v, err := s.GetSetting(store.SettingCameraID); err == nil {
		if id, err := strconv.Atoi(v); err == nil {
			config.CameraID = id
		}
	}
	if v, err := s.GetSetting(store.SettingMotionThresh); err == nil {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			config.MotionThresh = f
		}
	}
	if v, err := s.GetSetting(store.SettingSpeedFactor); err == nil {
		if f, err := strconv.ParseFloat(v, 32); err == nil && f > 0 {
			cfg.SpeedFactor = float32(f)
		}
	}
}

// buildTextures synthesizes and caches every texture the scene needs.
func (a *App) buildTextures(sun scene.Body, planets []scene.Body) {
	synth := texture.NewSynthesizer(a.config.TextureSeed, a.config.TextureSize)

	a.textures.GetOrCreate(sun.Name, func() *image.NRGBA {
		return synth.Surface(sun.Archetype, sun.BaseColor, sun.NoiseFreq)
	})
	a.textures.GetOrCreate(sun.Name+"/glow", synth.Glow)
	a.textures.GetOrCreate("starfield", synth.Starfield)

	for _, b := range planets {
		body := b
		a.textures.GetOrCreate(body.Name, func() *image.NRGBA {
			return synth.Surface(body.Archetype, body.BaseColor, body.NoiseFreq)
		})
		if body.HasRing {
			a.textures.GetOrCreate(body.Name+"/ring", synth.RingRamp)
		}
	}
}

// SetEnabled enables or disables gesture capture. Disabling forces the
// state back to Open so the scene does not stay merged.
func (a *App) SetEnabled(enabled bool) {
	a.mu.Lock()
	a.enabled = enabled
	a.mu.Unlock()

	if !enabled {
		a.setState(gesture.Open)
	}
}

// IsEnabled reports whether gesture capture is enabled.
func (a *App) IsEnabled() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.enabled
}

// State returns the most recent gesture classification.
func (a *App) State() gesture.State {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.state
}

// OnState registers a callback fired on every state transition.
func (a *App) OnState(fn func(gesture.State)) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.onState = fn
}

// setState records a new classification, logging and persisting the
// transition when the state actually changed.
func (a *App) setState(s gesture.State) {
	a.mu.Lock()
	changed := s != a.state
	a.state = s
	fn := a.onState
	a.mu.Unlock()

	if !changed {
		return
	}

	log.Printf("Gesture state: %s", s)
	if a.config.Store != nil {
		if _, err := a.config.Store.RecordEvent(s.String()); err != nil {
			log.Printf("Failed to record gesture event: %v", err)
		}
	}
	if fn != nil {
		fn(s)
	}
}

// SetMotionThreshold updates the motion gate's changed-pixel
// percentage threshold on the running pipeline.
func (a *App) SetMotionThreshold(threshold float64) {
	a.motion.SetThreshold(threshold)
}

// SetDetector replaces the landmark detector. Used by tests and by the
// server when a client pushes detector settings.
func (a *App) SetDetector(d detector.Detector) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.detector = d
}

// SetCamera replaces the frame source. Must be called before Start.
func (a *App) SetCamera(c capture.Camera) {
	a.camera = c
}

// Detector returns the current landmark detector.
func (a *App) Detector() detector.Detector {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.detector
}

// Camera returns the frame source.
func (a *App) Camera() capture.Camera {
	return a.camera
}

// Graph returns the snapshot graph the engine writes into.
func (a *App) Graph() *scene.SnapshotGraph {
	return a.graph
}

// Engine returns the scene transition engine.
func (a *App) Engine() *scene.Engine {
	return a.engine
}

// Textures returns the synthesized texture cache.
func (a *App) Textures() *texture.Cache {
	return a.textures
}

// Start opens the camera and launches the pipeline goroutine. A camera
// that cannot be opened is a degraded mode: the scene keeps rendering
// in orbit configuration with classification disabled.
func (a *App) Start() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.stopCh != nil {
		return nil
	}

	if err := a.camera.Open(); err != nil {
		log.Printf("Camera unavailable (%v), running scene without gesture input", err)
		a.cameraOK = false
	} else {
		a.cameraOK = true
		a.camera.SetFPS(IdleFPS)
	}

	a.stopCh = make(chan struct{})
	go a.run(a.stopCh)

	log.Println("Pipeline started")
	return nil
}

// Stop halts the pipeline and releases every acquired resource. The
// gesture state is forced back to Open so a torn-down camera cannot
// leave the scene merged.
func (a *App) Stop() {
	a.mu.Lock()
	if a.stopCh != nil {
		close(a.stopCh)
		a.stopCh = nil
	}
	a.mu.Unlock()

	a.setState(gesture.Open)

	if err := a.camera.Close(); err != nil {
		log.Printf("Error closing camera: %v", err)
	}
	a.motion.Close()

	a.mu.RLock()
	d := a.detector
	a.mu.RUnlock()
	if d != nil {
		if err := d.Close(); err != nil {
			log.Printf("Error closing detector: %v", err)
		}
	}

	log.Println("Pipeline stopped")
}

// Describe returns a human-readable pipeline summary for the health
// endpoint.
func (a *App) Describe() string {
	return fmt.Sprintf("%d bodies, camera %d", len(a.engine.Bodies()), a.config.CameraID)
}
