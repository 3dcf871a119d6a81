// Package gesture classifies one frame of hand landmarks into the
// binary open/fist signal that drives the scene.
package gesture

import "github.com/ayusman/orrery/internal/detector"

// State is the per-frame gesture classification.
type State int

const (
	// Open is the relaxed state: hand open, or no hand detected at all.
	// It selects the orbiting scene configuration.
	Open State = iota
	// Fist selects the merge configuration.
	Fist
)

// String returns the state name used in logs, the event store, and the
// HTTP API.
func (s State) String() string {
	if s == Fist {
		return "fist"
	}
	return "open"
}

// closedVotes is how many of the four tracked fingers must be curled
// for the hand to count as a fist.
const closedVotes = 3

// Classify derives the gesture state from a single frame's landmarks.
//
// A finger counts as closed when its tip sits strictly lower in image
// space than its PIP joint (Y increases downward, so a curled tip has
// the larger Y). Equal coordinates count as open. A nil hand is not an
// error; it classifies as Open so an untracked scene keeps orbiting.
//
// The classification is pure and carries no history: it is recomputed
// independently every frame and may flicker near the 3-of-4 boundary.
func Classify(hand *detector.HandLandmarks) State {
	if hand == nil {
		return Open
	}

	closed := 0
	for _, f := range detector.TrackedFingers {
		if hand.Points[f.Tip].Y > hand.Points[f.PIP].Y {
			closed++
		}
	}

	if closed >= closedVotes {
		return Fist
	}
	return Open
}
