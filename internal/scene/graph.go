package scene

import (
	"sync"

	"cogentcore.org/core/math32"
)

// Graph is the seam between the engine and whatever draws the scene.
// The engine is the only writer; a renderer consumes the values on its
// own schedule. Node names are the body names plus the derived meshes
// "<body>/orbit" (orbit-path ring), "<body>/ring" (Saturn-style body
// ring), and "sun/glow" (billboard sprite).
type Graph interface {
	SetTransform(node string, pos math32.Vector3, scale, spin float32)
	SetOpacity(node string, alpha float32)
	SetVisible(node string, visible bool)
}

// Node is one snapshot entry of a scene-graph node.
type Node struct {
	Pos     math32.Vector3 `json:"pos"`
	Scale   float32        `json:"scale"`
	Spin    float32        `json:"spin"`
	Opacity float32        `json:"opacity"`
	Visible bool           `json:"visible"`
}

// SnapshotGraph is an in-memory Graph that external consumers (the
// WebSocket broadcaster, tests) read by taking snapshots.
type SnapshotGraph struct {
	mu    sync.RWMutex
	nodes map[string]*Node
}

// NewSnapshotGraph creates an empty snapshot graph.
func NewSnapshotGraph() *SnapshotGraph {
	return &SnapshotGraph{nodes: make(map[string]*Node)}
}

func (g *SnapshotGraph) node(name string) *Node {
	if n, ok := g.nodes[name]; ok {
		return n
	}
	n := &Node{Scale: 1, Opacity: 1, Visible: true}
	g.nodes[name] = n
	return n
}

// SetTransform implements Graph.
func (g *SnapshotGraph) SetTransform(name string, pos math32.Vector3, scale, spin float32) {
	g.mu.Lock()
	defer g.mu.Unlock()
	n := g.node(name)
	n.Pos = pos
	n.Scale = scale
	n.Spin = spin
}

// SetOpacity implements Graph.
func (g *SnapshotGraph) SetOpacity(name string, alpha float32) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.node(name).Opacity = alpha
}

// SetVisible implements Graph.
func (g *SnapshotGraph) SetVisible(name string, visible bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.node(name).Visible = visible
}

// Snapshot returns a copy of every node in the graph.
func (g *SnapshotGraph) Snapshot() map[string]Node {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make(map[string]Node, len(g.nodes))
	for name, n := range g.nodes {
		out[name] = *n
	}
	return out
}
