// Package scene organizes game screens and the transitions between them.
//
// A Scene is one screen (menu, gameplay, pause overlay). The Manager
// owns the active scene, drives its per-frame Update and Render, and
// handles switching: immediately via SwitchTo, or at the next Update via
// QueueSwitch for transitions requested from inside a scene's own
// Update.
package scene

import (
	"github.com/gogpu/sprite"
)

// Scene is one game screen driven by a Manager.
type Scene interface {
	// Enter is called when the scene becomes active. The manager is
	// passed so the scene can request transitions.
	Enter(m *Manager)

	// Exit is called when the scene is deactivated, before the next
	// scene's Enter.
	Exit()

	// Update advances the scene by dt seconds.
	Update(dt float32)

	// Render queues the scene's sprites. The batch is already open;
	// the manager's caller owns Begin and End.
	Render(b *sprite.Batch)
}

// Manager owns the active scene and processes transitions.
//
// Manager is not safe for concurrent use; drive it from the game loop.
type Manager struct {
	current Scene
	queued  Scene
	pending bool
}

// SwitchTo makes s the active scene immediately: the current scene's
// Exit runs, then s.Enter. A nil s just deactivates the current scene.
func (m *Manager) SwitchTo(s Scene) {
	if m.current != nil {
		m.current.Exit()
	}
	m.current = s
	if m.current != nil {
		sprite.Logger().Debug("scene: switched", "scene", sceneName(s))
		m.current.Enter(m)
	}
}

// QueueSwitch defers a switch to s until the next Update. Safe to call
// from inside the active scene's Update.
func (m *Manager) QueueSwitch(s Scene) {
	m.queued = s
	m.pending = true
}

// Update processes a queued switch, updates the active scene, then
// processes a switch the scene queued during its own Update.
func (m *Manager) Update(dt float32) {
	m.processQueued()
	if m.current != nil {
		m.current.Update(dt)
	}
	m.processQueued()
}

// Render draws the active scene, if any.
func (m *Manager) Render(b *sprite.Batch) {
	if m.current != nil {
		m.current.Render(b)
	}
}

// HasScene reports whether a scene is active.
func (m *Manager) HasScene() bool {
	return m.current != nil
}

// Current returns the active scene, or nil.
func (m *Manager) Current() Scene {
	return m.current
}

// Close exits the active scene and drops any queued one.
func (m *Manager) Close() {
	if m.current != nil {
		m.current.Exit()
		m.current = nil
	}
	m.queued = nil
	m.pending = false
}

func (m *Manager) processQueued() {
	if m.pending {
		m.pending = false
		next := m.queued
		m.queued = nil
		m.SwitchTo(next)
	}
}

// sceneName returns a loggable name for a scene.
func sceneName(s Scene) string {
	type named interface{ Name() string }
	if n, ok := s.(named); ok {
		return n.Name()
	}
	return "unnamed"
}
