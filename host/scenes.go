package host

import (
	"errors"
	"fmt"

	"github.com/phanxgames/motion"
)

// Scene is one stage of a presentation. Scenes are loaded together when the
// SceneManager registers and then updated one at a time, in the order they
// were added, until each reports Done.
type Scene interface {
	Load() error
	Unload() error
	Update(dt float64) error
	Done() bool
}

type namedScene struct {
	name  string
	scene Scene
}

// SceneManager is a plugin that plays its scenes back to back. The sequence
// itself runs as the Manual directive of an internal timeline, so scene
// playback follows the same frame rules as any other animation.
type SceneManager struct {
	scenes  []namedScene
	current int
	loaded  int
	locked  bool
	tl      *motion.Timeline
}

// NewSceneManager returns an empty scene manager.
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// AddScene appends a scene. Scenes cannot be added once the manager is
// registered.
func (m *SceneManager) AddScene(name string, s Scene) error {
	if m.locked {
		return fmt.Errorf("add scene %q: %w", name, ErrLocked)
	}
	m.scenes = append(m.scenes, namedScene{name: name, scene: s})
	return nil
}

// Name implements Plugin.
func (m *SceneManager) Name() string { return "scene manager" }

// Register loads every scene and starts playback at the first one.
func (m *SceneManager) Register() error {
	m.locked = true
	m.current = 0
	for m.loaded = 0; m.loaded < len(m.scenes); m.loaded++ {
		ns := m.scenes[m.loaded]
		if err := ns.scene.Load(); err != nil {
			m.locked = false
			return errors.Join(fmt.Errorf("load scene %q: %w", ns.name, err), m.unload())
		}
	}
	m.tl = motion.New(motion.Empty{}).Named("scenes").Manual(m.step)
	return m.tl.Start()
}

// step updates the first scene that is not done and reports completion once
// every scene is done.
func (m *SceneManager) step(_ motion.Target, dt float64) (bool, error) {
	for m.current < len(m.scenes) {
		ns := m.scenes[m.current]
		if ns.scene.Done() {
			m.current++
			continue
		}
		if err := ns.scene.Update(dt); err != nil {
			return false, fmt.Errorf("scene %q: %w", ns.name, err)
		}
		return false, nil
	}
	return true, nil
}

// Update implements Plugin.
func (m *SceneManager) Update(dt float64) error {
	if m.tl == nil {
		return nil
	}
	return m.tl.Update(dt)
}

// Unregister unloads every loaded scene and unlocks the manager.
func (m *SceneManager) Unregister() error {
	m.locked = false
	m.tl = nil
	return m.unload()
}

func (m *SceneManager) unload() error {
	var errs []error
	for i := m.loaded - 1; i >= 0; i-- {
		ns := m.scenes[i]
		if err := ns.scene.Unload(); err != nil {
			errs = append(errs, fmt.Errorf("unload scene %q: %w", ns.name, err))
		}
	}
	m.loaded = 0
	return errors.Join(errs...)
}

// Current returns the name of the scene being played, or "" when every scene
// is done.
func (m *SceneManager) Current() string {
	if m.current >= len(m.scenes) {
		return ""
	}
	return m.scenes[m.current].name
}

// Done reports whether every scene has finished.
func (m *SceneManager) Done() bool {
	return m.tl != nil && m.tl.State() == motion.Terminated
}
