package host

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
)

// ErrLocked is returned when a plugin's configuration is changed after it has
// been registered.
var ErrLocked = errors.New("host: locked after register")

// Plugin is a capability driven by a Host once per frame. Register and
// Unregister bracket its life; Update receives the frame delta in seconds.
type Plugin interface {
	Name() string
	Register() error
	Unregister() error
	Update(dt float64) error
}

// Host owns an ordered list of plugins and steps them with one delta per
// frame. There is no global host; create one per window or headless run.
type Host struct {
	plugins    []Plugin
	registered bool
	frame      int
	elapsed    float64
	logger     *slog.Logger
}

// New returns a host driving the given plugins in order.
func New(plugins ...Plugin) *Host {
	return &Host{plugins: plugins}
}

// Add appends a plugin. Adding after Register returns ErrLocked.
func (h *Host) Add(p Plugin) error {
	if h.registered {
		return fmt.Errorf("add %s: %w", p.Name(), ErrLocked)
	}
	h.plugins = append(h.plugins, p)
	return nil
}

// SetLogger sets the logger used for warnings that cannot be returned as
// errors, such as a failed rollback. A nil logger restores slog.Default.
func (h *Host) SetLogger(l *slog.Logger) { h.logger = l }

func (h *Host) log() *slog.Logger {
	if h.logger != nil {
		return h.logger
	}
	return slog.Default()
}

// Plugins returns the plugins in update order.
func (h *Host) Plugins() []Plugin { return h.plugins }

// Register registers every plugin in order. If one fails, the plugins
// registered before it are unregistered again and the error is returned.
func (h *Host) Register() error {
	if h.registered {
		return nil
	}
	for i, p := range h.plugins {
		if err := p.Register(); err != nil {
			for j := i - 1; j >= 0; j-- {
				if uerr := h.plugins[j].Unregister(); uerr != nil {
					h.log().Warn("host: rollback unregister failed", "plugin", h.plugins[j].Name(), "err", uerr)
				}
			}
			return fmt.Errorf("register %s: %w", p.Name(), err)
		}
	}
	h.registered = true
	return nil
}

// Unregister unregisters every plugin in reverse order and returns all
// failures joined.
func (h *Host) Unregister() error {
	if !h.registered {
		return nil
	}
	var errs []error
	for i := len(h.plugins) - 1; i >= 0; i-- {
		p := h.plugins[i]
		if err := p.Unregister(); err != nil {
			errs = append(errs, fmt.Errorf("unregister %s: %w", p.Name(), err))
		}
	}
	h.registered = false
	return errors.Join(errs...)
}

// Step advances every plugin by dt seconds, registering the host first if
// needed. The first plugin error stops the frame.
func (h *Host) Step(dt float64) error {
	if dt < 0 || math.IsNaN(dt) || math.IsInf(dt, 0) {
		return fmt.Errorf("host: invalid frame delta %v", dt)
	}
	if !h.registered {
		if err := h.Register(); err != nil {
			return err
		}
	}
	for _, p := range h.plugins {
		if err := p.Update(dt); err != nil {
			return fmt.Errorf("frame %d: %s: %w", h.frame, p.Name(), err)
		}
	}
	h.frame++
	h.elapsed += dt
	return nil
}

// Frame returns the number of completed Steps.
func (h *Host) Frame() int { return h.frame }

// Elapsed returns the simulated seconds summed over completed Steps.
func (h *Host) Elapsed() float64 { return h.elapsed }

// Drive steps the host with every delta src produces and returns the number
// of frames stepped. It stops early when ctx is done.
func (h *Host) Drive(ctx context.Context, src DeltaSource) (int, error) {
	n := 0
	for {
		if err := ctx.Err(); err != nil {
			return n, err
		}
		dt, ok := src.Next()
		if !ok {
			return n, nil
		}
		if err := h.Step(dt); err != nil {
			return n, err
		}
		n++
	}
}
