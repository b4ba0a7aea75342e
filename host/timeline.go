package host

import "github.com/phanxgames/motion"

// TimelinePlugin drives a single timeline as a host plugin.
type TimelinePlugin struct {
	tl *motion.Timeline
}

// NewTimelinePlugin wraps tl.
func NewTimelinePlugin(tl *motion.Timeline) *TimelinePlugin {
	return &TimelinePlugin{tl: tl}
}

// Timeline returns the wrapped timeline.
func (p *TimelinePlugin) Timeline() *motion.Timeline { return p.tl }

// Name implements Plugin.
func (p *TimelinePlugin) Name() string {
	if n := p.tl.Name(); n != "" {
		return "timeline " + n
	}
	return "timeline"
}

// Register starts the timeline, surfacing builder errors before the first
// frame.
func (p *TimelinePlugin) Register() error { return p.tl.Start() }

// Unregister implements Plugin.
func (p *TimelinePlugin) Unregister() error { return nil }

// Update implements Plugin.
func (p *TimelinePlugin) Update(dt float64) error { return p.tl.Update(dt) }

// Done reports whether the timeline has terminated and will not restart.
func (p *TimelinePlugin) Done() bool {
	return p.tl.State() == motion.Terminated && !p.tl.Repeating()
}
