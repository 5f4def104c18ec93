package profiler

import "time"

// ProfilerBuilderOption is a functional option for configuring a Profiler.
type ProfilerBuilderOption func(*Profiler)

// WithUpdateInterval sets how often Tick reports. Zero reports on every tick.
//
// Parameters:
//   - d: the report interval
//
// Returns:
//   - ProfilerBuilderOption: option function to apply
func WithUpdateInterval(d time.Duration) ProfilerBuilderOption {
	return func(p *Profiler) {
		p.updateInterval = max(d, 0)
	}
}

// WithSilent builds reports without logging them.
//
// Returns:
//   - ProfilerBuilderOption: option function to apply
func WithSilent() ProfilerBuilderOption {
	return func(p *Profiler) {
		p.silent = true
	}
}
