package transition

import "time"

// Observer receives transition lifecycle notifications. Implementations
// must be safe for concurrent use; completion notifications may arrive
// from timer goroutines.
//
// The observe package provides Prometheus and OpenTelemetry
// implementations.
type Observer interface {
	// TransitionStarted is called when a transition begins, after its
	// gate check passed.
	TransitionStarted(kind Kind)

	// TransitionFinished is called exactly once per transition with how
	// it resolved and how long it took.
	TransitionFinished(kind Kind, res Resolution, elapsed time.Duration)
}

// MultiObserver fans notifications out to several observers.
type MultiObserver []Observer

// TransitionStarted implements Observer.
func (m MultiObserver) TransitionStarted(kind Kind) {
	for _, o := range m {
		o.TransitionStarted(kind)
	}
}

// TransitionFinished implements Observer.
func (m MultiObserver) TransitionFinished(kind Kind, res Resolution, elapsed time.Duration) {
	for _, o := range m {
		o.TransitionFinished(kind, res, elapsed)
	}
}
