// Package observe provides ready-made transition.Observer
// implementations: Prometheus metrics and OpenTelemetry spans.
//
// Wire one (or both, via transition.MultiObserver) into a group:
//
//	metrics := observe.NewMetrics(observe.WithNamespace("myapp"))
//	group := transition.NewGroup(cfg, transition.WithObserver(metrics))
package observe
