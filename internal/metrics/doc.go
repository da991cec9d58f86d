// Package metrics exposes Prometheus metrics for the element builder and
// the development server.
//
// Builder metrics are collected by an elt.Observer:
//
//	reg := prometheus.NewRegistry()
//	obs := metrics.NewObserver(metrics.WithRegistry(reg))
//	b := elt.New(elt.WithObserver(obs))
//
// HTTP metrics are collected by Middleware, which wraps any http.Handler.
package metrics
