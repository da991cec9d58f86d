package elt

// Observer receives builder events. internal/metrics provides a Prometheus
// implementation.
type Observer interface {
	ElementBuilt(tag string, props, children int)
	ListenerRegistered(event string)
	BuildFailed(tag, code string)
}

type nopObserver struct{}

func (nopObserver) ElementBuilt(string, int, int) {}
func (nopObserver) ListenerRegistered(string)     {}
func (nopObserver) BuildFailed(string, string)    {}
