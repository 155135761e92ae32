package animation_test

import "github.com/vfg2006/organic-report/internal/animation"

type fakeElement struct {
	id string
}

func (e *fakeElement) ID() string {
	return e.id
}

// manualObserver guarda as assinaturas para que o teste dispare as interseções
type manualObserver struct {
	callbacks    map[string]func(animation.IntersectionEntry)
	disconnected map[string]int
}

func newManualObserver() *manualObserver {
	return &manualObserver{
		callbacks:    make(map[string]func(animation.IntersectionEntry)),
		disconnected: make(map[string]int),
	}
}

func (o *manualObserver) OnIntersect(target animation.Element, _ float64, cb func(animation.IntersectionEntry)) func() {
	id := target.ID()
	o.callbacks[id] = cb
	return func() {
		o.disconnected[id]++
		delete(o.callbacks, id)
	}
}

func (o *manualObserver) fire(el animation.Element, ratio float64) {
	if cb, ok := o.callbacks[el.ID()]; ok {
		cb(animation.IntersectionEntry{Target: el, Ratio: ratio, IsIntersecting: ratio > 0})
	}
}

func (o *manualObserver) watching(el animation.Element) bool {
	_, ok := o.callbacks[el.ID()]
	return ok
}
