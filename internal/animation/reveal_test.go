package animation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/organic-report/internal/animation"
	"github.com/vfg2006/organic-report/internal/animation/mocks"
	"go.uber.org/mock/gomock"
)

func TestReveal_Trigger(t *testing.T) {
	r := &animation.Reveal{}
	calls := 0
	r.OnReveal(func() { calls++ })

	assert.Equal(t, animation.Hidden, r.State())
	assert.True(t, r.Trigger())
	assert.False(t, r.Trigger())
	assert.Equal(t, animation.Revealed, r.State())
	assert.Equal(t, 1, calls)

	// registrado depois da revelação roda na hora
	late := false
	r.OnReveal(func() { late = true })
	assert.True(t, late)
	assert.Equal(t, "revealed", r.State().String())
}

func TestDetector_Watch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name     string
		run      func(t *testing.T, observer *mocks.MockObserver) *animation.Detector
		expected animation.RevealState
	}{
		{
			name: "Elemento nulo não observa e permanece oculto",
			run: func(t *testing.T, observer *mocks.MockObserver) *animation.Detector {
				d := animation.NewDetector()
				d.Watch(observer, nil, animation.DefaultRevealThreshold)
				return d
			},
			expected: animation.Hidden,
		},
		{
			name: "Ponteiro nulo tipado também é ignorado",
			run: func(t *testing.T, observer *mocks.MockObserver) *animation.Detector {
				var el *fakeElement
				d := animation.NewDetector()
				d.Watch(observer, el, animation.DefaultRevealThreshold)
				return d
			},
			expected: animation.Hidden,
		},
		{
			name: "Interseção abaixo do limiar não revela",
			run: func(t *testing.T, observer *mocks.MockObserver) *animation.Detector {
				el := &fakeElement{id: "kpi"}
				var cb func(animation.IntersectionEntry)
				observer.EXPECT().
					OnIntersect(el, animation.DefaultRevealThreshold, gomock.Any()).
					DoAndReturn(func(_ animation.Element, _ float64, fn func(animation.IntersectionEntry)) func() {
						cb = fn
						return func() {}
					})

				d := animation.NewDetector()
				d.Watch(observer, el, animation.DefaultRevealThreshold)
				require.NotNil(t, cb)
				cb(animation.IntersectionEntry{Target: el, Ratio: 0.1, IsIntersecting: true})
				assert.True(t, d.Observing())
				return d
			},
			expected: animation.Hidden,
		},
		{
			name: "Primeira interseção qualificada revela e desconecta uma vez",
			run: func(t *testing.T, observer *mocks.MockObserver) *animation.Detector {
				el := &fakeElement{id: "bar"}
				disconnects := 0
				var cb func(animation.IntersectionEntry)
				observer.EXPECT().
					OnIntersect(el, animation.DefaultRevealThreshold, gomock.Any()).
					DoAndReturn(func(_ animation.Element, _ float64, fn func(animation.IntersectionEntry)) func() {
						cb = fn
						return func() { disconnects++ }
					})

				d := animation.NewDetector()
				d.Watch(observer, el, animation.DefaultRevealThreshold)
				cb(animation.IntersectionEntry{Target: el, Ratio: 0.15, IsIntersecting: true})
				cb(animation.IntersectionEntry{Target: el, Ratio: 1, IsIntersecting: true})
				assert.Equal(t, 1, disconnects)
				assert.False(t, d.Observing())
				return d
			},
			expected: animation.Revealed,
		},
		{
			name: "Callback síncrono dentro de OnIntersect",
			run: func(t *testing.T, observer *mocks.MockObserver) *animation.Detector {
				el := &fakeElement{id: "sync"}
				disconnects := 0
				observer.EXPECT().
					OnIntersect(el, animation.DefaultRevealThreshold, gomock.Any()).
					DoAndReturn(func(target animation.Element, _ float64, fn func(animation.IntersectionEntry)) func() {
						fn(animation.IntersectionEntry{Target: target, Ratio: 0.5, IsIntersecting: true})
						return func() { disconnects++ }
					})

				d := animation.NewDetector()
				d.Watch(observer, el, animation.DefaultRevealThreshold)
				assert.Equal(t, 1, disconnects)
				assert.False(t, d.Observing())
				return d
			},
			expected: animation.Revealed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			observer := mocks.NewMockObserver(ctrl)
			d := tt.run(t, observer)
			assert.Equal(t, tt.expected, d.Reveal().State())
		})
	}
}

func TestDetector_WatchWithoutObserver(t *testing.T) {
	d := animation.NewDetector()
	d.Watch(nil, &fakeElement{id: "x"}, animation.DefaultRevealThreshold)

	assert.False(t, d.Observing())
	assert.False(t, d.Reveal().Visible())
}
