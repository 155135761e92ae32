package animation

import "time"

const (
	DefaultCounterDuration   = 1200 * time.Millisecond
	DefaultBarDuration       = time.Second
	DefaultBarStagger        = 80 * time.Millisecond
	DefaultOverlayMinPercent = 6.0
)

// Options reúne os parâmetros de temporização dos widgets
type Options struct {
	CounterDuration   time.Duration
	RevealThreshold   float64
	BarDuration       time.Duration
	BarStagger        time.Duration
	OverlayMinPercent float64
}

func DefaultOptions() Options {
	return Options{
		CounterDuration:   DefaultCounterDuration,
		RevealThreshold:   DefaultRevealThreshold,
		BarDuration:       DefaultBarDuration,
		BarStagger:        DefaultBarStagger,
		OverlayMinPercent: DefaultOverlayMinPercent,
	}
}

// WithDefaults preenche os campos zerados ou negativos com os valores padrão
func (o Options) WithDefaults() Options {
	d := DefaultOptions()
	if o.CounterDuration <= 0 {
		o.CounterDuration = d.CounterDuration
	}
	if o.RevealThreshold <= 0 || o.RevealThreshold > 1 {
		o.RevealThreshold = d.RevealThreshold
	}
	if o.BarDuration <= 0 {
		o.BarDuration = d.BarDuration
	}
	if o.BarStagger <= 0 {
		o.BarStagger = d.BarStagger
	}
	if o.OverlayMinPercent <= 0 {
		o.OverlayMinPercent = d.OverlayMinPercent
	}
	return o
}
