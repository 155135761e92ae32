package animation

import (
	"time"

	"github.com/vfg2006/organic-report/pkg/utils"
)

// Bar é uma barra horizontal cuja largura vai de 0 até Percent após a revelação,
// com atraso proporcional ao índice.
type Bar struct {
	Label   string
	Value   int64
	Percent float64
	Color   string
	Index   int

	opts      Options
	scheduler FrameScheduler

	detector *Detector
	mounted  bool
	width    float64
	start    time.Time
	started  bool
	done     bool
	frame    FrameID
	hasFrame bool
}

func NewBar(label string, value int64, percent float64, color string, index int, scheduler FrameScheduler, opts Options) *Bar {
	if index < 0 {
		index = 0
	}

	return &Bar{
		Label:     label,
		Value:     value,
		Percent:   clampPercent(percent),
		Color:     color,
		Index:     index,
		opts:      opts.WithDefaults(),
		scheduler: scheduler,
	}
}

func (b *Bar) Mount(observer Observer, el Element) {
	b.Unmount()

	b.mounted = true
	b.width = 0
	b.started = false
	b.done = false
	b.detector = NewDetector()
	b.detector.Reveal().OnReveal(b.begin)
	b.detector.Watch(observer, el, b.opts.RevealThreshold)
}

func (b *Bar) Unmount() {
	b.mounted = false
	if b.detector != nil {
		b.detector.Stop()
	}
	if b.hasFrame && b.scheduler != nil {
		b.scheduler.CancelFrame(b.frame)
	}
	b.hasFrame = false
}

func (b *Bar) begin() {
	if !b.mounted {
		return
	}

	if b.scheduler == nil {
		b.width = b.Percent
		b.done = true
		return
	}

	b.requestFrame()
}

func (b *Bar) step(now time.Time) {
	b.hasFrame = false
	if !b.mounted {
		return
	}

	if !b.started {
		b.start = now
		b.started = true
	}

	elapsed := now.Sub(b.start) - b.Delay()
	if elapsed < 0 {
		b.requestFrame()
		return
	}

	p := Clamp01(float64(elapsed) / float64(b.opts.BarDuration))
	b.width = b.Percent * BarEasing.At(p)
	if p >= 1 {
		b.width = b.Percent
		b.done = true
		return
	}

	b.requestFrame()
}

func (b *Bar) requestFrame() {
	b.frame = b.scheduler.RequestNextFrame(b.step)
	b.hasFrame = true
}

// Delay é o atraso da transição: Index * BarStagger
func (b *Bar) Delay() time.Duration {
	return time.Duration(b.Index) * b.opts.BarStagger
}

func (b *Bar) Duration() time.Duration {
	return b.opts.BarDuration
}

// Width é a largura atual do preenchimento, em porcentagem da trilha
func (b *Bar) Width() float64 {
	return b.width
}

// ShowsOverlay indica se o valor cabe dentro da barra
func (b *Bar) ShowsOverlay() bool {
	return b.Percent > b.opts.OverlayMinPercent
}

// Overlay é o valor exibido dentro do preenchimento; vazio antes da revelação
// ou quando a barra é estreita demais.
func (b *Bar) Overlay() string {
	if b.State() != Revealed || !b.ShowsOverlay() {
		return ""
	}
	return utils.FormatThousands(b.Value)
}

// PercentLabel é exibido sempre, independente da revelação
func (b *Bar) PercentLabel() string {
	return utils.FormatPercent(b.Percent)
}

func (b *Bar) State() RevealState {
	if b.detector == nil {
		return Hidden
	}
	return b.detector.Reveal().State()
}

func (b *Bar) Done() bool {
	return b.done
}

func clampPercent(p float64) float64 {
	switch {
	case p < 0:
		return 0
	case p > 100:
		return 100
	default:
		return p
	}
}
