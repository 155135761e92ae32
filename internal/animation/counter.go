package animation

import (
	"time"

	"github.com/vfg2006/organic-report/pkg/utils"
)

// Counter é um número animado com ease-out cúbico, iniciado pela revelação
type Counter struct {
	target    int64
	duration  time.Duration
	threshold float64
	scheduler FrameScheduler

	detector *Detector
	mounted  bool
	value    int64
	start    time.Time
	started  bool
	done     bool
	frame    FrameID
	hasFrame bool
}

func NewCounter(target int64, scheduler FrameScheduler, opts Options) *Counter {
	opts = opts.WithDefaults()
	if target < 0 {
		target = 0
	}

	return &Counter{
		target:    target,
		duration:  opts.CounterDuration,
		threshold: opts.RevealThreshold,
		scheduler: scheduler,
	}
}

// Mount cria um novo estado de animação e passa a observar el
func (c *Counter) Mount(observer Observer, el Element) {
	c.Unmount()

	c.mounted = true
	c.value = 0
	c.started = false
	c.done = false
	c.detector = NewDetector()
	c.detector.Reveal().OnReveal(c.begin)
	c.detector.Watch(observer, el, c.threshold)
}

// Unmount encerra a observação e cancela o quadro pendente
func (c *Counter) Unmount() {
	c.mounted = false
	if c.detector != nil {
		c.detector.Stop()
	}
	c.cancelFrame()
}

func (c *Counter) begin() {
	if !c.mounted {
		return
	}

	if c.target == 0 || c.scheduler == nil {
		c.value = c.target
		c.done = true
		return
	}

	c.requestFrame()
}

func (c *Counter) step(now time.Time) {
	c.hasFrame = false
	if !c.mounted {
		return
	}

	if !c.started {
		c.start = now
		c.started = true
	}

	elapsed := now.Sub(c.start)
	c.value = EasedValue(c.target, elapsed, c.duration)
	if elapsed >= c.duration {
		c.done = true
		return
	}

	c.requestFrame()
}

func (c *Counter) requestFrame() {
	c.frame = c.scheduler.RequestNextFrame(c.step)
	c.hasFrame = true
}

func (c *Counter) cancelFrame() {
	if c.hasFrame && c.scheduler != nil {
		c.scheduler.CancelFrame(c.frame)
	}
	c.hasFrame = false
}

func (c *Counter) Target() int64 {
	return c.target
}

// Value é o valor exibido no momento
func (c *Counter) Value() int64 {
	return c.value
}

// Display formata o valor atual com a unidade do valor final
func (c *Counter) Display() string {
	return utils.FormatCompactFor(c.target, c.value)
}

// FinalDisplay é o texto exibido quando a animação termina
func (c *Counter) FinalDisplay() string {
	return utils.FormatCompactFor(c.target, c.target)
}

func (c *Counter) Duration() time.Duration {
	return c.duration
}

func (c *Counter) State() RevealState {
	if c.detector == nil {
		return Hidden
	}
	return c.detector.Reveal().State()
}

func (c *Counter) Done() bool {
	return c.done
}
