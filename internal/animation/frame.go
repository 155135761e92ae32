package animation

import (
	"context"
	"sync"
	"time"
)

// FrameID identifica um callback agendado
type FrameID uint64

// FrameCallback recebe o instante do quadro
type FrameCallback func(now time.Time)

// FrameScheduler agenda callbacks para o próximo quadro de renderização
type FrameScheduler interface {
	RequestNextFrame(cb FrameCallback) FrameID
	CancelFrame(id FrameID)
}

// DefaultFrameInterval corresponde a ~60 quadros por segundo
const DefaultFrameInterval = 16 * time.Millisecond

// Loop é um FrameScheduler de goroutine única. Os callbacks pedidos durante
// um quadro rodam no quadro seguinte.
type Loop struct {
	interval  time.Duration
	mu        sync.Mutex
	nextID    FrameID
	order     []FrameID
	callbacks map[FrameID]FrameCallback
	frames    uint64
}

func NewLoop(interval time.Duration) *Loop {
	if interval <= 0 {
		interval = DefaultFrameInterval
	}

	return &Loop{
		interval:  interval,
		callbacks: make(map[FrameID]FrameCallback),
	}
}

func (l *Loop) RequestNextFrame(cb FrameCallback) FrameID {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.nextID++
	l.order = append(l.order, l.nextID)
	l.callbacks[l.nextID] = cb
	return l.nextID
}

func (l *Loop) CancelFrame(id FrameID) {
	l.mu.Lock()
	defer l.mu.Unlock()

	delete(l.callbacks, id)
}

// Step executa os callbacks pendentes com o instante now e retorna quantos rodaram
func (l *Loop) Step(now time.Time) int {
	l.mu.Lock()
	batch := l.order
	l.order = nil
	l.frames++
	l.mu.Unlock()

	ran := 0
	for _, id := range batch {
		l.mu.Lock()
		cb, ok := l.callbacks[id]
		delete(l.callbacks, id)
		l.mu.Unlock()

		if !ok {
			continue
		}
		cb(now)
		ran++
	}

	return ran
}

// Pending retorna quantos callbacks aguardam o próximo quadro
func (l *Loop) Pending() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return len(l.callbacks)
}

func (l *Loop) Frames() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.frames
}

// Run dispara um quadro a cada intervalo até o contexto ser cancelado
func (l *Loop) Run(ctx context.Context) error {
	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-ticker.C:
			l.Step(now)
		}
	}
}
