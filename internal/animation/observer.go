package animation

import "reflect"

// DefaultRevealThreshold é a fração mínima da área do elemento que precisa estar visível
const DefaultRevealThreshold = 0.15

// Element é qualquer coisa renderizável que o host sabe posicionar
type Element interface {
	ID() string
}

// IntersectionEntry descreve a interseção de um elemento com a área visível
type IntersectionEntry struct {
	Target         Element
	Ratio          float64
	IsIntersecting bool
}

// Observer é a abstração do host para observar interseções.
// O callback pode ser chamado de forma síncrona, inclusive dentro de OnIntersect.
type Observer interface {
	OnIntersect(target Element, threshold float64, callback func(IntersectionEntry)) (disconnect func())
}

// Detector transforma as interseções de um elemento em um sinal único de visibilidade
type Detector struct {
	reveal     *Reveal
	disconnect func()
}

func NewDetector() *Detector {
	return &Detector{reveal: &Reveal{}}
}

// Watch começa a observar el. Sem observer ou sem elemento não há observação
// e o detector permanece Hidden indefinidamente.
func (d *Detector) Watch(observer Observer, el Element, threshold float64) {
	d.Stop()

	if observer == nil || isNilElement(el) || d.reveal.Visible() {
		return
	}

	disconnect := observer.OnIntersect(el, threshold, func(entry IntersectionEntry) {
		if !entry.IsIntersecting || entry.Ratio < threshold {
			return
		}
		if d.reveal.Trigger() {
			d.Stop()
		}
	})

	// o host pode ter disparado o callback antes de devolver o disconnect
	if d.reveal.Visible() {
		if disconnect != nil {
			disconnect()
		}
		return
	}

	d.disconnect = disconnect
}

// Stop encerra a observação, se houver
func (d *Detector) Stop() {
	if d.disconnect != nil {
		disconnect := d.disconnect
		d.disconnect = nil
		disconnect()
	}
}

func (d *Detector) Observing() bool {
	return d.disconnect != nil
}

func (d *Detector) Reveal() *Reveal {
	return d.reveal
}

func isNilElement(el Element) bool {
	if el == nil {
		return true
	}
	v := reflect.ValueOf(el)
	return v.Kind() == reflect.Ptr && v.IsNil()
}
