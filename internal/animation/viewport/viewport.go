// Package viewport é um host geométrico para o detector de visibilidade:
// elementos posicionados verticalmente em uma página rolável.
package viewport

import (
	"math"

	"github.com/vfg2006/organic-report/internal/animation"
)

type box struct {
	top    float64
	height float64
}

type subscription struct {
	id        uint64
	target    animation.Element
	threshold float64
	callback  func(animation.IntersectionEntry)
}

// Viewport implementa animation.Observer. As notificações são síncronas e
// acontecem na goroutine que posiciona ou rola a página.
type Viewport struct {
	Height float64

	offset float64
	boxes  map[string]box
	subs   []*subscription
	nextID uint64
}

func New(height float64) *Viewport {
	return &Viewport{
		Height: height,
		boxes:  make(map[string]box),
	}
}

// Place posiciona el na página e reavalia as interseções
func (v *Viewport) Place(el animation.Element, top, height float64) {
	v.boxes[el.ID()] = box{top: top, height: height}
	v.notify()
}

func (v *Viewport) Offset() float64 {
	return v.offset
}

// ContentHeight é a posição da borda inferior do último elemento
func (v *Viewport) ContentHeight() float64 {
	var bottom float64
	for _, b := range v.boxes {
		bottom = math.Max(bottom, b.top+b.height)
	}
	return bottom
}

// AtBottom indica se a rolagem chegou ao fim do conteúdo
func (v *Viewport) AtBottom() bool {
	return v.offset+v.Height >= v.ContentHeight()
}

func (v *Viewport) ScrollTo(offset float64) {
	if offset < 0 {
		offset = 0
	}
	v.offset = offset
	v.notify()
}

func (v *Viewport) ScrollBy(delta float64) {
	v.ScrollTo(v.offset + delta)
}

// Ratio é a fração da altura de el dentro da área visível
func (v *Viewport) Ratio(el animation.Element) float64 {
	b, ok := v.boxes[el.ID()]
	if !ok || b.height <= 0 {
		return 0
	}

	top := math.Max(b.top, v.offset)
	bottom := math.Min(b.top+b.height, v.offset+v.Height)
	if bottom <= top {
		return 0
	}

	return (bottom - top) / b.height
}

// Visible indica se el está dentro da área visível em algum grau
func (v *Viewport) Visible(el animation.Element) bool {
	return v.Ratio(el) > 0
}

func (v *Viewport) OnIntersect(target animation.Element, threshold float64, callback func(animation.IntersectionEntry)) func() {
	v.nextID++
	sub := &subscription{id: v.nextID, target: target, threshold: threshold, callback: callback}
	v.subs = append(v.subs, sub)

	// observação inicial
	v.deliver(sub)

	return func() { v.remove(sub.id) }
}

// Observing retorna quantas assinaturas continuam ativas
func (v *Viewport) Observing() int {
	return len(v.subs)
}

func (v *Viewport) notify() {
	subs := make([]*subscription, len(v.subs))
	copy(subs, v.subs)

	for _, sub := range subs {
		if v.active(sub.id) {
			v.deliver(sub)
		}
	}
}

func (v *Viewport) deliver(sub *subscription) {
	ratio := v.Ratio(sub.target)
	if ratio < sub.threshold {
		return
	}

	sub.callback(animation.IntersectionEntry{
		Target:         sub.target,
		Ratio:          ratio,
		IsIntersecting: ratio > 0,
	})
}

func (v *Viewport) active(id uint64) bool {
	for _, s := range v.subs {
		if s.id == id {
			return true
		}
	}
	return false
}

func (v *Viewport) remove(id uint64) {
	for i, s := range v.subs {
		if s.id == id {
			v.subs = append(v.subs[:i], v.subs[i+1:]...)
			return
		}
	}
}
