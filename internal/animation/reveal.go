// Package animation implementa a revelação por visibilidade e os widgets animados
// do relatório (contadores e barras), independentes do ambiente que os exibe.
//
// Todo o estado de um widget pertence a um único dono: os callbacks de
// interseção e de quadro são executados na mesma goroutine do host.
package animation

// RevealState é o estado de revelação de um widget
type RevealState int

const (
	Hidden RevealState = iota
	Revealed
)

func (s RevealState) String() string {
	if s == Revealed {
		return "revealed"
	}
	return "hidden"
}

// Reveal é a máquina de dois estados Hidden -> Revealed.
// A transição acontece no máximo uma vez e Revealed é terminal.
type Reveal struct {
	state     RevealState
	listeners []func()
}

// Trigger executa a transição para Revealed. Retorna false se já estava revelado.
func (r *Reveal) Trigger() bool {
	if r.state == Revealed {
		return false
	}

	r.state = Revealed
	listeners := r.listeners
	r.listeners = nil
	for _, fn := range listeners {
		fn()
	}

	return true
}

// OnReveal registra fn para a transição; se já revelado, fn roda imediatamente
func (r *Reveal) OnReveal(fn func()) {
	if r.state == Revealed {
		fn()
		return
	}
	r.listeners = append(r.listeners, fn)
}

func (r *Reveal) State() RevealState {
	return r.state
}

func (r *Reveal) Visible() bool {
	return r.state == Revealed
}
