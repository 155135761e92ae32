package animation

import (
	"math"
	"time"
)

// BarEasing é a curva de transição de largura das barras
var BarEasing = CubicBezier{X1: 0.22, Y1: 1, X2: 0.36, Y2: 1}

func Clamp01(p float64) float64 {
	switch {
	case math.IsNaN(p), p < 0:
		return 0
	case p > 1:
		return 1
	default:
		return p
	}
}

// EaseOutCubic desacelera até parar: 1 - (1-p)^3
func EaseOutCubic(p float64) float64 {
	p = Clamp01(p)
	return 1 - math.Pow(1-p, 3)
}

// EasedValue é o valor exibido por um contador após elapsed de uma animação de duration
func EasedValue(target int64, elapsed, duration time.Duration) int64 {
	p := 1.0
	if duration > 0 {
		p = Clamp01(float64(elapsed) / float64(duration))
	}

	return int64(math.Round(float64(target) * EaseOutCubic(p)))
}

// CubicBezier é uma curva de temporização no formato cubic-bezier(x1, y1, x2, y2)
type CubicBezier struct {
	X1, Y1, X2, Y2 float64
}

const (
	bezierEpsilon       = 1e-7
	bezierNewtonSteps   = 8
	bezierBisectionStep = 64
)

// At retorna o progresso da curva no instante x (0..1)
func (c CubicBezier) At(x float64) float64 {
	if x <= 0 {
		return 0
	}
	if x >= 1 {
		return 1
	}

	return c.sample(c.solveT(x), c.Y1, c.Y2)
}

func (c CubicBezier) sample(t, p1, p2 float64) float64 {
	cc := 3 * p1
	b := 3*(p2-p1) - cc
	a := 1 - cc - b
	return ((a*t+b)*t + cc) * t
}

func (c CubicBezier) derivativeX(t float64) float64 {
	cc := 3 * c.X1
	b := 3*(c.X2-c.X1) - cc
	a := 1 - cc - b
	return (3*a*t+2*b)*t + cc
}

// solveT encontra t tal que x(t) == x (Newton-Raphson com bisseção de reserva)
func (c CubicBezier) solveT(x float64) float64 {
	t := x
	for i := 0; i < bezierNewtonSteps; i++ {
		diff := c.sample(t, c.X1, c.X2) - x
		if math.Abs(diff) < bezierEpsilon {
			return t
		}
		d := c.derivativeX(t)
		if math.Abs(d) < 1e-6 {
			break
		}
		t -= diff / d
	}

	lo, hi := 0.0, 1.0
	t = x
	for i := 0; i < bezierBisectionStep; i++ {
		v := c.sample(t, c.X1, c.X2)
		if math.Abs(v-x) < bezierEpsilon {
			return t
		}
		if x > v {
			lo = t
		} else {
			hi = t
		}
		t = lo + (hi-lo)/2
	}

	return t
}
