// Package irt implements the item-response-theory ability estimation used by
// the selection engine: logistic response probabilities, Fisher information,
// maximum-likelihood ability updates, and next-difficulty targeting.
package irt

import "math"

// Model identifies the logistic item-response model.
type Model int

const (
	// Model1PL is the one-parameter (Rasch) model: difficulty only.
	Model1PL Model = iota
	// Model2PL adds a discrimination parameter.
	Model2PL
	// Model3PL adds a lower asymptote for guessing.
	Model3PL
)

// String returns the conventional model label.
func (m Model) String() string {
	switch m {
	case Model1PL:
		return "1PL"
	case Model2PL:
		return "2PL"
	case Model3PL:
		return "3PL"
	default:
		return "unknown"
	}
}

// ParseModel maps a model label to a Model. Unknown labels fall back to 2PL,
// the model the scorer uses for information values.
func ParseModel(s string) Model {
	switch s {
	case "1PL", "1pl":
		return Model1PL
	case "3PL", "3pl":
		return Model3PL
	default:
		return Model2PL
	}
}

// Theta bounds for ability estimates.
const (
	ThetaMin = -4.0
	ThetaMax = 4.0
)

// expClamp bounds the logistic exponent so exp never overflows. At the
// clamped extremes the sigmoid is returned as exactly 0 or 1.
const expClamp = 700.0

// ClampTheta bounds an ability estimate to [ThetaMin, ThetaMax].
func ClampTheta(theta float64) float64 {
	if theta < ThetaMin {
		return ThetaMin
	}
	if theta > ThetaMax {
		return ThetaMax
	}
	return theta
}

// sigmoid evaluates the logistic function with overflow protection.
func sigmoid(x float64) float64 {
	if x >= expClamp {
		return 1
	}
	if x <= -expClamp {
		return 0
	}
	return 1 / (1 + math.Exp(-x))
}

// Probability returns the probability of a correct response at ability theta
// for an item with difficulty b, discrimination a, and guessing c.
// The discrimination parameter is ignored under 1PL, guessing under 1PL/2PL.
func Probability(theta, b, a, c float64, model Model) float64 {
	switch model {
	case Model1PL:
		return sigmoid(theta - b)
	case Model3PL:
		return c + (1-c)*sigmoid(a*(theta-b))
	default:
		return sigmoid(a * (theta - b))
	}
}

// Information returns the Fisher information the item provides about theta.
// A zero-division guard returns 0 when p(1-p) vanishes.
func Information(theta, b, a, c float64, model Model) float64 {
	p := Probability(theta, b, a, c, model)
	pq := p * (1 - p)

	switch model {
	case Model1PL:
		return pq
	case Model3PL:
		if pq == 0 {
			return 0
		}
		d := p - c
		return a * a * d * d / pq
	default:
		return a * a * pq
	}
}
