package irt

// Response carries one submitted answer in whichever form the caller has:
// binary correctness, partial credit in [0,1], or an externally judged
// quality score in [0,1]. Exactly one of the three should be set; when more
// than one is present the most specific wins (quality > partial > correct).
type Response struct {
	Correct       *bool
	PartialCredit *float64
	QualityScore  *float64

	// QualityMultiplier optionally scales the derived score. Zero means
	// "not set". Values are clamped to [0.8, 1.2] before applying.
	QualityMultiplier float64
}

// CorrectResponse is a convenience constructor for a binary response.
func CorrectResponse(correct bool) Response {
	return Response{Correct: &correct}
}

// PartialResponse is a convenience constructor for partial credit.
func PartialResponse(credit float64) Response {
	return Response{PartialCredit: &credit}
}

// Score derives the response score in [0,1] used by the ability update.
func (r Response) Score() float64 {
	var score float64
	switch {
	case r.QualityScore != nil:
		score = clamp01(*r.QualityScore)
	case r.PartialCredit != nil:
		score = clamp01(*r.PartialCredit)
	case r.Correct != nil && *r.Correct:
		score = 1
	default:
		score = 0
	}

	if r.QualityMultiplier != 0 {
		m := r.QualityMultiplier
		if m < 0.8 {
			m = 0.8
		}
		if m > 1.2 {
			m = 1.2
		}
		score = clamp01(score * m)
	}
	return score
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
