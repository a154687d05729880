package profile

import "math"

const (
	maxIQ        = 200
	maxSubscore  = 100
	percentScale = 100
)

// Score is the talent score shown to employers. Every field is a percentage in
// [0,100]; a missing metric reads as 0.
type Score struct {
	IQ        float64
	English   float64
	Technical float64
	Overall   float64
}

// TalentScore derives display percentages from the raw assessment. Overall is
// the mean of the metrics that have been taken (non-zero); with none it is 0.
func TalentScore(a Assessment) Score {
	s := Score{
		IQ:        percent(a.IQ, maxIQ),
		English:   percent(a.English, maxSubscore),
		Technical: percent(a.Technical, maxSubscore),
	}
	var sum float64
	var n int
	for _, v := range []float64{s.IQ, s.English, s.Technical} {
		if v > 0 {
			sum += v
			n++
		}
	}
	if n > 0 {
		s.Overall = math.Round(sum/float64(n)*10) / 10
	}
	return s
}

func percent(value, scale int) float64 {
	if value <= 0 || scale <= 0 {
		return 0
	}
	p := float64(value) * percentScale / float64(scale)
	if math.IsNaN(p) || p < 0 {
		return 0
	}
	if p > percentScale {
		return percentScale
	}
	return math.Round(p*10) / 10
}
