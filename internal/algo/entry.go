package algo

// MaxRatioEntry is the largest value the ratio accumulator holds (1.00).
const MaxRatioEntry = 100

// RatioEntry accumulates typed digits into a percentage.
type RatioEntry struct {
	value int
}

// Digit appends d. A value past MaxRatioEntry restarts from d.
func (e *RatioEntry) Digit(d int) {
	v := e.value*10 + d
	if v > MaxRatioEntry {
		v = d
	}
	e.value = v
}

func (e *RatioEntry) Value() int         { return e.value }
func (e *RatioEntry) Ratio() float64     { return float64(e.value) / 100 }
func (e *RatioEntry) Reset()             { e.value = 0 }
func (e *RatioEntry) SetRatio(r float64) { e.value = int(clampRatio(r)*100 + 1e-9) }
