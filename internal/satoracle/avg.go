package satoracle

// EMA is an exponential moving average, used here to track the average
// number of propagations performed per conflict so that a caller-supplied
// propagation budget can be converted into the conflict budget that
// Solver.Search actually understands.
type EMA struct {
	decay float64
	value float64
	init  bool
}

// NewEMA returns an EMA with the given decay factor. decay must be in
// [0, 1); higher values weigh history more heavily than new samples.
func NewEMA(decay float64) EMA {
	return EMA{decay: decay}
}

// Add folds a new sample into the average.
func (ema *EMA) Add(x float64) {
	if !ema.init {
		ema.init = true
		ema.value = x
	} else {
		ema.value = ema.decay*ema.value + x*(1-ema.decay)
	}
}

// Val returns the current average, or 0 if no sample has been added yet.
func (ema *EMA) Val() float64 {
	return ema.value
}
