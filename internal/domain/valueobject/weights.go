package valueobject

// PriorityWeights are the user's importance weights for the six neighborhood
// dimensions. Weights are relative; only their ratios matter.
type PriorityWeights struct {
	Safety         float64 `json:"safety" yaml:"safety"`
	Schools        float64 `json:"schools" yaml:"schools"`
	Healthcare     float64 `json:"healthcare" yaml:"healthcare"`
	Shopping       float64 `json:"shopping" yaml:"shopping"`
	Transportation float64 `json:"transportation" yaml:"transportation"`
	Environmental  float64 `json:"environmental" yaml:"environmental"`
}

// EqualWeights weighs every dimension at 1.
func EqualWeights() PriorityWeights {
	return PriorityWeights{1, 1, 1, 1, 1, 1}
}

// Values returns the weights in dimension order.
func (w PriorityWeights) Values() [6]float64 {
	return [6]float64{w.Safety, w.Schools, w.Healthcare, w.Shopping, w.Transportation, w.Environmental}
}

// Sum returns the total weight.
func (w PriorityWeights) Sum() float64 {
	var s float64
	for _, v := range w.Values() {
		s += v
	}
	return s
}
