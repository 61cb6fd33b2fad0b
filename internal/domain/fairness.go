package domain

// Tally counts how often each of n sections was selected.
type Tally []int

// NewTally returns a zeroed tally for n sections.
func NewTally(n int) Tally {
	return make(Tally, n)
}

// Add records one selection of section i.
func (t Tally) Add(i int) {
	t[i]++
}

// Merge adds the counts of other into t. Both must have the same length.
func (t Tally) Merge(other Tally) {
	for i, c := range other {
		t[i] += c
	}
}

// Total returns the number of recorded selections.
func (t Tally) Total() int {
	total := 0
	for _, c := range t {
		total += c
	}
	return total
}

// ChiSquare returns Pearson's chi-square statistic of the tally against a
// uniform distribution. Degrees of freedom are len(t)-1.
func (t Tally) ChiSquare() float64 {
	total := t.Total()
	if len(t) == 0 || total == 0 {
		return 0
	}
	expected := float64(total) / float64(len(t))
	var stat float64
	for _, c := range t {
		d := float64(c) - expected
		stat += d * d / expected
	}
	return stat
}
