package rating

// Aggregate is a running mean over n scores, stored on events and venues.
type Aggregate struct {
	average float64
	count   int
}

func NewAggregate(average float64, count int) (Aggregate, error) {
	if count < 0 || (count == 0 && average != 0) {
		return Aggregate{}, ErrInvalidAggregate
	}
	return Aggregate{average: average, count: count}, nil
}

func (a Aggregate) Average() float64 { return a.average }
func (a Aggregate) Count() int       { return a.count }

// Add folds a first-time score into the mean: (avg*n + r) / (n+1).
func (a Aggregate) Add(s Score) Aggregate {
	n := float64(a.count)
	return Aggregate{
		average: (a.average*n + float64(s.value)) / (n + 1),
		count:   a.count + 1,
	}
}

// Replace swaps a previous score for a new one without changing n.
func (a Aggregate) Replace(old, s Score) (Aggregate, error) {
	if a.count == 0 {
		return Aggregate{}, ErrEmptyAggregate
	}
	n := float64(a.count)
	return Aggregate{
		average: (a.average*n - float64(old.value) + float64(s.value)) / n,
		count:   a.count,
	}, nil
}

// Remove takes a score out of the mean. An emptied aggregate averages 0.
func (a Aggregate) Remove(old Score) (Aggregate, error) {
	if a.count == 0 {
		return Aggregate{}, ErrEmptyAggregate
	}
	if a.count == 1 {
		return Aggregate{}, nil
	}
	n := float64(a.count)
	return Aggregate{
		average: (a.average*n - float64(old.value)) / (n - 1),
		count:   a.count - 1,
	}, nil
}

// Apply adds s, or replaces prev with s when the user already rated.
func (a Aggregate) Apply(prev *Score, s Score) (Aggregate, error) {
	if prev == nil {
		return a.Add(s), nil
	}
	return a.Replace(*prev, s)
}
