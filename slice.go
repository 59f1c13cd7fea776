package dataset

// Slice selects positions with sequence slicing semantics: bounds clamp to the
// dataset, negative bounds count from the end, and a negative step walks
// backwards. The zero Slice selects everything.
type Slice struct {
	Start, Stop int
	Step        int

	// Unset bounds mean "from the edge"; an unset step is 1.
	HasStart, HasStop, HasStep bool
}

// Range selects [start, stop).
func Range(start, stop int) Slice {
	return Slice{Start: start, Stop: stop, HasStart: true, HasStop: true}
}

// From selects [start, end).
func From(start int) Slice { return Slice{Start: start, HasStart: true} }

// To selects [0, stop).
func To(stop int) Slice { return Slice{Stop: stop, HasStop: true} }

// Every selects all positions.
func Every() Slice { return Slice{} }

// By returns s with the given step.
func (s Slice) By(step int) Slice {
	s.Step = step
	s.HasStep = true
	return s
}

func (s Slice) step() int {
	if !s.HasStep {
		return 1
	}
	return s.Step
}

// bounds resolves s against length n into start, stop and step.
func (s Slice) bounds(n int) (start, stop, step int, err error) {
	step = s.step()
	if step == 0 {
		return 0, 0, 0, &Error{Code: CodeInvalidSlice, Message: "slice step cannot be zero"}
	}
	lower, upper := 0, n
	if step < 0 {
		lower, upper = -1, n-1
	}
	clamp := func(v int) int {
		if v < 0 {
			v += n
			if v < lower {
				v = lower
			}
		} else if v > upper {
			v = upper
		}
		return v
	}
	switch {
	case !s.HasStart && step < 0:
		start = upper
	case !s.HasStart:
		start = lower
	default:
		start = clamp(s.Start)
	}
	switch {
	case !s.HasStop && step < 0:
		stop = lower
	case !s.HasStop:
		stop = upper
	default:
		stop = clamp(s.Stop)
	}
	return start, stop, step, nil
}

// positions lists the indices s selects in a sequence of length n.
func (s Slice) positions(n int) ([]int, error) {
	start, stop, step, err := s.bounds(n)
	if err != nil {
		return nil, err
	}
	var out []int
	if step > 0 {
		for i := start; i < stop; i += step {
			out = append(out, i)
		}
	} else {
		for i := start; i > stop; i += step {
			out = append(out, i)
		}
	}
	return out, nil
}

// normalizeIndex maps a possibly negative index onto [0, n).
func normalizeIndex(i, n int) (int, error) {
	j := i
	if j < 0 {
		j += n
	}
	if j < 0 || j >= n {
		return 0, indexOutOfRange(i, n)
	}
	return j, nil
}
