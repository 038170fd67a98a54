package timeindex

import (
	"fmt"
	"time"
)

// Index is an ordered, immutable sequence of instants sharing one class and
// one location.
type Index struct {
	class Class
	times []time.Time
	tz    string
}

// New builds an Index of the given class. Every instant is mapped onto the
// class's canonical instant; DateTime instants are moved into the location of
// the first element. Instants must be in non-decreasing order.
func New(class Class, times []time.Time) (*Index, error) {
	if !class.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedIndexClass, class)
	}

	loc := time.UTC
	if class == DateTime && len(times) > 0 {
		loc = times[0].Location()
	}

	normalized := make([]time.Time, len(times))
	for i, t := range times {
		if class == DateTime {
			normalized[i] = t.In(loc)
		} else {
			normalized[i] = class.Canonical(t)
		}
		if i > 0 && normalized[i].Before(normalized[i-1]) {
			return nil, fmt.Errorf("%w: element %d (%s) precedes element %d (%s)",
				ErrInvalidOrder, i, class.Format(normalized[i]), i-1, class.Format(normalized[i-1]))
		}
	}

	return &Index{
		class: class,
		times: normalized,
		tz:    loc.String(),
	}, nil
}

// MustNew is like New but panics on error. Intended for tests and literals.
func MustNew(class Class, times ...time.Time) *Index {
	idx, err := New(class, times)
	if err != nil {
		panic(err)
	}
	return idx
}

// Class returns the index class.
func (x *Index) Class() Class {
	return x.class
}

// TZ returns the location name of the index. Only DateTime indexes carry a
// location other than UTC.
func (x *Index) TZ() string {
	return x.tz
}

// Location returns the location instants are expressed in.
func (x *Index) Location() *time.Location {
	if len(x.times) > 0 {
		return x.times[0].Location()
	}
	return time.UTC
}

// Len returns the number of instants.
func (x *Index) Len() int {
	return len(x.times)
}

// At returns the i-th instant.
func (x *Index) At(i int) time.Time {
	return x.times[i]
}

// First returns the first instant, or the zero time for an empty index.
func (x *Index) First() time.Time {
	if len(x.times) == 0 {
		return time.Time{}
	}
	return x.times[0]
}

// Last returns the last instant, or the zero time for an empty index.
func (x *Index) Last() time.Time {
	if len(x.times) == 0 {
		return time.Time{}
	}
	return x.times[len(x.times)-1]
}

// Times returns a copy of the instants.
func (x *Index) Times() []time.Time {
	out := make([]time.Time, len(x.times))
	copy(out, x.times)
	return out
}

// Format renders the i-th instant in the native class notation.
func (x *Index) Format(i int) string {
	return x.class.Format(x.times[i])
}

// Strings renders every instant in the native class notation.
func (x *Index) Strings() []string {
	out := make([]string, len(x.times))
	for i, t := range x.times {
		out[i] = x.class.Format(t)
	}
	return out
}
