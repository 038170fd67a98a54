package future

import (
	"time"

	"github.com/sartorproj/gotimeindex/timeindex"
)

// Option configures Make.
type Option func(*options)

type options struct {
	skip []time.Time
}

// WithSkip excludes the given instants from the projection. Instants are
// compared after mapping onto the index class, so a Date skip matches
// regardless of time of day. Skipped instants do not count toward the
// horizon.
func WithSkip(times ...time.Time) Option {
	return func(o *options) {
		o.skip = append(o.skip, times...)
	}
}

type skipKey struct {
	sec  int64
	nsec int
}

type resolvedOptions struct {
	class timeindex.Class
	skip  map[skipKey]struct{}
}

func newOptions(class timeindex.Class, opts []Option) resolvedOptions {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	r := resolvedOptions{class: class, skip: make(map[skipKey]struct{}, len(o.skip))}
	for _, t := range o.skip {
		r.skip[r.key(t)] = struct{}{}
	}
	return r
}

func (r resolvedOptions) key(t time.Time) skipKey {
	c := r.class.Canonical(t)
	return skipKey{sec: c.Unix(), nsec: c.Nanosecond()}
}

func (r resolvedOptions) skipped(t time.Time) bool {
	if len(r.skip) == 0 {
		return false
	}
	_, ok := r.skip[r.key(t)]
	return ok
}
