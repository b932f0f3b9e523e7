package window

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/reshape/core"
)

// Invalid geometry errors; both wrap core.ErrInvalidArgument so callers
// can classify them alongside the library's other argument failures.
var (
	// ErrBadLength indicates a negative window length.
	ErrBadLength = fmt.Errorf("window: length must be >= 0 (%w)", core.ErrInvalidArgument)

	// ErrBadStep indicates a step below 1.
	ErrBadStep = fmt.Errorf("window: step must be >= 1 (%w)", core.ErrInvalidArgument)
)

// Options configures a sliding window.
//
// Fields:
//   - Length — number of elements per window. 0 yields one empty window.
//   - Step   — elements advanced between windows.
//   - Fill   — padding value for a final window cut short by the input.
type Options struct {
	Length int
	Step   int
	Fill   any
}

// DefaultOptions returns single-element windows advancing one element
// at a time.
func DefaultOptions() Options {
	return Options{Length: 1, Step: 1}
}

// Slide returns a lazy sequence of fixed-length windows over seq. Each
// range over the result restarts the iteration from scratch.
func Slide(seq []any, opts *Options) (iter.Seq[core.Tuple], error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	inner, err := Windows(seq, o.Length, o.Step, o.Fill)
	if err != nil {
		return nil, err
	}

	return func(yield func(core.Tuple) bool) {
		for w := range inner {
			if !yield(core.Tuple(w)) {
				return
			}
		}
	}, nil
}

// Windows is the generic counterpart of Slide: fixed-length windows of
// length over seq, advancing by step, with fill padding a final short
// window.
func Windows[T any](seq []T, length, step int, fill T) (iter.Seq[[]T], error) {
	if length < 0 {
		return nil, ErrBadLength
	}
	if step < 1 {
		return nil, ErrBadStep
	}

	return func(yield func([]T) bool) {
		if length == 0 {
			yield([]T{})

			return
		}

		// buf holds the last up-to-length elements seen; countdown tracks
		// how many more elements must arrive before the next emission.
		buf := make([]T, 0, length)
		countdown := length
		for _, e := range seq {
			if len(buf) == length {
				copy(buf, buf[1:])
				buf[length-1] = e
			} else {
				buf = append(buf, e)
			}
			countdown--
			if countdown == 0 {
				countdown = step
				if !yield(snapshot(buf, length, 0, fill)) {
					return
				}
			}
		}

		// The input ran out mid-window: pad to full length with fill.
		if len(buf) < length {
			yield(snapshot(buf, length, 0, fill))
		} else if 0 < countdown && countdown < min(step, length) {
			yield(snapshot(buf, length, countdown, fill))
		}
	}, nil
}

// snapshot copies buf[skip:] into a fresh window of exactly length
// elements, padding the remainder with fill.
func snapshot[T any](buf []T, length, skip int, fill T) []T {
	out := make([]T, 0, length)
	out = append(out, buf[skip:]...)
	for len(out) < length {
		out = append(out, fill)
	}

	return out
}
