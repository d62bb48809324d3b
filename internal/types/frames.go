package types

import (
	"iter"
	"slices"
)

// Frames is an ordered, read-only collection of decoded frames.
//
// Insertion order is preserved. Filter returns a new collection and never
// modifies the receiver.
type Frames struct {
	frames []Frame
}

// NewFrames returns a collection holding a copy of frames. Nil and
// Unrecognized entries are dropped.
func NewFrames(frames ...Frame) Frames {
	out := make([]Frame, 0, len(frames))
	for _, f := range frames {
		if f == nil {
			continue
		}
		if _, ok := f.(Unrecognized); ok {
			continue
		}
		out = append(out, f)
	}
	return Frames{frames: out}
}

// Len returns the number of frames.
func (fs Frames) Len() int {
	return len(fs.frames)
}

// All returns a copy of the frames in order.
func (fs Frames) All() []Frame {
	return slices.Clone(fs.frames)
}

// Seq iterates over the frames in order.
//
// Example:
//
//	for f := range frames.Seq() {
//		fmt.Println(f)
//	}
func (fs Frames) Seq() iter.Seq[Frame] {
	return func(yield func(Frame) bool) {
		for _, f := range fs.frames {
			if !yield(f) {
				return
			}
		}
	}
}

// Filter returns a new collection with the frames matching predicate, in
// their original relative order.
func (fs Frames) Filter(predicate func(Frame) bool) Frames {
	var out []Frame
	for _, f := range fs.frames {
		if predicate(f) {
			out = append(out, f)
		}
	}
	return Frames{frames: out}
}

// OfKind is a Filter predicate matching one variant.
func OfKind(k Kind) func(Frame) bool {
	return func(f Frame) bool {
		return f.Kind() == k
	}
}

// OfType returns the frames of variant T, in order.
//
//	for _, ch := range types.OfType[types.Chapter](frames) {
//		fmt.Println(ch.StartTime)
//	}
func OfType[T Frame](fs Frames) []T {
	var out []T
	for _, f := range fs.frames {
		if v, ok := f.(T); ok {
			out = append(out, v)
		}
	}
	return out
}
