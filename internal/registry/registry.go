// Package registry dispatches raw frames to the decoders that understand them.
//
// A Registry is an ordered, immutable list of decoders built once during
// setup. Lookup tries decoders in registration order and the first one that
// supports a frame id wins; ids nobody supports fall through to a decoder
// that always reports the frame as unrecognized. A Registry holds no mutable
// state and is safe for concurrent use.
package registry

import (
	"slices"

	"github.com/simonhull/id3meta/internal/types"
)

// Decoder is the interface all frame decoders implement.
type Decoder interface {
	// Supports reports whether the decoder understands frames with this id.
	Supports(id string) bool

	// Decode interprets the frame content. Decoders for frames that embed
	// other frames hand the embedded frame to d.
	// A decoder that cannot interpret the content returns an error; it
	// never panics on short or malformed content.
	Decode(raw types.RawFrame, d Dispatcher) (types.Frame, error)
}

// Dispatcher decodes a raw frame with whichever decoder supports it.
type Dispatcher interface {
	Dispatch(raw types.RawFrame) (types.Frame, error)
}

// Registry is an ordered lookup table of decoders.
type Registry struct {
	decoders []Decoder
}

// New creates a registry trying decoders in the given order.
// Nil decoders are ignored.
func New(decoders ...Decoder) *Registry {
	r := &Registry{decoders: make([]Decoder, 0, len(decoders))}
	for _, d := range decoders {
		if d != nil {
			r.decoders = append(r.decoders, d)
		}
	}
	return r
}

// With returns a new registry with decoders appended after the existing
// ones. The receiver is not modified. An appended decoder never takes an id
// away from a decoder registered before it.
func (r *Registry) With(decoders ...Decoder) *Registry {
	return New(append(r.Decoders(), decoders...)...)
}

// Decoders returns the registered decoders in priority order.
func (r *Registry) Decoders() []Decoder {
	if r == nil {
		return nil
	}
	return slices.Clone(r.decoders)
}

// Len returns the number of registered decoders, not counting the fallback.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.decoders)
}

// Lookup returns the first decoder supporting id, or the fallback decoder.
// It never returns nil.
func (r *Registry) Lookup(id string) Decoder {
	if r != nil {
		for _, d := range r.decoders {
			if d.Supports(id) {
				return d
			}
		}
	}
	return Fallback
}

// Dispatch decodes raw with the decoder Lookup selects.
//
// The result is either a decoded frame or a *types.FrameError naming the
// frame id. A frame that only the fallback accepts fails with
// types.ErrUnsupportedFrame.
func (r *Registry) Dispatch(raw types.RawFrame) (types.Frame, error) {
	return r.dispatch(raw, 0)
}

// MaxDepth is how many levels of embedded frames Dispatch decodes below a
// top-level frame. Deeper frames fail with types.ErrNestingTooDeep.
const MaxDepth = 4

// nested hands embedded frames back to the registry one level deeper.
type nested struct {
	r     *Registry
	depth int
}

func (n nested) Dispatch(raw types.RawFrame) (types.Frame, error) {
	if n.depth > MaxDepth {
		return nil, &types.FrameError{ID: raw.ID, Err: types.ErrNestingTooDeep}
	}
	return n.r.dispatch(raw, n.depth)
}

func (r *Registry) dispatch(raw types.RawFrame, depth int) (types.Frame, error) {
	f, err := r.Lookup(raw.ID).Decode(raw, nested{r: r, depth: depth + 1})
	if err != nil {
		return nil, &types.FrameError{ID: raw.ID, Err: err}
	}
	if f == nil || f.Kind() == types.KindUnrecognized {
		return nil, &types.FrameError{ID: raw.ID, Err: types.ErrUnsupportedFrame}
	}
	return f, nil
}

// Fallback supports every id and decodes every frame to types.Unrecognized.
var Fallback Decoder = fallback{}

type fallback struct{}

func (fallback) Supports(string) bool { return true }

func (fallback) Decode(raw types.RawFrame, _ Dispatcher) (types.Frame, error) {
	return types.Unrecognized{FrameID: raw.ID}, nil
}
