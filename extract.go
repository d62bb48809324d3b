package id3meta

import (
	"errors"
)

// Extract decodes raw frames with the registry and returns the frames that
// decoded, in their original order. Frames that do not decode are dropped;
// use ExtractWithFailures to get them back.
func Extract(raw []RawFrame, opts ...Option) Frames {
	frames, _ := ExtractWithFailures(raw, opts...)
	return frames
}

// ExtractWithFailures decodes every raw frame with the registry.
//
// Decoded frames are returned in their original order. A raw frame that no
// decoder supports, or whose decoder rejects its content, is returned
// unchanged in the second list, also in original order, and logged at V(1).
// One bad frame never stops the others from being decoded.
func ExtractWithFailures(raw []RawFrame, opts ...Option) (Frames, []RawFrame) {
	o := buildOptions(opts)

	decoded := make([]Frame, 0, len(raw))
	var failed []RawFrame

	for _, rf := range raw {
		f, err := o.registry.Dispatch(rf)
		if err != nil {
			o.logger.V(1).Info("frame not extracted", "id", rf.ID, "size", rf.Size, "reason", reason(err))
			failed = append(failed, rf)
			continue
		}
		decoded = append(decoded, f)
	}

	return NewFrames(decoded...), failed
}

// reason strips the frame id the registry already wraps around err.
func reason(err error) string {
	var fe *FrameError
	if errors.As(err, &fe) && fe.Err != nil {
		return fe.Err.Error()
	}
	return err.Error()
}
