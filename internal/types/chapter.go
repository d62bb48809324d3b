package types

import "fmt"

// Chapter is a CHAP frame. Times are in milliseconds, offsets in bytes.
//
// Only the first embedded sub-frame is decoded. SubFrame is nil when the
// chapter has no sub-frame or the sub-frame could not be decoded.
type Chapter struct {
	StartTime   uint32 `json:"startTime"`
	EndTime     uint32 `json:"endTime"`
	StartOffset uint32 `json:"startOffset"`
	EndOffset   uint32 `json:"endOffset"`
	SubFrame    Frame  `json:"subFrame,omitempty"`
}

// Kind implements Frame.
func (Chapter) Kind() Kind { return KindChapter }
func (Chapter) isFrame()   {}

func (f Chapter) String() string {
	sub := "none"
	if f.SubFrame != nil {
		sub = f.SubFrame.String()
	}
	return fmt.Sprintf("ID: CHAP, start time: %d, end time: %d, start offset: %d, end offset: %d, sub frame: (%s)",
		f.StartTime, f.EndTime, f.StartOffset, f.EndOffset, sub)
}
