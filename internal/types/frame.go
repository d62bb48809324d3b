package types

import (
	"fmt"
)

// Kind names a Frame variant.
type Kind string

// Frame variants.
const (
	KindTextInformation Kind = "text"
	KindComment         Kind = "comment"
	KindAttachedPicture Kind = "picture"
	KindChapter         Kind = "chapter"
	KindUnrecognized    Kind = "unrecognized"
)

// Frame is a decoded frame. It is a closed sum type: the variants are
// TextInformation, Comment, AttachedPicture, Chapter and Unrecognized.
//
// Switch on the concrete type to handle each variant:
//
//	switch f := frame.(type) {
//	case types.TextInformation:
//	case types.Comment:
//	case types.AttachedPicture:
//	case types.Chapter:
//	case types.Unrecognized:
//	}
type Frame interface {
	fmt.Stringer

	// Kind reports the variant.
	Kind() Kind

	isFrame()
}

// TextInformation is a text frame such as TIT2 (title) or TPE1 (lead artist).
type TextInformation struct {
	FrameID string `json:"frameId"`
	Text    string `json:"text"`
}

// Kind implements Frame.
func (TextInformation) Kind() Kind { return KindTextInformation }
func (TextInformation) isFrame()   {}

func (f TextInformation) String() string {
	return fmt.Sprintf("ID: %s, text: %s", f.FrameID, f.Text)
}

// Comment is a COMM frame.
type Comment struct {
	// Language is the raw three-byte language code, e.g. "eng".
	Language  string `json:"language"`
	ShortText string `json:"shortText"`
	Text      string `json:"text"`
}

// Kind implements Frame.
func (Comment) Kind() Kind { return KindComment }
func (Comment) isFrame()   {}

func (f Comment) String() string {
	return fmt.Sprintf("ID: COMM, lang: %s, short comment: %s, comment: %s", f.Language, f.ShortText, f.Text)
}

// Unrecognized marks a raw frame no decoder could interpret. It is never
// stored in a Frames collection; extraction routes it to the not-extracted list.
type Unrecognized struct {
	FrameID string `json:"frameId"`
}

// Kind implements Frame.
func (Unrecognized) Kind() Kind { return KindUnrecognized }
func (Unrecognized) isFrame()   {}

func (f Unrecognized) String() string {
	return fmt.Sprintf("ID: %s, unrecognized", f.FrameID)
}
