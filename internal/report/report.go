// Package report turns a decoded tag into the views printed by id3dump and
// served by id3serve.
package report

import (
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"
	"sigs.k8s.io/yaml"

	"github.com/simonhull/id3meta"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Report is the view of one source.
type Report struct {
	Path         string      `json:"path,omitempty"`
	Present      bool        `json:"present"`
	Header       *HeaderView `json:"header,omitempty"`
	Frames       []FrameView `json:"frames"`
	NotExtracted []RawView   `json:"notExtracted,omitempty"`
	Warnings     []string    `json:"warnings,omitempty"`
}

// HeaderView is the tag header.
type HeaderView struct {
	Major          byte   `json:"major"`
	Minor          byte   `json:"minor"`
	Flags          byte   `json:"flags"`
	Size           uint32 `json:"size"`
	ExtendedHeader bool   `json:"extendedHeader"`
}

// RawView names a frame that was not extracted.
type RawView struct {
	ID   string `json:"id"`
	Size uint32 `json:"size"`
}

// FrameView is one decoded frame. Exactly one of the variant fields is set,
// matching Kind.
type FrameView struct {
	Kind    id3meta.Kind `json:"kind"`
	Text    *TextView    `json:"text,omitempty"`
	Comment *CommentView `json:"comment,omitempty"`
	Picture *PictureView `json:"picture,omitempty"`
	Chapter *ChapterView `json:"chapter,omitempty"`
}

type TextView struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

type CommentView struct {
	Language  string `json:"language"`
	ShortText string `json:"shortText"`
	Text      string `json:"text"`
}

type PictureView struct {
	MIMEType         string `json:"mimeType"`
	DetectedMIMEType string `json:"detectedMimeType,omitempty"`
	PictureType      string `json:"pictureType,omitempty"`
	Description      string `json:"description"`
	Size             int    `json:"size"`
}

type ChapterView struct {
	StartTime   uint32     `json:"startTime"`
	EndTime     uint32     `json:"endTime"`
	StartOffset uint32     `json:"startOffset"`
	EndOffset   uint32     `json:"endOffset"`
	SubFrame    *FrameView `json:"subFrame,omitempty"`
}

// Absent is the report of a source without a tag.
func Absent(path string) Report {
	return Report{Path: path, Frames: []FrameView{}}
}

// New builds the report of a tag and the result of extracting its frames.
func New(path string, tag *id3meta.Tag, frames id3meta.Frames, failed []id3meta.RawFrame) Report {
	r := Report{
		Path:    path,
		Present: true,
		Header: &HeaderView{
			Major:          tag.Header.Version.Major,
			Minor:          tag.Header.Version.Minor,
			Flags:          tag.Header.Flags,
			Size:           tag.Header.BodySize,
			ExtendedHeader: tag.Header.ExtendedHeader,
		},
		Frames: make([]FrameView, 0, frames.Len()),
	}
	for f := range frames.Seq() {
		r.Frames = append(r.Frames, View(f))
	}
	for _, raw := range failed {
		r.NotExtracted = append(r.NotExtracted, RawView{ID: raw.ID, Size: raw.Size})
	}
	for _, w := range tag.Warnings {
		r.Warnings = append(r.Warnings, w.String())
	}
	return r
}

// View converts a decoded frame.
func View(f id3meta.Frame) FrameView {
	v := FrameView{Kind: f.Kind()}
	switch f := f.(type) {
	case id3meta.TextInformation:
		v.Text = &TextView{ID: f.FrameID, Text: f.Text}
	case id3meta.Comment:
		v.Comment = &CommentView{Language: f.Language, ShortText: f.ShortText, Text: f.Text}
	case id3meta.AttachedPicture:
		v.Picture = &PictureView{
			MIMEType:         f.MIMEType,
			DetectedMIMEType: f.DetectMIMEType(),
			Description:      f.Description,
			Size:             len(f.ImageData),
		}
		if f.HasPictureType {
			v.Picture.PictureType = f.PictureType.String()
		}
	case id3meta.Chapter:
		v.Chapter = &ChapterView{
			StartTime:   f.StartTime,
			EndTime:     f.EndTime,
			StartOffset: f.StartOffset,
			EndOffset:   f.EndOffset,
		}
		if f.SubFrame != nil {
			sub := View(f.SubFrame)
			v.Chapter.SubFrame = &sub
		}
	}
	return v
}

// JSON encodes v as indented JSON.
func JSON(v any) ([]byte, error) {
	return json.MarshalIndent(v, "", "  ")
}

// YAML encodes v as YAML using its JSON field names.
func YAML(v any) ([]byte, error) {
	return yaml.Marshal(v)
}

// WriteText prints the report of a single source the way id3dump does:
// the header line, then text information, comment, chapter and picture
// frames in that order.
func WriteText(w io.Writer, tag *id3meta.Tag, frames id3meta.Frames) error {
	if tag == nil {
		_, err := fmt.Fprintln(w, "ID3v2.3 was not extracted")
		return err
	}

	if _, err := fmt.Fprintf(w, "ID3 identified. Version: (%s), Size: %d bytes\n",
		tag.Header.Version, tag.Header.BodySize); err != nil {
		return err
	}

	for _, kind := range []id3meta.Kind{
		id3meta.KindTextInformation,
		id3meta.KindComment,
		id3meta.KindChapter,
		id3meta.KindAttachedPicture,
	} {
		for f := range frames.Filter(id3meta.OfKind(kind)).Seq() {
			if _, err := fmt.Fprintln(w, f); err != nil {
				return err
			}
		}
	}
	return nil
}
