package id3meta

import (
	"bytes"
	"fmt"
	"io"

	"github.com/simonhull/id3meta/internal/id3v2"
)

// Read decodes the ID3v2.3 tag at the start of r.
//
// r is read strictly in order and never past the end of the tag. Read does
// not close r.
//
// The outcomes are:
//   - no tag: err matches ErrNoTag (the source does not start with "ID3",
//     or the tag is not version 2.3)
//   - broken header: err matches ErrTruncated, or is a *CorruptedTagError
//   - success: a Tag, possibly with Warnings when the body ended early
//
// Example:
//
//	tag, err := id3meta.Read(f)
//	if errors.Is(err, id3meta.ErrNoTag) {
//		return nil
//	}
//	if err != nil {
//		return err
//	}
//	for f := range id3meta.Extract(tag.Frames).Seq() {
//		fmt.Println(f)
//	}
func Read(r io.Reader, opts ...Option) (*Tag, error) {
	return read(r, buildOptions(opts))
}

// ReadBytes decodes the ID3v2.3 tag at the start of data.
func ReadBytes(data []byte, opts ...Option) (*Tag, error) {
	return Read(bytes.NewReader(data), opts...)
}

func read(r io.Reader, o *options) (*Tag, error) {
	tag, err := id3v2.Read(r)
	if err != nil {
		return nil, err
	}

	for _, w := range tag.Warnings {
		o.logger.Info(w.Message, "stage", w.Stage, "offset", w.Offset, "error", w.Err)
	}

	if o.strictParsing && len(tag.Warnings) > 0 {
		w := tag.Warnings[0]
		return nil, fmt.Errorf("strict parsing failed: %s: %w", w.Message, w.Err)
	}

	if o.ignoreWarnings {
		tag.Warnings = nil
	}

	return tag, nil
}
