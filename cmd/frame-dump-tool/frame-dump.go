package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/simonhull/id3meta/internal/binary"
	"github.com/simonhull/id3meta/internal/id3v2"
	"github.com/simonhull/id3meta/internal/registry"
)

// Useful test tool to confirm which frames the splitter actually finds,
// including the frames nested inside chapters.
func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: frame-dump <file.mp3>")
		os.Exit(1)
	}

	f, err := os.Open(os.Args[1])
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	if err := dump(os.Stdout, f); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

func dump(w io.Writer, r io.Reader) error {
	tag, err := id3v2.Read(r)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "ID3v2.%d.%d (size: %d, flags: 0x%02x)\n",
		tag.Header.Version.Major, tag.Header.Version.Minor, tag.Header.BodySize, tag.Header.Flags)

	offset := int64(id3v2.HeaderSize)
	if tag.Header.ExtendedHeader {
		offset += int64(tag.Header.ExtendedSize)
	}
	for _, raw := range tag.Frames {
		dumpFrame(w, raw.ID, raw.Size, raw.Content, offset, 1)
		offset += id3v2.FrameHeaderSize + int64(raw.Size)
	}
	for _, warn := range tag.Warnings {
		fmt.Fprintf(w, "warning: %s\n", warn)
	}
	return nil
}

func dumpFrame(w io.Writer, id string, size uint32, content []byte, offset int64, depth int) {
	indent := strings.Repeat("  ", depth)
	fmt.Fprintf(w, "%s%s (size: %d, offset: %d)\n", indent, id, size, offset)

	if id != "CHAP" {
		return
	}
	if depth > registry.MaxDepth {
		fmt.Fprintf(w, "%s  (nested too deep)\n", indent)
		return
	}

	// Chapters carry an element id, four time/offset fields, then sub-frames.
	c := binary.NewCursor(content)
	c.UntilTerminator(1)
	c.Next(16, "chapter times")
	if c.Err() != nil {
		return
	}
	base := offset + id3v2.FrameHeaderSize + int64(c.Offset())
	subs, err := id3v2.Split(c.Rest())
	for _, sub := range subs {
		dumpFrame(w, sub.ID, sub.Size, sub.Content, base, depth+1)
		base += id3v2.FrameHeaderSize + int64(sub.Size)
	}
	if err != nil {
		fmt.Fprintf(w, "%s  error: %v\n", indent, err)
	}
}
