// Package id3meta reads ID3v2.3 tags from the start of media files.
//
// A tag is read in two steps. Reading decodes the 10-byte header and splits
// the tag body into raw frames. Extraction decodes each raw frame with a
// registry of decoders into a typed Frame: text information, comments,
// attached pictures and chapters.
//
// # Quick Start
//
//	tag, err := id3meta.ReadFile("episode.mp3")
//	if errors.Is(err, id3meta.ErrNoTag) {
//		fmt.Println("no ID3v2.3 tag")
//		return
//	}
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	frames := id3meta.Extract(tag.Frames)
//	for _, t := range id3meta.FramesOf[id3meta.TextInformation](frames) {
//		fmt.Printf("%s: %s\n", t.FrameID, t.Text)
//	}
//
// # Frames
//
// Frame is a closed set of variants. Switch on the concrete type:
//
//	for f := range frames.Seq() {
//		switch f := f.(type) {
//		case id3meta.TextInformation:
//			fmt.Println(f.Text)
//		case id3meta.Chapter:
//			fmt.Println(f.StartTime, f.EndTime, f.SubFrame)
//		}
//	}
//
// Frames no decoder understands, or whose content is too short, are not
// extracted. ExtractWithFailures returns them:
//
//	frames, failed := id3meta.ExtractWithFailures(tag.Frames)
//	for _, raw := range failed {
//		fmt.Println("skipped", raw.ID)
//	}
//
// # Decoders
//
// A Registry is an ordered list of decoders; the first one supporting a
// frame id decodes it. DefaultRegistry decodes CHAP, TIT2, TYER, TPE1, TALB,
// TPUB, TIT3, TCON, TCOP, TENC, COMM and APIC. Registries are immutable:
//
//	reg := id3meta.DefaultRegistry().With(myDecoder{})
//	frames := id3meta.Extract(tag.Frames, id3meta.WithRegistry(reg))
//
// # Error Handling
//
// id3meta distinguishes between three outcomes of a read:
//
//   - No tag: errors.Is(err, ErrNoTag). The source does not start with "ID3"
//     or carries another major version.
//   - Fatal errors: the header itself is truncated (ErrTruncated) or
//     impossible (*CorruptedTagError), or the source failed.
//   - Warnings: the body ended before its declared size. The Tag holds the
//     frames read so far and a Warning; WithStrictParsing makes it an error.
//
// # Concurrency
//
// Reading keeps no shared state. Tags from independent sources can be read
// in parallel; ReadMany does so for a list of files.
//
// Unsupported: ID3v2.2 and ID3v2.4 tags, compressed or encrypted frames,
// unsynchronization, CRC checks and writing tags.
package id3meta
