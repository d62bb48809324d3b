package id3meta_test

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/simonhull/id3meta"
	"github.com/simonhull/id3meta/internal/binary"
)

// benchmarkTag builds a tag with a typical podcast frame mix.
func benchmarkTag() []byte {
	chap := binary.NewWriter().WriteString("ch0\x00")
	for _, v := range []uint32{0, 60000, 0xFFFFFFFF, 0xFFFFFFFF} {
		binary.Write(chap, v)
	}
	chap.Frame("TIT2", []byte("\x03Intro"))

	body := binary.NewWriter().
		Frame("TIT2", []byte("\x03Episode 42")).
		Frame("TPE1", []byte("\x00Some Podcast")).
		Frame("TALB", []byte("\x03Season 3")).
		Frame("COMM", []byte("\x03eng\x00Show notes go here")).
		Frame("APIC", append([]byte("\x00image/png\x00\x03cover\x00"), make([]byte, 4096)...)).
		Frame("CHAP", chap.Bytes()).
		Frame("PRIV", make([]byte, 64)).
		WriteBytes(make([]byte, 256)).
		Bytes()
	return binary.Tag(body)
}

// createBenchmarkFile writes a tag followed by some audio-sized filler.
func createBenchmarkFile(b *testing.B) string {
	b.Helper()

	data := append(benchmarkTag(), make([]byte, 64<<10)...)
	path := filepath.Join(b.TempDir(), "bench.mp3")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		b.Fatal(err)
	}
	return path
}

// BenchmarkReadBytes measures header decoding and frame splitting.
func BenchmarkReadBytes(b *testing.B) {
	data := benchmarkTag()

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if _, err := id3meta.ReadBytes(data); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkExtract measures decoding raw frames with the default registry.
func BenchmarkExtract(b *testing.B) {
	tag, err := id3meta.ReadBytes(benchmarkTag())
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		frames := id3meta.Extract(tag.Frames)
		if frames.Len() != 6 {
			b.Fatalf("expected 6 frames, got %d", frames.Len())
		}
	}
}

// BenchmarkReadFile measures reading a tag from disk.
func BenchmarkReadFile(b *testing.B) {
	path := createBenchmarkFile(b)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if _, err := id3meta.ReadFile(path); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkReadMany measures ReadMany scalability.
func BenchmarkReadMany(b *testing.B) {
	for _, n := range []int{1, 5, 10, 20, 50} {
		b.Run(strconv.Itoa(n)+"_files", func(b *testing.B) {
			paths := make([]string, n)
			for i := range paths {
				paths[i] = createBenchmarkFile(b)
			}

			ctx := context.Background()

			b.ResetTimer()
			b.ReportAllocs()

			for i := 0; i < b.N; i++ {
				if _, err := id3meta.ReadMany(ctx, paths); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkFramesFilter measures filtering a decoded collection.
func BenchmarkFramesFilter(b *testing.B) {
	tag, err := id3meta.ReadBytes(benchmarkTag())
	if err != nil {
		b.Fatal(err)
	}
	frames := id3meta.Extract(tag.Frames)
	isText := id3meta.OfKind(id3meta.KindTextInformation)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_ = frames.Filter(isText)
	}
}
