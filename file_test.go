package id3meta_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/go-logr/logr/funcr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/simonhull/id3meta"
	"github.com/simonhull/id3meta/internal/binary"
)

// writeFile writes data to a file in a per-test directory.
func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func taggedFile(t *testing.T, name, title string) string {
	t.Helper()
	content := append([]byte{3}, title...)
	data := binary.Tag(binary.Frame("TIT2", content))
	return writeFile(t, name, append(data, 0xFF, 0xFB, 0x90, 0x64))
}

// recordingProvider records the names of started spans.
type recordingProvider struct {
	noop.TracerProvider
	mu    sync.Mutex
	spans []string
}

func (p *recordingProvider) Tracer(string, ...trace.TracerOption) trace.Tracer {
	return recordingTracer{p: p}
}

type recordingTracer struct {
	noop.Tracer
	p *recordingProvider
}

func (t recordingTracer) Start(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	t.p.mu.Lock()
	t.p.spans = append(t.p.spans, name)
	t.p.mu.Unlock()
	return t.Tracer.Start(ctx, name, opts...)
}

func TestReadFile(t *testing.T) {
	path := taggedFile(t, "song.mp3", "Title")

	tag, err := id3meta.ReadFile(path)
	require.NoError(t, err)

	frames := id3meta.Extract(tag.Frames)
	assert.Equal(t, []id3meta.Frame{id3meta.TextInformation{FrameID: "TIT2", Text: "Title"}}, frames.All())
}

func TestReadFile_NotFound(t *testing.T) {
	_, err := id3meta.ReadFile(filepath.Join(t.TempDir(), "missing.mp3"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestReadFile_NoTag(t *testing.T) {
	path := writeFile(t, "plain.mp3", []byte{0xFF, 0xFB, 0x90, 0x64, 0, 0, 0, 0, 0, 0})

	_, err := id3meta.ReadFile(path)
	assert.ErrorIs(t, err, id3meta.ErrNoTag)
}

func TestReadFileContext_Cancelled(t *testing.T) {
	path := taggedFile(t, "song.mp3", "Title")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := id3meta.ReadFileContext(ctx, path)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestReadFileContext_Span(t *testing.T) {
	path := taggedFile(t, "song.mp3", "Title")
	tp := &recordingProvider{}

	_, err := id3meta.ReadFileContext(context.Background(), path, id3meta.WithTracerProvider(tp))
	require.NoError(t, err)
	assert.Equal(t, []string{"id3meta.ReadFile"}, tp.spans)
}

func TestReadFile_LogsTruncation(t *testing.T) {
	data := binary.NewWriter().Header(3, 0, 0, 500).Frame("TIT2", hello).Bytes()
	path := writeFile(t, "cut.mp3", data)

	var lines []string
	log := funcr.New(func(prefix, args string) {
		lines = append(lines, args)
	}, funcr.Options{})

	tag, err := id3meta.ReadFile(path, id3meta.WithLogger(log))
	require.NoError(t, err)
	require.Len(t, tag.Warnings, 1)
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "tag body truncated")
	assert.Contains(t, lines[0], "cut.mp3")
}

func TestExtract_LogsFailures(t *testing.T) {
	raw := []id3meta.RawFrame{
		{ID: "XXXX", Size: 1, Content: []byte{0}},
		{ID: "TIT2", Size: 1, Content: []byte{3}},
	}

	var lines []string
	log := funcr.New(func(prefix, args string) {
		lines = append(lines, args)
	}, funcr.Options{Verbosity: 1})

	_, failed := id3meta.ExtractWithFailures(raw, id3meta.WithLogger(log))
	assert.Len(t, failed, 2)
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], `"id"="XXXX"`)
	assert.Contains(t, lines[0], "unsupported frame")
	assert.Contains(t, lines[1], `"id"="TIT2"`)
	assert.Contains(t, lines[1], "too short")
}

func TestReadMany(t *testing.T) {
	paths := []string{
		taggedFile(t, "a.mp3", "A"),
		writeFile(t, "b.mp3", []byte("no tag here at all")),
		taggedFile(t, "c.mp3", "C"),
	}

	tags, err := id3meta.ReadMany(context.Background(), paths, id3meta.WithConcurrency(2))
	require.NoError(t, err)
	require.Len(t, tags, 3)

	assert.Nil(t, tags[1], "a file without a tag leaves a nil entry")
	for i, want := range map[int]string{0: "A", 2: "C"} {
		require.NotNil(t, tags[i])
		frames := id3meta.Extract(tags[i].Frames)
		texts := id3meta.FramesOf[id3meta.TextInformation](frames)
		require.Len(t, texts, 1)
		assert.Equal(t, want, texts[0].Text)
	}
}

func TestReadMany_Empty(t *testing.T) {
	tags, err := id3meta.ReadMany(context.Background(), nil)
	assert.NoError(t, err)
	assert.Nil(t, tags)
}

func TestReadMany_Error(t *testing.T) {
	paths := []string{
		taggedFile(t, "a.mp3", "A"),
		filepath.Join(t.TempDir(), "missing.mp3"),
	}

	tags, err := id3meta.ReadMany(context.Background(), paths)
	assert.Nil(t, tags)
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "missing.mp3"))
}

func TestReadMany_Cancelled(t *testing.T) {
	paths := []string{taggedFile(t, "a.mp3", "A"), taggedFile(t, "b.mp3", "B")}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := id3meta.ReadMany(ctx, paths)
	assert.ErrorIs(t, err, context.Canceled)
}
