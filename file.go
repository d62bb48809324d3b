package id3meta

import (
	"context"
	"errors"
	"fmt"
	"os"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

const tracerName = "github.com/simonhull/id3meta"

// ReadFile decodes the ID3v2.3 tag at the start of the file at path.
//
// Only the tag is read; the audio that follows it is never loaded.
//
// Example:
//
//	tag, err := id3meta.ReadFile("episode.mp3")
//	if err != nil {
//		return err
//	}
//	fmt.Println(tag.Header.Version, len(tag.Frames))
func ReadFile(path string, opts ...Option) (*Tag, error) {
	return ReadFileContext(context.Background(), path, opts...)
}

// ReadFileContext is ReadFile with a context for cancellation and tracing.
//
// The read is recorded as a span named "id3meta.ReadFile" on the tracer
// provider from WithTracerProvider, or the global provider.
func ReadFileContext(ctx context.Context, path string, opts ...Option) (*Tag, error) {
	return readFile(ctx, path, buildOptions(opts))
}

func readFile(ctx context.Context, path string, o *options) (tag *Tag, err error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	tp := o.tracerProvider
	if tp == nil {
		tp = otel.GetTracerProvider()
	}
	_, span := tp.Tracer(tracerName).Start(ctx, "id3meta.ReadFile",
		trace.WithAttributes(attribute.String("file.path", path)))
	defer func() {
		switch {
		case errors.Is(err, ErrNoTag):
			span.SetAttributes(attribute.Bool("id3.present", false))
		case err != nil:
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		default:
			span.SetAttributes(
				attribute.Bool("id3.present", true),
				attribute.Int64("id3.body_size", int64(tag.Header.BodySize)),
				attribute.Int("id3.frames", len(tag.Frames)),
				attribute.Int("id3.warnings", len(tag.Warnings)),
			)
		}
		span.End()
	}()

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	log := o.logger.WithValues("path", path)
	fo := *o
	fo.logger = log

	return read(f, &fo)
}

// ReadMany decodes the tags of several files concurrently.
//
// Files are read in parallel using up to WithConcurrency goroutines
// (runtime.NumCPU() by default). Results are returned in the same order as
// the input paths. A file without a tag leaves a nil entry; any other
// failure cancels the remaining reads and is returned.
//
// Example:
//
//	tags, err := id3meta.ReadMany(ctx, paths)
//	if err != nil {
//		return err
//	}
//	for i, tag := range tags {
//		if tag == nil {
//			fmt.Printf("%s: no tag\n", paths[i])
//		}
//	}
func ReadMany(ctx context.Context, paths []string, opts ...Option) ([]*Tag, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	o := buildOptions(opts)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(o.concurrency)

	results := make([]*Tag, len(paths))

	for i, path := range paths {
		g.Go(func() error {
			tag, err := readFile(ctx, path, o)
			if errors.Is(err, ErrNoTag) {
				return nil
			}
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			results[i] = tag
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
