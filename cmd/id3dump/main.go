// Command id3dump prints the ID3v2.3 tags of media files.
//
// Usage:
//
//	id3dump [flags] file...
//
// By default it prints the tag header, then text information, comment,
// chapter and picture frames. Use -o json or -o yaml for structured output.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/multierr"

	"github.com/simonhull/id3meta"
	"github.com/simonhull/id3meta/internal/logging"
	"github.com/simonhull/id3meta/internal/report"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("id3dump", flag.ContinueOnError)
	fs.SetOutput(stderr)
	output := fs.String("o", "text", "output format: text, json or yaml")
	verbosity := fs.Int("v", 0, "log verbosity; 1 logs every frame that is not extracted")
	failures := fs.Bool("failures", false, "list frames that were not extracted")
	strict := fs.Bool("strict", false, "fail on a truncated tag body")
	version := fs.Bool("version", false, "print version information and exit")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: id3dump [flags] file...")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *version {
		fmt.Fprintf(stdout, "id3dump %s\n", id3meta.GetVersionInfo())
		return 0
	}
	if fs.NArg() == 0 {
		fmt.Fprintln(stderr, "Please specify an MP3 file you want to get ID3 Tag Information for.")
		fs.Usage()
		return 2
	}
	switch *output {
	case "text", "json", "yaml":
	default:
		fmt.Fprintf(stderr, "id3dump: unknown output format %q\n", *output)
		return 2
	}

	opts := []id3meta.Option{id3meta.WithLogger(logging.New(stderr, *verbosity))}
	if *strict {
		opts = append(opts, id3meta.WithStrictParsing())
	}

	var (
		errs    error
		reports []report.Report
	)
	for _, path := range fs.Args() {
		r, err := dump(stdout, path, *output, *failures, opts)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", path, err))
			continue
		}
		reports = append(reports, r)
	}

	if *output != "text" && len(reports) > 0 {
		if err := encode(stdout, *output, reports); err != nil {
			errs = multierr.Append(errs, err)
		}
	}

	for _, err := range multierr.Errors(errs) {
		fmt.Fprintf(stderr, "id3dump: %v\n", err)
	}
	if errs != nil {
		return 1
	}
	return 0
}

// dump reads one file. In text mode it prints the file right away;
// otherwise the caller encodes the returned report.
func dump(w io.Writer, path, output string, failures bool, opts []id3meta.Option) (report.Report, error) {
	tag, err := id3meta.ReadFile(path, opts...)
	if errors.Is(err, id3meta.ErrNoTag) {
		if output == "text" {
			return report.Absent(path), report.WriteText(w, nil, id3meta.Frames{})
		}
		return report.Absent(path), nil
	}
	if err != nil {
		return report.Report{}, err
	}

	frames, failed := id3meta.ExtractWithFailures(tag.Frames, opts...)
	if output != "text" {
		return report.New(path, tag, frames, failed), nil
	}

	if err := report.WriteText(w, tag, frames); err != nil {
		return report.Report{}, err
	}
	for _, warn := range tag.Warnings {
		fmt.Fprintf(w, "warning: %s\n", warn)
	}
	if failures {
		for _, raw := range failed {
			fmt.Fprintf(w, "not extracted: %s (%d bytes)\n", raw.ID, raw.Size)
		}
	}
	return report.New(path, tag, frames, failed), nil
}

func encode(w io.Writer, output string, reports []report.Report) error {
	var v any = reports
	if len(reports) == 1 {
		v = reports[0]
	}

	var (
		b   []byte
		err error
	)
	switch output {
	case "json":
		b, err = report.JSON(v)
		b = append(b, '\n')
	case "yaml":
		b, err = report.YAML(v)
	}
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}
