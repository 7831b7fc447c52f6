// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"ipfilter-core/input"
	"ipfilter-core/pool"
	"ipfilter/internal/cli"
	"ipfilter/internal/cmdutil"
	"ipfilter/internal/pipeline"
	"ipfilter/internal/version"
	"ipfilter/internal/writers"
	"ipfilter/pkg/api"
)

// Exit codes.
const (
	ExitOK       = 0
	ExitData     = 1 // unparseable records or unreadable input
	ExitUsage    = 2
	ExitWrite    = 3
	ExitCanceled = 130
)

// flush finishes stdout; a closed downstream pipe is not an error.
func flush(outw *bufio.Writer, stderr io.Writer, code int) int {
	if err := outw.Flush(); writers.IsBrokenPipe(err) {
		return ExitOK
	} else if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return ExitWrite
	}
	return code
}

func RunContext(ctx context.Context, argv []string, stdin io.Reader, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)

	fs := cli.NewFlagSet("ipfilter")
	fs.SetOutput(io.Discard)

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		fs.SetOutput(outw)
		if errors.Is(err, flag.ErrHelp) {
			fs.Usage()
			return flush(outw, stderr, ExitOK)
		}
		_, _ = fmt.Fprintln(stderr, err)
		fs.Usage()
		return flush(outw, stderr, ExitUsage)
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "ipfilter version %s\n", version.Version)
		return flush(outw, stderr, ExitOK)
	}

	logger, err := cmdutil.NewLogger(stderr, opts.LogLevel, opts.Quiet)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return ExitUsage
	}

	code := run(ctx, logger, opts, stdin, outw)
	return flush(outw, stderr, code)
}

func run(ctx context.Context, logger *log.Logger, opts cli.Options, stdin io.Reader, outw io.Writer) int {
	files := opts.Files
	if len(files) == 0 {
		files = []string{"-"}
	}
	lines, err := input.ReadPaths(ctx, files, stdin)
	if err != nil {
		if ctx.Err() != nil {
			return ExitCanceled
		}
		logger.Error("reading input failed", "err", err)
		return ExitData
	}
	if len(lines) == 0 {
		logger.Warn("no records read", "files", len(files))
	}
	logger.Debug("input read", "records", len(lines), "files", len(files))

	steps, err := opts.Plan().Steps()
	if err != nil {
		logger.Error("invalid plan", "err", err)
		return ExitUsage
	}

	w, err := writers.New(opts.Output, outw, opts.Header)
	if err != nil {
		logger.Error("output", "err", err)
		return ExitUsage
	}
	if rc, ok := w.(writers.RecordCounter); ok {
		rc.SetRecords(len(lines))
	}

	var werr error
	err = pipeline.Run(ctx, lines, steps, func(s api.SectionV1) error {
		logger.Debug("section", "name", s.Name, "count", s.Count)
		if err := w.WriteSection(s); err != nil {
			werr = err
			return err
		}
		return nil
	})
	if err == nil {
		err = w.Close()
		werr = err
	}
	switch {
	case err == nil:
		return ExitOK
	case werr != nil:
		if writers.IsBrokenPipe(werr) {
			return ExitOK
		}
		logger.Error("writing output failed", "err", werr)
		return ExitWrite
	case ctx.Err() != nil:
		return ExitCanceled
	}

	var ce *pool.ConversionError
	var le *pool.LengthError
	switch {
	case errors.As(err, &ce):
		logger.Error("record is not a numeric address", "err", err, "component", ce.Index+1)
	case errors.As(err, &le):
		logger.Error("record is too short", "err", err, "components", len(le.Address))
	default:
		logger.Error("processing failed", "err", err)
	}
	return ExitData
}

// Run is RunContext without cancellation.
func Run(argv []string, stdin io.Reader, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdin, stdout, stderr)
}
