// core/input/lines.go
package input

import (
	"bufio"
	"context"
	"fmt"
	"io"
)

// MaxLine bounds a single record.
const MaxLine = 1 << 20

// ReadLines returns every line of r without its terminator ("\n" or
// "\r\n"); empty lines are kept.
// It returns ctx.Err() as soon as ctx is done, even while a read is
// blocked (an idle terminal or a stalled pipe); the blocked read is left
// to finish on its own.
func ReadLines(ctx context.Context, r io.Reader) ([]string, error) {
	type result struct {
		lines []string
		err   error
	}
	done := make(chan result, 1)

	go func() {
		sc := bufio.NewScanner(r)
		sc.Buffer(make([]byte, 64*1024), MaxLine)

		var lines []string
		for sc.Scan() {
			if err := ctx.Err(); err != nil {
				done <- result{err: err}
				return
			}
			lines = append(lines, sc.Text())
		}
		done <- result{lines: lines, err: sc.Err()}
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-done:
		if res.err != nil {
			return nil, res.err
		}
		return res.lines, nil
	}
}

// ReadPaths concatenates the lines of every path, in order.
func ReadPaths(ctx context.Context, paths []string, stdin io.Reader) ([]string, error) {
	var all []string
	for _, p := range paths {
		rc, err := Open(p, stdin)
		if err != nil {
			return nil, err
		}
		lines, err := ReadLines(ctx, rc)
		_ = rc.Close()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", p, err)
		}
		all = append(all, lines...)
	}
	return all, nil
}
