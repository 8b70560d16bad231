package cli

import (
	"bufio"
	"errors"
	"io"
	"strings"

	"github.com/bjaus/table"
)

// maxLineSize caps a single input line.
const maxLineSize = 1024 * 1024

// readGrid reads one row per line from r, splitting cells on delim. Blank
// lines at the end of the input are dropped. With header set the first line
// becomes the table header.
func readGrid(r io.Reader, delim string, header bool) (*table.Grid, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for sc.Scan() {
		lines = append(lines, strings.TrimSuffix(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, WrapUserError(err, "input line longer than 1 MiB", "Split the input into shorter lines")
		}
		return nil, err
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	rows := make([][]string, len(lines))
	for i, line := range lines {
		rows[i] = strings.Split(line, delim)
	}
	if header && len(rows) > 0 {
		return table.NewWithHeader(rows[0], rows[1:]), nil
	}
	return table.New(rows), nil
}
