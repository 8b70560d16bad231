package table

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errInternalWrite = errors.New("write failed")

func TestAlignCellPadsRight(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "ab  ", alignCell("ab", 4))
	assert.Equal(t, "ab", alignCell("ab", 2))
	assert.Equal(t, "", alignCell("", 0))
	assert.Equal(t, "   ", alignCell("", 3))
}

func TestAlignCellWiderThanColumn(t *testing.T) {
	t.Parallel()
	// Never truncates.
	assert.Equal(t, "abcdef", alignCell("abcdef", 3))
}

func TestDrawHLine(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	err := drawHLine(&buf, ColumnWidths{1, 0, 2}, RuleGlyphs{"<", "^", ">"}, "=")
	require.NoError(t, err)
	assert.Equal(t, "<==^=^==>\n", buf.String())
}

func TestDrawHLineNoColumns(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	require.NoError(t, drawHLine(&buf, nil, RuleGlyphs{"+", "+", "+"}, "-"))
	assert.Equal(t, "++\n", buf.String())
}

func TestDrawRow(t *testing.T) {
	t.Parallel()
	cells := []string{"a", "bb"}
	cell := func(col int) string { return cellAt(cells, col) }
	var buf bytes.Buffer
	require.NoError(t, drawRow(&buf, cell, ColumnWidths{3, 2, 1}, "|"))
	assert.Equal(t, "|a   |bb | |\n", buf.String())

	buf.Reset()
	require.NoError(t, drawRow(&buf, cell, ColumnWidths{3, 2, 1}, ""))
	assert.Equal(t, "a   bb  \n", buf.String())
}

func TestDrawRowError(t *testing.T) {
	t.Parallel()
	err := drawRow(&errWriterInternal{}, func(int) string { return "" }, ColumnWidths{1}, "|")
	assert.ErrorIs(t, err, errInternalWrite)
}

func TestColCount(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 0, colCount(nil, nil))
	assert.Equal(t, 2, colCount([]string{"a", "b"}, [][]string{{"x"}}))
	assert.Equal(t, 3, colCount([]string{"a"}, [][]string{{"x"}, {"x", "y", "z"}}))
}

func TestChanToIterStopsEarly(t *testing.T) {
	t.Parallel()
	ch := make(chan int, 3)
	ch <- 1
	ch <- 2
	ch <- 3
	close(ch)
	var got []int
	for v := range chanToIter(ch) {
		got = append(got, v)
		if v == 2 {
			break
		}
	}
	assert.Equal(t, []int{1, 2}, got)
}

type errWriterInternal struct{}

func (e *errWriterInternal) Write([]byte) (int, error) {
	return 0, errInternalWrite
}
