package table_test

import (
	"slices"
	"testing"

	"github.com/bjaus/table"
	"github.com/stretchr/testify/assert"
)

func TestFromSeq(t *testing.T) {
	t.Parallel()
	g := table.FromSeq(slices.Values(rows))
	assert.False(t, g.HasHeader())
	assert.Equal(t, table.Render(table.New(rows), table.BorderASCII), table.Render(g, table.BorderASCII))
}

func TestFromSeqWithHeader(t *testing.T) {
	t.Parallel()
	g := table.FromSeqWithHeader(header, slices.Values(rows))
	assert.Equal(t, lines("h1 h2 h3", "a1 a2 a3", "b1 b2 b3"), table.Render(g))
}

func TestFromSeqEmpty(t *testing.T) {
	t.Parallel()
	g := table.FromSeq(slices.Values([][]string(nil)))
	assert.True(t, g.IsEmpty())
	assert.Empty(t, table.Render(g, table.BorderUnicode))
}

func TestFromChan(t *testing.T) {
	t.Parallel()
	ch := make(chan []string)
	go func() {
		defer close(ch)
		for _, row := range rows {
			ch <- row
		}
	}()
	g := table.FromChan(ch)
	assert.Equal(t, 2, g.Len())
	assert.Equal(t, "b3", g.Cell(1, 2))
}

func TestFromChanWithHeader(t *testing.T) {
	t.Parallel()
	ch := make(chan []string, len(rows))
	for _, row := range rows {
		ch <- row
	}
	close(ch)
	g := table.FromChanWithHeader(header, ch)
	assert.Equal(t, lines(
		"+---+---+--+",
		"|h1 |h2 |h3|",
		"+---+---+--+",
		"|a1 |a2 |a3|",
		"|b1 |b2 |b3|",
		"+---+---+--+",
	), table.Render(g, table.BorderASCII))
}
