package table

import "iter"

// FromSeq collects the rows of seq into a headerless Grid. Layout needs every
// row before the first line can be drawn, so the whole sequence is consumed.
func FromSeq(seq iter.Seq[[]string]) *Grid {
	return New(collect(seq))
}

// FromSeqWithHeader is like [FromSeq] but with a header row.
func FromSeqWithHeader(header []string, seq iter.Seq[[]string]) *Grid {
	return NewWithHeader(header, collect(seq))
}

// FromChan collects rows from ch until it is closed.
// It is a thin wrapper around [FromSeq].
func FromChan(ch <-chan []string) *Grid {
	return FromSeq(chanToIter(ch))
}

// FromChanWithHeader is like [FromChan] but with a header row.
func FromChanWithHeader(header []string, ch <-chan []string) *Grid {
	return FromSeqWithHeader(header, chanToIter(ch))
}

func chanToIter[T any](ch <-chan T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for item := range ch {
			if !yield(item) {
				return
			}
		}
	}
}

func collect(seq iter.Seq[[]string]) [][]string {
	var rows [][]string
	seq(func(row []string) bool {
		rows = append(rows, row)
		return true
	})
	return rows
}
