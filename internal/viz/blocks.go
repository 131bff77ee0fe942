package viz

import (
	"strings"

	"github.com/san-kum/sortviz/internal/sorting"
)

const (
	blockFull        = '█'
	blockHalfQuarter = '▆'
	blockHalf        = '▄'
	blockQuarter     = '▂'
	levelsPerRow     = 4
)

// column returns the glyphs of a bar of height v, bottom first. Each row
// holds four levels: v/4 full blocks topped by one partial block.
func column(v int) []rune {
	if v <= 0 {
		return nil
	}
	col := make([]rune, 0, v/levelsPerRow+1)
	for i := 0; i < v/levelsPerRow; i++ {
		col = append(col, blockFull)
	}
	switch v % levelsPerRow {
	case 1:
		col = append(col, blockQuarter)
	case 2:
		col = append(col, blockHalf)
	case 3:
		col = append(col, blockHalfQuarter)
	}
	return col
}

// blockRows returns how many terminal rows bars of values up to highest
// occupy.
func blockRows(highest int) int {
	if highest <= 0 {
		return 0
	}
	return (highest + levelsPerRow - 1) / levelsPerRow
}

// renderBlocks renders nums as vertical bars, one terminal column per element,
// top row first. Columns named by op are drawn with the highlight style.
func renderBlocks(nums []int, op sorting.Operation, s styles) string {
	highest := 0
	cols := make([][]rune, len(nums))
	for i, v := range nums {
		cols[i] = column(v)
		if v > highest {
			highest = v
		}
	}

	hl := make(map[int]bool, 2)
	for _, i := range op.Adjusted().Indices() {
		hl[i] = true
	}
	hs := s.highlight(op)

	rows := blockRows(highest)
	var b strings.Builder
	for r := 0; r < rows; r++ {
		level := rows - r - 1
		var plain strings.Builder
		flush := func() {
			if plain.Len() > 0 {
				b.WriteString(s.bar.Render(plain.String()))
				plain.Reset()
			}
		}
		for i, col := range cols {
			c := ' '
			if level < len(col) {
				c = col[level]
			}
			if hl[i] {
				flush()
				b.WriteString(hs.Render(string(c)))
				continue
			}
			plain.WriteRune(c)
		}
		flush()
		if r < rows-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
