// Package spatial finds cells around a position of a grid.
//
// Offsets outside the grid are clamped silently; every function returns a
// zero value instead of failing.
package spatial

import (
	"iter"
	"strings"

	"github.com/chiliososada/skills-extractor/pkg/skillsheet/models"
)

// Window is an inclusive offset rectangle relative to an anchor cell.
type Window struct {
	RowMin, RowMax int
	ColMin, ColMax int
}

// Square returns the window spanning radius rows and columns on every side.
func Square(radius int) Window {
	return Window{RowMin: -radius, RowMax: radius, ColMin: -radius, ColMax: radius}
}

// ContextWindow is the default window of ContextScore.
var ContextWindow = Window{RowMin: -3, RowMax: 3, ColMin: -5, ColMax: 5}

// Scan yields the non-empty cells of the window around (row, col), row by
// row, left to right.
func Scan(g models.Grid, row, col int, w Window) iter.Seq[models.Cell] {
	return func(yield func(models.Cell) bool) {
		r0, r1 := clamp(row+w.RowMin, row+w.RowMax, g.RowCount())
		c0, c1 := clamp(col+w.ColMin, col+w.ColMax, g.ColCount())
		for r := r0; r <= r1; r++ {
			for c := c0; c <= c1; c++ {
				cell := g.CellAt(r, c)
				if cell.IsEmpty() {
					continue
				}
				if !yield(cell) {
					return
				}
			}
		}
	}
}

// HasNearbyKeyword reports whether any cell within radius of (row, col)
// contains one of the keywords.
func HasNearbyKeyword(g models.Grid, row, col int, keywords []string, radius int) bool {
	return HasKeywordIn(g, row, col, keywords, Square(radius))
}

// HasKeywordIn is HasNearbyKeyword over an arbitrary window.
func HasKeywordIn(g models.Grid, row, col int, keywords []string, w Window) bool {
	for cell := range Scan(g, row, col, w) {
		if ContainsAny(cell.String(), keywords) {
			return true
		}
	}
	return false
}

// ContextScore counts keyword occurrences in ContextWindow around (row, col).
func ContextScore(g models.Grid, row, col int, keywords []string) float64 {
	return ContextScoreIn(g, row, col, keywords, ContextWindow)
}

// ContextScoreIn is ContextScore over an arbitrary window. Each keyword
// counts at most once per cell.
func ContextScoreIn(g models.Grid, row, col int, keywords []string, w Window) float64 {
	score := 0.0
	for cell := range Scan(g, row, col, w) {
		text := cell.String()
		for _, kw := range keywords {
			if strings.Contains(text, kw) {
				score++
			}
		}
	}
	return score
}

// ContainsAny reports whether s contains any of the keywords.
func ContainsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if kw != "" && strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

// FirstKeyword returns the first keyword contained in s.
func FirstKeyword(s string, keywords []string) (string, bool) {
	for _, kw := range keywords {
		if kw != "" && strings.Contains(s, kw) {
			return kw, true
		}
	}
	return "", false
}

// Manhattan returns |dr| + |dc|.
func Manhattan(dr, dc int) int {
	return abs(dr) + abs(dc)
}

func clamp(lo, hi, n int) (int, int) {
	if lo < 0 {
		lo = 0
	}
	if hi > n-1 {
		hi = n - 1
	}
	return lo, hi
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
