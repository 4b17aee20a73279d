// Package grid carries the helpers day solutions reach for every year:
// points, direction tables, character grids and weighted-graph search.
package grid

import (
	"fmt"
	"strings"
)

// Point is a grid coordinate. Y first: rows index before columns.
type Point struct {
	Y, X int
}

// Add sums two points coordinate-wise.
func (p Point) Add(q Point) Point {
	return Point{Y: p.Y + q.Y, X: p.X + q.X}
}

// Direction tables, keyed by name. Deltas are (dy, dx).
var (
	Straight = map[string]Point{
		"down":  {1, 0},
		"up":    {-1, 0},
		"right": {0, 1},
		"left":  {0, -1},
	}

	Diagonal = map[string]Point{
		"down-left":  {1, -1},
		"down-right": {1, 1},
		"up-left":    {-1, -1},
		"up-right":   {-1, 1},
	}

	// Symbols maps the arrow characters many puzzles use onto directions.
	Symbols = map[rune]Point{
		'v': {1, 0},
		'^': {-1, 0},
		'>': {0, 1},
		'<': {0, -1},
	}
)

// Grid is a rectangular character grid parsed from puzzle input.
type Grid struct {
	cells [][]rune
}

// Parse builds a grid from input text. Parsing stops at the first empty
// line, so inputs with a trailing section parse cleanly. All rows must have
// equal length.
func Parse(input string) (*Grid, error) {
	g := &Grid{}
	for _, line := range strings.Split(input, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			break
		}
		g.cells = append(g.cells, []rune(line))
	}
	for _, row := range g.cells {
		if len(row) != len(g.cells[0]) {
			return nil, fmt.Errorf("grid: rows have unequal length")
		}
	}
	return g, nil
}

// Rows returns the row count.
func (g *Grid) Rows() int {
	return len(g.cells)
}

// Cols returns the column count.
func (g *Grid) Cols() int {
	if len(g.cells) == 0 {
		return 0
	}
	return len(g.cells[0])
}

// InBounds reports whether p lies inside the grid.
func (g *Grid) InBounds(p Point) bool {
	return p.Y >= 0 && p.Y < g.Rows() && p.X >= 0 && p.X < g.Cols()
}

// At returns the cell at p, with ok=false out of bounds.
func (g *Grid) At(p Point) (rune, bool) {
	if !g.InBounds(p) {
		return 0, false
	}
	return g.cells[p.Y][p.X], true
}

// Set overwrites the cell at p; out-of-bounds writes are ignored.
func (g *Grid) Set(p Point, r rune) {
	if g.InBounds(p) {
		g.cells[p.Y][p.X] = r
	}
}

// Each visits every cell in row-major order.
func (g *Grid) Each(visit func(p Point, r rune)) {
	for y, row := range g.cells {
		for x, r := range row {
			visit(Point{Y: y, X: x}, r)
		}
	}
}

// Find returns all points holding r.
func (g *Grid) Find(r rune) []Point {
	var points []Point
	g.Each(func(p Point, cell rune) {
		if cell == r {
			points = append(points, p)
		}
	})
	return points
}

// Neighbors returns the in-bounds neighbors of p for the requested
// direction sets.
func (g *Grid) Neighbors(p Point, straight, diagonal bool) []Point {
	var deltas []Point
	if straight {
		for _, d := range []string{"up", "down", "left", "right"} {
			deltas = append(deltas, Straight[d])
		}
	}
	if diagonal {
		for _, d := range []string{"up-left", "up-right", "down-left", "down-right"} {
			deltas = append(deltas, Diagonal[d])
		}
	}
	var neighbors []Point
	for _, d := range deltas {
		if q := p.Add(d); g.InBounds(q) {
			neighbors = append(neighbors, q)
		}
	}
	return neighbors
}

// Clone deep-copies the grid.
func (g *Grid) Clone() *Grid {
	clone := &Grid{cells: make([][]rune, len(g.cells))}
	for i, row := range g.cells {
		clone.cells[i] = append([]rune(nil), row...)
	}
	return clone
}

// String renders the grid line by line, handy for debugging a day.
func (g *Grid) String() string {
	lines := make([]string, len(g.cells))
	for i, row := range g.cells {
		lines[i] = string(row)
	}
	return strings.Join(lines, "\n")
}

// Lines splits puzzle input on newlines, dropping a single trailing empty
// line.
func Lines(input string) []string {
	lines := strings.Split(input, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return lines
}

// Flatten concatenates nested slices into one, preserving order.
func Flatten[T any](nested [][]T) []T {
	var flat []T
	for _, inner := range nested {
		flat = append(flat, inner...)
	}
	return flat
}
