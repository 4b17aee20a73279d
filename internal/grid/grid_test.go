package grid

import "testing"

const sample = `ab>
c^d
efg
`

func TestParseAndAccess(t *testing.T) {
	g, err := Parse(sample)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if g.Rows() != 3 || g.Cols() != 3 {
		t.Fatalf("size = %dx%d, want 3x3", g.Rows(), g.Cols())
	}
	if r, ok := g.At(Point{Y: 0, X: 2}); !ok || r != '>' {
		t.Fatalf("At(0,2) = %q, %v", r, ok)
	}
	if _, ok := g.At(Point{Y: 3, X: 0}); ok {
		t.Fatalf("out-of-bounds read succeeded")
	}
}

func TestParseStopsAtEmptyLine(t *testing.T) {
	g, err := Parse("ab\ncd\n\nignored trailing section\n")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if g.Rows() != 2 {
		t.Fatalf("rows = %d, want 2", g.Rows())
	}
}

func TestParseRejectsRaggedRows(t *testing.T) {
	if _, err := Parse("ab\ncde\n"); err == nil {
		t.Fatalf("expected error for unequal rows")
	}
}

func TestNeighbors(t *testing.T) {
	g, err := Parse(sample)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	corner := g.Neighbors(Point{Y: 0, X: 0}, true, false)
	if len(corner) != 2 {
		t.Fatalf("corner straight neighbors = %d, want 2", len(corner))
	}
	center := g.Neighbors(Point{Y: 1, X: 1}, true, true)
	if len(center) != 8 {
		t.Fatalf("center all neighbors = %d, want 8", len(center))
	}
}

func TestFindAndSymbols(t *testing.T) {
	g, err := Parse(sample)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	arrows := g.Find('^')
	if len(arrows) != 1 || arrows[0] != (Point{Y: 1, X: 1}) {
		t.Fatalf("find ^ = %v", arrows)
	}
	next := arrows[0].Add(Symbols['^'])
	if next != (Point{Y: 0, X: 1}) {
		t.Fatalf("step up = %v", next)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	g, err := Parse(sample)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	clone := g.Clone()
	clone.Set(Point{Y: 0, X: 0}, '#')
	if r, _ := g.At(Point{Y: 0, X: 0}); r != 'a' {
		t.Fatalf("clone mutation leaked into original")
	}
}

func TestLines(t *testing.T) {
	lines := Lines("a\nb\n")
	if len(lines) != 2 || lines[0] != "a" || lines[1] != "b" {
		t.Fatalf("lines = %v", lines)
	}
}

func TestFlatten(t *testing.T) {
	flat := Flatten([][]int{{1, 2}, {}, {3}})
	if len(flat) != 3 || flat[0] != 1 || flat[2] != 3 {
		t.Fatalf("flatten = %v", flat)
	}
}

func TestShortestPathsSingle(t *testing.T) {
	g := NewGraph[string]()
	g.AddEdge("a", "b", 1)
	g.AddEdge("b", "c", 2)
	g.AddEdge("a", "c", 10)
	paths, cost, ok := g.ShortestPaths("a", "c", false)
	if !ok {
		t.Fatalf("no path found")
	}
	if cost != 3 {
		t.Fatalf("cost = %d, want 3", cost)
	}
	if len(paths) != 1 || len(paths[0]) != 3 {
		t.Fatalf("paths = %v", paths)
	}
}

func TestShortestPathsAll(t *testing.T) {
	// Two equal-cost routes a->d.
	g := NewGraph[string]()
	g.AddEdge("a", "b", 1)
	g.AddEdge("a", "c", 1)
	g.AddEdge("b", "d", 1)
	g.AddEdge("c", "d", 1)
	paths, cost, ok := g.ShortestPaths("a", "d", true)
	if !ok || cost != 2 {
		t.Fatalf("cost = %d ok=%v, want 2", cost, ok)
	}
	if len(paths) != 2 {
		t.Fatalf("paths = %v, want both shortest routes", paths)
	}
}

func TestShortestPathsUnreachable(t *testing.T) {
	g := NewGraph[int]()
	g.AddEdge(1, 2, 5)
	if _, _, ok := g.ShortestPaths(1, 99, false); ok {
		t.Fatalf("expected unreachable destination")
	}
}
