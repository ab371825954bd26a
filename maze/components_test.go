package maze

import (
	"reflect"
	"testing"
)

// TestConnectedComponents_Walled checks that a grid with no passages has one
// single-cell component per cell, in row-major order.
func TestConnectedComponents_Walled(t *testing.T) {
	g, err := New(3, 2)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	comps := g.ConnectedComponents()
	if len(comps) != 6 {
		t.Fatalf("expected 6 components, got %d", len(comps))
	}
	for i, comp := range comps {
		x, y := g.Coordinate(i)
		if len(comp) != 1 || comp[0] != Pt(x, y) {
			t.Errorf("component %d = %v, want [%v]", i, comp, Pt(x, y))
		}
	}
}

// TestConnectedComponents_Split carves two separate corridors in a 3×2 grid:
//
//	(0,0)-(1,0)-(2,0)
//	(0,1)-(1,1) (2,1)
//
// Expected: {(0,0),(1,0),(2,0)}, {(0,1),(1,1)}, {(2,1)}.
func TestConnectedComponents_Split(t *testing.T) {
	g, _ := New(3, 2)
	for _, c := range []struct {
		x, y int
		d    Direction
	}{{0, 0, East}, {1, 0, East}, {0, 1, East}} {
		if err := g.Carve(c.x, c.y, c.d); err != nil {
			t.Fatalf("Carve: %v", err)
		}
	}
	got := g.ConnectedComponents()
	want := [][]Point{
		{Pt(0, 0), Pt(1, 0), Pt(2, 0)},
		{Pt(0, 1), Pt(1, 1)},
		{Pt(2, 1)},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("components = %v, want %v", got, want)
	}
}

// TestConnectedComponents_Single checks the L-shaped tree yields one component
// in BFS order from (0,0), following Directions order.
func TestConnectedComponents_Single(t *testing.T) {
	g := lShape(t)
	got := g.ConnectedComponents()
	want := [][]Point{{Pt(0, 0), Pt(0, 1), Pt(1, 0), Pt(1, 1)}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("components = %v, want %v", got, want)
	}
}

func TestEdges(t *testing.T) {
	g := lShape(t)
	got := g.Edges()
	want := []Edge{
		{A: Pt(0, 0), B: Pt(1, 0)},
		{A: Pt(0, 0), B: Pt(0, 1)},
		{A: Pt(1, 0), B: Pt(1, 1)},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("edges = %v, want %v", got, want)
	}
	for _, e := range got {
		if !e.A.before(e.B) {
			t.Errorf("edge %v not in row-major order", e)
		}
	}
}
