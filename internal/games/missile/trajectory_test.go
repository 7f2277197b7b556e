package missile

import (
	"testing"

	"github.com/joshpbradley/missile-command/internal/core"
)

func flight(owner Owner, start, dest core.Vec) *Missile {
	m := &Missile{Owner: owner}
	m.launch(start, dest, owner == OwnerEnemy)
	return m
}

func TestAdvanceConverges(t *testing.T) {
	tests := []struct {
		name        string
		owner       Owner
		start, dest core.Vec
	}{
		{"hostile straight down", OwnerEnemy, core.V(40, 1), core.V(40, 38)},
		{"hostile steep right", OwnerEnemy, core.V(10, 1), core.V(27, 38)},
		{"hostile steep left", OwnerEnemy, core.V(90, 1), core.V(61, 38)},
		{"hostile shallow right", OwnerEnemy, core.V(8, 1), core.V(93, 38)},
		{"hostile shallow left", OwnerEnemy, core.V(97, 1), core.V(5, 38)},
		{"hostile exact diagonal", OwnerEnemy, core.V(20, 1), core.V(57, 38)},
		{"fragment from midpoint", OwnerEnemy, core.V(50, 22), core.V(17, 38)},
		{"friendly straight up", OwnerPlayer, core.V(49, 37), core.V(49, 3)},
		{"friendly steep", OwnerPlayer, core.V(5, 37), core.V(20, 4)},
		{"friendly shallow", OwnerPlayer, core.V(93, 37), core.V(4, 30)},
		{"friendly level", OwnerPlayer, core.V(5, 20), core.V(60, 20)},
		{"single cell", OwnerPlayer, core.V(49, 37), core.V(50, 36)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := flight(tt.owner, tt.start, tt.dest)
			want := tt.start.Chebyshev(tt.dest)

			steps := 0
			for m.Curr != m.Dest && steps <= want+1 {
				m.Advance()
				steps++
			}
			if m.Curr != tt.dest {
				t.Fatalf("missile stopped at %v after %d steps, expected %v", m.Curr, steps, tt.dest)
			}
			if steps != want {
				t.Errorf("took %d steps, expected Chebyshev distance %d", steps, want)
			}
		})
	}
}

func TestAdvanceStaircase(t *testing.T) {
	tests := []struct {
		name        string
		owner       Owner
		start, dest core.Vec
		path        []core.Vec
	}{
		{
			name:  "shallow descent",
			owner: OwnerEnemy,
			start: core.V(10, 1),
			dest:  core.V(13, 2),
			path:  []core.Vec{{X: 11, Y: 1}, {X: 12, Y: 2}, {X: 13, Y: 2}},
		},
		{
			name:  "steep climb",
			owner: OwnerPlayer,
			start: core.V(50, 37),
			dest:  core.V(52, 30),
			path: []core.Vec{
				{X: 50, Y: 36}, {X: 51, Y: 35}, {X: 51, Y: 34}, {X: 51, Y: 33},
				{X: 51, Y: 32}, {X: 52, Y: 31}, {X: 52, Y: 30},
			},
		},
		{
			name:  "shallow climb left",
			owner: OwnerPlayer,
			start: core.V(20, 10),
			dest:  core.V(15, 8),
			path:  []core.Vec{{X: 19, Y: 10}, {X: 18, Y: 9}, {X: 17, Y: 9}, {X: 16, Y: 8}, {X: 15, Y: 8}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := flight(tt.owner, tt.start, tt.dest)
			for i, want := range tt.path {
				m.Advance()
				if m.Curr != want {
					t.Fatalf("step %d: at %v, expected %v", i+1, m.Curr, want)
				}
			}
		})
	}
}

func TestAdvanceTracksPrevAndTrail(t *testing.T) {
	start, dest := core.V(30, 1), core.V(36, 20)
	m := flight(OwnerEnemy, start, dest)

	if _, ok := m.Trail[start]; !ok {
		t.Fatal("trail should contain the launch cell")
	}

	visited := []core.Vec{start}
	for m.Curr != dest {
		before := m.Curr
		m.Advance()
		if m.Prev != before {
			t.Fatalf("Prev = %v, expected %v", m.Prev, before)
		}
		visited = append(visited, m.Curr)
	}

	if len(m.Trail) != len(visited) {
		t.Errorf("trail has %d cells, expected %d", len(m.Trail), len(visited))
	}
	for _, cell := range visited {
		if _, ok := m.Trail[cell]; !ok {
			t.Errorf("trail missing %v", cell)
		}
	}

	// Arrived missiles stay put
	prev := m.Prev
	m.Advance()
	if m.Curr != dest || m.Prev != prev {
		t.Errorf("Advance after arrival moved the missile to %v (prev %v)", m.Curr, m.Prev)
	}
}

func TestAdvanceNeverSkipsOrOvershoots(t *testing.T) {
	for x := 1; x < 98; x += 7 {
		m := flight(OwnerEnemy, core.V(50, 1), core.V(x, 38))
		for m.Curr != m.Dest {
			before := m.Curr
			m.Advance()
			if before.Chebyshev(m.Curr) != 1 {
				t.Fatalf("dest x=%d: jump from %v to %v", x, before, m.Curr)
			}
			if m.Curr.Y > m.Dest.Y {
				t.Fatalf("dest x=%d: overshot to %v", x, m.Curr)
			}
		}
	}
}
