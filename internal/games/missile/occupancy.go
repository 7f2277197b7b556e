package missile

import "github.com/joshpbradley/missile-command/internal/core"

// OccupantKind describes what part of a missile fills a cell.
type OccupantKind uint8

const (
	OccupantHead   OccupantKind = iota // Flying missile head
	OccupantTrail                      // Flying missile trail
	OccupantBlast                      // Explosion frame cell
	OccupantMarker                     // Friendly target marker
)

// Occupant is one entry in an occupancy cell.
type Occupant struct {
	Owner Owner
	Slot  int
	Kind  OccupantKind
}

// Occupancy is a dense per-cell index of what the missiles currently cover.
// It is rebuilt every tick; cell slices are reused between rebuilds.
type Occupancy struct {
	width, height int
	cells         [][]Occupant
}

// NewOccupancy creates an empty map covering a width x height viewport.
func NewOccupancy(width, height int) *Occupancy {
	return &Occupancy{
		width:  width,
		height: height,
		cells:  make([][]Occupant, width*height),
	}
}

// Reset empties every cell.
func (o *Occupancy) Reset() {
	for i := range o.cells {
		o.cells[i] = o.cells[i][:0]
	}
}

func (o *Occupancy) index(p core.Vec) (int, bool) {
	if p.X < 0 || p.X >= o.width || p.Y < 0 || p.Y >= o.height {
		return 0, false
	}
	return p.Y*o.width + p.X, true
}

// Add records occ at p. Cells outside the viewport are ignored.
func (o *Occupancy) Add(p core.Vec, occ Occupant) {
	if i, ok := o.index(p); ok {
		o.cells[i] = append(o.cells[i], occ)
	}
}

// At returns the occupants of p. The slice is only valid until the next Reset.
func (o *Occupancy) At(p core.Vec) []Occupant {
	if i, ok := o.index(p); ok {
		return o.cells[i]
	}
	return nil
}

// AddPool records every active missile of p.
func (o *Occupancy) AddPool(p *Pool) {
	for i := range p.slots {
		m := &p.slots[i]
		if !m.Active {
			continue
		}
		if m.Exploding() {
			for _, c := range Blast(m.Curr, m.Frame) {
				o.Add(c.Pos, Occupant{Owner: p.owner, Slot: i, Kind: OccupantBlast})
			}
			continue
		}
		for cell := range m.Trail {
			if cell != m.Curr {
				o.Add(cell, Occupant{Owner: p.owner, Slot: i, Kind: OccupantTrail})
			}
		}
		o.Add(m.Curr, Occupant{Owner: p.owner, Slot: i, Kind: OccupantHead})
		if p.owner == OwnerPlayer {
			o.Add(m.Dest, Occupant{Owner: p.owner, Slot: i, Kind: OccupantMarker})
		}
	}
}

// strikes reports whether any occupant destroys a hostile missile whose head
// shares the cell. Hostile heads, hostile trails and target markers are harmless.
func strikes(occupants []Occupant) bool {
	for _, occ := range occupants {
		if occ.Kind == OccupantMarker {
			continue
		}
		if occ.Owner == OwnerEnemy && (occ.Kind == OccupantHead || occ.Kind == OccupantTrail) {
			continue
		}
		return true
	}
	return false
}
