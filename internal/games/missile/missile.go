package missile

import (
	"time"

	"github.com/joshpbradley/missile-command/internal/core"
)

// Owner identifies which side fired a missile.
type Owner int

const (
	OwnerPlayer Owner = iota
	OwnerEnemy
)

// String returns the owner name used in logs.
func (o Owner) String() string {
	if o == OwnerPlayer {
		return "player"
	}
	return "enemy"
}

// Missile is one pool slot. A slot is flying, exploding or inactive.
type Missile struct {
	Active      bool
	Owner       Owner
	Start       core.Vec
	Curr        core.Vec
	Prev        core.Vec // Position before the last move
	Dest        core.Vec
	Trail       map[core.Vec]struct{}
	Frame       int       // Explosion frame, 0 while flying
	FrameAt     time.Time // When the current explosion frame began
	CanFragment bool
}

// Flying reports whether the missile is travelling.
func (m *Missile) Flying() bool {
	return m.Active && m.Frame == 0
}

// Exploding reports whether the missile is playing its explosion.
func (m *Missile) Exploding() bool {
	return m.Active && m.Frame > 0
}

// Arrived reports whether the missile head is on its destination.
func (m *Missile) Arrived() bool {
	return m.Curr == m.Dest
}

// launch puts the slot in flight from start towards dest.
func (m *Missile) launch(start, dest core.Vec, canFragment bool) {
	if m.Trail == nil {
		m.Trail = make(map[core.Vec]struct{})
	} else {
		clear(m.Trail)
	}
	m.Active = true
	m.Start = start
	m.Curr = start
	m.Prev = start
	m.Dest = dest
	m.Frame = 0
	m.FrameAt = time.Time{}
	m.CanFragment = canFragment
	m.Trail[start] = struct{}{}
}

// Pool is a fixed set of missile slots belonging to one owner.
type Pool struct {
	owner Owner
	slots []Missile
}

// NewPool creates a pool with size inactive slots.
func NewPool(owner Owner, size int) *Pool {
	p := &Pool{
		owner: owner,
		slots: make([]Missile, size),
	}
	for i := range p.slots {
		p.slots[i].Owner = owner
	}
	return p
}

// Owner returns the side the pool belongs to.
func (p *Pool) Owner() Owner {
	return p.owner
}

// Len returns the number of slots.
func (p *Pool) Len() int {
	return len(p.slots)
}

// Get returns slot i.
func (p *Pool) Get(i int) *Missile {
	return &p.slots[i]
}

// Free returns the lowest-index inactive slot.
func (p *Pool) Free() (int, bool) {
	for i := range p.slots {
		if !p.slots[i].Active {
			return i, true
		}
	}
	return -1, false
}

// ActiveCount counts flying and exploding slots.
func (p *Pool) ActiveCount() int {
	n := 0
	for i := range p.slots {
		if p.slots[i].Active {
			n++
		}
	}
	return n
}

// Reset deactivates every slot.
func (p *Pool) Reset() {
	for i := range p.slots {
		m := &p.slots[i]
		m.Active = false
		m.Frame = 0
		m.CanFragment = false
		clear(m.Trail)
	}
}
