package missile

// Snapshot is a flat copy of the simulation state.
// Uses primitive types only so runs can be compared tick for tick.
type Snapshot struct {
	Tick             uint64
	Phase            int
	Score            int
	Round            int
	EnemiesFired     int
	EnemiesDestroyed int

	// Each base is 2 ints: Alive, Ammo
	BaseData []int
	// Each city is 1 int: Alive
	CityData []int

	// Each missile is 10 ints: Active, CurrX, CurrY, DestX, DestY,
	// PrevX, PrevY, Frame, CanFragment, TrailLen
	PlayerData []int
	EnemyData  []int
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	baseData := make([]int, 0, len(g.assets.Bases)*2)
	for _, b := range g.assets.Bases {
		baseData = append(baseData, boolInt(b.Alive), b.Ammo)
	}
	cityData := make([]int, 0, len(g.assets.Cities))
	for _, c := range g.assets.Cities {
		cityData = append(cityData, boolInt(c.Alive))
	}

	return Snapshot{
		Tick:             g.tick,
		Phase:            int(g.phase),
		Score:            g.counters.Score,
		Round:            g.counters.Round,
		EnemiesFired:     g.counters.EnemiesFired,
		EnemiesDestroyed: g.counters.EnemiesDestroyed,
		BaseData:         baseData,
		CityData:         cityData,
		PlayerData:       flattenPool(g.player),
		EnemyData:        flattenPool(g.enemy),
	}
}

func flattenPool(p *Pool) []int {
	data := make([]int, 0, len(p.slots)*10)
	for i := range p.slots {
		m := &p.slots[i]
		data = append(data,
			boolInt(m.Active),
			m.Curr.X, m.Curr.Y,
			m.Dest.X, m.Dest.Y,
			m.Prev.X, m.Prev.Y,
			m.Frame,
			boolInt(m.CanFragment),
			len(m.Trail),
		)
	}
	return data
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Phase)            //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)            //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Round)            //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.EnemiesFired)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.EnemiesDestroyed) //#nosec G115 -- hash computation

	for _, data := range [][]int{snap.BaseData, snap.CityData, snap.PlayerData, snap.EnemyData} {
		for _, v := range data {
			h = h*31 + uint64(v) //#nosec G115 -- hash computation
		}
	}
	return h
}
