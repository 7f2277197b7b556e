package core

// EventKind identifies something notable that happened during a tick.
type EventKind int

const (
	EventLaunch         EventKind = iota // friendly missile fired; Value = base index
	EventSpawn                           // hostile missile entered from the top
	EventFragment                        // hostile missile split at the midpoint
	EventImpact                          // missile reached its destination and exploded
	EventInterception                    // hostile missile destroyed in flight; Value = points
	EventAssetDestroyed                  // base or city destroyed; Value = asset index
	EventRoundEnding                     // round is winding down
	EventRoundComplete                   // round cleared; Value = bonus points
	EventRoundStart                      // new round started; Value = round number
	EventGameOver                        // all cities lost; Value = final score
)

// String returns a short lowercase name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventLaunch:
		return "launch"
	case EventSpawn:
		return "spawn"
	case EventFragment:
		return "fragment"
	case EventImpact:
		return "impact"
	case EventInterception:
		return "interception"
	case EventAssetDestroyed:
		return "asset_destroyed"
	case EventRoundEnding:
		return "round_ending"
	case EventRoundComplete:
		return "round_complete"
	case EventRoundStart:
		return "round_start"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Event is a single simulation event reported to the platform.
type Event struct {
	Kind  EventKind
	Pos   Vec
	Value int
}
