package learning

import "fmt"

// State is the lifecycle position of a Controller.
type State int

const (
	Idle State = iota
	Running
	Iterating
	Completed
	Failed
	Cancelled
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Iterating:
		return "iterating"
	case Completed:
		return "completed"
	case Failed:
		return "failed"
	case Cancelled:
		return "cancelled"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Active reports whether a run is in progress.
func (s State) Active() bool {
	return s == Running || s == Iterating
}

// Terminal reports whether s ends a run.
func (s State) Terminal() bool {
	return s == Completed || s == Failed || s == Cancelled
}
