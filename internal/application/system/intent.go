package system

// Intent is one tick of player input, already reduced to actions.
// Attack, Cast and Jump are edge-triggered: true only on the press tick.
type Intent struct {
	MoveLeft  bool
	MoveRight bool
	Jump      bool
	Attack    bool
	Cast      bool
}

// Direction returns -1, 0 or +1. Opposite keys cancel out.
func (in Intent) Direction() int {
	switch {
	case in.MoveLeft && !in.MoveRight:
		return -1
	case in.MoveRight && !in.MoveLeft:
		return 1
	default:
		return 0
	}
}

// Merge folds a newer frame of input into a pending intent.
// Held keys take the newer state; presses stay set until consumed.
func (in Intent) Merge(next Intent) Intent {
	return Intent{
		MoveLeft:  next.MoveLeft,
		MoveRight: next.MoveRight,
		Jump:      in.Jump || next.Jump,
		Attack:    in.Attack || next.Attack,
		Cast:      in.Cast || next.Cast,
	}
}

// Held drops the edge-triggered presses, keeping only held keys
func (in Intent) Held() Intent {
	return Intent{MoveLeft: in.MoveLeft, MoveRight: in.MoveRight}
}
