package replay

import "github.com/younwookim/brawler/internal/application/system"

// Version is written into every recording
const Version = "1.0"

// FrameInput records the intent of a single tick
type FrameInput struct {
	F int  `json:"f"`           // Tick number
	L bool `json:"l,omitempty"` // MoveLeft
	R bool `json:"r,omitempty"` // MoveRight
	J bool `json:"j,omitempty"` // Jump
	A bool `json:"a,omitempty"` // Attack
	C bool `json:"c,omitempty"` // Cast
}

// FrameFromIntent packs an intent for tick f
func FrameFromIntent(f int, in system.Intent) FrameInput {
	return FrameInput{
		F: f,
		L: in.MoveLeft,
		R: in.MoveRight,
		J: in.Jump,
		A: in.Attack,
		C: in.Cast,
	}
}

// Intent unpacks the recorded intent
func (fi FrameInput) Intent() system.Intent {
	return system.Intent{
		MoveLeft:  fi.L,
		MoveRight: fi.R,
		Jump:      fi.J,
		Attack:    fi.A,
		Cast:      fi.C,
	}
}

// ReplayData contains all data needed to replay a run
type ReplayData struct {
	Version   string       `json:"version"`
	Seed      int64        `json:"seed"`
	Arena     string       `json:"arena"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}
