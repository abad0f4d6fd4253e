package replay

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/younwookim/brawler/internal/application/system"
)

// ErrNoFrames is returned for a recording without any ticks
var ErrNoFrames = errors.New("replay has no frames")

// Replayer feeds recorded intents back one tick at a time
type Replayer struct {
	data  ReplayData
	frame int
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{
		data:  data,
		frame: 0,
	}
}

// LoadReplay loads replay data from a file
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var data ReplayData
	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}
	if len(data.Frames) == 0 {
		return nil, fmt.Errorf("failed to load replay %s: %w", filename, ErrNoFrames)
	}

	return &data, nil
}

// Next returns the intent for the current tick and advances
func (r *Replayer) Next() (system.Intent, bool) {
	if r.frame >= len(r.data.Frames) {
		return system.Intent{}, false
	}

	fi := r.data.Frames[r.frame]
	r.frame++
	return fi.Intent(), true
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// Seed returns the seed used for the replay
func (r *Replayer) Seed() int64 {
	return r.data.Seed
}

// Arena returns the arena the run was recorded in
func (r *Replayer) Arena() string {
	return r.data.Arena
}

// Reset resets the replayer to the beginning
func (r *Replayer) Reset() {
	r.frame = 0
}

// CreateTestReplayData creates replay data for testing, repeating one intent
func CreateTestReplayData(frames int, in system.Intent) ReplayData {
	data := ReplayData{
		Version:   Version,
		Seed:      12345,
		Arena:     "arena",
		StartTime: time.Now().Format(time.RFC3339),
		Frames:    make([]FrameInput, frames),
	}

	for i := 0; i < frames; i++ {
		data.Frames[i] = FrameFromIntent(i, in)
	}

	return data
}
