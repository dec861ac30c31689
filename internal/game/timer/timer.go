// Package timer derives the lobby countdown from stage timing fields. It is
// a pure projection; the caller owns the tick that drives recomputation and
// its cancellation.
package timer

import (
	"time"

	"luckygates/internal/game/state"
)

// TickInterval is the reference recomputation cadence.
const TickInterval = 500 * time.Millisecond

// Projection is the derived countdown. Never persisted, recomputed per tick.
type Projection struct {
	TimerValue       int // seconds remaining, >= 0
	RemainingPercent int // 0–100
}

// Project recomputes the countdown at `now`. It returns the new projection
// and whether the caller should keep ticking; once a stage stops being timed
// the value is forced to zero and the result is terminal for this stage.
// With no stage reported yet, prev is carried through unchanged.
func Project(gs *state.GameState, prev Projection, now time.Time, stageDuration int) (Projection, bool) {
	st, ok := gs.Stage()
	if !ok {
		return prev, true
	}

	proj := prev
	if st.Timed() {
		if gs.StageEndTime != nil {
			remaining := *gs.StageEndTime - now.Unix()
			if remaining < 0 {
				remaining = 0
			}
			proj.TimerValue = int(remaining)
		}
	} else {
		proj.TimerValue = 0
	}

	if stageDuration > 0 {
		proj.RemainingPercent = proj.TimerValue * 100 / stageDuration
	}
	return proj, st.Timed()
}
