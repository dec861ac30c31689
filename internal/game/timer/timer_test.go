package timer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"luckygates/internal/game/state"
)

const stageDuration = 120

func timedState(stage state.Stage, endsIn int64, now time.Time) *state.GameState {
	gs := state.New()
	gs.GameID = "g1"
	gs.CurrentStage = &stage
	end := now.Unix() + endsIn
	gs.StageEndTime = &end
	return gs
}

func TestProjectCountdown(t *testing.T) {
	t.Parallel()

	now := time.Unix(1700000000, 0)

	tests := []struct {
		name        string
		endsIn      int64
		wantValue   int
		wantPercent int
	}{
		{"full duration", 120, 120, 100},
		{"half elapsed", 60, 60, 50},
		{"almost done", 1, 1, 0},
		{"deadline passed", -30, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			gs := timedState(state.StageLobby, tt.endsIn, now)
			proj, keep := Project(gs, Projection{}, now, stageDuration)
			assert.Equal(t, tt.wantValue, proj.TimerValue)
			assert.Equal(t, tt.wantPercent, proj.RemainingPercent)
			assert.True(t, keep, "lobby stage keeps ticking")
		})
	}
}

func TestProjectMonotonicNonIncreasing(t *testing.T) {
	t.Parallel()

	now := time.Unix(1700000000, 0)
	gs := timedState(state.StageLobby, 10, now)

	prev := Projection{TimerValue: stageDuration, RemainingPercent: 100}
	for i := 0; i < 25; i++ {
		tick := now.Add(time.Duration(i) * TickInterval)
		proj, _ := Project(gs, prev, tick, stageDuration)
		assert.LessOrEqual(t, proj.TimerValue, prev.TimerValue, "tick %d", i)
		assert.GreaterOrEqual(t, proj.TimerValue, 0, "tick %d", i)
		prev = proj
	}
	assert.Equal(t, 0, prev.TimerValue, "floors at zero past the deadline")
}

func TestProjectUntimedStageIsTerminal(t *testing.T) {
	t.Parallel()

	now := time.Unix(1700000000, 0)

	for _, stage := range []state.Stage{state.StageStarting, state.StageFirstPick, state.StageResolution} {
		gs := timedState(stage, 60, now)
		proj, keep := Project(gs, Projection{TimerValue: 45, RemainingPercent: 37}, now, stageDuration)
		assert.Equal(t, 0, proj.TimerValue, "stage %v", stage)
		assert.False(t, keep, "stage %v stops the tick", stage)
	}
}

func TestProjectNoStageCarriesPrev(t *testing.T) {
	t.Parallel()

	now := time.Unix(1700000000, 0)
	prev := Projection{TimerValue: 45, RemainingPercent: 37}

	proj, keep := Project(state.New(), prev, now, stageDuration)
	assert.Equal(t, prev, proj)
	assert.True(t, keep)
}

func TestProjectPreLobbyStageCounts(t *testing.T) {
	t.Parallel()

	now := time.Unix(1700000000, 0)
	gs := timedState(state.StageCreated, 90, now)

	proj, keep := Project(gs, Projection{}, now, stageDuration)
	assert.Equal(t, 90, proj.TimerValue)
	assert.Equal(t, 75, proj.RemainingPercent)
	assert.True(t, keep)
}

func TestProjectMissingEndTime(t *testing.T) {
	t.Parallel()

	now := time.Unix(1700000000, 0)
	stage := state.StageLobby
	gs := state.New()
	gs.GameID = "g1"
	gs.CurrentStage = &stage

	prev := Projection{TimerValue: 45, RemainingPercent: 37}
	proj, keep := Project(gs, prev, now, stageDuration)
	assert.Equal(t, 45, proj.TimerValue, "no deadline, value unchanged")
	assert.True(t, keep)
}
