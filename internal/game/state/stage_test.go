package state

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"luckygates/internal/protocol"
)

func playerWith(addr string) protocol.Player {
	return protocol.Player{PlayerAddress: addr}
}

func TestStageTable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		stage  Stage
		screen Screen
		input  InputKind
		timed  bool
	}{
		{"created", StageCreated, ScreenLobby, InputNone, true},
		{"lobby", StageLobby, ScreenLobby, InputNone, true},
		{"starting", StageStarting, ScreenLobby, InputNone, false},
		{"first pick", StageFirstPick, ScreenGame, InputDoor, false},
		{"switch choice", StageSwitchChoice, ScreenGame, InputSwitch, false},
		{"final pick", StageFinalPick, ScreenGame, InputDoor, false},
		{"resolution", StageResolution, ScreenGame, InputNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.True(t, tt.stage.Valid())
			assert.Equal(t, tt.screen, tt.stage.Screen())
			assert.Equal(t, tt.input, tt.stage.Input())
			assert.Equal(t, tt.timed, tt.stage.Timed())
		})
	}
}

func TestStageInvalid(t *testing.T) {
	t.Parallel()

	for _, st := range []Stage{Stage(-2), Stage(6), Stage(100)} {
		assert.False(t, st.Valid(), "stage %d", st)
	}
}

func TestChoiceMaker(t *testing.T) {
	t.Parallel()

	gs := New()
	gs.Players = append(gs.Players, playerWith("0xA"), playerWith("0xB"))

	_, ok := gs.ChoiceMaker()
	assert.False(t, ok, "no index set")

	for i, want := range []string{"0xA", "0xB"} {
		idx := i
		gs.CurrentChoiceMakingPlayer = &idx
		p, ok := gs.ChoiceMaker()
		assert.True(t, ok)
		assert.Equal(t, want, p.PlayerAddress)
	}

	for _, bad := range []int{-1, 2, 10} {
		idx := bad
		gs.CurrentChoiceMakingPlayer = &idx
		_, ok := gs.ChoiceMaker()
		assert.False(t, ok, "index %d", bad)
	}
}

func TestReset(t *testing.T) {
	t.Parallel()

	gs := New()
	gs.GameID = "g1"
	gs.Players = append(gs.Players, playerWith("0xA"))
	stage := StageFirstPick
	gs.CurrentStage = &stage

	assert.True(t, gs.InGame())

	gs.Reset()
	assert.False(t, gs.InGame())
	assert.Empty(t, gs.Players)
	assert.NotNil(t, gs.Players)
	assert.Nil(t, gs.CurrentStage)
}
