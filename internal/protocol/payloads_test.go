package protocol

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGameStatePatchPresence(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		raw     string
		present []string
		absent  []string
	}{
		{
			name:    "only sent keys are present",
			raw:     `{"gameId":"g1","currentStage":2}`,
			present: []string{FieldGameID, FieldCurrentStage},
			absent:  []string{FieldPlayers, FieldStageEndTime, FieldGameEndReason},
		},
		{
			name:    "explicit null is still present",
			raw:     `{"stageEndTime":null,"currentChoiceMakingPlayer":null}`,
			present: []string{FieldStageEndTime, FieldCurrentChoiceMakingPlayer},
			absent:  []string{FieldGameID},
		},
		{
			name:    "unknown keys are tolerated",
			raw:     `{"gameId":"g1","somethingNew":true}`,
			present: []string{FieldGameID},
			absent:  []string{FieldCurrentStage},
		},
		{
			name:   "empty patch",
			raw:    `{}`,
			absent: []string{FieldGameID, FieldCurrentStage, FieldPlayers},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var p GameStatePatch
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &p))
			for _, f := range tt.present {
				assert.True(t, p.Has(f), "expected %s present", f)
			}
			for _, f := range tt.absent {
				assert.False(t, p.Has(f), "expected %s absent", f)
			}
		})
	}
}

func TestGameStatePatchValues(t *testing.T) {
	t.Parallel()

	raw := `{
		"gameId": "g7",
		"minPlayers": 2,
		"currentStage": 3,
		"stageEndTime": null,
		"players": [
			{"playerAddress": "0xAAA", "selectedDoor": 1, "totalPoints": 3},
			{"playerAddress": "0xBBB", "hasMadeChoice": true, "doorsOpenedByGame": [2]}
		],
		"currentChoiceMakingPlayer": 1
	}`

	var p GameStatePatch
	require.NoError(t, json.Unmarshal([]byte(raw), &p))

	require.NotNil(t, p.GameID)
	assert.Equal(t, "g7", *p.GameID)
	require.NotNil(t, p.MinPlayers)
	assert.Equal(t, 2, *p.MinPlayers)
	require.NotNil(t, p.CurrentStage)
	assert.Equal(t, 3, *p.CurrentStage)

	// Present but null: the pointer stays nil.
	assert.True(t, p.Has(FieldStageEndTime))
	assert.Nil(t, p.StageEndTime)

	require.Len(t, p.Players, 2)
	require.NotNil(t, p.Players[0].SelectedDoor)
	assert.Equal(t, 1, *p.Players[0].SelectedDoor)
	assert.True(t, p.Players[1].HasMadeChoice)
	assert.Equal(t, []int{2}, p.Players[1].DoorsOpenedByGame)

	require.NotNil(t, p.CurrentChoiceMakingPlayer)
	assert.Equal(t, 1, *p.CurrentChoiceMakingPlayer)
}

func TestGameStatePatchMarkPresent(t *testing.T) {
	t.Parallel()

	var p GameStatePatch
	assert.False(t, p.Has(FieldGameID))

	p.MarkPresent(FieldGameID, FieldCurrentStage)
	assert.True(t, p.Has(FieldGameID))
	assert.True(t, p.Has(FieldCurrentStage))
	assert.False(t, p.Has(FieldPlayers))
}

func TestAvailableGameListDecode(t *testing.T) {
	t.Parallel()

	raw := `{
		"g1": {"gameCoinAddress":"0xC","coinChainName":"BSC","currentStage":0,"gameCreator":"0xA","playerAddresses":{"0":"0xA"}},
		"g2": {"gameCoinAddress":"0xC","coinChainName":"BSC","currentStage":2,"gameCreator":"0xB","playerAddresses":{}}
	}`

	var list AvailableGameList
	require.NoError(t, json.Unmarshal([]byte(raw), &list))
	require.Len(t, list, 2)
	assert.Equal(t, 0, list["g1"].CurrentStage)
	assert.Len(t, list["g1"].PlayerAddresses, 1)
	assert.Equal(t, 2, list["g2"].CurrentStage)
}
