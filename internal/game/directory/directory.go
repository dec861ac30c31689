// Package directory filters the joinable-session directory.
package directory

import (
	"luckygates/internal/game/state"
	"luckygates/internal/protocol"
)

// AvailableGame is one joinable session, as shown in the lobby list.
type AvailableGame struct {
	GameID      string
	PlayerCount int
}

// Filter reduces a raw directory snapshot to the sessions this client can
// join: matching coin address, matching chain, and still in the pre-start
// lobby. The result replaces any previous list wholesale. Iteration order of
// the snapshot is not guaranteed, so neither is the output order.
func Filter(snapshot protocol.AvailableGameList, coinAddress, chainName string) []AvailableGame {
	games := make([]AvailableGame, 0, len(snapshot))
	for gameID, listing := range snapshot {
		if listing.GameCoinAddress != coinAddress ||
			listing.CoinChainName != chainName ||
			state.Stage(listing.CurrentStage) != state.StageLobby {
			continue
		}
		games = append(games, AvailableGame{
			GameID:      gameID,
			PlayerCount: len(listing.PlayerAddresses),
		})
	}
	return games
}
