package mancala

import (
	"fmt"

	"github.com/rocketscienceinc/mancala/internal/entity"
)

// KalahRules sows once around the board and captures when the last stone
// lands in an empty pit on the mover's side.
type KalahRules struct{}

func (that *KalahRules) Name() string {
	return VariantKalah
}

func (that *KalahRules) DistributeStones(board *entity.Board, startPit, player int) (Landing, error) {
	stones, err := pickUp(board, startPit)
	if err != nil {
		return Landing{}, err
	}

	pos := pitToRing(startPit)
	for ; stones > 0; stones-- {
		pos = nextRing(pos, player)
		if err = drop(board, pos); err != nil {
			return Landing{}, fmt.Errorf("failed to sow stone: %w", err)
		}
	}

	return ringToLanding(pos), nil
}

// CaptureStones moves the landing stone and everything in the opposite pit
// into the player's store.
func (that *KalahRules) CaptureStones(board *entity.Board, landing Landing, player int) (int, error) {
	capture, err := landedInEmptyOwnPit(board, landing, player)
	if err != nil || !capture {
		return 0, err
	}

	opposite, err := entity.OppositePit(landing.Pit)
	if err != nil {
		return 0, err
	}

	captured, err := board.RemoveStones(opposite)
	if err != nil {
		return 0, err
	}

	own, err := board.RemoveStones(landing.Pit)
	if err != nil {
		return 0, err
	}

	captured += own
	if err = board.AddToStore(player, captured); err != nil {
		return 0, fmt.Errorf("failed to store captured stones: %w", err)
	}

	return captured, nil
}

func (that *KalahRules) ExtraTurn(landing Landing, player int) bool {
	return landing.InStoreOf(player)
}
