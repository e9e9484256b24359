package mancala

import (
	"fmt"

	"github.com/rocketscienceinc/mancala/internal/entity"
)

// maxRelays bounds relay sowing, which can cycle on some positions.
// When the bound is hit the turn ends where the last lap stopped.
const maxRelays = 200

// AyoRules sows in relays: when the last stone lands in an occupied pit the
// player lifts that pit and keeps going. The pit the move started from is
// skipped on every lap.
type AyoRules struct{}

func (that *AyoRules) Name() string {
	return VariantAyo
}

func (that *AyoRules) DistributeStones(board *entity.Board, startPit, player int) (Landing, error) {
	stones, err := pickUp(board, startPit)
	if err != nil {
		return Landing{}, err
	}

	origin := pitToRing(startPit)
	pos := origin

	for relay := 0; ; relay++ {
		for ; stones > 0; stones-- {
			pos = nextRing(pos, player)
			if pos == origin {
				pos = nextRing(pos, player)
			}

			if err = drop(board, pos); err != nil {
				return Landing{}, fmt.Errorf("failed to sow stone: %w", err)
			}
		}

		landing := ringToLanding(pos)
		if !landing.InPit() || relay >= maxRelays {
			return landing, nil
		}

		count, err := board.StoneCount(landing.Pit)
		if err != nil {
			return Landing{}, err
		}

		if count == 1 {
			return landing, nil
		}

		if stones, err = board.RemoveStones(landing.Pit); err != nil {
			return Landing{}, err
		}
	}
}

// CaptureStones takes the stones facing an empty own pit the turn ended in.
// The capturing stone stays where it landed.
func (that *AyoRules) CaptureStones(board *entity.Board, landing Landing, player int) (int, error) {
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

	if err = board.AddToStore(player, captured); err != nil {
		return 0, fmt.Errorf("failed to store captured stones: %w", err)
	}

	return captured, nil
}

func (that *AyoRules) ExtraTurn(landing Landing, player int) bool {
	return landing.InStoreOf(player)
}
