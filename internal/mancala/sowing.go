package mancala

import (
	"fmt"

	"github.com/rocketscienceinc/mancala/internal/apperror"
	"github.com/rocketscienceinc/mancala/internal/entity"
)

// Sowing walks a ring of fourteen positions counter-clockwise:
// pits 1-6, store one, pits 7-12, store two.
const (
	ringSize     = entity.NumPits + 2
	storeOneRing = entity.PitsPerSide
	storeTwoRing = ringSize - 1
)

func pitToRing(pit int) int {
	if pit <= entity.PitsPerSide {
		return pit - 1
	}

	return pit
}

func ringToLanding(pos int) Landing {
	switch {
	case pos == storeOneRing:
		return Landing{Store: entity.PlayerOne}
	case pos == storeTwoRing:
		return Landing{Store: entity.PlayerTwo}
	case pos < storeOneRing:
		return Landing{Pit: pos + 1}
	default:
		return Landing{Pit: pos}
	}
}

func storeRing(player int) int {
	if player == entity.PlayerTwo {
		return storeTwoRing
	}

	return storeOneRing
}

// nextRing advances one position, never stopping on the opponent's store.
func nextRing(pos, player int) int {
	pos = (pos + 1) % ringSize
	if pos == storeRing(entity.Opponent(player)) {
		pos = (pos + 1) % ringSize
	}

	return pos
}

func drop(board *entity.Board, pos int) error {
	landing := ringToLanding(pos)
	if landing.InPit() {
		return board.AddStones(landing.Pit, 1)
	}

	return board.AddToStore(landing.Store, 1)
}

// pickUp empties the start pit of a move, refusing empty pits.
func pickUp(board *entity.Board, startPit int) (int, error) {
	stones, err := board.RemoveStones(startPit)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", apperror.ErrInvalidMove, err)
	}

	if stones == 0 {
		return 0, fmt.Errorf("%w: %w: pit %d", apperror.ErrInvalidMove, apperror.ErrPitEmpty, startPit)
	}

	return stones, nil
}

// landedInEmptyOwnPit reports whether the last stone fell into a pit on the
// player's side that was empty before it arrived.
func landedInEmptyOwnPit(board *entity.Board, landing Landing, player int) (bool, error) {
	if !landing.InPit() {
		return false, nil
	}

	side, err := entity.SideOf(landing.Pit)
	if err != nil {
		return false, err
	}

	if side != player {
		return false, nil
	}

	stones, err := board.StoneCount(landing.Pit)
	if err != nil {
		return false, err
	}

	return stones == 1, nil
}
