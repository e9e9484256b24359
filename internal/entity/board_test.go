package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/mancala/internal/apperror"
)

func TestNewBoard(t *testing.T) {
	// When: a new board is created
	board := NewBoard()

	// Then: every pit and store is empty
	require.NotNil(t, board)
	assert.Equal(t, make([]int, NumPits), board.Pits())
	assert.Equal(t, 0, board.TotalStones())

	// Then: both stores exist before any player registers
	for _, player := range []int{PlayerOne, PlayerTwo} {
		store, err := board.Store(player)
		require.NoError(t, err)
		assert.NotNil(t, store)
	}
}

func TestBoard_StoneCount(t *testing.T) {
	t.Run("Pits 1 to 12 are addressable", func(t *testing.T) {
		// Given: a seeded board
		board := NewBoard()
		board.SetUpPits(DefaultStonesPerPit)

		// When / Then: every pit reports the seed
		for pit := 1; pit <= NumPits; pit++ {
			stones, err := board.StoneCount(pit)
			require.NoError(t, err)
			assert.Equal(t, DefaultStonesPerPit, stones)
		}
	})

	t.Run("Pits outside 1 to 12 are not found", func(t *testing.T) {
		// Given: a seeded board
		board := NewBoard()
		board.SetUpPits(DefaultStonesPerPit)

		for _, pit := range []int{-1, 0, 13, 100} {
			// When: an out of range pit is read or written
			_, readErr := board.StoneCount(pit)
			writeErr := board.SetStoneCount(pit, 1)

			// Then: ErrPitNotFound is returned
			require.ErrorIs(t, readErr, apperror.ErrPitNotFound)
			require.ErrorIs(t, writeErr, apperror.ErrPitNotFound)
		}
	})
}

func TestBoard_SetStoneCount(t *testing.T) {
	t.Run("Sets the count", func(t *testing.T) {
		board := NewBoard()

		require.NoError(t, board.SetStoneCount(7, 9))

		stones, err := board.StoneCount(7)
		require.NoError(t, err)
		assert.Equal(t, 9, stones)
	})

	t.Run("Rejects negative counts", func(t *testing.T) {
		board := NewBoard()

		err := board.SetStoneCount(7, -1)

		require.ErrorIs(t, err, ErrInvalidStoneCount)
		stones, _ := board.StoneCount(7)
		assert.Equal(t, 0, stones)
	})
}

func TestBoard_AddAndRemoveStones(t *testing.T) {
	// Given: a pit holding 3 stones
	board := NewBoard()
	require.NoError(t, board.SetStoneCount(4, 3))

	// When: stones are added and then the pit is emptied
	require.NoError(t, board.AddStones(4, 2))
	removed, err := board.RemoveStones(4)

	// Then: all five come out and the pit is empty
	require.NoError(t, err)
	assert.Equal(t, 5, removed)
	stones, _ := board.StoneCount(4)
	assert.Equal(t, 0, stones)

	_, err = board.RemoveStones(13)
	require.ErrorIs(t, err, apperror.ErrPitNotFound)
}

func TestBoard_Stores(t *testing.T) {
	t.Run("AddToStore and EmptyStores", func(t *testing.T) {
		// Given: a board with stones in both stores
		board := NewBoard()
		require.NoError(t, board.AddToStore(PlayerOne, 5))
		require.NoError(t, board.AddToStore(PlayerTwo, 7))

		one, err := board.StoreTotal(PlayerOne)
		require.NoError(t, err)
		two, err := board.StoreTotal(PlayerTwo)
		require.NoError(t, err)
		assert.Equal(t, 5, one)
		assert.Equal(t, 7, two)

		// When: the stores are emptied
		board.EmptyStores()

		// Then: both totals are zero
		one, _ = board.StoreTotal(PlayerOne)
		two, _ = board.StoreTotal(PlayerTwo)
		assert.Zero(t, one)
		assert.Zero(t, two)
	})

	t.Run("Unknown player", func(t *testing.T) {
		board := NewBoard()

		_, err := board.StoreTotal(3)
		require.ErrorIs(t, err, apperror.ErrPlayerNotFound)

		err = board.AddToStore(0, 1)
		require.ErrorIs(t, err, apperror.ErrPlayerNotFound)

		err = board.BindPlayer(NewPlayer("ada"), 3)
		require.ErrorIs(t, err, apperror.ErrPlayerNotFound)

		err = board.BindPlayer(nil, PlayerOne)
		require.ErrorIs(t, err, apperror.ErrPlayerNotFound)
	})

	t.Run("BindPlayer keeps the banked stones", func(t *testing.T) {
		// Given: three stones already in store two
		board := NewBoard()
		require.NoError(t, board.AddToStore(PlayerTwo, 3))
		player := NewPlayer("ada")

		// When: a player is bound to store two
		require.NoError(t, board.BindPlayer(player, PlayerTwo))

		// Then: the player reads the same store the board counts
		installed, err := board.Store(PlayerTwo)
		require.NoError(t, err)
		assert.Same(t, installed, player.Store())
		assert.Same(t, player, installed.Owner())
		assert.Equal(t, PlayerTwo, player.Number)
		assert.Equal(t, 3, player.Store().Total())

		// Then: only the board moves stones into it
		require.NoError(t, board.AddToStore(PlayerTwo, 2))
		assert.Equal(t, 5, player.Store().Total())
		assert.Equal(t, 5, board.TotalStones())
	})
}

func TestBoard_SideTotal(t *testing.T) {
	// Given: stones only on player two's side
	board := NewBoard()
	require.NoError(t, board.SetStoneCount(7, 2))
	require.NoError(t, board.SetStoneCount(12, 3))

	one, err := board.SideTotal(PlayerOne)
	require.NoError(t, err)
	two, err := board.SideTotal(PlayerTwo)
	require.NoError(t, err)

	assert.Equal(t, 0, one)
	assert.Equal(t, 5, two)
}

func TestBoard_TotalStones(t *testing.T) {
	board := NewBoard()
	board.SetUpPits(DefaultStonesPerPit)
	require.NoError(t, board.AddToStore(PlayerOne, 2))

	assert.Equal(t, NumPits*DefaultStonesPerPit+2, board.TotalStones())
}

func TestBoard_PitsIsACopy(t *testing.T) {
	// Given: a seeded board
	board := NewBoard()
	board.SetUpPits(DefaultStonesPerPit)

	// When: the returned slice is modified
	pits := board.Pits()
	pits[0] = 100

	// Then: the board is untouched
	stones, _ := board.StoneCount(1)
	assert.Equal(t, DefaultStonesPerPit, stones)
}

func TestSideOfAndOppositePit(t *testing.T) {
	tests := []struct {
		pit      int
		side     int
		opposite int
	}{
		{pit: 1, side: PlayerOne, opposite: 12},
		{pit: 3, side: PlayerOne, opposite: 10},
		{pit: 6, side: PlayerOne, opposite: 7},
		{pit: 7, side: PlayerTwo, opposite: 6},
		{pit: 12, side: PlayerTwo, opposite: 1},
	}

	for _, tt := range tests {
		side, err := SideOf(tt.pit)
		require.NoError(t, err)
		assert.Equal(t, tt.side, side, "side of pit %d", tt.pit)

		opposite, err := OppositePit(tt.pit)
		require.NoError(t, err)
		assert.Equal(t, tt.opposite, opposite, "opposite of pit %d", tt.pit)
	}

	_, err := SideOf(0)
	require.ErrorIs(t, err, apperror.ErrPitNotFound)

	_, err = OppositePit(13)
	require.ErrorIs(t, err, apperror.ErrPitNotFound)
}
