package entity

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/mancala/internal/apperror"
)

const (
	NumPits     = 12
	PitsPerSide = 6

	PlayerOne = 1
	PlayerTwo = 2

	DefaultStonesPerPit = 4
)

var ErrInvalidStoneCount = errors.New("invalid stone count")

// Board holds the twelve pits and the two stores of a game.
// Pits 1-6 belong to player one, pits 7-12 to player two.
type Board struct {
	pits   [NumPits]int
	stores [2]*Store
}

func NewBoard() *Board {
	return &Board{
		stores: [2]*Store{newStore(), newStore()},
	}
}

func (that *Board) StoneCount(pit int) (int, error) {
	if err := ValidatePit(pit); err != nil {
		return 0, err
	}

	return that.pits[pit-1], nil
}

func (that *Board) SetStoneCount(pit, stones int) error {
	if err := ValidatePit(pit); err != nil {
		return err
	}

	if stones < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidStoneCount, stones)
	}

	that.pits[pit-1] = stones

	return nil
}

// AddStones drops n stones into the pit.
func (that *Board) AddStones(pit, stones int) error {
	if err := ValidatePit(pit); err != nil {
		return err
	}

	if stones < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidStoneCount, stones)
	}

	that.pits[pit-1] += stones

	return nil
}

// RemoveStones empties the pit and returns how many stones it held.
func (that *Board) RemoveStones(pit int) (int, error) {
	if err := ValidatePit(pit); err != nil {
		return 0, err
	}

	stones := that.pits[pit-1]
	that.pits[pit-1] = 0

	return stones, nil
}

// SetUpPits puts the given number of stones in every pit.
func (that *Board) SetUpPits(stonesPerPit int) {
	for i := range that.pits {
		that.pits[i] = stonesPerPit
	}
}

func (that *Board) EmptyStores() {
	for _, store := range that.stores {
		store.empty()
	}
}

// BindPlayer hands the store of the given number to player. The store keeps
// whatever it already holds.
func (that *Board) BindPlayer(player *Player, number int) error {
	if err := ValidatePlayer(number); err != nil {
		return err
	}

	if player == nil {
		return fmt.Errorf("%w: player %d is missing", apperror.ErrPlayerNotFound, number)
	}

	store := that.stores[number-1]
	if previous := store.owner; previous != nil && previous != player && previous.store == store {
		previous.store = nil
	}

	store.owner = player
	player.store = store
	player.Number = number

	return nil
}

func (that *Board) Store(player int) (*Store, error) {
	if err := ValidatePlayer(player); err != nil {
		return nil, err
	}

	return that.stores[player-1], nil
}

func (that *Board) StoreTotal(player int) (int, error) {
	store, err := that.Store(player)
	if err != nil {
		return 0, err
	}

	return store.Total(), nil
}

func (that *Board) AddToStore(player, stones int) error {
	store, err := that.Store(player)
	if err != nil {
		return err
	}

	if stones < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidStoneCount, stones)
	}

	store.addStones(stones)

	return nil
}

// SideTotal sums the stones in the six pits of the given player.
func (that *Board) SideTotal(player int) (int, error) {
	if err := ValidatePlayer(player); err != nil {
		return 0, err
	}

	total := 0
	first := FirstPit(player)
	for pit := first; pit < first+PitsPerSide; pit++ {
		total += that.pits[pit-1]
	}

	return total, nil
}

// TotalStones counts every stone on the board, stores included.
func (that *Board) TotalStones() int {
	total := 0
	for _, stones := range that.pits {
		total += stones
	}

	for _, store := range that.stores {
		total += store.Total()
	}

	return total
}

// Pits returns a copy of the pit counts, index 0 being pit 1.
func (that *Board) Pits() []int {
	pits := make([]int, NumPits)
	copy(pits, that.pits[:])

	return pits
}

func ValidatePit(pit int) error {
	if pit < 1 || pit > NumPits {
		return fmt.Errorf("%w: pit %d", apperror.ErrPitNotFound, pit)
	}

	return nil
}

func ValidatePlayer(player int) error {
	if player != PlayerOne && player != PlayerTwo {
		return fmt.Errorf("%w: player %d", apperror.ErrPlayerNotFound, player)
	}

	return nil
}

// SideOf returns the player owning the pit.
func SideOf(pit int) (int, error) {
	if err := ValidatePit(pit); err != nil {
		return 0, err
	}

	if pit <= PitsPerSide {
		return PlayerOne, nil
	}

	return PlayerTwo, nil
}

// OppositePit returns the pit facing the given one across the board.
func OppositePit(pit int) (int, error) {
	if err := ValidatePit(pit); err != nil {
		return 0, err
	}

	return NumPits + 1 - pit, nil
}

func FirstPit(player int) int {
	if player == PlayerTwo {
		return PitsPerSide + 1
	}

	return 1
}

func Opponent(player int) int {
	if player == PlayerOne {
		return PlayerTwo
	}

	return PlayerOne
}
