package mancala

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/mancala/internal/apperror"
	"github.com/rocketscienceinc/mancala/internal/entity"
)

const (
	StatusOngoing  = "ongoing"
	StatusFinished = "finished"

	// Tie is the winner number reported when both stores hold the same total.
	Tie = 0
)

type Option func(controller *GameController)

// WithStonesPerPit sets the seed used when the board is reset.
func WithStonesPerPit(stones int) Option {
	return func(controller *GameController) {
		if stones > 0 {
			controller.stonesPerPit = stones
		}
	}
}

func WithID(id string) Option {
	return func(controller *GameController) {
		if id != "" {
			controller.id = id
		}
	}
}

// GameController owns the board for one game and enforces whose turn it is.
type GameController struct {
	logger *slog.Logger

	id            string
	rules         Rules
	board         *entity.Board
	players       [2]*entity.Player
	stonesPerPit  int
	currentPlayer int
	status        string
}

// Result is the final score of a finished game.
type Result struct {
	StoreOne int `json:"store_one"`
	StoreTwo int `json:"store_two"`
	Winner   int `json:"winner"`
}

// Snapshot is a read-only copy of the game for renderers.
type Snapshot struct {
	ID            string `json:"id"`
	Variant       string `json:"variant"`
	Pits          []int  `json:"pits"`
	Stores        [2]int `json:"stores"`
	CurrentPlayer int    `json:"current_player"`
	Status        string `json:"status"`
}

func NewGameController(logger *slog.Logger, rules Rules, options ...Option) *GameController {
	controller := &GameController{
		id:           uuid.NewString(),
		rules:        rules,
		board:        entity.NewBoard(),
		stonesPerPit: entity.DefaultStonesPerPit,
	}

	for _, option := range options {
		option(controller)
	}

	controller.logger = logger.With("component", "mancala", "game", controller.id, "variant", rules.Name())
	controller.ResetBoard()

	return controller
}

func (that *GameController) ID() string {
	return that.id
}

func (that *GameController) Rules() Rules {
	return that.rules
}

// RegisterPlayers binds each player to the store of its number. Stones already
// banked stay in the stores. Nothing changes unless both players are present.
func (that *GameController) RegisterPlayers(one, two *entity.Player) error {
	players := [2]*entity.Player{one, two}
	for i, player := range players {
		if player == nil {
			return fmt.Errorf("%w: player %d is missing", apperror.ErrPlayerNotFound, i+1)
		}
	}

	for i, player := range players {
		if err := that.board.BindPlayer(player, i+1); err != nil {
			return fmt.Errorf("failed to bind player: %w", err)
		}
	}

	that.players = players

	that.logger.Info("players registered", "player_one", one.Name, "player_two", two.Name)

	return nil
}

func (that *GameController) Player(number int) (*entity.Player, error) {
	if err := entity.ValidatePlayer(number); err != nil {
		return nil, err
	}

	player := that.players[number-1]
	if player == nil {
		return nil, fmt.Errorf("%w: player %d is not registered", apperror.ErrPlayerNotFound, number)
	}

	return player, nil
}

// ResetBoard re-seeds the pits, empties the stores and hands the first move
// to player one.
func (that *GameController) ResetBoard() {
	that.board.SetUpPits(that.stonesPerPit)
	that.board.EmptyStores()
	that.currentPlayer = entity.PlayerOne
	that.status = StatusOngoing
}

func (that *GameController) SetPlayer(player int) error {
	if err := entity.ValidatePlayer(player); err != nil {
		return err
	}

	that.currentPlayer = player

	return nil
}

func (that *GameController) CurrentPlayer() int {
	return that.currentPlayer
}

func (that *GameController) NumStones(pit int) (int, error) {
	return that.board.StoneCount(pit)
}

func (that *GameController) StoreTotal(player int) (int, error) {
	return that.board.StoreTotal(player)
}

// IsSideEmpty reports whether the side holding the pit has no stones left.
func (that *GameController) IsSideEmpty(pit int) (bool, error) {
	side, err := entity.SideOf(pit)
	if err != nil {
		return false, err
	}

	total, err := that.board.SideTotal(side)
	if err != nil {
		return false, err
	}

	return total == 0, nil
}

// MoveStones plays startPit for player and returns the number of stones that
// reached the player's store during the turn, captures included.
func (that *GameController) MoveStones(startPit, player int) (int, error) {
	log := that.logger.With("method", "MoveStones")

	if err := that.validateMove(startPit, player); err != nil {
		log.Debug("move rejected", "pit", startPit, "player", player, "error", err)
		return 0, err
	}

	before, err := that.board.StoreTotal(player)
	if err != nil {
		return 0, err
	}

	landing, err := that.rules.DistributeStones(that.board, startPit, player)
	if err != nil {
		return 0, fmt.Errorf("failed to distribute stones: %w", err)
	}

	captured, err := that.rules.CaptureStones(that.board, landing, player)
	if err != nil {
		return 0, fmt.Errorf("failed to capture stones: %w", err)
	}

	extraTurn := that.rules.ExtraTurn(landing, player)
	if !extraTurn {
		that.currentPlayer = entity.Opponent(player)
	}

	after, err := that.board.StoreTotal(player)
	if err != nil {
		return 0, err
	}

	log.Debug("stones moved",
		"pit", startPit,
		"player", player,
		"landing", landing.String(),
		"captured", captured,
		"extra_turn", extraTurn,
	)

	if that.IsGameOver() {
		log.Info("side emptied, game over", "player", player)
	}

	return after - before, nil
}

// DistributeStones sows startPit for player without any turn bookkeeping.
func (that *GameController) DistributeStones(startPit, player int) (Landing, error) {
	if err := entity.ValidatePlayer(player); err != nil {
		return Landing{}, err
	}

	return that.rules.DistributeStones(that.board, startPit, player)
}

// CaptureStones applies the capture rule to landing on behalf of player.
func (that *GameController) CaptureStones(landing Landing, player int) (int, error) {
	if err := entity.ValidatePlayer(player); err != nil {
		return 0, err
	}

	return that.rules.CaptureStones(that.board, landing, player)
}

// validateMove checks the move without touching the board.
func (that *GameController) validateMove(startPit, player int) error {
	if that.IsGameOver() {
		return fmt.Errorf("%w: %w", apperror.ErrInvalidMove, apperror.ErrGameFinished)
	}

	if err := entity.ValidatePlayer(player); err != nil {
		return fmt.Errorf("%w: %w", apperror.ErrInvalidMove, err)
	}

	if player != that.currentPlayer {
		return fmt.Errorf("%w: %w", apperror.ErrInvalidMove, apperror.ErrNotYourTurn)
	}

	side, err := entity.SideOf(startPit)
	if err != nil {
		return fmt.Errorf("%w: %w", apperror.ErrInvalidMove, err)
	}

	if side != player {
		return fmt.Errorf("%w: %w: pit %d", apperror.ErrInvalidMove, apperror.ErrWrongSide, startPit)
	}

	stones, err := that.board.StoneCount(startPit)
	if err != nil {
		return fmt.Errorf("%w: %w", apperror.ErrInvalidMove, err)
	}

	if stones == 0 {
		return fmt.Errorf("%w: %w: pit %d", apperror.ErrInvalidMove, apperror.ErrPitEmpty, startPit)
	}

	return nil
}

// IsGameOver reports whether either side has run out of stones.
func (that *GameController) IsGameOver() bool {
	if that.status == StatusFinished {
		return true
	}

	for _, player := range []int{entity.PlayerOne, entity.PlayerTwo} {
		total, err := that.board.SideTotal(player)
		if err != nil || total == 0 {
			return true
		}
	}

	return false
}

// EndGame sweeps the stones left on each side into that side's store once a
// side is empty. It returns false while both sides still hold stones.
func (that *GameController) EndGame() (bool, error) {
	if that.status == StatusFinished {
		return true, nil
	}

	if !that.IsGameOver() {
		return false, nil
	}

	for _, player := range []int{entity.PlayerOne, entity.PlayerTwo} {
		swept := 0
		first := entity.FirstPit(player)
		for pit := first; pit < first+entity.PitsPerSide; pit++ {
			stones, err := that.board.RemoveStones(pit)
			if err != nil {
				return false, err
			}
			swept += stones
		}

		if err := that.board.AddToStore(player, swept); err != nil {
			return false, fmt.Errorf("failed to sweep side %d: %w", player, err)
		}
	}

	that.status = StatusFinished

	result, err := that.Result()
	if err != nil {
		return false, err
	}

	that.logger.Info("game finished",
		"store_one", result.StoreOne,
		"store_two", result.StoreTwo,
		"winner", result.Winner,
	)

	return true, nil
}

func (that *GameController) IsFinished() bool {
	return that.status == StatusFinished
}

func (that *GameController) Result() (Result, error) {
	if that.status != StatusFinished {
		return Result{}, apperror.ErrGameNotOver
	}

	storeOne, err := that.board.StoreTotal(entity.PlayerOne)
	if err != nil {
		return Result{}, err
	}

	storeTwo, err := that.board.StoreTotal(entity.PlayerTwo)
	if err != nil {
		return Result{}, err
	}

	result := Result{
		StoreOne: storeOne,
		StoreTwo: storeTwo,
		Winner:   Tie,
	}

	switch {
	case storeOne > storeTwo:
		result.Winner = entity.PlayerOne
	case storeTwo > storeOne:
		result.Winner = entity.PlayerTwo
	}

	return result, nil
}

// Winner returns the registered player with the larger store, or nil on a tie.
func (that *GameController) Winner() (*entity.Player, error) {
	result, err := that.Result()
	if err != nil {
		return nil, err
	}

	if result.Winner == Tie {
		return nil, nil
	}

	return that.Player(result.Winner)
}

func (that *GameController) Snapshot() Snapshot {
	var stores [2]int
	for i := range stores {
		total, err := that.board.StoreTotal(i + 1)
		if err != nil {
			that.logger.Error("failed to read store", "player", i+1, "error", err)
			continue
		}

		stores[i] = total
	}

	return Snapshot{
		ID:            that.id,
		Variant:       that.rules.Name(),
		Pits:          that.board.Pits(),
		Stores:        stores,
		CurrentPlayer: that.currentPlayer,
		Status:        that.status,
	}
}

// String lays the board out as seen by player one: pits 12 to 7 on top,
// store two on the left, store one on the right, pits 1 to 6 at the bottom.
func (that *GameController) String() string {
	snapshot := that.Snapshot()

	var sb strings.Builder
	sb.WriteString("\t")
	for pit := entity.NumPits; pit > entity.PitsPerSide; pit-- {
		fmt.Fprintf(&sb, "%d\t", snapshot.Pits[pit-1])
	}

	fmt.Fprintf(&sb, "\n%d%s%d\n\t", snapshot.Stores[1], strings.Repeat("\t", entity.PitsPerSide+1), snapshot.Stores[0])

	for pit := 1; pit <= entity.PitsPerSide; pit++ {
		fmt.Fprintf(&sb, "%d\t", snapshot.Pits[pit-1])
	}

	return sb.String()
}
