package mancala

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rocketscienceinc/mancala/internal/entity"
)

const (
	VariantKalah = "kalah"
	VariantAyo   = "ayo"
)

var ErrUnknownVariant = errors.New("unknown rules variant")

// Rules is the part of the game that differs between variants.
type Rules interface {
	Name() string
	// DistributeStones sows the stones of startPit on behalf of player and
	// reports where the last stone landed.
	DistributeStones(board *entity.Board, startPit, player int) (Landing, error)
	// CaptureStones applies the capture rule for the landing and returns the
	// number of stones moved into the player's store.
	CaptureStones(board *entity.Board, landing Landing, player int) (int, error)
	ExtraTurn(landing Landing, player int) bool
}

// Landing is where sowing stopped: either a pit or a player's store.
type Landing struct {
	Pit   int `json:"pit,omitempty"`
	Store int `json:"store,omitempty"`
}

func (that Landing) InPit() bool {
	return that.Pit != 0
}

func (that Landing) InStoreOf(player int) bool {
	return that.Store == player
}

func (that Landing) String() string {
	if that.InPit() {
		return fmt.Sprintf("pit %d", that.Pit)
	}

	return fmt.Sprintf("store %d", that.Store)
}

func NewRules(variant string) (Rules, error) {
	switch strings.ToLower(strings.TrimSpace(variant)) {
	case VariantKalah, "":
		return &KalahRules{}, nil
	case VariantAyo:
		return &AyoRules{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownVariant, variant)
	}
}
