package entity

// Player is a participant bound to exactly one store once registered.
type Player struct {
	Name   string `json:"name"`
	Number int    `json:"number,omitempty"`

	store *Store
}

func NewPlayer(name string) *Player {
	return &Player{
		Name: name,
	}
}

// Store returns the store the player was bound to, nil before registration.
func (that *Player) Store() *Store {
	return that.store
}

// Store accumulates the stones a player has banked. Only the board changes
// the total.
type Store struct {
	owner *Player
	total int
}

func newStore() *Store {
	return &Store{}
}

func (that *Store) Owner() *Player {
	return that.owner
}

func (that *Store) Total() int {
	return that.total
}

func (that *Store) addStones(stones int) {
	that.total += stones
}

// empty clears the store and returns what it held.
func (that *Store) empty() int {
	stones := that.total
	that.total = 0

	return stones
}
