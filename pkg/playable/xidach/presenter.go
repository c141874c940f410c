package xidach

import "xidach-server/pkg/deck"

// Owner is who holds a hand
type Owner string

// Owner constants
const (
	OwnerPlayer Owner = "player"
	OwnerDealer Owner = "dealer"
)

// CardDealt is sent every time a card lands in a hand
type CardDealt struct {
	RoundUUID string     `json:"roundUuid"`
	Owner     Owner      `json:"owner"`
	Card      *deck.Card `json:"card"`
	Position  int        `json:"position"`
	// FaceDown is true for the dealer's hole card. Presenters must not show Card.
	FaceDown bool `json:"faceDown"`
}

// RoundResolved is sent once, when the outcome is final
type RoundResolved struct {
	RoundUUID string   `json:"roundUuid"`
	Outcome   *Outcome `json:"outcome"`
}

// Presenter receives events for rendering
// Calls are fire-and-forget. A presenter cannot change the round and should not block.
type Presenter interface {
	OnCardDealt(event CardDealt)
	OnRoundResolved(event RoundResolved)
}

// Presenters fans events out to several presenters
type Presenters []Presenter

// OnCardDealt implements Presenter
func (p Presenters) OnCardDealt(event CardDealt) {
	for _, presenter := range p {
		presenter.OnCardDealt(event)
	}
}

// OnRoundResolved implements Presenter
func (p Presenters) OnRoundResolved(event RoundResolved) {
	for _, presenter := range p {
		presenter.OnRoundResolved(event)
	}
}

type nopPresenter struct{}

func (nopPresenter) OnCardDealt(CardDealt)         {}
func (nopPresenter) OnRoundResolved(RoundResolved) {}
