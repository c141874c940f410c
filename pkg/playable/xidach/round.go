package xidach

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"xidach-server/pkg/deck"
)

// holeCardPosition is the index of the dealer's face-down card
const holeCardPosition = 1

// Round is a single hand of Xì Dách between one player and the dealer
type Round struct {
	UUID       string
	AccountID  int64
	Stake      int64
	State      RoundState
	PlayerHand deck.Hand
	DealerHand deck.Hand
	// Stood is true once the player chose to stand (or stood automatically)
	Stood bool
	// HoleRevealed is set by the presentation layer once it shows the dealer's hole card
	HoleRevealed bool
	Outcome      *Outcome
	// DeckHash is the hash of the shuffled deck before the first card was dealt
	DeckHash string
	Created  time.Time
	Resolved time.Time

	deck      *deck.Deck
	snapshot  *PlayerSnapshot
	presenter Presenter
	logger    logrus.FieldLogger
}

// NewRound returns a round in the betting state
// The deck must be a full, shuffled deck that is owned by this round alone.
func NewRound(logger logrus.FieldLogger, options Options, accountID int64, stake int64, d *deck.Deck) (*Round, error) {
	if !options.IsDenomination(stake) {
		return nil, ErrInvalidStake
	}

	if d.CardsLeft() != deck.Size {
		return nil, fmt.Errorf("round requires a full deck, got %d cards", d.CardsLeft())
	}

	r := &Round{
		UUID:       uuid.New().String(),
		AccountID:  accountID,
		Stake:      stake,
		State:      RoundStateBetting,
		PlayerHand: make(deck.Hand, 0, 5),
		DealerHand: make(deck.Hand, 0, 5),
		DeckHash:   d.HashCode(),
		Created:    time.Now(),
		deck:       d,
		presenter:  nopPresenter{},
	}

	r.logger = logger.WithFields(logrus.Fields{
		"roundId":   r.UUID,
		"accountId": accountID,
	})

	return r, nil
}

// SetPresenter sets who receives card and resolution events
func (r *Round) SetPresenter(p Presenter) {
	if p == nil {
		p = nopPresenter{}
	}

	r.presenter = p
}

// Deal deals the opening hands: player, dealer, player, dealer (face down)
func (r *Round) Deal() error {
	if r.State != RoundStateBetting {
		return &StateError{Action: "deal", State: r.State}
	}

	if !r.deck.CanDraw(4) {
		return deck.ErrDeckExhausted
	}

	r.State = RoundStateDealing
	for i := 0; i < 4; i++ {
		// cannot fail, CanDraw(4) was checked
		card, _ := r.deck.Draw()
		if i%2 == 0 {
			r.PlayerHand.AddCard(card)
			r.cardDealt(OwnerPlayer, card, len(r.PlayerHand)-1, false)
		} else {
			r.DealerHand.AddCard(card)
			position := len(r.DealerHand) - 1
			r.cardDealt(OwnerDealer, card, position, position == holeCardPosition)
		}
	}

	r.State = RoundStatePlayerTurn
	r.logger.WithField("playerValue", HandValue(r.PlayerHand)).Debug("opening hands dealt")
	return nil
}

// Hit draws a card for the player
// A hit that makes a Ngũ Linh stands automatically.
func (r *Round) Hit() error {
	if r.State != RoundStatePlayerTurn {
		return &StateError{Action: "hit", State: r.State}
	}

	card, err := r.deck.Draw()
	if err != nil {
		return err
	}

	r.PlayerHand.AddCard(card)
	r.cardDealt(OwnerPlayer, card, len(r.PlayerHand)-1, false)

	value := HandValue(r.PlayerHand)
	r.logger.WithFields(logrus.Fields{
		"card":        card.String(),
		"playerValue": value,
	}).Debug("player hit")

	if Classify(r.PlayerHand) == HandClassFiveCardBonus {
		return r.Stand()
	}

	return nil
}

// Stand ends the player's turn, plays the dealer's hand and resolves the round
func (r *Round) Stand() error {
	if r.State != RoundStatePlayerTurn {
		return &StateError{Action: "stand", State: r.State}
	}

	snapshot := NewPlayerSnapshot(r.PlayerHand)
	r.snapshot = &snapshot
	r.Stood = true
	r.State = RoundStateDealerTurn

	r.playDealer()
	r.resolve()
	return nil
}

// RevealHoleCard marks the dealer's hole card as shown
// It cannot be revealed while the player is still deciding.
func (r *Round) RevealHoleCard() error {
	if !r.State.IsPlayerTurnOver() {
		return &StateError{Action: "reveal the hole card", State: r.State}
	}

	r.HoleRevealed = true
	return nil
}

// playDealer draws for the dealer until the policy stops or the deck runs out
func (r *Round) playDealer() {
	for DealerShouldDraw(HandValue(r.DealerHand), *r.snapshot) {
		card, err := r.deck.Draw()
		if err != nil {
			if errors.Is(err, deck.ErrDeckExhausted) {
				r.logger.WithField("dealerValue", HandValue(r.DealerHand)).Warn("deck exhausted during dealer turn, dealer stands")
				return
			}

			panic(fmt.Sprintf("unexpected draw error: %v", err))
		}

		r.DealerHand.AddCard(card)
		r.cardDealt(OwnerDealer, card, len(r.DealerHand)-1, false)
	}
}

func (r *Round) resolve() {
	r.Outcome = Resolve(r.Stake, r.PlayerHand, r.DealerHand, r.Stood)
	r.State = RoundStateResolved
	r.Resolved = time.Now()

	r.logger.WithFields(logrus.Fields{
		"outcome":     r.Outcome.Kind,
		"playerValue": r.Outcome.PlayerValue,
		"dealerValue": r.Outcome.DealerValue,
		"payout":      r.Outcome.Payout,
		"penalty":     r.Outcome.Penalty,
	}).Info("round resolved")

	r.presenter.OnRoundResolved(RoundResolved{
		RoundUUID: r.UUID,
		Outcome:   r.Outcome,
	})
}

func (r *Round) cardDealt(owner Owner, card *deck.Card, position int, faceDown bool) {
	r.presenter.OnCardDealt(CardDealt{
		RoundUUID: r.UUID,
		Owner:     owner,
		Card:      card,
		Position:  position,
		FaceDown:  faceDown,
	})
}

// CardsRemaining returns the number of cards left in the round's deck
func (r *Round) CardsRemaining() int {
	return r.deck.CardsLeft()
}

// IsResolved returns true once the outcome is final
func (r *Round) IsResolved() bool {
	return r.State == RoundStateResolved
}

// PlayerSnapshot returns the snapshot the dealer played against, or nil before the player stood
func (r *Round) PlayerSnapshot() *PlayerSnapshot {
	return r.snapshot
}

// MarshalJSON provides custom JSON marshalling for round
// The hole card is hidden until it is revealed.
func (r *Round) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.View())
}
