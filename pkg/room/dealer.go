package room

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
	"xidach-server/pkg/playable"
	"xidach-server/pkg/playable/xidach"
	"xidach-server/pkg/wallet"
)

// RoundStatus is a round as the account sees it
// Settled is true once the outcome has been applied to the wallet.
type RoundStatus struct {
	xidach.RoundView
	Settled bool `json:"settled"`
}

// Dealer runs the rounds of a single account
type Dealer struct {
	pitBoss   *PitBoss
	accountID int64
	logger    logrus.FieldLogger

	// lock serializes every action on the account's rounds
	lock        sync.Mutex
	round       *xidach.Round
	settled     bool
	logMessages []*playable.LogMessage

	clients     map[*Client]bool
	clientsLock sync.RWMutex
}

// NewDealer creates a new dealer object
func NewDealer(pitBoss *PitBoss, accountID int64) *Dealer {
	return &Dealer{
		pitBoss:   pitBoss,
		accountID: accountID,
		logger:    pitBoss.logger.WithField("accountId", accountID),
		clients:   make(map[*Client]bool),
	}
}

// Clients will return a slice of connected (at the time) clients
func (d *Dealer) Clients() []*Client {
	d.clientsLock.RLock()
	defer d.clientsLock.RUnlock()

	clients := make([]*Client, 0, len(d.clients))
	for client := range d.clients {
		clients = append(clients, client)
	}

	return clients
}

// AddClient adds a client and sends it the current round
func (d *Dealer) AddClient(client *Client) {
	d.clientsLock.Lock()
	d.clients[client] = true
	d.clientsLock.Unlock()

	d.lock.Lock()
	status := d.status()
	logMessages := append([]*playable.LogMessage(nil), d.logMessages...)
	d.lock.Unlock()

	if status != nil {
		client.Send(roundResponse(status, ""))
	}

	if len(logMessages) > 0 {
		client.Send(logsResponse(logMessages))
	}
}

// RemoveClient removes a client
// Returns true if it was the last client
func (d *Dealer) RemoveClient(client *Client) (lastClient bool) {
	d.clientsLock.Lock()
	defer d.clientsLock.Unlock()

	delete(d.clients, client)
	return len(d.clients) == 0
}

// CommitRound debits the stake and deals a new round
// Nothing is created if the stake is not allowed or the balance cannot cover a double loss.
func (d *Dealer) CommitRound(ctx context.Context, stake int64) (*RoundStatus, error) {
	d.lock.Lock()
	defer d.lock.Unlock()

	if d.round != nil && !(d.round.IsResolved() && d.settled) {
		return nil, ErrRoundInProgress
	}

	options := d.pitBoss.options
	if !options.IsDenomination(stake) {
		return nil, xidach.ErrInvalidStake
	}

	balance, err := d.pitBoss.wallet.Balance(ctx, d.accountID)
	if err != nil {
		return nil, err
	}

	if balance < xidach.RequiredBalance(stake) {
		return nil, wallet.ErrInsufficientFunds
	}

	round, err := xidach.NewRound(d.logger, options, d.accountID, stake, d.pitBoss.newDeck())
	if err != nil {
		return nil, err
	}

	key := wallet.Key{RoundUUID: round.UUID, Entry: wallet.EntryStake}
	if _, err := d.pitBoss.wallet.Debit(ctx, key, d.accountID, stake); err != nil {
		return nil, err
	}

	presenters := xidach.Presenters{dealerPresenter{d: d}}
	if d.pitBoss.presenter != nil {
		presenters = append(presenters, d.pitBoss.presenter)
	}
	round.SetPresenter(presenters)

	if err := round.Deal(); err != nil {
		return nil, err
	}

	d.round = round
	d.settled = false

	d.logger.WithFields(logrus.Fields{
		"roundId": round.UUID,
		"stake":   stake,
	}).Info("round committed")

	return d.afterAction(ctx)
}

// Hit draws a card for the player
func (d *Dealer) Hit(ctx context.Context, roundUUID string) (*RoundStatus, error) {
	d.lock.Lock()
	defer d.lock.Unlock()

	round, err := d.roundByUUID(roundUUID)
	if err != nil {
		return nil, err
	}

	if err := round.Hit(); err != nil {
		return nil, err
	}

	return d.afterAction(ctx)
}

// Stand ends the player's turn, plays the dealer and settles the round
func (d *Dealer) Stand(ctx context.Context, roundUUID string) (*RoundStatus, error) {
	d.lock.Lock()
	defer d.lock.Unlock()

	round, err := d.roundByUUID(roundUUID)
	if err != nil {
		return nil, err
	}

	if err := round.Stand(); err != nil {
		return nil, err
	}

	return d.afterAction(ctx)
}

// RevealHoleCard shows the dealer's hole card
func (d *Dealer) RevealHoleCard(roundUUID string) (*RoundStatus, error) {
	d.lock.Lock()
	defer d.lock.Unlock()

	round, err := d.roundByUUID(roundUUID)
	if err != nil {
		return nil, err
	}

	if err := round.RevealHoleCard(); err != nil {
		return nil, err
	}

	status := d.status()
	d.broadcast(roundResponse(status, ""))
	return status, nil
}

// RetrySettlement applies a resolved round's outcome again after a wallet failure
func (d *Dealer) RetrySettlement(ctx context.Context, roundUUID string) (*RoundStatus, error) {
	d.lock.Lock()
	defer d.lock.Unlock()

	round, err := d.roundByUUID(roundUUID)
	if err != nil {
		return nil, err
	}

	if !round.IsResolved() || d.settled {
		return nil, ErrNothingToSettle
	}

	return d.afterAction(ctx)
}

// Round returns the round if it is the account's latest round
func (d *Dealer) Round(roundUUID string) (*RoundStatus, error) {
	d.lock.Lock()
	defer d.lock.Unlock()

	if _, err := d.roundByUUID(roundUUID); err != nil {
		return nil, err
	}

	return d.status(), nil
}

// Current returns the account's latest round
func (d *Dealer) Current() (*RoundStatus, error) {
	d.lock.Lock()
	defer d.lock.Unlock()

	if d.round == nil {
		return nil, ErrRoundNotFound
	}

	return d.status(), nil
}

// NOTE: must be called while holding the lock
func (d *Dealer) roundByUUID(roundUUID string) (*xidach.Round, error) {
	if d.round == nil || d.round.UUID != roundUUID {
		return nil, ErrRoundNotFound
	}

	return d.round, nil
}

// NOTE: must be called while holding the lock
func (d *Dealer) status() *RoundStatus {
	if d.round == nil {
		return nil
	}

	return &RoundStatus{
		RoundView: d.round.View(),
		Settled:   d.settled,
	}
}

// afterAction settles a newly resolved round and tells the clients
// The status is returned even if the settlement failed.
// NOTE: must be called while holding the lock
func (d *Dealer) afterAction(ctx context.Context) (*RoundStatus, error) {
	var err error
	if d.round.IsResolved() && !d.settled {
		err = d.settle(ctx)
	}

	status := d.status()
	d.broadcast(roundResponse(status, ""))
	return status, err
}

// NOTE: must be called while holding the lock
func (d *Dealer) settle(ctx context.Context) error {
	round := d.round
	outcome := round.Outcome

	entries := []struct {
		entry  wallet.Entry
		amount int64
	}{
		{wallet.EntryPayout, outcome.Payout},
		{wallet.EntryPenalty, outcome.Penalty},
	}

	for _, e := range entries {
		if e.amount == 0 {
			continue
		}

		key := wallet.Key{RoundUUID: round.UUID, Entry: e.entry}
		var err error
		if e.entry.Direction() == wallet.DirectionCredit {
			_, err = d.pitBoss.wallet.Credit(ctx, key, d.accountID, e.amount)
		} else {
			_, err = d.pitBoss.wallet.Debit(ctx, key, d.accountID, e.amount)
		}

		if err != nil {
			d.logger.WithError(err).WithFields(logrus.Fields{
				"roundId":   round.UUID,
				"amount":    e.amount,
				"direction": e.entry.Direction(),
			}).Error("could not settle round")

			return fmt.Errorf("%w: %w", ErrSettlementFailed, err)
		}
	}

	d.settled = true
	d.logger.WithFields(logrus.Fields{
		"roundId": round.UUID,
		"net":     outcome.Net(),
	}).Info("round settled")

	if err := d.pitBoss.archive.SaveRound(ctx, round); err != nil {
		d.logger.WithError(err).WithField("roundId", round.UUID).Error("could not archive round")
	}

	return nil
}

func (d *Dealer) broadcast(msg interface{}) {
	for _, client := range d.Clients() {
		if !client.Send(msg) {
			d.logger.WithField("client", client.String()).Warn("client send buffer is full")
		}
	}
}

// ReceivedMessage is called when a client sends a message to the server
func (d *Dealer) ReceivedMessage(c *Client, msg *playable.PayloadIn) {
	ctx := context.Background()

	var err error
	switch msg.Action {
	case "commit":
		stake, ok := msg.AdditionalData.GetInt64("stake")
		if !ok {
			err = errors.New("stake is required")
			break
		}

		_, err = d.CommitRound(ctx, stake)
	case "hit":
		_, err = d.Hit(ctx, msg.Subject)
	case "stand":
		_, err = d.Stand(ctx, msg.Subject)
	case "reveal":
		_, err = d.RevealHoleCard(msg.Subject)
	case "settle":
		_, err = d.RetrySettlement(ctx, msg.Subject)
	case "round":
		var status *RoundStatus
		status, err = d.Current()
		if err == nil {
			c.Send(roundResponse(status, msg.Context))
			return
		}
	default:
		logrus.WithField("msg", msg).Warn("unknown message")
		err = fmt.Errorf("unknown action: %s", msg.Action)
	}

	if err != nil {
		d.logger.WithError(err).WithField("action", msg.Action).Debug("could not perform action")
		c.Send(playable.ErrorResponse(err, msg.Context))
		return
	}

	// every client already received the new status
	c.Send(playable.OK(msg.Context))
}

func roundResponse(status *RoundStatus, ctx string) *playable.Response {
	return &playable.Response{
		Key:     "round",
		Data:    status,
		Context: ctx,
	}
}
