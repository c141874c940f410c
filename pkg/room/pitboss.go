package room

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"
	"xidach-server/internal/rng"
	"xidach-server/pkg/deck"
	"xidach-server/pkg/playable/xidach"
	"xidach-server/pkg/wallet"
)

// Archive stores resolved rounds
type Archive interface {
	SaveRound(ctx context.Context, round *xidach.Round) error
}

type nopArchive struct{}

func (nopArchive) SaveRound(context.Context, *xidach.Round) error {
	return nil
}

// PitBoss is responsible for seating accounts with a dealer
// Every account gets its own dealer, so rounds for one account are serialized.
type PitBoss struct {
	options   xidach.Options
	wallet    wallet.Gateway
	archive   Archive
	newDeck   func() *deck.Deck
	presenter xidach.Presenter
	logger    logrus.FieldLogger

	dealers    map[int64]*Dealer
	lock       sync.Mutex
	connect    chan *Client
	disconnect chan *Client
}

// NewPitBoss returns a new dispatch object
// archive may be nil if rounds are not kept.
func NewPitBoss(logger logrus.FieldLogger, options xidach.Options, gateway wallet.Gateway, archive Archive) *PitBoss {
	if archive == nil {
		archive = nopArchive{}
	}

	return &PitBoss{
		options: options,
		wallet:  gateway,
		archive: archive,
		newDeck: func() *deck.Deck {
			return deck.NewShuffled(rng.Crypto{})
		},
		logger:     logger,
		dealers:    make(map[int64]*Dealer),
		connect:    make(chan *Client, 256),
		disconnect: make(chan *Client, 256),
	}
}

// SetDeckFactory replaces how each round's deck is created
// Every call must return a new full deck.
func (p *PitBoss) SetDeckFactory(fn func() *deck.Deck) {
	p.newDeck = fn
}

// SetPresenter adds a presenter that receives the events of every round
func (p *PitBoss) SetPresenter(presenter xidach.Presenter) {
	p.presenter = presenter
}

// Options returns the round options
func (p *PitBoss) Options() xidach.Options {
	return p.options
}

// Wallet returns the wallet gateway
func (p *PitBoss) Wallet() wallet.Gateway {
	return p.wallet
}

// Dealer returns the dealer for the account, creating it if needed
func (p *PitBoss) Dealer(accountID int64) *Dealer {
	p.lock.Lock()
	defer p.lock.Unlock()

	dealer, found := p.dealers[accountID]
	if !found {
		dealer = NewDealer(p, accountID)
		p.dealers[accountID] = dealer
	}

	return dealer
}

// CommitRound is a shortcut for Dealer(accountID).CommitRound()
func (p *PitBoss) CommitRound(ctx context.Context, accountID int64, stake int64) (*RoundStatus, error) {
	return p.Dealer(accountID).CommitRound(ctx, stake)
}

// RetrySettlement is a shortcut for Dealer(accountID).RetrySettlement()
func (p *PitBoss) RetrySettlement(ctx context.Context, accountID int64, roundUUID string) (*RoundStatus, error) {
	return p.Dealer(accountID).RetrySettlement(ctx, roundUUID)
}

// StartShift starts the PitBoss run loop
func (p *PitBoss) StartShift() {
	go p.runLoop()
}

func (p *PitBoss) runLoop() {
	for {
		select {
		case client := <-p.connect:
			p.logger.WithField("client", client.String()).Debug("client connected")
			client.dealer.AddClient(client)
		case client := <-p.disconnect:
			p.logger.WithField("client", client.String()).Debug("client disconnected")
			client.dealer.RemoveClient(client)
		}
	}
}

// ClientConnected is called when a client connects to the server
// It must be called before the client's messages are read.
func (p *PitBoss) ClientConnected(client *Client) {
	client.dealer = p.Dealer(client.accountID)
	p.connect <- client
}

// ClientDisconnected is called when a client disconnects from the server
func (p *PitBoss) ClientDisconnected(client *Client) {
	p.disconnect <- client
}
