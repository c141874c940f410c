package room

import (
	"xidach-server/pkg/deck"
	"xidach-server/pkg/playable"
	"xidach-server/pkg/playable/xidach"
)

const logMessageLimit = 25

// addLogMessages adds log messages and sends them to the clients
// NOTE: must be called while holding the lock
func (d *Dealer) addLogMessages(messages ...*playable.LogMessage) {
	m := append(d.logMessages, messages...)
	count := len(m)
	if count > logMessageLimit {
		m = m[count-logMessageLimit:]
	}

	d.logMessages = m
	d.broadcast(logsResponse(messages))
}

// LogMessages returns the most recent log messages
func (d *Dealer) LogMessages() []*playable.LogMessage {
	d.lock.Lock()
	defer d.lock.Unlock()

	return append([]*playable.LogMessage(nil), d.logMessages...)
}

func logsResponse(messages []*playable.LogMessage) *playable.Response {
	return &playable.Response{
		Key:  "logs",
		Data: messages,
	}
}

// dealerPresenter turns round events into log messages
// Round events fire inside Dealer actions, so the lock is already held.
type dealerPresenter struct {
	d *Dealer
}

func (p dealerPresenter) OnCardDealt(event xidach.CardDealt) {
	var lm *playable.LogMessage
	switch {
	case event.FaceDown:
		lm = playable.CardLogMessage(0, event.RoundUUID, nil, "Dealer takes a face-down card")
	case event.Owner == xidach.OwnerPlayer:
		lm = playable.CardLogMessage(p.d.accountID, event.RoundUUID, []*deck.Card{event.Card}, "drew %s", event.Card)
	default:
		lm = playable.CardLogMessage(0, event.RoundUUID, []*deck.Card{event.Card}, "Dealer drew %s", event.Card)
	}

	p.d.addLogMessages(lm)
}

func (p dealerPresenter) OnRoundResolved(event xidach.RoundResolved) {
	lm := playable.SimpleLogMessage(0, "%s %s", event.Outcome.Message, event.Outcome.Detail())
	lm.RoundUUID = event.RoundUUID
	p.d.addLogMessages(lm)
}
