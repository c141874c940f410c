package commands

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/pterm/pterm"
	"xidach-server/pkg/deck"
	"xidach-server/pkg/playable/xidach"
)

// tablePresenter prints each card as it lands
type tablePresenter struct {
	name  string
	delay time.Duration
	out   io.Writer
}

func newTablePresenter(name string, delay time.Duration, out io.Writer) *tablePresenter {
	return &tablePresenter{name: name, delay: delay, out: out}
}

func (p *tablePresenter) OnCardDealt(event xidach.CardDealt) {
	sleep(p.delay)

	switch {
	case event.FaceDown:
		_, _ = fmt.Fprintln(p.out, pterm.Gray("Dealer takes a face-down card"))
	case event.Owner == xidach.OwnerDealer:
		_, _ = fmt.Fprintf(p.out, "Dealer draws %s\n", cardString(event.Card))
	default:
		_, _ = fmt.Fprintf(p.out, "%s draws %s\n", pterm.LightCyan(p.name), cardString(event.Card))
	}
}

func (p *tablePresenter) OnRoundResolved(event xidach.RoundResolved) {
	o := event.Outcome
	switch {
	case o.Kind.IsWin():
		_, _ = fmt.Fprintln(p.out, pterm.Success.Sprintf("%s %s", o.Message, o.Detail()))
	case o.Kind.IsLoss():
		_, _ = fmt.Fprintln(p.out, pterm.Error.Sprintf("%s %s", o.Message, o.Detail()))
	default:
		_, _ = fmt.Fprintln(p.out, pterm.Info.Sprintf("%s %s", o.Message, o.Detail()))
	}
}

func cardString(card *deck.Card) string {
	if card == nil {
		return "??"
	}

	s := card.String()
	if card.Suit == deck.Hearts || card.Suit == deck.Diamonds {
		return pterm.LightRed(s)
	}

	return pterm.LightWhite(s)
}

func handString(cards []*deck.Card) string {
	parts := make([]string, len(cards))
	for i, card := range cards {
		parts[i] = cardString(card)
	}

	return strings.Join(parts, " ")
}

// handsPanel renders both hands of a round in a box
func handsPanel(name string, view xidach.RoundView) string {
	dealerValue := fmt.Sprintf("%d", view.DealerValue)
	if !view.HoleRevealed && len(view.DealerHand) > 1 {
		dealerValue += "+?"
	}

	playerLabel := fmt.Sprintf("%d", view.PlayerValue)
	if view.PlayerClass.IsBonus() {
		playerLabel = fmt.Sprintf("%d %s", view.PlayerValue, view.PlayerClass)
	} else if view.PlayerValue > 21 {
		playerLabel += " bust"
	}

	body := pterm.Sprintfln("Dealer  %s  (%s)", handString(view.DealerHand), dealerValue) +
		pterm.Sprintf("%-7s %s  (%s)", truncate(name, 7), handString(view.PlayerHand), playerLabel)

	return pterm.DefaultBox.
		WithTitle(pterm.LightYellow(fmt.Sprintf("|STAKE %d|", view.Stake))).
		WithTitleTopCenter().
		WithLeftPadding(2).WithRightPadding(2).
		Sprint(body)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}

	return s[:n]
}
