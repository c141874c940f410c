package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"golang.org/x/term"
	"xidach-server/internal/util"
	"xidach-server/pkg/playable/xidach"
	"xidach-server/pkg/room"
)

const (
	choiceHit   = "Hit"
	choiceStand = "Stand"
	choiceQuit  = "Quit"
)

func playCmd() *cobra.Command {
	var dealDelay time.Duration
	var name string

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play rounds interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !term.IsTerminal(int(os.Stdin.Fd())) {
				return errors.New("play needs an interactive terminal, try simulate instead")
			}

			if name == "" {
				name = util.GetRandomName(session.gen)
			}

			session.pitBoss.SetPresenter(newTablePresenter(name, dealDelay, os.Stdout))
			pterm.DefaultSection.Printfln("Welcome to the table, %s", name)
			return play(cmd.Context(), session, name)
		},
	}

	cmd.Flags().DurationVar(&dealDelay, "deal-delay", 400*time.Millisecond, "pause between dealt cards")
	cmd.Flags().StringVar(&name, "name", "", "name shown at the table (default: a random nickname)")
	return cmd
}

func play(ctx context.Context, t *table, name string) error {
	dealer := t.dealer()
	options := t.pitBoss.Options()

	for {
		balance, err := t.wallet.Balance(ctx, accountID)
		if err != nil {
			return err
		}

		pterm.Info.Printfln("Balance: %d", balance)

		stake, ok, err := chooseStake(options, balance)
		if err != nil || !ok {
			return err
		}

		status, err := dealer.CommitRound(ctx, stake)
		if err != nil {
			pterm.Error.Println(err)
			continue
		}

		status, err = playerTurn(ctx, dealer, name, status)
		if err != nil {
			return err
		}

		if status, err = dealer.RevealHoleCard(status.UUID); err != nil {
			return err
		}

		pterm.Println(handsPanel(name, status.RoundView))

		if !status.Settled {
			pterm.Warning.Println("The wallet did not settle the round, retrying")
			if status, err = dealer.RetrySettlement(ctx, status.UUID); err != nil {
				return err
			}
		}

		pterm.Info.Printfln("Net: %+d", status.Outcome.Net())
	}
}

// playerTurn asks for hit or stand until the round resolves
func playerTurn(ctx context.Context, dealer *room.Dealer, name string, status *room.RoundStatus) (*room.RoundStatus, error) {
	for status.State == xidach.RoundStatePlayerTurn {
		pterm.Println(handsPanel(name, status.RoundView))

		choices := []string{choiceHit, choiceStand}
		if xidach.IsBust(status.PlayerHand) {
			pterm.Warning.Println("Bust! Stand to see the dealer's hand.")
			choices = []string{choiceStand}
		}

		choice, err := pterm.DefaultInteractiveSelect.WithOptions(choices).Show("Your move")
		if err != nil {
			return nil, err
		}

		switch choice {
		case choiceHit:
			status, err = dealer.Hit(ctx, status.UUID)
		default:
			status, err = dealer.Stand(ctx, status.UUID)
		}

		// the round is resolved even when the wallet fails, settlement is retried later
		if err != nil && !errors.Is(err, room.ErrSettlementFailed) {
			return nil, err
		}
	}

	return status, nil
}

// chooseStake offers the denominations the balance can cover
// ok is false if the player quit or cannot afford any stake.
func chooseStake(options xidach.Options, balance int64) (stake int64, ok bool, err error) {
	choices := affordableStakes(options, balance)
	if len(choices) == 0 {
		pterm.Warning.Println("Your balance cannot cover the smallest stake")
		return 0, false, nil
	}

	labels := make([]string, 0, len(choices)+1)
	for _, choice := range choices {
		labels = append(labels, strconv.FormatInt(choice, 10))
	}
	labels = append(labels, choiceQuit)

	answer, err := pterm.DefaultInteractiveSelect.WithOptions(labels).Show("Stake")
	if err != nil {
		return 0, false, err
	}

	if answer == choiceQuit {
		return 0, false, nil
	}

	stake, err = strconv.ParseInt(answer, 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("invalid stake %q: %w", answer, err)
	}

	return stake, true, nil
}

func affordableStakes(options xidach.Options, balance int64) []int64 {
	stakes := make([]int64, 0, len(options.Denominations))
	for _, d := range options.Denominations {
		if xidach.RequiredBalance(d) <= balance {
			stakes = append(stakes, d)
		}
	}

	return stakes
}
