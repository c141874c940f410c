package commands

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"xidach-server/pkg/playable/xidach"
	"xidach-server/pkg/room"
	"xidach-server/pkg/wallet"
)

func simulateCmd() *cobra.Command {
	var rounds int
	var standOn int
	var stake int64

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Play many rounds with a fixed strategy and report the outcomes",
		RunE: func(cmd *cobra.Command, args []string) error {
			if rounds <= 0 {
				return errors.New("rounds must be positive")
			}

			pterm.Info.Printfln("Simulating %d rounds, standing on %d, seed %d", rounds, standOn, session.gen.Seed())

			result, err := simulate(cmd.Context(), session.dealer(), stake, rounds, thresholdStrategy(standOn))
			if err != nil {
				return err
			}

			return pterm.DefaultTable.WithHasHeader().WithData(result.tableData()).Render()
		},
	}

	cmd.Flags().IntVarP(&rounds, "rounds", "n", 1000, "number of rounds to play")
	cmd.Flags().IntVar(&standOn, "stand-on", 16, "stand once the hand is worth at least this much")
	cmd.Flags().Int64Var(&stake, "stake", 1000, "stake for every round")
	return cmd
}

// strategy returns true if the player should hit
type strategy func(view xidach.RoundView) bool

// thresholdStrategy hits until the hand is worth standOn
func thresholdStrategy(standOn int) strategy {
	return func(view xidach.RoundView) bool {
		return view.PlayerValue < standOn
	}
}

type simulation struct {
	rounds   int
	outcomes map[xidach.OutcomeKind]int
	net      int64
	// stoppedEarly is true when the balance could no longer cover the stake
	stoppedEarly bool
}

func simulate(ctx context.Context, dealer *room.Dealer, stake int64, rounds int, hit strategy) (*simulation, error) {
	result := &simulation{outcomes: make(map[xidach.OutcomeKind]int)}

	for i := 0; i < rounds; i++ {
		status, err := dealer.CommitRound(ctx, stake)
		if errors.Is(err, wallet.ErrInsufficientFunds) {
			result.stoppedEarly = true
			break
		} else if err != nil {
			return nil, err
		}

		for status.State == xidach.RoundStatePlayerTurn {
			if !xidach.IsBust(status.PlayerHand) && hit(status.RoundView) {
				status, err = dealer.Hit(ctx, status.UUID)
			} else {
				status, err = dealer.Stand(ctx, status.UUID)
			}

			if err != nil {
				return nil, err
			}
		}

		if !status.Settled {
			return nil, fmt.Errorf("round %s was not settled", status.UUID)
		}

		result.rounds++
		result.outcomes[status.Outcome.Kind]++
		result.net += status.Outcome.Net()
	}

	return result, nil
}

func (s *simulation) tableData() pterm.TableData {
	kinds := make([]string, 0, len(s.outcomes))
	for kind := range s.outcomes {
		kinds = append(kinds, string(kind))
	}
	sort.Strings(kinds)

	data := pterm.TableData{{"Outcome", "Rounds", "Share"}}
	for _, kind := range kinds {
		count := s.outcomes[xidach.OutcomeKind(kind)]
		share := 100 * float64(count) / float64(s.rounds)
		data = append(data, []string{kind, fmt.Sprintf("%d", count), fmt.Sprintf("%.1f%%", share)})
	}

	total := fmt.Sprintf("net %+d", s.net)
	if s.stoppedEarly {
		total += " (out of funds)"
	}
	data = append(data, []string{"total", fmt.Sprintf("%d", s.rounds), total})

	return data
}
