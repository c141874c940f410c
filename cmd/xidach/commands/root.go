package commands

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/pterm/pterm"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"
	"xidach-server/internal/rng"
	"xidach-server/pkg/db"
	"xidach-server/pkg/deck"
	"xidach-server/pkg/model"
	"xidach-server/pkg/playable/xidach"
	"xidach-server/pkg/room"
	"xidach-server/pkg/wallet"
)

var (
	dbPath         string
	migrationsPath string
	seed           int64
	accountID      int64
	openingBalance int64
	verbose        bool

	session *table
)

// table is everything a command needs to play rounds for one account
type table struct {
	pitBoss *room.PitBoss
	wallet  wallet.Gateway
	gen     *rng.Seeded
	close   func()
}

func (t *table) dealer() *room.Dealer {
	return t.pitBoss.Dealer(accountID)
}

// Execute runs the command tree
func Execute() error {
	root := &cobra.Command{
		Use:           "xidach",
		Short:         "Play Xì Dách against the house from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !term.IsTerminal(int(os.Stdout.Fd())) {
				pterm.DisableStyling()
			}

			logrus.SetLevel(logrus.WarnLevel)
			if verbose {
				logrus.SetLevel(logrus.DebugLevel)
			}

			t, err := openTable(cmd.Context())
			if err != nil {
				return err
			}

			session = t
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if session != nil {
				session.close()
			}
		},
	}

	root.PersistentFlags().StringVar(&dbPath, "db", "", "sqlite file that keeps the wallet and round history (default: in memory)")
	root.PersistentFlags().StringVar(&migrationsPath, "migrations", "./sql", "path to the sql migrations, used with --db")
	root.PersistentFlags().Int64Var(&seed, "seed", 0, "seed for shuffling, 0 picks one from the clock")
	root.PersistentFlags().Int64Var(&accountID, "account", 1, "account to play as")
	root.PersistentFlags().Int64Var(&openingBalance, "balance", 1000000, "opening balance for a new account")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log engine events")

	root.AddCommand(playCmd(), simulateCmd())

	if err := root.ExecuteContext(context.Background()); err != nil {
		pterm.Error.Println(err)
		return err
	}

	return nil
}

func openTable(ctx context.Context) (*table, error) {
	t := &table{
		gen:   rng.NewSeeded(seed),
		close: func() {},
	}

	var archive room.Archive
	if dbPath == "" {
		memory := wallet.NewMemory()
		memory.Open(accountID, openingBalance)
		t.wallet = memory
	} else {
		conn, err := db.Open(db.DriverSQLite, db.SQLiteDSN(dbPath))
		if err != nil {
			return nil, err
		}
		t.close = func() { _ = conn.Close() }

		if err := db.Migrate(conn, db.DriverSQLite, migrationsPath); err != nil {
			t.close()
			return nil, err
		}

		store := model.NewStore(conn)
		if _, err := store.GetAccountByID(ctx, accountID); errors.Is(err, model.ErrAccountNotFound) {
			if _, err := store.CreateAccount(ctx, accountID, openingBalance); err != nil {
				t.close()
				return nil, err
			}
		} else if err != nil {
			t.close()
			return nil, err
		}

		t.wallet = wallet.NewSQLGateway(conn)
		archive = store
	}

	t.pitBoss = room.NewPitBoss(logrus.StandardLogger(), xidach.DefaultOptions(), t.wallet, archive)
	t.pitBoss.SetDeckFactory(func() *deck.Deck {
		return deck.NewShuffled(t.gen)
	})

	logrus.WithField("seed", t.gen.Seed()).Debug("table opened")
	return t, nil
}

// sleep pauses between dealt cards unless the delay is zero
func sleep(delay time.Duration) {
	if delay > 0 {
		time.Sleep(delay)
	}
}
