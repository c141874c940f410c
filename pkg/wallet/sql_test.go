package wallet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"xidach-server/pkg/db/dbtest"
)

func TestSQLGateway(t *testing.T) {
	conn := dbtest.Open(t)
	dbtest.CreateAccount(t, conn, 1, 10000)

	testGateway(t, NewSQLGateway(conn))
}

func TestSQLGateway_Ledger(t *testing.T) {
	a := assert.New(t)
	conn := dbtest.Open(t)
	dbtest.CreateAccount(t, conn, 1, 10000)
	g := NewSQLGateway(conn)

	_, err := g.Debit(cbg, Key{RoundUUID: "round-1", Entry: EntryStake}, 1, 1000)
	a.NoError(err)
	_, err = g.Debit(cbg, Key{RoundUUID: "round-1", Entry: EntryStake}, 1, 1000)
	a.NoError(err)
	_, err = g.Debit(cbg, Key{RoundUUID: "round-1", Entry: EntryPenalty}, 1, 1000)
	a.NoError(err)

	rows, err := conn.Query(`SELECT entry, amount, balance_after FROM wallet_transactions ORDER BY id`)
	if !a.NoError(err) {
		return
	}
	defer rows.Close()

	type ledgerRow struct {
		entry        string
		amount       int64
		balanceAfter int64
	}

	var ledger []ledgerRow
	for rows.Next() {
		var r ledgerRow
		a.NoError(rows.Scan(&r.entry, &r.amount, &r.balanceAfter))
		ledger = append(ledger, r)
	}

	a.Equal([]ledgerRow{
		{"stake", -1000, 9000},
		{"penalty", -1000, 8000},
	}, ledger)
}
