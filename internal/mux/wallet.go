package mux

import "net/http"

type walletResponse struct {
	AccountID int64 `json:"accountId"`
	Balance   int64 `json:"balance"`
}

func (m *Mux) getWallet() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := accountID(r)
		balance, err := m.pitBoss.Wallet().Balance(r.Context(), id)
		if err != nil {
			writeRoundError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, walletResponse{
			AccountID: id,
			Balance:   balance,
		})
	}
}
