package mux

import (
	"context"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"xidach-server/pkg/room"
)

type postRoundPayload struct {
	Stake int64 `json:"stake"`
}

func (m *Mux) postRound() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var pp postRoundPayload
		if !decodeRequest(w, r, &pp) {
			return
		}

		status, err := m.pitBoss.CommitRound(r.Context(), accountID(r), pp.Stake)
		if err != nil {
			writeRoundError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, status)
	}
}

func (m *Mux) getRound() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		offset, limit, err := parsePaginationOptions(r)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		rounds, err := m.store.GetRoundsByAccount(r.Context(), accountID(r), offset, limit)
		if err != nil {
			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		writeJSON(w, http.StatusOK, rounds)
	}
}

// getRoundUUID returns the live round, or the archived record once the account has moved on
func (m *Mux) getRoundUUID() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uuid := mux.Vars(r)["uuid"]
		status, err := m.pitBoss.Dealer(accountID(r)).Round(uuid)
		if err == nil {
			writeJSON(w, http.StatusOK, status)
			return
		}

		if !errors.Is(err, room.ErrRoundNotFound) {
			writeRoundError(w, err)
			return
		}

		record, err := m.store.GetRoundByUUID(r.Context(), accountID(r), uuid)
		if err != nil {
			writeRoundError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, record)
	}
}

type roundAction func(ctx context.Context, dealer *room.Dealer, uuid string) (*room.RoundStatus, error)

func (m *Mux) roundActionHandler(action roundAction) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dealer := m.pitBoss.Dealer(accountID(r))
		status, err := action(r.Context(), dealer, mux.Vars(r)["uuid"])
		if err != nil {
			writeRoundError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, status)
	}
}

func (m *Mux) postRoundUUIDHit() http.HandlerFunc {
	return m.roundActionHandler(func(ctx context.Context, dealer *room.Dealer, uuid string) (*room.RoundStatus, error) {
		return dealer.Hit(ctx, uuid)
	})
}

func (m *Mux) postRoundUUIDStand() http.HandlerFunc {
	return m.roundActionHandler(func(ctx context.Context, dealer *room.Dealer, uuid string) (*room.RoundStatus, error) {
		return dealer.Stand(ctx, uuid)
	})
}

func (m *Mux) postRoundUUIDReveal() http.HandlerFunc {
	return m.roundActionHandler(func(_ context.Context, dealer *room.Dealer, uuid string) (*room.RoundStatus, error) {
		return dealer.RevealHoleCard(uuid)
	})
}

func (m *Mux) postRoundUUIDSettle() http.HandlerFunc {
	return m.roundActionHandler(func(ctx context.Context, dealer *room.Dealer, uuid string) (*room.RoundStatus, error) {
		return dealer.RetrySettlement(ctx, uuid)
	})
}
