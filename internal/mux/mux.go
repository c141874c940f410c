package mux

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	gmux "github.com/gorilla/mux"
	"xidach-server/internal/jwt"
	"xidach-server/pkg/model"
	"xidach-server/pkg/room"
)

type ctxKey int

const (
	ctxAccountIDKey ctxKey = iota
)

// Mux handles HTTP requests
type Mux struct {
	*gmux.Router
	version string
	pitBoss *room.PitBoss
	store   *model.Store

	// store for testing purposes
	authRouter *gmux.Router
}

// NewMux returns a new HTTP mux
// The pit boss must already be on shift.
func NewMux(version string, pitBoss *room.PitBoss, store *model.Store) *Mux {
	this := &Mux{
		Router:  gmux.NewRouter(),
		version: version,
		pitBoss: pitBoss,
		store:   store,
	}

	this.authRouter = this.Router.NewRoute().Subrouter()
	this.authRouter.Use(this.authMiddleware)

	// unauthorized endpoints
	{
		r := this.Router
		r.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())
	}

	// requires bearer authorization
	{
		r := this.authRouter

		r.Methods(http.MethodGet).Path("/wallet").Handler(this.getWallet())
		r.Methods(http.MethodGet).Path("/ws").Handler(this.getWS())

		r.Methods(http.MethodGet).Path("/round").Handler(this.getRound())
		r.Methods(http.MethodPost).Path("/round").Handler(this.postRound())

		rr := r.PathPrefix("/round/{uuid:(?i)[a-f0-9]{8}(?:-[a-f0-9]{4}){3}-[a-f0-9]{12}}").Subrouter()
		rr.Methods(http.MethodGet).Path("").Handler(this.getRoundUUID())
		rr.Methods(http.MethodPost).Path("/hit").Handler(this.postRoundUUIDHit())
		rr.Methods(http.MethodPost).Path("/stand").Handler(this.postRoundUUIDStand())
		rr.Methods(http.MethodPost).Path("/reveal").Handler(this.postRoundUUIDReveal())
		rr.Methods(http.MethodPost).Path("/settle").Handler(this.postRoundUUIDSettle())
	}

	return this
}

func (m *Mux) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := r.FormValue("access_token")
		if token == "" {
			authHeader := strings.Split(r.Header.Get("Authorization"), " ")
			if len(authHeader) != 2 || strings.ToLower(authHeader[0]) != "bearer" {
				writeJSONError(w, http.StatusUnauthorized, nil)
				return
			}

			token = authHeader[1]
		}

		id, err := jwt.ValidAccountID(token)
		if err != nil {
			writeJSONError(w, http.StatusUnauthorized, nil)
			return
		}

		newCtx := context.WithValue(r.Context(), ctxAccountIDKey, id)
		w.Header().Set("Xidach-AccountID", strconv.FormatInt(id, 10))
		next.ServeHTTP(w, r.WithContext(newCtx))
	})
}

func accountID(r *http.Request) int64 {
	return r.Context().Value(ctxAccountIDKey).(int64)
}
