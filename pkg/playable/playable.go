package playable

import (
	"fmt"
	"github.com/google/uuid"
	"time"
	"xidach-server/pkg/deck"
)

// LogMessage is the format a round sends log messages to connected clients in
// If AccountID is 0, it's a general statement, otherwise the message will be sent like "{player} did X, Y, Z"
type LogMessage struct {
	UUID      string       `json:"uuid"`
	RoundUUID string       `json:"roundUuid,omitempty"`
	AccountID int64        `json:"accountId,omitempty"`
	Cards     []*deck.Card `json:"cards"`
	Message   string       `json:"message"`
	Time      time.Time    `json:"time"`
}

// Response is a container for messages sent to the client
type Response struct {
	Key     string      `json:"key"`
	Value   string      `json:"value"`
	Data    interface{} `json:"data"`
	Context string      `json:"context"`
}

// OK returns a generic success response
func OK(ctx ...string) *Response {
	res := &Response{
		Key:   "status",
		Value: "OK",
	}

	if len(ctx) == 1 {
		res.Context = ctx[0]
	}

	return res
}

// ErrorResponse returns a response describing a failed action
func ErrorResponse(err error, ctx string) *Response {
	return &Response{
		Key:     "error",
		Value:   err.Error(),
		Context: ctx,
	}
}

// PayloadIn is the format we expect from the JS client
type PayloadIn struct {
	Action string `json:"action"`
	// Subject is the round UUID for round actions
	Subject        string         `json:"subject"`
	AdditionalData AdditionalData `json:"additionalData"`
	// Context will be passed back on any outgoing message
	Context string `json:"context"`
}

// AdditionalData provides additional data in a payload
type AdditionalData map[string]interface{}

// GetString returns a string for the given key
func (a AdditionalData) GetString(key string) (string, bool) {
	s, ok := a[key].(string)
	return s, ok
}

// GetInt64 returns an integer value for the given key
func (a AdditionalData) GetInt64(key string) (int64, bool) {
	floatVal, ok := a[key].(float64)
	if !ok {
		return 0, false
	}

	return int64(floatVal), true
}

// SimpleLogMessage returns a new LogMessage
func SimpleLogMessage(accountID int64, format string, a ...interface{}) *LogMessage {
	return &LogMessage{
		UUID:      uuid.New().String(),
		AccountID: accountID,
		Message:   fmt.Sprintf(format, a...),
		Time:      time.Now(),
	}
}

// CardLogMessage returns a LogMessage that shows cards
func CardLogMessage(accountID int64, roundUUID string, cards []*deck.Card, format string, a ...interface{}) *LogMessage {
	lm := SimpleLogMessage(accountID, format, a...)
	lm.RoundUUID = roundUUID
	lm.Cards = cards
	return lm
}
