package mux

import (
	"net/http/httptest"
	"testing"

	"github.com/bmizerany/assert"
	"github.com/sirupsen/logrus"
	"xidach-server/pkg/playable/xidach"
	"xidach-server/pkg/room"
	"xidach-server/pkg/wallet"
)

func TestHealthHandler(t *testing.T) {
	pitBoss := room.NewPitBoss(logrus.StandardLogger(), xidach.DefaultOptions(), wallet.NewMemory(), nil)
	ts := httptest.NewServer(NewMux("v1.2.3", pitBoss, nil))
	defer ts.Close()

	var expects healthResponse
	assertGet(t, ts, "/health", &expects, 200)
	assert.Equal(t, "OK", expects.Status)
	assert.Equal(t, "v1.2.3", expects.Version)
}
