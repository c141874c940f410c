package room

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDealer_RemoveClient(t *testing.T) {
	pitBoss, _, _ := newTestPitBoss("", 0)
	d := NewDealer(pitBoss, testAccountID)
	c := NewClient(nil, testAccountID)
	c2 := NewClient(nil, testAccountID)

	d.AddClient(c)
	d.AddClient(c2)

	assert.False(t, d.RemoveClient(c))
	assert.True(t, d.RemoveClient(c2))
}
