package wallet

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemory(t *testing.T) {
	m := NewMemory()
	m.Open(1, 10000)
	testGateway(t, m)
}

func TestMemory_ConcurrentSameKey(t *testing.T) {
	m := NewMemory()
	m.Open(1, 10000)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = m.Debit(cbg, Key{RoundUUID: "round", Entry: EntryStake}, 1, 1000)
		}()
	}
	wg.Wait()

	balance, err := m.Balance(cbg, 1)
	assert.NoError(t, err)
	assert.Equal(t, int64(9000), balance)
}
