package signal

import (
	"sync"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"
)

func TestLineage(t *testing.T) {
	l := NewLineage()
	require.Equal(t, ZeroParent, l.Parent())
	require.Equal(t, "000001", l.NextTag())
	require.Equal(t, "000002", l.NextTag())

	h := common.HexToHash("0xabc")
	l.MarkSubmitted(h)
	require.Equal(t, h.Hex(), l.Parent())
	require.Equal(t, LineageSnapshot{Counter: 2, LastSubmitted: h, Submissions: 1}, l.Snapshot())
}

func TestLineageConcurrentTags(t *testing.T) {
	l := NewLineage()
	var wg sync.WaitGroup
	tags := sync.Map{}
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, loaded := tags.LoadOrStore(l.NextTag(), struct{}{})
			require.False(t, loaded)
		}()
	}
	wg.Wait()
	require.Equal(t, uint64(50), l.Snapshot().Counter)
}
