/* kv_test.go
 * Contains tests for the key-value medium under concurrent access: the
 * mirror goroutine snapshots while the admin goroutine writes.
 */

package store

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMemKV_SnapshotDuringWrites tests that Snapshot and Put from different
// goroutines do not race and every write lands
func TestMemKV_SnapshotDuringWrites(t *testing.T) {
	kv := NewMemKV()

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			require.NoError(t, kv.Put(fmt.Sprintf("key%d", i%10), i))
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			kv.Snapshot()
		}
	}()
	wg.Wait()

	snap := kv.Snapshot()
	assert.Len(t, snap, 10)
	var v int
	assert.True(t, kv.Get("key9", &v))
}

// TestMemKV_SnapshotIsACopy tests that mutating the medium after Snapshot
// leaves the returned copy untouched
func TestMemKV_SnapshotIsACopy(t *testing.T) {
	kv := NewMemKV()
	require.NoError(t, kv.Put("a", 1))

	snap := kv.Snapshot()
	require.NoError(t, kv.Delete("a"))

	assert.Contains(t, snap, "a")
	var v int
	assert.False(t, kv.Get("a", &v))
}
