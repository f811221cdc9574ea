package review

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wasteexperts/pdf-extractor/internal/extract"
)

func samplePayload(supplier string) extract.Payload {
	p := extract.Empty()
	p.Supplier = supplier
	p.SupplierFound = true
	return p
}

func TestSaveThenLoad(t *testing.T) {
	store := NewStore(time.Hour)

	p := samplePayload("GO GREEN")
	token := store.Save(p)
	require.NotEmpty(t, token)

	got, ok := store.Load(token)
	require.True(t, ok)
	assert.Equal(t, p, got)
}

func TestLoadUnknownToken(t *testing.T) {
	store := NewStore(time.Hour)

	_, ok := store.Load("nope")
	assert.False(t, ok)
}

func TestLatest(t *testing.T) {
	store := NewStore(time.Hour)

	assert.Equal(t, extract.Empty(), store.Latest(), "empty store returns the default payload")

	store.Save(samplePayload("GO GREEN"))
	store.Save(samplePayload("BIFFA WASTE SERVICES LIMITED"))

	assert.Equal(t, "BIFFA WASTE SERVICES LIMITED", store.Latest().Supplier, "last writer wins")
}

func TestTokensAreIsolated(t *testing.T) {
	store := NewStore(time.Hour)

	t1 := store.Save(samplePayload("GO GREEN"))
	t2 := store.Save(samplePayload("YORWASTE LTD"))
	require.NotEqual(t, t1, t2)

	p1, ok := store.Load(t1)
	require.True(t, ok)
	p2, ok := store.Load(t2)
	require.True(t, ok)

	assert.Equal(t, "GO GREEN", p1.Supplier)
	assert.Equal(t, "YORWASTE LTD", p2.Supplier)
}

func TestExpiry(t *testing.T) {
	store := NewStore(time.Minute)

	current := time.Now()
	store.now = func() time.Time { return current }

	token := store.Save(samplePayload("GO GREEN"))

	current = current.Add(30 * time.Second)
	_, ok := store.Load(token)
	assert.True(t, ok)

	current = current.Add(2 * time.Minute)
	_, ok = store.Load(token)
	assert.False(t, ok, "expired snapshot must be gone")
	assert.Equal(t, 0, store.Len())
	assert.Equal(t, extract.Empty(), store.Latest())
}

func TestConcurrentSaves(t *testing.T) {
	store := NewStore(time.Hour)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			token := store.Save(samplePayload("GO GREEN"))
			_, ok := store.Load(token)
			assert.True(t, ok)
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, store.Len())
}
