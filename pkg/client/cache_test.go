package client

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyNormalizesParams(t *testing.T) {
	a := Key("/api/products", url.Values{"search": {"kb"}, "categoryId": {"c1"}})
	b := Key("/api/products", url.Values{"categoryId": {"c1"}, "search": {"kb"}})
	assert.Equal(t, a, b, "el orden de los parámetros no afecta la clave")

	c := Key("/api/products", url.Values{"search": {"mouse"}})
	assert.NotEqual(t, a, c)

	assert.Equal(t, "/api/products", Key("/api/products", nil))
}

func TestCacheGetSet(t *testing.T) {
	cache := NewQueryCache(time.Minute)

	_, ok := cache.Get("/api/products")
	assert.False(t, ok)

	cache.Set("/api/products", []byte(`[]`))
	data, ok := cache.Get("/api/products")
	require.True(t, ok)
	assert.Equal(t, []byte(`[]`), data)
}

func TestCacheStaleness(t *testing.T) {
	cache := NewQueryCache(time.Minute)
	cache.Set("/api/products", []byte(`[]`))

	// Avanzar el reloj más allá del staleTime.
	base := time.Now()
	cache.now = func() time.Time { return base.Add(2 * time.Minute) }

	_, ok := cache.Get("/api/products")
	assert.False(t, ok, "la entrada vencida no se sirve")
}

func TestCacheInvalidateByPrefix(t *testing.T) {
	cache := NewQueryCache(time.Minute)
	cache.Set("/api/products", []byte(`a`))
	cache.Set("/api/products?search=kb", []byte(`b`))
	cache.Set("/api/products/low-stock", []byte(`c`))
	cache.Set("/api/categories", []byte(`d`))

	cache.Invalidate("/api/products")

	_, ok := cache.Get("/api/products")
	assert.False(t, ok)
	_, ok = cache.Get("/api/products?search=kb")
	assert.False(t, ok)
	_, ok = cache.Get("/api/products/low-stock")
	assert.False(t, ok)
	_, ok = cache.Get("/api/categories")
	assert.True(t, ok, "otros endpoints no se tocan")
}

func TestCacheClear(t *testing.T) {
	cache := NewQueryCache(time.Minute)
	cache.Set("/api/products", []byte(`a`))
	cache.Clear()

	_, ok := cache.Get("/api/products")
	assert.False(t, ok)
}
