package client

import (
	"net/url"
	"sort"
	"strings"
	"sync"
	"time"
)

// QueryCache cachea respuestas GET por endpoint + parámetros normalizados.
// Una entrada sirve hasta que supera su staleTime o alguien invalida su
// prefijo; las mutaciones del Client invalidan los endpoints relacionados.
type QueryCache struct {
	mu        sync.RWMutex
	staleTime time.Duration
	entries   map[string]cacheEntry
	now       func() time.Time
}

type cacheEntry struct {
	data      []byte
	fetchedAt time.Time
}

// NewQueryCache crea la caché. staleTime cero significa que toda entrada
// está vencida al instante (caché efectivamente desactivada).
func NewQueryCache(staleTime time.Duration) *QueryCache {
	return &QueryCache{
		staleTime: staleTime,
		entries:   make(map[string]cacheEntry),
		now:       time.Now,
	}
}

// Key construye la clave normalizada: mismo endpoint y mismos parámetros en
// cualquier orden producen la misma clave.
func Key(endpoint string, params url.Values) string {
	if len(params) == 0 {
		return endpoint
	}
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var b strings.Builder
	b.WriteString(endpoint)
	b.WriteByte('?')
	for i, k := range keys {
		if i > 0 {
			b.WriteByte('&')
		}
		vals := append([]string(nil), params[k]...)
		sort.Strings(vals)
		for j, v := range vals {
			if j > 0 {
				b.WriteByte('&')
			}
			b.WriteString(url.QueryEscape(k))
			b.WriteByte('=')
			b.WriteString(url.QueryEscape(v))
		}
	}
	return b.String()
}

// Get devuelve la entrada fresca para la clave, o (nil, false) si no existe
// o ya está vencida.
func (c *QueryCache) Get(key string) ([]byte, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.now().Sub(e.fetchedAt) >= c.staleTime {
		return nil, false
	}
	return e.data, true
}

// Set guarda la respuesta para la clave.
func (c *QueryCache) Set(key string, data []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = cacheEntry{data: data, fetchedAt: c.now()}
}

// Invalidate elimina toda entrada cuya clave empiece por alguno de los
// prefijos dados (el endpoint pelado invalida también sus variantes con
// parámetros y sus subrutas).
func (c *QueryCache) Invalidate(prefixes ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for key := range c.entries {
		for _, p := range prefixes {
			if strings.HasPrefix(key, p) {
				delete(c.entries, key)
				break
			}
		}
	}
}

// Clear vacía la caché por completo.
func (c *QueryCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]cacheEntry)
}
