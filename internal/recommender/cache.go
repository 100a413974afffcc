package recommender

import (
	"container/list"
	"sync"
	"time"

	"github.com/prefeitura-rio/app-recomendacao/internal/models"
)

// ResultStore é o contrato do cache de resultados. A implementação padrão é
// em memória; um key-value store externo pode substituí-la atrás desta
// interface. Erros de escrita degradam para no-op no motor (a chamada já
// tem um resultado válido a retornar).
type ResultStore interface {
	Get(fingerprint string) (models.RankedList, bool, error)
	Set(fingerprint string, result models.RankedList) error
}

// ResultCache guarda listas de recomendação em memória, indexadas por
// fingerprint, com TTL e evicção LRU. Seguro para leitura/escrita
// concorrente; escritas concorrentes no mesmo fingerprint seguem
// last-write-wins.
type ResultCache struct {
	mu      sync.RWMutex
	entries map[string]*list.Element
	lru     *list.List // frente = mais recente
	ttl     time.Duration
	maxSize int
}

type cacheEntry struct {
	fingerprint string
	result      models.RankedList
	createdAt   time.Time
}

// NewResultCache cria um novo cache de resultados
func NewResultCache(ttl time.Duration, maxSize int) *ResultCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if maxSize <= 0 {
		maxSize = 500
	}
	return &ResultCache{
		entries: make(map[string]*list.Element),
		lru:     list.New(),
		ttl:     ttl,
		maxSize: maxSize,
	}
}

// Get busca um resultado no cache. Entradas expiradas contam como miss e
// são evictadas preguiçosamente aqui.
func (c *ResultCache) Get(fingerprint string) (models.RankedList, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.entries[fingerprint]
	if !ok {
		return nil, false, nil
	}

	entry := elem.Value.(*cacheEntry)
	if time.Since(entry.createdAt) >= c.ttl {
		c.lru.Remove(elem)
		delete(c.entries, fingerprint)
		return nil, false, nil
	}

	c.lru.MoveToFront(elem)
	// Cópia: o chamador nunca compartilha a lista guardada
	return entry.result.Clone(), true, nil
}

// Set armazena um resultado. Quando o cache está cheio, a entrada menos
// recentemente usada é evictada primeiro.
func (c *ResultCache) Set(fingerprint string, result models.RankedList) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.entries[fingerprint]; ok {
		entry := elem.Value.(*cacheEntry)
		entry.result = result.Clone()
		entry.createdAt = time.Now()
		c.lru.MoveToFront(elem)
		return nil
	}

	for len(c.entries) >= c.maxSize {
		oldest := c.lru.Back()
		if oldest == nil {
			break
		}
		c.lru.Remove(oldest)
		delete(c.entries, oldest.Value.(*cacheEntry).fingerprint)
	}

	c.entries[fingerprint] = c.lru.PushFront(&cacheEntry{
		fingerprint: fingerprint,
		result:      result.Clone(),
		createdAt:   time.Now(),
	})
	return nil
}

// Clear limpa todo o cache
func (c *ResultCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*list.Element)
	c.lru.Init()
}

// Stats retorna o tamanho atual e quantas entradas já expiraram
func (c *ResultCache) Stats() (size int, expired int) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	size = len(c.entries)
	now := time.Now()
	for _, elem := range c.entries {
		if now.Sub(elem.Value.(*cacheEntry).createdAt) >= c.ttl {
			expired++
		}
	}
	return
}
