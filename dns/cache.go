package dns

import (
	"context"
	"log/slog"
	"net"
	"sync"
	"time"
)

type cacheKey struct {
	Type string
	Name string
}

func (k cacheKey) String() string {
	return k.Type + " " + k.Name
}

type cacheEntry struct {
	result    any
	err       error
	timestamp time.Time
}

// CachedResolver caches answers of another Resolver to not hammer the
// nameservers when many messages share the same domains. Not-found results
// are cached as well, temporary failures are not.
//
// It is safe for concurrent use.
type CachedResolver struct {
	resolver Resolver
	ttl      time.Duration
	logger   *slog.Logger
	now      func() time.Time

	mutex sync.RWMutex
	cache map[cacheKey]cacheEntry
}

var _ Resolver = (*CachedResolver)(nil)

// NewCachedResolver returns a resolver caching lookups of resolver for ttl.
func NewCachedResolver(resolver Resolver, ttl time.Duration, logger *slog.Logger) *CachedResolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &CachedResolver{
		resolver: resolver,
		ttl:      ttl,
		logger:   logger,
		now:      time.Now,
		cache:    map[cacheKey]cacheEntry{},
	}
}

func (r *CachedResolver) get(key cacheKey) (cacheEntry, bool) {
	r.mutex.RLock()
	entry, ok := r.cache[key]
	r.mutex.RUnlock()
	if !ok {
		return entry, false
	}
	if r.now().Sub(entry.timestamp) > r.ttl {
		r.logger.Debug("deleting stale dns cache entry",
			slog.String("query", key.String()),
			slog.Time("stored", entry.timestamp),
		)
		r.mutex.Lock()
		// A concurrent put may have refreshed the entry.
		if cur, ok := r.cache[key]; ok && cur.timestamp.Equal(entry.timestamp) {
			delete(r.cache, key)
		}
		r.mutex.Unlock()
		return cacheEntry{}, false
	}
	return entry, true
}

func (r *CachedResolver) put(key cacheKey, result any, err error) {
	if err != nil && !IsNotFound(err) {
		return
	}
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.cache[key] = cacheEntry{
		result:    result,
		err:       err,
		timestamp: r.now(),
	}
}

// cached returns the cached result for key, or performs and caches fn.
func cached[T any](ctx context.Context, r *CachedResolver, key cacheKey, fn func(context.Context, string) (Result[T], error)) (Result[T], error) {
	if entry, ok := r.get(key); ok {
		return entry.result.(Result[T]), entry.err
	}
	result, err := fn(ctx, key.Name)
	r.put(key, result, err)
	return result, err
}

// LookupTXT retrieves TXT records, from cache if possible.
func (r *CachedResolver) LookupTXT(ctx context.Context, name string) (Result[string], error) {
	return cached(ctx, r, cacheKey{"txt", ensureFQDN(name)}, r.resolver.LookupTXT)
}

// LookupA retrieves A records, from cache if possible.
func (r *CachedResolver) LookupA(ctx context.Context, name string) (Result[net.IP], error) {
	return cached(ctx, r, cacheKey{"a", ensureFQDN(name)}, r.resolver.LookupA)
}

// LookupAAAA retrieves AAAA records, from cache if possible.
func (r *CachedResolver) LookupAAAA(ctx context.Context, name string) (Result[net.IP], error) {
	return cached(ctx, r, cacheKey{"aaaa", ensureFQDN(name)}, r.resolver.LookupAAAA)
}

// LookupMX retrieves MX records, from cache if possible.
func (r *CachedResolver) LookupMX(ctx context.Context, name string) (Result[*net.MX], error) {
	return cached(ctx, r, cacheKey{"mx", ensureFQDN(name)}, r.resolver.LookupMX)
}

// Len returns the number of cached entries, including stale ones.
func (r *CachedResolver) Len() int {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	return len(r.cache)
}
