package bigint

import (
	"sync"

	"github.com/rs/zerolog"
)

// maxPoolSize is the number of size-class buckets kept, per spec §3.1's
// MAX_SIZE (~10). maxPoolEntries records MAX_ENTRIES (~100) but is not
// enforced: each bucket is a sync.Pool with no depth limit, and release
// never frees a descriptor because its bucket is full.
const (
	maxPoolSize    = 10
	maxPoolEntries = 100
)

// poolSizeClasses mirrors internal/bigfft/pool.go's wordSliceSizes table:
// powers of 4 starting at 64 words, extended here to cover the same
// "very large calculation" tail. acquire(n) picks the smallest class that
// is >= n; release buckets by the same class the value was last seen at.
var poolSizeClasses = [maxPoolSize]int{
	64, 256, 1024, 4096, 16384, 65536, 262144, 1048576, 4194304, 16777216,
}

func poolClassIndex(n int) int {
	for i, c := range poolSizeClasses {
		if n <= c {
			return i
		}
	}
	return maxPoolSize - 1
}

// enginePool is a size-classed freelist of dynamic backend descriptors,
// grounded directly on internal/bigfft/pool.go's wordSlicePools: bucketed
// sync.Pool-backed storage keyed by an allocation size class, so that
// repeated promotions of similarly sized values reuse a backend object
// whose internal buffer is already close to the right capacity instead of
// growing from scratch every time.
//
// Unlike the C original there is no literal thread-local storage in Go;
// sync.Pool already gives each P its own per-processor cache, which is the
// idiomatic equivalent spec §4.4 allows ("When thread-local storage is
// unavailable the pool degenerates to a direct-allocate/free pair with no
// caching; correctness is unchanged").
type enginePool struct {
	factory EngineFactory
	buckets [maxPoolSize]sync.Pool
	logger  zerolog.Logger
}

func newEnginePool(factory EngineFactory) *enginePool {
	p := &enginePool{factory: factory, logger: zerolog.Nop()}
	for i := range p.buckets {
		p.buckets[i] = sync.Pool{}
	}
	return p
}

// SetLogger installs a logger used to emit Debug-level pool diagnostics
// (miss/exhaustion events). The default is zerolog.Nop(), matching
// internal/fibonacci/threshold/manager.go's opt-in diagnostics pattern.
func (p *enginePool) SetLogger(l zerolog.Logger) { p.logger = l }

// pkgLogger backs the promotion/demotion diagnostics in variant.go, the
// same opt-in-by-default shape as the pool's own logger.
var pkgLogger = zerolog.Nop()

// SetLogger installs a logger used process-wide for Debug-level diagnostics
// on promotion, demotion, and pool hit/miss/exhaustion events. The default
// is zerolog.Nop(), matching internal/fibonacci/threshold/manager.go's
// opt-in diagnostics pattern: callers that don't ask for it pay nothing.
func SetLogger(l zerolog.Logger) {
	pkgLogger = l
	defaultPool.SetLogger(l)
}

// acquire returns an Engine hinted to need roughly n limbs of capacity. A
// freshly-acquired Engine's value is unspecified and must be overwritten
// by the caller before use (spec §4.4).
func (p *enginePool) acquire(n int) Engine {
	idx := poolClassIndex(n)
	if v := p.buckets[idx].Get(); v != nil {
		p.logger.Debug().Int("class", poolSizeClasses[idx]).Msg("bigint: pool hit")
		statPoolHits.add(1)
		return v.(Engine)
	}
	p.logger.Debug().Int("class", poolSizeClasses[idx]).Msg("bigint: pool miss, allocating")
	statPoolMisses.add(1)
	return p.factory()
}

// release returns e to the pool, bucketed by the size class matching its
// current bit length, so that a later acquire for a similarly sized value
// finds it. A nil Engine is ignored.
func (p *enginePool) release(e Engine) {
	if e == nil {
		return
	}
	n := (e.BitLen() + bitsPerLimb - 1) / bitsPerLimb
	idx := poolClassIndex(n)
	e.Reset()
	p.buckets[idx].Put(e)
}

var defaultPool = newEnginePool(func() Engine { return currentEngineFactory() })
