package adapters

import (
	"context"
	"github.com/gulam-moin/interactive-voice-response/application/ports/outbound"
	"github.com/gulam-moin/interactive-voice-response/domain"
	"github.com/patrickmn/go-cache"
	"hash/fnv"
	"sync"
	"time"
)

const sessionLockShards = 64

// MemorySessionStore keeps sessions in process. Entries expire after the TTL
// and are swept by the cache janitor, which bounds the growth caused by
// callers who hang up mid-flow.
//
// Read-modify-write for one call id is serialized by a lock shard picked from
// the id's hash, so unrelated calls rarely contend.
type MemorySessionStore struct {
	cache *cache.Cache
	ttl   time.Duration
	locks [sessionLockShards]sync.Mutex
}

var _ outbound.CallSessionStorePort = (*MemorySessionStore)(nil)

func NewMemorySessionStore(ttl, sweepInterval time.Duration) *MemorySessionStore {
	return &MemorySessionStore{
		cache: cache.New(ttl, sweepInterval),
		ttl:   ttl,
	}
}

func (s *MemorySessionStore) Save(_ context.Context, session domain.CallSession) error {
	mu := s.lockFor(session.CallID)
	mu.Lock()
	defer mu.Unlock()

	s.cache.Set(session.CallID, cloneSession(session), s.ttl)
	return nil
}

func (s *MemorySessionStore) Get(_ context.Context, callID string) (domain.CallSession, bool, error) {
	session, found := s.load(callID)
	return session, found, nil
}

func (s *MemorySessionStore) Update(_ context.Context, callID string, fn outbound.UpdateSessionFunc) (domain.CallSession, error) {
	mu := s.lockFor(callID)
	mu.Lock()
	defer mu.Unlock()

	session, found := s.load(callID)
	if err := fn(&session, found); err != nil {
		return domain.CallSession{}, err
	}

	s.cache.Set(callID, cloneSession(session), s.ttl)
	return session, nil
}

func (s *MemorySessionStore) Delete(_ context.Context, callID string) error {
	mu := s.lockFor(callID)
	mu.Lock()
	defer mu.Unlock()

	s.cache.Delete(callID)
	return nil
}

// Count includes expired entries the janitor has not swept yet.
func (s *MemorySessionStore) Count() int {
	return s.cache.ItemCount()
}

func (s *MemorySessionStore) load(callID string) (domain.CallSession, bool) {
	x, found := s.cache.Get(callID)
	if !found {
		return domain.CallSession{}, false
	}
	return cloneSession(x.(domain.CallSession)), true
}

func (s *MemorySessionStore) lockFor(callID string) *sync.Mutex {
	h := fnv.New32a()
	_, _ = h.Write([]byte(callID))
	return &s.locks[h.Sum32()%sessionLockShards]
}

func cloneSession(session domain.CallSession) domain.CallSession {
	digits := make([]string, len(session.CollectedDigits))
	copy(digits, session.CollectedDigits)
	session.CollectedDigits = digits
	return session
}
