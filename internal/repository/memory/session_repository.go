package memory

import (
	"sync"
	"time"

	"fitcoach-be/pkg/store"

	"github.com/patrickmn/go-cache"
)

// SessionRepository keeps coach logging sessions in memory with TTL expiry.
// Mutations go through Mutate, which serializes writers per session key so
// two concurrent set logs cannot read the same pre-increment SetCount.
type SessionRepository struct {
	cache *cache.Cache

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewSessionRepository() *SessionRepository {
	// Sessions expire after 6 hours of inactivity and expired entries are
	// purged every 10 minutes, so abandoned workouts do not accumulate.
	c := cache.New(6*time.Hour, 10*time.Minute)
	return &SessionRepository{
		cache: c,
		locks: make(map[string]*sync.Mutex),
	}
}

func (r *SessionRepository) Get(userID, workoutID string) (*store.Session, bool) {
	if x, found := r.cache.Get(store.SessionKey(userID, workoutID)); found {
		return x.(*store.Session), true
	}
	return nil, false
}

func (r *SessionRepository) Save(session *store.Session) {
	r.cache.Set(store.SessionKey(session.UserID, session.WorkoutID), session, cache.DefaultExpiration)
}

// Mutate loads (or implicitly creates) the session for the key, applies fn
// under the per-key lock and stores the result. fn sees a stable snapshot:
// no other mutation for the same key can interleave.
func (r *SessionRepository) Mutate(userID, workoutID string, fn func(*store.Session)) *store.Session {
	lock := r.keyLock(store.SessionKey(userID, workoutID))
	lock.Lock()
	defer lock.Unlock()

	session, found := r.Get(userID, workoutID)
	if !found {
		session = &store.Session{
			UserID:    userID,
			WorkoutID: workoutID,
		}
	}

	fn(session)
	r.Save(session)
	return session
}

// Clear is the only deletion path for a session. The per-key lock entry is
// kept: a Mutate blocked on it would otherwise proceed on the orphaned mutex
// while the next Mutate allocates a fresh one, and the two would interleave.
func (r *SessionRepository) Clear(userID, workoutID string) {
	key := store.SessionKey(userID, workoutID)

	lock := r.keyLock(key)
	lock.Lock()
	defer lock.Unlock()

	r.cache.Delete(key)
}

func (r *SessionRepository) keyLock(key string) *sync.Mutex {
	r.mu.Lock()
	defer r.mu.Unlock()

	lock, ok := r.locks[key]
	if !ok {
		lock = &sync.Mutex{}
		r.locks[key] = lock
	}
	return lock
}
