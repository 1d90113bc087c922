package memory

import (
	"sync"
	"testing"

	"fitcoach-be/pkg/store"
)

func TestMutateCreatesAndIncrements(t *testing.T) {
	repo := NewSessionRepository()

	for want := 1; want <= 3; want++ {
		session := repo.Mutate("user-1", "workout-1", func(s *store.Session) {
			s.SetCount++
		})
		if session.SetCount != want {
			t.Errorf("SetCount after mutation %d = %d, want %d", want, session.SetCount, want)
		}
	}

	session, found := repo.Get("user-1", "workout-1")
	if !found {
		t.Fatal("Get() found = false after Mutate")
	}
	if session.SetCount != 3 {
		t.Errorf("SetCount = %d, want 3", session.SetCount)
	}
	if session.UserID != "user-1" || session.WorkoutID != "workout-1" {
		t.Errorf("key fields = %s/%s, want user-1/workout-1", session.UserID, session.WorkoutID)
	}
}

func TestSessionsAreKeyedPerWorkout(t *testing.T) {
	repo := NewSessionRepository()

	repo.Mutate("user-1", "workout-1", func(s *store.Session) { s.SetCount = 5 })
	repo.Mutate("user-1", "workout-2", func(s *store.Session) { s.SetCount = 1 })

	first, _ := repo.Get("user-1", "workout-1")
	second, _ := repo.Get("user-1", "workout-2")
	if first.SetCount != 5 || second.SetCount != 1 {
		t.Errorf("SetCounts = %d/%d, want 5/1", first.SetCount, second.SetCount)
	}
}

func TestClearRemovesSession(t *testing.T) {
	repo := NewSessionRepository()

	repo.Mutate("user-1", "workout-1", func(s *store.Session) { s.SetCount = 2 })
	repo.Clear("user-1", "workout-1")

	if _, found := repo.Get("user-1", "workout-1"); found {
		t.Error("Get() found = true after Clear")
	}

	// A fresh session after Clear starts from zero.
	session := repo.Mutate("user-1", "workout-1", func(s *store.Session) { s.SetCount++ })
	if session.SetCount != 1 {
		t.Errorf("SetCount after Clear = %d, want 1", session.SetCount)
	}
}

func TestClearKeepsLockIdentity(t *testing.T) {
	repo := NewSessionRepository()
	key := store.SessionKey("user-1", "workout-1")

	before := repo.keyLock(key)
	repo.Clear("user-1", "workout-1")
	after := repo.keyLock(key)

	// A Mutate blocked across Clear must contend on the same mutex as the
	// next Mutate, or two mutations could interleave.
	if before != after {
		t.Error("keyLock() returned a different mutex after Clear")
	}
}

func TestMutateSerializesAcrossClear(t *testing.T) {
	repo := NewSessionRepository()

	const writers = 50
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if i%10 == 0 {
				repo.Clear("user-1", "workout-1")
				return
			}
			repo.Mutate("user-1", "workout-1", func(s *store.Session) {
				s.SetCount++
			})
		}(i)
	}
	wg.Wait()

	// Whatever interleaving occurred, the final count never exceeds the
	// number of increments issued.
	if session, found := repo.Get("user-1", "workout-1"); found && session.SetCount > writers {
		t.Errorf("SetCount = %d, exceeds %d increments", session.SetCount, writers)
	}
}

func TestMutateSerializesConcurrentWriters(t *testing.T) {
	repo := NewSessionRepository()

	const writers = 50
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			repo.Mutate("user-1", "workout-1", func(s *store.Session) {
				s.SetCount++
			})
		}()
	}
	wg.Wait()

	session, _ := repo.Get("user-1", "workout-1")
	if session.SetCount != writers {
		t.Errorf("SetCount = %d, want %d (lost increments)", session.SetCount, writers)
	}
}
