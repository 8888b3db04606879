package pointsservice

import "sync"

// TournamentLocker serialises placement recomputation per tournament date
// within this process. Cross-process exclusion comes from the advisory lock
// taken inside the transaction.
type TournamentLocker struct {
	mu    sync.Mutex
	locks map[string]*keyedLock
}

type keyedLock struct {
	mu   sync.Mutex
	refs int
}

// NewTournamentLocker creates an empty locker.
func NewTournamentLocker() *TournamentLocker {
	return &TournamentLocker{locks: make(map[string]*keyedLock)}
}

// Lock blocks until the tournament is free and returns its unlock func.
func (l *TournamentLocker) Lock(tournamentDate string) (unlock func()) {
	l.mu.Lock()
	k, ok := l.locks[tournamentDate]
	if !ok {
		k = &keyedLock{}
		l.locks[tournamentDate] = k
	}
	k.refs++
	l.mu.Unlock()

	k.mu.Lock()

	var once sync.Once
	return func() {
		once.Do(func() {
			k.mu.Unlock()
			l.mu.Lock()
			k.refs--
			if k.refs == 0 {
				delete(l.locks, tournamentDate)
			}
			l.mu.Unlock()
		})
	}
}

func (l *TournamentLocker) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}
