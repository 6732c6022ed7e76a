package attendance

import (
	"fmt"
	"sync"
	"time"
)

// Store is what Service needs from persistence.
type Store interface {
	// TodayRecords returns the user's attendance records within day's
	// calendar range (see DayRange).
	TodayRecords(userID uint, day time.Time) ([]Record, error)
	// Insert writes a new record.
	Insert(rec *Record) error
}

// Service runs the classifier against live storage. The duplicate check and
// the insert are a check-then-act sequence, so they run under a per
// (user, subject, day) lock; two detections racing on the same key can't
// both pass the check.
type Service struct {
	store Store
	locks keyedLocks
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// Process classifies a detection for userID at now and, if it lands in a
// window and isn't a repeat, persists the record. Subjects must be passed in
// profile order; the first window match wins.
func (s *Service) Process(now time.Time, userID uint, subjects []Subject) (Decision, error) {
	sub, status, ok := matchWindow(now, subjects)
	if !ok {
		return Decision{Reason: ReasonOutsideWindow}, nil
	}

	key := fmt.Sprintf("%d/%d/%s", userID, sub.ID, now.Format("2006-01-02"))
	unlock := s.locks.acquire(key)
	defer unlock()

	today, err := s.store.TodayRecords(userID, now)
	if err != nil {
		return Decision{}, err
	}
	for _, r := range today {
		if r.SubjectID == sub.ID {
			return Decision{Subject: &sub, Reason: ReasonAlreadyRecorded}, nil
		}
	}

	rec := Record{
		UserID:    userID,
		SubjectID: sub.ID,
		Status:    status,
		CreatedAt: now,
	}
	if err := s.store.Insert(&rec); err != nil {
		return Decision{}, err
	}
	return Decision{Recorded: true, Status: status, Subject: &sub}, nil
}

// keyedLocks hands out one mutex per string key. Entries are reference
// counted and removed when the last holder releases.
type keyedLocks struct {
	mu   sync.Mutex
	held map[string]*lockEntry
}

type lockEntry struct {
	mu   sync.Mutex
	refs int
}

func (k *keyedLocks) acquire(key string) (release func()) {
	k.mu.Lock()
	if k.held == nil {
		k.held = make(map[string]*lockEntry)
	}
	e, ok := k.held[key]
	if !ok {
		e = &lockEntry{}
		k.held[key] = e
	}
	e.refs++
	k.mu.Unlock()

	e.mu.Lock()
	return func() {
		e.mu.Unlock()
		k.mu.Lock()
		e.refs--
		if e.refs == 0 {
			delete(k.held, key)
		}
		k.mu.Unlock()
	}
}
