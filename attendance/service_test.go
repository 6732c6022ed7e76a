package attendance

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memStore struct {
	mu   sync.Mutex
	recs []Record
}

func (m *memStore) TodayRecords(userID uint, day time.Time) ([]Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	start, end := DayRange(day)
	var out []Record
	for _, r := range m.recs {
		if r.UserID == userID && !r.CreatedAt.Before(start) && !r.CreatedAt.After(end) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *memStore) Insert(rec *Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec.ID = uint(len(m.recs) + 1)
	m.recs = append(m.recs, *rec)
	return nil
}

func TestServiceRecordsOncePerDay(t *testing.T) {
	store := &memStore{}
	svc := NewService(store)
	now := time.Date(2026, 8, 31, 9, 15, 0, 0, time.Local) // Monday
	subjects := []Subject{{ID: 1, SubjectCode: "MATH101", Days: "MWF", Time: "9:00 AM - 10:00 AM"}}

	d, err := svc.Process(now, 5, subjects)
	require.NoError(t, err)
	require.True(t, d.Recorded)
	assert.Equal(t, StatusLate, d.Status)

	d, err = svc.Process(now.Add(10*time.Minute), 5, subjects)
	require.NoError(t, err)
	assert.False(t, d.Recorded)
	assert.Equal(t, ReasonAlreadyRecorded, d.Reason)

	assert.Len(t, store.recs, 1)
}

func TestServiceOutsideWindowWritesNothing(t *testing.T) {
	store := &memStore{}
	svc := NewService(store)
	now := time.Date(2026, 8, 31, 6, 0, 0, 0, time.Local)

	d, err := svc.Process(now, 5, []Subject{{ID: 1, Days: "M", Time: "9:00 AM - 10:00 AM"}})
	require.NoError(t, err)
	assert.False(t, d.Recorded)
	assert.Equal(t, ReasonOutsideWindow, d.Reason)
	assert.Empty(t, store.recs)
}

func TestServiceSerializesConcurrentDetections(t *testing.T) {
	store := &memStore{}
	svc := NewService(store)
	now := time.Date(2026, 8, 31, 9, 15, 0, 0, time.Local)
	subjects := []Subject{{ID: 1, SubjectCode: "MATH101", Days: "MWF", Time: "9:00 AM - 10:00 AM"}}

	var wg sync.WaitGroup
	recorded := make(chan bool, 20)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			d, err := svc.Process(now, 5, subjects)
			assert.NoError(t, err)
			recorded <- d.Recorded
		}()
	}
	wg.Wait()
	close(recorded)

	wins := 0
	for ok := range recorded {
		if ok {
			wins++
		}
	}
	assert.Equal(t, 1, wins, "exactly one detection may insert")
	assert.Len(t, store.recs, 1)
}

func TestServiceDistinctUsersDoNotBlock(t *testing.T) {
	store := &memStore{}
	svc := NewService(store)
	now := time.Date(2026, 8, 31, 9, 15, 0, 0, time.Local)
	subjects := []Subject{{ID: 1, SubjectCode: "MATH101", Days: "MWF", Time: "9:00 AM - 10:00 AM"}}

	for uid := uint(1); uid <= 3; uid++ {
		d, err := svc.Process(now, uid, subjects)
		require.NoError(t, err)
		assert.True(t, d.Recorded)
	}
	assert.Len(t, store.recs, 3)
}
