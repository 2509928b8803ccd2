package stores

import (
	"sync"
)

// vars ...
var (
	_ Storage = (*Wrap)(nil)

	stoOnce sync.Once
	stoW    *Wrap
)

// Storage aggregates the member stores.
type Storage interface {
	History() HistoryStore
}

// Wrap implements Storage
type Wrap struct {
	rc RedisClient

	historyStore *historyStore
}

// NewWithRedis return new instance of Wrap
func NewWithRedis(rc RedisClient) *Wrap {
	w := &Wrap{
		rc: rc,
	}

	w.historyStore = newHistoryStore(NewKV(rc))

	// more member stores
	return w
}

// Sgt start and return a singleton instance of Storage
func Sgt() *Wrap {
	stoOnce.Do(func() {
		stoW = NewWithRedis(SgtRC())
	})
	return stoW
}

func (w *Wrap) History() HistoryStore { return w.historyStore }
