package bridge

import (
	"sync"

	"github.com/0xPolygon/lockbridge/log"
)

type subscriber struct {
	id uint64
	ch chan *Event
}

// feed delivers committed events to in-process subscribers. A subscriber that
// doesn't keep up loses events and must catch up with Events.
type feed struct {
	mu     sync.Mutex
	logger *log.Logger
	nextID uint64
	subs   []subscriber
}

func (f *feed) subscribe(buffer int) (<-chan *Event, func()) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	sub := subscriber{id: f.nextID, ch: make(chan *Event, buffer)}
	f.subs = append(f.subs, sub)
	return sub.ch, func() { f.unsubscribe(sub.id) }
}

func (f *feed) unsubscribe(id uint64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, sub := range f.subs {
		if sub.id == id {
			close(sub.ch)
			f.subs = append(f.subs[:i], f.subs[i+1:]...)
			return
		}
	}
}

func (f *feed) publish(evt *Event) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, sub := range f.subs {
		select {
		case sub.ch <- evt:
		default:
			f.logger.Warnf("subscriber %d is full, dropping event %d", sub.id, evt.ID)
		}
	}
}
