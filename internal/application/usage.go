package application

import (
	"sync"
	"time"

	"translatorbot/pkg/tz"
)

// UsageLedger tracks how many characters were sent to the translation
// provider today, against a daily quota. The day rolls over lazily: the first
// call on a new date (Asia/Seoul) resets the counter before checking.
//
// The check-and-increment is atomic; two concurrent calls can never both pass
// a check that would jointly exceed the quota.
type UsageLedger struct {
	mu    sync.Mutex
	quota int
	date  string
	used  int

	now func() time.Time
}

func NewUsageLedger(quota int) *UsageLedger {
	return &UsageLedger{quota: quota, now: time.Now}
}

// TryConsume records n characters of usage if they fit in today's remaining
// quota. On false, nothing was consumed.
func (l *UsageLedger) TryConsume(n int) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.rollover()
	if l.used+n > l.quota {
		return false
	}
	l.used += n
	return true
}

// Usage reports today's consumption. The date is rolled over first so a stale
// counter from yesterday is never reported.
func (l *UsageLedger) Usage() (date string, used, quota int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.rollover()
	return l.date, l.used, l.quota
}

// rollover must be called with l.mu held.
func (l *UsageLedger) rollover() {
	today := l.now().In(tz.Seoul).Format("2006-01-02")
	if today != l.date {
		l.date = today
		l.used = 0
	}
}
