package clock

import (
	"sync"
	"time"
)

// Resolution точность хранимых timestamp (как у ISO-строк в исходном формате).
const Resolution = time.Millisecond

// Clock выдает строго возрастающие timestamp для createdAt/updatedAt.
//
// Работает как часы Лампорта поверх физического времени: если стенные
// часы не сдвинулись (или ушли назад) с момента последней выдачи,
// возвращается предыдущее значение + Resolution.
type Clock struct {
	last time.Time        // последнее выданное значение
	now  func() time.Time // источник физического времени
	mu   sync.Mutex
}

// New creates a clock backed by time.Now.
func New() *Clock {
	return &Clock{now: time.Now}
}

// NewWithSource creates a clock backed by now. Используется в тестах.
func NewWithSource(now func() time.Time) *Clock {
	return &Clock{now: now}
}

// Tick returns a UTC timestamp, truncated to Resolution, that is strictly
// after every timestamp previously returned or observed.
func (c *Clock) Tick() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	t := c.now().UTC().Truncate(Resolution)
	if !t.After(c.last) {
		t = c.last.Add(Resolution)
	}
	c.last = t
	return t
}

// Observe records a timestamp produced elsewhere (for example loaded from
// storage), so the next Tick is strictly after it.
// Согласно алгоритму Лампорта: last = max(last, remote).
func (c *Clock) Observe(remote time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()

	remote = remote.UTC().Truncate(Resolution)
	if remote.After(c.last) {
		c.last = remote
	}
}

// Last returns the most recent timestamp issued or observed.
func (c *Clock) Last() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.last
}
