// Package idgen allocates record identifiers without coordinating with stored data.
//
// An id is "<unix-millis>-<suffix>" where the suffix is at least SuffixLen base-36
// characters of UUIDv4 randomness. The timestamp never moves backwards for a given
// Allocator, so ids from one allocator sort roughly by creation time.
package idgen

import (
	"fmt"
	"math/big"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

const SuffixLen = 12

type Allocator struct {
	mu   sync.Mutex
	last int64
	now  func() time.Time
}

func NewAllocator() *Allocator {
	return &Allocator{now: time.Now}
}

// NewAllocatorWithClock is used by tests to pin the timestamp part.
func NewAllocatorWithClock(now func() time.Time) *Allocator {
	return &Allocator{now: now}
}

func (a *Allocator) New() string {
	return fmt.Sprintf("%d-%s", a.timestamp(), randomSuffix())
}

func (a *Allocator) timestamp() int64 {
	a.mu.Lock()
	defer a.mu.Unlock()

	ts := a.now().UnixMilli()
	if ts < a.last {
		ts = a.last
	}
	a.last = ts
	return ts
}

func randomSuffix() string {
	u := uuid.New()
	s := new(big.Int).SetBytes(u[:]).Text(36)
	if len(s) < SuffixLen {
		s = strings.Repeat("0", SuffixLen-len(s)) + s
	}
	return s[len(s)-SuffixLen:]
}

var defaultAllocator = NewAllocator()

// New allocates an id from the process-wide allocator.
func New() string {
	return defaultAllocator.New()
}
