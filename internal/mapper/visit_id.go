package mapper

import (
	"fmt"
	"sync"
	"time"
)

const (
	VisitIDPrefix = "TM"
	// TM + yyMMddHHmmss + milidetik (3 digit)
	VisitIDLength = len(VisitIDPrefix) + 12 + 3
)

// VisitIDGenerator membuat idvisit berbasis waktu. Kalau dua panggilan
// jatuh di milidetik yang sama, panggilan berikutnya memakai milidetik
// setelah id terakhir, jadi id dalam satu proses tidak pernah kembar.
type VisitIDGenerator struct {
	mu   sync.Mutex
	now  func() time.Time
	last time.Time
}

func NewVisitIDGenerator(now func() time.Time) *VisitIDGenerator {
	if now == nil {
		now = time.Now
	}
	return &VisitIDGenerator{now: now}
}

func (g *VisitIDGenerator) Next() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	t := g.now().In(time.Local).Truncate(time.Millisecond)
	if !t.After(g.last) {
		t = g.last.Add(time.Millisecond)
	}
	g.last = t
	return FormatVisitID(t)
}

func FormatVisitID(t time.Time) string {
	id := fmt.Sprintf("%s%s%03d", VisitIDPrefix, t.Format("060102150405"), t.Nanosecond()/int(time.Millisecond))
	if len(id) > VisitIDLength {
		id = id[:VisitIDLength]
	}
	return id
}

var processGenerator = NewVisitIDGenerator(nil)

// ProcessVisitIDGenerator mengembalikan generator bersama satu proses,
// supaya semua pembuat idvisit berbagi urutan milidetik yang sama.
func ProcessVisitIDGenerator() *VisitIDGenerator {
	return processGenerator
}
