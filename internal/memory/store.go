package memory

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

func (s *implStore) StoreShortTerm(sessionID, key string, value any, ttl time.Duration) {
	if ttl <= 0 {
		ttl = s.opts.DefaultTTL
	}
	now := s.opts.Now()

	b := s.bucket(sessionID, true)
	b.mu.Lock()
	defer b.mu.Unlock()

	b.pruneLocked(now)
	b.shortTerm = append(b.shortTerm, Entry{
		Key:       key,
		Value:     value,
		WrittenAt: now,
		ExpiresAt: now.Add(ttl),
	})
}

func (s *implStore) GetShortTerm(sessionID, key string) (any, bool) {
	b := s.bucket(sessionID, false)
	if b == nil {
		return nil, false
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.pruneLocked(s.opts.Now())
	for i := len(b.shortTerm) - 1; i >= 0; i-- {
		if b.shortTerm[i].Key == key {
			return b.shortTerm[i].Value, true
		}
	}
	return nil, false
}

func (s *implStore) ListShortTerm(sessionID string) []Entry {
	b := s.bucket(sessionID, false)
	if b == nil {
		return nil
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.pruneLocked(s.opts.Now())
	out := make([]Entry, len(b.shortTerm))
	copy(out, b.shortTerm)
	return out
}

// pruneLocked drops expired entries. Caller holds b.mu.
func (b *sessionBucket) pruneLocked(now time.Time) {
	live := b.shortTerm[:0]
	for _, e := range b.shortTerm {
		if !e.expired(now) {
			live = append(live, e)
		}
	}
	for i := len(live); i < len(b.shortTerm); i++ {
		b.shortTerm[i] = Entry{}
	}
	b.shortTerm = live
}

func (s *implStore) StoreLongTerm(entityID string, fields map[string]any) {
	s.ltMu.Lock()
	defer s.ltMu.Unlock()

	rec, ok := s.longTerm[entityID]
	if !ok {
		rec = make(map[string]any, len(fields)+1)
		s.longTerm[entityID] = rec
	}
	for k, v := range fields {
		rec[k] = v
	}
	rec[FieldUpdatedAt] = s.opts.Now()
}

func (s *implStore) GetLongTerm(entityID string) (map[string]any, bool) {
	s.ltMu.RLock()
	defer s.ltMu.RUnlock()

	rec, ok := s.longTerm[entityID]
	if !ok {
		return nil, false
	}
	return copyMap(rec), true
}

func (s *implStore) StoreContext(sessionID, contextType string, data map[string]any) {
	b := s.bucket(sessionID, true)
	b.mu.Lock()
	defer b.mu.Unlock()
	b.contexts[contextType] = copyMap(data)
}

func (s *implStore) GetContext(sessionID, contextType string) (map[string]any, bool) {
	b := s.bucket(sessionID, false)
	if b == nil {
		return nil, false
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	data, ok := b.contexts[contextType]
	if !ok {
		return nil, false
	}
	return copyMap(data), true
}

func (s *implStore) ListContext(sessionID string) map[string]map[string]any {
	out := make(map[string]map[string]any)
	b := s.bucket(sessionID, false)
	if b == nil {
		return out
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	for k, v := range b.contexts {
		out[k] = copyMap(v)
	}
	return out
}

func (s *implStore) GetRelevantContext(sessionID, _ string) map[string]any {
	entries := s.ListShortTerm(sessionID)
	if len(entries) > s.opts.RecentWindow {
		entries = entries[len(entries)-s.opts.RecentWindow:]
	}

	out := map[string]any{KeyRecentInteractions: entries}
	for k, v := range s.ListContext(sessionID) {
		out[k] = v
	}
	return out
}

func (s *implStore) SummarizeSession(sessionID string) string {
	if s.bucket(sessionID, false) == nil {
		return summaryNoSession
	}

	entries := s.ListShortTerm(sessionID)
	contexts := s.ListContext(sessionID)

	var parts []string
	if len(entries) > 0 {
		parts = append(parts, fmt.Sprintf("Recent actions: %d items stored", len(entries)))
	}
	if len(contexts) > 0 {
		names := make([]string, 0, len(contexts))
		for k := range contexts {
			names = append(names, k)
		}
		sort.Strings(names)
		parts = append(parts, "Active contexts: "+strings.Join(names, ", "))
	}
	if len(parts) == 0 {
		return summaryNoSession
	}
	return strings.Join(parts, " | ")
}

func (s *implStore) ClearSession(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
}

func copyMap(in map[string]any) map[string]any {
	out := make(map[string]any, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
