package messaging

import (
	"sort"

	"github.com/google/uuid"
)

// Thread is an ordered, duplicate-free view of one conversation's messages.
// Confirmed messages are keyed by id; a locally pending message (no id yet) is
// keyed by its ClientID and replaced when the confirmed row arrives, whether
// that is the send response or the push event. Not safe for concurrent use.
type Thread struct {
	msgs    []Message
	pending []Message
	ids     map[uuid.UUID]struct{}
	limit   int
	floor   *Message
}

// NewThread returns an empty thread. A positive limit keeps only the newest
// limit confirmed messages; anything at or before a trimmed message is then
// treated as already seen.
func NewThread(limit int) *Thread {
	return &Thread{ids: make(map[uuid.UUID]struct{}), limit: limit}
}

// SetFloor marks m and everything ordered before it as already seen.
func (t *Thread) SetFloor(m Message) {
	if t.floor == nil || t.floor.Before(m) {
		t.floor = &m
	}
}

// AddPending appends an optimistic local message. It must carry a ClientID
// that is not already pending.
func (t *Thread) AddPending(m Message) bool {
	if m.ClientID == "" || t.pendingIndex(m.ClientID, m.SenderID) >= 0 {
		return false
	}
	m.ID = uuid.Nil
	t.pending = append(t.pending, m)
	return true
}

// Append adds a confirmed message and reports whether it was new. A message
// already present, or at/below the floor, is ignored.
func (t *Thread) Append(m Message) bool {
	if _, ok := t.ids[m.ID]; ok {
		return false
	}
	if t.floor != nil && !t.floor.Before(m) {
		return false
	}
	if m.ClientID != "" {
		if i := t.pendingIndex(m.ClientID, m.SenderID); i >= 0 {
			t.pending = append(t.pending[:i], t.pending[i+1:]...)
		}
	}
	t.ids[m.ID] = struct{}{}
	i := sort.Search(len(t.msgs), func(i int) bool { return m.Before(t.msgs[i]) })
	t.msgs = append(t.msgs, Message{})
	copy(t.msgs[i+1:], t.msgs[i:])
	t.msgs[i] = m
	if t.limit > 0 && len(t.msgs) > t.limit {
		n := len(t.msgs) - t.limit
		for _, old := range t.msgs[:n] {
			delete(t.ids, old.ID)
		}
		t.SetFloor(t.msgs[n-1])
		t.msgs = append([]Message(nil), t.msgs[n:]...)
	}
	return true
}

func (t *Thread) pendingIndex(clientID string, sender uuid.UUID) int {
	for i, p := range t.pending {
		if p.ClientID == clientID && p.SenderID == sender {
			return i
		}
	}
	return -1
}

// Seen reports whether the confirmed message id is in the thread.
func (t *Thread) Seen(id uuid.UUID) bool {
	_, ok := t.ids[id]
	return ok
}

func (t *Thread) Len() int { return len(t.msgs) + len(t.pending) }

// Messages returns a copy in display order: confirmed messages by
// (CreatedAt, ID), then pending ones in the order they were added.
func (t *Thread) Messages() []Message {
	out := make([]Message, 0, t.Len())
	out = append(out, t.msgs...)
	return append(out, t.pending...)
}
