package messaging

import (
	"time"

	"github.com/google/uuid"
)

// Side is the participant half of a conversation. Each side keeps its own
// pinned/archived/spam/deleted flags.
type Side string

const (
	SideEmployer Side = "employer"
	SideSeeker   Side = "seeker"
)

type Flag string

const (
	FlagPinned   Flag = "pinned"
	FlagArchived Flag = "archived"
	FlagSpam     Flag = "spam"
	FlagDeleted  Flag = "deleted"
)

// Toggleable reports whether f can be flipped by ToggleFlag. Deleting goes
// through Delete.
func (f Flag) Toggleable() bool {
	return f == FlagPinned || f == FlagArchived || f == FlagSpam
}

type Flags struct {
	Pinned   bool
	Archived bool
	Spam     bool
	Deleted  bool
}

// Conversation links one employer and one seeker, optionally about one job.
type Conversation struct {
	ID            uuid.UUID
	EmployerID    uuid.UUID
	SeekerID      uuid.UUID
	JobID         uuid.NullUUID
	LastMessage   string
	LastMessageAt *time.Time
	LastSenderID  uuid.NullUUID
	Employer      Flags
	Seeker        Flags
	CreatedAt     time.Time
}

// SideOf returns the side userID takes in c.
func (c Conversation) SideOf(userID uuid.UUID) (Side, bool) {
	switch userID {
	case c.EmployerID:
		return SideEmployer, true
	case c.SeekerID:
		return SideSeeker, true
	}
	return "", false
}

func (c Conversation) FlagsOf(side Side) Flags {
	if side == SideEmployer {
		return c.Employer
	}
	return c.Seeker
}

// Message is an append-only chat line. It doubles as the push payload, hence
// the JSON tags. ClientID is the sender's correlation id for resends.
type Message struct {
	ID             uuid.UUID `json:"id"`
	ConversationID uuid.UUID `json:"conversationId"`
	SenderID       uuid.UUID `json:"senderId"`
	Content        string    `json:"content"`
	IsRead         bool      `json:"isRead"`
	ClientID       string    `json:"clientId,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

// Before orders messages by (CreatedAt, ID).
func (m Message) Before(o Message) bool {
	if !m.CreatedAt.Equal(o.CreatedAt) {
		return m.CreatedAt.Before(o.CreatedAt)
	}
	for i := range m.ID {
		if m.ID[i] != o.ID[i] {
			return m.ID[i] < o.ID[i]
		}
	}
	return false
}

// Label is an employer-owned tag for conversations.
type Label struct {
	ID         uuid.UUID
	EmployerID uuid.UUID
	Name       string
	Color      string
	CreatedAt  time.Time
}

// Row is one directory entry as read from storage: the conversation joined with
// the counterpart profile and job title. Joined fields are nil when the
// referenced row is gone.
type Row struct {
	Conversation
	CounterpartID     uuid.UUID
	CounterpartName   *string
	CounterpartAvatar *string
	JobTitle          *string
	Unread            int
	Labels            []Label
}
