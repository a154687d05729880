package messaging

import (
	"time"

	"github.com/google/uuid"
)

const (
	unknownUser   = "Unknown user"
	generalTopic  = "General inquiry"
	noMessagesYet = "No messages yet"
)

type Tab string

const (
	TabInbox   Tab = "inbox"
	TabUnread  Tab = "unread"
	TabPinned  Tab = "pinned"
	TabSent    Tab = "sent"
	TabArchive Tab = "archive"
	TabSpam    Tab = "spam"
)

var Tabs = []Tab{TabInbox, TabUnread, TabPinned, TabSent, TabArchive, TabSpam}

func (t Tab) Valid() bool {
	for _, v := range Tabs {
		if v == t {
			return true
		}
	}
	return false
}

// View is a directory entry from the viewer's side, with placeholders filled in.
type View struct {
	ID              uuid.UUID
	CounterpartID   uuid.UUID
	CounterpartName string
	AvatarURL       string
	JobID           uuid.NullUUID
	JobTitle        string
	LastMessage     string
	LastActivity    time.Time
	LastFromMe      bool
	Unread          int
	Flags           Flags
	Labels          []Label
}

// Match is the tab predicate. Deleted conversations are in no tab, spam only
// in spam, archived only in archive.
func (t Tab) Match(v View) bool {
	f := v.Flags
	if f.Deleted {
		return false
	}
	switch t {
	case TabSpam:
		return f.Spam
	case TabArchive:
		return f.Archived && !f.Spam
	}
	if f.Archived || f.Spam {
		return false
	}
	switch t {
	case TabInbox:
		return true
	case TabUnread:
		return v.Unread > 0
	case TabPinned:
		return f.Pinned
	case TabSent:
		return v.LastFromMe
	}
	return false
}

// Directory is one tab of the viewer's conversation list plus per-tab counts.
type Directory struct {
	Tab    Tab
	Items  []View
	Counts map[Tab]int
	Open   *View
}

func toView(r Row, side Side, viewer uuid.UUID) View {
	v := View{
		ID:              r.ID,
		CounterpartID:   r.CounterpartID,
		CounterpartName: orDefault(r.CounterpartName, unknownUser),
		AvatarURL:       orDefault(r.CounterpartAvatar, ""),
		JobID:           r.JobID,
		JobTitle:        orDefault(r.JobTitle, generalTopic),
		LastMessage:     r.LastMessage,
		LastActivity:    r.CreatedAt,
		LastFromMe:      r.LastSenderID.Valid && r.LastSenderID.UUID == viewer,
		Unread:          r.Unread,
		Flags:           r.FlagsOf(side),
		Labels:          r.Labels,
	}
	if v.LastMessage == "" {
		v.LastMessage = noMessagesYet
	}
	if r.LastMessageAt != nil {
		v.LastActivity = *r.LastMessageAt
	}
	if v.Labels == nil {
		v.Labels = []Label{}
	}
	return v
}

func orDefault(s *string, def string) string {
	if s == nil || *s == "" {
		return def
	}
	return *s
}

// partition keeps rows order (newest activity first, as read) and counts every tab.
func partition(views []View, tab Tab, openID uuid.UUID) Directory {
	d := Directory{Tab: tab, Items: []View{}, Counts: make(map[Tab]int, len(Tabs))}
	for i := range views {
		v := views[i]
		for _, t := range Tabs {
			if t.Match(v) {
				d.Counts[t]++
			}
		}
		if tab.Match(v) {
			d.Items = append(d.Items, v)
		}
		if openID != uuid.Nil && v.ID == openID && !v.Flags.Deleted {
			d.Open = &views[i]
		}
	}
	return d
}
