package messaging

import (
	"context"

	"github.com/google/uuid"

	"github.com/talentproph/talentpro/pkg/apperr"
	"github.com/talentproph/talentpro/pkg/profile"
)

//go:generate mockgen -source=./repository.go -destination=./mocks/repository.mock.go -package=messagingmocks Repository,ProfileReader,Observer

var (
	ErrNotFound        = apperr.New(apperr.KindNotFound, "conversation not found")
	ErrMessageNotFound = apperr.New(apperr.KindNotFound, "message not found")
	ErrLabelNotFound   = apperr.New(apperr.KindNotFound, "label not found")
	ErrLabelExists     = apperr.New(apperr.KindConflict, "a label with this name already exists")
)

type Repository interface {
	// ListForUser reads every conversation of userID on side, newest activity
	// first, joined with the counterpart profile and the job title. Employer
	// rows carry their labels.
	ListForUser(ctx context.Context, userID uuid.UUID, side Side) ([]Row, error)
	GetConversation(ctx context.Context, id uuid.UUID) (Conversation, error)
	// FindOrCreate returns the conversation for the (employer, seeker, job)
	// triple of c, inserting c when there is none.
	FindOrCreate(ctx context.Context, c Conversation) (Conversation, error)

	ListMessages(ctx context.Context, conversationID uuid.UUID) ([]Message, error)
	GetMessage(ctx context.Context, id uuid.UUID) (Message, error)
	// ListMessagesAfter returns up to limit messages ordered after the given one by (created_at, id).
	ListMessagesAfter(ctx context.Context, after Message, limit int) ([]Message, error)
	// MarkRead flags as read the unread messages not sent by viewerID.
	MarkRead(ctx context.Context, conversationID, viewerID uuid.UUID) (int64, error)
	// InsertMessage stores msg and the conversation's last-message fields in one
	// transaction. A repeated (sender, ClientID) returns the stored row and false.
	InsertMessage(ctx context.Context, msg Message) (Message, bool, error)

	// ToggleFlag flips the flag column of side with a single UPDATE and returns the new value.
	ToggleFlag(ctx context.Context, conversationID uuid.UUID, side Side, flag Flag) (bool, error)
	SetFlag(ctx context.Context, conversationID uuid.UUID, side Side, flag Flag, value bool) error

	ListLabels(ctx context.Context, employerID uuid.UUID) ([]Label, error)
	GetLabel(ctx context.Context, id uuid.UUID) (Label, error)
	CreateLabel(ctx context.Context, l Label) error
	DeleteLabel(ctx context.Context, employerID, id uuid.UUID) error
	// ToggleLabel inserts the join row when absent and deletes it otherwise.
	// It reports whether the label is now attached.
	ToggleLabel(ctx context.Context, conversationID, labelID uuid.UUID) (bool, error)
	ConversationLabels(ctx context.Context, conversationID uuid.UUID) ([]Label, error)
}

type ProfileReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (profile.Profile, error)
}

// Observer receives messaging events, typically metrics.
type Observer interface {
	MessageSent()
	StreamOpened()
	StreamClosed()
}

type noopObserver struct{}

func (noopObserver) MessageSent()  {}
func (noopObserver) StreamOpened() {}
func (noopObserver) StreamClosed() {}
