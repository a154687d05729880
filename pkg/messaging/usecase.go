package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/talentproph/talentpro/pkg/apperr"
	"github.com/talentproph/talentpro/pkg/realtime"
	"github.com/talentproph/talentpro/pkg/session"
)

const (
	maxMessageLength = 5000
	maxClientID      = 64
	maxLabelName     = 40
	defaultColor     = "#64748b"
)

var (
	ErrEmptyMessage = apperr.New(apperr.KindValidation, "message cannot be empty")
	ErrEmployerOnly = apperr.New(apperr.KindForbidden, "only employers can manage labels")
	ErrNoInbox      = apperr.New(apperr.KindForbidden, "only employers and job seekers have conversations")
	ErrSameRole     = apperr.New(apperr.KindValidation, "conversations link one employer and one job seeker")
)

var colorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Topic is the broker topic carrying new messages of a conversation.
func Topic(conversationID uuid.UUID) string {
	return "conversation:" + conversationID.String()
}

type UseCase interface {
	Directory(ctx context.Context, actor session.Actor, tab Tab, openID uuid.UUID) (Directory, error)
	Start(ctx context.Context, actor session.Actor, counterpartID uuid.UUID, jobID uuid.NullUUID) (Conversation, error)

	Open(ctx context.Context, actor session.Actor, conversationID uuid.UUID) ([]Message, error)
	Send(ctx context.Context, actor session.Actor, conversationID uuid.UUID, content, clientID string) (Message, error)
	Stream(ctx context.Context, actor session.Actor, conversationID, afterID uuid.UUID, emit func(Message) error) error

	ToggleFlag(ctx context.Context, actor session.Actor, conversationID uuid.UUID, flag Flag) (bool, error)
	Delete(ctx context.Context, actor session.Actor, conversationID uuid.UUID) error

	ListLabels(ctx context.Context, actor session.Actor) ([]Label, error)
	CreateLabel(ctx context.Context, actor session.Actor, name, color string) (Label, error)
	DeleteLabel(ctx context.Context, actor session.Actor, id uuid.UUID) error
	ToggleLabel(ctx context.Context, actor session.Actor, conversationID, labelID uuid.UUID) ([]Label, error)
}

type service struct {
	repo        Repository
	profiles    ProfileReader
	broker      realtime.Broker
	obs         Observer
	log         *zap.Logger
	replayLimit int
	now         func() time.Time
}

func NewService(repo Repository, profiles ProfileReader, broker realtime.Broker, obs Observer, log *zap.Logger, replayLimit int) UseCase {
	if obs == nil {
		obs = noopObserver{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	if replayLimit <= 0 {
		replayLimit = 200
	}
	return &service{
		repo:        repo,
		profiles:    profiles,
		broker:      broker,
		obs:         obs,
		log:         log,
		replayLimit: replayLimit,
		now:         time.Now,
	}
}

func sideOf(actor session.Actor) (Side, error) {
	switch actor.Role {
	case session.RoleEmployer:
		return SideEmployer, nil
	case session.RoleSeeker:
		return SideSeeker, nil
	}
	return "", ErrNoInbox
}

func (s *service) Directory(ctx context.Context, actor session.Actor, tab Tab, openID uuid.UUID) (Directory, error) {
	side, err := sideOf(actor)
	if err != nil {
		return Directory{}, err
	}
	if tab == "" {
		tab = TabInbox
	}
	if !tab.Valid() {
		return Directory{}, apperr.Validation(fmt.Sprintf("unknown tab %q", tab))
	}
	rows, err := s.repo.ListForUser(ctx, actor.UserID, side)
	if err != nil {
		return Directory{}, err
	}
	views := make([]View, 0, len(rows))
	for _, r := range rows {
		views = append(views, toView(r, side, actor.UserID))
	}
	return partition(views, tab, openID), nil
}

// Start returns the conversation between the actor and counterpartID about
// jobID, creating it on first contact. A conversation the actor deleted
// comes back into the directory.
func (s *service) Start(ctx context.Context, actor session.Actor, counterpartID uuid.UUID, jobID uuid.NullUUID) (Conversation, error) {
	side, err := sideOf(actor)
	if err != nil {
		return Conversation{}, err
	}
	other, err := s.profiles.GetByID(ctx, counterpartID)
	if err != nil {
		return Conversation{}, err
	}
	c := Conversation{ID: uuid.New(), JobID: jobID, CreatedAt: s.now().UTC()}
	switch {
	case side == SideEmployer && other.Role == session.RoleSeeker:
		c.EmployerID, c.SeekerID = actor.UserID, other.ID
	case side == SideSeeker && other.Role == session.RoleEmployer:
		c.EmployerID, c.SeekerID = other.ID, actor.UserID
	default:
		return Conversation{}, ErrSameRole
	}

	c, err = s.repo.FindOrCreate(ctx, c)
	if err != nil {
		return Conversation{}, err
	}
	if c.FlagsOf(side).Deleted {
		if err := s.repo.SetFlag(ctx, c.ID, side, FlagDeleted, false); err != nil {
			return Conversation{}, err
		}
		if side == SideEmployer {
			c.Employer.Deleted = false
		} else {
			c.Seeker.Deleted = false
		}
	}
	return c, nil
}

// participant loads the conversation and the actor's side in it. Outsiders get
// ErrNotFound so ids of other people's conversations are not confirmed.
func (s *service) participant(ctx context.Context, actor session.Actor, id uuid.UUID) (Conversation, Side, error) {
	c, err := s.repo.GetConversation(ctx, id)
	if err != nil {
		return Conversation{}, "", err
	}
	side, ok := c.SideOf(actor.UserID)
	if !ok {
		return Conversation{}, "", ErrNotFound
	}
	return c, side, nil
}

// Open returns the whole thread in (created_at, id) order and marks the
// counterpart's messages read.
func (s *service) Open(ctx context.Context, actor session.Actor, conversationID uuid.UUID) ([]Message, error) {
	if _, _, err := s.participant(ctx, actor, conversationID); err != nil {
		return nil, err
	}
	msgs, err := s.repo.ListMessages(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	if _, err := s.repo.MarkRead(ctx, conversationID, actor.UserID); err != nil {
		return nil, err
	}
	for i := range msgs {
		if msgs[i].SenderID != actor.UserID {
			msgs[i].IsRead = true
		}
	}
	return msgs, nil
}

func (s *service) Send(ctx context.Context, actor session.Actor, conversationID uuid.UUID, content, clientID string) (Message, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return Message{}, ErrEmptyMessage
	}
	if utf8.RuneCountInString(content) > maxMessageLength {
		return Message{}, apperr.Validation(fmt.Sprintf("message must be at most %d characters", maxMessageLength))
	}
	clientID = strings.TrimSpace(clientID)
	if len(clientID) > maxClientID {
		return Message{}, apperr.Validation(fmt.Sprintf("client id must be at most %d bytes", maxClientID))
	}
	if _, _, err := s.participant(ctx, actor, conversationID); err != nil {
		return Message{}, err
	}

	m := Message{
		ID:             uuid.New(),
		ConversationID: conversationID,
		SenderID:       actor.UserID,
		Content:        content,
		ClientID:       clientID,
		CreatedAt:      s.now().UTC(),
	}
	stored, created, err := s.repo.InsertMessage(ctx, m)
	if err != nil {
		return Message{}, err
	}
	if created {
		s.obs.MessageSent()
	}

	// A resend publishes again; subscribers drop ids they already hold.
	payload, err := json.Marshal(stored)
	if err != nil {
		return Message{}, err
	}
	if err := s.broker.Publish(ctx, Topic(conversationID), payload); err != nil {
		s.log.Warn("publish message",
			zap.Stringer("conversation", conversationID),
			zap.Stringer("message", stored.ID),
			zap.Error(err))
	}
	return stored, nil
}

func (s *service) ToggleFlag(ctx context.Context, actor session.Actor, conversationID uuid.UUID, flag Flag) (bool, error) {
	if !flag.Toggleable() {
		return false, apperr.Validation(fmt.Sprintf("flag %q cannot be toggled", flag))
	}
	_, side, err := s.participant(ctx, actor, conversationID)
	if err != nil {
		return false, err
	}
	return s.repo.ToggleFlag(ctx, conversationID, side, flag)
}

// Delete hides the conversation from the actor's directory. The counterpart
// keeps it.
func (s *service) Delete(ctx context.Context, actor session.Actor, conversationID uuid.UUID) error {
	_, side, err := s.participant(ctx, actor, conversationID)
	if err != nil {
		return err
	}
	return s.repo.SetFlag(ctx, conversationID, side, FlagDeleted, true)
}

func (s *service) ListLabels(ctx context.Context, actor session.Actor) ([]Label, error) {
	if !actor.IsEmployer() {
		return nil, ErrEmployerOnly
	}
	return s.repo.ListLabels(ctx, actor.UserID)
}

func (s *service) CreateLabel(ctx context.Context, actor session.Actor, name, color string) (Label, error) {
	if !actor.IsEmployer() {
		return Label{}, ErrEmployerOnly
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return Label{}, apperr.Validation("label name is required")
	}
	if utf8.RuneCountInString(name) > maxLabelName {
		return Label{}, apperr.Validation(fmt.Sprintf("label name must be at most %d characters", maxLabelName))
	}
	color = strings.TrimSpace(color)
	if color == "" {
		color = defaultColor
	}
	if !colorPattern.MatchString(color) {
		return Label{}, apperr.Validation("color must look like #1a2b3c")
	}
	l := Label{
		ID:         uuid.New(),
		EmployerID: actor.UserID,
		Name:       name,
		Color:      strings.ToLower(color),
		CreatedAt:  s.now().UTC(),
	}
	if err := s.repo.CreateLabel(ctx, l); err != nil {
		return Label{}, err
	}
	return l, nil
}

func (s *service) DeleteLabel(ctx context.Context, actor session.Actor, id uuid.UUID) error {
	if !actor.IsEmployer() {
		return ErrEmployerOnly
	}
	return s.repo.DeleteLabel(ctx, actor.UserID, id)
}

// ToggleLabel attaches or detaches one of the actor's labels and returns the
// conversation's resulting label set.
func (s *service) ToggleLabel(ctx context.Context, actor session.Actor, conversationID, labelID uuid.UUID) ([]Label, error) {
	if !actor.IsEmployer() {
		return nil, ErrEmployerOnly
	}
	if _, _, err := s.participant(ctx, actor, conversationID); err != nil {
		return nil, err
	}
	l, err := s.repo.GetLabel(ctx, labelID)
	if err != nil {
		return nil, err
	}
	if l.EmployerID != actor.UserID {
		return nil, ErrLabelNotFound
	}
	if _, err := s.repo.ToggleLabel(ctx, conversationID, labelID); err != nil {
		return nil, err
	}
	return s.repo.ConversationLabels(ctx, conversationID)
}
