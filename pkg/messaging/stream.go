package messaging

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/talentproph/talentpro/pkg/apperr"
	"github.com/talentproph/talentpro/pkg/session"
)

var (
	ErrUnknownCheckpoint = apperr.New(apperr.KindValidation, "unknown checkpoint message")
	ErrResyncRequired    = apperr.New(apperr.KindConflict, "too many messages since checkpoint, reopen the conversation")
	ErrSlowConsumer      = apperr.New(apperr.KindConflict, "stream fell behind, resume from the last received message")
)

// Stream delivers the conversation's new messages to emit until ctx is done.
//
// The subscription is taken before the replay query so nothing published in
// between is lost. With a non-nil afterID every message ordered after that
// checkpoint is replayed first; when more than the replay limit are pending
// ErrResyncRequired is returned and the client should call Open again.
// Messages reach emit once each, in the order they are received. Returns nil
// when ctx is cancelled.
func (s *service) Stream(ctx context.Context, actor session.Actor, conversationID, afterID uuid.UUID, emit func(Message) error) error {
	if _, _, err := s.participant(ctx, actor, conversationID); err != nil {
		return err
	}

	var floor *Message
	if afterID != uuid.Nil {
		m, err := s.repo.GetMessage(ctx, afterID)
		if errors.Is(err, ErrMessageNotFound) || (err == nil && m.ConversationID != conversationID) {
			return ErrUnknownCheckpoint
		}
		if err != nil {
			return err
		}
		floor = &m
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	sub, err := s.broker.Subscribe(ctx, Topic(conversationID))
	if err != nil {
		return err
	}
	defer sub.Close()
	s.obs.StreamOpened()
	defer s.obs.StreamClosed()

	thread := NewThread(s.replayLimit)
	deliver := func(m Message) (bool, error) {
		if !thread.Append(m) {
			return false, nil
		}
		return m.SenderID != actor.UserID && !m.IsRead, emit(m)
	}

	if floor != nil {
		thread.SetFloor(*floor)
		replay, err := s.repo.ListMessagesAfter(ctx, *floor, s.replayLimit+1)
		if err != nil {
			return err
		}
		if len(replay) > s.replayLimit {
			return ErrResyncRequired
		}
		unread := false
		for _, m := range replay {
			inbound, err := deliver(m)
			if err != nil {
				return err
			}
			unread = unread || inbound
		}
		if unread {
			if err := s.markRead(ctx, actor.UserID, conversationID); err != nil {
				return err
			}
		}
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case payload, ok := <-sub.C():
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return ErrSlowConsumer
			}
			var m Message
			if err := json.Unmarshal(payload, &m); err != nil {
				s.log.Warn("skip malformed event", zap.Stringer("conversation", conversationID), zap.Error(err))
				continue
			}
			if m.ConversationID != conversationID {
				continue
			}
			inbound, err := deliver(m)
			if err != nil {
				return err
			}
			if inbound {
				if err := s.markRead(ctx, actor.UserID, conversationID); err != nil {
					return err
				}
			}
		}
	}
}

func (s *service) markRead(ctx context.Context, viewerID, conversationID uuid.UUID) error {
	_, err := s.repo.MarkRead(ctx, conversationID, viewerID)
	if err != nil && ctx.Err() != nil {
		return nil
	}
	return err
}
