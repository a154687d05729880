package handlers

import (
	"context"
	"errors"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/talentproph/talentpro/api/http/presenter"
	"github.com/talentproph/talentpro/pkg/apperr"
	"github.com/talentproph/talentpro/pkg/messaging"
	"github.com/talentproph/talentpro/pkg/security/jwt"
	"github.com/talentproph/talentpro/pkg/session"
)

// streamEvent is one frame pushed to the client. Error frames end the stream;
// Code tells the client whether to reopen the thread or resume from its last
// received message id.
type streamEvent struct {
	Type    string             `json:"type"`
	Message *messaging.Message `json:"message,omitempty"`
	Error   string             `json:"error,omitempty"`
	Code    string             `json:"code,omitempty"`
}

// RequireUpgrade rejects plain HTTP requests to a websocket route.
func RequireUpgrade(c *fiber.Ctx) error {
	if !websocket.IsWebSocketUpgrade(c) {
		return presenter.Error(c, fiber.StatusUpgradeRequired, "websocket upgrade required")
	}
	return c.Next()
}

// Stream
// @Summary  Live conversation messages (websocket)
// @Description Upgrade to a websocket. Pass after=<message id> to resume; the token may be sent as access_token.
// @Tags     conversations
// @Security BearerAuth
// @Param    id           path  string true  "conversation id"
// @Param    after        query string false "last received message id"
// @Param    access_token query string false "JWT when headers cannot be set"
// @Success  101
// @Failure  426 {object} presenter.ErrorResponse
// @Router   /conversations/{id}/stream [get]
func (h *ConversationHandler) Stream(conn *websocket.Conn) {
	log := zap.L().With(zap.String("conversation", conn.Params("id")))

	actor, ok := conn.Locals(jwt.LocalActor).(session.Actor)
	if !ok {
		h.closeWith(conn, log, errNoSession)
		return
	}
	convID, err := uuid.Parse(conn.Params("id"))
	if err != nil {
		h.closeWith(conn, log, apperr.Validation("invalid id"))
		return
	}
	after, err := optionalUUID(conn.Query("after"), "after")
	if err != nil {
		h.closeWith(conn, log, err)
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := watchClose(conn, cancel)
	// The pooled conn is reused once the handler returns, so the reader must
	// be gone by then.
	defer func() {
		_ = conn.Close()
		<-done
	}()

	err = h.useCase.Stream(ctx, actor, convID, after.UUID, func(m messaging.Message) error {
		return conn.WriteJSON(streamEvent{Type: "message", Message: &m})
	})
	if err != nil && ctx.Err() == nil {
		h.closeWith(conn, log, err)
		return
	}
	_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
}

type frameReader interface {
	ReadMessage() (messageType int, p []byte, err error)
}

// watchClose reads and discards client frames until the connection fails or
// is closed, then calls cancel. The returned channel is closed once the
// reader has stopped touching r.
func watchClose(r frameReader, cancel context.CancelFunc) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		defer cancel()
		for {
			if _, _, err := r.ReadMessage(); err != nil {
				return
			}
		}
	}()
	return done
}

func (h *ConversationHandler) closeWith(conn *websocket.Conn, log *zap.Logger, err error) {
	code, closeCode := "error", websocket.ClosePolicyViolation
	switch {
	case errors.Is(err, messaging.ErrResyncRequired):
		code, closeCode = "resync_required", websocket.CloseNormalClosure
	case errors.Is(err, messaging.ErrSlowConsumer):
		code, closeCode = "slow_consumer", websocket.CloseTryAgainLater
	case apperr.KindOf(err) == apperr.KindInternal:
		log.Error("conversation stream failed", zap.Error(err))
		closeCode = websocket.CloseInternalServerErr
	}
	_ = conn.WriteJSON(streamEvent{Type: "error", Error: apperr.Message(err, "internal server error"), Code: code})
	_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(closeCode, code))
}
