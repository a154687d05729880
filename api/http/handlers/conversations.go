package handlers

import (
	"net/http"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/talentproph/talentpro/api/http/presenter"
	"github.com/talentproph/talentpro/pkg/apperr"
	"github.com/talentproph/talentpro/pkg/messaging"
)

type ConversationHandler struct {
	useCase messaging.UseCase
}

func NewConversationHandler(useCase messaging.UseCase) *ConversationHandler {
	return &ConversationHandler{useCase: useCase}
}

type labelResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

type flagsResponse struct {
	Pinned   bool `json:"pinned"`
	Archived bool `json:"archived"`
	Spam     bool `json:"spam"`
}

type conversationViewResponse struct {
	ID              string          `json:"id"`
	CounterpartID   string          `json:"counterpartId"`
	CounterpartName string          `json:"counterpartName"`
	AvatarURL       string          `json:"avatarUrl"`
	JobID           *string         `json:"jobId"`
	JobTitle        string          `json:"jobTitle"`
	LastMessage     string          `json:"lastMessage"`
	LastActivity    time.Time       `json:"lastActivity"`
	LastFromMe      bool            `json:"lastFromMe"`
	Unread          int             `json:"unread"`
	Flags           flagsResponse   `json:"flags"`
	Labels          []labelResponse `json:"labels"`
}

type directoryResponse struct {
	Tab    string                     `json:"tab"`
	Items  []conversationViewResponse `json:"items"`
	Counts map[string]int             `json:"counts"`
	Open   *conversationViewResponse  `json:"open,omitempty"`
}

type conversationResponse struct {
	ID         string  `json:"id"`
	EmployerID string  `json:"employerId"`
	SeekerID   string  `json:"seekerId"`
	JobID      *string `json:"jobId"`
}

func nullableID(id uuid.NullUUID) *string {
	if !id.Valid {
		return nil
	}
	s := id.UUID.String()
	return &s
}

func labelResponses(items []messaging.Label) []labelResponse {
	return slice.Map(items, func(_ int, l messaging.Label) labelResponse {
		return labelResponse{ID: l.ID.String(), Name: l.Name, Color: l.Color}
	})
}

func newViewResponse(v messaging.View) conversationViewResponse {
	return conversationViewResponse{
		ID:              v.ID.String(),
		CounterpartID:   v.CounterpartID.String(),
		CounterpartName: v.CounterpartName,
		AvatarURL:       v.AvatarURL,
		JobID:           nullableID(v.JobID),
		JobTitle:        v.JobTitle,
		LastMessage:     v.LastMessage,
		LastActivity:    v.LastActivity,
		LastFromMe:      v.LastFromMe,
		Unread:          v.Unread,
		Flags:           flagsResponse{Pinned: v.Flags.Pinned, Archived: v.Flags.Archived, Spam: v.Flags.Spam},
		Labels:          labelResponses(v.Labels),
	}
}

// Directory
// @Summary  Conversation list
// @Tags     conversations
// @Produce  json
// @Security BearerAuth
// @Param    tab  query string false "inbox (default), unread, pinned, sent, archive or spam"
// @Param    open query string false "conversation to return in the open field"
// @Success  200 {object} directoryResponse
// @Router   /conversations [get]
func (h *ConversationHandler) Directory(c *fiber.Ctx) error {
	actor, err := actorOf(c)
	if err != nil {
		return presenter.Fail(c, err)
	}
	openID, err := optionalUUID(c.Query("open"), "open")
	if err != nil {
		return presenter.Fail(c, err)
	}
	tab := messaging.Tab(c.Query("tab", string(messaging.TabInbox)))
	d, err := h.useCase.Directory(c.UserContext(), actor, tab, openID.UUID)
	if err != nil {
		return presenter.Fail(c, err)
	}

	resp := directoryResponse{
		Tab:    string(d.Tab),
		Items:  slice.Map(d.Items, func(_ int, v messaging.View) conversationViewResponse { return newViewResponse(v) }),
		Counts: make(map[string]int, len(messaging.Tabs)),
	}
	for _, t := range messaging.Tabs {
		resp.Counts[string(t)] = d.Counts[t]
	}
	if d.Open != nil {
		open := newViewResponse(*d.Open)
		resp.Open = &open
	}
	return presenter.JSON(c, http.StatusOK, resp)
}

type startRequest struct {
	CounterpartID string `json:"counterpartId"`
	JobID         string `json:"jobId"`
}

// Start returns the conversation with the counterpart about the job, creating
// it when needed.
// @Summary  Start or reopen a conversation
// @Tags     conversations
// @Accept   json
// @Produce  json
// @Security BearerAuth
// @Param    input body startRequest true "counterpart and optional job"
// @Success  200 {object} conversationResponse
// @Router   /conversations [post]
func (h *ConversationHandler) Start(c *fiber.Ctx) error {
	actor, err := actorOf(c)
	if err != nil {
		return presenter.Fail(c, err)
	}
	var req startRequest
	if err := bodyParse(c, &req); err != nil {
		return presenter.Fail(c, err)
	}
	counterpart, err := uuid.Parse(req.CounterpartID)
	if err != nil {
		return presenter.Fail(c, apperr.Validation("invalid counterpartId"))
	}
	jobID, err := optionalUUID(req.JobID, "jobId")
	if err != nil {
		return presenter.Fail(c, err)
	}
	conv, err := h.useCase.Start(c.UserContext(), actor, counterpart, jobID)
	if err != nil {
		return presenter.Fail(c, err)
	}
	return presenter.JSON(c, http.StatusOK, conversationResponse{
		ID:         conv.ID.String(),
		EmployerID: conv.EmployerID.String(),
		SeekerID:   conv.SeekerID.String(),
		JobID:      nullableID(conv.JobID),
	})
}

// Messages opens the thread and marks the counterpart's messages as read.
// @Summary  Conversation messages
// @Tags     conversations
// @Produce  json
// @Security BearerAuth
// @Param    id path string true "conversation id"
// @Success  200 {array} messaging.Message
// @Failure  404 {object} presenter.ErrorResponse
// @Router   /conversations/{id}/messages [get]
func (h *ConversationHandler) Messages(c *fiber.Ctx) error {
	actor, err := actorOf(c)
	if err != nil {
		return presenter.Fail(c, err)
	}
	id, err := uuidParam(c, "id")
	if err != nil {
		return presenter.Fail(c, err)
	}
	msgs, err := h.useCase.Open(c.UserContext(), actor, id)
	if err != nil {
		return presenter.Fail(c, err)
	}
	if msgs == nil {
		msgs = []messaging.Message{}
	}
	return presenter.JSON(c, http.StatusOK, msgs)
}

type sendRequest struct {
	Content  string `json:"content"`
	ClientID string `json:"clientId"`
}

// Send
// @Summary  Send a message
// @Description A repeated clientId returns the message stored for it instead of a new one.
// @Tags     conversations
// @Accept   json
// @Produce  json
// @Security BearerAuth
// @Param    id    path string      true "conversation id"
// @Param    input body sendRequest true "message"
// @Success  201 {object} messaging.Message
// @Failure  400 {object} presenter.ErrorResponse
// @Router   /conversations/{id}/messages [post]
func (h *ConversationHandler) Send(c *fiber.Ctx) error {
	actor, err := actorOf(c)
	if err != nil {
		return presenter.Fail(c, err)
	}
	id, err := uuidParam(c, "id")
	if err != nil {
		return presenter.Fail(c, err)
	}
	var req sendRequest
	if err := bodyParse(c, &req); err != nil {
		return presenter.Fail(c, err)
	}
	m, err := h.useCase.Send(c.UserContext(), actor, id, req.Content, req.ClientID)
	if err != nil {
		return presenter.Fail(c, err)
	}
	return presenter.JSON(c, http.StatusCreated, m)
}

type flagResponse struct {
	Flag  string `json:"flag"`
	Value bool   `json:"value"`
}

// ToggleFlag flips pinned, archived or spam on the caller's side.
// @Summary  Toggle a conversation flag
// @Tags     conversations
// @Produce  json
// @Security BearerAuth
// @Param    id   path string true "conversation id"
// @Param    flag path string true "pinned, archived or spam"
// @Success  200 {object} flagResponse
// @Router   /conversations/{id}/flags/{flag} [post]
func (h *ConversationHandler) ToggleFlag(c *fiber.Ctx) error {
	actor, err := actorOf(c)
	if err != nil {
		return presenter.Fail(c, err)
	}
	id, err := uuidParam(c, "id")
	if err != nil {
		return presenter.Fail(c, err)
	}
	flag := messaging.Flag(c.Params("flag"))
	value, err := h.useCase.ToggleFlag(c.UserContext(), actor, id, flag)
	if err != nil {
		return presenter.Fail(c, err)
	}
	return presenter.JSON(c, http.StatusOK, flagResponse{Flag: string(flag), Value: value})
}

// Delete hides the conversation for the caller only.
// @Summary  Delete a conversation
// @Tags     conversations
// @Security BearerAuth
// @Param    id path string true "conversation id"
// @Success  204
// @Router   /conversations/{id} [delete]
func (h *ConversationHandler) Delete(c *fiber.Ctx) error {
	actor, err := actorOf(c)
	if err != nil {
		return presenter.Fail(c, err)
	}
	id, err := uuidParam(c, "id")
	if err != nil {
		return presenter.Fail(c, err)
	}
	if err := h.useCase.Delete(c.UserContext(), actor, id); err != nil {
		return presenter.Fail(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

// ListLabels
// @Summary  Own labels
// @Tags     labels
// @Produce  json
// @Security BearerAuth
// @Success  200 {array} labelResponse
// @Router   /labels [get]
func (h *ConversationHandler) ListLabels(c *fiber.Ctx) error {
	actor, err := actorOf(c)
	if err != nil {
		return presenter.Fail(c, err)
	}
	items, err := h.useCase.ListLabels(c.UserContext(), actor)
	if err != nil {
		return presenter.Fail(c, err)
	}
	return presenter.JSON(c, http.StatusOK, labelResponses(items))
}

type labelRequest struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// CreateLabel
// @Summary  Create a label
// @Tags     labels
// @Accept   json
// @Produce  json
// @Security BearerAuth
// @Param    input body labelRequest true "name and #rrggbb color"
// @Success  201 {object} labelResponse
// @Failure  409 {object} presenter.ErrorResponse
// @Router   /labels [post]
func (h *ConversationHandler) CreateLabel(c *fiber.Ctx) error {
	actor, err := actorOf(c)
	if err != nil {
		return presenter.Fail(c, err)
	}
	var req labelRequest
	if err := bodyParse(c, &req); err != nil {
		return presenter.Fail(c, err)
	}
	l, err := h.useCase.CreateLabel(c.UserContext(), actor, req.Name, req.Color)
	if err != nil {
		return presenter.Fail(c, err)
	}
	return presenter.JSON(c, http.StatusCreated, labelResponse{ID: l.ID.String(), Name: l.Name, Color: l.Color})
}

// DeleteLabel
// @Summary  Delete a label
// @Tags     labels
// @Security BearerAuth
// @Param    id path string true "label id"
// @Success  204
// @Router   /labels/{id} [delete]
func (h *ConversationHandler) DeleteLabel(c *fiber.Ctx) error {
	actor, err := actorOf(c)
	if err != nil {
		return presenter.Fail(c, err)
	}
	id, err := uuidParam(c, "id")
	if err != nil {
		return presenter.Fail(c, err)
	}
	if err := h.useCase.DeleteLabel(c.UserContext(), actor, id); err != nil {
		return presenter.Fail(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

// ToggleLabel attaches or detaches a label and returns the resulting set.
// @Summary  Toggle a label on a conversation
// @Tags     labels
// @Produce  json
// @Security BearerAuth
// @Param    id      path string true "conversation id"
// @Param    labelId path string true "label id"
// @Success  200 {array} labelResponse
// @Router   /conversations/{id}/labels/{labelId} [post]
func (h *ConversationHandler) ToggleLabel(c *fiber.Ctx) error {
	actor, err := actorOf(c)
	if err != nil {
		return presenter.Fail(c, err)
	}
	id, err := uuidParam(c, "id")
	if err != nil {
		return presenter.Fail(c, err)
	}
	labelID, err := uuidParam(c, "labelId")
	if err != nil {
		return presenter.Fail(c, err)
	}
	items, err := h.useCase.ToggleLabel(c.UserContext(), actor, id, labelID)
	if err != nil {
		return presenter.Fail(c, err)
	}
	return presenter.JSON(c, http.StatusOK, labelResponses(items))
}
