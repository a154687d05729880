package handlers

import (
	"net/http"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/gofiber/fiber/v2"

	"github.com/talentproph/talentpro/api/http/presenter"
	"github.com/talentproph/talentpro/pkg/billing"
)

type BillingHandler struct {
	useCase billing.UseCase
}

func NewBillingHandler(useCase billing.UseCase) *BillingHandler {
	return &BillingHandler{useCase: useCase}
}

type planResponse struct {
	Code          string `json:"code"`
	Name          string `json:"name"`
	PriceCents    int64  `json:"priceCents"`
	Currency      string `json:"currency"`
	MaxActiveJobs int    `json:"maxActiveJobs"`
}

type subscriptionResponse struct {
	Plan      planResponse `json:"plan"`
	Status    string       `json:"status,omitempty"`
	StartedAt *time.Time   `json:"startedAt,omitempty"`
	RenewsAt  *time.Time   `json:"renewsAt,omitempty"`
}

type paymentResponse struct {
	ID          string    `json:"id"`
	EmployerID  string    `json:"employerId"`
	Plan        string    `json:"plan"`
	AmountCents int64     `json:"amountCents"`
	Currency    string    `json:"currency"`
	Status      string    `json:"status"`
	Reference   string    `json:"reference"`
	CreatedAt   time.Time `json:"createdAt"`
}

type receiptResponse struct {
	Subscription subscriptionResponse `json:"subscription"`
	Payment      *paymentResponse     `json:"payment,omitempty"`
}

func newPlanResponse(p billing.Plan) planResponse {
	return planResponse{
		Code:          string(p.Code),
		Name:          p.Name,
		PriceCents:    p.PriceCents,
		Currency:      billing.Currency,
		MaxActiveJobs: p.MaxActiveJobs,
	}
}

func newSubscriptionResponse(plan billing.Plan, sub billing.Subscription) subscriptionResponse {
	resp := subscriptionResponse{Plan: newPlanResponse(plan)}
	if !sub.StartedAt.IsZero() {
		resp.Status = string(sub.Status)
		resp.StartedAt = &sub.StartedAt
		resp.RenewsAt = &sub.RenewsAt
	}
	return resp
}

func newPaymentResponse(p billing.Payment) paymentResponse {
	return paymentResponse{
		ID:          p.ID.String(),
		EmployerID:  p.EmployerID.String(),
		Plan:        string(p.Plan),
		AmountCents: p.AmountCents,
		Currency:    p.Currency,
		Status:      string(p.Status),
		Reference:   p.Reference,
		CreatedAt:   p.CreatedAt,
	}
}

// Plans
// @Summary Plan catalogue
// @Tags    billing
// @Produce json
// @Success 200 {array} planResponse
// @Router  /billing/plans [get]
func (h *BillingHandler) Plans(c *fiber.Ctx) error {
	return presenter.JSON(c, http.StatusOK, slice.Map(h.useCase.Plans(), func(_ int, p billing.Plan) planResponse {
		return newPlanResponse(p)
	}))
}

// Current
// @Summary  Current subscription
// @Tags     billing
// @Produce  json
// @Security BearerAuth
// @Success  200 {object} subscriptionResponse
// @Router   /billing/subscription [get]
func (h *BillingHandler) Current(c *fiber.Ctx) error {
	actor, err := actorOf(c)
	if err != nil {
		return presenter.Fail(c, err)
	}
	cur, err := h.useCase.Current(c.UserContext(), actor)
	if err != nil {
		return presenter.Fail(c, err)
	}
	return presenter.JSON(c, http.StatusOK, newSubscriptionResponse(cur.Plan, cur.Subscription))
}

type cardRequest struct {
	Number   string `json:"number"`
	ExpMonth int    `json:"expMonth"`
	ExpYear  int    `json:"expYear"`
	CVC      string `json:"cvc"`
	Holder   string `json:"holder"`
}

type subscribeRequest struct {
	Plan string      `json:"plan"`
	Card cardRequest `json:"card"`
}

// Subscribe
// @Summary  Change plan
// @Description Paid plans charge the card; only brand, last four digits and expiry are kept.
// @Tags     billing
// @Accept   json
// @Produce  json
// @Security BearerAuth
// @Param    input body subscribeRequest true "plan and card"
// @Success  200 {object} receiptResponse
// @Failure  400 {object} presenter.ErrorResponse
// @Router   /billing/subscription [post]
func (h *BillingHandler) Subscribe(c *fiber.Ctx) error {
	actor, err := actorOf(c)
	if err != nil {
		return presenter.Fail(c, err)
	}
	var req subscribeRequest
	if err := bodyParse(c, &req); err != nil {
		return presenter.Fail(c, err)
	}
	r, err := h.useCase.Subscribe(c.UserContext(), actor, billing.PlanCode(req.Plan), billing.Card{
		Number:   req.Card.Number,
		ExpMonth: req.Card.ExpMonth,
		ExpYear:  req.Card.ExpYear,
		CVC:      req.Card.CVC,
		Holder:   req.Card.Holder,
	})
	if err != nil {
		return presenter.Fail(c, err)
	}
	plan, _ := billing.LookupPlan(r.Subscription.Plan)
	resp := receiptResponse{Subscription: newSubscriptionResponse(plan, r.Subscription)}
	if r.Payment != nil {
		p := newPaymentResponse(*r.Payment)
		resp.Payment = &p
	}
	return presenter.JSON(c, http.StatusOK, resp)
}

// ListPayments returns the caller's payments, or every payment for admins.
// @Summary  Payment history
// @Tags     billing
// @Produce  json
// @Security BearerAuth
// @Param    limit  query int false "page size"
// @Param    offset query int false "page offset"
// @Success  200 {array} paymentResponse
// @Router   /billing/payments [get]
func (h *BillingHandler) ListPayments(c *fiber.Ctx) error {
	actor, err := actorOf(c)
	if err != nil {
		return presenter.Fail(c, err)
	}
	limit, offset := parseLimitOffset(c)
	items, err := h.useCase.ListPayments(c.UserContext(), actor, limit, offset)
	if err != nil {
		return presenter.Fail(c, err)
	}
	return presenter.JSON(c, http.StatusOK, slice.Map(items, func(_ int, p billing.Payment) paymentResponse {
		return newPaymentResponse(p)
	}))
}
