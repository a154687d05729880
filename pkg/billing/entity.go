package billing

import (
	"time"

	"github.com/google/uuid"
)

type PlanCode string

const (
	PlanFree       PlanCode = "free"
	PlanBasic      PlanCode = "basic"
	PlanPro        PlanCode = "pro"
	PlanEnterprise PlanCode = "enterprise"
)

const Currency = "PHP"

// Plan is a monthly employer plan. Prices are in centavos.
type Plan struct {
	Code          PlanCode
	Name          string
	PriceCents    int64
	MaxActiveJobs int
}

var catalogue = []Plan{
	{Code: PlanFree, Name: "Free", PriceCents: 0, MaxActiveJobs: 1},
	{Code: PlanBasic, Name: "Basic", PriceCents: 49900, MaxActiveJobs: 2},
	{Code: PlanPro, Name: "Pro", PriceCents: 99900, MaxActiveJobs: 3},
	{Code: PlanEnterprise, Name: "Enterprise", PriceCents: 299900, MaxActiveJobs: 10},
}

// Plans returns a copy of the plan catalogue, cheapest first.
func Plans() []Plan {
	return append([]Plan(nil), catalogue...)
}

// LookupPlan finds a plan by code.
func LookupPlan(code PlanCode) (Plan, bool) {
	for _, p := range catalogue {
		if p.Code == code {
			return p, true
		}
	}
	return Plan{}, false
}

type SubscriptionStatus string

const (
	SubscriptionActive    SubscriptionStatus = "active"
	SubscriptionCancelled SubscriptionStatus = "cancelled"
)

type Subscription struct {
	EmployerID uuid.UUID
	Plan       PlanCode
	Status     SubscriptionStatus
	StartedAt  time.Time
	RenewsAt   time.Time
}

// PaymentMethod is what is kept of a card: never the number or the CVC.
type PaymentMethod struct {
	EmployerID uuid.UUID
	Brand      string
	Last4      string
	ExpMonth   int
	ExpYear    int
	Holder     string
	UpdatedAt  time.Time
}

type PaymentStatus string

const (
	PaymentPaid     PaymentStatus = "paid"
	PaymentFailed   PaymentStatus = "failed"
	PaymentRefunded PaymentStatus = "refunded"
)

// Payment is an immutable charge record.
type Payment struct {
	ID          uuid.UUID
	EmployerID  uuid.UUID
	Plan        PlanCode
	AmountCents int64
	Currency    string
	Status      PaymentStatus
	Reference   string
	CreatedAt   time.Time
}

// Current is the employer's effective plan. Subscription is zero for employers
// who never subscribed.
type Current struct {
	Plan         Plan
	Subscription Subscription
}

type Receipt struct {
	Subscription Subscription
	Payment      *Payment
}

// Revenue aggregates paid payments.
type Revenue struct {
	TotalCents int64
	Payments   int
}
