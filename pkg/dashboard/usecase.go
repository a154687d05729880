// Package dashboard assembles the admin overview from the other domains.
package dashboard

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/talentproph/talentpro/pkg/apperr"
	"github.com/talentproph/talentpro/pkg/billing"
	"github.com/talentproph/talentpro/pkg/profile"
	"github.com/talentproph/talentpro/pkg/session"
)

//go:generate mockgen -source=./usecase.go -destination=./mocks/usecase.mock.go -package=dashboardmocks ProfileStats,TicketCounter,RevenueReader

var ErrAdminOnly = apperr.New(apperr.KindForbidden, "only administrators can view the dashboard")

type ProfileStats interface {
	Stats(ctx context.Context) (profile.Stats, error)
}

type TicketCounter interface {
	OpenCount(ctx context.Context) (int, error)
}

type RevenueReader interface {
	Revenue(ctx context.Context) (billing.Revenue, error)
}

type Overview struct {
	Profiles    profile.Stats
	OpenTickets int
	Revenue     billing.Revenue
}

type UseCase interface {
	Overview(ctx context.Context, actor session.Actor) (Overview, error)
}

type service struct {
	profiles ProfileStats
	tickets  TicketCounter
	revenue  RevenueReader
}

func NewService(profiles ProfileStats, tickets TicketCounter, revenue RevenueReader) UseCase {
	return &service{profiles: profiles, tickets: tickets, revenue: revenue}
}

// Overview runs the three aggregate queries concurrently. The first failure
// cancels the others.
func (s *service) Overview(ctx context.Context, actor session.Actor) (Overview, error) {
	if !actor.IsAdmin() {
		return Overview{}, ErrAdminOnly
	}
	var out Overview
	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		out.Profiles, err = s.profiles.Stats(ctx)
		return err
	})
	eg.Go(func() error {
		var err error
		out.OpenTickets, err = s.tickets.OpenCount(ctx)
		return err
	})
	eg.Go(func() error {
		var err error
		out.Revenue, err = s.revenue.Revenue(ctx)
		return err
	})
	if err := eg.Wait(); err != nil {
		return Overview{}, err
	}
	return out, nil
}
