package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/wheelibin/lightgroup/internal/aggregate"
	"github.com/wheelibin/lightgroup/internal/group"
	"github.com/wheelibin/lightgroup/internal/models"
)

type MemberSource interface {
	// returns the current states of the given entities, in the order given
	MemberStates(ctx context.Context, entityIDs []string) ([]models.MemberState, error)
}

type trackedGroup struct {
	group      *group.Group
	aggregator *aggregate.LightGroupAggregator
}

type App struct {
	logger *log.Logger
	source MemberSource
	groups []trackedGroup
}

func NewApp(logger *log.Logger, lightGroups []models.LightGroup, source MemberSource) *App {
	groups := make([]trackedGroup, 0, len(lightGroups))
	for _, lg := range lightGroups {
		g := group.NewGroup(logger, lg.Name, lg.Entities, group.Options{All: lg.All, Auto: lg.Auto})
		groups = append(groups, trackedGroup{
			group:      g,
			aggregator: aggregate.NewLightGroupAggregator(logger, g, aggregate.Options{DeriveRGB: lg.DeriveRGB}),
		})
	}

	return &App{logger: logger, source: source, groups: groups}
}

// Refresh reads the latest member states from the source and hands them to each group.
func (a *App) Refresh(ctx context.Context) error {
	a.logger.Debug("App.Refresh")

	var errs []error
	for _, tg := range a.groups {
		states, err := a.source.MemberStates(ctx, tg.group.EntityIDs())
		// states read before a failure are still applied
		for _, s := range states {
			tg.group.UpdateState(s)
		}
		if err != nil {
			errs = append(errs, fmt.Errorf("error refreshing group (%s): %w", tg.group.Name(), err))
		}
	}

	return errors.Join(errs...)
}

// States returns the aggregate state of every group, in config order.
func (a *App) States() []models.AggregateState {
	states := make([]models.AggregateState, 0, len(a.groups))
	for _, tg := range a.groups {
		states = append(states, tg.aggregator.Snapshot())
	}
	return states
}

// Run refreshes every interval and reports the new states until ctx is cancelled.
func (a *App) Run(ctx context.Context, interval time.Duration, report func([]models.AggregateState)) {
	a.logger.Debug("App.Run")

	refreshTimer := time.NewTicker(interval)
	defer refreshTimer.Stop()

	a.refreshAndReport(ctx, report)

	for {
		select {
		case <-ctx.Done():
			a.logger.Info("App.Run: stop signal received")
			return

		case t := <-refreshTimer.C:
			a.logger.Debug("App.Run: refreshing member states...", "t", t)
			a.refreshAndReport(ctx, report)
		}
	}
}

func (a *App) refreshAndReport(ctx context.Context, report func([]models.AggregateState)) {
	if err := a.Refresh(ctx); err != nil {
		a.logger.Error(err)
	}
	report(a.States())
}
