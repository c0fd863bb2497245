package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/taskease/internal/client/models"
	"golang.org/x/sync/errgroup"
)

// UpcomingLimit is how many open tasks the dashboard lists.
const UpcomingLimit = 5

type Dashboard struct {
	Summary  models.TaskSummary
	Upcoming []models.Task
}

type DashboardService interface {
	Load(ctx context.Context) (*Dashboard, error)
}

type dashboardService struct {
	api TaskAPI
}

func NewDashboardService(api TaskAPI) DashboardService {
	return &dashboardService{api: api}
}

// Load fetches the task summary and the nearest open deadlines concurrently.
func (s *dashboardService) Load(ctx context.Context) (*Dashboard, error) {
	var (
		d     Dashboard
		tasks []models.Task
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		sum, err := s.api.TaskSummary(ctx)
		if err != nil {
			return fmt.Errorf("task summary: %w", err)
		}
		d.Summary = *sum
		return nil
	})
	g.Go(func() error {
		var err error
		tasks, err = s.api.ListTasks(ctx, models.TaskQuery{SortBy: models.SortByDeadline, SortOrder: models.SortOrderAsc})
		if err != nil {
			return fmt.Errorf("upcoming tasks: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, t := range tasks {
		if t.Status == models.TaskStatusDone {
			continue
		}
		d.Upcoming = append(d.Upcoming, t)
		if len(d.Upcoming) == UpcomingLimit {
			break
		}
	}
	return &d, nil
}
