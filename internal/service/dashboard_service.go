package service

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"classboard/internal/calendar"
	"classboard/internal/gateway"
	"classboard/internal/model"
)

// CalendarEntry is a calendar item decorated with its overdue state at the
// time the dashboard was assembled.
type CalendarEntry struct {
	calendar.Item
	Overdue bool `json:"overdue"`
}

// CalendarGroup is one month of the agenda.
type CalendarGroup struct {
	Key   calendar.MonthKey `json:"key"`
	Label string            `json:"label"`
	Items []CalendarEntry   `json:"items"`
}

// Dashboard is the composed view the client renders: the raw collections for
// the lists view plus the month-grouped calendar.
type Dashboard struct {
	Tasks         []model.Task         `json:"tasks"`
	Events        []model.Event        `json:"events"`
	Notifications []model.Notification `json:"notifications"`
	Calendar      []CalendarGroup      `json:"calendar"`
}

// DashboardService fetches the user's collections and builds the dashboard.
type DashboardService interface {
	Load(ctx context.Context, sess *model.Session) (*Dashboard, error)
	RunSweep(ctx context.Context, sess *model.Session) (*Dashboard, error)
}

type dashboardService struct {
	backend gateway.API
	now     func() time.Time
}

// NewDashboardService creates a new dashboard service.
func NewDashboardService(backend gateway.API) DashboardService {
	return &dashboardService{
		backend: backend,
		now:     time.Now,
	}
}

// Load issues the three collection fetches concurrently and joins them. Any
// failure fails the whole load: the caller never sees tasks without their
// notifications having been fetched too, and keeps its previous view.
func (s *dashboardService) Load(ctx context.Context, sess *model.Session) (*Dashboard, error) {
	var (
		tasks  []model.Task
		events []model.Event
		notifs []model.Notification
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		tasks, err = s.backend.MyTasks(ctx, sess)
		return err
	})
	g.Go(func() error {
		var err error
		events, err = s.backend.MyEvents(ctx, sess)
		return err
	})
	g.Go(func() error {
		var err error
		notifs, err = s.backend.MyNotifications(ctx, sess)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &Dashboard{
		Tasks:         tasks,
		Events:        events,
		Notifications: notifs,
		Calendar:      s.buildCalendar(tasks, events),
	}, nil
}

// RunSweep triggers the backend's deadline-notification batch, then reloads
// so freshly generated notifications appear immediately.
func (s *dashboardService) RunSweep(ctx context.Context, sess *model.Session) (*Dashboard, error) {
	if err := s.backend.RunSweep(ctx); err != nil {
		return nil, err
	}
	return s.Load(ctx, sess)
}

// buildCalendar groups the collections by month and stamps each item's
// overdue state against the current clock.
func (s *dashboardService) buildCalendar(tasks []model.Task, events []model.Event) []CalendarGroup {
	now := s.now()
	groups := calendar.Build(tasks, events)

	out := make([]CalendarGroup, 0, len(groups))
	for _, g := range groups {
		entries := make([]CalendarEntry, 0, len(g.Items))
		for _, it := range g.Items {
			entries = append(entries, CalendarEntry{
				Item:    it,
				Overdue: calendar.IsOverdue(it, now),
			})
		}
		out = append(out, CalendarGroup{Key: g.Key, Label: g.Label, Items: entries})
	}
	return out
}
