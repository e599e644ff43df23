package service

import (
	"context"
	"time"

	apperrors "classboard/internal/errors"
	"classboard/internal/gateway"
	"classboard/internal/model"
)

// ItemService submits new tasks and events to the scheduling backend on
// behalf of an authenticated teacher.
type ItemService interface {
	CreateTask(ctx context.Context, sess *model.Session, title, description string, dueDate time.Time, audience model.Audience) error
	CreateEvent(ctx context.Context, sess *model.Session, title, description string, start, end time.Time, audience model.Audience) error
}

type itemService struct {
	backend gateway.API
}

// NewItemService creates a new item creation service.
func NewItemService(backend gateway.API) ItemService {
	return &itemService{backend: backend}
}

// CreateTask submits a task. Timestamps go on the wire as UTC instants.
func (s *itemService) CreateTask(ctx context.Context, sess *model.Session, title, description string, dueDate time.Time, audience model.Audience) error {
	if !sess.User.IsTeacher() {
		return apperrors.ErrTeacherOnly
	}
	return s.backend.CreateTask(ctx, sess, gateway.NewTask{
		Title:       title,
		Description: description,
		DueDate:     dueDate.UTC(),
		Audience:    audience,
	})
}

// CreateEvent submits an event. Timestamps go on the wire as UTC instants.
func (s *itemService) CreateEvent(ctx context.Context, sess *model.Session, title, description string, start, end time.Time, audience model.Audience) error {
	if !sess.User.IsTeacher() {
		return apperrors.ErrTeacherOnly
	}
	return s.backend.CreateEvent(ctx, sess, gateway.NewEvent{
		Title:       title,
		Description: description,
		StartTime:   start.UTC(),
		EndTime:     end.UTC(),
		Audience:    audience,
	})
}
