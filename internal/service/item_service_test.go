package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	apperrors "classboard/internal/errors"
	"classboard/internal/gateway"
	"classboard/internal/model"
)

func studentSession() *model.Session {
	return &model.Session{
		Token: "opaque-token",
		User:  model.User{ID: "u2", Name: "Sam", Email: "sam@example.com", Role: model.RoleStudent},
	}
}

func teacherSession() *model.Session {
	return &model.Session{Token: "opaque-token", User: teacherUser()}
}

func TestItemService_CreateTask(t *testing.T) {
	// Local-zone input must reach the wire as a UTC instant.
	local := time.Date(2024, time.March, 1, 12, 0, 0, 0, time.FixedZone("UTC+2", 2*3600))

	mockBackend := new(MockBackend)
	mockBackend.On("CreateTask", mock.Anything, mock.Anything, mock.MatchedBy(func(task gateway.NewTask) bool {
		return task.Title == "Essay" &&
			task.DueDate.Equal(local) &&
			task.DueDate.Location() == time.UTC
	})).Return(nil)

	svc := NewItemService(mockBackend)
	err := svc.CreateTask(context.Background(), teacherSession(), "Essay", "Write it", local, model.AudienceAllStudents)

	assert.NoError(t, err)
	mockBackend.AssertExpectations(t)
}

func TestItemService_CreateEvent(t *testing.T) {
	start := time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)
	end := start.Add(4 * time.Hour)

	mockBackend := new(MockBackend)
	mockBackend.On("CreateEvent", mock.Anything, mock.Anything, gateway.NewEvent{
		Title:       "Field trip",
		Description: "Museum",
		StartTime:   start,
		EndTime:     end,
		Audience:    model.AudienceAllStudents,
	}).Return(nil)

	svc := NewItemService(mockBackend)
	err := svc.CreateEvent(context.Background(), teacherSession(), "Field trip", "Museum", start, end, model.AudienceAllStudents)

	assert.NoError(t, err)
	mockBackend.AssertExpectations(t)
}

func TestItemService_StudentsCannotCreate(t *testing.T) {
	mockBackend := new(MockBackend)
	svc := NewItemService(mockBackend)
	sess := studentSession()
	now := time.Now()

	err := svc.CreateTask(context.Background(), sess, "Essay", "", now, model.AudienceAllStudents)
	assert.ErrorIs(t, err, apperrors.ErrTeacherOnly)

	err = svc.CreateEvent(context.Background(), sess, "Trip", "", now, now.Add(time.Hour), model.AudienceAllStudents)
	assert.ErrorIs(t, err, apperrors.ErrTeacherOnly)

	// The backend must not even be attempted.
	mockBackend.AssertNotCalled(t, "CreateTask", mock.Anything, mock.Anything, mock.Anything)
	mockBackend.AssertNotCalled(t, "CreateEvent", mock.Anything, mock.Anything, mock.Anything)
}
