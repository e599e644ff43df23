// Package gateway is the HTTP client for the remote scheduling backend. All
// authoritative state (accounts, tasks, events, notifications) lives there;
// this service only ever reads whole collections and submits writes.
package gateway

import (
	"context"
	"time"

	"classboard/internal/model"
)

// LoginResult is the backend's response to a successful credential exchange.
type LoginResult struct {
	Token string     `json:"token"`
	User  model.User `json:"user"`
}

// RegisterResult distinguishes an immediately usable account from one held
// for admin verification (backend policy, typically for teacher accounts).
type RegisterResult struct {
	RequiresAdminVerification bool `json:"requires_admin_verification"`
}

// NewTask is the creation payload for POST /tasks.
type NewTask struct {
	Title       string         `json:"title"`
	Description string         `json:"description"`
	DueDate     time.Time      `json:"due_date"`
	Audience    model.Audience `json:"audience"`
}

// NewEvent is the creation payload for POST /events.
type NewEvent struct {
	Title       string         `json:"title"`
	Description string         `json:"description"`
	StartTime   time.Time      `json:"start_time"`
	EndTime     time.Time      `json:"end_time"`
	Audience    model.Audience `json:"audience"`
}

// API is the scheduling backend contract as consumed by this service.
type API interface {
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	Register(ctx context.Context, name, email, password string, role model.Role) (*RegisterResult, error)
	CreateTask(ctx context.Context, sess *model.Session, task NewTask) error
	CreateEvent(ctx context.Context, sess *model.Session, event NewEvent) error
	MyTasks(ctx context.Context, sess *model.Session) ([]model.Task, error)
	MyEvents(ctx context.Context, sess *model.Session) ([]model.Event, error)
	MyNotifications(ctx context.Context, sess *model.Session) ([]model.Notification, error)
	RunSweep(ctx context.Context) error
}
