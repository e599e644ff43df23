package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	apperrors "classboard/internal/errors"
	"classboard/internal/model"
)

const (
	headerAuthToken = "X-Auth-Token"
	headerUserID    = "X-User-Id"
)

// Client talks to the scheduling backend over HTTP. Requests are not retried;
// a failed call surfaces as an error and the caller decides what to show.
type Client struct {
	baseURL string
	http    *http.Client
}

var _ API = (*Client)(nil)

// NewClient creates a backend client for the given base URL. The timeout
// bounds every request; the backend contract itself carries none.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// Login exchanges credentials for a token and user record.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	body := map[string]string{"email": email, "password": password}
	var out LoginResult
	if err := c.do(ctx, http.MethodPost, "/auth/login", nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Register creates an account. Whether it is immediately usable depends on
// backend policy for the requested role.
func (c *Client) Register(ctx context.Context, name, email, password string, role model.Role) (*RegisterResult, error) {
	body := map[string]string{
		"name":     name,
		"email":    email,
		"password": password,
		"role":     string(role),
	}
	var out RegisterResult
	if err := c.do(ctx, http.MethodPost, "/auth/register", nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateTask submits a new task on behalf of the session's user.
func (c *Client) CreateTask(ctx context.Context, sess *model.Session, task NewTask) error {
	return c.do(ctx, http.MethodPost, "/tasks", sess, task, nil)
}

// CreateEvent submits a new event on behalf of the session's user.
func (c *Client) CreateEvent(ctx context.Context, sess *model.Session, event NewEvent) error {
	return c.do(ctx, http.MethodPost, "/events", sess, event, nil)
}

// MyTasks fetches the user's visible tasks.
func (c *Client) MyTasks(ctx context.Context, sess *model.Session) ([]model.Task, error) {
	var out []model.Task
	if err := c.do(ctx, http.MethodGet, "/my/tasks", sess, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// MyEvents fetches the user's visible events.
func (c *Client) MyEvents(ctx context.Context, sess *model.Session) ([]model.Event, error) {
	var out []model.Event
	if err := c.do(ctx, http.MethodGet, "/my/events", sess, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// MyNotifications fetches the user's notifications.
func (c *Client) MyNotifications(ctx context.Context, sess *model.Session) ([]model.Notification, error) {
	var out []model.Notification
	if err := c.do(ctx, http.MethodGet, "/my/notifications", sess, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// RunSweep triggers the backend's deadline-notification batch. The endpoint
// is unauthenticated per the contract.
func (c *Client) RunSweep(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/cron/generate-deadline-notifs", nil, nil, nil)
}

// do issues one request. A nil session sends no auth headers; a nil out
// discards the response body. Non-2xx responses decode the backend's
// {detail} into an UpstreamError.
func (c *Client) do(ctx context.Context, method, path string, sess *model.Session, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if sess != nil {
		req.Header.Set(headerAuthToken, sess.Token)
		req.Header.Set(headerUserID, sess.User.ID)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %v", apperrors.ErrBackendUnreachable, method, path, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &apperrors.UpstreamError{
			Status: resp.StatusCode,
			Detail: extractDetail(respBody, resp.StatusCode),
		}
	}

	if out != nil {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

// extractDetail pulls the human-readable message the backend attaches to
// rejections; auth endpoints guarantee it, others may not.
func extractDetail(body []byte, status int) string {
	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Detail != "" {
		return payload.Detail
	}
	return fmt.Sprintf("backend returned status %d", status)
}
