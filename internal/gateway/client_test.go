package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "classboard/internal/errors"
	"classboard/internal/model"
)

func testSession() *model.Session {
	return &model.Session{
		Token: "opaque-token",
		User:  model.User{ID: "u1", Name: "Ada", Email: "ada@example.com", Role: model.RoleTeacher},
	}
}

func TestClient_Login(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/login", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "ada@example.com", body["email"])
		assert.Equal(t, "secret", body["password"])

		json.NewEncoder(w).Encode(map[string]interface{}{
			"token": "opaque-token",
			"user":  map[string]string{"id": "u1", "name": "Ada", "email": "ada@example.com", "role": "teacher"},
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second)
	res, err := client.Login(context.Background(), "ada@example.com", "secret")

	require.NoError(t, err)
	assert.Equal(t, "opaque-token", res.Token)
	assert.Equal(t, model.RoleTeacher, res.User.Role)
}

func TestClient_Login_RejectionSurfacesDetail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"detail": "invalid credentials"})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second)
	_, err := client.Login(context.Background(), "ada@example.com", "wrong")

	var upstream *apperrors.UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Equal(t, http.StatusUnauthorized, upstream.Status)
	assert.Equal(t, "invalid credentials", upstream.Detail)
}

func TestClient_Register(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/register", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "teacher", body["role"])

		json.NewEncoder(w).Encode(map[string]bool{"requires_admin_verification": true})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second)
	res, err := client.Register(context.Background(), "Ada", "ada@example.com", "secret", model.RoleTeacher)

	require.NoError(t, err)
	assert.True(t, res.RequiresAdminVerification)
}

func TestClient_CreateTask_SendsAuthHeadersAndInstant(t *testing.T) {
	due := time.Date(2024, time.March, 1, 10, 0, 0, 0, time.UTC)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/tasks", r.URL.Path)
		assert.Equal(t, "opaque-token", r.Header.Get("X-Auth-Token"))
		assert.Equal(t, "u1", r.Header.Get("X-User-Id"))

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "2024-03-01T10:00:00Z", body["due_date"])
		assert.Equal(t, "all_students", body["audience"])

		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second)
	err := client.CreateTask(context.Background(), testSession(), NewTask{
		Title:       "Essay",
		Description: "Write it",
		DueDate:     due,
		Audience:    model.AudienceAllStudents,
	})

	assert.NoError(t, err)
}

func TestClient_MyCollections(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "opaque-token", r.Header.Get("X-Auth-Token"))
		switch r.URL.Path {
		case "/my/tasks":
			json.NewEncoder(w).Encode([]map[string]string{{"id": "t1", "title": "Essay", "due_date": "2024-03-01T10:00:00Z"}})
		case "/my/events":
			json.NewEncoder(w).Encode([]map[string]string{})
		case "/my/notifications":
			json.NewEncoder(w).Encode([]map[string]string{{"id": "n1", "title": "Due", "message": "Essay is due"}})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second)
	sess := testSession()

	tasks, err := client.MyTasks(context.Background(), sess)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "Essay", tasks[0].Title)

	events, err := client.MyEvents(context.Background(), sess)
	require.NoError(t, err)
	assert.Empty(t, events)

	notifs, err := client.MyNotifications(context.Background(), sess)
	require.NoError(t, err)
	require.Len(t, notifs, 1)
	assert.Equal(t, "Essay is due", notifs[0].Message)
}

func TestClient_RunSweep_NoAuthHeaders(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/cron/generate-deadline-notifs", r.URL.Path)
		assert.Empty(t, r.Header.Get("X-Auth-Token"))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second)
	assert.NoError(t, client.RunSweep(context.Background()))
}

func TestClient_UnreachableBackend(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing listening anymore

	client := NewClient(srv.URL, time.Second)
	_, err := client.MyTasks(context.Background(), testSession())

	assert.True(t, errors.Is(err, apperrors.ErrBackendUnreachable))
}
