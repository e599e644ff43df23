package main

import (
	"context"
	"errors"
	"log"
	"time"

	"classboard/internal/config"
	apperrors "classboard/internal/errors"
	"classboard/internal/gateway"
	"classboard/internal/model"
)

// Demo accounts; re-running the seeder against the same backend just hits
// "already registered" rejections, which are tolerated.
const (
	teacherEmail = "teacher@classboard.local"
	studentEmail = "student@classboard.local"
	demoPassword = "classboard-demo"
)

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()
	client := gateway.NewClient(cfg.BackendBaseURL, cfg.BackendTimeout)
	ctx := context.Background()

	registerDemoAccount(ctx, client, "Demo Teacher", teacherEmail, model.RoleTeacher)
	registerDemoAccount(ctx, client, "Demo Student", studentEmail, model.RoleStudent)

	res, err := client.Login(ctx, teacherEmail, demoPassword)
	if err != nil {
		log.Fatalf("Failed to log in as demo teacher (is the account verified?): %v", err)
	}
	sess := &model.Session{Token: res.Token, User: res.User}
	log.Printf("Logged in as %s (%s)", sess.User.Name, sess.User.Role)

	now := time.Now()
	year := now.Year()

	// February and October on purpose: their labels diverge under a naive
	// string sort, so the seeded data exercises the calendar ordering.
	tasks := []gateway.NewTask{
		{Title: "Reading log", Description: "Chapters 1-3", DueDate: time.Date(year, time.February, 10, 9, 0, 0, 0, time.UTC), Audience: model.AudienceAllStudents},
		{Title: "Science fair proposal", Description: "One page outline", DueDate: time.Date(year, time.October, 5, 17, 0, 0, 0, time.UTC), Audience: model.AudienceAllStudents},
		{Title: "Math worksheet", Description: "Fractions practice", DueDate: now.Add(48 * time.Hour).UTC(), Audience: model.AudienceAllStudents},
	}
	events := []gateway.NewEvent{
		{Title: "Parent evening", Description: "Classroom 2B", StartTime: time.Date(year, time.February, 20, 18, 0, 0, 0, time.UTC), EndTime: time.Date(year, time.February, 20, 20, 0, 0, 0, time.UTC), Audience: model.AudienceAllStudents},
		{Title: "Museum trip", Description: "Natural history museum", StartTime: time.Date(year, time.October, 12, 9, 0, 0, 0, time.UTC), EndTime: time.Date(year, time.October, 12, 15, 0, 0, 0, time.UTC), Audience: model.AudienceAllStudents},
	}

	created := 0
	for _, task := range tasks {
		if err := client.CreateTask(ctx, sess, task); err != nil {
			log.Printf("Skipping task %q: %v", task.Title, err)
			continue
		}
		created++
	}
	for _, event := range events {
		if err := client.CreateEvent(ctx, sess, event); err != nil {
			log.Printf("Skipping event %q: %v", event.Title, err)
			continue
		}
		created++
	}
	log.Printf("Created %d items", created)

	if err := client.RunSweep(ctx); err != nil {
		log.Printf("Sweep trigger failed: %v", err)
	} else {
		log.Println("Deadline sweep triggered")
	}

	log.Println("Seed completed")
}

// registerDemoAccount registers one account, tolerating upstream rejections
// (typically "already registered" on re-runs).
func registerDemoAccount(ctx context.Context, client *gateway.Client, name, email string, role model.Role) {
	res, err := client.Register(ctx, name, email, demoPassword, role)
	if err != nil {
		var upstream *apperrors.UpstreamError
		if errors.As(err, &upstream) {
			log.Printf("Register %s: backend said %q, continuing", email, upstream.Detail)
			return
		}
		log.Fatalf("Failed to register %s: %v", email, err)
	}
	if res.RequiresAdminVerification {
		log.Printf("Registered %s (pending admin verification)", email)
	} else {
		log.Printf("Registered %s", email)
	}
}
