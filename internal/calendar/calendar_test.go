package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"classboard/internal/model"
)

func utc(year int, month time.Month, day, hour int) time.Time {
	return time.Date(year, month, day, hour, 0, 0, 0, time.UTC)
}

func TestBuild_ProjectsEveryInputExactlyOnce(t *testing.T) {
	tasks := []model.Task{
		{ID: "t1", Title: "Essay", DueDate: utc(2024, time.March, 3, 12)},
		{ID: "t2", Title: "Quiz", DueDate: utc(2024, time.October, 5, 9)},
	}
	events := []model.Event{
		{ID: "e1", Title: "Field trip", StartTime: utc(2024, time.March, 15, 12), EndTime: utc(2024, time.March, 15, 16)},
	}

	groups := Build(tasks, events)

	total := 0
	titles := map[string]int{}
	for _, g := range groups {
		for _, it := range g.Items {
			total++
			titles[it.Title]++
		}
	}
	assert.Equal(t, 3, total)
	for title, n := range titles {
		assert.Equal(t, 1, n, "item %q duplicated", title)
	}
}

func TestBuild_GroupAndItemOrdering(t *testing.T) {
	tasks := []model.Task{
		{Title: "Essay", DueDate: utc(2024, time.March, 3, 12)},
		{Title: "Quiz", DueDate: utc(2024, time.October, 5, 9)},
	}
	events := []model.Event{
		{Title: "Field trip", StartTime: utc(2024, time.March, 15, 12)},
	}

	groups := Build(tasks, events)

	if assert.Len(t, groups, 2) {
		assert.Equal(t, MonthKey{2024, time.March}, groups[0].Key)
		assert.Equal(t, MonthKey{2024, time.October}, groups[1].Key)

		march := groups[0].Items
		if assert.Len(t, march, 2) {
			assert.Equal(t, "Essay", march[0].Title)
			assert.Equal(t, "Field trip", march[1].Title)
		}
		assert.Len(t, groups[1].Items, 1)
	}

	// Within every group dates are non-decreasing.
	for _, g := range groups {
		for i := 1; i < len(g.Items); i++ {
			assert.False(t, g.Items[i].Date.Before(g.Items[i-1].Date))
		}
	}
}

// Months 2 and 10 diverge under lexicographic label ordering ("10" < "2");
// the structured key must still put February first.
func TestBuild_NumericMonthOrder(t *testing.T) {
	tasks := []model.Task{
		{Title: "Late", DueDate: utc(2024, time.October, 20, 12)},
		{Title: "Early", DueDate: utc(2024, time.February, 5, 12)},
	}

	groups := Build(tasks, nil)

	if assert.Len(t, groups, 2) {
		assert.Equal(t, "2024-2", groups[0].Label)
		assert.Equal(t, "2024-10", groups[1].Label)
	}
}

func TestBuild_TaskPrecedesEventOnEqualDates(t *testing.T) {
	at := utc(2024, time.May, 10, 9)
	tasks := []model.Task{{Title: "Homework", DueDate: at}}
	events := []model.Event{{Title: "Assembly", StartTime: at}}

	groups := Build(tasks, events)

	if assert.Len(t, groups, 1) && assert.Len(t, groups[0].Items, 2) {
		assert.Equal(t, TypeTask, groups[0].Items[0].Type)
		assert.Equal(t, TypeEvent, groups[0].Items[1].Type)
	}
}

func TestBuild_Empty(t *testing.T) {
	assert.Empty(t, Build(nil, nil))
}

func TestBuild_YearsSeparateGroups(t *testing.T) {
	tasks := []model.Task{
		{Title: "Next year", DueDate: utc(2025, time.January, 5, 8)},
		{Title: "This year", DueDate: utc(2024, time.December, 5, 8)},
	}

	groups := Build(tasks, nil)

	if assert.Len(t, groups, 2) {
		assert.Equal(t, MonthKey{2024, time.December}, groups[0].Key)
		assert.Equal(t, MonthKey{2025, time.January}, groups[1].Key)
	}
}

func TestIsOverdue(t *testing.T) {
	now := utc(2024, time.June, 1, 12)

	tests := []struct {
		name    string
		item    Item
		overdue bool
	}{
		{"past task", Item{Type: TypeTask, Date: now.Add(-time.Hour)}, true},
		{"future task", Item{Type: TypeTask, Date: now.Add(time.Hour)}, false},
		{"task due exactly now", Item{Type: TypeTask, Date: now}, false},
		{"past event", Item{Type: TypeEvent, Date: now.Add(-time.Hour)}, false},
		{"future event", Item{Type: TypeEvent, Date: now.Add(time.Hour)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.overdue, IsOverdue(tt.item, now))
		})
	}
}
