// Package calendar builds the month-grouped agenda view model from the raw
// task and event collections returned by the scheduling backend.
package calendar

import (
	"fmt"
	"sort"
	"time"

	"classboard/internal/model"
)

// ItemType distinguishes the two kinds of calendar entries.
type ItemType string

const (
	// TypeTask marks an entry projected from a task's due date.
	TypeTask ItemType = "task"
	// TypeEvent marks an entry projected from an event's start time.
	TypeEvent ItemType = "event"
)

// Item is the uniform projection of a task or event onto the calendar. Tasks
// contribute their due date, events their start time; an event's end time is
// not part of the calendar view (full detail stays in the lists view).
type Item struct {
	Type  ItemType  `json:"type"`
	Title string    `json:"title"`
	Date  time.Time `json:"date"`
}

// MonthKey identifies a calendar month in the viewer's local time zone.
// Groups compare by the structured (Year, Month) pair, never by the formatted
// label: a string sort would place month 10 before month 2.
type MonthKey struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
}

// String renders the key the way the agenda labels it, e.g. "2024-3".
func (k MonthKey) String() string {
	return fmt.Sprintf("%d-%d", k.Year, int(k.Month))
}

// Less orders keys chronologically.
func (k MonthKey) Less(other MonthKey) bool {
	if k.Year != other.Year {
		return k.Year < other.Year
	}
	return k.Month < other.Month
}

// Group holds one month's items, sorted ascending by date.
type Group struct {
	Key   MonthKey `json:"key"`
	Label string   `json:"label"`
	Items []Item   `json:"items"`
}

// Build merges tasks and events into groups keyed by local calendar month,
// ordered chronologically. Every input yields exactly one item. Within a
// group items are sorted ascending by date; the sort is stable, and tasks are
// projected before events, so on equal dates a task precedes an event.
func Build(tasks []model.Task, events []model.Event) []Group {
	items := make([]Item, 0, len(tasks)+len(events))
	for _, t := range tasks {
		items = append(items, Item{Type: TypeTask, Title: t.Title, Date: t.DueDate})
	}
	for _, e := range events {
		items = append(items, Item{Type: TypeEvent, Title: e.Title, Date: e.StartTime})
	}

	byMonth := make(map[MonthKey][]Item)
	for _, it := range items {
		local := it.Date.Local()
		key := MonthKey{Year: local.Year(), Month: local.Month()}
		byMonth[key] = append(byMonth[key], it)
	}

	groups := make([]Group, 0, len(byMonth))
	for key, members := range byMonth {
		sort.SliceStable(members, func(i, j int) bool {
			return members[i].Date.Before(members[j].Date)
		})
		groups = append(groups, Group{Key: key, Label: key.String(), Items: members})
	}
	sort.Slice(groups, func(i, j int) bool {
		return groups[i].Key.Less(groups[j].Key)
	})
	return groups
}

// IsOverdue reports whether a task-typed item's date has passed at the given
// instant. Events are never overdue. Callers evaluate this per render so the
// flag tracks the clock on every refresh.
func IsOverdue(it Item, now time.Time) bool {
	return it.Type == TypeTask && it.Date.Before(now)
}
