package journal

import (
	"sort"

	. "server/internal/models"
)

type Category string

const (
	CategorySurgery     Category = "surgery"
	CategoryActivation  Category = "activation"
	CategoryAppointment Category = "appointment"
	CategoryMilestone   Category = "milestone"
)

// Day is one highlighted calendar date with its event categories.
type Day struct {
	Date       string     `json:"date"`
	Categories []Category `json:"categories"`
}

// DayDetail is the detail panel payload for a selected date.
type DayDetail struct {
	Date         string         `json:"date"`
	IsSurgery    bool           `json:"isSurgery"`
	IsActivation bool           `json:"isActivation"`
	Appointments []*Appointment `json:"appointments"`
	Milestones   []*Milestone   `json:"milestones"`
}

// BuildCalendar merges the surgery date, activation date, appointments and
// milestones into per-date category sets, sorted by date.
func BuildCalendar(
	surgeryDate *string,
	activationDate string,
	appointments []*Appointment,
	milestones []*Milestone,
) []Day {
	byDate := map[string][]Category{}

	add := func(date string, category Category) {
		if date == "" {
			return
		}
		for _, existing := range byDate[date] {
			if existing == category {
				return
			}
		}
		byDate[date] = append(byDate[date], category)
	}

	if surgeryDate != nil {
		add(*surgeryDate, CategorySurgery)
	}
	add(activationDate, CategoryActivation)
	for _, appt := range appointments {
		add(appt.AppointmentDate, CategoryAppointment)
	}
	for _, milestone := range milestones {
		add(milestone.Date, CategoryMilestone)
	}

	days := make([]Day, 0, len(byDate))
	for date, categories := range byDate {
		days = append(days, Day{Date: date, Categories: categories})
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Date < days[j].Date })

	return days
}

// DetailsFor filters the event streams down to a single date.
func DetailsFor(
	date string,
	surgeryDate *string,
	activationDate string,
	appointments []*Appointment,
	milestones []*Milestone,
) DayDetail {
	detail := DayDetail{
		Date:         date,
		IsSurgery:    surgeryDate != nil && *surgeryDate == date,
		IsActivation: activationDate == date,
		Appointments: []*Appointment{},
		Milestones:   []*Milestone{},
	}

	for _, appt := range appointments {
		if appt.AppointmentDate == date {
			detail.Appointments = append(detail.Appointments, appt)
		}
	}
	for _, milestone := range milestones {
		if milestone.Date == date {
			detail.Milestones = append(detail.Milestones, milestone)
		}
	}

	return detail
}
