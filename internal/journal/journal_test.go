package journal

import (
	"testing"
	"time"

	. "server/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeHearingAge_Exactly100Days(t *testing.T) {
	now := time.Date(2024, 4, 10, 15, 30, 0, 0, time.UTC)

	age, err := ComputeHearingAge("2024-01-01", now)

	require.NoError(t, err)
	assert.Equal(t, 100, age.Days)
	assert.InDelta(t, 100.0/365.0, age.FirstYearProgress, 1e-9)
}

func TestComputeHearingAge(t *testing.T) {
	tests := []struct {
		name         string
		activation   string
		now          time.Time
		wantDays     int
		wantProgress float64
	}{
		{
			name:         "activation day itself",
			activation:   "2024-01-01",
			now:          time.Date(2024, 1, 1, 23, 59, 0, 0, time.UTC),
			wantDays:     0,
			wantProgress: 0,
		},
		{
			name:         "one day",
			activation:   "2024-01-01",
			now:          time.Date(2024, 1, 2, 0, 1, 0, 0, time.UTC),
			wantDays:     1,
			wantProgress: 1.0 / 365.0,
		},
		{
			name:         "over a year caps progress",
			activation:   "2023-01-01",
			now:          time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
			wantDays:     517,
			wantProgress: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			age, err := ComputeHearingAge(tt.activation, tt.now)
			require.NoError(t, err)
			assert.Equal(t, tt.wantDays, age.Days)
			assert.InDelta(t, tt.wantProgress, age.FirstYearProgress, 1e-9)
		})
	}
}

func TestComputeHearingAge_InvalidDate(t *testing.T) {
	_, err := ComputeHearingAge("01/01/2024", time.Now())
	assert.Error(t, err)
}

func TestBuildCalendar_MergesCategories(t *testing.T) {
	surgery := "2024-01-15"
	appointments := []*Appointment{
		{AppointmentDate: "2024-03-01", DoctorName: "Dr. Mansour"},
		{AppointmentDate: "2024-03-01", DoctorName: "Dr. Reyes"},
		{AppointmentDate: "2024-05-20", DoctorName: "Dr. Mansour"},
	}
	milestones := []*Milestone{
		{Date: "2024-05-20", Title: "First word", Score: 9},
	}

	days := BuildCalendar(&surgery, "2024-02-01", appointments, milestones)

	require.Len(t, days, 4)
	assert.Equal(t, "2024-01-15", days[0].Date)
	assert.Equal(t, []Category{CategorySurgery}, days[0].Categories)
	assert.Equal(t, "2024-02-01", days[1].Date)
	assert.Equal(t, []Category{CategoryActivation}, days[1].Categories)

	// Duplicate appointments on one date collapse to one category entry.
	assert.Equal(t, []Category{CategoryAppointment}, days[2].Categories)

	// A date can carry multiple categories.
	assert.ElementsMatch(t,
		[]Category{CategoryAppointment, CategoryMilestone},
		days[3].Categories)
}

func TestBuildCalendar_NoSurgeryDate(t *testing.T) {
	days := BuildCalendar(nil, "2024-02-01", nil, nil)
	require.Len(t, days, 1)
	assert.Equal(t, []Category{CategoryActivation}, days[0].Categories)
}

func TestDetailsFor(t *testing.T) {
	surgery := "2024-01-15"
	appointments := []*Appointment{
		{AppointmentDate: "2024-03-01", DoctorName: "Dr. Mansour"},
		{AppointmentDate: "2024-04-01", DoctorName: "Dr. Reyes"},
	}
	milestones := []*Milestone{
		{Date: "2024-03-01", Title: "Responded to name", Score: 8},
	}

	detail := DetailsFor("2024-03-01", &surgery, "2024-02-01", appointments, milestones)

	assert.False(t, detail.IsSurgery)
	assert.False(t, detail.IsActivation)
	require.Len(t, detail.Appointments, 1)
	assert.Equal(t, "Dr. Mansour", detail.Appointments[0].DoctorName)
	require.Len(t, detail.Milestones, 1)

	surgeryDetail := DetailsFor("2024-01-15", &surgery, "2024-02-01", appointments, milestones)
	assert.True(t, surgeryDetail.IsSurgery)
	assert.Empty(t, surgeryDetail.Appointments)
}
