package query

import (
	"sort"

	"github.com/rs/zerolog/log"

	"clinicore.io/clinicore/internal/models"
)

// defaultLimit bounds the upcoming/recent appointment views when the
// caller passes a non-positive limit.
const defaultLimit = 5

// today returns the store clock's date as a zero-padded ISO string.
// Comparing such strings lexicographically orders them chronologically.
func (s *Service) today() string {
	return s.cs.Now().Format("2006-01-02")
}

// DashboardStats counts patients, doctors and appointments, plus the
// appointments that are still scheduled for today or later.
func (s *Service) DashboardStats() models.DashboardStats {
	appointments := s.appointments.List()
	today := s.today()

	upcoming := 0
	for _, appointment := range appointments {
		if appointment.AppointmentDate >= today && appointment.Status == models.StatusScheduled {
			upcoming++
		}
	}

	stats := models.DashboardStats{
		TotalPatients:        len(s.patients.List()),
		TotalDoctors:         len(s.doctors.List()),
		TotalAppointments:    len(appointments),
		UpcomingAppointments: upcoming,
	}

	log.Debug().
		Int("patients", stats.TotalPatients).
		Int("doctors", stats.TotalDoctors).
		Int("appointments", stats.TotalAppointments).
		Int("upcoming", stats.UpcomingAppointments).
		Msg("Dashboard stats computed")

	return stats
}

// UpcomingAppointments returns the next scheduled appointments dated today
// or later, ascending by date, at most limit entries, with names resolved.
func (s *Service) UpcomingAppointments(limit int) []models.AppointmentView {
	if limit <= 0 {
		limit = defaultLimit
	}
	today := s.today()

	upcoming := []models.Appointment{}
	for _, appointment := range s.appointments.List() {
		if appointment.AppointmentDate >= today && appointment.Status == models.StatusScheduled {
			upcoming = append(upcoming, appointment)
		}
	}

	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].AppointmentDate < upcoming[j].AppointmentDate
	})
	if len(upcoming) > limit {
		upcoming = upcoming[:limit]
	}

	return s.resolveAll(upcoming)
}

// RecentAppointments returns the most recently completed appointments,
// descending by date, at most limit entries, with names resolved.
func (s *Service) RecentAppointments(limit int) []models.AppointmentView {
	if limit <= 0 {
		limit = defaultLimit
	}

	recent := []models.Appointment{}
	for _, appointment := range s.appointments.List() {
		if appointment.Status == models.StatusCompleted {
			recent = append(recent, appointment)
		}
	}

	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].AppointmentDate > recent[j].AppointmentDate
	})
	if len(recent) > limit {
		recent = recent[:limit]
	}

	return s.resolveAll(recent)
}

func (s *Service) resolveAll(appointments []models.Appointment) []models.AppointmentView {
	views := make([]models.AppointmentView, 0, len(appointments))
	for _, appointment := range appointments {
		views = append(views, s.ResolveAppointment(appointment))
	}
	return views
}
