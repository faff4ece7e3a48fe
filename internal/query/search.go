package query

import "clinicore.io/clinicore/internal/models"

// SearchPatients matches the query against patient names, emails and
// contact numbers. Blank queries return nothing rather than everything.
func (s *Service) SearchPatients(query string) []models.Patient {
	return s.patients.Search(query)
}

// SearchDoctors matches the query against doctor names, specializations
// and emails.
func (s *Service) SearchDoctors(query string) []models.Doctor {
	return s.doctors.Search(query)
}
