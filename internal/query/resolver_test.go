package query

import (
	"testing"

	"github.com/stretchr/testify/require"

	"clinicore.io/clinicore/internal/dal"
	"clinicore.io/clinicore/internal/models"
)

func TestResolveAppointmentWithKnownReferences(t *testing.T) {
	service, _ := newSeededService(t, "2025-05-11")

	view := service.ResolveAppointment(models.Appointment{
		PatientID: 3,
		DoctorID:  1,
	})
	require.Equal(t, "Robert Johnson", view.PatientName)
	require.Equal(t, "Dr. Sarah Williams", view.DoctorName)
}

func TestResolveAppointmentWithDanglingReferences(t *testing.T) {
	service, _ := newSeededService(t, "2025-05-11")

	view := service.ResolveAppointment(models.Appointment{
		PatientID: 12345,
		DoctorID:  67890,
	})
	require.Equal(t, UnknownPatient, view.PatientName)
	require.Equal(t, UnknownDoctor, view.DoctorName)
}

func TestResolveSurvivesPatientDeletion(t *testing.T) {
	// Deleting a patient must not corrupt dependent appointment views:
	// there is no cascade, the resolver degrades to the sentinel instead.
	service, cs := newSeededService(t, "2025-05-11")

	patients := dal.NewPatientModel(cs)
	require.True(t, patients.Delete(1))

	upcoming := service.UpcomingAppointments(5)
	require.Len(t, upcoming, 2, "appointments referencing the deleted patient survive")
	require.Equal(t, UnknownPatient, upcoming[0].PatientName)
	require.Equal(t, "Dr. Michael Brown", upcoming[0].DoctorName)
}

func TestResolveMedicalRecord(t *testing.T) {
	service, _ := newSeededService(t, "2025-05-11")

	records := dal.NewMedicalRecordModel(service.cs)
	forPatient := records.ListByPatient(3)
	require.Len(t, forPatient, 1)

	views := service.ResolveMedicalRecords(forPatient)
	require.Len(t, views, 1)
	require.Equal(t, "Robert Johnson", views[0].PatientName)
	require.Equal(t, "Dr. Sarah Williams", views[0].DoctorName)
	require.Equal(t, "Type 2 Diabetes", views[0].Diagnosis)
}
