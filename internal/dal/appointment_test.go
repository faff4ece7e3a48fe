package dal

import (
	"testing"

	"github.com/stretchr/testify/require"

	"clinicore.io/clinicore/internal/models"
)

func TestAppointmentCreateAndGet(t *testing.T) {
	cs, _, _ := newTestEnv(t, Options{})
	appointments := NewAppointmentModel(cs)

	created, err := appointments.Create(models.Appointment{
		PatientID:       1,
		DoctorID:        2,
		AppointmentDate: "2025-05-11",
		AppointmentTime: "10:00 AM",
		Purpose:         "Headache consultation",
		Status:          models.StatusScheduled,
	})
	require.NoError(t, err)
	require.Equal(t, 1, created.ID)

	found, err := appointments.GetByID(created.ID)
	require.NoError(t, err)
	require.Equal(t, "2025-05-11", found.AppointmentDate)
}

func TestAppointmentCreateAcceptsDanglingReferences(t *testing.T) {
	cs, _, _ := newTestEnv(t, Options{})
	appointments := NewAppointmentModel(cs)

	// No patient or doctor collections exist at all; soft references are
	// not checked on write.
	created, err := appointments.Create(models.Appointment{
		PatientID: 999,
		DoctorID:  888,
		Status:    models.StatusScheduled,
	})
	require.NoError(t, err)
	require.Equal(t, 999, created.PatientID)
}

func TestAppointmentStatusEnumIsClosed(t *testing.T) {
	cs, _, _ := newTestEnv(t, Options{})
	appointments := NewAppointmentModel(cs)

	_, err := appointments.Create(models.Appointment{Status: "pending"})
	require.ErrorIs(t, err, ErrInvalidStatus)
	require.Empty(t, appointments.List(), "rejected create persists nothing")

	created, err := appointments.Create(models.Appointment{Status: models.StatusScheduled})
	require.NoError(t, err)

	_, err = appointments.Update(created.ID, models.Appointment{Status: "done"})
	require.ErrorIs(t, err, ErrInvalidStatus)

	kept, err := appointments.GetByID(created.ID)
	require.NoError(t, err)
	require.Equal(t, models.StatusScheduled, kept.Status)
}

func TestAppointmentUpdateAndDelete(t *testing.T) {
	cs, _, _ := newTestEnv(t, Options{})
	appointments := NewAppointmentModel(cs)

	created, err := appointments.Create(models.Appointment{
		Status:          models.StatusScheduled,
		AppointmentDate: "2025-05-11",
	})
	require.NoError(t, err)

	updated, err := appointments.Update(created.ID, models.Appointment{
		Status:          models.StatusCompleted,
		AppointmentDate: "2025-05-11",
		Notes:           "Resolved",
	})
	require.NoError(t, err)
	require.Equal(t, created.ID, updated.ID)
	require.Equal(t, models.StatusCompleted, updated.Status)

	_, err = appointments.Update(999, models.Appointment{Status: models.StatusCancelled})
	require.ErrorIs(t, err, ErrNotFound)

	require.True(t, appointments.Delete(created.ID))
	require.False(t, appointments.Delete(created.ID))
}
