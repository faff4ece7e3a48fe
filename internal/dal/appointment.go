package dal

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"clinicore.io/clinicore/internal/models"
)

// AppointmentModel handles appointment collection operations
type AppointmentModel struct {
	cs *CollectionStore
}

// NewAppointmentModel creates a new appointment model instance
func NewAppointmentModel(cs *CollectionStore) *AppointmentModel {
	return &AppointmentModel{cs: cs}
}

// List returns every appointment in insertion order.
func (am *AppointmentModel) List() []models.Appointment {
	return listCollection[models.Appointment](am.cs, AppointmentsKey, "Failed to fetch appointments")
}

// GetByID returns the first appointment with the given id.
func (am *AppointmentModel) GetByID(id int) (models.Appointment, error) {
	for _, appointment := range am.List() {
		if appointment.ID == id {
			return appointment, nil
		}
	}
	return models.Appointment{}, fmt.Errorf("appointment %d: %w", id, ErrNotFound)
}

// Create appends a new appointment with a store-assigned id. PatientID and
// DoctorID are soft references and are not checked for existence; the
// status must belong to the closed enumeration.
func (am *AppointmentModel) Create(appointment models.Appointment) (models.Appointment, error) {
	if !models.ValidStatus(appointment.Status) {
		am.cs.advisor.Error("Failed to schedule appointment")
		return models.Appointment{}, fmt.Errorf("%w: %q", ErrInvalidStatus, appointment.Status)
	}

	appointments := am.List()

	id, err := am.cs.allocateID(AppointmentsKey, nextID(appointments))
	if err != nil {
		log.Error().Err(err).Msg("Failed to allocate appointment id")
		am.cs.advisor.Error("Failed to schedule appointment")
		return models.Appointment{}, err
	}
	appointment.ID = id

	appointments = append(appointments, appointment)
	if err := saveCollection(am.cs, AppointmentsKey, appointments); err != nil {
		log.Error().Err(err).Int("id", appointment.ID).Msg("Failed to schedule appointment")
		am.cs.advisor.Error("Failed to schedule appointment")
		return models.Appointment{}, err
	}

	log.Debug().
		Int("id", appointment.ID).
		Str("date", appointment.AppointmentDate).
		Msg("Appointment scheduled")
	am.cs.advisor.Success("Appointment scheduled successfully")
	return appointment, nil
}

// Update replaces the appointment with the given id in place. A missing id
// fails loudly with ErrNotFound; an out-of-set status is rejected before
// anything is read or written.
func (am *AppointmentModel) Update(id int, appointment models.Appointment) (models.Appointment, error) {
	if !models.ValidStatus(appointment.Status) {
		am.cs.advisor.Error("Failed to update appointment")
		return models.Appointment{}, fmt.Errorf("%w: %q", ErrInvalidStatus, appointment.Status)
	}

	appointments := am.List()

	index := -1
	for i := range appointments {
		if appointments[i].ID == id {
			index = i
			break
		}
	}
	if index == -1 {
		am.cs.advisor.Error("Appointment not found")
		return models.Appointment{}, fmt.Errorf("appointment %d: %w", id, ErrNotFound)
	}

	appointment.ID = id
	appointments[index] = appointment
	if err := saveCollection(am.cs, AppointmentsKey, appointments); err != nil {
		log.Error().Err(err).Int("id", id).Msg("Failed to update appointment")
		am.cs.advisor.Error("Failed to update appointment")
		return models.Appointment{}, err
	}

	log.Debug().Int("id", id).Msg("Appointment updated")
	am.cs.advisor.Success("Appointment updated successfully")
	return appointment, nil
}

// Delete removes the appointment with the given id, returning false when
// no such record exists.
func (am *AppointmentModel) Delete(id int) bool {
	appointments := am.List()

	filtered := make([]models.Appointment, 0, len(appointments))
	for _, appointment := range appointments {
		if appointment.ID != id {
			filtered = append(filtered, appointment)
		}
	}
	if len(filtered) == len(appointments) {
		am.cs.advisor.Error("Appointment not found")
		return false
	}

	if err := saveCollection(am.cs, AppointmentsKey, filtered); err != nil {
		log.Error().Err(err).Int("id", id).Msg("Failed to cancel appointment")
		am.cs.advisor.Error("Failed to cancel appointment")
		return false
	}

	log.Debug().Int("id", id).Msg("Appointment deleted")
	am.cs.advisor.Success("Appointment cancelled successfully")
	return true
}
