package dal

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"clinicore.io/clinicore/internal/models"
)

// PatientModel handles patient collection operations
type PatientModel struct {
	cs *CollectionStore
}

// NewPatientModel creates a new patient model instance
func NewPatientModel(cs *CollectionStore) *PatientModel {
	return &PatientModel{cs: cs}
}

// List returns every patient in insertion order. It never fails the
// caller: an unreadable collection yields an empty slice plus an advisory.
func (pm *PatientModel) List() []models.Patient {
	return listCollection[models.Patient](pm.cs, PatientsKey, "Failed to fetch patients")
}

// GetByID returns the first patient with the given id.
func (pm *PatientModel) GetByID(id int) (models.Patient, error) {
	for _, patient := range pm.List() {
		if patient.ID == id {
			return patient, nil
		}
	}
	return models.Patient{}, fmt.Errorf("patient %d: %w", id, ErrNotFound)
}

// Create appends a new patient and persists the collection. The id and the
// registration date are assigned by the store; caller-supplied values for
// either are overridden. On failure the collection is left unchanged.
func (pm *PatientModel) Create(patient models.Patient) (models.Patient, error) {
	patients := pm.List()

	id, err := pm.cs.allocateID(PatientsKey, nextID(patients))
	if err != nil {
		log.Error().Err(err).Msg("Failed to allocate patient id")
		pm.cs.advisor.Error("Failed to add patient")
		return models.Patient{}, err
	}
	patient.ID = id
	patient.RegistrationDate = pm.cs.today()

	patients = append(patients, patient)
	if err := saveCollection(pm.cs, PatientsKey, patients); err != nil {
		log.Error().Err(err).Int("id", patient.ID).Msg("Failed to add patient")
		pm.cs.advisor.Error("Failed to add patient")
		return models.Patient{}, err
	}

	log.Debug().Int("id", patient.ID).Msg("Patient added")
	pm.cs.advisor.Success("Patient added successfully")
	return patient, nil
}

// Update replaces the patient with the given id in place, preserving its
// position in the sequence. A missing id fails loudly with ErrNotFound.
func (pm *PatientModel) Update(id int, patient models.Patient) (models.Patient, error) {
	patients := pm.List()

	index := -1
	for i := range patients {
		if patients[i].ID == id {
			index = i
			break
		}
	}
	if index == -1 {
		pm.cs.advisor.Error("Patient not found")
		return models.Patient{}, fmt.Errorf("patient %d: %w", id, ErrNotFound)
	}

	patient.ID = id
	patients[index] = patient
	if err := saveCollection(pm.cs, PatientsKey, patients); err != nil {
		log.Error().Err(err).Int("id", id).Msg("Failed to update patient")
		pm.cs.advisor.Error("Failed to update patient")
		return models.Patient{}, err
	}

	log.Debug().Int("id", id).Msg("Patient updated")
	pm.cs.advisor.Success("Patient updated successfully")
	return patient, nil
}

// Delete removes the patient with the given id, returning false (and
// writing nothing) when no such record exists. Appointments and medical
// records referencing the patient are not touched.
func (pm *PatientModel) Delete(id int) bool {
	patients := pm.List()

	filtered := make([]models.Patient, 0, len(patients))
	for _, patient := range patients {
		if patient.ID != id {
			filtered = append(filtered, patient)
		}
	}
	if len(filtered) == len(patients) {
		pm.cs.advisor.Error("Patient not found")
		return false
	}

	if err := saveCollection(pm.cs, PatientsKey, filtered); err != nil {
		log.Error().Err(err).Int("id", id).Msg("Failed to delete patient")
		pm.cs.advisor.Error("Failed to delete patient")
		return false
	}

	log.Debug().Int("id", id).Msg("Patient deleted")
	pm.cs.advisor.Success("Patient deleted successfully")
	return true
}

// Search returns patients whose first name, last name or email contains
// the query case-insensitively, or whose contact number contains it
// verbatim. A blank query short-circuits to an empty result. Results keep
// the collection's insertion order.
func (pm *PatientModel) Search(query string) []models.Patient {
	if strings.TrimSpace(query) == "" {
		return []models.Patient{}
	}

	lowerQuery := strings.ToLower(query)
	results := []models.Patient{}
	for _, patient := range pm.List() {
		if strings.Contains(strings.ToLower(patient.FirstName), lowerQuery) ||
			strings.Contains(strings.ToLower(patient.LastName), lowerQuery) ||
			strings.Contains(strings.ToLower(patient.Email), lowerQuery) ||
			strings.Contains(patient.ContactNumber, query) {
			results = append(results, patient)
		}
	}
	return results
}
