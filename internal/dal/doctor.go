package dal

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"clinicore.io/clinicore/internal/models"
)

// DoctorModel handles doctor collection operations
type DoctorModel struct {
	cs *CollectionStore
}

// NewDoctorModel creates a new doctor model instance
func NewDoctorModel(cs *CollectionStore) *DoctorModel {
	return &DoctorModel{cs: cs}
}

// List returns every doctor in insertion order, applying the same
// empty-on-decode-failure policy as the other repositories.
func (dm *DoctorModel) List() []models.Doctor {
	return listCollection[models.Doctor](dm.cs, DoctorsKey, "Failed to fetch doctors")
}

// GetByID returns the first doctor with the given id.
func (dm *DoctorModel) GetByID(id int) (models.Doctor, error) {
	for _, doctor := range dm.List() {
		if doctor.ID == id {
			return doctor, nil
		}
	}
	return models.Doctor{}, fmt.Errorf("doctor %d: %w", id, ErrNotFound)
}

// Create appends a new doctor with a store-assigned id and persists the
// collection. Department is stored as a free-text label, unchecked.
func (dm *DoctorModel) Create(doctor models.Doctor) (models.Doctor, error) {
	doctors := dm.List()

	id, err := dm.cs.allocateID(DoctorsKey, nextID(doctors))
	if err != nil {
		log.Error().Err(err).Msg("Failed to allocate doctor id")
		dm.cs.advisor.Error("Failed to add doctor")
		return models.Doctor{}, err
	}
	doctor.ID = id

	doctors = append(doctors, doctor)
	if err := saveCollection(dm.cs, DoctorsKey, doctors); err != nil {
		log.Error().Err(err).Int("id", doctor.ID).Msg("Failed to add doctor")
		dm.cs.advisor.Error("Failed to add doctor")
		return models.Doctor{}, err
	}

	log.Debug().Int("id", doctor.ID).Msg("Doctor added")
	dm.cs.advisor.Success("Doctor added successfully")
	return doctor, nil
}

// Update replaces the doctor with the given id in place. A missing id
// fails loudly with ErrNotFound.
func (dm *DoctorModel) Update(id int, doctor models.Doctor) (models.Doctor, error) {
	doctors := dm.List()

	index := -1
	for i := range doctors {
		if doctors[i].ID == id {
			index = i
			break
		}
	}
	if index == -1 {
		dm.cs.advisor.Error("Doctor not found")
		return models.Doctor{}, fmt.Errorf("doctor %d: %w", id, ErrNotFound)
	}

	doctor.ID = id
	doctors[index] = doctor
	if err := saveCollection(dm.cs, DoctorsKey, doctors); err != nil {
		log.Error().Err(err).Int("id", id).Msg("Failed to update doctor")
		dm.cs.advisor.Error("Failed to update doctor")
		return models.Doctor{}, err
	}

	log.Debug().Int("id", id).Msg("Doctor updated")
	dm.cs.advisor.Success("Doctor updated successfully")
	return doctor, nil
}

// Delete removes the doctor with the given id, returning false when no
// such record exists. Dependent appointments and records keep their
// dangling references; the resolver degrades them to a sentinel name.
func (dm *DoctorModel) Delete(id int) bool {
	doctors := dm.List()

	filtered := make([]models.Doctor, 0, len(doctors))
	for _, doctor := range doctors {
		if doctor.ID != id {
			filtered = append(filtered, doctor)
		}
	}
	if len(filtered) == len(doctors) {
		dm.cs.advisor.Error("Doctor not found")
		return false
	}

	if err := saveCollection(dm.cs, DoctorsKey, filtered); err != nil {
		log.Error().Err(err).Int("id", id).Msg("Failed to delete doctor")
		dm.cs.advisor.Error("Failed to delete doctor")
		return false
	}

	log.Debug().Int("id", id).Msg("Doctor deleted")
	dm.cs.advisor.Success("Doctor deleted successfully")
	return true
}

// Search returns doctors whose first name, last name, specialization or
// email contains the query case-insensitively. A blank query
// short-circuits to an empty result.
func (dm *DoctorModel) Search(query string) []models.Doctor {
	if strings.TrimSpace(query) == "" {
		return []models.Doctor{}
	}

	lowerQuery := strings.ToLower(query)
	results := []models.Doctor{}
	for _, doctor := range dm.List() {
		if strings.Contains(strings.ToLower(doctor.FirstName), lowerQuery) ||
			strings.Contains(strings.ToLower(doctor.LastName), lowerQuery) ||
			strings.Contains(strings.ToLower(doctor.Specialization), lowerQuery) ||
			strings.Contains(strings.ToLower(doctor.Email), lowerQuery) {
			results = append(results, doctor)
		}
	}
	return results
}
