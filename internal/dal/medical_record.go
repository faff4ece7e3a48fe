package dal

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"clinicore.io/clinicore/internal/models"
)

// MedicalRecordModel handles medical record collection operations
type MedicalRecordModel struct {
	cs *CollectionStore
}

// NewMedicalRecordModel creates a new medical record model instance
func NewMedicalRecordModel(cs *CollectionStore) *MedicalRecordModel {
	return &MedicalRecordModel{cs: cs}
}

// List returns every medical record in insertion order.
func (mm *MedicalRecordModel) List() []models.MedicalRecord {
	return listCollection[models.MedicalRecord](mm.cs, MedicalRecordsKey, "Failed to fetch medical records")
}

// ListByPatient returns the records whose soft patient reference matches
// patientID, in insertion order. A dangling or unknown patient id simply
// yields an empty result.
func (mm *MedicalRecordModel) ListByPatient(patientID int) []models.MedicalRecord {
	results := []models.MedicalRecord{}
	for _, record := range mm.List() {
		if record.PatientID == patientID {
			results = append(results, record)
		}
	}
	return results
}

// GetByID returns the first medical record with the given id.
func (mm *MedicalRecordModel) GetByID(id int) (models.MedicalRecord, error) {
	for _, record := range mm.List() {
		if record.ID == id {
			return record, nil
		}
	}
	return models.MedicalRecord{}, fmt.Errorf("medical record %d: %w", id, ErrNotFound)
}

// Create appends a new medical record with a store-assigned id. The
// patient and doctor references are not checked for existence.
func (mm *MedicalRecordModel) Create(record models.MedicalRecord) (models.MedicalRecord, error) {
	records := mm.List()

	id, err := mm.cs.allocateID(MedicalRecordsKey, nextID(records))
	if err != nil {
		log.Error().Err(err).Msg("Failed to allocate medical record id")
		mm.cs.advisor.Error("Failed to add medical record")
		return models.MedicalRecord{}, err
	}
	record.ID = id

	records = append(records, record)
	if err := saveCollection(mm.cs, MedicalRecordsKey, records); err != nil {
		log.Error().Err(err).Int("id", record.ID).Msg("Failed to add medical record")
		mm.cs.advisor.Error("Failed to add medical record")
		return models.MedicalRecord{}, err
	}

	log.Debug().Int("id", record.ID).Msg("Medical record added")
	mm.cs.advisor.Success("Medical record added successfully")
	return record, nil
}

// Update replaces the medical record with the given id in place. A missing
// id fails loudly with ErrNotFound.
func (mm *MedicalRecordModel) Update(id int, record models.MedicalRecord) (models.MedicalRecord, error) {
	records := mm.List()

	index := -1
	for i := range records {
		if records[i].ID == id {
			index = i
			break
		}
	}
	if index == -1 {
		mm.cs.advisor.Error("Medical record not found")
		return models.MedicalRecord{}, fmt.Errorf("medical record %d: %w", id, ErrNotFound)
	}

	record.ID = id
	records[index] = record
	if err := saveCollection(mm.cs, MedicalRecordsKey, records); err != nil {
		log.Error().Err(err).Int("id", id).Msg("Failed to update medical record")
		mm.cs.advisor.Error("Failed to update medical record")
		return models.MedicalRecord{}, err
	}

	log.Debug().Int("id", id).Msg("Medical record updated")
	mm.cs.advisor.Success("Medical record updated successfully")
	return record, nil
}

// Delete removes the medical record with the given id, returning false
// when no such record exists.
func (mm *MedicalRecordModel) Delete(id int) bool {
	records := mm.List()

	filtered := make([]models.MedicalRecord, 0, len(records))
	for _, record := range records {
		if record.ID != id {
			filtered = append(filtered, record)
		}
	}
	if len(filtered) == len(records) {
		mm.cs.advisor.Error("Medical record not found")
		return false
	}

	if err := saveCollection(mm.cs, MedicalRecordsKey, filtered); err != nil {
		log.Error().Err(err).Int("id", id).Msg("Failed to delete medical record")
		mm.cs.advisor.Error("Failed to delete medical record")
		return false
	}

	log.Debug().Int("id", id).Msg("Medical record deleted")
	mm.cs.advisor.Success("Medical record deleted successfully")
	return true
}
