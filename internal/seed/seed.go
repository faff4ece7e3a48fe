package seed

import (
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"

	"clinicore.io/clinicore/internal/dal"
	"clinicore.io/clinicore/internal/metrics"
	"clinicore.io/clinicore/internal/models"
	"clinicore.io/clinicore/internal/storage"
)

func samplePatients() []models.Patient {
	return []models.Patient{
		{
			ID:               1,
			FirstName:        "John",
			LastName:         "Doe",
			DateOfBirth:      "1985-05-15",
			Gender:           "Male",
			ContactNumber:    "555-123-4567",
			Email:            "john.doe@example.com",
			Address:          "123 Main St, Anytown",
			BloodGroup:       "O+",
			RegistrationDate: "2023-01-10",
			MedicalHistory:   "Hypertension",
		},
		{
			ID:               2,
			FirstName:        "Jane",
			LastName:         "Smith",
			DateOfBirth:      "1990-08-22",
			Gender:           "Female",
			ContactNumber:    "555-987-6543",
			Email:            "jane.smith@example.com",
			Address:          "456 Oak Ave, Somewhere",
			BloodGroup:       "A+",
			RegistrationDate: "2023-02-15",
			MedicalHistory:   "None",
		},
		{
			ID:               3,
			FirstName:        "Robert",
			LastName:         "Johnson",
			DateOfBirth:      "1978-11-30",
			Gender:           "Male",
			ContactNumber:    "555-567-8901",
			Email:            "robert.johnson@example.com",
			Address:          "789 Pine Rd, Elsewhere",
			BloodGroup:       "B-",
			RegistrationDate: "2023-03-05",
			MedicalHistory:   "Diabetes",
		},
	}
}

func sampleDoctors() []models.Doctor {
	return []models.Doctor{
		{
			ID:             1,
			FirstName:      "Sarah",
			LastName:       "Williams",
			Specialization: "Cardiology",
			ContactNumber:  "555-222-3333",
			Email:          "sarah.williams@hospital.com",
			Department:     "Cardiology",
			JoinDate:       "2020-05-10",
			Schedule:       "Mon-Fri, 9AM-5PM",
		},
		{
			ID:             2,
			FirstName:      "Michael",
			LastName:       "Brown",
			Specialization: "Neurology",
			ContactNumber:  "555-444-5555",
			Email:          "michael.brown@hospital.com",
			Department:     "Neurology",
			JoinDate:       "2019-08-15",
			Schedule:       "Mon-Thu, 8AM-4PM",
		},
		{
			ID:             3,
			FirstName:      "Emily",
			LastName:       "Davis",
			Specialization: "Pediatrics",
			ContactNumber:  "555-666-7777",
			Email:          "emily.davis@hospital.com",
			Department:     "Pediatrics",
			JoinDate:       "2021-02-20",
			Schedule:       "Wed-Sun, 10AM-6PM",
		},
	}
}

func sampleAppointments() []models.Appointment {
	return []models.Appointment{
		{
			ID:              1,
			PatientID:       1,
			DoctorID:        2,
			AppointmentDate: "2025-05-11",
			AppointmentTime: "10:00 AM",
			Purpose:         "Headache consultation",
			Status:          models.StatusScheduled,
			Notes:           "Recurring migraines",
		},
		{
			ID:              2,
			PatientID:       3,
			DoctorID:        1,
			AppointmentDate: "2025-05-12",
			AppointmentTime: "2:30 PM",
			Purpose:         "Routine checkup",
			Status:          models.StatusScheduled,
			Notes:           "Annual heart examination",
		},
		{
			ID:              3,
			PatientID:       2,
			DoctorID:        3,
			AppointmentDate: "2025-05-10",
			AppointmentTime: "11:15 AM",
			Purpose:         "Follow-up",
			Status:          models.StatusCompleted,
			Notes:           "Post-treatment evaluation",
		},
	}
}

func sampleDepartments() []models.Department {
	return []models.Department{
		{
			ID:            1,
			Name:          "Cardiology",
			Head:          "Dr. Sarah Williams",
			Location:      "Building A, 3rd Floor",
			ContactNumber: "555-100-1000",
		},
		{
			ID:            2,
			Name:          "Neurology",
			Head:          "Dr. Michael Brown",
			Location:      "Building B, 2nd Floor",
			ContactNumber: "555-200-2000",
		},
		{
			ID:            3,
			Name:          "Pediatrics",
			Head:          "Dr. Emily Davis",
			Location:      "Building C, 1st Floor",
			ContactNumber: "555-300-3000",
		},
	}
}

func sampleMedicalRecords() []models.MedicalRecord {
	return []models.MedicalRecord{
		{
			ID:           1,
			PatientID:    3,
			DoctorID:     1,
			Diagnosis:    "Type 2 Diabetes",
			Prescription: "Metformin 500mg twice daily",
			RecordDate:   "2025-04-25",
			Notes:        "Blood sugar levels stabilizing",
		},
		{
			ID:           2,
			PatientID:    1,
			DoctorID:     2,
			Diagnosis:    "Tension headache",
			Prescription: "Ibuprofen 400mg as needed",
			RecordDate:   "2025-05-01",
			Notes:        "Advised stress management techniques",
		},
	}
}

// Ensure populates every collection with the sample dataset the first time
// the store is used. The write is guarded by a persisted flag: once set,
// later runs write nothing, even if collections were since emptied by
// deletions.
func Ensure(kv *storage.Store) error {
	raw, ok, err := kv.Get(dal.InitializedKey)
	if err != nil {
		metrics.RecordSeedRun("failed")
		return fmt.Errorf("check seed flag: %w", err)
	}
	if ok && string(raw) == "true" {
		log.Debug().Msg("Store already initialized, skipping seed")
		metrics.RecordSeedRun("already_initialized")
		return nil
	}

	if err := writeCollection(kv, dal.PatientsKey, samplePatients()); err != nil {
		metrics.RecordSeedRun("failed")
		return err
	}
	if err := writeCollection(kv, dal.DoctorsKey, sampleDoctors()); err != nil {
		metrics.RecordSeedRun("failed")
		return err
	}
	if err := writeCollection(kv, dal.AppointmentsKey, sampleAppointments()); err != nil {
		metrics.RecordSeedRun("failed")
		return err
	}
	if err := writeCollection(kv, dal.DepartmentsKey, sampleDepartments()); err != nil {
		metrics.RecordSeedRun("failed")
		return err
	}
	if err := writeCollection(kv, dal.MedicalRecordsKey, sampleMedicalRecords()); err != nil {
		metrics.RecordSeedRun("failed")
		return err
	}

	if err := kv.Put(dal.InitializedKey, []byte("true")); err != nil {
		metrics.RecordSeedRun("failed")
		return fmt.Errorf("set seed flag: %w", err)
	}

	log.Info().Msg("Store seeded with sample dataset")
	metrics.RecordSeedRun("seeded")
	return nil
}

// Reset clears every collection and the initialization flag so the next
// Ensure seeds again. Intended for tests; production code never unseeds.
func Reset(kv *storage.Store) error {
	keys := []string{
		dal.PatientsKey,
		dal.DoctorsKey,
		dal.AppointmentsKey,
		dal.DepartmentsKey,
		dal.MedicalRecordsKey,
		dal.InitializedKey,
	}
	for _, key := range keys {
		if err := kv.Delete(key); err != nil {
			return fmt.Errorf("reset %s: %w", key, err)
		}
	}
	log.Debug().Msg("Store reset")
	return nil
}

func writeCollection[T any](kv *storage.Store, key string, items []T) error {
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode seed %s: %w", key, err)
	}
	if err := kv.Put(key, data); err != nil {
		return fmt.Errorf("write seed %s: %w", key, err)
	}
	return nil
}
