package dal

import (
	"testing"

	"github.com/stretchr/testify/require"

	"clinicore.io/clinicore/internal/models"
)

func TestMedicalRecordCRUD(t *testing.T) {
	cs, _, _ := newTestEnv(t, Options{})
	records := NewMedicalRecordModel(cs)

	created, err := records.Create(models.MedicalRecord{
		PatientID:    3,
		DoctorID:     1,
		Diagnosis:    "Type 2 Diabetes",
		Prescription: "Metformin 500mg twice daily",
		RecordDate:   "2025-04-25",
	})
	require.NoError(t, err)
	require.Equal(t, 1, created.ID)

	updated, err := records.Update(created.ID, models.MedicalRecord{
		PatientID: 3,
		DoctorID:  1,
		Diagnosis: "Type 2 Diabetes, controlled",
	})
	require.NoError(t, err)
	require.Equal(t, created.ID, updated.ID)

	_, err = records.Update(42, models.MedicalRecord{})
	require.ErrorIs(t, err, ErrNotFound)

	require.True(t, records.Delete(created.ID))
	require.False(t, records.Delete(created.ID))
}

func TestMedicalRecordListByPatient(t *testing.T) {
	cs, _, _ := newTestEnv(t, Options{})
	records := NewMedicalRecordModel(cs)

	fixtures := []models.MedicalRecord{
		{PatientID: 3, DoctorID: 1, Diagnosis: "Type 2 Diabetes"},
		{PatientID: 1, DoctorID: 2, Diagnosis: "Tension headache"},
		{PatientID: 3, DoctorID: 2, Diagnosis: "Hypertension"},
	}
	for _, record := range fixtures {
		_, err := records.Create(record)
		require.NoError(t, err)
	}

	forPatient := records.ListByPatient(3)
	require.Len(t, forPatient, 2)
	require.Equal(t, "Type 2 Diabetes", forPatient[0].Diagnosis)
	require.Equal(t, "Hypertension", forPatient[1].Diagnosis)

	require.Empty(t, records.ListByPatient(999), "unknown patient id yields an empty result")
}
