package dal

import (
	"testing"

	"github.com/stretchr/testify/require"

	"clinicore.io/clinicore/internal/models"
)

func TestPatientListEmptyStore(t *testing.T) {
	cs, _, _ := newTestEnv(t, Options{})
	patients := NewPatientModel(cs)

	require.Empty(t, patients.List())
}

func TestPatientCreateAllocatesSequentialIDs(t *testing.T) {
	cs, _, _ := newTestEnv(t, Options{})
	patients := NewPatientModel(cs)

	first, err := patients.Create(models.Patient{FirstName: "John", LastName: "Doe"})
	require.NoError(t, err)
	require.Equal(t, 1, first.ID)

	second, err := patients.Create(models.Patient{FirstName: "Jane", LastName: "Smith"})
	require.NoError(t, err)
	require.Equal(t, 2, second.ID)
}

func TestPatientCreateStampsRegistrationDate(t *testing.T) {
	cs, _, _ := newTestEnv(t, Options{Now: clockAt(t, "2025-05-11")})
	patients := NewPatientModel(cs)

	created, err := patients.Create(models.Patient{
		FirstName:        "John",
		LastName:         "Doe",
		RegistrationDate: "1999-01-01", // caller-supplied value must be overridden
	})
	require.NoError(t, err)
	require.Equal(t, "2025-05-11", created.RegistrationDate)

	stored, err := patients.GetByID(created.ID)
	require.NoError(t, err)
	require.Equal(t, "2025-05-11", stored.RegistrationDate)
}

func TestPatientGetByID(t *testing.T) {
	cs, _, _ := newTestEnv(t, Options{})
	patients := NewPatientModel(cs)

	created, err := patients.Create(models.Patient{FirstName: "John", LastName: "Doe"})
	require.NoError(t, err)

	found, err := patients.GetByID(created.ID)
	require.NoError(t, err)
	require.Equal(t, "John", found.FirstName)

	_, err = patients.GetByID(999)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestPatientUpdatePreservesIDAndPosition(t *testing.T) {
	cs, _, _ := newTestEnv(t, Options{})
	patients := NewPatientModel(cs)

	for _, name := range []string{"John", "Jane", "Robert"} {
		_, err := patients.Create(models.Patient{FirstName: name})
		require.NoError(t, err)
	}

	updated, err := patients.Update(2, models.Patient{
		ID:        777, // must be ignored in favor of the addressed id
		FirstName: "Janet",
	})
	require.NoError(t, err)
	require.Equal(t, 2, updated.ID)

	list := patients.List()
	require.Len(t, list, 3)
	require.Equal(t, []int{1, 2, 3}, []int{list[0].ID, list[1].ID, list[2].ID})
	require.Equal(t, "Janet", list[1].FirstName, "updated record keeps its position")
}

func TestPatientUpdateMissingIDFailsLoudly(t *testing.T) {
	cs, _, recorder := newTestEnv(t, Options{})
	patients := NewPatientModel(cs)

	_, err := patients.Update(42, models.Patient{FirstName: "Nobody"})
	require.ErrorIs(t, err, ErrNotFound)
	require.Contains(t, recorder.Errors, "Patient not found")
}

func TestPatientDeleteIdempotenceSignal(t *testing.T) {
	cs, _, _ := newTestEnv(t, Options{})
	patients := NewPatientModel(cs)

	created, err := patients.Create(models.Patient{FirstName: "John"})
	require.NoError(t, err)

	before := patients.List()
	require.False(t, patients.Delete(999), "deleting a missing id returns false")
	require.Equal(t, before, patients.List(), "failed delete writes nothing")

	require.True(t, patients.Delete(created.ID))
	require.Empty(t, patients.List())

	require.False(t, patients.Delete(created.ID), "second delete of the same id returns false")
}

func TestPatientIDReuseAfterDeletingMax(t *testing.T) {
	cs, _, _ := newTestEnv(t, Options{})
	patients := NewPatientModel(cs)

	_, err := patients.Create(models.Patient{FirstName: "John"})
	require.NoError(t, err)
	second, err := patients.Create(models.Patient{FirstName: "Jane"})
	require.NoError(t, err)
	require.Equal(t, 2, second.ID)

	require.True(t, patients.Delete(second.ID))

	reused, err := patients.Create(models.Patient{FirstName: "Robert"})
	require.NoError(t, err)
	require.Equal(t, 2, reused.ID, "max+1 allocation reuses a freed max id")
}

func TestPatientListDecodeFailurePolicy(t *testing.T) {
	cs, kv, recorder := newTestEnv(t, Options{})
	patients := NewPatientModel(cs)

	_, err := patients.Create(models.Patient{FirstName: "John"})
	require.NoError(t, err)

	// Corrupt the persisted payload behind the repository's back.
	require.NoError(t, kv.Put(PatientsKey, []byte("{definitely not json")))

	require.Empty(t, patients.List(), "unreadable collection yields an empty sequence")
	require.Contains(t, recorder.Errors, "Failed to fetch patients")
}
