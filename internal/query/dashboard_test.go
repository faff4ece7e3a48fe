package query

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"clinicore.io/clinicore/internal/dal"
	"clinicore.io/clinicore/internal/notify"
	"clinicore.io/clinicore/internal/seed"
	"clinicore.io/clinicore/internal/storage"
)

// newSeededService builds a query service over a freshly seeded store with
// the clock frozen at the given date.
func newSeededService(t *testing.T, today string) (*Service, *dal.CollectionStore) {
	t.Helper()

	kv, err := storage.Open(filepath.Join(t.TempDir(), "query.db"), "clinic_")
	require.NoError(t, err)
	t.Cleanup(func() { kv.Close() })

	require.NoError(t, seed.Ensure(kv))

	parsed, err := time.Parse("2006-01-02", today)
	require.NoError(t, err)

	cs := dal.NewCollectionStore(kv, &notify.Recorder{}, dal.Options{
		Now: func() time.Time { return parsed },
	})
	return NewService(cs), cs
}

func TestDashboardStatsOnSeedData(t *testing.T) {
	// Seed appointments are dated 2025-05-10 (completed), 2025-05-11 and
	// 2025-05-12 (both scheduled).
	service, _ := newSeededService(t, "2025-05-11")

	stats := service.DashboardStats()
	require.Equal(t, 3, stats.TotalPatients)
	require.Equal(t, 3, stats.TotalDoctors)
	require.Equal(t, 3, stats.TotalAppointments)
	require.Equal(t, 2, stats.UpcomingAppointments, "scheduled appointments dated today or later")
}

func TestDashboardStatsPastClockCountsNoUpcoming(t *testing.T) {
	service, _ := newSeededService(t, "2025-05-13")

	stats := service.DashboardStats()
	require.Equal(t, 3, stats.TotalAppointments)
	require.Equal(t, 0, stats.UpcomingAppointments)
}

func TestUpcomingAppointmentsSortedAscending(t *testing.T) {
	service, _ := newSeededService(t, "2025-05-11")

	upcoming := service.UpcomingAppointments(5)
	require.Len(t, upcoming, 2)
	require.Equal(t, "2025-05-11", upcoming[0].AppointmentDate)
	require.Equal(t, "2025-05-12", upcoming[1].AppointmentDate)

	// Seed appointment 1 references patient John Doe and doctor Michael Brown.
	require.Equal(t, "John Doe", upcoming[0].PatientName)
	require.Equal(t, "Dr. Michael Brown", upcoming[0].DoctorName)
}

func TestUpcomingAppointmentsHonorsLimit(t *testing.T) {
	service, _ := newSeededService(t, "2025-05-11")

	upcoming := service.UpcomingAppointments(1)
	require.Len(t, upcoming, 1)
	require.Equal(t, "2025-05-11", upcoming[0].AppointmentDate)
}

func TestRecentAppointmentsCompletedDescending(t *testing.T) {
	service, _ := newSeededService(t, "2025-05-11")

	recent := service.RecentAppointments(5)
	require.Len(t, recent, 1)
	require.Equal(t, "2025-05-10", recent[0].AppointmentDate)
	require.Equal(t, "Jane Smith", recent[0].PatientName)
	require.Equal(t, "Dr. Emily Davis", recent[0].DoctorName)
}

func TestSearchFacade(t *testing.T) {
	service, _ := newSeededService(t, "2025-05-11")

	require.Empty(t, service.SearchPatients(""))
	require.Empty(t, service.SearchPatients("   "))

	patients := service.SearchPatients("jane")
	require.Len(t, patients, 1)
	require.Equal(t, "Smith", patients[0].LastName)

	doctors := service.SearchDoctors("neuro")
	require.Len(t, doctors, 1)
	require.Equal(t, "Brown", doctors[0].LastName)
}
