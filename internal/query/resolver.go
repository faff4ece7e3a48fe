package query

import (
	"clinicore.io/clinicore/internal/dal"
	"clinicore.io/clinicore/internal/models"
)

// Sentinel display names for dangling soft references.
const (
	UnknownPatient = "Unknown Patient"
	UnknownDoctor  = "Unknown Doctor"
)

// Service composes the entity repositories into derived, display-oriented
// views. It never mutates the underlying collections.
type Service struct {
	cs           *dal.CollectionStore
	patients     *dal.PatientModel
	doctors      *dal.DoctorModel
	appointments *dal.AppointmentModel
	records      *dal.MedicalRecordModel
}

// NewService creates a query service over the given collection store.
func NewService(cs *dal.CollectionStore) *Service {
	return &Service{
		cs:           cs,
		patients:     dal.NewPatientModel(cs),
		doctors:      dal.NewDoctorModel(cs),
		appointments: dal.NewAppointmentModel(cs),
		records:      dal.NewMedicalRecordModel(cs),
	}
}

// patientName resolves a soft patient reference to a display name,
// degrading to the sentinel when the reference dangles.
func (s *Service) patientName(id int) string {
	patient, err := s.patients.GetByID(id)
	if err != nil {
		return UnknownPatient
	}
	return patient.FirstName + " " + patient.LastName
}

// doctorName resolves a soft doctor reference to a display name with the
// "Dr." prefix, degrading to the sentinel when the reference dangles.
func (s *Service) doctorName(id int) string {
	doctor, err := s.doctors.GetByID(id)
	if err != nil {
		return UnknownDoctor
	}
	return "Dr. " + doctor.FirstName + " " + doctor.LastName
}

// ResolveAppointment decorates an appointment with the patient and doctor
// names it references. Dangling references yield sentinel names, never an
// error.
func (s *Service) ResolveAppointment(appointment models.Appointment) models.AppointmentView {
	return models.AppointmentView{
		Appointment: appointment,
		PatientName: s.patientName(appointment.PatientID),
		DoctorName:  s.doctorName(appointment.DoctorID),
	}
}

// ResolveMedicalRecord decorates a medical record with resolved names,
// with the same degradation contract as ResolveAppointment.
func (s *Service) ResolveMedicalRecord(record models.MedicalRecord) models.MedicalRecordView {
	return models.MedicalRecordView{
		MedicalRecord: record,
		PatientName:   s.patientName(record.PatientID),
		DoctorName:    s.doctorName(record.DoctorID),
	}
}

// ResolveMedicalRecords decorates a slice of records, preserving order.
func (s *Service) ResolveMedicalRecords(records []models.MedicalRecord) []models.MedicalRecordView {
	views := make([]models.MedicalRecordView, 0, len(records))
	for _, record := range records {
		views = append(views, s.ResolveMedicalRecord(record))
	}
	return views
}
