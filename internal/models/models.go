package models

// Appointment status values. No other value is ever persisted.
const (
	StatusScheduled = "scheduled"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// Patient represents a registered patient record
type Patient struct {
	ID               int    `json:"id"`
	FirstName        string `json:"firstName"`
	LastName         string `json:"lastName"`
	DateOfBirth      string `json:"dateOfBirth"`
	Gender           string `json:"gender"`
	ContactNumber    string `json:"contactNumber"`
	Email            string `json:"email"`
	Address          string `json:"address"`
	BloodGroup       string `json:"bloodGroup"`
	RegistrationDate string `json:"registrationDate"`
	MedicalHistory   string `json:"medicalHistory,omitempty"`
}

// Doctor represents a staff doctor record. Department is a free-text
// label, not a foreign key.
type Doctor struct {
	ID             int    `json:"id"`
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	Specialization string `json:"specialization"`
	ContactNumber  string `json:"contactNumber"`
	Email          string `json:"email"`
	Department     string `json:"department"`
	JoinDate       string `json:"joinDate"`
	Schedule       string `json:"schedule,omitempty"`
}

// Appointment links a patient and a doctor at a date/time. PatientID and
// DoctorID are soft references: validity is not checked on write.
type Appointment struct {
	ID              int    `json:"id"`
	PatientID       int    `json:"patientId"`
	DoctorID        int    `json:"doctorId"`
	AppointmentDate string `json:"appointmentDate"`
	AppointmentTime string `json:"appointmentTime"`
	Purpose         string `json:"purpose"`
	Status          string `json:"status"`
	Notes           string `json:"notes,omitempty"`
}

// Department is read-only reference data in this core.
type Department struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	Head          string `json:"head"`
	Location      string `json:"location"`
	ContactNumber string `json:"contactNumber"`
}

// MedicalRecord carries the same soft-reference policy as Appointment.
type MedicalRecord struct {
	ID           int    `json:"id"`
	PatientID    int    `json:"patientId"`
	DoctorID     int    `json:"doctorId"`
	Diagnosis    string `json:"diagnosis"`
	Prescription string `json:"prescription"`
	RecordDate   string `json:"recordDate"`
	Notes        string `json:"notes,omitempty"`
}

// DashboardStats holds the derived counts shown on the dashboard.
type DashboardStats struct {
	TotalPatients        int `json:"totalPatients"`
	TotalDoctors         int `json:"totalDoctors"`
	TotalAppointments    int `json:"totalAppointments"`
	UpcomingAppointments int `json:"upcomingAppointments"`
}

// AppointmentView is an Appointment decorated with display-only names
// resolved from the patient and doctor collections.
type AppointmentView struct {
	Appointment
	PatientName string `json:"patientName"`
	DoctorName  string `json:"doctorName"`
}

// MedicalRecordView is a MedicalRecord decorated with resolved names.
type MedicalRecordView struct {
	MedicalRecord
	PatientName string `json:"patientName"`
	DoctorName  string `json:"doctorName"`
}

func (p Patient) EntityID() int       { return p.ID }
func (d Doctor) EntityID() int        { return d.ID }
func (a Appointment) EntityID() int   { return a.ID }
func (d Department) EntityID() int    { return d.ID }
func (m MedicalRecord) EntityID() int { return m.ID }

// Identified is implemented by every persisted entity kind.
type Identified interface {
	EntityID() int
}

// ValidStatus reports whether s is one of the closed appointment status set.
func ValidStatus(s string) bool {
	switch s {
	case StatusScheduled, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}
