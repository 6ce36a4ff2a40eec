package appointments

// Appointment is one bookable slot row from the appointments sheet.
// Patient fields are populated only once the slot has been booked.
type Appointment struct {
	Date         string `json:"date"`
	Time         string `json:"time"`
	Provider     string `json:"provider"`
	Status       string `json:"status"`
	PatientName  string `json:"patientName"`
	PatientEmail string `json:"patientEmail"`
	PatientPhone string `json:"patientPhone"`
}

// Sheet layout: row 1 is the header, data starts at row 2, columns A-G hold
// date, time, provider, status, patientName, patientEmail, patientPhone.
const firstDataRow = 2

const (
	colDate = iota
	colTime
	colProvider
	colStatus
	colPatientName
	colPatientEmail
	colPatientPhone
)

const (
	readRangeFull  = "A2:G"
	readRangeSlots = "A2:D"

	statusAvailable = "available"
	statusBooked    = "booked"
)

// fromRow projects a sheet row into an Appointment, defaulting missing
// trailing cells to the empty string.
func fromRow(row []string) Appointment {
	cell := func(i int) string {
		if i < len(row) {
			return row[i]
		}
		return ""
	}
	return Appointment{
		Date:         cell(colDate),
		Time:         cell(colTime),
		Provider:     cell(colProvider),
		Status:       cell(colStatus),
		PatientName:  cell(colPatientName),
		PatientEmail: cell(colPatientEmail),
		PatientPhone: cell(colPatientPhone),
	}
}
