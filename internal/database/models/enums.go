package models

// PTOType defines the kinds of paid-time-off records
type PTOType string

const (
	PTOTypeFullDay   PTOType = "full_day"
	PTOTypeMorning   PTOType = "morning"
	PTOTypeAfternoon PTOType = "afternoon"
	PTOTypePartial   PTOType = "partial"
)

// IsValid checks if the PTOType is valid
func (p PTOType) IsValid() bool {
	switch p {
	case PTOTypeFullDay, PTOTypeMorning, PTOTypeAfternoon, PTOTypePartial:
		return true
	}
	return false
}
