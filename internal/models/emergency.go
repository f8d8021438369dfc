package models

// EmergencyState - состояние тревоги отслеживаемого объекта.
// Переходы: normal -> panic -> resolved -> normal.
type EmergencyState string

const (
	EmergencyNormal   EmergencyState = "normal"
	EmergencyPanic    EmergencyState = "panic"
	EmergencyResolved EmergencyState = "resolved"
)

// IsValid сообщает, является ли значение одним из известных состояний
func (s EmergencyState) IsValid() bool {
	switch s {
	case EmergencyNormal, EmergencyPanic, EmergencyResolved:
		return true
	}
	return false
}

func (s EmergencyState) String() string {
	return string(s)
}
