package dto

// TapRequest identifies the student being cycled to their next status.
type TapRequest struct {
	Student string `json:"student" validate:"required"`
}

// TapResponse reports the applied transition.
type TapResponse struct {
	Student      string `json:"student"`
	Action       string `json:"action"`
	Status       string `json:"status"`
	CheckInTime  string `json:"checkInTime,omitempty"`
	CheckOutTime string `json:"checkOutTime,omitempty"`
	Day          string `json:"day"`
}

// AuditEvent is one row of the day's transition trail.
type AuditEvent struct {
	ID         string `json:"id"`
	Day        string `json:"day"`
	Student    string `json:"student"`
	Action     string `json:"action"`
	FromStatus string `json:"fromStatus"`
	ToStatus   string `json:"toStatus"`
	Campus     string `json:"campus,omitempty"`
	Classroom  string `json:"classroom,omitempty"`
	OccurredAt string `json:"occurredAt"`
}
