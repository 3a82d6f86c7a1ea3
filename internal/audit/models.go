package audit

import "time"

// Action names a state change worth recording.
type Action string

const (
	ActionPersonAdded    Action = "person_added"
	ActionPersonRemoved  Action = "person_removed"
	ActionVenuesUpdated  Action = "venues_updated"
	ActionAssignmentRun  Action = "assignment_run"
	ActionPersonMoved    Action = "person_moved"
	ActionRosterSeeded   Action = "roster_seeded"
	ActionExportRendered Action = "export_rendered"
)

// Event is emitted from the staffing service to capture key actions. Keep it
// transport-agnostic so stores and sinks can fan out.
type Event struct {
	Timestamp time.Time `json:"timestamp"`
	Action    Action    `json:"action"`
	Subject   string    `json:"subject,omitempty"`
	Detail    string    `json:"detail,omitempty"`
	RequestID string    `json:"request_id,omitempty"`
}
