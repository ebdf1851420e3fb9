package proofpoint

import "time"

// Workflow types accepted by ListWorkflows.
const (
	WorkflowTypeMessage  = "message"
	WorkflowTypeIncident = "incident"
)

// Workflow is a configured manual workflow.
type Workflow struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	Enabled     bool   `json:"enabled"`
	Description string `json:"description,omitempty"`
}

// WorkflowRun is the status of a triggered workflow run.
type WorkflowRun struct {
	RunID      string `json:"runId"`
	WorkflowID string `json:"workflowId,omitempty"`
	Status     string `json:"status"`
}

// Incident is an incident record as returned by searches and detail lookups.
type Incident struct {
	ID          string    `json:"id"`
	DisplayID   int       `json:"displayId"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Priority    string    `json:"priority,omitempty"`
	State       string    `json:"state,omitempty"`
	Source      string    `json:"source,omitempty"`
	Disposition string    `json:"disposition,omitempty"`
	Verdict     string    `json:"verdict,omitempty"`
	CreatedAt   time.Time `json:"createdAt,omitempty"`
	UpdatedAt   time.Time `json:"updatedAt,omitempty"`
}

// IncidentSearchResult is a page of incident search results.
type IncidentSearchResult struct {
	Incidents []Incident `json:"incidents"`
	TotalRows int        `json:"totalRows,omitempty"`
}

// IncidentMessages is an incident together with a page of its messages.
type IncidentMessages struct {
	Incident  *Incident `json:"incident,omitempty"`
	Messages  []Message `json:"messages"`
	TotalRows int       `json:"totalRows,omitempty"`
}

// CreateIncidentResult summarizes a manually created incident.
type CreateIncidentResult struct {
	ID        string    `json:"id"`
	DisplayID int       `json:"displayId"`
	CreatedAt time.Time `json:"createdAt"`
}

// Message is a message record as returned by searches and detail lookups.
type Message struct {
	ID           string    `json:"id"`
	IncidentID   string    `json:"incidentId,omitempty"`
	RFCMessageID string    `json:"rfcMessageId,omitempty"`
	Sender       string    `json:"sender,omitempty"`
	Subject      string    `json:"subject,omitempty"`
	Disposition  string    `json:"disposition,omitempty"`
	Status       string    `json:"status,omitempty"`
	Quarantine   string    `json:"quarantine,omitempty"`
	ReceivedAt   time.Time `json:"receivedAt,omitempty"`
}

// MessageSearchResult is a page of message search results.
type MessageSearchResult struct {
	Messages  []Message `json:"messages"`
	TotalRows int       `json:"totalRows,omitempty"`
}

// UploadMessageParams describes a message to attach to an existing incident.
// RFCMessageID must already include its angle brackets (e.g. "<id@host>");
// the client neither validates nor adds them. Sender, Subject and
// Disposition are optional and omitted from the payload when empty.
type UploadMessageParams struct {
	IncidentID         string
	RFCMessageID       string
	RecipientAddresses []string
	Sender             string
	Subject            string
	Disposition        string
}

// UploadMessageResult reports the outcome of an UploadMessage call.
type UploadMessageResult struct {
	RFCMessageID            string `json:"rfcMessageId"`
	IncidentID              string `json:"incident_id"`
	IncidentDisplayID       int    `json:"incidentDisplayId"`
	UploadedRecipientsCount int    `json:"uploadedRecipientsCount"`
}
