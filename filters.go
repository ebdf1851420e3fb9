package proofpoint

// Sort directions accepted by SortParam.
const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

// SortParam orders search results by a single column.
type SortParam struct {
	ColID string `json:"colId"`
	Sort  string `json:"sort"` // SortAsc or SortDesc
}

// TimeRangeFilter restricts a search to a time window. Both bounds are
// required, formatted "YYYY-MM-DD hh:mm:ss" in UTC.
type TimeRangeFilter struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// IncidentFilters narrows an incident search. All fields are optional;
// absent fields are omitted entirely from the serialized payload — the API
// rejects explicit nulls for optional filters.
type IncidentFilters struct {
	TimeRange    *TimeRangeFilter `json:"time_range_filter,omitempty"`
	IncidentIDs  []string         `json:"incident_id_filters,omitempty"`
	Other        []string         `json:"other_filters,omitempty"`
	Priorities   []string         `json:"priority_filters,omitempty"`
	Sources      []string         `json:"source_filters,omitempty"`
	Dispositions []string         `json:"disposition_filters,omitempty"`
	Verdicts     []string         `json:"verdict_filters,omitempty"`
	Confidences  []string         `json:"confidence_filters,omitempty"`
}

// MessageFilters narrows a message search. It shares the incident criteria
// by embedding IncidentFilters — the embedded fields serialize flattened
// alongside the message-specific ones.
type MessageFilters struct {
	IncidentFilters

	MessageIDs         []string `json:"message_id_filters,omitempty"`
	RecipientAddresses []string `json:"recipient_address_filters,omitempty"`
	SenderAddresses    []string `json:"sender_address_filters,omitempty"`
	Subjects           []string `json:"subject_filters,omitempty"`
	Statuses           []string `json:"status_filters,omitempty"`
	Quarantines        []string `json:"quarantine_filters,omitempty"`
	TAPThreats         []string `json:"tap_threat_filters,omitempty"`
	TAPThreatTypes     []string `json:"tap_threat_type_filters,omitempty"`
}
