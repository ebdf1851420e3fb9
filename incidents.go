package proofpoint

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

// Default page bounds matching the remote API's documented values.
const (
	defaultIncidentEndRow        = 200
	defaultIncidentMessageEndRow = 100
	defaultMessageEndRow         = 100
)

// IncidentSearchParams configures SearchIncidents. The zero value (or a nil
// pointer) searches everything, rows 0 through 200.
type IncidentSearchParams struct {
	Filters    *IncidentFilters
	StartRow   int
	EndRow     int // 0 means the default of 200
	SortParams []SortParam
}

type incidentSearchRequest struct {
	StartRow   int              `json:"startRow"`
	EndRow     int              `json:"endRow"`
	Filters    *IncidentFilters `json:"filters,omitempty"`
	SortParams []SortParam      `json:"sortParams,omitempty"`
}

// SearchIncidents searches for incidents matching the given criteria.
func (c *Client) SearchIncidents(ctx context.Context, params *IncidentSearchParams) (*IncidentSearchResult, error) {
	if params == nil {
		params = &IncidentSearchParams{}
	}

	payload := incidentSearchRequest{
		StartRow:   params.StartRow,
		EndRow:     params.EndRow,
		Filters:    params.Filters,
		SortParams: params.SortParams,
	}
	if payload.EndRow == 0 {
		payload.EndRow = defaultIncidentEndRow
	}

	var result IncidentSearchResult
	if err := c.apiClient.Do(ctx, http.MethodPost, apiPrefix+"/incidents", nil, payload, &result); err != nil {
		return nil, wrapError(err)
	}
	return &result, nil
}

// GetIncidentCount returns the number of incidents matching the filters.
// The endpoint has been observed returning both a bare number and a
// {"count": n} object; both shapes are accepted.
func (c *Client) GetIncidentCount(ctx context.Context, filters *IncidentFilters) (int, error) {
	payload := struct {
		Filters *IncidentFilters `json:"filters,omitempty"`
	}{Filters: filters}

	var raw json.RawMessage
	if err := c.apiClient.Do(ctx, http.MethodPost, apiPrefix+"/incidents/count", nil, payload, &raw); err != nil {
		return 0, wrapError(err)
	}

	var count int
	if err := json.Unmarshal(raw, &count); err == nil {
		return count, nil
	}

	var wrapped struct {
		Count int `json:"count"`
	}
	if err := json.Unmarshal(raw, &wrapped); err == nil {
		return wrapped.Count, nil
	}

	return 0, fmt.Errorf("unexpected count response: %s", raw)
}

// GetIncidentDetails retrieves a single incident by its UUID.
func (c *Client) GetIncidentDetails(ctx context.Context, incidentID string) (*Incident, error) {
	path := fmt.Sprintf("%s/incidents/%s", apiPrefix, url.PathEscape(incidentID))

	var incident Incident
	if err := c.apiClient.Do(ctx, http.MethodGet, path, nil, nil, &incident); err != nil {
		return nil, wrapError(err)
	}
	return &incident, nil
}

// IncidentMessagesParams configures GetIncidentWithMessages. The zero value
// (or a nil pointer) fetches message rows 0 through 100.
type IncidentMessagesParams struct {
	StartRow   int
	EndRow     int // 0 means the default of 100
	SortParams []SortParam
}

type incidentMessagesRequest struct {
	StartRow   int         `json:"startRow"`
	EndRow     int         `json:"endRow"`
	SortParams []SortParam `json:"sortParams,omitempty"`
}

// GetIncidentWithMessages retrieves an incident along with a page of its
// associated messages.
func (c *Client) GetIncidentWithMessages(ctx context.Context, incidentID string, params *IncidentMessagesParams) (*IncidentMessages, error) {
	if params == nil {
		params = &IncidentMessagesParams{}
	}

	payload := incidentMessagesRequest{
		StartRow:   params.StartRow,
		EndRow:     params.EndRow,
		SortParams: params.SortParams,
	}
	if payload.EndRow == 0 {
		payload.EndRow = defaultIncidentMessageEndRow
	}

	path := fmt.Sprintf("%s/incidents/%s/messages", apiPrefix, url.PathEscape(incidentID))

	var result IncidentMessages
	if err := c.apiClient.Do(ctx, http.MethodPost, path, nil, payload, &result); err != nil {
		return nil, wrapError(err)
	}
	return &result, nil
}

// CreateIncident creates a new incident manually.
func (c *Client) CreateIncident(ctx context.Context, title, description, priority string) (*CreateIncidentResult, error) {
	payload := struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Priority    string `json:"priority"`
	}{Title: title, Description: description, Priority: priority}

	var result CreateIncidentResult
	if err := c.apiClient.Do(ctx, http.MethodPost, apiPrefix+"/incidents/createIncident", nil, payload, &result); err != nil {
		return nil, wrapError(err)
	}
	return &result, nil
}

type uploadMessageBody struct {
	RFCMessageID       string   `json:"rfcMessageId"`
	RecipientAddresses []string `json:"recipient_addresses"`
	Sender             string   `json:"sender,omitempty"`
	Subject            string   `json:"subject,omitempty"`
	Disposition        string   `json:"disposition,omitempty"`
}

type uploadMessageRequest struct {
	IncidentID string            `json:"incident_id"`
	Message    uploadMessageBody `json:"message"`
}

// UploadMessage attaches a message to an existing incident.
func (c *Client) UploadMessage(ctx context.Context, params UploadMessageParams) (*UploadMessageResult, error) {
	payload := uploadMessageRequest{
		IncidentID: params.IncidentID,
		Message: uploadMessageBody{
			RFCMessageID:       params.RFCMessageID,
			RecipientAddresses: params.RecipientAddresses,
			Sender:             params.Sender,
			Subject:            params.Subject,
			Disposition:        params.Disposition,
		},
	}

	var result UploadMessageResult
	if err := c.apiClient.Do(ctx, http.MethodPost, apiPrefix+"/incidents/uploadMessage", nil, payload, &result); err != nil {
		return nil, wrapError(err)
	}
	return &result, nil
}
