package proofpoint

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchIncidents(t *testing.T) {
	client, captured := newTestClient(t, 200, `{
		"incidents": [
			{"id":"b2c1f0e4-0000-0000-0000-000000000001","displayId":101,"title":"Phish report","priority":"high","createdAt":"2025-06-05T12:30:00Z"}
		],
		"totalRows": 1
	}`)

	result, err := client.SearchIncidents(context.Background(), &IncidentSearchParams{
		StartRow: 10,
		EndRow:   20,
		Filters:  &IncidentFilters{Priorities: []string{"high"}},
		SortParams: []SortParam{
			{ColID: "createdAt", Sort: SortDesc},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, captured.Method)
	assert.Equal(t, "/api/v1/tric/incidents", captured.Path)
	assert.JSONEq(t, `{
		"startRow": 10,
		"endRow": 20,
		"filters": {"priority_filters": ["high"]},
		"sortParams": [{"colId": "createdAt", "sort": "desc"}]
	}`, string(captured.Body))

	assert.Equal(t, 1, result.TotalRows)
	require.Len(t, result.Incidents, 1)
	assert.Equal(t, 101, result.Incidents[0].DisplayID)
	assert.Equal(t, "Phish report", result.Incidents[0].Title)
	assert.Equal(t, time.Date(2025, 6, 5, 12, 30, 0, 0, time.UTC), result.Incidents[0].CreatedAt)
}

func TestGetIncidentCount(t *testing.T) {
	tests := []struct {
		name     string
		response string
		want     int
	}{
		{"bare number", `42`, 42},
		{"wrapped object", `{"count": 42}`, 42},
		{"zero", `0`, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, captured := newTestClient(t, 200, tt.response)

			count, err := client.GetIncidentCount(context.Background(), &IncidentFilters{Sources: []string{"tap"}})
			require.NoError(t, err)

			assert.Equal(t, "/api/v1/tric/incidents/count", captured.Path)
			assert.JSONEq(t, `{"filters":{"source_filters":["tap"]}}`, string(captured.Body))
			assert.Equal(t, tt.want, count)
		})
	}
}

func TestGetIncidentCount_NilFilters(t *testing.T) {
	client, captured := newTestClient(t, 200, `7`)

	count, err := client.GetIncidentCount(context.Background(), nil)
	require.NoError(t, err)

	assert.JSONEq(t, `{}`, string(captured.Body))
	assert.Equal(t, 7, count)
}

func TestGetIncidentCount_UnexpectedShape(t *testing.T) {
	client, _ := newTestClient(t, 200, `"lots"`)

	_, err := client.GetIncidentCount(context.Background(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected count response")
}

func TestGetIncidentDetails(t *testing.T) {
	incidentID := uuid.NewString()
	client, captured := newTestClient(t, 200, fmt.Sprintf(
		`{"id":%q,"displayId":55,"title":"Reported spam","state":"open"}`, incidentID))

	incident, err := client.GetIncidentDetails(context.Background(), incidentID)
	require.NoError(t, err)

	assert.Equal(t, http.MethodGet, captured.Method)
	assert.Equal(t, "/api/v1/tric/incidents/"+incidentID, captured.Path)

	assert.Equal(t, incidentID, incident.ID)
	assert.Equal(t, 55, incident.DisplayID)
	assert.Equal(t, "open", incident.State)
}

func TestGetIncidentDetails_NotFound(t *testing.T) {
	client, _ := newTestClient(t, 404, `{"errorMessage":"incident not found"}`)

	_, err := client.GetIncidentDetails(context.Background(), uuid.NewString())
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 404, apiErr.StatusCode)
	assert.Equal(t, "incident not found", apiErr.Message)
	assert.False(t, errors.Is(err, ErrBadRequest))
}

func TestGetIncidentWithMessages(t *testing.T) {
	incidentID := uuid.NewString()
	client, captured := newTestClient(t, 200, fmt.Sprintf(`{
		"incident": {"id":%q,"displayId":12,"title":"Campaign"},
		"messages": [{"id":"msg-1","subject":"Invoice attached"}],
		"totalRows": 1
	}`, incidentID))

	result, err := client.GetIncidentWithMessages(context.Background(), incidentID, nil)
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, captured.Method)
	assert.Equal(t, "/api/v1/tric/incidents/"+incidentID+"/messages", captured.Path)
	assert.JSONEq(t, `{"startRow":0,"endRow":100}`, string(captured.Body))

	require.NotNil(t, result.Incident)
	assert.Equal(t, 12, result.Incident.DisplayID)
	require.Len(t, result.Messages, 1)
	assert.Equal(t, "Invoice attached", result.Messages[0].Subject)
}

func TestGetIncidentWithMessages_Paging(t *testing.T) {
	client, captured := newTestClient(t, 200, `{"messages":[],"totalRows":0}`)

	_, err := client.GetIncidentWithMessages(context.Background(), "inc-1", &IncidentMessagesParams{
		StartRow:   100,
		EndRow:     150,
		SortParams: []SortParam{{ColID: "receivedAt", Sort: SortAsc}},
	})
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"startRow": 100,
		"endRow": 150,
		"sortParams": [{"colId": "receivedAt", "sort": "asc"}]
	}`, string(captured.Body))
}

func TestCreateIncident(t *testing.T) {
	client, captured := newTestClient(t, 200, `{
		"id": "c3d2e1f0-0000-0000-0000-000000000002",
		"displayId": 321,
		"createdAt": "2025-06-10T08:00:00Z"
	}`)

	result, err := client.CreateIncident(context.Background(), "Suspicious login", "Multiple failed logins from new location", "medium")
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, captured.Method)
	assert.Equal(t, "/api/v1/tric/incidents/createIncident", captured.Path)
	assert.JSONEq(t, `{
		"title": "Suspicious login",
		"description": "Multiple failed logins from new location",
		"priority": "medium"
	}`, string(captured.Body))

	assert.Equal(t, 321, result.DisplayID)
	assert.Equal(t, time.Date(2025, 6, 10, 8, 0, 0, 0, time.UTC), result.CreatedAt)
}

func TestUploadMessage(t *testing.T) {
	incidentID := uuid.NewString()
	client, captured := newTestClient(t, 200, fmt.Sprintf(`{
		"rfcMessageId": "<abc@mail.example.com>",
		"incident_id": %q,
		"incidentDisplayId": 321,
		"uploadedRecipientsCount": 2
	}`, incidentID))

	result, err := client.UploadMessage(context.Background(), UploadMessageParams{
		IncidentID:         incidentID,
		RFCMessageID:       "<abc@mail.example.com>",
		RecipientAddresses: []string{"a@example.com", "b@example.com"},
		Subject:            "Invoice attached",
	})
	require.NoError(t, err)

	assert.Equal(t, "/api/v1/tric/incidents/uploadMessage", captured.Path)
	assert.JSONEq(t, fmt.Sprintf(`{
		"incident_id": %q,
		"message": {
			"rfcMessageId": "<abc@mail.example.com>",
			"recipient_addresses": ["a@example.com", "b@example.com"],
			"subject": "Invoice attached"
		}
	}`, incidentID), string(captured.Body))

	assert.Equal(t, incidentID, result.IncidentID)
	assert.Equal(t, 2, result.UploadedRecipientsCount)
}
