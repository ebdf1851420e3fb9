package proofpoint

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// MessageSearchParams configures SearchMessages. The zero value (or a nil
// pointer) searches everything, rows 0 through 100.
type MessageSearchParams struct {
	Filters    *MessageFilters
	StartRow   int
	EndRow     int // 0 means the default of 100
	SortParams []SortParam
}

type messageSearchRequest struct {
	StartRow   int             `json:"startRow"`
	EndRow     int             `json:"endRow"`
	Filters    *MessageFilters `json:"filters,omitempty"`
	SortParams []SortParam     `json:"sortParams,omitempty"`
}

// SearchMessages searches for messages matching the given criteria.
func (c *Client) SearchMessages(ctx context.Context, params *MessageSearchParams) (*MessageSearchResult, error) {
	if params == nil {
		params = &MessageSearchParams{}
	}

	payload := messageSearchRequest{
		StartRow:   params.StartRow,
		EndRow:     params.EndRow,
		Filters:    params.Filters,
		SortParams: params.SortParams,
	}
	if payload.EndRow == 0 {
		payload.EndRow = defaultMessageEndRow
	}

	var result MessageSearchResult
	if err := c.apiClient.Do(ctx, http.MethodPost, apiPrefix+"/messages", nil, payload, &result); err != nil {
		return nil, wrapError(err)
	}
	return &result, nil
}

// GetMessageDetails retrieves a single message by its UUID.
func (c *Client) GetMessageDetails(ctx context.Context, messageID string) (*Message, error) {
	path := fmt.Sprintf("%s/messages/%s", apiPrefix, url.PathEscape(messageID))

	var message Message
	if err := c.apiClient.Do(ctx, http.MethodGet, path, nil, nil, &message); err != nil {
		return nil, wrapError(err)
	}
	return &message, nil
}

// FetchMessageBody asks the platform to fetch a message body from the
// user's mailbox. The returned document is passed through as-is; poll
// GetMessageFetchStatus for completion.
func (c *Client) FetchMessageBody(ctx context.Context, messageID string) (map[string]any, error) {
	path := fmt.Sprintf("%s/messages/%s/fetch", apiPrefix, url.PathEscape(messageID))

	var result map[string]any
	if err := c.apiClient.Do(ctx, http.MethodGet, path, nil, nil, &result); err != nil {
		return nil, wrapError(err)
	}
	return result, nil
}

// GetMessageFetchStatus checks the status of a message body fetch.
func (c *Client) GetMessageFetchStatus(ctx context.Context, messageID string) (map[string]any, error) {
	path := fmt.Sprintf("%s/messages/%s/fetchStatus", apiPrefix, url.PathEscape(messageID))

	var result map[string]any
	if err := c.apiClient.Do(ctx, http.MethodGet, path, nil, nil, &result); err != nil {
		return nil, wrapError(err)
	}
	return result, nil
}

// DownloadMessageMIME downloads the full MIME content of a message as the
// exact bytes of the .eml file, whatever the response content type.
func (c *Client) DownloadMessageMIME(ctx context.Context, messageID string) ([]byte, error) {
	path := fmt.Sprintf("%s/messages/%s/download", apiPrefix, url.PathEscape(messageID))

	data, err := c.apiClient.DoRaw(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, wrapError(err)
	}
	return data, nil
}
