package proofpoint

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// WorkflowListParams filters the workflow listing. A nil Enabled leaves the
// enabled state unconstrained; an empty Type matches all workflow types.
type WorkflowListParams struct {
	Enabled *bool
	Type    string // WorkflowTypeMessage or WorkflowTypeIncident
}

// ListWorkflows retrieves the configured manual workflows.
func (c *Client) ListWorkflows(ctx context.Context, params *WorkflowListParams) ([]Workflow, error) {
	query := url.Values{}
	if params != nil {
		if params.Enabled != nil {
			query.Set("enabled", strconv.FormatBool(*params.Enabled))
		}
		if params.Type != "" {
			query.Set("type", params.Type)
		}
	}

	var workflows []Workflow
	err := c.apiClient.Do(ctx, http.MethodGet, apiPrefix+"/workflows", query, nil, &workflows)
	if err != nil {
		return nil, wrapError(err)
	}
	return workflows, nil
}

// RunWorkflow triggers a workflow on a set of incident or message IDs.
func (c *Client) RunWorkflow(ctx context.Context, workflowID string, targetIDs []string) (*WorkflowRun, error) {
	payload := struct {
		TargetIDs []string `json:"targetIds"`
	}{TargetIDs: targetIDs}

	path := fmt.Sprintf("%s/workflows/%s/run", apiPrefix, url.PathEscape(workflowID))

	var run WorkflowRun
	if err := c.apiClient.Do(ctx, http.MethodPost, path, nil, payload, &run); err != nil {
		return nil, wrapError(err)
	}
	return &run, nil
}

// GetWorkflowRunStatus checks the status of a previously triggered run.
func (c *Client) GetWorkflowRunStatus(ctx context.Context, runID string) (*WorkflowRun, error) {
	path := fmt.Sprintf("%s/workflows/run/%s", apiPrefix, url.PathEscape(runID))

	var run WorkflowRun
	if err := c.apiClient.Do(ctx, http.MethodGet, path, nil, nil, &run); err != nil {
		return nil, wrapError(err)
	}
	return &run, nil
}
