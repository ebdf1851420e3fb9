// Command testhelper drives a live Threat Protection tenant from the
// command line, printing JSON results to stdout. It exists for manual
// verification and cross-language comparison scripts; set
// PROOFPOINT_CLIENT_ID and PROOFPOINT_CLIENT_SECRET (a .env file in the
// working directory is read when present).
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	proofpoint "github.com/proofpoint-tp/client-go"
)

func main() {
	godotenv.Load()

	if len(os.Args) < 2 {
		fatal("usage: testhelper <command> [args]")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	opts := []proofpoint.Option{}
	if baseURL := os.Getenv("PROOFPOINT_API_URL"); baseURL != "" {
		opts = append(opts, proofpoint.WithBaseURL(baseURL))
	}
	if tokenURL := os.Getenv("PROOFPOINT_TOKEN_URL"); tokenURL != "" {
		opts = append(opts, proofpoint.WithTokenURL(tokenURL))
	}

	client, err := proofpoint.New(
		os.Getenv("PROOFPOINT_CLIENT_ID"),
		os.Getenv("PROOFPOINT_CLIENT_SECRET"),
		opts...,
	)
	if err != nil {
		fatal("create client: %v", err)
	}

	switch os.Args[1] {
	case "list-workflows":
		listWorkflows(ctx, client)
	case "run-workflow":
		if len(os.Args) < 4 {
			fatal("usage: testhelper run-workflow <workflow-id> <target-id> [target-id...]")
		}
		runWorkflow(ctx, client, os.Args[2], os.Args[3:])
	case "run-status":
		if len(os.Args) < 3 {
			fatal("usage: testhelper run-status <run-id>")
		}
		runStatus(ctx, client, os.Args[2])
	case "search-incidents":
		searchIncidents(ctx, client)
	case "incident":
		if len(os.Args) < 3 {
			fatal("usage: testhelper incident <incident-id>")
		}
		showIncident(ctx, client, requireUUID(os.Args[2]))
	case "message":
		if len(os.Args) < 3 {
			fatal("usage: testhelper message <message-id>")
		}
		showMessage(ctx, client, requireUUID(os.Args[2]))
	case "download":
		if len(os.Args) < 3 {
			fatal("usage: testhelper download <message-id>")
		}
		download(ctx, client, requireUUID(os.Args[2]))
	default:
		fatal("unknown command: %s", os.Args[1])
	}
}

func listWorkflows(ctx context.Context, client *proofpoint.Client) {
	workflows, err := client.ListWorkflows(ctx, nil)
	if err != nil {
		fatal("list workflows: %v", err)
	}
	printJSON(struct {
		Workflows []proofpoint.Workflow `json:"workflows"`
	}{Workflows: workflows})
}

func runWorkflow(ctx context.Context, client *proofpoint.Client, workflowID string, targetIDs []string) {
	run, err := client.RunWorkflow(ctx, workflowID, targetIDs)
	if err != nil {
		fatal("run workflow: %v", err)
	}
	printJSON(run)
}

func runStatus(ctx context.Context, client *proofpoint.Client, runID string) {
	run, err := client.GetWorkflowRunStatus(ctx, runID)
	if err != nil {
		fatal("run status: %v", err)
	}
	printJSON(run)
}

func searchIncidents(ctx context.Context, client *proofpoint.Client) {
	result, err := client.SearchIncidents(ctx, &proofpoint.IncidentSearchParams{
		EndRow: 20,
		SortParams: []proofpoint.SortParam{
			{ColID: "createdAt", Sort: proofpoint.SortDesc},
		},
	})
	if err != nil {
		fatal("search incidents: %v", err)
	}
	printJSON(result)
}

func showIncident(ctx context.Context, client *proofpoint.Client, incidentID string) {
	incident, err := client.GetIncidentDetails(ctx, incidentID)
	if err != nil {
		fatal("get incident: %v", err)
	}
	printJSON(incident)
}

func showMessage(ctx context.Context, client *proofpoint.Client, messageID string) {
	message, err := client.GetMessageDetails(ctx, messageID)
	if err != nil {
		fatal("get message: %v", err)
	}
	printJSON(message)
}

func download(ctx context.Context, client *proofpoint.Client, messageID string) {
	data, err := client.DownloadMessageMIME(ctx, messageID)
	if err != nil {
		fatal("download message: %v", err)
	}
	os.Stdout.Write(data)
}

// requireUUID rejects malformed IDs before they reach the API, which
// answers them with an unhelpful generic 400.
func requireUUID(id string) string {
	if _, err := uuid.Parse(id); err != nil {
		fatal("not a valid ID: %s", id)
	}
	return id
}

func printJSON(v any) {
	if err := json.NewEncoder(os.Stdout).Encode(v); err != nil {
		fatal("encode output: %v", err)
	}
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
