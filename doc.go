// Package proofpoint provides a Go client for the Proofpoint Threat
// Protection API, covering the workflow, incident and message (TRIC)
// operations.
//
// The client authenticates with the OAuth2 client-credentials grant and
// manages the access token transparently: the token is obtained at
// construction, reused across calls, and replaced before requests once it
// is within five minutes of its declared expiry.
//
// Basic usage:
//
//	client, err := proofpoint.New(clientID, clientSecret)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	count, err := client.GetIncidentCount(ctx, &proofpoint.IncidentFilters{
//	    Sources: []string{"tap"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Printf("%d matching incidents\n", count)
//
// Failures are reported through a small typed taxonomy: AuthError (401/403
// and token-exchange failures), BadRequestError (400), RateLimitError (429)
// and APIError for everything else, including transport-level failures.
// All of them expose the HTTP status and raw response body, and match the
// package sentinels via errors.Is. Nothing is retried internally; backoff
// on rate limiting is the caller's decision.
package proofpoint
