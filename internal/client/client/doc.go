// Package client is the single choke point for calls to the tutoring
// marketplace backend.
//
// # Overview
//
// HTTPClient.Send turns a Request (method, path, query, headers, body) into an
// HTTP call against the configured API base URL and returns the decoded
// response envelope. Two interceptors sit in the transport chain:
//
//  1. bearer: reads the persisted auth_token before each request and, when it
//     decodes as a JSON string, sets "Authorization: Bearer <token>". A token
//     that does not decode is ignored and the request goes out unauthenticated.
//  2. unauthorized: on any 401 response, clears the persisted session and,
//     unless the Navigator already shows the login route, navigates there.
//     This happens for every caller; stores do not handle session expiry.
//
// # Error Handling
//
//   - non-2xx responses: *APIError carrying the decoded envelope, if any;
//     errors.Is(err, ErrUnauthorized) matches 401.
//   - transport failures: wrap ErrUnavailable and the underlying error.
//   - 2xx bodies that are not an envelope: wrap ErrMalformedResponse.
//
// Nothing is retried.
package client
