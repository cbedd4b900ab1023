// Package api provides the HTTP client for paginated REST listings.
//
// # Overview
//
// This package talks to any endpoint that paginates with the envelope
//
//	{"results": [ {...}, ... ], "info": {"next": <string|null>}}
//
// and turns each response into a Page of entities plus an opaque token for
// the following page. It is the only place in folio that touches the network.
//
// # Pagination Contract
//
// The first page lives at the configured endpoint itself; every later page is
// addressed by the token the API returned in info.next. Tokens are passed
// back verbatim and only interpreted here, when building the request URL:
//
//   - absolute URLs ("https://host/api/thing?page=2") are requested as-is
//   - paths ("/api/thing?page=2") resolve against the endpoint
//   - bare query strings ("page=2") replace the endpoint's query
//
// Whether more pages exist derives solely from info.next being non-null. An
// empty results array with a non-null next is a valid page that promises
// more; a null next ends the listing even when results is full.
//
// # Error Handling
//
// Every failure of FetchPage is an *Error with exactly one Kind:
//
//   - KindNetwork: DNS failure, refused connection, timeout, cancelled
//     context. No usable response arrived.
//   - KindHTTP: the server answered with a non-2xx status. StatusCode is set.
//   - KindDecode: a 2xx response whose body is not the envelope - not JSON,
//     missing results or info, or an entity without an integer id.
//
// The classification is total: callers never see an unclassified error, and
// FetchPage never panics. There are no internal retries; retry policy belongs
// to the caller.
//
// # Entities
//
// Each entity must carry a unique integer id. The rest of the object is kept
// as an opaque field map for display; DisplayTitle picks a label from the
// conventional naming fields.
//
// # Requests
//
// All requests use context for cancellation, set Accept: application/json
// and a folio User-Agent, and share a single http.Client with a configurable
// timeout. The Client is safe for concurrent use.
package api
