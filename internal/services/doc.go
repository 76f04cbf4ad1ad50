// package services contains clients for the tracking backend's REST API.
//
// All services share a [Client] that handles bearer authentication, client
// side rate limiting, and error mapping. Endpoint groups are split by
// resource: movies, games, watch statuses, tag edits, and accounts, plus a
// raw passthrough for ad hoc requests.
package services
