// Package http implements the discovery HTTP surface of the authorization
// service.
//
// It serves the GNAP capability-discovery document, a store health probe,
// build information and Prometheus metrics. Request tracing, access logging,
// response compression and per-request timeouts are handled by middleware
// before requests reach the service layer.
package http
