// Package status reports service health.
//
// GET /health returns the refresher's state, the age of the published
// snapshot and the circuit breaker state of each upstream host. It answers
// 503 until the first snapshot is published.
package status
