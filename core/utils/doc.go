// Package utils provides common utility functions for the ornithe-meta
// application: list pagination and query value parsing shared by the HTTP
// features.
package utils
