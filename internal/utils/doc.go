// Package utils holds small helpers shared by the HTTP layer and the
// services: JSON responses and run identifiers.
package utils
