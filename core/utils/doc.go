// Package utils provides common utility functions for the ledger-recon application.
// It includes helpers for coercing spreadsheet-style cells into Go values and other
// shared logic that doesn't fit into domain-specific packages.
package utils
