// Package entity defines the domain entities for the insights feature.
package entity

// ContextEntry is the minimal, prompt-safe projection of one ledger record.
// Derived per request and never persisted. The receipt reference is dropped
// deliberately; Amount carries the fixed currency marker.
type ContextEntry struct {
	Date        string `json:"date"`
	Type        string `json:"type"`
	Category    string `json:"category"`
	Amount      string `json:"amount"`
	Description string `json:"description"`
}
