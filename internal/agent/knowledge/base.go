// internal/agent/knowledge/base.go

// Package knowledge holds the static keyword-to-solution table used for
// technical support auto-resolution. The table is fixed at build time and
// safe for concurrent readers.
package knowledge

import "strings"

// Entry is a single keyword-to-solution mapping.
type Entry struct {
	Keyword  string
	Solution string
}

// Base is an ordered knowledge base. Lookup iterates entries in insertion
// order so the concatenated response is deterministic.
type Base struct {
	entries []Entry
}

// New builds a Base from entries, preserving their order.
func New(entries []Entry) *Base {
	return &Base{entries: entries}
}

// Default returns the built-in knowledge base.
func Default() *Base {
	return New([]Entry{
		{"login", "Try resetting your password, clearing browser cache, or checking if cookies are enabled. If the issue persists, verify your account status."},
		{"password", "Use the 'Forgot Password' link on the login page. Check your email (including spam folder) for reset instructions."},
		{"payment", "Verify your payment method details, check subscription status, or contact billing support at billing@company.com."},
		{"billing", "For billing inquiries, please contact our billing team at billing@company.com or check your account settings."},
		{"performance", "Clear your browser cache, try a different browser, check your internet connection, or try using incognito mode."},
		{"slow", "Performance issues can be resolved by clearing cache, checking internet connection, or trying a different browser."},
		{"bug", "Thank you for reporting this bug. Please provide detailed steps to reproduce the issue."},
		{"error", "Please provide the exact error message and steps that led to this error for better assistance."},
		{"installation", "Follow our installation guide at docs.company.com/install or contact technical support."},
		{"api", "Check our API documentation at api.company.com/docs for integration help and examples."},
		{"integration", "Visit our integration guide at docs.company.com/integrations for step-by-step instructions."},
	})
}

// Lookup returns the solutions for every keyword whose substring appears in
// the query, in insertion order. Matching is case-insensitive and substring
// based, not tokenized.
func (b *Base) Lookup(query string) []string {
	queryLower := strings.ToLower(query)

	var solutions []string
	for _, e := range b.entries {
		if strings.Contains(queryLower, e.Keyword) {
			solutions = append(solutions, e.Solution)
		}
	}
	return solutions
}

// Len returns the number of entries.
func (b *Base) Len() int {
	return len(b.entries)
}
