package models

// Principal is the authenticated identity derived from a verified bearer
// token. It is constructed per-request by the credential verifier and
// discarded when the request completes; nothing about it is persisted by
// this service.
type Principal struct {
	// ID is the identity provider's unique user identifier. Every
	// booking insert stamps this value as user_id — never a
	// client-supplied one.
	ID string `json:"id"`

	// Email is the account email as reported by the identity provider.
	// Informational only; no handler keys on it.
	Email string `json:"email"`
}
