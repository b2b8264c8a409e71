package models

// Settlement is a directed transfer that moves both parties' balances toward zero.
type Settlement struct {
	// ID is a deterministic UUID derived from the two participants, so the
	// same transfer keeps its ID when the summary is recomputed.
	ID string `json:"id"`

	// From is the participant ID of the debtor paying.
	From string `json:"from"`

	// To is the participant ID of the creditor being paid.
	To string `json:"to"`

	FromName string `json:"fromName"`
	ToName   string `json:"toName"`

	// Amount is positive, in minor units of the settlement currency.
	Amount int64 `json:"amount"`

	// Paid mirrors Session.PaidSettlements for this ID.
	Paid bool `json:"paid"`
}
