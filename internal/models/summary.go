package models

// SplitSummary is the result of a calculation: what everyone owes, what
// everyone paid, and the transfers that settle the difference.
type SplitSummary struct {
	ParticipantSummaries []ParticipantSummary `json:"participantSummaries"`
	Settlements          []Settlement         `json:"settlements"`

	// Total is the sum of all payments in the settlement currency. After
	// reconciliation it also equals the sum of all shares.
	Total int64 `json:"total"`

	TotalItemCost      int64 `json:"totalItemCost"`
	TotalDiscounts     int64 `json:"totalDiscounts"`
	TotalServiceCharge int64 `json:"totalServiceCharge"`

	// RoundingOccurred is set whenever any remainder had to be distributed.
	RoundingOccurred      bool             `json:"roundingOccurred"`
	RoundedItems          []RoundedItem    `json:"roundedItems"`
	DiscountRounding      []ChargeRounding `json:"discountRounding"`
	ServiceChargeRounding []ChargeRounding `json:"serviceChargeRounding"`

	// RoundingAdjustment is the session-wide correction, if one was needed.
	RoundingAdjustment *Adjustment `json:"roundingAdjustment,omitempty"`

	// Items reports how every assigned item was allocated.
	Items []ItemAllocation `json:"items"`

	// CurrencyWarnings lists receipts that were converted at 1:1 because no
	// usable exchange rate was supplied.
	CurrencyWarnings []CurrencyWarning `json:"currencyWarnings"`
}

// ParticipantSummary is one participant's position in the session.
type ParticipantSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`

	TotalPaid  int64 `json:"totalPaid"`
	TotalShare int64 `json:"totalShare"`

	// TotalServiceChargeShare is the part of TotalShare that comes from service charges.
	TotalServiceChargeShare int64 `json:"totalServiceChargeShare"`

	// RoundingCorrection is the session-wide correction absorbed by this
	// participant. It is included in TotalShare but not in the breakdown.
	RoundingCorrection int64 `json:"roundingCorrection,omitempty"`

	// Balance is TotalPaid - TotalShare. Positive means the participant is owed money.
	Balance int64 `json:"balance"`

	Breakdown Breakdown `json:"breakdown"`
}

// Breakdown is a participant's itemized statement.
type Breakdown struct {
	Items          []BreakdownEntry `json:"items"`
	Discounts      []BreakdownEntry `json:"discounts"`
	ServiceCharges []BreakdownEntry `json:"serviceCharges"`
}

// BreakdownEntry is one line of an itemized statement. Discounts are negative.
type BreakdownEntry struct {
	Description string `json:"description"`
	Amount      int64  `json:"amount"`
	ReceiptID   string `json:"receiptId"`
	ItemID      string `json:"itemId,omitempty"`
	IsDiscount  bool   `json:"isDiscount,omitempty"`
}

// Adjustment is a rounding unit (or a session correction) given to one participant.
type Adjustment struct {
	ParticipantID   string `json:"participantId"`
	ParticipantName string `json:"participantName"`
	Amount          int64  `json:"amount"`
}

// RoundedItem records an item whose split left a remainder.
type RoundedItem struct {
	ItemID         string       `json:"itemId"`
	Name           string       `json:"name"`
	Cost           int64        `json:"cost"`
	AssigneesCount int          `json:"assigneesCount"`
	Adjustments    []Adjustment `json:"adjustments"`
}

// ChargeRounding records a receipt-level discount or service charge whose
// distribution left a remainder.
type ChargeRounding struct {
	ReceiptID   string       `json:"receiptId"`
	ReceiptName string       `json:"receiptName"`
	Description string       `json:"description"`
	TotalAmount int64        `json:"totalAmount"`
	Adjustments []Adjustment `json:"adjustments"`
}

// ItemAllocation reports how a single item was split.
type ItemAllocation struct {
	ItemID        string    `json:"itemId"`
	ReceiptID     string    `json:"receiptId"`
	RequestedMode SplitMode `json:"requestedMode"`
	AppliedMode   SplitMode `json:"appliedMode"`

	// UsedFallback is set when percentage or exact assignments were invalid
	// and the item was split equally instead.
	UsedFallback bool `json:"usedFallback"`

	// EffectiveCost is in the receipt's currency.
	EffectiveCost int64 `json:"effectiveCost"`

	// Shares are the net shares in the receipt's currency, in assignee order.
	Shares []Share `json:"shares"`
}

// Share is one assignee's net portion of an item.
type Share struct {
	ParticipantID string `json:"participantId"`
	Amount        int64  `json:"amount"`
}

// CurrencyWarning flags a receipt converted without a usable exchange rate.
type CurrencyWarning struct {
	ReceiptID string `json:"receiptId"`
	Currency  string `json:"currency"`
}
