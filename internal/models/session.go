package models

import "github.com/shopspring/decimal"

// SplitMode selects how an item's effective cost is divided among its assignees.
type SplitMode string

const (
	SplitModeEqual      SplitMode = "equal"
	SplitModePercentage SplitMode = "percentage"
	SplitModeExact      SplitMode = "exact"
)

// ServiceChargeType selects how a receipt's service charge is interpreted.
type ServiceChargeType string

const (
	// ServiceChargeFixed is an absolute amount in minor units.
	ServiceChargeFixed ServiceChargeType = "fixed"

	// ServiceChargePercentage is a percentage of the discounted receipt subtotal.
	ServiceChargePercentage ServiceChargeType = "percentage"
)

// Session is a complete snapshot of everything needed to compute a settlement.
// It is supplied by the caller on every calculation; nothing is kept between calls.
type Session struct {
	// Participants in display order. Identity is the ID.
	Participants []Participant `json:"participants"`

	// Receipts in display order.
	Receipts []Receipt `json:"receipts"`

	// Items reference their receipt through ReceiptID.
	Items []Item `json:"items"`

	// SettlementCurrency is the currency every amount is normalized into (e.g. "USD").
	SettlementCurrency string `json:"settlementCurrency"`

	// PaidSettlements marks settlements (by Settlement.ID) the group has already paid.
	PaidSettlements map[string]bool `json:"paidSettlements,omitempty"`
}

// Participant is a person taking part in the session.
type Participant struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Receipt groups items paid in a single transaction.
type Receipt struct {
	ID   string `json:"id"`
	Name string `json:"name"`

	// PayerID is the participant who paid the receipt. Empty means nobody has
	// paid yet; the receipt is still shared but adds nothing to anyone's payments.
	PayerID string `json:"payerId,omitempty"`

	// Currency is the ISO code amounts on this receipt are expressed in.
	// Empty means the session's settlement currency.
	Currency string `json:"currency"`

	// ExchangeRate converts one unit of Currency into the settlement currency.
	// Only consulted when Currency differs from the settlement currency.
	ExchangeRate decimal.NullDecimal `json:"exchangeRate"`

	// Discounts apply to the whole receipt.
	Discounts []Discount `json:"discounts"`

	ServiceCharge ServiceCharge `json:"serviceCharge"`
}

// Item is a single line on a receipt.
type Item struct {
	ID        string `json:"id"`
	ReceiptID string `json:"receiptId"`
	Name      string `json:"name"`
	Quantity  int64  `json:"quantity"`

	// Cost is the pre-discount cost of the whole line in minor units.
	Cost int64 `json:"cost"`

	// Discounts apply to this item only.
	Discounts []Discount `json:"discounts"`

	// Assignees are the participant IDs sharing this item.
	Assignees []string `json:"assignees"`

	SplitMode SplitMode `json:"splitMode"`

	// PercentageAssignments maps participant ID to an integer percentage.
	// Used when SplitMode is percentage; must sum to 100 over the assignees.
	PercentageAssignments map[string]int64 `json:"percentageAssignments,omitempty"`

	// ExactAssignments maps participant ID to an amount in minor units.
	// Used when SplitMode is exact; must sum to the effective cost.
	ExactAssignments map[string]int64 `json:"exactAssignments,omitempty"`
}

// DiscountTotal returns the sum of the item's own discounts.
func (i Item) DiscountTotal() int64 {
	return sumDiscounts(i.Discounts)
}

// EffectiveCost is the item's cost after its own discounts.
// A non-positive effective cost means there is nothing to share.
func (i Item) EffectiveCost() int64 {
	return i.Cost - i.DiscountTotal()
}

// Discount is a reduction, either on a single item or on a whole receipt.
type Discount struct {
	ID   string `json:"id"`
	Name string `json:"name"`

	// Amount in minor units; positive reduces the total.
	Amount int64 `json:"amount"`
}

// ServiceCharge is a tip, fee, or service charge added to a receipt.
type ServiceCharge struct {
	Type ServiceChargeType `json:"type"`

	// Value is minor units for fixed charges and a (possibly fractional)
	// percentage for percentage charges.
	Value decimal.Decimal `json:"value"`
}

// DiscountTotal returns the sum of the receipt-level discounts.
func (r Receipt) DiscountTotal() int64 {
	return sumDiscounts(r.Discounts)
}

func sumDiscounts(discounts []Discount) int64 {
	var total int64
	for _, d := range discounts {
		total += d.Amount
	}
	return total
}
