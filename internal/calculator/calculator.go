// Package calculator computes who owes what for a session of shared receipts.
//
// Calculate is a pure function: the same Session always produces the same
// SplitSummary, nothing is retained between calls, and the input is never
// modified. All money is integer minor units; every fractional intermediate
// is rounded as soon as it is recorded.
//
// Pipeline, per call:
//
//	exchange rates -> item shares -> receipt discounts and service charges
//	-> payments -> reconciliation -> settlements
package calculator

import (
	"github.com/shopspring/decimal"

	"github.com/mmynk/receiptsplit/internal/models"
)

// calculation is the working state of a single Calculate call.
type calculation struct {
	order    []string // participant IDs in input order
	accounts map[string]*models.ParticipantSummary
	debt     roundingDebt

	receipts       []models.Receipt
	itemsByReceipt map[string][]models.Item
	rates          map[string]decimal.Decimal

	items                 []models.ItemAllocation
	roundedItems          []models.RoundedItem
	discountRounding      []models.ChargeRounding
	serviceChargeRounding []models.ChargeRounding
	currencyWarnings      []models.CurrencyWarning
	adjustment            *models.Adjustment
	roundingOccurred      bool

	total              int64
	totalItemCost      int64
	totalDiscounts     int64
	totalServiceCharge int64
}

// Calculate computes every participant's share, payments and balance for the
// session, and the transfers that settle them.
//
// It never fails. Malformed but well-typed input degrades gracefully:
// duplicate IDs keep their first occurrence, unknown assignees and payers are
// ignored, items on unknown receipts are skipped, and invalid percentage or
// exact assignments fall back to an equal split (reported per item).
func Calculate(session models.Session) models.SplitSummary {
	c := newCalculation(session)
	if len(c.order) == 0 {
		return c.summary(nil)
	}

	for _, receipt := range c.receipts {
		c.allocateReceipt(receipt)
	}
	c.aggregatePayments()
	c.reconcile()

	balances := make([]Balance, len(c.order))
	for i, id := range c.order {
		account := c.accounts[id]
		balances[i] = Balance{ParticipantID: id, Name: account.Name, Amount: account.Balance}
	}
	settlements := SettleBalances(balances)
	for i := range settlements {
		settlements[i].Paid = session.PaidSettlements[settlements[i].ID]
	}
	return c.summary(settlements)
}

func newCalculation(session models.Session) *calculation {
	c := &calculation{
		accounts:       make(map[string]*models.ParticipantSummary, len(session.Participants)),
		debt:           make(roundingDebt, len(session.Participants)),
		itemsByReceipt: make(map[string][]models.Item, len(session.Receipts)),
	}

	for _, p := range session.Participants {
		if _, dup := c.accounts[p.ID]; dup {
			continue
		}
		c.order = append(c.order, p.ID)
		c.accounts[p.ID] = &models.ParticipantSummary{
			ID:   p.ID,
			Name: p.Name,
			Breakdown: models.Breakdown{
				Items:          []models.BreakdownEntry{},
				Discounts:      []models.BreakdownEntry{},
				ServiceCharges: []models.BreakdownEntry{},
			},
		}
	}

	known := make(map[string]bool, len(session.Receipts))
	for _, r := range session.Receipts {
		if known[r.ID] {
			continue
		}
		known[r.ID] = true
		c.receipts = append(c.receipts, r)
	}
	seen := make(map[string]bool, len(session.Items))
	for _, item := range session.Items {
		if !known[item.ReceiptID] || seen[item.ID] {
			continue
		}
		seen[item.ID] = true
		c.itemsByReceipt[item.ReceiptID] = append(c.itemsByReceipt[item.ReceiptID], item)
	}

	c.rates, c.currencyWarnings = exchangeRates(c.receipts, session.SettlementCurrency)
	return c
}

// knownAssignees drops assignees that are not participants and repeats.
func (c *calculation) knownAssignees(ids []string) []string {
	out := make([]string, 0, len(ids))
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if _, ok := c.accounts[id]; !ok || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

// unitAdjustments turns remainder recipients into +1 audit entries.
func (c *calculation) unitAdjustments(ids []string) []models.Adjustment {
	out := make([]models.Adjustment, len(ids))
	for i, id := range ids {
		out[i] = models.Adjustment{ParticipantID: id, ParticipantName: c.accounts[id].Name, Amount: 1}
	}
	return out
}

func (c *calculation) summary(settlements []models.Settlement) models.SplitSummary {
	participants := make([]models.ParticipantSummary, len(c.order))
	for i, id := range c.order {
		participants[i] = *c.accounts[id]
	}
	return models.SplitSummary{
		ParticipantSummaries:  participants,
		Settlements:           nonNil(settlements),
		Total:                 c.total,
		TotalItemCost:         c.totalItemCost,
		TotalDiscounts:        c.totalDiscounts,
		TotalServiceCharge:    c.totalServiceCharge,
		RoundingOccurred:      c.roundingOccurred,
		RoundedItems:          nonNil(c.roundedItems),
		DiscountRounding:      nonNil(c.discountRounding),
		ServiceChargeRounding: nonNil(c.serviceChargeRounding),
		RoundingAdjustment:    c.adjustment,
		Items:                 nonNil(c.items),
		CurrencyWarnings:      nonNil(c.currencyWarnings),
	}
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
