package calculator

import (
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/mmynk/receiptsplit/internal/models"
)

// itemSplit is the net division of one item's effective cost.
type itemSplit struct {
	net      []int64 // aligned with the assignees passed to splitItem
	applied  models.SplitMode
	fallback bool
	extra    []string // recipients of remainder units
}

// splitItem divides an item's effective cost among assignees.
//
//   - percentage: floor(cost * percent / 100) each, remainder by debt then id.
//     Requires non-negative percentages summing to exactly 100.
//   - exact: the given amounts, which must sum to exactly the effective cost.
//   - equal: floor(cost / n) each, remainder by debt then id.
//
// Invalid percentage or exact assignments fall back to equal and set
// fallback. A non-positive effective cost yields all-zero shares.
func splitItem(item models.Item, assignees []string, debt roundingDebt) itemSplit {
	s := itemSplit{
		net:     make([]int64, len(assignees)),
		applied: requestedMode(item.SplitMode),
	}
	cost := item.EffectiveCost()
	if cost <= 0 || len(assignees) == 0 {
		return s
	}

	switch item.SplitMode {
	case models.SplitModePercentage:
		if ws, ok := percentageWeights(item, assignees); ok {
			s.net, s.extra = distribute(cost, ws, debt)
			return s
		}
		s.fallback = true
	case models.SplitModeExact:
		if net, ok := exactShares(item, assignees, cost); ok {
			s.net = net
			return s
		}
		s.fallback = true
	case "", models.SplitModeEqual:
	default:
		s.fallback = true
	}

	s.applied = models.SplitModeEqual
	s.net, s.extra = distribute(cost, equalWeights(assignees), debt)
	return s
}

func requestedMode(mode models.SplitMode) models.SplitMode {
	switch mode {
	case models.SplitModePercentage, models.SplitModeExact:
		return mode
	default:
		return models.SplitModeEqual
	}
}

func percentageWeights(item models.Item, assignees []string) ([]weight, bool) {
	ws := make([]weight, len(assignees))
	var total int64
	for i, pid := range assignees {
		pct := item.PercentageAssignments[pid]
		if pct < 0 {
			return nil, false
		}
		ws[i] = weight{id: pid, value: pct}
		total += pct
	}
	return ws, total == 100
}

func exactShares(item models.Item, assignees []string, cost int64) ([]int64, bool) {
	net := make([]int64, len(assignees))
	var total int64
	for i, pid := range assignees {
		net[i] = item.ExactAssignments[pid]
		total += net[i]
	}
	return net, total == cost
}

// allocateItem splits one item and records each assignee's gross share and
// item-discount share in their breakdown. Gross shares (in the receipt's
// currency) are added to gross for the receipt-level allocations.
func (c *calculation) allocateItem(receipt models.Receipt, item models.Item, rate decimal.Decimal, gross *weights) {
	assignees := c.knownAssignees(item.Assignees)
	if len(assignees) == 0 {
		// Unassigned items still count toward the receipt subtotal.
		return
	}

	cost := item.EffectiveCost()
	split := splitItem(item, assignees, c.debt)

	shares := make([]models.Share, len(assignees))
	for i, pid := range assignees {
		shares[i] = models.Share{ParticipantID: pid, Amount: split.net[i]}
	}
	c.items = append(c.items, models.ItemAllocation{
		ItemID:        item.ID,
		ReceiptID:     receipt.ID,
		RequestedMode: item.SplitMode,
		AppliedMode:   split.applied,
		UsedFallback:  split.fallback,
		EffectiveCost: cost,
		Shares:        shares,
	})

	if len(split.extra) > 0 {
		c.roundingOccurred = true
		c.roundedItems = append(c.roundedItems, models.RoundedItem{
			ItemID:         item.ID,
			Name:           item.Name,
			Cost:           cost,
			AssigneesCount: len(assignees),
			Adjustments:    c.unitAdjustments(split.extra),
		})
	}

	if cost <= 0 {
		return
	}

	// Discount IDs are not guaranteed unique, so weigh them by position.
	discountWeights := make([]weight, len(item.Discounts))
	for i, d := range item.Discounts {
		discountWeights[i] = weight{id: strconv.Itoa(i), value: d.Amount}
	}

	for i, pid := range assignees {
		net := split.net[i]
		g := grossShare(net, item.Cost, cost)
		gross.add(pid, g)

		grossAmount := convert(g, rate)
		netAmount := convert(net, rate)
		if grossAmount == 0 && netAmount == 0 {
			continue
		}

		account := c.accounts[pid]
		account.Breakdown.Items = append(account.Breakdown.Items, models.BreakdownEntry{
			Description: item.Name,
			Amount:      grossAmount,
			ReceiptID:   receipt.ID,
			ItemID:      item.ID,
		})

		// The discount entries are whatever brings the gross entry down to the
		// converted net share, spread over the item's discounts by size.
		parts, _ := distribute(grossAmount-netAmount, discountWeights, nil)
		for _, part := range parts {
			if part == 0 {
				continue
			}
			account.Breakdown.Discounts = append(account.Breakdown.Discounts, models.BreakdownEntry{
				Description: "Discount on " + item.Name,
				Amount:      -part,
				ReceiptID:   receipt.ID,
				ItemID:      item.ID,
				IsDiscount:  true,
			})
		}
	}
}
