package calculator

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/mmynk/receiptsplit/internal/models"
)

// receiptTally holds a receipt's figures in its own currency.
type receiptTally struct {
	subtotal         int64 // gross cost of every item, assigned or not
	itemDiscounts    int64
	receiptDiscounts int64
	serviceCharge    int64
}

func tallyReceipt(receipt models.Receipt, items []models.Item) receiptTally {
	t := receiptTally{receiptDiscounts: receipt.DiscountTotal()}
	for _, item := range items {
		t.subtotal += item.Cost
		t.itemDiscounts += item.DiscountTotal()
	}
	t.serviceCharge = serviceCharge(receipt.ServiceCharge, t.subtotal-t.receiptDiscounts)
	return t
}

// total is what the payer actually handed over.
func (t receiptTally) total() int64 {
	return t.subtotal - t.itemDiscounts - t.receiptDiscounts + t.serviceCharge
}

// serviceCharge resolves a charge against its base, the item subtotal less
// receipt-level discounts. Negative results are treated as no charge.
func serviceCharge(sc models.ServiceCharge, base int64) int64 {
	var charge int64
	switch sc.Type {
	case models.ServiceChargeFixed:
		charge = sc.Value.Round(0).IntPart()
	case models.ServiceChargePercentage:
		charge = percentOf(base, sc.Value)
	}
	return max(charge, 0)
}

// allocateReceipt allocates every item on the receipt, then spreads the
// receipt-level discounts and the service charge over the participants in
// proportion to their gross item shares.
func (c *calculation) allocateReceipt(receipt models.Receipt) {
	rate := c.rates[receipt.ID]
	items := c.itemsByReceipt[receipt.ID]
	tally := tallyReceipt(receipt, items)

	gross := newWeights()
	for _, item := range items {
		c.allocateItem(receipt, item, rate, gross)
	}
	ws := gross.list()

	c.totalItemCost += convert(tally.subtotal, rate)
	c.totalDiscounts += convert(tally.itemDiscounts, rate)

	for _, discount := range receipt.Discounts {
		c.totalDiscounts += convert(discount.Amount, rate)

		parts, extra := distribute(discount.Amount, ws, c.debt)
		if len(extra) > 0 {
			c.roundingOccurred = true
			c.discountRounding = append(c.discountRounding, models.ChargeRounding{
				ReceiptID:   receipt.ID,
				ReceiptName: receipt.Name,
				Description: discount.Name,
				TotalAmount: discount.Amount,
				Adjustments: c.unitAdjustments(extra),
			})
		}
		for i, w := range ws {
			amount := convert(parts[i], rate)
			if amount == 0 {
				continue
			}
			account := c.accounts[w.id]
			account.Breakdown.Discounts = append(account.Breakdown.Discounts, models.BreakdownEntry{
				Description: discount.Name,
				Amount:      -amount,
				ReceiptID:   receipt.ID,
				IsDiscount:  true,
			})
		}
	}

	c.totalServiceCharge += convert(tally.serviceCharge, rate)
	if tally.serviceCharge > 0 {
		c.allocateServiceCharge(receipt, tally.serviceCharge, ws, rate)
	}
}

func (c *calculation) allocateServiceCharge(receipt models.Receipt, charge int64, ws []weight, rate decimal.Decimal) {
	parts, extra := distribute(charge, ws, c.debt)
	if len(extra) > 0 {
		c.roundingOccurred = true
		c.serviceChargeRounding = append(c.serviceChargeRounding, models.ChargeRounding{
			ReceiptID:   receipt.ID,
			ReceiptName: receipt.Name,
			Description: fmt.Sprintf("Fee on %q", receipt.Name),
			TotalAmount: charge,
			Adjustments: c.unitAdjustments(extra),
		})
	}

	description := fmt.Sprintf("Tip/Fee on %q", receipt.Name)
	for i, w := range ws {
		amount := convert(parts[i], rate)
		if amount == 0 {
			continue
		}
		account := c.accounts[w.id]
		account.Breakdown.ServiceCharges = append(account.Breakdown.ServiceCharges, models.BreakdownEntry{
			Description: description,
			Amount:      amount,
			ReceiptID:   receipt.ID,
		})
		account.TotalServiceChargeShare += amount
	}
}
