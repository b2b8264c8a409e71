package calculator

// aggregatePayments credits each receipt's payer with the receipt's full
// post-discount, post-service-charge total, converted once. Receipts without
// a payer (or with a payer who is not a participant) credit nobody.
func (c *calculation) aggregatePayments() {
	for _, receipt := range c.receipts {
		account, ok := c.accounts[receipt.PayerID]
		if !ok {
			continue
		}
		tally := tallyReceipt(receipt, c.itemsByReceipt[receipt.ID])
		account.TotalPaid += convert(tally.total(), c.rates[receipt.ID])
	}
}
