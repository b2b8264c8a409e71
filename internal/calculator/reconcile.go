package calculator

import "github.com/mmynk/receiptsplit/internal/models"

// reconcile totals every participant's share from their breakdown and forces
// sum(shares) == sum(payments) by giving the whole difference to one
// participant. Balances are computed afterwards and always sum to zero.
func (c *calculation) reconcile() {
	var paid, shared int64
	for _, id := range c.order {
		account := c.accounts[id]
		account.TotalShare = sumEntries(account.Breakdown.Items) +
			sumEntries(account.Breakdown.Discounts) +
			sumEntries(account.Breakdown.ServiceCharges)
		paid += account.TotalPaid
		shared += account.TotalShare
	}
	c.total = paid

	if diff := paid - shared; diff != 0 {
		id := c.correctionTarget()
		account := c.accounts[id]
		account.TotalShare += diff
		account.RoundingCorrection = diff
		c.roundingOccurred = true
		c.adjustment = &models.Adjustment{
			ParticipantID:   id,
			ParticipantName: account.Name,
			Amount:          diff,
		}
	}

	for _, id := range c.order {
		account := c.accounts[id]
		account.Balance = account.TotalPaid - account.TotalShare
	}
}

// correctionTarget picks the participant with the least rounding debt (then
// lowest id) among those who paid something, or among everyone if nobody did.
func (c *calculation) correctionTarget() string {
	var payers []string
	for _, id := range c.order {
		if c.accounts[id].TotalPaid > 0 {
			payers = append(payers, id)
		}
	}
	if len(payers) == 0 {
		payers = c.order
	}
	return c.debt.rank(payers)[0]
}

func sumEntries(entries []models.BreakdownEntry) int64 {
	var total int64
	for _, e := range entries {
		total += e.Amount
	}
	return total
}
