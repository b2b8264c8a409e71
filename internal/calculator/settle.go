package calculator

import (
	"cmp"
	"slices"

	"github.com/google/uuid"

	"github.com/mmynk/receiptsplit/internal/models"
)

// settlementNamespace seeds the name-based UUIDs used as settlement IDs.
var settlementNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/mmynk/receiptsplit/settlement"))

// Balance is a participant's net position.
type Balance struct {
	ParticipantID string
	Name          string
	Amount        int64 // Positive = owed money, Negative = owes money
}

// SettleBalances produces the transfers that bring every balance to zero.
// The balances must sum to zero; anything left over once one side runs out
// is not settled.
//
// Algorithm (greedy):
//   - Debtors sorted most negative first, creditors most positive first
//     (ties by participant ID)
//   - Match the current debtor with the current creditor for the smaller of
//     the two amounts
//   - Move past whichever side reached zero
//
// This is deterministic and settles n participants in at most n-1 transfers,
// but it is not guaranteed to find the minimum number of transfers.
func SettleBalances(balances []Balance) []models.Settlement {
	var debtors, creditors []Balance
	for _, b := range balances {
		switch {
		case b.Amount < 0:
			debtors = append(debtors, b)
		case b.Amount > 0:
			creditors = append(creditors, b)
		}
	}
	slices.SortStableFunc(debtors, func(a, b Balance) int {
		if c := cmp.Compare(a.Amount, b.Amount); c != 0 {
			return c
		}
		return cmp.Compare(a.ParticipantID, b.ParticipantID)
	})
	slices.SortStableFunc(creditors, func(a, b Balance) int {
		if c := cmp.Compare(b.Amount, a.Amount); c != 0 {
			return c
		}
		return cmp.Compare(a.ParticipantID, b.ParticipantID)
	})

	settlements := []models.Settlement{}
	i, j := 0, 0
	for i < len(debtors) && j < len(creditors) {
		debtor := &debtors[i]
		creditor := &creditors[j]

		amount := min(-debtor.Amount, creditor.Amount)
		settlements = append(settlements, models.Settlement{
			ID:       SettlementID(debtor.ParticipantID, creditor.ParticipantID),
			From:     debtor.ParticipantID,
			To:       creditor.ParticipantID,
			FromName: debtor.Name,
			ToName:   creditor.Name,
			Amount:   amount,
		})

		debtor.Amount += amount
		creditor.Amount -= amount
		if debtor.Amount == 0 {
			i++
		}
		if creditor.Amount == 0 {
			j++
		}
	}
	return settlements
}

// SettlementID returns the stable ID of a transfer from one participant to another.
func SettlementID(from, to string) string {
	return uuid.NewSHA1(settlementNamespace, []byte(from+"\x00"+to)).String()
}
