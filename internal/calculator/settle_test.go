package calculator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/receiptsplit/internal/models"
)

func TestSettleBalances(t *testing.T) {
	tests := []struct {
		name     string
		balances []Balance
		want     [][3]any // from, to, amount
	}{
		{
			name: "one debtor one creditor",
			balances: []Balance{
				{ParticipantID: "alice", Amount: 1000},
				{ParticipantID: "bob", Amount: -1000},
			},
			want: [][3]any{{"bob", "alice", int64(1000)}},
		},
		{
			name: "largest debtor pays first",
			balances: []Balance{
				{ParticipantID: "alice", Amount: 1500},
				{ParticipantID: "bob", Amount: -500},
				{ParticipantID: "carol", Amount: -1000},
			},
			want: [][3]any{
				{"carol", "alice", int64(1000)},
				{"bob", "alice", int64(500)},
			},
		},
		{
			name: "one debtor pays several creditors, largest first",
			balances: []Balance{
				{ParticipantID: "alice", Amount: 300},
				{ParticipantID: "bob", Amount: 700},
				{ParticipantID: "carol", Amount: -1000},
			},
			want: [][3]any{
				{"carol", "bob", int64(700)},
				{"carol", "alice", int64(300)},
			},
		},
		{
			name: "chained matching",
			balances: []Balance{
				{ParticipantID: "a", Amount: 600},
				{ParticipantID: "b", Amount: 400},
				{ParticipantID: "c", Amount: -700},
				{ParticipantID: "d", Amount: -300},
			},
			want: [][3]any{
				{"c", "a", int64(600)},
				{"c", "b", int64(100)},
				{"d", "b", int64(300)},
			},
		},
		{
			name: "equal balances break ties by id",
			balances: []Balance{
				{ParticipantID: "z", Amount: -100},
				{ParticipantID: "y", Amount: -100},
				{ParticipantID: "x", Amount: 200},
			},
			want: [][3]any{
				{"y", "x", int64(100)},
				{"z", "x", int64(100)},
			},
		},
		{
			name: "everyone settled",
			balances: []Balance{
				{ParticipantID: "alice", Amount: 0},
				{ParticipantID: "bob", Amount: 0},
			},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SettleBalances(tt.balances)
			require.NotNil(t, got)
			require.Len(t, got, len(tt.want))
			for i, w := range tt.want {
				assert.Equal(t, w[0], got[i].From, "settlement %d from", i)
				assert.Equal(t, w[1], got[i].To, "settlement %d to", i)
				assert.Equal(t, w[2], got[i].Amount, "settlement %d amount", i)
				assert.Equal(t, SettlementID(got[i].From, got[i].To), got[i].ID)
			}
		})
	}
}

func TestSettleBalances_DoesNotModifyInput(t *testing.T) {
	balances := []Balance{
		{ParticipantID: "alice", Name: "Alice", Amount: 250},
		{ParticipantID: "bob", Name: "Bob", Amount: -250},
	}

	got := SettleBalances(balances)

	assert.Equal(t, []models.Settlement{{
		ID:       SettlementID("bob", "alice"),
		From:     "bob",
		To:       "alice",
		FromName: "Bob",
		ToName:   "Alice",
		Amount:   250,
	}}, got)
	assert.Equal(t, int64(250), balances[0].Amount)
	assert.Equal(t, int64(-250), balances[1].Amount)
}

func TestSettlementID(t *testing.T) {
	assert.Equal(t, SettlementID("a", "b"), SettlementID("a", "b"))
	assert.NotEqual(t, SettlementID("a", "b"), SettlementID("b", "a"))
	assert.NotEqual(t, SettlementID("ab", "c"), SettlementID("a", "bc"))
	assert.Len(t, SettlementID("a", "b"), 36)
}
