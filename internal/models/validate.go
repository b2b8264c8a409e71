package models

import (
	"errors"
	"fmt"
)

// ErrInvalidSession is wrapped by every error returned from Session.Validate.
var ErrInvalidSession = errors.New("invalid session")

// Validate checks referential integrity and sign constraints on the snapshot.
// It reports the first problem found.
func (s *Session) Validate() error {
	participants := make(map[string]bool, len(s.Participants))
	for i, p := range s.Participants {
		if p.ID == "" {
			return invalid("participant %d has no id", i)
		}
		if participants[p.ID] {
			return invalid("duplicate participant id %q", p.ID)
		}
		participants[p.ID] = true
	}

	receipts := make(map[string]bool, len(s.Receipts))
	for i, r := range s.Receipts {
		if r.ID == "" {
			return invalid("receipt %d has no id", i)
		}
		if receipts[r.ID] {
			return invalid("duplicate receipt id %q", r.ID)
		}
		receipts[r.ID] = true

		if r.PayerID != "" && !participants[r.PayerID] {
			return invalid("receipt %q: payer %q is not a participant", r.ID, r.PayerID)
		}
		if r.ExchangeRate.Valid && !r.ExchangeRate.Decimal.IsPositive() {
			return invalid("receipt %q: exchange rate must be positive", r.ID)
		}
		if err := validateDiscounts(r.Discounts); err != nil {
			return invalid("receipt %q: %v", r.ID, err)
		}
		switch r.ServiceCharge.Type {
		case "", ServiceChargeFixed, ServiceChargePercentage:
		default:
			return invalid("receipt %q: unknown service charge type %q", r.ID, r.ServiceCharge.Type)
		}
		if r.ServiceCharge.Value.IsNegative() {
			return invalid("receipt %q: service charge cannot be negative", r.ID)
		}
	}

	items := make(map[string]bool, len(s.Items))
	for i, item := range s.Items {
		if item.ID == "" {
			return invalid("item %d has no id", i)
		}
		if items[item.ID] {
			return invalid("duplicate item id %q", item.ID)
		}
		items[item.ID] = true

		if !receipts[item.ReceiptID] {
			return invalid("item %q: unknown receipt %q", item.ID, item.ReceiptID)
		}
		if item.Cost < 0 {
			return invalid("item %q: cost cannot be negative", item.ID)
		}
		if item.Quantity < 0 {
			return invalid("item %q: quantity cannot be negative", item.ID)
		}
		if err := validateDiscounts(item.Discounts); err != nil {
			return invalid("item %q: %v", item.ID, err)
		}
		for _, pid := range item.Assignees {
			if !participants[pid] {
				return invalid("item %q: assignee %q is not a participant", item.ID, pid)
			}
		}
	}
	return nil
}

func validateDiscounts(discounts []Discount) error {
	for _, d := range discounts {
		if d.Amount < 0 {
			return fmt.Errorf("discount %q cannot be negative", d.Name)
		}
	}
	return nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidSession, fmt.Sprintf(format, args...))
}
