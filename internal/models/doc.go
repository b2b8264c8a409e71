// Package models defines the data exchanged with the settlement engine.
//
// # Input
//
// A Session is a full snapshot supplied by the caller on every calculation:
//   - Participant: a person, identified by ID (Name is display only)
//   - Receipt: a payment with a payer, a currency, discounts and a service charge
//   - Item: a line on a receipt, assigned to participants through a SplitMode
//
// # Output
//
// A SplitSummary holds one ParticipantSummary per participant, the Settlement
// transfers that clear every balance, and rounding audit detail.
//
// # Money
//
// Every amount is an int64 in minor currency units (cents). Exchange rates and
// percentage service charges are decimals; they are only ever multiplied into
// an amount and rounded immediately.
//
// # Validation
//
// The engine accepts any well-typed Session and degrades gracefully. Session.Validate
// is a stricter check used at the service boundary to reject snapshots that reference
// unknown participants or receipts.
package models
