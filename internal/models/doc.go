// Package models defines the core domain models for the tip calculator.
//
// # Models
//
//   - TipInput: the four user-provided values after parsing
//   - TipResult: the derived tip and total for one render pass
//   - Mode: which rule produced the tip
//
// None of these are persisted. Every keystroke or toggle builds a fresh
// TipInput from the raw screen text and a fresh TipResult from it.
//
// # Optional override
//
// The custom tip is a decimal.NullDecimal rather than a plain decimal so
// that "typed 0" and "typed nothing" stay distinct. Only a Valid override
// replaces the percentage rule.
package models
