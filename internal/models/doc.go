// Package models defines the core domain models for housesplit.
//
// # Entities
//
//   - Roommate: a person living in the household who can owe money
//   - Bill: a recurring or one-off household expense
//   - Assignment: the link recording that a roommate shares a bill
//
// Roommates and bills are never physically deleted. Deactivation flips
// IsActive to false so the row stays around, while the assignment links that
// pointed at it are removed.
//
// # Read Views
//
// Assignee, RoommateTotal and Snapshot are shapes produced by the store or
// the query layer. They are not persisted on their own.
//
// # Design Principles
//
//  1. Relationships are ID strings, never pointers
//  2. Timestamps are Unix seconds, matching the storage layer
//  3. Models carry no behavior beyond small helpers; validation lives in the store
package models
