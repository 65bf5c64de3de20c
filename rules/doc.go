// Package rules implements the rules of chess on immutable bitboard positions.
//
// A Game is a value: applying a move returns a new Game and leaves the receiver
// untouched. Each move also yields an ordered list of Events, and the position's
// Zobrist hash is maintained by folding those events into the previous hash.
//
// The package has no notion of a match. Draw claims, resignation and history
// tracking live in package session.
package rules
