// Package ledger records the hands of a shoe in an append-only, hash-chained
// log. It is the owner of the outcome list the road maps are computed from.
//
// # Core Components
//
// Ledger: the chain of one shoe, starting with a genesis block that names the
// shoe. Every recorded hand is a new block linked to the previous one by its
// SHA-256 hash.
//
// Block: one hand, its position in the shoe and the hashes that chain it.
//
// # Usage
//
// Create a ledger per shoe, Append hands as the dealer settles them and hand
// Outcomes to the road calculator. Outcomes returns a copy, so a computation
// never races with later appends. Verify can be called at any time to check
// that the chain is intact.
package ledger
