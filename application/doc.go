// Package application runs a baccarat table: it owns the ledger of the
// current shoe, records hands from the dealer, a feed or a simulated shoe,
// and serves the road maps and predictions computed from it.
package application
