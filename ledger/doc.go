// Package ledger implements an append-only, hash-chained transcript of the
// calls made in an auction.
//
// # Core Components
//
// Transcript: the ordered calls of one auction with cryptographic hash
// chaining for tamper detection.
//
// Block: a single call, with the seat that made it, the description of the
// rule that produced it and the link to the previous block.
//
// # Security Properties
//
// The transcript provides:
//   - Verifiability: Verify rechecks every hash and link
//   - Tamper detection: any modification of a recorded call breaks the chain
//
// # Usage
//
// Create a transcript per auction, append each call as it is made, and call
// Verify before trusting a transcript read back from elsewhere.
package ledger
