// Package bridge implements the vocabulary of contract bridge: cards, the
// canonical deck, hands, bids and auction histories.
//
// # Core Types
//
// Card: a playing card identified by suit and rank, numbered 1-52.
//
// Hand: thirteen distinct cards with derived point count and shape queries.
//
// Bid: a level (1-7) and a strain (four suits or no-trump), or Pass.
//
// History: the ordered calls of an auction, extended by value only.
//
// # Text Codes
//
// Cards and bids use two-character codes. A card code is a rank character
// followed by a suit initial ("TH" is the ten of hearts). A bid code is a
// level digit followed by a strain initial ("1S", "3N"), with "PS" for Pass.
// Initials are matched case-sensitively.
//
// All values are immutable once constructed and safe to share between
// goroutines.
package bridge
