package ledger

import "github.com/luca-patrignani/bridge/domain/bridge"

// Block records one call of the auction.
type Block struct {
	Index     int      `json:"index"`
	Timestamp int64    `json:"timestamp"`
	PrevHash  string   `json:"prev_hash"`
	Hash      string   `json:"hash"`
	Call      Call     `json:"call"`
	Metadata  Metadata `json:"metadata"`
}

// Call is a bid made from a seat, with the description of the rule that
// produced it and, when the seat signs its calls, the seat's signature.
type Call struct {
	Seat      bridge.Seat `json:"seat"`
	Bid       bridge.Bid  `json:"bid"`
	Rule      string      `json:"rule,omitempty"`
	Signature []byte      `json:"signature,omitempty"`
}

type Metadata struct {
	AuctionID string            `json:"auction_id"`
	Extra     map[string]string `json:"extra,omitempty"`
}
