package ledger

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/luca-patrignani/bridge/domain/bridge"
)

var ErrEmptyTranscript = errors.New("empty transcript")

// Transcript is an append-only, hash-chained record of the calls of one
// auction. It is safe for concurrent use.
type Transcript struct {
	mu        sync.RWMutex
	auctionID string
	blocks    []Block
}

// NewTranscript creates a transcript with an initialized genesis block.
// The genesis block has index 0, previous hash "0" and carries the auction
// id and the optional extra metadata.
func NewTranscript(auctionID string, extra ...map[string]string) *Transcript {
	t := &Transcript{
		auctionID: auctionID,
		blocks:    make([]Block, 0, 16),
	}

	var extraMsg map[string]string
	if len(extra) > 0 {
		extraMsg = extra[0]
	}
	genesis := Block{
		Index:     0,
		Timestamp: time.Now().Unix(),
		PrevHash:  "0",
		Call:      Call{Rule: "genesis"},
		Metadata:  Metadata{AuctionID: auctionID, Extra: extraMsg},
	}
	genesis.Hash = calculateHash(genesis)
	t.blocks = append(t.blocks, genesis)

	return t
}

// AuctionID returns the id the transcript was created with.
func (t *Transcript) AuctionID() string {
	return t.auctionID
}

// Append records a call. It calculates the block hash, validates the block
// against the previous one and appends it.
func (t *Transcript) Append(call Call) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	latest := t.blocks[len(t.blocks)-1]

	newBlock := Block{
		Index:     latest.Index + 1,
		Timestamp: time.Now().Unix(),
		PrevHash:  latest.Hash,
		Call:      call,
		Metadata:  Metadata{AuctionID: t.auctionID},
	}
	newBlock.Hash = calculateHash(newBlock)

	if err := validateBlock(newBlock, latest); err != nil {
		return fmt.Errorf("invalid block: %w", err)
	}

	t.blocks = append(t.blocks, newBlock)
	return nil
}

// Latest returns the most recently added block.
func (t *Transcript) Latest() (Block, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if len(t.blocks) == 0 {
		return Block{}, ErrEmptyTranscript
	}
	return t.blocks[len(t.blocks)-1], nil
}

// ByIndex retrieves a block by its index in the chain.
func (t *Transcript) ByIndex(index int) (Block, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if index < 0 || index >= len(t.blocks) {
		return Block{}, fmt.Errorf("index %d out of range", index)
	}
	return t.blocks[index], nil
}

// Len returns the number of recorded calls, not counting genesis.
func (t *Transcript) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return len(t.blocks) - 1
}

// Calls returns the recorded calls in order.
func (t *Transcript) Calls() []Call {
	t.mu.RLock()
	defer t.mu.RUnlock()

	calls := make([]Call, 0, len(t.blocks)-1)
	for _, b := range t.blocks[1:] {
		calls = append(calls, b.Call)
	}
	return calls
}

// History returns the bids of the recorded calls.
func (t *Transcript) History() bridge.History {
	calls := t.Calls()
	h := make(bridge.History, len(calls))
	for i, c := range calls {
		h[i] = c.Bid
	}
	return h
}

// Verify validates the integrity of the whole transcript: the genesis block
// and, for every later block, its hash, index continuity and link to the
// previous block.
func (t *Transcript) Verify() error {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if len(t.blocks) == 0 {
		return ErrEmptyTranscript
	}

	genesis := t.blocks[0]
	if genesis.PrevHash != "0" || genesis.Hash != calculateHash(genesis) {
		return fmt.Errorf("invalid genesis block")
	}

	for i := 1; i < len(t.blocks); i++ {
		if err := validateBlock(t.blocks[i], t.blocks[i-1]); err != nil {
			return fmt.Errorf("block %d invalid: %w", i, err)
		}
	}
	return nil
}

// MarshalJSON encodes the chain of blocks.
func (t *Transcript) MarshalJSON() ([]byte, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return json.Marshal(t.blocks)
}

// validateBlock verifies that a block is valid relative to the previous
// block: index continuity, previous hash linkage, hash validity and the
// auction id.
func validateBlock(current, previous Block) error {
	if current.Index != previous.Index+1 {
		return fmt.Errorf("invalid index: expected %d, got %d", previous.Index+1, current.Index)
	}

	if current.PrevHash != previous.Hash {
		return fmt.Errorf("invalid prev hash: expected %s, got %s", previous.Hash, current.PrevHash)
	}

	expectedHash := calculateHash(current)
	if current.Hash != expectedHash {
		return fmt.Errorf("invalid hash: expected %s, got %s", expectedHash, current.Hash)
	}

	if current.Metadata.AuctionID != previous.Metadata.AuctionID {
		return fmt.Errorf("auction id changed from %q to %q", previous.Metadata.AuctionID, current.Metadata.AuctionID)
	}

	return nil
}

// calculateHash computes the SHA256 hash of a block from its index,
// timestamp, previous hash, call and metadata. The call and the extra
// metadata are JSON marshaled before hashing.
func calculateHash(block Block) string {
	callBytes, _ := json.Marshal(block.Call)
	extraBytes, _ := json.Marshal(block.Metadata.Extra)

	data := fmt.Sprintf("%d%d%s%s%s%s",
		block.Index,
		block.Timestamp,
		block.PrevHash,
		string(callBytes),
		block.Metadata.AuctionID,
		string(extraBytes),
	)

	hash := sha256.Sum256([]byte(data))
	return hex.EncodeToString(hash[:])
}
