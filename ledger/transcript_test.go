package ledger

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/luca-patrignani/bridge/domain/bridge"
)

// newTestTranscript records the calls of the given auction, seats in turn
// starting from North.
func newTestTranscript(t *testing.T, auction string) *Transcript {
	t.Helper()
	tr := NewTranscript(uuid.NewString())
	seat := bridge.North
	for _, bid := range bridge.MustParseHistory(auction) {
		if err := tr.Append(Call{Seat: seat, Bid: bid, Rule: "test"}); err != nil {
			t.Fatalf("unexpected error appending call: %v", err)
		}
		seat = seat.Next()
	}
	return tr
}

func TestNewTranscript(t *testing.T) {
	id := uuid.NewString()
	tr := NewTranscript(id, map[string]string{"board": "1"})

	if tr.Len() != 0 {
		t.Fatalf("new transcript should have no calls, got %d", tr.Len())
	}
	genesis, err := tr.ByIndex(0)
	if err != nil {
		t.Fatalf("failed to get genesis: %v", err)
	}
	if genesis.PrevHash != "0" {
		t.Fatalf("genesis prev hash should be 0, got %s", genesis.PrevHash)
	}
	if genesis.Metadata.AuctionID != id {
		t.Fatalf("genesis auction id should be %s, got %s", id, genesis.Metadata.AuctionID)
	}
	if genesis.Metadata.Extra["board"] != "1" {
		t.Fatal("genesis should carry the extra metadata")
	}
	if tr.AuctionID() != id {
		t.Fatalf("expected auction id %s, got %s", id, tr.AuctionID())
	}
	if err := tr.Verify(); err != nil {
		t.Fatalf("fresh transcript should verify: %v", err)
	}
}

func TestAppendCall(t *testing.T) {
	tr := newTestTranscript(t, "1N PS 3N")

	if tr.Len() != 3 {
		t.Fatalf("expected 3 calls, got %d", tr.Len())
	}

	latest, err := tr.Latest()
	if err != nil {
		t.Fatalf("failed to get latest: %v", err)
	}
	if latest.Index != 3 {
		t.Fatalf("latest index should be 3, got %d", latest.Index)
	}
	if latest.Call.Seat != bridge.South {
		t.Fatalf("third call should be made by SOUTH, got %s", latest.Call.Seat)
	}
	if latest.Call.Bid != bridge.MustParseBid("3N") {
		t.Fatalf("latest call should be 3N, got %s", latest.Call.Bid)
	}

	prev, _ := tr.ByIndex(2)
	if latest.PrevHash != prev.Hash {
		t.Fatal("latest block's PrevHash should match previous block's hash")
	}
}

func TestHistory(t *testing.T) {
	tr := newTestTranscript(t, "1S PS 2S PS PS PS")

	want := bridge.MustParseHistory("1S PS 2S PS PS PS")
	if !tr.History().Equal(want) {
		t.Fatalf("expected history %s, got %s", want, tr.History())
	}

	calls := tr.Calls()
	if len(calls) != 6 {
		t.Fatalf("expected 6 calls, got %d", len(calls))
	}
	if calls[5].Seat != bridge.East {
		t.Fatalf("sixth call should be made by EAST, got %s", calls[5].Seat)
	}
}

func TestByIndexOutOfRange(t *testing.T) {
	tr := newTestTranscript(t, "PS")

	if _, err := tr.ByIndex(2); err == nil {
		t.Fatal("expected error for index past the end")
	}
	if _, err := tr.ByIndex(-1); err == nil {
		t.Fatal("expected error for negative index")
	}
}

func TestVerifyEmptyTranscript(t *testing.T) {
	tr := &Transcript{}

	if err := tr.Verify(); err == nil {
		t.Fatal("expected error verifying empty transcript")
	}
	if _, err := tr.Latest(); err == nil {
		t.Fatal("expected error getting latest of empty transcript")
	}
}

func TestVerifyInvalidGenesis(t *testing.T) {
	tr := newTestTranscript(t, "1C")

	tr.blocks[0].PrevHash = "1"

	if err := tr.Verify(); err == nil {
		t.Fatal("expected error for invalid genesis block")
	}
}

func TestVerifyTamperedCall(t *testing.T) {
	tr := newTestTranscript(t, "1C PS 1H PS")

	// Rewrite a recorded call without fixing its hash.
	tr.blocks[3].Call.Bid = bridge.MustParseBid("4H")

	if err := tr.Verify(); err == nil {
		t.Fatal("expected error for tampered call, got nil")
	}
}

func TestVerifyTamperedBlockHash(t *testing.T) {
	tr := newTestTranscript(t, "1C PS")

	tr.blocks[1].Hash = "tamperedhash"

	if err := tr.Verify(); err == nil {
		t.Fatal("expected error for tampered block hash, got nil")
	}
}

func TestVerifyBrokenChainLink(t *testing.T) {
	tr := newTestTranscript(t, "1C PS 1H")

	tr.blocks[2].PrevHash = "brokenlink"
	tr.blocks[2].Hash = calculateHash(tr.blocks[2])

	if err := tr.Verify(); err == nil {
		t.Fatal("expected error for broken chain link, got nil")
	}
}

func TestVerifyIndexDiscontinuity(t *testing.T) {
	tr := newTestTranscript(t, "1C PS")

	tr.blocks[2].Index = 5
	tr.blocks[2].Hash = calculateHash(tr.blocks[2])

	if err := tr.Verify(); err == nil {
		t.Fatal("expected error for index discontinuity, got nil")
	}
}

func TestVerifyForeignBlock(t *testing.T) {
	tr := newTestTranscript(t, "1C PS")

	tr.blocks[2].Metadata.AuctionID = uuid.NewString()
	tr.blocks[2].Hash = calculateHash(tr.blocks[2])

	if err := tr.Verify(); err == nil {
		t.Fatal("expected error for block from another auction, got nil")
	}
}

func TestMarshalJSON(t *testing.T) {
	tr := newTestTranscript(t, "1N PS")

	data, err := json.Marshal(tr)
	if err != nil {
		t.Fatalf("failed to marshal transcript: %v", err)
	}

	var blocks []Block
	if err := json.Unmarshal(data, &blocks); err != nil {
		t.Fatalf("failed to unmarshal blocks: %v", err)
	}
	if len(blocks) != 3 {
		t.Fatalf("expected 3 blocks, got %d", len(blocks))
	}
	if blocks[1].Call.Bid != bridge.MustParseBid("1N") {
		t.Fatalf("expected 1N in block 1, got %s", blocks[1].Call.Bid)
	}
	if blocks[2].Call.Bid != bridge.Pass {
		t.Fatalf("expected pass in block 2, got %s", blocks[2].Call.Bid)
	}
	if blocks[1].Hash != calculateHash(blocks[1]) {
		t.Fatal("decoded block should keep a valid hash")
	}
}
