package chain

import (
	"fmt"
	"time"
)

// Block is one immutable unit of the chain. Blocks are created only by
// NewGenesis and Next; once created they are never edited in place.
//
// The digest covers every field except Hash itself and must recompute
// byte-for-byte from the others (see ComputeHash).
type Block struct {
	Index     uint64    `cbor:"i"`
	Timestamp int64     `cbor:"t"` // unix nanoseconds
	PrevHash  Digest    `cbor:"p"`
	Hash      Digest    `cbor:"h"`
	Payload   *Snapshot `cbor:"d"`
}

// NewGenesis creates the index-0 block with the sentinel previous-hash.
// The timestamp is passed in explicitly so callers control the clock.
func NewGenesis(snapshot *Snapshot, at time.Time) (*Block, error) {
	if snapshot == nil {
		return nil, fmt.Errorf("%w: snapshot", ErrNilParam)
	}

	b := &Block{
		Index:     0,
		Timestamp: at.UnixNano(),
		PrevHash:  GenesisPrevHash(),
		Payload:   snapshot,
	}

	hash, err := ComputeHash(b.Index, b.Timestamp, b.PrevHash, b.Payload)
	if err != nil {
		return nil, err
	}
	b.Hash = hash
	return b, nil
}

// Next creates the successor of prev carrying the given snapshot.
func Next(prev *Block, snapshot *Snapshot, at time.Time) (*Block, error) {
	if prev == nil {
		return nil, fmt.Errorf("%w: previous block", ErrNilParam)
	}
	if snapshot == nil {
		return nil, fmt.Errorf("%w: snapshot", ErrNilParam)
	}

	b := &Block{
		Index:     prev.Index + 1,
		Timestamp: at.UnixNano(),
		PrevHash:  append(Digest(nil), prev.Hash...),
		Payload:   snapshot,
	}

	hash, err := ComputeHash(b.Index, b.Timestamp, b.PrevHash, b.Payload)
	if err != nil {
		return nil, err
	}
	b.Hash = hash
	return b, nil
}

// Recompute returns the digest derived from the block's current fields.
func (b *Block) Recompute() (Digest, error) {
	return ComputeHash(b.Index, b.Timestamp, b.PrevHash, b.Payload)
}

// Verify checks that the stored digest recomputes from the block's fields.
func (b *Block) Verify() error {
	want, err := b.Recompute()
	if err != nil {
		return err
	}
	if !b.Hash.Equal(want) {
		return ErrHashMismatch
	}
	return nil
}
