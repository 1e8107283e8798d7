package chain

import (
	"fmt"
	"time"
)

// Chain is the ordered, hash-linked sequence of blocks. A chain always
// holds at least the genesis block; it is never empty post-construction.
type Chain struct {
	blocks []*Block
}

// New creates a fresh chain whose genesis block carries snapshot.
func New(snapshot *Snapshot, at time.Time) (*Chain, error) {
	genesis, err := NewGenesis(snapshot, at)
	if err != nil {
		return nil, err
	}
	return &Chain{blocks: []*Block{genesis}}, nil
}

// FromBlocks wraps an already-ordered block sequence, as produced by
// Decode. The caller must run ValidateFull before trusting the result.
func FromBlocks(blocks []*Block) (*Chain, error) {
	if len(blocks) == 0 {
		return nil, ErrEmptyChain
	}
	return &Chain{blocks: blocks}, nil
}

// Len returns the number of blocks.
func (c *Chain) Len() int { return len(c.blocks) }

// Tip returns the last block.
func (c *Chain) Tip() *Block { return c.blocks[len(c.blocks)-1] }

// Block returns the block at position i (which equals its index for a
// valid chain).
func (c *Chain) Block(i int) *Block { return c.blocks[i] }

// Append extends the chain with b after checking that b links to the
// current tip and that its stored digest recomputes.
func (c *Chain) Append(b *Block) error {
	if b == nil {
		return fmt.Errorf("%w: block", ErrNilParam)
	}

	tip := c.Tip()
	if b.Index != tip.Index+1 {
		return &IntegrityError{Index: b.Index, Reason: ErrBadIndex}
	}
	if !b.PrevHash.Equal(tip.Hash) {
		return &IntegrityError{Index: b.Index, Reason: ErrLinkBroken}
	}
	if err := b.Verify(); err != nil {
		return &IntegrityError{Index: b.Index, Reason: err}
	}

	c.blocks = append(c.blocks, b)
	return nil
}

// ValidateFull walks the chain from genesis, recomputing every digest
// and checking linkage. It returns an *IntegrityError naming the first
// failing block, or nil if the chain is intact.
func (c *Chain) ValidateFull() error {
	for i, b := range c.blocks {
		if b.Payload == nil {
			return &IntegrityError{Index: uint64(i), Reason: fmt.Errorf("%w: payload", ErrNilParam)}
		}
		if err := b.Verify(); err != nil {
			return &IntegrityError{Index: b.Index, Reason: err}
		}

		if i == 0 {
			if b.Index != 0 {
				return &IntegrityError{Index: b.Index, Reason: ErrBadIndex}
			}
			if !b.PrevHash.Equal(GenesisPrevHash()) {
				return &IntegrityError{Index: 0, Reason: ErrBadGenesis}
			}
			continue
		}

		prev := c.blocks[i-1]
		if b.Index != prev.Index+1 {
			return &IntegrityError{Index: b.Index, Reason: ErrBadIndex}
		}
		if !b.PrevHash.Equal(prev.Hash) {
			return &IntegrityError{Index: b.Index, Reason: ErrLinkBroken}
		}
	}
	return nil
}
