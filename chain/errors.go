package chain

import (
	"errors"
	"fmt"
)

var (
	// ErrHashMismatch indicates a block's stored digest does not recompute from its fields.
	ErrHashMismatch = errors.New("chain: stored digest does not recompute")

	// ErrLinkBroken indicates a block's previous-hash does not match its predecessor.
	ErrLinkBroken = errors.New("chain: block linkage broken")

	// ErrBadGenesis indicates the genesis block's previous-hash is not the sentinel.
	ErrBadGenesis = errors.New("chain: genesis previous-hash is not the sentinel")

	// ErrBadIndex indicates a block index out of sequence.
	ErrBadIndex = errors.New("chain: block index out of sequence")

	// ErrNilParam indicates a required parameter is nil.
	ErrNilParam = errors.New("chain: required parameter is nil")

	// ErrDecode indicates serialized chain data failed to decode.
	ErrDecode = errors.New("chain: cannot decode serialized chain")

	// ErrUnsupportedVersion indicates an unknown serialization format version.
	ErrUnsupportedVersion = errors.New("chain: unsupported format version")

	// ErrEmptyChain indicates serialized data with no blocks (genesis is mandatory).
	ErrEmptyChain = errors.New("chain: serialized chain has no blocks")
)

// IntegrityError reports the first block at which chain validation failed,
// so diagnostics can point at the exact tampered block.
type IntegrityError struct {
	Index  uint64
	Reason error
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf("chain: integrity failure at block %d: %v", e.Index, e.Reason)
}

// Unwrap exposes the underlying sentinel for errors.Is checks.
func (e *IntegrityError) Unwrap() error { return e.Reason }
