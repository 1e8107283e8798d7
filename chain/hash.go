// Package chain implements the hash-linked ledger at the core of the
// backup store: blocks, full-state snapshots, chain validation, and the
// serialized form used for durable backups.
package chain

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// DigestSize is the size of a block digest in bytes (SHA-256).
const DigestSize = 32

// Digest is a block's SHA-256 digest.
type Digest []byte

// String returns the digest as lowercase hex.
func (d Digest) String() string { return hex.EncodeToString(d) }

// Equal reports whether two digests are byte-identical.
func (d Digest) Equal(other Digest) bool { return bytes.Equal(d, other) }

// GenesisPrevHash returns the fixed sentinel previous-hash of the
// genesis block: DigestSize zero bytes.
func GenesisPrevHash() Digest { return make(Digest, DigestSize) }

// Canonical encoding options for hashing and persistence. Map keys are
// sorted and indefinite lengths are forbidden so that identical values
// always produce identical bytes, which the digest scheme depends on.
var encOptions = cbor.EncOptions{
	Sort:          cbor.SortCanonical,
	ShortestFloat: cbor.ShortestFloatNone,
	Time:          cbor.TimeUnix,
	TimeTag:       cbor.EncTagNone,
	IndefLength:   cbor.IndefLengthForbidden,
}

// Strict, bounded decoding options so a corrupt or hostile backup blob
// fails cleanly instead of exhausting memory.
var decOptions = cbor.DecOptions{
	MaxArrayElements: 1 << 20,
	MaxMapPairs:      1 << 20,
	MaxNestedLevels:  32,
	IndefLength:      cbor.IndefLengthForbidden,
	DupMapKey:        cbor.DupMapKeyEnforcedAPF,
}

var em, _ = encOptions.EncMode()
var dm, _ = decOptions.DecMode()

// blockHeader is the exact byte layout covered by a block digest.
// The payload participates as its own canonical encoding, so the digest
// is a pure function of (index, timestamp, previous digest, payload).
type blockHeader struct {
	Index     uint64 `cbor:"i"`
	Timestamp int64  `cbor:"t"`
	PrevHash  []byte `cbor:"p"`
	Payload   []byte `cbor:"d"`
}

// ComputeHash computes the digest of a block's fields.
//
// Canonical form: SHA-256 over the canonical CBOR encoding of
// {index, unix-nano timestamp, previous digest, canonical CBOR payload}.
// Timestamps are fixed at nanosecond precision. Digests are internally
// consistent and verifiable; they are not compatible with any prior
// implementation and do not need to be.
func ComputeHash(index uint64, timestamp int64, prevHash Digest, payload *Snapshot) (Digest, error) {
	if payload == nil {
		return nil, fmt.Errorf("%w: payload", ErrNilParam)
	}

	body, err := em.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("chain: encode payload: %w", err)
	}

	header, err := em.Marshal(blockHeader{
		Index:     index,
		Timestamp: timestamp,
		PrevHash:  prevHash,
		Payload:   body,
	})
	if err != nil {
		return nil, fmt.Errorf("chain: encode header: %w", err)
	}

	sum := sha256.Sum256(header)
	return Digest(sum[:]), nil
}
