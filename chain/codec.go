package chain

import "fmt"

// FormatVersion is the current serialized-chain format. The envelope is
// explicitly versioned so future field additions don't silently break
// validation of old backups.
const FormatVersion = 1

// envelope is the self-contained serialized representation of a chain.
type envelope struct {
	Version uint32   `cbor:"v"`
	Blocks  []*Block `cbor:"b"`
}

// Encode serializes the full chain to its durable representation.
func Encode(c *Chain) ([]byte, error) {
	if c == nil {
		return nil, fmt.Errorf("%w: chain", ErrNilParam)
	}

	data, err := em.Marshal(envelope{
		Version: FormatVersion,
		Blocks:  c.blocks,
	})
	if err != nil {
		return nil, fmt.Errorf("chain: encode: %w", err)
	}
	return data, nil
}

// Decode deserializes a chain produced by Encode. It performs format
// checks only; the caller must run ValidateFull before installing the
// result as live state.
func Decode(data []byte) (*Chain, error) {
	var env envelope
	if err := dm.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	if env.Version != FormatVersion {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrUnsupportedVersion, env.Version, FormatVersion)
	}
	return FromBlocks(env.Blocks)
}
