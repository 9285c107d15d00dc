package feldman

import (
	"encoding/binary"
	"encoding/hex"
	"math/big"

	"github.com/shardkit/vss/internal"
	"github.com/shardkit/vss/pkg/curves"
)

// Share is one (index, value) pair produced by Engine.Split. Index is the
// polynomial evaluation point: in [1, n] by default, or the matching entry
// of Config.IDs when set; index 0 would be the secret and is never emitted.
type Share struct {
	Index uint32
	Value curves.Scalar
}

// Encode serialises the share as (uint32 index, 32-byte scalar), per the
// wire format spec.md §6 defines for shares.
func (s Share) Encode() [36]byte {
	var out [36]byte
	binary.BigEndian.PutUint32(out[0:4], s.Index)
	v := s.Value.Bytes()
	copy(out[4:], v[:])
	return out
}

// DecodeShare parses the (uint32 index, 32-byte scalar) wire format.
func DecodeShare(b []byte) (Share, error) {
	if len(b) != 36 {
		return Share{}, internal.NewDecodeError("feldman: share must be 36 bytes, got %d", len(b))
	}
	index := binary.BigEndian.Uint32(b[0:4])
	if index == 0 {
		return Share{}, internal.NewDecodeError("feldman: share index must be >= 1")
	}
	value, err := curves.ScalarFromHex(hex.EncodeToString(b[4:36]))
	if err != nil {
		return Share{}, err
	}
	return Share{Index: index, Value: value}, nil
}

// indexScalar is the share index lifted into F_q, used as the evaluation
// point x in both Recover's Lagrange interpolation and Verify's group
// Horner evaluation.
func indexScalar(index uint32) curves.Scalar {
	return curves.ScalarFromBigInt(new(big.Int).SetUint64(uint64(index)))
}
