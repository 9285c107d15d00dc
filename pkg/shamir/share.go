package shamir

import "math/big"

// Share is one (index, value) pair produced by Engine.Split. Index is the
// polynomial evaluation point: in [1, n] by default, or the matching entry
// of Config.IDs when set; index 0 would be the secret and is never emitted.
type Share struct {
	Index uint32
	Value *big.Int
}
