package curves_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/shardkit/vss/pkg/curves"
	"github.com/shardkit/vss/pkg/random"
)

func TestScalarZeroOne(t *testing.T) {
	require.True(t, curves.ZeroScalar().IsZero())
	require.False(t, curves.OneScalar().IsZero())
	require.Equal(t, 0, big.NewInt(0).Cmp(curves.ZeroScalar().BigInt()))
	require.Equal(t, big.NewInt(1), curves.OneScalar().BigInt())
}

func TestScalarFromBigIntRoundTrip(t *testing.T) {
	for _, v := range []int64{0, 1, 2, 12345, 999999999} {
		s := curves.ScalarFromBigInt(big.NewInt(v))
		require.Equal(t, 0, big.NewInt(v).Cmp(s.BigInt()))
	}
}

func TestScalarFromHexRoundTrip(t *testing.T) {
	src := random.NewDeterministicSource([]byte("hex-round-trip-seed"), []byte("test"))
	for i := 0; i < 10; i++ {
		s, err := curves.RandomScalar(src)
		require.NoError(t, err)
		s2, err := curves.ScalarFromHex(s.Hex())
		require.NoError(t, err)
		require.True(t, s.Equal(s2))
	}
}

func TestScalarFromHexInvalid(t *testing.T) {
	_, err := curves.ScalarFromHex("not-hex")
	require.Error(t, err)
}

func TestScalarArithmetic(t *testing.T) {
	three := curves.ScalarFromBigInt(big.NewInt(3))
	five := curves.ScalarFromBigInt(big.NewInt(5))

	require.Equal(t, big.NewInt(8), three.Add(five).BigInt())
	require.Equal(t, big.NewInt(15), three.Mul(five).BigInt())

	// 3 - 5 mod q == q - 2
	q := new(big.Int).Sub(curveOrder(t), big.NewInt(2))
	require.Equal(t, q, three.Sub(five).BigInt())
}

func TestScalarInverse(t *testing.T) {
	src := random.NewDeterministicSource([]byte("inverse-seed"), []byte("test"))
	for i := 0; i < 10; i++ {
		s, err := curves.RandomScalar(src)
		require.NoError(t, err)
		inv := s.Inverse()
		require.True(t, s.Mul(inv).Equal(curves.OneScalar()))
		require.True(t, inv.Inverse().Equal(s))
	}
}

func TestScalarInverseOfZeroPanics(t *testing.T) {
	require.Panics(t, func() {
		curves.ZeroScalar().Inverse()
	})
}

func TestScalarReduceIdempotent(t *testing.T) {
	src := random.NewDeterministicSource([]byte("reduce-seed"), []byte("test"))
	s, err := curves.RandomScalar(src)
	require.NoError(t, err)
	require.True(t, s.Reduce().Equal(s.Reduce().Reduce()))
}

func curveOrder(t *testing.T) *big.Int {
	t.Helper()
	// secp256k1 group order.
	q, ok := new(big.Int).SetString("fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141", 16)
	require.True(t, ok)
	return q
}
