package shamir_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/shardkit/vss/internal"
	"github.com/shardkit/vss/pkg/random"
	"github.com/shardkit/vss/pkg/shamir"
)

func bigs(vals ...int64) []*big.Int {
	out := make([]*big.Int, len(vals))
	for i, v := range vals {
		out[i] = big.NewInt(v)
	}
	return out
}

// Wikipedia worked example: p=1613, polynomial [1234, 166, 94], t=3 n=6.
func TestWikipediaSSSGoldenVector(t *testing.T) {
	prime := big.NewInt(1613)
	eng, err := shamir.NewEngine(shamir.Config{Threshold: 3, Limit: 6, Prime: prime})
	require.NoError(t, err)

	// Split draws random coefficients, so to pin the exact polynomial we
	// feed a fixed byte source that yields a_1=166, a_2=94 (the golden
	// vector's coefficients) and compare against the known shares.
	shares, err := eng.Split(big.NewInt(1234), fixedCoeffSource(t, prime, 166, 94))
	require.NoError(t, err)

	want := []shamir.Share{
		{Index: 1, Value: big.NewInt(1494)},
		{Index: 2, Value: big.NewInt(329)},
		{Index: 3, Value: big.NewInt(965)},
		{Index: 4, Value: big.NewInt(176)},
		{Index: 5, Value: big.NewInt(1188)},
		{Index: 6, Value: big.NewInt(775)},
	}
	require.Len(t, shares, len(want))
	for i := range want {
		require.Equal(t, want[i].Index, shares[i].Index)
		require.Equal(t, want[i].Value, shares[i].Value)
	}

	recovered, err := eng.Recover(shares[:3])
	require.NoError(t, err)
	require.Equal(t, big.NewInt(1234), recovered)
}

func TestLargeSecp256k1FieldPrime(t *testing.T) {
	prime, ok := new(big.Int).SetString("fffffffffffffffffffffffffffffffffffffffffffffffffffffefffffc2f", 16)
	require.True(t, ok)
	secret, ok := new(big.Int).SetString("ffffffffffffffffffffffffffffffffffffff", 16)
	require.True(t, ok)

	eng, err := shamir.NewEngine(shamir.Config{Threshold: 3, Limit: 5, Prime: prime})
	require.NoError(t, err)

	shares, err := eng.Split(secret, random.NewCryptoSource())
	require.NoError(t, err)
	require.Len(t, shares, 5)

	recovered, err := eng.Recover(shares[:3])
	require.NoError(t, err)
	require.Equal(t, secret, recovered)
}

func TestThresholdEqualsLimit(t *testing.T) {
	prime := big.NewInt(1613)
	eng, err := shamir.NewEngine(shamir.Config{Threshold: 4, Limit: 4, Prime: prime})
	require.NoError(t, err)

	shares, err := eng.Split(big.NewInt(42), random.NewCryptoSource())
	require.NoError(t, err)

	recovered, err := eng.Recover(shares)
	require.NoError(t, err)
	require.Equal(t, big.NewInt(42), recovered)
}

func TestRecoverWrongShareCount(t *testing.T) {
	prime := big.NewInt(1613)
	eng, err := shamir.NewEngine(shamir.Config{Threshold: 3, Limit: 6, Prime: prime})
	require.NoError(t, err)
	shares, err := eng.Split(big.NewInt(1), random.NewCryptoSource())
	require.NoError(t, err)

	_, err = eng.Recover(shares[:2])
	require.Error(t, err)
}

func TestRecoverDuplicateIndexPanics(t *testing.T) {
	prime := big.NewInt(1613)
	eng, err := shamir.NewEngine(shamir.Config{Threshold: 2, Limit: 4, Prime: prime})
	require.NoError(t, err)
	shares, err := eng.Split(big.NewInt(1), random.NewCryptoSource())
	require.NoError(t, err)

	require.Panics(t, func() {
		_, _ = eng.Recover([]shamir.Share{shares[0], shares[0]})
	})
}

func TestConfigRejectsThresholdGreaterThanLimit(t *testing.T) {
	_, err := shamir.NewEngine(shamir.Config{Threshold: 5, Limit: 3, Prime: big.NewInt(1613)})
	require.Error(t, err)
}

func TestConfigAcceptsThresholdEqualsLimit(t *testing.T) {
	_, err := shamir.NewEngine(shamir.Config{Threshold: 3, Limit: 3, Prime: big.NewInt(1613)})
	require.NoError(t, err)
}

func TestConfigRejectsNonPrimeModulus(t *testing.T) {
	_, err := shamir.NewEngine(shamir.Config{Threshold: 2, Limit: 3, Prime: big.NewInt(1612)})
	require.Error(t, err)
}

func TestSplitRejectsOutOfRangeSecret(t *testing.T) {
	eng, err := shamir.NewEngine(shamir.Config{Threshold: 2, Limit: 3, Prime: big.NewInt(1613)})
	require.NoError(t, err)
	_, err = eng.Split(big.NewInt(1613), random.NewCryptoSource())
	require.Error(t, err)
}

func TestRoundTripManyRandomInstances(t *testing.T) {
	prime, ok := new(big.Int).SetString("fffffffffffffffffffffffffffffffffffffffffffffffffffffefffffc2f", 16)
	require.True(t, ok)
	src := random.NewDeterministicSource([]byte("shamir-property-seed"), []byte("round-trip"))

	eng, err := shamir.NewEngine(shamir.Config{Threshold: 4, Limit: 9, Prime: prime})
	require.NoError(t, err)

	for i := int64(0); i < 20; i++ {
		secret, err := modprimeRandom(src, prime)
		require.NoError(t, err)

		shares, err := eng.Split(secret, src)
		require.NoError(t, err)
		require.Len(t, shares, 9)

		recovered, err := eng.Recover(shares[:4])
		require.NoError(t, err)
		require.Equal(t, secret, recovered)

		// Any other 4-subset also recovers the same secret.
		recovered2, err := eng.Recover([]shamir.Share{shares[1], shares[3], shares[5], shares[8]})
		require.NoError(t, err)
		require.Equal(t, secret, recovered2)
	}
}

// Custom, scattered IDs (not the default dense 1..n) must still round-trip.
func TestSplitRecoverWithScatteredIDs(t *testing.T) {
	prime := big.NewInt(1613)
	ids, err := internal.SampleUniqueUint32s(5, 100, 1000)
	require.NoError(t, err)

	eng, err := shamir.NewEngine(shamir.Config{Threshold: 3, Limit: 5, Prime: prime, IDs: ids})
	require.NoError(t, err)

	shares, err := eng.Split(big.NewInt(777), random.NewCryptoSource())
	require.NoError(t, err)
	require.Len(t, shares, 5)
	for i, sh := range shares {
		require.Equal(t, ids[i], sh.Index)
	}

	recovered, err := eng.Recover(shares[:3])
	require.NoError(t, err)
	require.Equal(t, big.NewInt(777), recovered)
}

func TestConfigRejectsWrongLengthIDs(t *testing.T) {
	_, err := shamir.NewEngine(shamir.Config{Threshold: 2, Limit: 3, Prime: big.NewInt(1613), IDs: []uint32{1, 2}})
	require.Error(t, err)
}

func TestConfigRejectsDuplicateIDs(t *testing.T) {
	_, err := shamir.NewEngine(shamir.Config{Threshold: 2, Limit: 3, Prime: big.NewInt(1613), IDs: []uint32{1, 1, 2}})
	require.Error(t, err)
}

func TestConfigRejectsZeroID(t *testing.T) {
	_, err := shamir.NewEngine(shamir.Config{Threshold: 2, Limit: 3, Prime: big.NewInt(1613), IDs: []uint32{0, 1, 2}})
	require.Error(t, err)
}

func modprimeRandom(src random.Source, prime *big.Int) (*big.Int, error) {
	buf := make([]byte, (prime.BitLen()+7)/8)
	if _, err := src.Read(buf); err != nil {
		return nil, err
	}
	return new(big.Int).Mod(new(big.Int).SetBytes(buf), prime), nil
}

// fixedCoeffSource returns an io.Reader that, when consumed by
// modprime.Random in sequence, yields exactly coeffs (each reduced mod
// prime) — used only to pin the Wikipedia golden vector's coefficients
// without changing samplePolynomial's draw order.
func fixedCoeffSource(t *testing.T, prime *big.Int, coeffs ...int64) random.Source {
	t.Helper()
	byteLen := (prime.BitLen()+7)/8 + 8
	buf := make([]byte, 0, byteLen*len(coeffs))
	for _, c := range coeffs {
		b := make([]byte, byteLen)
		big.NewInt(c).FillBytes(b)
		buf = append(buf, b...)
	}
	return &staticSource{buf: buf}
}

type staticSource struct {
	buf []byte
}

func (s *staticSource) Read(p []byte) (int, error) {
	n := copy(p, s.buf)
	s.buf = s.buf[n:]
	return n, nil
}
