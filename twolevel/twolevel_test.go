package twolevel

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/nthparty/lhe/pairing"
)

// seed test vectors carried over from original_source/lhe/lhe.py's own
// smoke test.
const (
	seedA = 737
	seedB = 747
	seedC = 666
	seedD = 10
)

func TestEncryptDecryptLevel1(t *testing.T) {
	sk, pk, err := Keygen()
	require.NoError(t, err)

	ct, err := EncryptLevel1(pk, seedA)
	require.NoError(t, err)

	m, err := Decrypt(sk, ct, DefaultDlogBound, false)
	require.NoError(t, err)
	require.Equal(t, int64(seedA), m)
}

func TestEncryptDecryptLevel2Direct(t *testing.T) {
	sk, pk, err := Keygen()
	require.NoError(t, err)

	ct, err := EncryptLevel2(pk, seedD)
	require.NoError(t, err)

	m, err := Decrypt(sk, ct, DefaultDlogBound, false)
	require.NoError(t, err)
	require.Equal(t, int64(seedD), m)
}

func TestAddLevel1IsHomomorphic(t *testing.T) {
	sk, pk, err := Keygen()
	require.NoError(t, err)

	a, err := EncryptLevel1(pk, seedA)
	require.NoError(t, err)
	b, err := EncryptLevel1(pk, seedB)
	require.NoError(t, err)

	sum := a.Add(b)
	m, err := Decrypt(sk, sum, DefaultDlogBound, false)
	require.NoError(t, err)
	require.Equal(t, int64(seedA+seedB), m)
}

func TestMulLevel1ProducesLevel2Product(t *testing.T) {
	sk, pk, err := Keygen()
	require.NoError(t, err)

	a, err := EncryptLevel1(pk, seedC)
	require.NoError(t, err)
	b, err := EncryptLevel1(pk, seedD)
	require.NoError(t, err)

	prod, err := a.Mul(b)
	require.NoError(t, err)

	m, err := Decrypt(sk, prod, DefaultDlogBound, false)
	require.NoError(t, err)
	require.Equal(t, int64(seedC*seedD), m)
}

func TestAddLevel2AfterMul(t *testing.T) {
	sk, pk, err := Keygen()
	require.NoError(t, err)

	a, err := EncryptLevel1(pk, 3)
	require.NoError(t, err)
	b, err := EncryptLevel1(pk, 4)
	require.NoError(t, err)
	prod, err := a.Mul(b)
	require.NoError(t, err)

	extra, err := EncryptLevel2(pk, 5)
	require.NoError(t, err)

	sum := prod.Add(extra)
	m, err := Decrypt(sk, sum, DefaultDlogBound, false)
	require.NoError(t, err)
	require.Equal(t, int64(3*4+5), m)
}

func TestScalarMulLevel1(t *testing.T) {
	sk, pk, err := Keygen()
	require.NoError(t, err)

	ct, err := EncryptLevel1(pk, 6)
	require.NoError(t, err)

	scaled := ct.ScalarMul(7)
	m, err := Decrypt(sk, scaled, DefaultDlogBound, false)
	require.NoError(t, err)
	require.Equal(t, int64(42), m)
}

func TestSignedDecryptionRecoversNegative(t *testing.T) {
	sk, pk, err := Keygen()
	require.NoError(t, err)

	ct, err := EncryptLevel1(pk, -123)
	require.NoError(t, err)

	m, err := Decrypt(sk, ct, DefaultDlogBound, true)
	require.NoError(t, err)
	require.Equal(t, int64(-123), m)
}

func TestNegIsAdditiveInverse(t *testing.T) {
	sk, pk, err := Keygen()
	require.NoError(t, err)

	ct, err := EncryptLevel1(pk, 55)
	require.NoError(t, err)

	zero := ct.Add(ct.Neg())
	m, err := Decrypt(sk, zero, DefaultDlogBound, true)
	require.NoError(t, err)
	require.Equal(t, int64(0), m)
}

func TestTypeDispatchAddRejectsMismatch(t *testing.T) {
	sk, pk, err := Keygen()
	require.NoError(t, err)
	_ = sk

	ct1, err := EncryptLevel1(pk, 1)
	require.NoError(t, err)
	ct2, err := EncryptLevel2(pk, 1)
	require.NoError(t, err)

	_, err = Add(ct1, ct2)
	require.Error(t, err)
}

func TestTypeDispatchMulRejectsSecondMultiplication(t *testing.T) {
	sk, pk, err := Keygen()
	require.NoError(t, err)
	_ = sk

	ct2, err := EncryptLevel2(pk, 1)
	require.NoError(t, err)

	_, err = Mul(ct2, ct2)
	require.Error(t, err)
}

func TestAddGTIsCommutativeStructurally(t *testing.T) {
	_, pk, err := Keygen()
	require.NoError(t, err)

	a, err := EncryptLevel2(pk, 11)
	require.NoError(t, err)
	b, err := EncryptLevel2(pk, 22)
	require.NoError(t, err)

	left := a.Add(b)
	right := b.Add(a)
	require.True(t, cmp.Equal(left, right))
}

// BenchmarkEncryptLevel1 measures the cost of a fresh dual ElGamal
// encryption.
func BenchmarkEncryptLevel1(b *testing.B) {
	_, pk, err := Keygen()
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := EncryptLevel1(pk, int64(i)); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkMulLevel1 measures the cost of the cross-group pairing
// multiplication that lifts two level-1 ciphertexts to level 2.
func BenchmarkMulLevel1(b *testing.B) {
	_, pk, err := Keygen()
	if err != nil {
		b.Fatal(err)
	}
	x, err := EncryptLevel1(pk, 3)
	if err != nil {
		b.Fatal(err)
	}
	y, err := EncryptLevel1(pk, 4)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := x.Mul(y); err != nil {
			b.Fatal(err)
		}
	}
}

func TestDualCiphertextRecoversEvenIfG1Corrupted(t *testing.T) {
	sk, pk, err := Keygen()
	require.NoError(t, err)

	ct, err := EncryptLevel1(pk, seedB)
	require.NoError(t, err)
	// Corrupt the G1 half by shifting its plaintext past the dlog bound, so
	// the G1 search fails and only the G2 half decrypts cleanly.
	params, err := pairing.GlobalParams()
	require.NoError(t, err)
	ct.G1.B = ct.G1.B.Add(params.G1.ScalarMul(pairing.ScalarFromInt64(DefaultDlogBound)))

	m, err := Decrypt(sk, ct, DefaultDlogBound, false)
	require.NoError(t, err)
	require.Equal(t, int64(seedB), m)
}
