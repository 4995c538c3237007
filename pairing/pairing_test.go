package pairing

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScalarArithmetic(t *testing.T) {
	a := ScalarFromInt64(5)
	b := ScalarFromInt64(3)

	require.True(t, a.Add(b).Equal(ScalarFromInt64(8)))
	require.True(t, a.Sub(b).Equal(ScalarFromInt64(2)))
	require.True(t, a.Mul(b).Equal(ScalarFromInt64(15)))
	require.True(t, a.Neg().Add(a).IsZero())
}

func TestRandomScalarIsNonDeterministic(t *testing.T) {
	a, err := RandomScalar()
	require.NoError(t, err)
	b, err := RandomScalar()
	require.NoError(t, err)
	require.False(t, a.Equal(b))
}

func TestG1AddAndScalarMul(t *testing.T) {
	params, err := GlobalParams()
	require.NoError(t, err)

	p2 := params.G1.Add(params.G1)
	p2Scaled := params.G1.ScalarMul(ScalarFromInt64(2))
	require.True(t, p2.Equal(p2Scaled))

	require.True(t, params.G1.Add(IdentityG1()).Equal(params.G1))
}

func TestG2AddAndScalarMul(t *testing.T) {
	params, err := GlobalParams()
	require.NoError(t, err)

	p2 := params.G2.Add(params.G2)
	p2Scaled := params.G2.ScalarMul(ScalarFromInt64(2))
	require.True(t, p2.Equal(p2Scaled))

	require.True(t, params.G2.Add(IdentityG2()).Equal(params.G2))
}

func TestGTMulAndExp(t *testing.T) {
	params, err := GlobalParams()
	require.NoError(t, err)

	z2 := params.Z.Mul(params.Z)
	z2Exp := params.Z.Exp(ScalarFromInt64(2))
	require.True(t, z2.Equal(z2Exp))

	require.True(t, params.Z.Mul(IdentityGT()).Equal(params.Z))
}

func TestPairIsBilinear(t *testing.T) {
	params, err := GlobalParams()
	require.NoError(t, err)

	a := ScalarFromInt64(4)
	b := ScalarFromInt64(7)

	left, err := Pair(params.G1.ScalarMul(a), params.G2.ScalarMul(b))
	require.NoError(t, err)

	right, err := Pair(params.G1, params.G2)
	require.NoError(t, err)
	right = right.Exp(a.Mul(b))

	require.True(t, left.Equal(right))
}

func TestGlobalParamsStableAcrossCalls(t *testing.T) {
	p1, err := GlobalParams()
	require.NoError(t, err)
	p2, err := GlobalParams()
	require.NoError(t, err)

	require.True(t, p1.G1.Equal(p2.G1))
	require.True(t, p1.G2.Equal(p2.G2))
	require.True(t, p1.Z.Equal(p2.Z))
}
