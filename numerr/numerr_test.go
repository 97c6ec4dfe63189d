package numerr_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/numo-go/numo/numerr"
	"github.com/stretchr/testify/require"
)

func TestError_MessageIncludesOp(t *testing.T) {
	err := numerr.New("poly.Solve", numerr.KindBadInput, "tolerance must be positive")
	require.Equal(t, "poly.Solve: tolerance must be positive", err.Error())
}

func TestError_IsMatchesOwnKindOnly(t *testing.T) {
	cases := []struct {
		kind     numerr.Kind
		sentinel error
	}{
		{numerr.KindBadInput, numerr.ErrBadInput},
		{numerr.KindDegenerate, numerr.ErrDegenerate},
		{numerr.KindNonFinite, numerr.ErrNonFinite},
		{numerr.KindNoConvergence, numerr.ErrNoConvergence},
	}
	sentinels := []error{
		numerr.ErrBadInput, numerr.ErrDegenerate,
		numerr.ErrNonFinite, numerr.ErrNoConvergence,
	}
	for _, tc := range cases {
		err := numerr.New("op", tc.kind, "msg")
		for _, s := range sentinels {
			if s == tc.sentinel {
				require.ErrorIs(t, err, s, "kind %v should match %v", tc.kind, s)
			} else {
				require.NotErrorIs(t, err, s, "kind %v must not match %v", tc.kind, s)
			}
		}
	}
}

func TestError_ZeroKindMatchesNothing(t *testing.T) {
	err := numerr.New("op", numerr.KindUnknown, "msg")
	require.NotErrorIs(t, err, numerr.ErrBadInput)
	require.NotErrorIs(t, err, numerr.ErrNoConvergence)
}

func TestError_SurvivesWrapping(t *testing.T) {
	inner := numerr.New("roots.Search", numerr.KindNoConvergence, "no bracket found")
	wrapped := fmt.Errorf("while locating initial bracket: %w", inner)
	require.ErrorIs(t, wrapped, numerr.ErrNoConvergence)

	var structured *numerr.Error
	require.True(t, errors.As(wrapped, &structured))
	require.Equal(t, "roots.Search", structured.Op)
}

func TestError_PayloadRoundTrip(t *testing.T) {
	type diag struct{ X, H float64 }
	err := numerr.Newf("deriv.Derivative", numerr.KindNonFinite,
		"derivative at x=%g is not finite", 2.5).
		WithPayload(diag{X: 2.5, H: 1e-6})

	var structured *numerr.Error
	require.True(t, errors.As(error(err), &structured))
	require.Equal(t, diag{X: 2.5, H: 1e-6}, structured.Payload)
}

func TestKind_String(t *testing.T) {
	require.Equal(t, "bad input", numerr.KindBadInput.String())
	require.Equal(t, "no convergence", numerr.KindNoConvergence.String())
	require.Equal(t, "unknown", numerr.KindUnknown.String())
}
