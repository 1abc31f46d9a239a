package wallet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAtomicToXMR(t *testing.T) {
	assert.Equal(t, "10", AtomicToXMR(10000000000000))
	assert.Equal(t, "0.02014116", AtomicToXMR(20141160000))
	assert.Equal(t, "0", AtomicToXMR(0))
	assert.Equal(t, "0.000000000001", AtomicToXMR(1))
	assert.Equal(t, "1.5", AtomicToXMR(1500000000000))
}

func TestXMRToAtomic(t *testing.T) {
	cases := map[string]uint64{
		"10":             10000000000000,
		"0.02014116":     20141160000,
		"0":              0,
		"0.000000000001": 1,
		"1.5":            1500000000000,
		".5":             500000000000,
		"2.":             2000000000000,
	}
	for in, want := range cases {
		got, err := XMRToAtomic(in)
		require.NoError(t, err, "input %q", in)
		assert.Equal(t, want, got, "input %q", in)
	}
}

func TestXMRToAtomicRejectsBadInput(t *testing.T) {
	for _, in := range []string{"", ".", "1.2.3", "abc", "-1", "0.0000000000001"} {
		_, err := XMRToAtomic(in)
		assert.Error(t, err, "input %q", in)
	}
}

func TestXMRToAtomicRejectsOverflow(t *testing.T) {
	// Anything past ~18.4M XMR cannot be represented in a uint64 and
	// must error out instead of wrapping around.
	for _, in := range []string{
		"99999999",
		"18446745",
		"18446744.073709551616",
		"18446744073709551616",
		"99999999999999999999999999",
	} {
		_, err := XMRToAtomic(in)
		assert.Error(t, err, "input %q", in)
	}

	// The largest representable amount still parses exactly.
	got, err := XMRToAtomic("18446744.073709551615")
	require.NoError(t, err)
	assert.Equal(t, uint64(18446744073709551615), got)
}

func TestUnitsRoundTrip(t *testing.T) {
	for _, atomic := range []uint64{0, 1, 999999999999, 1000000000000, 2262265030000} {
		parsed, err := XMRToAtomic(AtomicToXMR(atomic))
		require.NoError(t, err)
		assert.Equal(t, atomic, parsed)
	}
}
