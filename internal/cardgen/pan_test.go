package cardgen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGeneratePAN(t *testing.T) {
	for _, c := range []struct {
		bin string
		n   int
	}{
		{"371449", 15},
		{"424242", 16},
		{"520082", 16},
		{"42123456", 19},
	} {
		pan, err := GeneratePAN(c.bin, c.n, "")
		require.NoError(t, err)
		require.Len(t, pan, c.n)
		require.True(t, strings.HasPrefix(pan, c.bin))
		require.True(t, LuhnValid(pan), "pan %s fails luhn", pan)
	}
}

func TestGeneratePAN_Sequence(t *testing.T) {
	pan, err := GeneratePAN("424242", 16, "4242")
	require.NoError(t, err)
	require.Equal(t, "4242", pan[11:15])

	_, err = GeneratePAN("424242", 16, "12345678901")
	require.Error(t, err)
	_, err = GeneratePAN("424242", 16, "12a")
	require.Error(t, err)
	_, err = GeneratePAN("424242", 12, "")
	require.Error(t, err)
	_, err = GeneratePAN("4242", 16, "")
	require.Error(t, err)
}

func TestLuhnValid(t *testing.T) {
	require.True(t, LuhnValid("4242424242424242"))
	require.True(t, LuhnValid("371449635398431"))
	require.True(t, LuhnValid("5105105105105100"))
	require.False(t, LuhnValid("4242424242424241"))
	require.False(t, LuhnValid("42424242x2424242"))
	require.False(t, LuhnValid(""))
}

func TestIsDigits(t *testing.T) {
	require.True(t, IsDigits("0123456789"))
	require.False(t, IsDigits(""))
	require.False(t, IsDigits("12 34"))
	require.False(t, IsDigits("１２"))
}

func TestMaskPAN(t *testing.T) {
	cases := map[string]string{
		"":                     "",
		"123":                  "***",
		"123456789":            "*****6789",
		"4242424242424242":     "424242******4242",
		"3714-496353-98431":    "371449*****8431",
		" 5200 8282 8282 8210": "520082******8210",
	}
	for in, want := range cases {
		require.Equal(t, want, MaskPAN(in), "MaskPAN(%q)", in)
	}
}

func TestFingerprint(t *testing.T) {
	key := []byte("test-pepper")
	a := Fingerprint("4242424242424242", key)
	require.Len(t, a, 16)
	require.Equal(t, a, Fingerprint("4242 4242 4242 4242", key))
	require.NotEqual(t, a, Fingerprint("4242424242424242", []byte("other")))
	require.Equal(t, "4242", LastN("4242424242424242", 4))
}
