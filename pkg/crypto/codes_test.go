package crypto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateCodeValidatesInput(t *testing.T) {
	_, err := GenerateCode("", 10)
	require.Error(t, err)

	_, err = GenerateCode(URLSafeAlphabet, 0)
	require.Error(t, err)
}

func TestGenerateSessionIDLength(t *testing.T) {
	id, err := GenerateSessionID()
	require.NoError(t, err)
	require.Len(t, id, 24)

	for _, r := range id {
		require.Contains(t, URLSafeAlphabet, string(r))
	}
}

func TestGenerateHostCodeLength(t *testing.T) {
	code, err := GenerateHostCode()
	require.NoError(t, err)
	require.Len(t, code, 32)
}

func TestGuestCodesStayInShortAlphabet(t *testing.T) {
	for i := 0; i < 1000; i++ {
		code, err := GenerateGuestCode()
		require.NoError(t, err)
		require.Len(t, code, 6)

		for _, r := range code {
			require.True(t, strings.ContainsRune(GuestAlphabet, r),
				"guest code %q contains %q outside the 36-symbol alphabet", code, r)
		}
	}
}

func TestHostAndGuestCodesDiffer(t *testing.T) {
	// Lengths alone guarantee inequality; assert it explicitly anyway.
	for i := 0; i < 100; i++ {
		host, err := GenerateHostCode()
		require.NoError(t, err)
		guest, err := GenerateGuestCode()
		require.NoError(t, err)
		require.NotEqual(t, host, guest)
	}
}
