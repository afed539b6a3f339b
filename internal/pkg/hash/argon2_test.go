package hash

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// testParams — ослабленные параметры, чтобы не жечь CPU в unit-тестах.
var testParams = Params{
	Memory:      1024,
	Iterations:  1,
	Parallelism: 1,
	SaltLength:  16,
	KeyLength:   32,
}

func TestHash_And_Verify_OK(t *testing.T) {
	t.Parallel()

	h := NewWithParams(testParams)

	encoded, err := h.Hash("secret-material")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(encoded, "$argon2id$"))

	ok, err := h.Verify("secret-material", encoded)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = h.Verify("other-material", encoded)
	require.NoError(t, err)
	require.False(t, ok)
}

// JWT длиннее 72 байт — хэшер обязан переваривать длинные входы целиком
// (в отличие от bcrypt).
func TestHash_LongInput(t *testing.T) {
	t.Parallel()

	h := NewWithParams(testParams)

	long := strings.Repeat("eyJhbGciOiJIUzI1NiJ9.", 30)
	encoded, err := h.Hash(long)
	require.NoError(t, err)

	ok, err := h.Verify(long, encoded)
	require.NoError(t, err)
	require.True(t, ok)

	// Отличие за пределами 72-го байта должно менять результат.
	tampered := long[:len(long)-1] + "X"
	ok, err = h.Verify(tampered, encoded)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestHash_FreshSaltPerCall(t *testing.T) {
	t.Parallel()

	h := NewWithParams(testParams)

	first, err := h.Hash("same-secret")
	require.NoError(t, err)
	second, err := h.Hash("same-secret")
	require.NoError(t, err)

	require.NotEqual(t, first, second)

	for _, encoded := range []string{first, second} {
		ok, err := h.Verify("same-secret", encoded)
		require.NoError(t, err)
		require.True(t, ok)
	}
}

// Verify берёт параметры из строки хэша: записи, созданные с другими
// параметрами, продолжают проверяться после смены конфигурации.
func TestVerify_ParamsFromHash(t *testing.T) {
	t.Parallel()

	old := NewWithParams(Params{
		Memory:      2048,
		Iterations:  2,
		Parallelism: 1,
		SaltLength:  16,
		KeyLength:   32,
	})
	encoded, err := old.Hash("secret")
	require.NoError(t, err)

	current := NewWithParams(testParams)
	ok, err := current.Verify("secret", encoded)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestVerify_MalformedHash(t *testing.T) {
	t.Parallel()

	h := NewWithParams(testParams)

	for _, encoded := range []string{
		"",
		"plain-text",
		"$argon2i$v=19$m=1024,t=1,p=1$c2FsdA$aGFzaA",
		"$argon2id$v=19$m=1024,t=1,p=1$c2FsdA",
		"$argon2id$v=19$m=x,t=1,p=1$c2FsdA$aGFzaA",
		"$argon2id$v=19$m=1024,t=1,p=1$!notb64$aGFzaA",
	} {
		_, err := h.Verify("secret", encoded)
		require.Error(t, err, encoded)
		require.ErrorIs(t, err, ErrInvalidHash)
	}
}

func TestVerify_IncompatibleVersion(t *testing.T) {
	t.Parallel()

	h := NewWithParams(testParams)

	encoded, err := h.Hash("secret")
	require.NoError(t, err)

	broken := strings.Replace(encoded, "v=19", "v=18", 1)
	_, err = h.Verify("secret", broken)
	require.Error(t, err)
	require.ErrorIs(t, err, ErrIncompatibleVersion)
}
