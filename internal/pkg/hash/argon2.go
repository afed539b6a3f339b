// hash реализует одностороннее хэширование секретов (argon2id) в строковом
// PHC-формате: $argon2id$v=19$m=...,t=...,p=...$<salt>$<hash>.
//
// Пакет используется для хэширования сериализованных refresh-токенов перед
// сохранением в БД: bcrypt здесь не годится из-за ограничения длины входа
// в 72 байта, JWT заведомо длиннее.
package hash

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

var (
	// ErrInvalidHash — строка хэша не соответствует ожидаемому формату.
	ErrInvalidHash = errors.New("invalid hash format")
	// ErrIncompatibleVersion — хэш создан несовместимой версией argon2.
	ErrIncompatibleVersion = errors.New("incompatible argon2 version")
)

// Params — параметры argon2id.
type Params struct {
	Memory      uint32
	Iterations  uint32
	Parallelism uint8
	SaltLength  uint32
	KeyLength   uint32
}

// DefaultParams — параметры по умолчанию (64 MiB, t=3, p=2).
var DefaultParams = Params{
	Memory:      64 * 1024,
	Iterations:  3,
	Parallelism: 2,
	SaltLength:  16,
	KeyLength:   32,
}

// Argon2 — хэшер секретов с фиксированными параметрами.
type Argon2 struct {
	params Params
}

// New создаёт хэшер с параметрами по умолчанию.
func New() *Argon2 {
	return NewWithParams(DefaultParams)
}

// NewWithParams создаёт хэшер с заданными параметрами
// (ослабленные параметры уместны только в тестах).
func NewWithParams(p Params) *Argon2 {
	return &Argon2{params: p}
}

// Hash вычисляет argon2id-хэш секрета со свежей случайной солью.
func (a *Argon2) Hash(secret string) (string, error) {
	const op = "hash.Hash"

	salt := make([]byte, a.params.SaltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	key := argon2.IDKey(
		[]byte(secret),
		salt,
		a.params.Iterations,
		a.params.Memory,
		a.params.Parallelism,
		a.params.KeyLength,
	)

	encoded := fmt.Sprintf(
		"$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, a.params.Memory, a.params.Iterations, a.params.Parallelism,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	)

	return encoded, nil
}

// Verify сравнивает секрет с ранее вычисленным хэшем (константное время).
// Параметры берутся из самой строки хэша, а не из конфигурации хэшера,
// поэтому смена параметров не инвалидирует старые записи.
func (a *Argon2) Verify(secret, encodedHash string) (bool, error) {
	const op = "hash.Verify"

	params, salt, key, err := decodeHash(encodedHash)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	other := argon2.IDKey(
		[]byte(secret),
		salt,
		params.Iterations,
		params.Memory,
		params.Parallelism,
		params.KeyLength,
	)

	return subtle.ConstantTimeCompare(key, other) == 1, nil
}

// decodeHash разбирает PHC-строку argon2id на параметры, соль и ключ.
func decodeHash(encodedHash string) (*Params, []byte, []byte, error) {
	parts := strings.Split(encodedHash, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return nil, nil, nil, ErrInvalidHash
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return nil, nil, nil, ErrInvalidHash
	}
	if version != argon2.Version {
		return nil, nil, nil, ErrIncompatibleVersion
	}

	params := &Params{}
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &params.Memory, &params.Iterations, &params.Parallelism); err != nil {
		return nil, nil, nil, ErrInvalidHash
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return nil, nil, nil, ErrInvalidHash
	}
	params.SaltLength = uint32(len(salt))

	key, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return nil, nil, nil, ErrInvalidHash
	}
	params.KeyLength = uint32(len(key))

	return params, salt, key, nil
}
