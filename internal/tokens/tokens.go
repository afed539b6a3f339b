// tokens реализует выпуск и разбор подписанных самодостаточных токенов
// (access и refresh используют один механизм, но разные секреты).
//
// Основные аспекты:
//   - Пакет не содержит состояния и персистентности: Signer — чистая функция
//     над секретным ключом, безопасен для конкурентного использования;
//   - Claims минимальны: sub (десятичный id субъекта), exp (UTC) и jti
//     (уникальный идентификатор токена, uuid);
//   - Проверка срока строгая, без leeway: токен, разобранный ровно в момент
//     exp, считается просроченным.
package tokens

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	// ErrTokenMalformed — подпись не сошлась либо структура claims некорректна.
	ErrTokenMalformed = errors.New("token malformed or forged")

	// ErrTokenExpired — подпись валидна, но срок действия истёк.
	ErrTokenExpired = errors.New("token expired")

	// ErrUnknownAlgorithm — идентификатор алгоритма подписи не поддерживается.
	ErrUnknownAlgorithm = errors.New("unknown signing algorithm")
)

// Claims — разобранное содержимое токена.
type Claims struct {
	// SubjectID — id субъекта из claim sub.
	SubjectID int64
	// TokenID — jti токена.
	TokenID string
	// ExpiresAt — момент истечения (UTC).
	ExpiresAt time.Time
}

// Signer выпускает и разбирает подписанные токены с фиксированным
// HMAC-алгоритмом (HS256/HS384/HS512).
type Signer struct {
	method jwt.SigningMethod
}

// NewSigner создаёт Signer по строковому идентификатору алгоритма.
// Допускаются только HMAC-алгоритмы семейства HS*.
func NewSigner(alg string) (*Signer, error) {
	const op = "tokens.NewSigner"

	if !strings.HasPrefix(alg, "HS") {
		return nil, fmt.Errorf("%s: %q: %w", op, alg, ErrUnknownAlgorithm)
	}

	method := jwt.GetSigningMethod(alg)
	if method == nil {
		return nil, fmt.Errorf("%s: %q: %w", op, alg, ErrUnknownAlgorithm)
	}

	return &Signer{method: method}, nil
}

// Issue выпускает токен для субъекта со сроком ttl, подписанный secret.
// jti генерируется заново при каждом вызове; возвращается вместе с токеном,
// чтобы вызывающий мог связать токен с записью сессии.
func (s *Signer) Issue(subjectID int64, ttl time.Duration, secret string) (string, string, time.Time, error) {
	const op = "tokens.Issue"

	jti := uuid.NewString()
	expiresAt := time.Now().UTC().Add(ttl)

	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(subjectID, 10),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
		ID:        jti,
	}

	token := jwt.NewWithClaims(s.method, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", "", time.Time{}, fmt.Errorf("%s: %w", op, err)
	}

	return signed, jti, expiresAt, nil
}

// Parse проверяет подпись и структуру токена.
// Ошибки: ErrTokenExpired — подпись валидна, срок вышел;
// ErrTokenMalformed — всё остальное (подпись, формат, отсутствующие claims).
func (s *Signer) Parse(tokenStr string, secret string) (*Claims, error) {
	const op = "tokens.Parse"

	token, err := jwt.ParseWithClaims(tokenStr, &jwt.RegisteredClaims{},
		func(t *jwt.Token) (interface{}, error) {
			if t.Method != s.method {
				return nil, fmt.Errorf("%s: %w", op, ErrTokenMalformed)
			}

			return []byte(secret), nil
		},
		jwt.WithValidMethods([]string{s.method.Alg()}),
		jwt.WithExpirationRequired(),
	)

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("%s: %w", op, ErrTokenExpired)
		}

		return nil, fmt.Errorf("%s: %w", op, ErrTokenMalformed)
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("%s: %w", op, ErrTokenMalformed)
	}

	if claims.ID == "" || claims.ExpiresAt == nil {
		return nil, fmt.Errorf("%s: %w", op, ErrTokenMalformed)
	}

	subjectID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, ErrTokenMalformed)
	}

	return &Claims{
		SubjectID: subjectID,
		TokenID:   claims.ID,
		ExpiresAt: claims.ExpiresAt.Time.UTC(),
	}, nil
}
