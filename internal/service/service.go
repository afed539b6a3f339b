// service содержит бизнес-логику управления жизненным циклом сессий:
// выпуск пар access/refresh-токенов, проверку, ротацию и отзыв,
// работу с хранилищем через интерфейсы из пакета storage.
//
// Основные аспекты:
//   - Пакет не хранит состояние запроса внутри Service; экземпляр Service
//     безопасен для конкурентного использования из разных горутин при условии,
//     что переданное хранилище (storage.Storage) потокобезопасно;
//   - Вся конфигурация (секреты, TTL) передаётся при конструировании,
//     глобального состояния нет;
//   - Фоновых задач нет: просроченные сессии вычищаются лениво на чтении
//     (storage.SessionsBySubject);
//   - Ошибки возвращаются и далее маппятся
//     транспортом на gRPC-коды (см. комментарии к переменным ошибок ниже).
package service

import (
	"errors"
	"time"

	"session-service/internal/cache"
	"session-service/internal/config"
	"session-service/internal/storage"
	"session-service/internal/tokens"
)

var (
	// ErrInvalidAccessToken — access-токен некорректен по формату/подписи.
	// Транспорт: codes.Unauthenticated (HTTP 401).
	ErrInvalidAccessToken = errors.New("invalid access token")

	// ErrAccessTokenExpired — подпись access-токена валидна, но срок истёк.
	// Клиенту следует пройти ротацию, а не полный повторный вход.
	// Транспорт: codes.Unauthenticated (HTTP 401).
	ErrAccessTokenExpired = errors.New("access token expired")

	// ErrInvalidRefreshToken — refresh-токен некорректен по формату/подписи.
	// Транспорт: codes.Unauthenticated (HTTP 401).
	ErrInvalidRefreshToken = errors.New("invalid refresh token")

	// ErrRefreshTokenExpired — срок действия refresh-токена истёк;
	// требуется полный повторный вход. Транспорт: codes.Unauthenticated (HTTP 401).
	ErrRefreshTokenExpired = errors.New("refresh token expired")

	// ErrSessionNotFound — refresh-токен криптографически валиден, но живой
	// сессии под него нет: он уже использован, отозван или никогда не
	// существовал на сервере. Основной сигнал replay-детекта — логируется
	// отдельно как возможная кража токена.
	// Транспорт: codes.Unauthenticated (HTTP 401).
	ErrSessionNotFound = errors.New("refresh session not found")

	// ErrUnknownSubject — субъект не существует на момент выпуска токенов.
	// Транспорт: codes.NotFound (HTTP 404).
	ErrUnknownSubject = errors.New("unknown subject")

	// ErrSessionConflict — исчерпаны попытки сохранить сессию с уникальным
	// token_id (редкий случай коллизий после нескольких ретраев).
	// Транспорт: codes.Internal (HTTP 500).
	ErrSessionConflict = errors.New("refresh session conflict")
)

// Hasher — примитив одностороннего хэширования секретного материала
// refresh-токенов (общий с хэшированием прочих секретов).
type Hasher interface {
	// Hash вычисляет хэш секрета.
	Hash(secret string) (string, error)
	// Verify сравнивает секрет с ранее вычисленным хэшем.
	Verify(secret, hash string) (bool, error)
}

// SessionMeta — опциональный контекст клиента, фиксируемый в сессии.
type SessionMeta struct {
	DeviceInfo string
	IPAddress  string
}

// Service описывает бизнес-логику управления сессиями.
type Service struct {
	storage  storage.Storage
	signer   *tokens.Signer
	hasher   Hasher
	cfg      config.AuthConfig
	scache   cache.SessionCache // может быть nil, если кэш не сконфигурирован
	cacheTTL time.Duration
}

// New создаёт новый экземпляр Service.
func New(storage storage.Storage, signer *tokens.Signer, hasher Hasher, cfg config.AuthConfig) *Service {
	return &Service{
		storage: storage,
		signer:  signer,
		hasher:  hasher,
		cfg:     cfg,
	}
}

// SetSessionCache устанавливает кэш списков сессий (опционально).
// Кэш обслуживает только листинг SessionsBySubject; проверка и ротация
// токенов всегда идут в хранилище.
func (s *Service) SetSessionCache(c cache.SessionCache, ttl time.Duration) {
	s.scache = c
	s.cacheTTL = ttl
}
