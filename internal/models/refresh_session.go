package models

import "time"

// RefreshSession — серверная запись живой refresh-сессии клиента.
//
// Описание:
//   - SecretHash — односторонний хэш (argon2id) сериализованного refresh-токена;
//     сырой токен на сервере не хранится никогда;
//   - TokenID — jti-claim соответствующего подписанного refresh-токена,
//     уникален среди всех сессий;
//   - запись существует ровно до первого использования токена: ротация,
//     logout или ленивая чистка по сроку удаляют её — отдельного флага
//     «использован» нет, удаление и есть инвалидация.
type RefreshSession struct {
	// ID — суррогатный ключ записи.
	ID int64
	// SubjectID — владелец сессии.
	SubjectID int64
	// SecretHash — argon2id-хэш сериализованного refresh-токена.
	SecretHash string
	// TokenID — jti соответствующего refresh-токена (уникален).
	TokenID string
	// DeviceInfo — опциональное описание устройства клиента.
	DeviceInfo string
	// IPAddress — опциональный адрес, с которого выпущена сессия.
	IPAddress string
	// ExpiresAt — момент истечения сессии (UTC).
	ExpiresAt time.Time
	// CreatedAt — момент создания записи (UTC).
	CreatedAt time.Time
}
