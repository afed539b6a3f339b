package models

import "time"

// TokenPair — пара токенов, выдаваемая при аутентификации и ротации.
//
// Описание:
//   - AccessToken — короткоживущий подписанный JWT для доступа к API;
//   - RefreshToken — долгоживущий подписанный JWT, парный к записи
//     RefreshSession в хранилище; обменивается на новую пару ровно один раз;
//   - TokenType — дискриминатор схемы ("Bearer");
//   - AccessExpiresAt — момент истечения access-токена (UTC).
type TokenPair struct {
	// AccessToken — JWT для авторизации запросов.
	AccessToken string
	// RefreshToken — JWT для обновления пары.
	RefreshToken string
	// TokenType — тип токенов ("Bearer").
	TokenType string
	// AccessExpiresAt — время истечения действия access-токена (UTC).
	AccessExpiresAt time.Time
}
