package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"session-service/internal/models"
	"session-service/internal/pkg/log"
	"session-service/internal/storage"
	"session-service/internal/tokens"
)

// IssueAccessToken выпускает access-токен для субъекта.
// Токен самодостаточен и нигде не сохраняется.
func (s *Service) IssueAccessToken(ctx context.Context, subjectID int64) (string, time.Time, error) {
	const op = "service.session.IssueAccessToken"

	lg := log.From(ctx)

	token, _, expiresAt, err := s.signer.Issue(subjectID, s.cfg.AccessTokenTTL, s.cfg.AccessSecret)
	if err != nil {
		lg.Error("access_token_sign_failed",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)
		return "", time.Time{}, fmt.Errorf("%s: %w", op, err)
	}

	return token, expiresAt, nil
}

// IssueRefreshToken выпускает refresh-токен и сохраняет парную ему сессию.
// В хранилище попадает только хэш токена; сырой токен существует вне клиента
// лишь в возвращаемом значении этого вызова.
func (s *Service) IssueRefreshToken(ctx context.Context, subjectID int64, meta SessionMeta) (string, error) {
	const (
		op          = "service.session.IssueRefreshToken"
		maxAttempts = 5
	)

	lg := log.From(ctx)

	for attempt := 0; attempt < maxAttempts; attempt++ {
		token, jti, expiresAt, err := s.signer.Issue(subjectID, s.cfg.RefreshTTL(), s.cfg.RefreshSecret)
		if err != nil {
			lg.Error("refresh_token_sign_failed",
				slog.String("op", op),
				slog.String("err", err.Error()),
			)
			return "", fmt.Errorf("%s: %w", op, err)
		}

		digest, err := s.hasher.Hash(token)
		if err != nil {
			lg.Error("refresh_hash_failed",
				slog.String("op", op),
				slog.String("err", err.Error()),
			)
			return "", fmt.Errorf("%s: %w", op, err)
		}

		session := &models.RefreshSession{
			SubjectID:  subjectID,
			SecretHash: digest,
			TokenID:    jti,
			DeviceInfo: meta.DeviceInfo,
			IPAddress:  meta.IPAddress,
			ExpiresAt:  expiresAt,
			CreatedAt:  time.Now().UTC(),
		}

		if err := s.storage.SaveSession(ctx, session); err != nil {
			if errors.Is(err, storage.ErrAlreadyExists) {
				// Редкая коллизия token_id — пробуем сгенерировать заново.
				continue
			}

			lg.Error("save_session_failed",
				slog.String("op", op),
				slog.String("err", err.Error()),
			)
			return "", fmt.Errorf("%s: %w", op, err)
		}

		s.invalidateCache(ctx, subjectID)

		return token, nil
	}

	lg.Error("session_conflict_exceeded",
		slog.String("op", op),
	)

	return "", fmt.Errorf("%s: %w", op, ErrSessionConflict)
}

// IssuePair выпускает пару access+refresh для существующего субъекта.
func (s *Service) IssuePair(ctx context.Context, subjectID int64, meta SessionMeta) (*models.TokenPair, error) {
	const op = "service.session.IssuePair"

	exists, err := s.storage.SubjectExists(ctx, subjectID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if !exists {
		return nil, fmt.Errorf("%s: %w", op, ErrUnknownSubject)
	}

	accessToken, accessExpiresAt, err := s.IssueAccessToken(ctx, subjectID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	refreshToken, err := s.IssueRefreshToken(ctx, subjectID, meta)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &models.TokenPair{
		AccessToken:     accessToken,
		RefreshToken:    refreshToken,
		TokenType:       "Bearer",
		AccessExpiresAt: accessExpiresAt,
	}, nil
}

// VerifyAccessToken проверяет access-токен и возвращает id субъекта.
func (s *Service) VerifyAccessToken(ctx context.Context, token string) (int64, error) {
	const op = "service.session.VerifyAccessToken"

	claims, err := s.signer.Parse(token, s.cfg.AccessSecret)
	if err != nil {
		if errors.Is(err, tokens.ErrTokenExpired) {
			return 0, fmt.Errorf("%s: %w", op, ErrAccessTokenExpired)
		}

		return 0, fmt.Errorf("%s: %w", op, ErrInvalidAccessToken)
	}

	return claims.SubjectID, nil
}

// VerifyRefreshToken проверяет refresh-токен без его потребления
// и возвращает id субъекта.
func (s *Service) VerifyRefreshToken(ctx context.Context, token string) (int64, error) {
	const op = "service.session.VerifyRefreshToken"

	session, err := s.matchSession(ctx, token)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return session.SubjectID, nil
}

// matchSession разбирает refresh-токен и ищет парную ему живую сессию:
// должны сойтись и хэш секрета, и token_id. Отсутствие совпадения при
// валидной подписи — сигнал повторного использования (кандидат на кражу).
func (s *Service) matchSession(ctx context.Context, token string) (*models.RefreshSession, error) {
	const op = "service.session.matchSession"

	lg := log.From(ctx)

	claims, err := s.signer.Parse(token, s.cfg.RefreshSecret)
	if err != nil {
		if errors.Is(err, tokens.ErrTokenExpired) {
			return nil, fmt.Errorf("%s: %w", op, ErrRefreshTokenExpired)
		}

		return nil, fmt.Errorf("%s: %w", op, ErrInvalidRefreshToken)
	}

	sessions, err := s.storage.SessionsBySubject(ctx, claims.SubjectID)
	if err != nil {
		lg.Error("sessions_lookup_failed",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	for i := range sessions {
		if sessions[i].TokenID != claims.TokenID {
			continue
		}

		ok, err := s.hasher.Verify(token, sessions[i].SecretHash)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if ok {
			return &sessions[i], nil
		}
	}

	lg.Warn("refresh_session_not_found",
		slog.String("op", op),
		slog.String("subject_id", strconv.FormatInt(claims.SubjectID, 10)),
		slog.String("token_id", claims.TokenID),
	)

	return nil, fmt.Errorf("%s: %w", op, ErrSessionNotFound)
}

// Rotate потребляет refresh-токен и выпускает новую пару.
// Удаление найденной сессии выполняется до выпуска новой пары и строго
// условно: при нуле затронутых строк (конкурентная ротация того же токена
// уже победила) вызов завершается ErrSessionNotFound. Сбой после удаления
// оставляет субъекта разлогиненным — двух живых сессий из одной не бывает.
func (s *Service) Rotate(ctx context.Context, token string, meta SessionMeta) (*models.TokenPair, error) {
	const op = "service.session.Rotate"

	lg := log.From(ctx)

	session, err := s.matchSession(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	deleted, err := s.storage.DeleteSession(ctx, session.ID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if !deleted {
		lg.Warn("rotate_lost_race",
			slog.String("op", op),
			slog.String("subject_id", strconv.FormatInt(session.SubjectID, 10)),
			slog.String("token_id", session.TokenID),
		)
		return nil, fmt.Errorf("%s: %w", op, ErrSessionNotFound)
	}

	s.invalidateCache(ctx, session.SubjectID)

	pair, err := s.IssuePair(ctx, session.SubjectID, meta)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return pair, nil
}

// RevokeSession отзывает одну сессию по id (logout).
// Идемпотентна: повторный вызов возвращает false.
func (s *Service) RevokeSession(ctx context.Context, sessionID int64) (bool, error) {
	const op = "service.session.RevokeSession"

	deleted, err := s.storage.DeleteSession(ctx, sessionID)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return deleted, nil
}

// RevokeAllSessions отзывает все сессии субъекта ("выйти везде").
func (s *Service) RevokeAllSessions(ctx context.Context, subjectID int64) (bool, error) {
	const op = "service.session.RevokeAllSessions"

	deleted, err := s.storage.DeleteSubjectSessions(ctx, subjectID)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	s.invalidateCache(ctx, subjectID)

	return deleted, nil
}

// SessionsBySubject возвращает живые сессии субъекта (для отображения
// списка устройств). Единственная операция, обслуживаемая кэшем; после
// RevokeSession список может отставать от БД не дольше TTL кэша.
func (s *Service) SessionsBySubject(ctx context.Context, subjectID int64) ([]models.RefreshSession, error) {
	const op = "service.session.SessionsBySubject"

	lg := log.From(ctx)

	if s.scache != nil {
		cached, hit, err := s.scache.Get(ctx, subjectID)
		if err != nil {
			lg.Warn("session_cache_get_failed",
				slog.String("op", op),
				slog.String("err", err.Error()),
			)
		} else if hit {
			return liveSessions(cached), nil
		}
	}

	sessions, err := s.storage.SessionsBySubject(ctx, subjectID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if s.scache != nil {
		if err := s.scache.Set(ctx, subjectID, sessions, s.cacheTTL); err != nil {
			lg.Warn("session_cache_set_failed",
				slog.String("op", op),
				slog.String("err", err.Error()),
			)
		}
	}

	return sessions, nil
}

// invalidateCache сбрасывает кэш субъекта; ошибка кэша не фатальна.
func (s *Service) invalidateCache(ctx context.Context, subjectID int64) {
	if s.scache == nil {
		return
	}

	if err := s.scache.Invalidate(ctx, subjectID); err != nil {
		log.From(ctx).Warn("session_cache_invalidate_failed",
			slog.String("err", err.Error()),
		)
	}
}

// liveSessions отфильтровывает просроченные записи из кэшированного списка.
func liveSessions(sessions []models.RefreshSession) []models.RefreshSession {
	now := time.Now().UTC()

	live := sessions[:0]
	for _, session := range sessions {
		if session.ExpiresAt.After(now) {
			live = append(live, session)
		}
	}

	return live
}
