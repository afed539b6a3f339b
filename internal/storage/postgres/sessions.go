package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"session-service/internal/models"
	"session-service/internal/storage"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// SaveSession сохраняет новую refresh-сессию в БД.
func (s *Storage) SaveSession(ctx context.Context, session *models.RefreshSession) error {
	const op = "storage.postgres.SaveSession"

	query := `
        INSERT INTO refresh_sessions(subject_id, secret_hash, token_id, device_info, ip_address, expires_at, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id
    `

	err := s.db.QueryRow(ctx, query,
		session.SubjectID,
		session.SecretHash,
		session.TokenID,
		session.DeviceInfo,
		session.IPAddress,
		session.ExpiresAt,
		session.CreatedAt,
	).Scan(&session.ID)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return fmt.Errorf("%s: %w", op, storage.ErrAlreadyExists)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// SessionsBySubject возвращает живые сессии субъекта.
// Перед выборкой удаляет его просроченные записи (ленивая чистка на чтении):
// просроченная строка занимает место ровно до ближайшего чтения по субъекту.
func (s *Storage) SessionsBySubject(ctx context.Context, subjectID int64) ([]models.RefreshSession, error) {
	const op = "storage.postgres.SessionsBySubject"

	sweep := `
        DELETE FROM refresh_sessions
        WHERE subject_id = $1 AND expires_at <= $2
    `

	if _, err := s.db.Exec(ctx, sweep, subjectID, time.Now().UTC()); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	query := `
        SELECT id, subject_id, secret_hash, token_id, device_info, ip_address, expires_at, created_at
        FROM refresh_sessions
        WHERE subject_id = $1
        ORDER BY created_at
    `

	rows, err := s.db.Query(ctx, query, subjectID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var sessions []models.RefreshSession
	for rows.Next() {
		var session models.RefreshSession
		if err := rows.Scan(
			&session.ID,
			&session.SubjectID,
			&session.SecretHash,
			&session.TokenID,
			&session.DeviceInfo,
			&session.IPAddress,
			&session.ExpiresAt,
			&session.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		sessions = append(sessions, session)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return sessions, nil
}

// DeleteSession удаляет сессию по id.
// Возвращает true, только если была удалена ровно эта запись: по счётчику
// затронутых строк конкурентные ротации одного токена разрешаются в пользу
// одного победителя.
func (s *Storage) DeleteSession(ctx context.Context, id int64) (bool, error) {
	const op = "storage.postgres.DeleteSession"

	query := `
        DELETE FROM refresh_sessions
        WHERE id = $1
    `

	cmdTag, err := s.db.Exec(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return cmdTag.RowsAffected() > 0, nil
}

// DeleteSubjectSessions удаляет все сессии субъекта.
func (s *Storage) DeleteSubjectSessions(ctx context.Context, subjectID int64) (bool, error) {
	const op = "storage.postgres.DeleteSubjectSessions"

	query := `
        DELETE FROM refresh_sessions
        WHERE subject_id = $1
    `

	cmdTag, err := s.db.Exec(ctx, query, subjectID)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return cmdTag.RowsAffected() > 0, nil
}
