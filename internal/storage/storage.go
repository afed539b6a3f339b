package storage

import (
	"context"
	"errors"

	"session-service/internal/models"
)

var (
	// ErrNotFound — запись не найдена (сессия/субъект).
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists — нарушение уникальности (token_id сессии).
	ErrAlreadyExists = errors.New("already exists")
)

// SessionStorage выполняет операции над refresh-сессиями.
//
// Контракт удаления: операции Delete* идемпотентны и возвращают признак
// того, была ли реально удалена хотя бы одна запись. Для DeleteSession это
// одновременно примитив атомарной ротации: ровно один из конкурентных
// вызовов с одним id получает true.
type SessionStorage interface {
	// SaveSession сохраняет новую сессию; заполняет ID и CreatedAt записи.
	// Конфликт уникальности token_id -> ErrAlreadyExists.
	SaveSession(ctx context.Context, session *models.RefreshSession) error
	// SessionsBySubject возвращает живые сессии субъекта.
	// Побочный эффект: просроченные записи субъекта удаляются до выборки
	// (ленивая чистка; фонового свипера нет).
	SessionsBySubject(ctx context.Context, subjectID int64) ([]models.RefreshSession, error)
	// DeleteSession удаляет сессию по id; true, если запись существовала.
	DeleteSession(ctx context.Context, id int64) (bool, error)
	// DeleteSubjectSessions удаляет все сессии субъекта ("выйти везде").
	DeleteSubjectSessions(ctx context.Context, subjectID int64) (bool, error)
}

// SubjectStorage — граница Subject Store: сервису нужна только проверка
// существования субъекта на момент выпуска токенов.
type SubjectStorage interface {
	// SubjectExists сообщает, существует ли субъект с данным id.
	SubjectExists(ctx context.Context, id int64) (bool, error)
}

// Storage задает контракт работы с БД.
type Storage interface {
	SessionStorage
	SubjectStorage
	Close()
}
