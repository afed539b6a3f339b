package postgres

import (
	"context"
	"fmt"
)

// SubjectExists сообщает, существует ли субъект с данным id.
// Таблицей subjects владеет внешний сервис: здесь только проверка
// существования на момент выпуска токенов, без каскадов и мутаций.
func (s *Storage) SubjectExists(ctx context.Context, id int64) (bool, error) {
	const op = "storage.postgres.SubjectExists"

	query := `
        SELECT EXISTS(SELECT 1 FROM subjects WHERE id = $1)
    `

	var exists bool
	if err := s.db.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return exists, nil
}
