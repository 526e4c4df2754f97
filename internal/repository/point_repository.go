package repository

import (
	"context"
	"fmt"

	"github.com/gsamarin/schedule_bot/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PointRepository struct {
	pool *pgxpool.Pool
}

func NewPointRepository(pool *pgxpool.Pool) *PointRepository {
	return &PointRepository{pool: pool}
}

// GetByPassword получает ПВЗ по паролю (точное совпадение)
func (r *PointRepository) GetByPassword(ctx context.Context, password string) (*model.Point, error) {
	query := `
		SELECT id, name, password, chat_id
		FROM points
		WHERE password = $1
	`

	var point model.Point
	err := r.pool.QueryRow(ctx, query, password).Scan(
		&point.ID,
		&point.Name,
		&point.Password,
		&point.ChatID,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil // Пароль не подошёл ни к одному ПВЗ
		}
		return nil, fmt.Errorf("get point by password: %w", err)
	}

	return &point, nil
}

// GetByID получает ПВЗ по ID
func (r *PointRepository) GetByID(ctx context.Context, id int64) (*model.Point, error) {
	query := `
		SELECT id, name, password, chat_id
		FROM points
		WHERE id = $1
	`

	var point model.Point
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&point.ID,
		&point.Name,
		&point.Password,
		&point.ChatID,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get point by id: %w", err)
	}

	return &point, nil
}

// GetAll получает все ПВЗ
func (r *PointRepository) GetAll(ctx context.Context) ([]*model.Point, error) {
	query := `
		SELECT id, name, password, chat_id
		FROM points
		ORDER BY name
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("get all points: %w", err)
	}
	defer rows.Close()

	var points []*model.Point
	for rows.Next() {
		var point model.Point
		err := rows.Scan(&point.ID, &point.Name, &point.Password, &point.ChatID)
		if err != nil {
			return nil, fmt.Errorf("scan point: %w", err)
		}
		points = append(points, &point)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate points: %w", err)
	}

	return points, nil
}

// SetChatID устанавливает чат для напоминаний ПВЗ
func (r *PointRepository) SetChatID(ctx context.Context, pointID int64, chatID int64) error {
	query := `
		UPDATE points
		SET chat_id = $1
		WHERE id = $2
	`

	result, err := r.pool.Exec(ctx, query, chatID, pointID)
	if err != nil {
		return fmt.Errorf("set point chat id: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("point not found")
	}

	return nil
}
