package repository

import (
	"context"
	"fmt"

	"github.com/gsamarin/schedule_bot/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type EmployeeRepository struct {
	pool *pgxpool.Pool
}

func NewEmployeeRepository(pool *pgxpool.Pool) *EmployeeRepository {
	return &EmployeeRepository{pool: pool}
}

// Upsert создаёт сотрудника или перезаписывает его данные при повторной
// регистрации (ПВЗ и полное имя заменяются новыми)
func (r *EmployeeRepository) Upsert(ctx context.Context, employee *model.Employee) error {
	query := `
		INSERT INTO employees (telegram_id, username, first_name, point_id, full_name)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (telegram_id) DO UPDATE
		SET username = EXCLUDED.username,
		    first_name = EXCLUDED.first_name,
		    point_id = EXCLUDED.point_id,
		    full_name = EXCLUDED.full_name
		RETURNING id
	`

	err := r.pool.QueryRow(
		ctx, query,
		employee.TelegramID,
		employee.Username,
		employee.FirstName,
		employee.PointID,
		employee.FullName,
	).Scan(&employee.ID)

	if err != nil {
		return fmt.Errorf("upsert employee: %w", err)
	}

	return nil
}

// GetByTelegramID получает сотрудника по Telegram ID вместе с названием его ПВЗ
func (r *EmployeeRepository) GetByTelegramID(ctx context.Context, telegramID int64) (*model.Employee, error) {
	query := `
		SELECT e.id, e.telegram_id, e.username, e.first_name, e.point_id, e.full_name, p.name
		FROM employees e
		JOIN points p ON e.point_id = p.id
		WHERE e.telegram_id = $1
	`

	var employee model.Employee
	err := r.pool.QueryRow(ctx, query, telegramID).Scan(
		&employee.ID,
		&employee.TelegramID,
		&employee.Username,
		&employee.FirstName,
		&employee.PointID,
		&employee.FullName,
		&employee.PointName,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil // Сотрудник не зарегистрирован
		}
		return nil, fmt.Errorf("get employee by telegram id: %w", err)
	}

	return &employee, nil
}

// GetByPoint получает всех сотрудников ПВЗ
func (r *EmployeeRepository) GetByPoint(ctx context.Context, pointID int64) ([]*model.Employee, error) {
	query := `
		SELECT e.id, e.telegram_id, e.username, e.first_name, e.point_id, e.full_name, p.name
		FROM employees e
		JOIN points p ON e.point_id = p.id
		WHERE e.point_id = $1
		ORDER BY e.full_name
	`

	rows, err := r.pool.Query(ctx, query, pointID)
	if err != nil {
		return nil, fmt.Errorf("get employees by point: %w", err)
	}
	defer rows.Close()

	var employees []*model.Employee
	for rows.Next() {
		var employee model.Employee
		err := rows.Scan(
			&employee.ID,
			&employee.TelegramID,
			&employee.Username,
			&employee.FirstName,
			&employee.PointID,
			&employee.FullName,
			&employee.PointName,
		)
		if err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		employees = append(employees, &employee)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate employees: %w", err)
	}

	return employees, nil
}

// CountByPoint возвращает количество сотрудников ПВЗ
func (r *EmployeeRepository) CountByPoint(ctx context.Context, pointID int64) (int, error) {
	query := `SELECT COUNT(*) FROM employees WHERE point_id = $1`

	var count int
	err := r.pool.QueryRow(ctx, query, pointID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count employees by point: %w", err)
	}

	return count, nil
}
