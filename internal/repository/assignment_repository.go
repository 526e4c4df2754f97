package repository

import (
	"context"
	"fmt"

	"github.com/gsamarin/schedule_bot/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ReportRow — строка отчёта по ПВЗ: кто и как работает в конкретную дату
type ReportRow struct {
	TelegramID int64
	Username   string
	FirstName  string
	FullName   string
	Date       string
	TimeSlot   string
}

// DisplayName возвращает имя сотрудника для отчёта
func (r *ReportRow) DisplayName() string {
	if r.FullName != "" {
		return r.FullName
	}
	if r.FirstName != "" {
		return r.FirstName
	}
	if r.Username != "" {
		return r.Username
	}
	return fmt.Sprintf("User_%d", r.TelegramID)
}

type AssignmentRepository struct {
	pool *pgxpool.Pool
}

func NewAssignmentRepository(pool *pgxpool.Pool) *AssignmentRepository {
	return &AssignmentRepository{pool: pool}
}

// Save сохраняет смену на дату, перезаписывая прежний выбор.
// Удаление старой записи и вставка новой выполняются в одной транзакции,
// чтобы при сбое не потерять день целиком.
func (r *AssignmentRepository) Save(ctx context.Context, telegramID int64, date, timeSlot string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin save assignment: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx,
		`DELETE FROM assignments WHERE telegram_id = $1 AND date = $2`,
		telegramID, date,
	)
	if err != nil {
		return fmt.Errorf("delete old assignment: %w", err)
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO assignments (telegram_id, date, time_slot) VALUES ($1, $2, $3)`,
		telegramID, date, timeSlot,
	)
	if err != nil {
		return fmt.Errorf("insert assignment: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit save assignment: %w", err)
	}

	return nil
}

// GetForEmployee получает смены сотрудника на указанные даты в виде date -> слот
func (r *AssignmentRepository) GetForEmployee(ctx context.Context, telegramID int64, dates []string) (map[string]string, error) {
	query := `
		SELECT date, time_slot
		FROM assignments
		WHERE telegram_id = $1 AND date = ANY($2)
	`

	rows, err := r.pool.Query(ctx, query, telegramID, dates)
	if err != nil {
		return nil, fmt.Errorf("get employee assignments: %w", err)
	}
	defer rows.Close()

	schedule := make(map[string]string)
	for rows.Next() {
		var a model.Assignment
		if err := rows.Scan(&a.Date, &a.TimeSlot); err != nil {
			return nil, fmt.Errorf("scan assignment: %w", err)
		}
		schedule[a.Date] = a.TimeSlot
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate assignments: %w", err)
	}

	return schedule, nil
}

// DeleteForEmployee удаляет смены сотрудника на указанные даты.
// Используется при перезаполнении анкеты: чистится только целевая неделя,
// прошлые недели остаются в истории.
func (r *AssignmentRepository) DeleteForEmployee(ctx context.Context, telegramID int64, dates []string) error {
	_, err := r.pool.Exec(ctx,
		`DELETE FROM assignments WHERE telegram_id = $1 AND date = ANY($2)`,
		telegramID, dates,
	)
	if err != nil {
		return fmt.Errorf("delete employee assignments: %w", err)
	}

	return nil
}

// GetPointReport получает все смены сотрудников ПВЗ на указанные даты,
// отсортированные по дате и имени
func (r *AssignmentRepository) GetPointReport(ctx context.Context, pointID int64, dates []string) ([]*ReportRow, error) {
	query := `
		SELECT e.telegram_id, e.username, e.first_name, e.full_name, a.date, a.time_slot
		FROM assignments a
		JOIN employees e ON a.telegram_id = e.telegram_id
		WHERE e.point_id = $1 AND a.date = ANY($2)
		ORDER BY a.date, e.full_name
	`

	rows, err := r.pool.Query(ctx, query, pointID, dates)
	if err != nil {
		return nil, fmt.Errorf("get point report: %w", err)
	}
	defer rows.Close()

	var report []*ReportRow
	for rows.Next() {
		var row ReportRow
		err := rows.Scan(
			&row.TelegramID,
			&row.Username,
			&row.FirstName,
			&row.FullName,
			&row.Date,
			&row.TimeSlot,
		)
		if err != nil {
			return nil, fmt.Errorf("scan report row: %w", err)
		}
		report = append(report, &row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate report rows: %w", err)
	}

	return report, nil
}

// GetAssignedTelegramIDs возвращает сотрудников ПВЗ, у которых есть хотя бы
// одна смена на указанные даты
func (r *AssignmentRepository) GetAssignedTelegramIDs(ctx context.Context, pointID int64, dates []string) (map[int64]bool, error) {
	query := `
		SELECT DISTINCT a.telegram_id
		FROM assignments a
		JOIN employees e ON a.telegram_id = e.telegram_id
		WHERE e.point_id = $1 AND a.date = ANY($2)
	`

	rows, err := r.pool.Query(ctx, query, pointID, dates)
	if err != nil {
		return nil, fmt.Errorf("get assigned telegram ids: %w", err)
	}
	defer rows.Close()

	assigned := make(map[int64]bool)
	for rows.Next() {
		var telegramID int64
		if err := rows.Scan(&telegramID); err != nil {
			return nil, fmt.Errorf("scan telegram id: %w", err)
		}
		assigned[telegramID] = true
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate telegram ids: %w", err)
	}

	return assigned, nil
}

// CountDailyByPoint возвращает количество смен на каждую дату для ПВЗ
// (для графика заполненности в отчёте)
func (r *AssignmentRepository) CountDailyByPoint(ctx context.Context, pointID int64, dates []string) (map[string]int, error) {
	query := `
		SELECT a.date, COUNT(*)
		FROM assignments a
		JOIN employees e ON a.telegram_id = e.telegram_id
		WHERE e.point_id = $1 AND a.date = ANY($2)
		GROUP BY a.date
	`

	rows, err := r.pool.Query(ctx, query, pointID, dates)
	if err != nil {
		return nil, fmt.Errorf("count daily assignments: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var date string
		var count int
		if err := rows.Scan(&date, &count); err != nil {
			return nil, fmt.Errorf("scan daily count: %w", err)
		}
		counts[date] = count
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate daily counts: %w", err)
	}

	return counts, nil
}
