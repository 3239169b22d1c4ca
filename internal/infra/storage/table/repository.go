package table

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/josephken/RMS-ReservationService/internal/domain"
	"github.com/josephken/RMS-ReservationService/pkg/dbmetrics"
	"github.com/josephken/RMS-ReservationService/pkg/psqlbuilder"
)

// pgUniqueViolation код ошибки PostgreSQL для нарушения уникального ограничения
const pgUniqueViolation = "23505"

var tableColumns = []string{
	"id",
	"name",
	"floor",
	"capacity",
	"status",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы со столиками
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория столиков
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый столик
// Нарушение уникальности имени возвращается как ErrDuplicateName
func (r *Repository) Create(ctx context.Context, t *domain.DiningTable) (*domain.DiningTable, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("dining_tables").
		Columns("name", "floor", "capacity", "status").
		Values(t.Name, t.Floor, t.Capacity, t.Status).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&t.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pgUniqueViolation {
			return nil, ErrDuplicateName
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	t.CreatedAt = createdAt.Time
	t.UpdatedAt = updatedAt.Time

	return t, nil
}

// GetByID получает столик по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.DiningTable, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(tableColumns...).
		From("dining_tables").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	t, err := r.scanTable(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrTableNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan table: %v", ErrScanRow, err)
	}

	return t, nil
}

// List получает все столики, упорядоченные по имени
func (r *Repository) List(ctx context.Context) ([]*domain.DiningTable, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(tableColumns...).
		From("dining_tables").
		OrderBy("name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanTables(rows)
}

// ExistsByName проверяет, существует ли столик с указанным именем
func (r *Repository) ExistsByName(ctx context.Context, name string) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		From("dining_tables").
		Where(squirrel.Eq{"name": name}).
		Limit(1).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: ExistsByName - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("%w: ExistsByName - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	exists := rows.Next()
	if err := rows.Err(); err != nil {
		return false, fmt.Errorf("%w: ExistsByName - rows error: %v", ErrScanRow, err)
	}

	return exists, nil
}

// FindAvailable находит открытые столики нужной вместимости, на которых нет
// подтвержденной брони, пересекающейся с интервалом [start, end)
// Сравнение вместимости строгое (равенство, не >=) - бронирование точно по тиру
func (r *Repository) FindAvailable(ctx context.Context, capacity int, start, end time.Time) ([]*domain.DiningTable, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	// Подзапрос собирается с плейсхолдерами "?", чтобы внешний билдер
	// перенумеровал их в $N единым проходом по всему запросу
	subquery := squirrel.Select("dining_table_id").
		From("reservations").
		Where(squirrel.Eq{"status": domain.StatusConfirmed}).
		Where(squirrel.Lt{"start_time": end}).
		Where(squirrel.Gt{"end_time": start})

	subSQL, subArgs, err := subquery.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FindAvailable - build subquery: %v", ErrBuildQuery, err)
	}

	query, args, err := psqlbuilder.Select(tableColumns...).
		From("dining_tables").
		Where(squirrel.Eq{"capacity": capacity}).
		Where(squirrel.Eq{"status": domain.TableStatusOpen}).
		Where("id NOT IN ("+subSQL+")", subArgs...).
		OrderBy("name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: FindAvailable - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: FindAvailable - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanTables(rows)
}

// HasActiveReservations проверяет, ссылается ли на столик хотя бы одна
// подтвержденная бронь. Используется для блокировки удаления столика.
func (r *Repository) HasActiveReservations(ctx context.Context, tableID int64) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		From("reservations").
		Where(squirrel.Eq{"dining_table_id": tableID}).
		Where(squirrel.Eq{"status": domain.StatusConfirmed}).
		Limit(1).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: HasActiveReservations - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("%w: HasActiveReservations - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	exists := rows.Next()
	if err := rows.Err(); err != nil {
		return false, fmt.Errorf("%w: HasActiveReservations - rows error: %v", ErrScanRow, err)
	}

	return exists, nil
}

// Update обновляет столик целиком
// Нарушение уникальности имени возвращается как ErrDuplicateName
func (r *Repository) Update(ctx context.Context, t *domain.DiningTable) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("dining_tables").
		Set("name", t.Name).
		Set("floor", t.Floor).
		Set("capacity", t.Capacity).
		Set("status", t.Status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": t.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pgUniqueViolation {
			return ErrDuplicateName
		}
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrTableNotFound
	}

	return nil
}

// Delete удаляет столик
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("dining_tables").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrTableNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanTable сканирует одну строку в модель столика
func (r *Repository) scanTable(row rowScanner) (*domain.DiningTable, error) {
	var t domain.DiningTable
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&t.ID,
		&t.Name,
		&t.Floor,
		&t.Capacity,
		&t.Status,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	t.CreatedAt = createdAt.Time
	t.UpdatedAt = updatedAt.Time

	return &t, nil
}

// scanTables сканирует результаты запроса в слайс столиков
func (r *Repository) scanTables(rows *sql.Rows) ([]*domain.DiningTable, error) {
	tables := make([]*domain.DiningTable, 0)

	for rows.Next() {
		t, err := r.scanTable(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanTables - scan row: %v", ErrScanRow, err)
		}
		tables = append(tables, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanTables - rows error: %v", ErrScanRow, err)
	}

	return tables, nil
}
