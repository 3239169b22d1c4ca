package reservation

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

// pgExclusionViolation код ошибки PostgreSQL для нарушения exclusion constraint
const pgExclusionViolation = "23P01"

var reservationColumns = []string{
	"id",
	"user_id",
	"dining_table_id",
	"status",
	"phone",
	"guests",
	"start_time",
	"end_time",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронями столиков
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория броней
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую бронь
// Если в контексте передана активная транзакция, использует её.
// Нарушение exclusion constraint (двойная бронь на пересекающийся интервал)
// возвращается как ErrOverlappingReservation.
func (r *Repository) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("reservations").
		Columns(
			"user_id",
			"dining_table_id",
			"status",
			"phone",
			"guests",
			"start_time",
			"end_time",
		).
		Values(
			res.UserID,
			res.TableID,
			res.Status,
			res.Phone,
			res.Guests,
			res.StartTime,
			res.EndTime,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&res.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pgExclusionViolation {
			return nil, ErrOverlappingReservation
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	res.CreatedAt = createdAt.Time
	res.UpdatedAt = updatedAt.Time

	return res, nil
}

// GetByID получает бронь по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	res, err := r.scanReservation(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan reservation: %v", ErrScanRow, err)
	}

	return res, nil
}

// GetByUserID получает список броней пользователя
// Опционально фильтрует по статусу
func (r *Repository) GetByUserID(ctx context.Context, userID int64, status *domain.ReservationStatus) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("start_time DESC")

	// Фильтрация по статусу, если указан
	if status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *status})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanReservations(rows)
}

// List получает все брони (для персонала)
// Опционально фильтрует по статусу
func (r *Repository) List(ctx context.Context, status *domain.ReservationStatus) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		OrderBy("start_time DESC")

	if status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *status})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanReservations(rows)
}

// ExistsOverlapping проверяет, есть ли на столике активная бронь,
// пересекающаяся с интервалом [start, end)
// Интервалы полуоткрытые: брони встык (конец одной = начало другой) не пересекаются.
// Учитываются только брони со статусом CONFIRMED.
// Внутри транзакции строки блокируются через FOR UPDATE, чтобы закрыть гонку
// между проверкой и вставкой.
func (r *Repository) ExistsOverlapping(ctx context.Context, tableID int64, start, end time.Time) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("id").
		From("reservations").
		Where(squirrel.Eq{"dining_table_id": tableID}).
		Where(squirrel.Eq{"status": domain.StatusConfirmed}).
		Where(squirrel.Lt{"start_time": end}).
		Where(squirrel.Gt{"end_time": start})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: ExistsOverlapping - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("%w: ExistsOverlapping - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	exists := rows.Next()
	if err := rows.Err(); err != nil {
		return false, fmt.Errorf("%w: ExistsOverlapping - rows error: %v", ErrScanRow, err)
	}

	return exists, nil
}

// UpdateStatus обновляет статус брони
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.ReservationStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservations").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrReservationNotFound
	}

	return nil
}

// UpdateDetails обновляет контактный телефон и/или число гостей
// Передавать можно любое подмножество полей; nil-поля не изменяются
func (r *Repository) UpdateDetails(ctx context.Context, id int64, guests *int, phone *string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("reservations").
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})

	if guests != nil {
		updateBuilder = updateBuilder.Set("guests", *guests)
	}
	if phone != nil {
		updateBuilder = updateBuilder.Set("phone", *phone)
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateDetails - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateDetails - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateDetails - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrReservationNotFound
	}

	return nil
}

// Delete удаляет бронь (физическое удаление, использовать осторожно)
// Для обычного жизненного цикла предпочтителен статус CANCELLED
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("reservations").
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
		return ErrReservationNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanReservation сканирует одну строку в модель брони
func (r *Repository) scanReservation(row rowScanner) (*domain.Reservation, error) {
	var res domain.Reservation
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&res.ID,
		&res.UserID,
		&res.TableID,
		&res.Status,
		&res.Phone,
		&res.Guests,
		&res.StartTime,
		&res.EndTime,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	res.CreatedAt = createdAt.Time
	res.UpdatedAt = updatedAt.Time

	return &res, nil
}

// scanReservations сканирует результаты запроса в слайс броней
func (r *Repository) scanReservations(rows *sql.Rows) ([]*domain.Reservation, error) {
	reservations := make([]*domain.Reservation, 0)

	for rows.Next() {
		res, err := r.scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanReservations - scan row: %v", ErrScanRow, err)
		}
		reservations = append(reservations, res)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanReservations - rows error: %v", ErrScanRow, err)
	}

	return reservations, nil
}
