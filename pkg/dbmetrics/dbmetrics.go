package dbmetrics

import (
	"context"
	"database/sql"
	"time"

	"github.com/josephken/RMS-ReservationService/pkg/metrics"
)

// DBExecutor минимальный интерфейс исполнения запросов
// Реализуется *sql.DB, *sql.Tx, *DB и *Tx
type DBExecutor interface {
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

// TxExecutor интерфейс транзакции
type TxExecutor interface {
	DBExecutor
	Commit() error
	Rollback() error
}

type txContextKey struct{}

// WithTx кладет активную транзакцию в контекст
// Репозитории автоматически подхватывают её через GetExecutor
func WithTx(ctx context.Context, tx TxExecutor) context.Context {
	return context.WithValue(ctx, txContextKey{}, tx)
}

// GetExecutor возвращает транзакцию из контекста, если она есть, иначе fallback
func GetExecutor(ctx context.Context, fallback DBExecutor) DBExecutor {
	if tx, ok := ctx.Value(txContextKey{}).(TxExecutor); ok {
		return tx
	}
	return fallback
}

// IsInTransaction проверяет, выполняется ли запрос внутри транзакции
func IsInTransaction(ctx context.Context) bool {
	_, ok := ctx.Value(txContextKey{}).(TxExecutor)
	return ok
}

// DB обертка над *sql.DB, которая записывает длительность каждого запроса в метрики
type DB struct {
	db        *sql.DB
	collector *metrics.Metrics
}

// Wrap оборачивает *sql.DB сбором метрик
func Wrap(db *sql.DB, collector *metrics.Metrics) *DB {
	return &DB{db: db, collector: collector}
}

// WrapWithDefault оборачивает *sql.DB сбором метрик и запускает
// фоновый сбор статистики connection pool до закрытия stopCh
func WrapWithDefault(db *sql.DB, collector *metrics.Metrics, dbName string, stopCh <-chan struct{}) *DB {
	wrapped := Wrap(db, collector)

	go func() {
		ticker := time.NewTicker(15 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				collector.SetDBStats(dbName, db.Stats())
			case <-stopCh:
				return
			}
		}
	}()

	return wrapped
}

// QueryRowContext выполняет запрос, возвращающий одну строку
func (d *DB) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := d.db.QueryRowContext(ctx, query, args...)
	d.collector.ObserveDBQuery("query_row", time.Since(start).Seconds())
	return row
}

// QueryContext выполняет запрос, возвращающий набор строк
func (d *DB) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := d.db.QueryContext(ctx, query, args...)
	d.collector.ObserveDBQuery("query", time.Since(start).Seconds())
	return rows, err
}

// ExecContext выполняет запрос без возврата строк
func (d *DB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	res, err := d.db.ExecContext(ctx, query, args...)
	d.collector.ObserveDBQuery("exec", time.Since(start).Seconds())
	return res, err
}

// BeginTx начинает транзакцию; возвращаемый Tx также записывает метрики
func (d *DB) BeginTx(ctx context.Context, opts *sql.TxOptions) (TxExecutor, error) {
	tx, err := d.db.BeginTx(ctx, opts)
	if err != nil {
		return nil, err
	}
	return &Tx{tx: tx, collector: d.collector}, nil
}

// Tx обертка над *sql.Tx с метриками
type Tx struct {
	tx        *sql.Tx
	collector *metrics.Metrics
}

// QueryRowContext выполняет запрос в транзакции
func (t *Tx) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := t.tx.QueryRowContext(ctx, query, args...)
	t.collector.ObserveDBQuery("tx_query_row", time.Since(start).Seconds())
	return row
}

// QueryContext выполняет запрос в транзакции
func (t *Tx) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := t.tx.QueryContext(ctx, query, args...)
	t.collector.ObserveDBQuery("tx_query", time.Since(start).Seconds())
	return rows, err
}

// ExecContext выполняет запрос в транзакции
func (t *Tx) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	res, err := t.tx.ExecContext(ctx, query, args...)
	t.collector.ObserveDBQuery("tx_exec", time.Since(start).Seconds())
	return res, err
}

// Commit фиксирует транзакцию
func (t *Tx) Commit() error { return t.tx.Commit() }

// Rollback откатывает транзакцию
func (t *Tx) Rollback() error { return t.tx.Rollback() }
