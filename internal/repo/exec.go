package repo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"

	"seller-desk/internal/domain"
)

var errNoRowsInserted = errors.New("unexpected error: no rows inserted")

var storageOps = prometheus.NewCounterVec(
	prometheus.CounterOpts{Name: "storage_operations_total", Help: "Count of repository operations"},
	[]string{"entity", "op", "result"},
)

func init() { prometheus.MustRegister(storageOps) }

func observe(entity, op string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	storageOps.WithLabelValues(entity, op, result).Inc()
}

// storageErr 统一翻译为 StorageError，不区分具体错误码
func storageErr(err error) error {
	if err == nil {
		return nil
	}
	var se *domain.StorageError
	if errors.As(err, &se) {
		return err
	}
	return &domain.StorageError{Message: err.Error(), Err: err}
}

// insertReturningID 执行 insert 并取回自增主键。
// mysql / sqlite 走 LastInsertId；postgres 不支持，改用 RETURNING。
func insertReturningID(ctx context.Context, db *gorm.DB, query string, args ...any) (int, error) {
	tx := db.WithContext(ctx)
	if tx.Dialector.Name() == "postgres" {
		var id int
		err := tx.Raw(query+" returning Id", args...).Row().Scan(&id)
		if errors.Is(err, sql.ErrNoRows) {
			return 0, errNoRowsInserted
		}
		return id, err
	}

	res, err := tx.Statement.ConnPool.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, errNoRowsInserted
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return int(id), nil
}

// queryRows 语句与游标都在 fn 返回前释放
func queryRows(ctx context.Context, db *gorm.DB, fn func(*sql.Rows) error, query string, args ...any) error {
	rows, err := db.WithContext(ctx).Raw(query, args...).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()
	return fn(rows)
}

func nullString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func nullInt(p *int) any {
	if p == nil {
		return nil
	}
	return *p
}

func nullFloat(p *float64) any {
	if p == nil {
		return nil
	}
	return *p
}

func nullDate(p *time.Time) any {
	if p == nil {
		return nil
	}
	t := *p
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
