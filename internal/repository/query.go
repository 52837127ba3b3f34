package repository

import (
	"database/sql"
	"errors"
	"strings"
	"time"

	"orthocare-api/pkg/pagination"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type scope = func(*gorm.DB) *gorm.DB

// listQuery describes a paginated read. Filters apply to both the count
// and the fetch; preloads and order only to the fetch.
type listQuery struct {
	filters  []scope
	preloads []string
	order    []string
}

// snapshotTx makes the count and the page observe the same rows.
var snapshotTx = &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true}

func paginate[T any](db *gorm.DB, params pagination.Params, q listQuery) ([]T, int64, error) {
	var (
		rows  []T
		total int64
	)

	err := db.Transaction(func(tx *gorm.DB) error {
		var model T
		if err := tx.Model(&model).Scopes(q.filters...).Count(&total).Error; err != nil {
			return err
		}

		if total == 0 || params.Offset() >= total {
			rows = []T{}
			return nil
		}

		fetch := tx.Model(&model).Scopes(q.filters...)
		for _, p := range q.preloads {
			fetch = fetch.Preload(p)
		}
		for _, o := range q.order {
			fetch = fetch.Order(o)
		}
		return fetch.Offset(int(params.Offset())).Limit(params.Limit).Find(&rows).Error
	}, snapshotTx)
	if err != nil {
		return nil, 0, err
	}

	return rows, total, nil
}

// search ORs every condition against the same %term% pattern. Each
// condition must hold exactly one placeholder.
func search(term string, conds ...string) scope {
	return func(db *gorm.DB) *gorm.DB {
		term = strings.TrimSpace(term)
		if term == "" || len(conds) == 0 {
			return db
		}
		pattern := "%" + escapeLike(term) + "%"
		args := make([]interface{}, len(conds))
		for i := range args {
			args[i] = pattern
		}
		return db.Where("("+strings.Join(conds, " OR ")+")", args...)
	}
}

func where(query string, args ...interface{}) scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(query, args...)
	}
}

func whereIf(cond bool, query string, args ...interface{}) scope {
	return func(db *gorm.DB) *gorm.DB {
		if !cond {
			return db
		}
		return db.Where(query, args...)
	}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// first returns nil, nil when no row matches.
func first[T any](db *gorm.DB, query string, args ...interface{}) (*T, error) {
	var row T
	err := db.Where(query, args...).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

func exists[T any](db *gorm.DB, id uuid.UUID) (bool, error) {
	var count int64
	var model T
	if err := db.Model(&model).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// update writes only the named fields of model; updated_at follows along.
func update(db *gorm.DB, model interface{}, fields []string) error {
	if len(fields) == 0 {
		return nil
	}
	return db.Model(model).Select(fields).Updates(model).Error
}

// softDelete stamps deleted_at on a live row and applies extra column
// writes in the same statement. It reports whether a row was affected.
func softDelete(db *gorm.DB, model interface{}, id uuid.UUID, extra map[string]interface{}) (bool, error) {
	updates := map[string]interface{}{"deleted_at": time.Now()}
	for column, value := range extra {
		updates[column] = value
	}

	result := db.Model(model).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func excludeID(id *uuid.UUID) scope {
	return func(db *gorm.DB) *gorm.DB {
		if id == nil {
			return db
		}
		return db.Where("id <> ?", *id)
	}
}
