package utils

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func Paginate(opts []QueryOption) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		q := NewQuery(opts)

		db = db.Order(clause.OrderByColumn{
			Column: clause.Column{Name: q.SortBy},
			Desc:   q.Order == OrderDesc,
		})

		if q.Offset > 0 {
			db = db.Offset(q.Offset)
		}

		if q.Limit > 0 {
			db = db.Limit(q.Limit)
		}

		return db
	}
}

// PaginateSlice applies the limit and offset of opts to an in-memory list
// that is already in id order. Descending order reverses it.
func PaginateSlice[T any](items []T, opts []QueryOption) []T {
	q := NewQuery(opts)

	res := make([]T, 0, len(items))

	if q.Order == OrderDesc {
		for i := len(items) - 1; i >= 0; i-- {
			res = append(res, items[i])
		}
	} else {
		res = append(res, items...)
	}

	if q.Offset >= len(res) {
		return res[:0]
	}

	res = res[q.Offset:]

	if q.Limit > 0 && q.Limit < len(res) {
		res = res[:q.Limit]
	}

	return res
}
