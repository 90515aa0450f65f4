package repo

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cast"

	"seller-desk/internal/domain"
)

// record 一行结果，键为小写列名（不同驱动返回的大小写不一致）
type record map[string]any

func scanRecords(rows *sql.Rows, each func(record) error) error {
	cols, err := rows.Columns()
	if err != nil {
		return err
	}
	keys := make([]string, len(cols))
	for i, c := range cols {
		keys[i] = strings.ToLower(c)
	}
	for rows.Next() {
		vals := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return err
		}
		rec := make(record, len(keys))
		for i, k := range keys {
			rec[k] = vals[i]
		}
		if err := each(rec); err != nil {
			return err
		}
	}
	return rows.Err()
}

func (r record) value(col string) (any, error) {
	v, ok := r[col]
	if !ok {
		return nil, fmt.Errorf("column %q not in result set", col)
	}
	// mysql 文本协议返回 []byte
	if b, ok := v.([]byte); ok {
		return string(b), nil
	}
	return v, nil
}

func (r record) int(col string) (int, error) {
	v, err := r.value(col)
	if err != nil {
		return 0, err
	}
	if v == nil {
		return 0, fmt.Errorf("column %q is null", col)
	}
	return cast.ToIntE(v)
}

func (r record) string(col string) (string, error) {
	v, err := r.value(col)
	if err != nil {
		return "", err
	}
	return cast.ToStringE(v)
}

func (r record) float(col string) (*float64, error) {
	v, err := r.value(col)
	if err != nil || v == nil {
		return nil, err
	}
	f, err := cast.ToFloat64E(v)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r record) date(col string) (*time.Time, error) {
	v, err := r.value(col)
	if err != nil || v == nil {
		return nil, err
	}
	if s, ok := v.(string); ok && s == "" {
		return nil, nil
	}
	t, err := cast.ToTimeE(v)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// department 表的行 → Department
func instantiateDepartment(rec record) (*domain.Department, error) {
	id, err := rec.int("id")
	if err != nil {
		return nil, err
	}
	name, err := rec.string("name")
	if err != nil {
		return nil, err
	}
	return &domain.Department{ID: &id, Name: name}, nil
}

// seller join department 的行 → Department（DepartmentId + DepName 别名）
func instantiateJoinedDepartment(rec record) (*domain.Department, error) {
	id, err := rec.int("departmentid")
	if err != nil {
		return nil, err
	}
	name, err := rec.string("depname")
	if err != nil {
		return nil, err
	}
	return &domain.Department{ID: &id, Name: name}, nil
}

func instantiateSeller(rec record, dep *domain.Department) (*domain.Seller, error) {
	s := &domain.Seller{Department: dep}
	id, err := rec.int("id")
	if err != nil {
		return nil, err
	}
	s.ID = &id
	if s.Name, err = rec.string("name"); err != nil {
		return nil, err
	}
	if s.Email, err = rec.string("email"); err != nil {
		return nil, err
	}
	if s.BirthDate, err = rec.date("birthdate"); err != nil {
		return nil, err
	}
	if s.BaseSalary, err = rec.float("basesalary"); err != nil {
		return nil, err
	}
	return s, nil
}

// departmentMap 身份映射：一次扫描内同一部门 id 只实例化一次，
// 后续行复用同一个 *Department
type departmentMap map[int]*domain.Department

func (m departmentMap) resolve(rec record) (*domain.Department, error) {
	id, err := rec.int("departmentid")
	if err != nil {
		return nil, err
	}
	if dep, ok := m[id]; ok {
		return dep, nil
	}
	dep, err := instantiateJoinedDepartment(rec)
	if err != nil {
		return nil, err
	}
	m[id] = dep
	return dep, nil
}

// mapSellers 按存储返回顺序逐行映射 seller join department
func mapSellers(rows *sql.Rows) ([]*domain.Seller, error) {
	deps := departmentMap{}
	list := make([]*domain.Seller, 0)
	err := scanRecords(rows, func(rec record) error {
		dep, err := deps.resolve(rec)
		if err != nil {
			return err
		}
		s, err := instantiateSeller(rec, dep)
		if err != nil {
			return err
		}
		list = append(list, s)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return list, nil
}

func mapDepartments(rows *sql.Rows) ([]*domain.Department, error) {
	list := make([]*domain.Department, 0)
	err := scanRecords(rows, func(rec record) error {
		d, err := instantiateDepartment(rec)
		if err != nil {
			return err
		}
		list = append(list, d)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return list, nil
}
