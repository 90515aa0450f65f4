package repo

import (
	"context"
	"database/sql"

	"gorm.io/gorm"

	"seller-desk/internal/domain"
)

const (
	sqlDepartmentInsert  = "insert into department (Name) values (?)"
	sqlDepartmentUpdate  = "update department set Name = ? where Id = ?"
	sqlDepartmentDelete  = "delete from department where Id = ?"
	sqlDepartmentByID    = "select * from department where Id = ?"
	sqlDepartmentFindAll = "select * from department"
)

var _ domain.DepartmentRepository = (*DepartmentRepo)(nil)

type DepartmentRepo struct{ db *gorm.DB }

func NewDepartmentRepo(db *gorm.DB) *DepartmentRepo { return &DepartmentRepo{db: db} }

// Insert 成功后回写 d.ID；失败时 d.ID 保持不变
func (r *DepartmentRepo) Insert(ctx context.Context, d *domain.Department) (err error) {
	defer func() { observe("department", "insert", err) }()

	id, err := insertReturningID(ctx, r.db, sqlDepartmentInsert, d.Name)
	if err != nil {
		return storageErr(err)
	}
	d.ID = &id
	return nil
}

// Update 不校验影响行数：id 不存在时静默成功
func (r *DepartmentRepo) Update(ctx context.Context, d *domain.Department) (err error) {
	defer func() { observe("department", "update", err) }()

	if d.ID == nil {
		return domain.NewStorageError("update department: id is required")
	}
	return storageErr(r.db.WithContext(ctx).Exec(sqlDepartmentUpdate, d.Name, *d.ID).Error)
}

// DeleteByID 被 seller 引用时由外键约束拒绝
func (r *DepartmentRepo) DeleteByID(ctx context.Context, id int) (err error) {
	defer func() { observe("department", "delete", err) }()
	return storageErr(r.db.WithContext(ctx).Exec(sqlDepartmentDelete, id).Error)
}

// FindByID 不存在返回 (nil, nil)
func (r *DepartmentRepo) FindByID(ctx context.Context, id int) (dep *domain.Department, err error) {
	defer func() { observe("department", "find_by_id", err) }()

	err = queryRows(ctx, r.db, func(rows *sql.Rows) error {
		list, err := mapDepartments(rows)
		if err != nil {
			return err
		}
		if len(list) > 0 {
			dep = list[0]
		}
		return nil
	}, sqlDepartmentByID, id)
	if err != nil {
		return nil, storageErr(err)
	}
	return dep, nil
}

func (r *DepartmentRepo) FindAll(ctx context.Context) (list []*domain.Department, err error) {
	defer func() { observe("department", "find_all", err) }()

	err = queryRows(ctx, r.db, func(rows *sql.Rows) error {
		list, err = mapDepartments(rows)
		return err
	}, sqlDepartmentFindAll)
	if err != nil {
		return nil, storageErr(err)
	}
	return list, nil
}
