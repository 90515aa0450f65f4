package repo

import (
	"context"
	"database/sql"

	"gorm.io/gorm"

	"seller-desk/internal/domain"
)

const (
	sqlSellerInsert = "insert into seller (Name, Email, BirthDate, BaseSalary, DepartmentId) values (?, ?, ?, ?, ?)"
	sqlSellerUpdate = "update seller set Name = ?, Email = ?, BirthDate = ?, BaseSalary = ?, DepartmentId = ? where Id = ?"
	sqlSellerDelete = "delete from seller where Id = ?"

	sqlSellerJoin = "select seller.*, department.Name as DepName " +
		"from seller inner join department on seller.DepartmentId = department.Id"
	sqlSellerByID         = sqlSellerJoin + " where seller.Id = ?"
	sqlSellerFindAll      = sqlSellerJoin
	sqlSellerByDepartment = sqlSellerJoin + " where seller.DepartmentId = ? order by lower(seller.Name)"
)

var _ domain.SellerRepository = (*SellerRepo)(nil)

type SellerRepo struct{ db *gorm.DB }

func NewSellerRepo(db *gorm.DB) *SellerRepo { return &SellerRepo{db: db} }

func sellerArgs(s *domain.Seller) []any {
	return []any{
		s.Name,
		nullString(s.Email),
		nullDate(s.BirthDate),
		nullFloat(s.BaseSalary),
		nullInt(s.DepartmentID()),
	}
}

// Insert 部门为空时交给 NOT NULL / 外键约束拒绝
func (r *SellerRepo) Insert(ctx context.Context, s *domain.Seller) (err error) {
	defer func() { observe("seller", "insert", err) }()

	id, err := insertReturningID(ctx, r.db, sqlSellerInsert, sellerArgs(s)...)
	if err != nil {
		return storageErr(err)
	}
	s.ID = &id
	return nil
}

func (r *SellerRepo) Update(ctx context.Context, s *domain.Seller) (err error) {
	defer func() { observe("seller", "update", err) }()

	if s.ID == nil {
		return domain.NewStorageError("update seller: id is required")
	}
	args := append(sellerArgs(s), *s.ID)
	return storageErr(r.db.WithContext(ctx).Exec(sqlSellerUpdate, args...).Error)
}

func (r *SellerRepo) DeleteByID(ctx context.Context, id int) (err error) {
	defer func() { observe("seller", "delete", err) }()
	return storageErr(r.db.WithContext(ctx).Exec(sqlSellerDelete, id).Error)
}

func (r *SellerRepo) FindByID(ctx context.Context, id int) (s *domain.Seller, err error) {
	defer func() { observe("seller", "find_by_id", err) }()

	err = queryRows(ctx, r.db, func(rows *sql.Rows) error {
		list, err := mapSellers(rows)
		if err != nil {
			return err
		}
		if len(list) > 0 {
			s = list[0]
		}
		return nil
	}, sqlSellerByID, id)
	if err != nil {
		return nil, storageErr(err)
	}
	return s, nil
}

func (r *SellerRepo) FindAll(ctx context.Context) (list []*domain.Seller, err error) {
	defer func() { observe("seller", "find_all", err) }()

	err = queryRows(ctx, r.db, func(rows *sql.Rows) error {
		list, err = mapSellers(rows)
		return err
	}, sqlSellerFindAll)
	if err != nil {
		return nil, storageErr(err)
	}
	return list, nil
}

// FindByDepartment 按姓名升序（忽略大小写，各驱动一致）
func (r *SellerRepo) FindByDepartment(ctx context.Context, d *domain.Department) (list []*domain.Seller, err error) {
	defer func() { observe("seller", "find_by_department", err) }()

	if d == nil || d.ID == nil {
		return nil, domain.NewStorageError("find sellers: department id is required")
	}
	err = queryRows(ctx, r.db, func(rows *sql.Rows) error {
		list, err = mapSellers(rows)
		return err
	}, sqlSellerByDepartment, *d.ID)
	if err != nil {
		return nil, storageErr(err)
	}
	return list, nil
}
