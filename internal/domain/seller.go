package domain

import (
	"context"
	"time"
)

type Seller struct {
	ID         *int        `json:"id"`
	Name       string      `json:"name"`
	Email      string      `json:"email"`
	BirthDate  *time.Time  `json:"birthDate"`
	BaseSalary *float64    `json:"baseSalary"`
	Department *Department `json:"department"`
}

func (s *Seller) HasID() bool { return s != nil && s.ID != nil }

// DepartmentID 外键值；未选择部门时返回 nil
func (s *Seller) DepartmentID() *int {
	if s == nil || s.Department == nil {
		return nil
	}
	return s.Department.ID
}

type SellerRepository interface {
	Insert(ctx context.Context, s *Seller) error
	Update(ctx context.Context, s *Seller) error
	DeleteByID(ctx context.Context, id int) error
	FindByID(ctx context.Context, id int) (*Seller, error)
	FindAll(ctx context.Context) ([]*Seller, error)
	FindByDepartment(ctx context.Context, d *Department) ([]*Seller, error)
}
