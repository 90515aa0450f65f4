package domain

import (
	"context"
	"strconv"
)

type Department struct {
	ID   *int   `json:"id"` // 未持久化前为 nil
	Name string `json:"name"`
}

// HasID 是否已由存储层分配主键
func (d *Department) HasID() bool { return d != nil && d.ID != nil }

func (d *Department) String() string {
	if d == nil {
		return "Department<nil>"
	}
	id := "nil"
	if d.ID != nil {
		id = strconv.Itoa(*d.ID)
	}
	return "Department[id=" + id + ", name=" + d.Name + "]"
}

type DepartmentRepository interface {
	Insert(ctx context.Context, d *Department) error
	Update(ctx context.Context, d *Department) error
	DeleteByID(ctx context.Context, id int) error
	FindByID(ctx context.Context, id int) (*Department, error)
	FindAll(ctx context.Context) ([]*Department, error)
}
