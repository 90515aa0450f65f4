package service

import (
	"context"
	"sort"
	"strings"

	"seller-desk/internal/domain"
)

type fakeDepartments struct {
	rows    map[int]*domain.Department
	next    int
	inserts int
	updates int
	finds   int
	fail    error
}

func newFakeDepartments(names ...string) *fakeDepartments {
	f := &fakeDepartments{rows: map[int]*domain.Department{}}
	for _, n := range names {
		_ = f.Insert(context.Background(), &domain.Department{Name: n})
	}
	f.inserts = 0
	return f
}

func (f *fakeDepartments) Insert(_ context.Context, d *domain.Department) error {
	if f.fail != nil {
		return f.fail
	}
	f.inserts++
	f.next++
	id := f.next
	d.ID = &id
	f.rows[id] = &domain.Department{ID: &id, Name: d.Name}
	return nil
}

func (f *fakeDepartments) Update(_ context.Context, d *domain.Department) error {
	if f.fail != nil {
		return f.fail
	}
	f.updates++
	f.rows[*d.ID] = &domain.Department{ID: d.ID, Name: d.Name}
	return nil
}

func (f *fakeDepartments) DeleteByID(_ context.Context, id int) error {
	if f.fail != nil {
		return f.fail
	}
	delete(f.rows, id)
	return nil
}

func (f *fakeDepartments) FindByID(_ context.Context, id int) (*domain.Department, error) {
	return f.rows[id], nil
}

func (f *fakeDepartments) FindAll(context.Context) ([]*domain.Department, error) {
	f.finds++
	out := make([]*domain.Department, 0, len(f.rows))
	for _, d := range f.rows {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return *out[i].ID < *out[j].ID })
	return out, nil
}

type fakeSellers struct {
	rows    map[int]*domain.Seller
	next    int
	inserts int
	updates int
	fail    error
}

func newFakeSellers() *fakeSellers { return &fakeSellers{rows: map[int]*domain.Seller{}} }

func (f *fakeSellers) Insert(_ context.Context, s *domain.Seller) error {
	if f.fail != nil {
		return f.fail
	}
	f.inserts++
	f.next++
	id := f.next
	s.ID = &id
	f.rows[id] = s
	return nil
}

func (f *fakeSellers) Update(_ context.Context, s *domain.Seller) error {
	if f.fail != nil {
		return f.fail
	}
	f.updates++
	f.rows[*s.ID] = s
	return nil
}

func (f *fakeSellers) DeleteByID(_ context.Context, id int) error {
	if f.fail != nil {
		return f.fail
	}
	delete(f.rows, id)
	return nil
}

func (f *fakeSellers) FindByID(_ context.Context, id int) (*domain.Seller, error) {
	return f.rows[id], nil
}

func (f *fakeSellers) FindAll(context.Context) ([]*domain.Seller, error) {
	out := make([]*domain.Seller, 0, len(f.rows))
	for _, s := range f.rows {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return *out[i].ID < *out[j].ID })
	return out, nil
}

func (f *fakeSellers) FindByDepartment(_ context.Context, d *domain.Department) ([]*domain.Seller, error) {
	var out []*domain.Seller
	for _, s := range f.rows {
		if s.Department != nil && s.Department.ID != nil && *s.Department.ID == *d.ID {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name) })
	return out, nil
}
