package gui

import (
	"context"

	"seller-desk/internal/domain"
)

type fakeFormView struct {
	texts    map[string]string
	errors   map[string]string
	alerts   []Alert
	closed   int
	items    []*domain.Department
	selected *domain.Department
}

func newFakeFormView() *fakeFormView {
	return &fakeFormView{texts: map[string]string{}, errors: map[string]string{}}
}

func (v *fakeFormView) Text(field string) string                      { return v.texts[field] }
func (v *fakeFormView) SetText(field, value string)                   { v.texts[field] = value }
func (v *fakeFormView) SetErrorMessage(field, msg string)             { v.errors[field] = msg }
func (v *fakeFormView) ClearErrors()                                  { v.errors = map[string]string{} }
func (v *fakeFormView) ShowAlert(a Alert)                             { v.alerts = append(v.alerts, a) }
func (v *fakeFormView) Close()                                        { v.closed++ }
func (v *fakeFormView) SetDepartmentItems(items []*domain.Department) { v.items = items }
func (v *fakeFormView) SelectDepartment(d *domain.Department)         { v.selected = d }
func (v *fakeFormView) SelectedDepartment() *domain.Department        { return v.selected }

type fakeListView[T any] struct {
	items  []T
	sets   int
	alerts []Alert
}

func (v *fakeListView[T]) SetItems(items []T) {
	v.items = items
	v.sets++
}

func (v *fakeListView[T]) ShowAlert(a Alert) { v.alerts = append(v.alerts, a) }

type fakeDepartmentStore struct {
	rows    []*domain.Department
	inserts int
	updates int
	removes int
	fail    error
}

func (s *fakeDepartmentStore) FindAll(context.Context) ([]*domain.Department, error) {
	if s.fail != nil {
		return nil, s.fail
	}
	return append([]*domain.Department(nil), s.rows...), nil
}

func (s *fakeDepartmentStore) SaveOrUpdate(_ context.Context, d *domain.Department) error {
	if s.fail != nil {
		return s.fail
	}
	if d.ID == nil {
		s.inserts++
		id := len(s.rows) + 1
		d.ID = &id
		s.rows = append(s.rows, d)
		return nil
	}
	s.updates++
	for i, r := range s.rows {
		if *r.ID == *d.ID {
			s.rows[i] = d
		}
	}
	return nil
}

func (s *fakeDepartmentStore) Remove(_ context.Context, d *domain.Department) error {
	if s.fail != nil {
		return s.fail
	}
	s.removes++
	for i, r := range s.rows {
		if *r.ID == *d.ID {
			s.rows = append(s.rows[:i], s.rows[i+1:]...)
			break
		}
	}
	return nil
}

type fakeSellerStore struct {
	rows    []*domain.Seller
	inserts int
	updates int
	fail    error
}

func (s *fakeSellerStore) FindAll(context.Context) ([]*domain.Seller, error) {
	return append([]*domain.Seller(nil), s.rows...), nil
}

func (s *fakeSellerStore) SaveOrUpdate(_ context.Context, sl *domain.Seller) error {
	if s.fail != nil {
		return s.fail
	}
	if sl.ID == nil {
		s.inserts++
		id := len(s.rows) + 1
		sl.ID = &id
		s.rows = append(s.rows, sl)
		return nil
	}
	s.updates++
	return nil
}

func (s *fakeSellerStore) Remove(_ context.Context, sl *domain.Seller) error {
	if s.fail != nil {
		return s.fail
	}
	for i, r := range s.rows {
		if *r.ID == *sl.ID {
			s.rows = append(s.rows[:i], s.rows[i+1:]...)
			break
		}
	}
	return nil
}
