// Package gui 是界面无关的展示层：表单控制器、列表控制器与主视图导航。
// 具体的窗口由 View 接口的实现提供（HTTP 外壳里是按请求构造的记录器）。
package gui

import (
	"context"

	"seller-desk/internal/domain"
)

type AlertType int

const (
	AlertNone AlertType = iota
	AlertError
	AlertInformation
	AlertConfirmation
)

func (t AlertType) String() string {
	switch t {
	case AlertError:
		return "error"
	case AlertInformation:
		return "information"
	case AlertConfirmation:
		return "confirmation"
	}
	return "none"
}

func (t AlertType) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

type Alert struct {
	Title   string    `json:"title"`
	Header  string    `json:"header,omitempty"`
	Content string    `json:"content"`
	Type    AlertType `json:"type"`
}

// FormView 编辑窗口：按字段名读写文本、显示字段错误与弹窗
type FormView interface {
	Text(field string) string
	SetText(field, value string)
	SetErrorMessage(field, msg string)
	ClearErrors()
	ShowAlert(a Alert)
	Close()
}

// SellerFormView 额外带部门下拉框
type SellerFormView interface {
	FormView
	SetDepartmentItems(items []*domain.Department)
	SelectDepartment(d *domain.Department)
	SelectedDepartment() *domain.Department
}

type ListView[T any] interface {
	SetItems(items []T)
	ShowAlert(a Alert)
}

type DataChangeListener interface {
	OnDataChanged()
}

// DataChangeFunc 让普通函数充当监听器
type DataChangeFunc func()

func (f DataChangeFunc) OnDataChanged() { f() }

type DepartmentLister interface {
	FindAll(ctx context.Context) ([]*domain.Department, error)
}

// DepartmentStore 表单/列表用到的部门服务
type DepartmentStore interface {
	DepartmentLister
	SaveOrUpdate(ctx context.Context, d *domain.Department) error
	Remove(ctx context.Context, d *domain.Department) error
}

type SellerStore interface {
	FindAll(ctx context.Context) ([]*domain.Seller, error)
	SaveOrUpdate(ctx context.Context, s *domain.Seller) error
	Remove(ctx context.Context, s *domain.Seller) error
}
