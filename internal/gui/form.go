package gui

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"seller-desk/internal/domain"
)

type FormState int

const (
	FormUnbound FormState = iota
	FormBound
	FormSaved
	FormValidationError
	FormStorageError
	FormCancelled
)

func (s FormState) String() string {
	switch s {
	case FormBound:
		return "bound"
	case FormSaved:
		return "saved"
	case FormValidationError:
		return "validation_error"
	case FormStorageError:
		return "storage_error"
	case FormCancelled:
		return "cancelled"
	}
	return "unbound"
}

func (s FormState) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

const (
	FieldID         = "id"
	FieldName       = "name"
	FieldEmail      = "email"
	FieldBirthDate  = "birthDate"
	FieldBaseSalary = "baseSalary"
	FieldDepartment = "department"
)

// form 两种表单共用的状态与监听器列表
type form struct {
	view      FormView
	state     FormState
	listeners []DataChangeListener
	log       *zap.Logger
}

func newForm(view FormView, log *zap.Logger) form {
	if log == nil {
		log = zap.NewNop()
	}
	return form{view: view, log: log}
}

func (f *form) State() FormState { return f.state }

// SubscribeDataChangeListener 按订阅顺序通知
func (f *form) SubscribeDataChangeListener(l DataChangeListener) {
	f.listeners = append(f.listeners, l)
}

func (f *form) notifyDataChangeListeners() {
	for _, l := range f.listeners {
		l.OnDataChanged()
	}
}

func (f *form) Cancel() {
	f.state = FormCancelled
	f.view.Close()
}

func (f *form) illegal(what string) error {
	f.log.Error("form used before bind", zap.String("missing", what))
	return fmt.Errorf("%w: %s was null", domain.ErrIllegalState, what)
}

// finish 统一处理保存结果：校验错误写回字段，存储错误弹窗
func (f *form) finish(err error) error {
	if err == nil {
		f.state = FormSaved
		f.notifyDataChangeListeners()
		f.view.Close()
		return nil
	}
	if verr, ok := domain.AsValidationError(err); ok {
		f.state = FormValidationError
		for field, msg := range verr.Errors {
			f.view.SetErrorMessage(field, msg)
		}
		return nil
	}
	if domain.IsStorageError(err) {
		f.state = FormStorageError
		f.view.ShowAlert(Alert{Title: "Error saving object", Content: err.Error(), Type: AlertError})
		return nil
	}
	if errors.Is(err, domain.ErrIllegalState) {
		return err
	}
	// 其它错误（如日期解析）同样按存储失败展示，保持窗口打开
	f.state = FormStorageError
	f.view.ShowAlert(Alert{Title: "Error saving object", Content: err.Error(), Type: AlertError})
	return nil
}
