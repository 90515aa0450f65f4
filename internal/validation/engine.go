// Package validation 把表单原始输入转换为可持久化的实体。
// 所有字段错误一次性收集，不在第一个错误处停止。
package validation

import (
	"errors"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"seller-desk/internal/domain"
	"seller-desk/pkg/utils"
)

const (
	DateLayout = "02/01/2006" // dd/MM/yyyy

	MsgRequired = "Field can't be empty"
	MsgDate     = "Invalid date"

	NameMaxDepartment = 30
	NameMaxSeller     = 50
	EmailMax          = 30
	BaseSalaryMax     = 10
)

// DepartmentInput 表单原始文本
type DepartmentInput struct {
	ID   string `form:"id" json:"id"`
	Name string `form:"name" json:"name" validate:"required,max=30"`
}

type SellerInput struct {
	ID         string             `form:"id" json:"id"`
	Name       string             `form:"name" json:"name" validate:"required,max=50"`
	Email      string             `form:"email" json:"email" validate:"max=30"`
	BirthDate  string             `form:"birthDate" json:"birthDate" validate:"omitempty,datetime=02/01/2006"`
	BaseSalary string             `form:"baseSalary" json:"baseSalary" validate:"max=10"`
	Department *domain.Department `form:"department" json:"-" validate:"required"`
}

type Engine struct {
	v *validator.Validate
}

func New() *Engine {
	v := validator.New(validator.WithRequiredStructEnabled())
	// 错误键用表单字段名（name / baseSalary …），与界面上的错误标签对应
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("form"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	return &Engine{v: v}
}

// Department 校验成功返回实体；失败返回 *domain.ValidationError
func (e *Engine) Department(in DepartmentInput) (*domain.Department, error) {
	in.Name = strings.TrimSpace(in.Name)

	verr := domain.NewValidationError("Validation error")
	if err := e.collect(in, verr); err != nil {
		return nil, err
	}
	if verr.HasErrors() {
		return nil, verr
	}
	return &domain.Department{
		ID:   utils.TryParseInt(in.ID),
		Name: in.Name,
	}, nil
}

func (e *Engine) Seller(in SellerInput) (*domain.Seller, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.BirthDate = strings.TrimSpace(in.BirthDate)
	in.BaseSalary = strings.TrimSpace(in.BaseSalary)

	verr := domain.NewValidationError("Validation error")
	if err := e.collect(in, verr); err != nil {
		return nil, err
	}
	if verr.HasErrors() {
		return nil, verr
	}

	s := &domain.Seller{
		ID:         utils.TryParseInt(in.ID),
		Name:       in.Name,
		Email:      in.Email,
		BaseSalary: utils.TryParseFloat(in.BaseSalary), // 非法数字按缺省处理
		Department: in.Department,
	}
	if in.BirthDate != "" {
		t, err := time.Parse(DateLayout, in.BirthDate)
		if err != nil {
			return nil, err
		}
		s.BirthDate = &t
	}
	return s, nil
}

func (e *Engine) collect(in any, verr *domain.ValidationError) error {
	err := e.v.Struct(in)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	for _, fe := range fieldErrs {
		verr.AddError(fe.Field(), message(fe))
	}
	return nil
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return MsgRequired
	case "max":
		return "Field can't exceed " + fe.Param() + " characters"
	case "datetime":
		return MsgDate
	}
	return "Invalid value"
}
