package gui

import (
	"context"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"seller-desk/internal/domain"
	"seller-desk/internal/validation"
)

type SellerFormController struct {
	form
	view        SellerFormView
	entity      *domain.Seller
	service     SellerStore
	departments DepartmentLister
	items       []*domain.Department
	engine      *validation.Engine
}

func NewSellerForm(view SellerFormView, engine *validation.Engine, log *zap.Logger) *SellerFormController {
	if engine == nil {
		engine = validation.New()
	}
	return &SellerFormController{form: newForm(view, log), view: view, engine: engine}
}

func (c *SellerFormController) Bind(entity *domain.Seller, service SellerStore) {
	c.entity, c.service = entity, service
	if entity != nil && service != nil {
		c.state = FormBound
	}
}

func (c *SellerFormController) SetDepartmentService(ds DepartmentLister) { c.departments = ds }

func (c *SellerFormController) Entity() *domain.Seller { return c.entity }

// LoadAssociatedObjects 填充部门下拉框
func (c *SellerFormController) LoadAssociatedObjects(ctx context.Context) error {
	if c.departments == nil {
		return c.illegal("department service")
	}
	items, err := c.departments.FindAll(ctx)
	if err != nil {
		return err
	}
	c.items = items
	c.view.SetDepartmentItems(items)
	return nil
}

func (c *SellerFormController) UpdateFormData() error {
	if c.entity == nil {
		return c.illegal("entity")
	}
	e := c.entity
	id, salary, birth := "", "", ""
	if e.ID != nil {
		id = strconv.Itoa(*e.ID)
	}
	if e.BaseSalary != nil {
		salary = fmt.Sprintf("%.2f", *e.BaseSalary)
	}
	if e.BirthDate != nil {
		birth = e.BirthDate.Format(validation.DateLayout)
	}
	c.view.SetText(FieldID, id)
	c.view.SetText(FieldName, e.Name)
	c.view.SetText(FieldEmail, e.Email)
	c.view.SetText(FieldBaseSalary, salary)
	c.view.SetText(FieldBirthDate, birth)

	switch {
	case e.Department != nil:
		c.view.SelectDepartment(e.Department)
	case len(c.items) > 0:
		c.view.SelectDepartment(c.items[0])
	}
	return nil
}

func (c *SellerFormController) Save(ctx context.Context) error {
	if c.entity == nil {
		return c.illegal("entity")
	}
	if c.service == nil {
		return c.illegal("service")
	}
	c.view.ClearErrors()

	s, err := c.engine.Seller(validation.SellerInput{
		ID:         c.view.Text(FieldID),
		Name:       c.view.Text(FieldName),
		Email:      c.view.Text(FieldEmail),
		BirthDate:  c.view.Text(FieldBirthDate),
		BaseSalary: c.view.Text(FieldBaseSalary),
		Department: c.view.SelectedDepartment(),
	})
	if err != nil {
		return c.finish(err)
	}
	if err := c.service.SaveOrUpdate(ctx, s); err != nil {
		return c.finish(err)
	}
	c.entity = s
	return c.finish(nil)
}
