package gui

import (
	"context"
	"strconv"

	"go.uber.org/zap"

	"seller-desk/internal/domain"
	"seller-desk/internal/validation"
)

type DepartmentFormController struct {
	form
	entity  *domain.Department
	service DepartmentStore
	engine  *validation.Engine
}

func NewDepartmentForm(view FormView, engine *validation.Engine, log *zap.Logger) *DepartmentFormController {
	if engine == nil {
		engine = validation.New()
	}
	return &DepartmentFormController{form: newForm(view, log), engine: engine}
}

// Bind 保存前必须调用
func (c *DepartmentFormController) Bind(entity *domain.Department, service DepartmentStore) {
	c.entity, c.service = entity, service
	if entity != nil && service != nil {
		c.state = FormBound
	}
}

func (c *DepartmentFormController) Entity() *domain.Department { return c.entity }

// UpdateFormData 把实体写入表单
func (c *DepartmentFormController) UpdateFormData() error {
	if c.entity == nil {
		return c.illegal("entity")
	}
	id := ""
	if c.entity.ID != nil {
		id = strconv.Itoa(*c.entity.ID)
	}
	c.view.SetText(FieldID, id)
	c.view.SetText(FieldName, c.entity.Name)
	return nil
}

func (c *DepartmentFormController) Save(ctx context.Context) error {
	if c.entity == nil {
		return c.illegal("entity")
	}
	if c.service == nil {
		return c.illegal("service")
	}
	c.view.ClearErrors()

	d, err := c.engine.Department(validation.DepartmentInput{
		ID:   c.view.Text(FieldID),
		Name: c.view.Text(FieldName),
	})
	if err != nil {
		return c.finish(err)
	}
	if err := c.service.SaveOrUpdate(ctx, d); err != nil {
		return c.finish(err)
	}
	c.entity = d
	return c.finish(nil)
}
