package gui

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"seller-desk/internal/domain"
	"seller-desk/internal/validation"
)

var confirmDelete = Alert{Title: "Confirmation", Content: "Are you sure to delete?", Type: AlertConfirmation}

type DepartmentListController struct {
	view    ListView[*domain.Department]
	service DepartmentStore
	engine  *validation.Engine
	log     *zap.Logger
}

func NewDepartmentList(view ListView[*domain.Department], engine *validation.Engine, log *zap.Logger) *DepartmentListController {
	if log == nil {
		log = zap.NewNop()
	}
	return &DepartmentListController{view: view, engine: engine, log: log}
}

func (c *DepartmentListController) SetService(s DepartmentStore) { c.service = s }

// Refresh 存储错误原样返回给外壳
func (c *DepartmentListController) Refresh(ctx context.Context) error {
	if c.service == nil {
		return fmt.Errorf("%w: service was null", domain.ErrIllegalState)
	}
	list, err := c.service.FindAll(ctx)
	if err != nil {
		return err
	}
	c.view.SetItems(list)
	return nil
}

func (c *DepartmentListController) OnDataChanged() {
	if err := c.Refresh(context.Background()); err != nil {
		c.log.Error("refresh departments failed", zap.Error(err))
	}
}

// CreateForm 返回已绑定、已订阅本列表的表单
func (c *DepartmentListController) CreateForm(entity *domain.Department, view FormView) (*DepartmentFormController, error) {
	f := NewDepartmentForm(view, c.engine, c.log)
	f.Bind(entity, c.service)
	f.SubscribeDataChangeListener(c)
	if err := f.UpdateFormData(); err != nil {
		return nil, err
	}
	return f, nil
}

// Remove 未确认时只弹确认框
func (c *DepartmentListController) Remove(ctx context.Context, entity *domain.Department, confirmed bool) error {
	if !confirmed {
		c.view.ShowAlert(confirmDelete)
		return nil
	}
	if c.service == nil {
		return fmt.Errorf("%w: service was null", domain.ErrIllegalState)
	}
	if err := c.service.Remove(ctx, entity); err != nil {
		c.view.ShowAlert(Alert{Title: "Error removing object", Content: err.Error(), Type: AlertError})
		return nil
	}
	return c.Refresh(ctx)
}

type SellerListController struct {
	view        ListView[*domain.Seller]
	service     SellerStore
	departments DepartmentLister
	engine      *validation.Engine
	log         *zap.Logger
}

func NewSellerList(view ListView[*domain.Seller], engine *validation.Engine, log *zap.Logger) *SellerListController {
	if log == nil {
		log = zap.NewNop()
	}
	return &SellerListController{view: view, engine: engine, log: log}
}

func (c *SellerListController) SetService(s SellerStore) { c.service = s }

func (c *SellerListController) SetDepartmentService(ds DepartmentLister) { c.departments = ds }

func (c *SellerListController) Refresh(ctx context.Context) error {
	if c.service == nil {
		return fmt.Errorf("%w: service was null", domain.ErrIllegalState)
	}
	list, err := c.service.FindAll(ctx)
	if err != nil {
		return err
	}
	c.view.SetItems(list)
	return nil
}

func (c *SellerListController) OnDataChanged() {
	if err := c.Refresh(context.Background()); err != nil {
		c.log.Error("refresh sellers failed", zap.Error(err))
	}
}

func (c *SellerListController) CreateForm(ctx context.Context, entity *domain.Seller, view SellerFormView) (*SellerFormController, error) {
	f := NewSellerForm(view, c.engine, c.log)
	f.Bind(entity, c.service)
	f.SetDepartmentService(c.departments)
	f.SubscribeDataChangeListener(c)
	if err := f.LoadAssociatedObjects(ctx); err != nil {
		return nil, err
	}
	if err := f.UpdateFormData(); err != nil {
		return nil, err
	}
	return f, nil
}

func (c *SellerListController) Remove(ctx context.Context, entity *domain.Seller, confirmed bool) error {
	if !confirmed {
		c.view.ShowAlert(confirmDelete)
		return nil
	}
	if c.service == nil {
		return fmt.Errorf("%w: service was null", domain.ErrIllegalState)
	}
	if err := c.service.Remove(ctx, entity); err != nil {
		c.view.ShowAlert(Alert{Title: "Error removing object", Content: err.Error(), Type: AlertError})
		return nil
	}
	return c.Refresh(ctx)
}
