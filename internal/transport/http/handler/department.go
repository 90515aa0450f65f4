package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"seller-desk/internal/domain"
	"seller-desk/internal/gui"
	"seller-desk/internal/transport/http/ez"
	"seller-desk/internal/validation"
)

func (h *Desk) departmentList() (*gui.DepartmentListController, *listView[*domain.Department]) {
	v := &listView[*domain.Department]{}
	c := gui.NewDepartmentList(v, h.Engine, h.Log)
	c.SetService(h.Departments)
	return c, v
}

func (h *Desk) mountDepartments(e ez.EZ) {
	ez.RegisterAction(e, ez.Action[struct{}, *listView[*domain.Department]]{
		Method: http.MethodGet,
		Path:   "/departments",
		Binder: ez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) (*listView[*domain.Department], error) {
			v := &listView[*domain.Department]{}
			if _, err := h.Main.OnMenuItemDepartment(c.Request.Context(), v); err != nil {
				return nil, h.fail(err)
			}
			return v, nil
		},
	})

	// 打开表单：带 id 为编辑，不带为新建
	ez.RegisterAction(e, ez.Action[struct{}, formOut]{
		Method: http.MethodGet,
		Path:   "/departments/form",
		Binder: ez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) (formOut, error) {
			id, err := queryID(c)
			if err != nil {
				return formOut{}, err
			}
			entity := &domain.Department{}
			if id != nil {
				if entity, err = h.Departments.FindByID(c.Request.Context(), *id); err != nil {
					return formOut{}, err
				}
				if entity == nil {
					return formOut{}, ez.NotFound("department not found")
				}
			}
			list, _ := h.departmentList()
			v := newFormView()
			f, err := list.CreateForm(entity, v)
			if err != nil {
				return formOut{}, h.fail(err)
			}
			return formOut{State: f.State(), Form: v}, nil
		},
	})

	ez.RegisterAction(e, ez.Action[validation.DepartmentInput, formOut]{
		Method: http.MethodPost,
		Path:   "/departments/form",
		Binder: ez.BindJSON,
		Auth:   h.needAuth(),
		Handler: func(c *gin.Context, in *validation.DepartmentInput) (formOut, error) {
			list, lv := h.departmentList()
			v := newFormView()
			f, err := list.CreateForm(&domain.Department{}, v)
			if err != nil {
				return formOut{}, h.fail(err)
			}
			v.SetText(gui.FieldID, in.ID)
			v.SetText(gui.FieldName, in.Name)
			if err := f.Save(c.Request.Context()); err != nil {
				return formOut{}, h.fail(err)
			}
			out := formOut{State: f.State(), Form: v}
			if f.State() == gui.FormSaved {
				out.Items = lv.Items
			}
			return out, nil
		},
	})

	ez.RegisterAction(e, ez.Action[struct{}, formOut]{
		Method: http.MethodPost,
		Path:   "/departments/form/cancel",
		Binder: ez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) (formOut, error) {
			list, _ := h.departmentList()
			v := newFormView()
			f, err := list.CreateForm(&domain.Department{}, v)
			if err != nil {
				return formOut{}, h.fail(err)
			}
			f.Cancel()
			return formOut{State: f.State(), Form: v}, nil
		},
	})

	// 不带 confirm=true 只返回确认提示
	ez.RegisterAction(e, ez.Action[struct{}, *listView[*domain.Department]]{
		Method: http.MethodDelete,
		Path:   "/departments/:id",
		Binder: ez.BindNone,
		Auth:   h.needAuth(),
		Handler: func(c *gin.Context, _ *struct{}) (*listView[*domain.Department], error) {
			id, err := paramID(c)
			if err != nil {
				return nil, err
			}
			ctx := c.Request.Context()
			entity, err := h.Departments.FindByID(ctx, id)
			if err != nil {
				return nil, err
			}
			if entity == nil {
				return nil, ez.NotFound("department not found")
			}
			list, lv := h.departmentList()
			if err := list.Remove(ctx, entity, c.Query("confirm") == "true"); err != nil {
				return nil, h.fail(err)
			}
			return lv, nil
		},
	})
}
