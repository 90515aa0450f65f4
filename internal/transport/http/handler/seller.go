package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"seller-desk/internal/domain"
	"seller-desk/internal/gui"
	"seller-desk/internal/transport/http/ez"
	resp "seller-desk/internal/transport/http/response"
)

type sellerFormIn struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	BirthDate    string `json:"birthDate"`  // dd/MM/yyyy
	BaseSalary   string `json:"baseSalary"` // 原样文本，宽松解析
	DepartmentID *int   `json:"departmentId"`
}

func (h *Desk) sellerList() (*gui.SellerListController, *listView[*domain.Seller]) {
	v := &listView[*domain.Seller]{}
	c := gui.NewSellerList(v, h.Engine, h.Log)
	c.SetService(h.Sellers)
	c.SetDepartmentService(h.Departments)
	return c, v
}

func (h *Desk) mountSellers(e ez.EZ) {
	ez.RegisterAction(e, ez.Action[struct{}, *listView[*domain.Seller]]{
		Method: http.MethodGet,
		Path:   "/sellers",
		Binder: ez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) (*listView[*domain.Seller], error) {
			v := &listView[*domain.Seller]{}
			if _, err := h.Main.OnMenuItemSeller(c.Request.Context(), v); err != nil {
				return nil, h.fail(err)
			}
			return v, nil
		},
	})

	ez.RegisterAction(e, ez.Action[struct{}, formOut]{
		Method: http.MethodGet,
		Path:   "/sellers/form",
		Binder: ez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) (formOut, error) {
			ctx := c.Request.Context()
			id, err := queryID(c)
			if err != nil {
				return formOut{}, err
			}
			entity := &domain.Seller{}
			if id != nil {
				if entity, err = h.Sellers.FindByID(ctx, *id); err != nil {
					return formOut{}, err
				}
				if entity == nil {
					return formOut{}, ez.NotFound("seller not found")
				}
			}
			list, _ := h.sellerList()
			v := newFormView()
			f, err := list.CreateForm(ctx, entity, v)
			if err != nil {
				return formOut{}, h.fail(err)
			}
			return formOut{State: f.State(), Form: v}, nil
		},
	})

	ez.RegisterAction(e, ez.Action[sellerFormIn, formOut]{
		Method: http.MethodPost,
		Path:   "/sellers/form",
		Binder: ez.BindJSON,
		Auth:   h.needAuth(),
		Handler: func(c *gin.Context, in *sellerFormIn) (formOut, error) {
			list, lv := h.sellerList()
			v := newFormView()
			f, err := list.CreateForm(c.Request.Context(), &domain.Seller{}, v)
			if err != nil {
				return formOut{}, h.fail(err)
			}
			v.SetText(gui.FieldID, in.ID)
			v.SetText(gui.FieldName, in.Name)
			v.SetText(gui.FieldEmail, in.Email)
			v.SetText(gui.FieldBirthDate, in.BirthDate)
			v.SetText(gui.FieldBaseSalary, in.BaseSalary)
			v.selectByID(in.DepartmentID)
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
		Path:   "/sellers/form/cancel",
		Binder: ez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) (formOut, error) {
			v := newFormView()
			f := gui.NewSellerForm(v, h.Engine, h.Log)
			f.Bind(&domain.Seller{}, h.Sellers)
			f.Cancel()
			return formOut{State: f.State(), Form: v}, nil
		},
	})

	ez.RegisterAction(e, ez.Action[struct{}, *listView[*domain.Seller]]{
		Method: http.MethodDelete,
		Path:   "/sellers/:id",
		Binder: ez.BindNone,
		Auth:   h.needAuth(),
		Handler: func(c *gin.Context, _ *struct{}) (*listView[*domain.Seller], error) {
			id, err := paramID(c)
			if err != nil {
				return nil, err
			}
			ctx := c.Request.Context()
			entity, err := h.Sellers.FindByID(ctx, id)
			if err != nil {
				return nil, err
			}
			if entity == nil {
				return nil, ez.NotFound("seller not found")
			}
			list, lv := h.sellerList()
			if err := list.Remove(ctx, entity, c.Query("confirm") == "true"); err != nil {
				return nil, h.fail(err)
			}
			return lv, nil
		},
	})

	// 导出直接写文件流，不走信封
	e.Group().GET("/sellers/export", func(c *gin.Context) {
		buf, name, err := h.Sellers.ExportXLSX(c.Request.Context())
		if err != nil {
			h.Log.Error("export sellers failed", zap.Error(err))
			c.JSON(http.StatusOK, resp.Error(resp.CodeServerError, err.Error()))
			return
		}
		c.Header("Content-Disposition", `attachment; filename="`+name+`"`)
		c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
	})
}
