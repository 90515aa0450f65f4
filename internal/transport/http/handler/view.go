package handler

import (
	"seller-desk/internal/domain"
	"seller-desk/internal/gui"
)

// formView 按请求构造的表单窗口：记录控制器写入的一切，最后整体序列化
type formView struct {
	Fields      map[string]string    `json:"fields"`
	Errors      map[string]string    `json:"errors,omitempty"`
	Alerts      []gui.Alert          `json:"alerts,omitempty"`
	Closed      bool                 `json:"closed"`
	Departments []*domain.Department `json:"departments,omitempty"`
	Selected    *domain.Department   `json:"selected,omitempty"`
}

func newFormView() *formView {
	return &formView{Fields: map[string]string{}, Errors: map[string]string{}}
}

func (v *formView) Text(field string) string          { return v.Fields[field] }
func (v *formView) SetText(field, value string)       { v.Fields[field] = value }
func (v *formView) SetErrorMessage(field, msg string) { v.Errors[field] = msg }
func (v *formView) ClearErrors()                      { clear(v.Errors) }
func (v *formView) ShowAlert(a gui.Alert)             { v.Alerts = append(v.Alerts, a) }
func (v *formView) Close()                            { v.Closed = true }

func (v *formView) SetDepartmentItems(items []*domain.Department) { v.Departments = items }
func (v *formView) SelectDepartment(d *domain.Department)         { v.Selected = d }
func (v *formView) SelectedDepartment() *domain.Department        { return v.Selected }

// selectByID 在已加载的下拉项里按 id 选中；找不到则清空选择
func (v *formView) selectByID(id *int) {
	v.Selected = nil
	if id == nil {
		return
	}
	for _, d := range v.Departments {
		if d.ID != nil && *d.ID == *id {
			v.Selected = d
			return
		}
	}
}

type listView[T any] struct {
	Items  []T         `json:"items"`
	Alerts []gui.Alert `json:"alerts,omitempty"`
}

func (v *listView[T]) SetItems(items []T)    { v.Items = items }
func (v *listView[T]) ShowAlert(a gui.Alert) { v.Alerts = append(v.Alerts, a) }

type formOut struct {
	State gui.FormState `json:"state"`
	Form  *formView     `json:"form"`
	Items any           `json:"items,omitempty"` // 保存成功后由列表监听器刷新
}
