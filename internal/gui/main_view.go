package gui

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"seller-desk/internal/domain"
	"seller-desk/internal/validation"
)

const (
	SceneDepartments = "departments"
	SceneSellers     = "sellers"
	SceneAbout       = "about"
)

type Scene struct {
	Name       string
	Controller any // 关于页为 nil
}

// MainView 主窗口菜单；当前场景是实例状态
type MainView struct {
	departments DepartmentStore
	sellers     SellerStore
	engine      *validation.Engine
	log         *zap.Logger

	mu      sync.Mutex
	current Scene
}

func NewMainView(departments DepartmentStore, sellers SellerStore, engine *validation.Engine, log *zap.Logger) *MainView {
	if engine == nil {
		engine = validation.New()
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &MainView{departments: departments, sellers: sellers, engine: engine, log: log}
}

func (m *MainView) Current() Scene {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current
}

func (m *MainView) show(s Scene) {
	m.mu.Lock()
	m.current = s
	m.mu.Unlock()
	m.log.Debug("scene loaded", zap.String("scene", s.Name))
}

func (m *MainView) OnMenuItemDepartment(ctx context.Context, view ListView[*domain.Department]) (*DepartmentListController, error) {
	c := NewDepartmentList(view, m.engine, m.log)
	c.SetService(m.departments)
	if err := c.Refresh(ctx); err != nil {
		return nil, err
	}
	m.show(Scene{Name: SceneDepartments, Controller: c})
	return c, nil
}

func (m *MainView) OnMenuItemSeller(ctx context.Context, view ListView[*domain.Seller]) (*SellerListController, error) {
	c := NewSellerList(view, m.engine, m.log)
	c.SetService(m.sellers)
	c.SetDepartmentService(m.departments)
	if err := c.Refresh(ctx); err != nil {
		return nil, err
	}
	m.show(Scene{Name: SceneSellers, Controller: c})
	return c, nil
}

func (m *MainView) OnMenuItemAbout() Scene {
	s := Scene{Name: SceneAbout}
	m.show(s)
	return s
}
