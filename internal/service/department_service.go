package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"seller-desk/internal/core/cache"
	"seller-desk/internal/domain"
)

const departmentsKey = "departments:all"

type DepartmentService struct {
	repo  domain.DepartmentRepository
	cache *cache.Cache // 可选，供销售员表单的部门下拉框
	ttl   time.Duration
	log   *zap.Logger
}

func NewDepartmentService(repo domain.DepartmentRepository, log *zap.Logger) *DepartmentService {
	if log == nil {
		log = zap.NewNop()
	}
	return &DepartmentService{repo: repo, log: log}
}

// WithCache 开启部门列表读缓存
func (s *DepartmentService) WithCache(c *cache.Cache, ttl time.Duration) *DepartmentService {
	s.cache, s.ttl = c, ttl
	return s
}

func (s *DepartmentService) FindAll(ctx context.Context) ([]*domain.Department, error) {
	if s.cache == nil {
		return s.repo.FindAll(ctx)
	}
	return cache.GetOrLoadJSON(s.cache, ctx, departmentsKey, s.ttl, s.repo.FindAll)
}

func (s *DepartmentService) FindByID(ctx context.Context, id int) (*domain.Department, error) {
	return s.repo.FindByID(ctx, id)
}

// SaveOrUpdate 无 id 新增，有 id 更新
func (s *DepartmentService) SaveOrUpdate(ctx context.Context, d *domain.Department) error {
	var err error
	if d.ID == nil {
		err = s.repo.Insert(ctx, d)
	} else {
		err = s.repo.Update(ctx, d)
	}
	if err != nil {
		s.log.Error("save department failed", zap.Stringer("department", d), zap.Error(err))
		return err
	}
	s.OnDataChanged()
	return nil
}

func (s *DepartmentService) Remove(ctx context.Context, d *domain.Department) error {
	if d.ID == nil {
		return domain.NewStorageError("remove department: id is required")
	}
	if err := s.repo.DeleteByID(ctx, *d.ID); err != nil {
		s.log.Error("remove department failed", zap.Int("id", *d.ID), zap.Error(err))
		return err
	}
	s.OnDataChanged()
	return nil
}

// OnDataChanged 实现变更监听：清掉部门列表缓存
func (s *DepartmentService) OnDataChanged() {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(context.Background(), departmentsKey); err != nil {
		s.log.Warn("invalidate departments cache failed", zap.Error(err))
	}
}
