package service

import (
	"context"

	"go.uber.org/zap"

	"seller-desk/internal/domain"
)

type SellerService struct {
	repo domain.SellerRepository
	log  *zap.Logger
}

func NewSellerService(repo domain.SellerRepository, log *zap.Logger) *SellerService {
	if log == nil {
		log = zap.NewNop()
	}
	return &SellerService{repo: repo, log: log}
}

func (s *SellerService) FindAll(ctx context.Context) ([]*domain.Seller, error) {
	return s.repo.FindAll(ctx)
}

func (s *SellerService) FindByID(ctx context.Context, id int) (*domain.Seller, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *SellerService) FindByDepartment(ctx context.Context, d *domain.Department) ([]*domain.Seller, error) {
	return s.repo.FindByDepartment(ctx, d)
}

func (s *SellerService) SaveOrUpdate(ctx context.Context, sl *domain.Seller) error {
	var err error
	if sl.ID == nil {
		err = s.repo.Insert(ctx, sl)
	} else {
		err = s.repo.Update(ctx, sl)
	}
	if err != nil {
		s.log.Error("save seller failed", zap.String("name", sl.Name), zap.Error(err))
	}
	return err
}

func (s *SellerService) Remove(ctx context.Context, sl *domain.Seller) error {
	if sl.ID == nil {
		return domain.NewStorageError("remove seller: id is required")
	}
	if err := s.repo.DeleteByID(ctx, *sl.ID); err != nil {
		s.log.Error("remove seller failed", zap.Int("id", *sl.ID), zap.Error(err))
		return err
	}
	return nil
}
