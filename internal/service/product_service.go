package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"storefront/internal/domain"
	"storefront/internal/repository"
)

var ErrInvalidInput = errors.New("invalid input")

// ProductService инкапсулирует бизнес-логику каталога
type ProductService struct {
	repo repository.ProductRepository
	tx   repository.TxManager
	log  *zap.Logger
}

func NewProductService(repo repository.ProductRepository, tx repository.TxManager, log *zap.Logger) *ProductService {
	return &ProductService{repo: repo, tx: tx, log: log}
}

func validProduct(p domain.Product) bool {
	if p.Name == "" || p.Price.IsNegative() || p.Stock < 0 {
		return false
	}
	// shippable products carry a positive weight
	if p.WeightGrams != nil && !p.WeightGrams.IsPositive() {
		return false
	}
	return true
}

func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

func (s *ProductService) Create(ctx context.Context, p domain.Product) (*domain.Product, error) {
	if !validProduct(p) {
		return nil, ErrInvalidInput
	}
	cp := p.Clone()
	if err := s.repo.Create(ctx, cp); err != nil {
		return nil, err
	}
	s.log.Info("product created",
		zap.String("id", cp.ID),
		zap.String("name", cp.Name),
		zap.Bool("expirable", cp.ExpiresOn != nil),
		zap.Bool("shippable", cp.NeedsShipping()))
	return cp, nil
}

func (s *ProductService) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	if !validID(id) {
		return nil, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, id)
}

// Update меняет название, цену и остаток; срок годности и вес не меняются
func (s *ProductService) Update(ctx context.Context, p domain.Product) (*domain.Product, error) {
	if !validID(p.ID) || p.Name == "" || p.Price.IsNegative() || p.Stock < 0 {
		return nil, ErrInvalidInput
	}
	var updated *domain.Product
	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		cur, err := s.repo.GetByID(ctx, p.ID)
		if err != nil {
			return err
		}
		cur.Name = p.Name
		cur.Price = p.Price
		cur.Stock = p.Stock
		if err := s.repo.Update(ctx, cur); err != nil {
			return err
		}
		updated = cur
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *ProductService) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		return ErrInvalidInput
	}
	return s.repo.Delete(ctx, id)
}

func (s *ProductService) List(ctx context.Context, f repository.ProductFilter) ([]domain.Product, error) {
	return s.repo.List(ctx, f)
}
