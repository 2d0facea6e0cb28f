package service

import (
	"context"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"storefront/internal/domain"
	"storefront/internal/repository"
)

// CustomerService регистрирует покупателей с начальным балансом
type CustomerService struct {
	repo repository.CustomerRepository
	log  *zap.Logger
}

func NewCustomerService(repo repository.CustomerRepository, log *zap.Logger) *CustomerService {
	return &CustomerService{repo: repo, log: log}
}

func (s *CustomerService) Create(ctx context.Context, name string, balance decimal.Decimal) (*domain.Customer, error) {
	if name == "" || balance.IsNegative() {
		return nil, ErrInvalidInput
	}
	c := domain.NewCustomer(name, balance)
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	s.log.Info("customer created", zap.String("id", c.ID), zap.String("name", c.Name))
	return c, nil
}

func (s *CustomerService) GetByID(ctx context.Context, id string) (*domain.Customer, error) {
	if !validID(id) {
		return nil, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, id)
}
