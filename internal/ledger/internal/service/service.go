// Copyright 2025 ogsware
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package service

import (
	"context"

	"github.com/ogsware/redeembot/internal/ledger/internal/domain"
	"github.com/ogsware/redeembot/internal/ledger/internal/repository"
)

var (
	ErrDuplicatedInvoice = repository.ErrDuplicatedInvoice
)

//go:generate mockgen -source=./service.go -package=ledgermocks -destination=../../mocks/ledger.mock.go -typed Service
type Service interface {
	// Contains 去重检查。任何存储层错误都原样返回,
	// 调用方不允许把"查不到"当成"未兑换"
	Contains(ctx context.Context, invoiceId string) (bool, error)
	// Append 把发票ID记入台账, 重复写入返回 ErrDuplicatedInvoice
	Append(ctx context.Context, invoiceId string) error
	List(ctx context.Context, offset int, limit int) ([]domain.Entry, error)
	Total(ctx context.Context) (int64, error)
}

type service struct {
	repo repository.LedgerRepository
}

func NewLedgerService(repo repository.LedgerRepository) Service {
	return &service{repo: repo}
}

func (s *service) Contains(ctx context.Context, invoiceId string) (bool, error) {
	return s.repo.Contains(ctx, invoiceId)
}

func (s *service) Append(ctx context.Context, invoiceId string) error {
	return s.repo.Append(ctx, invoiceId)
}

func (s *service) List(ctx context.Context, offset int, limit int) ([]domain.Entry, error) {
	return s.repo.List(ctx, offset, limit)
}

func (s *service) Total(ctx context.Context) (int64, error) {
	return s.repo.Total(ctx)
}
