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

package repository

import (
	"context"

	"github.com/ecodeclub/ekit/slice"
	"github.com/gotomicro/ego/core/elog"
	"github.com/ogsware/redeembot/internal/ledger/internal/domain"
	"github.com/ogsware/redeembot/internal/ledger/internal/repository/cache"
	"github.com/ogsware/redeembot/internal/ledger/internal/repository/dao"
)

var (
	ErrDuplicatedInvoice = dao.ErrDuplicatedInvoice
)

type LedgerRepository interface {
	Contains(ctx context.Context, invoiceId string) (bool, error)
	Append(ctx context.Context, invoiceId string) error
	List(ctx context.Context, offset int, limit int) ([]domain.Entry, error)
	Total(ctx context.Context) (int64, error)
}

func NewLedgerRepository(d dao.LedgerDAO, c cache.RedeemedCache) LedgerRepository {
	return &ledgerRepository{
		dao:    d,
		cache:  c,
		logger: elog.DefaultLogger,
	}
}

type ledgerRepository struct {
	dao    dao.LedgerDAO
	cache  cache.RedeemedCache
	logger *elog.Component
}

func (l *ledgerRepository) Contains(ctx context.Context, invoiceId string) (bool, error) {
	// 缓存里只有正向结论。未命中或出错都回源, 不会放过重复兑换
	redeemed, err := l.cache.GetRedeemed(ctx, invoiceId)
	if err == nil && redeemed {
		return true, nil
	}
	exist, err := l.dao.Exist(ctx, invoiceId)
	if err != nil {
		return false, err
	}
	if exist {
		l.setRedeemed(ctx, invoiceId)
	}
	return exist, nil
}

func (l *ledgerRepository) Append(ctx context.Context, invoiceId string) error {
	err := l.dao.Insert(ctx, dao.RedeemedInvoice{InvoiceId: invoiceId})
	if err != nil {
		return err
	}
	l.setRedeemed(ctx, invoiceId)
	return nil
}

func (l *ledgerRepository) setRedeemed(ctx context.Context, invoiceId string) {
	if err := l.cache.SetRedeemed(ctx, invoiceId); err != nil {
		l.logger.Warn("回填已兑换缓存失败",
			elog.FieldErr(err),
			elog.String("invoice_id", invoiceId))
	}
}

func (l *ledgerRepository) List(ctx context.Context, offset int, limit int) ([]domain.Entry, error) {
	rs, err := l.dao.List(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(rs, func(idx int, src dao.RedeemedInvoice) domain.Entry {
		return domain.Entry{
			InvoiceID: src.InvoiceId,
			Ctime:     src.Ctime,
		}
	}), nil
}

func (l *ledgerRepository) Total(ctx context.Context) (int64, error) {
	return l.dao.Count(ctx)
}
