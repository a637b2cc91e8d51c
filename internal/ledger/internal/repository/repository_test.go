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
	"errors"
	"testing"

	"github.com/ogsware/redeembot/internal/ledger/internal/repository/dao"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLedgerDAO struct {
	rows       map[string]dao.RedeemedInvoice
	existErr   error
	existCalls int
}

func newFakeLedgerDAO() *fakeLedgerDAO {
	return &fakeLedgerDAO{rows: map[string]dao.RedeemedInvoice{}}
}

func (f *fakeLedgerDAO) Exist(ctx context.Context, invoiceId string) (bool, error) {
	f.existCalls++
	if f.existErr != nil {
		return false, f.existErr
	}
	_, ok := f.rows[invoiceId]
	return ok, nil
}

func (f *fakeLedgerDAO) Insert(ctx context.Context, r dao.RedeemedInvoice) error {
	if _, ok := f.rows[r.InvoiceId]; ok {
		return dao.ErrDuplicatedInvoice
	}
	f.rows[r.InvoiceId] = r
	return nil
}

func (f *fakeLedgerDAO) List(ctx context.Context, offset int, limit int) ([]dao.RedeemedInvoice, error) {
	res := make([]dao.RedeemedInvoice, 0, len(f.rows))
	for _, r := range f.rows {
		res = append(res, r)
	}
	return res, nil
}

func (f *fakeLedgerDAO) Count(ctx context.Context) (int64, error) {
	return int64(len(f.rows)), nil
}

type fakeRedeemedCache struct {
	redeemed map[string]bool
	getErr   error
	setErr   error
}

func newFakeRedeemedCache() *fakeRedeemedCache {
	return &fakeRedeemedCache{redeemed: map[string]bool{}}
}

func (f *fakeRedeemedCache) GetRedeemed(ctx context.Context, invoiceId string) (bool, error) {
	if f.getErr != nil {
		return false, f.getErr
	}
	return f.redeemed[invoiceId], nil
}

func (f *fakeRedeemedCache) SetRedeemed(ctx context.Context, invoiceId string) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.redeemed[invoiceId] = true
	return nil
}

func TestLedgerRepository_Contains(t *testing.T) {
	ctx := context.Background()

	t.Run("缓存命中不回源", func(t *testing.T) {
		d := newFakeLedgerDAO()
		c := newFakeRedeemedCache()
		c.redeemed["INV-001"] = true
		repo := NewLedgerRepository(d, c)

		exist, err := repo.Contains(ctx, "INV-001")
		require.NoError(t, err)
		assert.True(t, exist)
		assert.Equal(t, 0, d.existCalls)
	})

	t.Run("缓存未命中回源并回填", func(t *testing.T) {
		d := newFakeLedgerDAO()
		d.rows["INV-001"] = dao.RedeemedInvoice{InvoiceId: "INV-001"}
		c := newFakeRedeemedCache()
		repo := NewLedgerRepository(d, c)

		exist, err := repo.Contains(ctx, "INV-001")
		require.NoError(t, err)
		assert.True(t, exist)
		assert.True(t, c.redeemed["INV-001"])
	})

	t.Run("缓存出错照样回源", func(t *testing.T) {
		d := newFakeLedgerDAO()
		d.rows["INV-001"] = dao.RedeemedInvoice{InvoiceId: "INV-001"}
		c := newFakeRedeemedCache()
		c.getErr = errors.New("mock err")
		repo := NewLedgerRepository(d, c)

		exist, err := repo.Contains(ctx, "INV-001")
		require.NoError(t, err)
		assert.True(t, exist)
	})

	t.Run("不在台账里不回填缓存", func(t *testing.T) {
		d := newFakeLedgerDAO()
		c := newFakeRedeemedCache()
		repo := NewLedgerRepository(d, c)

		exist, err := repo.Contains(ctx, "INV-001")
		require.NoError(t, err)
		assert.False(t, exist)
		assert.False(t, c.redeemed["INV-001"])
	})

	t.Run("存储出错往上抛", func(t *testing.T) {
		d := newFakeLedgerDAO()
		d.existErr = errors.New("mock err")
		c := newFakeRedeemedCache()
		repo := NewLedgerRepository(d, c)

		_, err := repo.Contains(ctx, "INV-001")
		assert.Error(t, err)
	})
}

func TestLedgerRepository_Append(t *testing.T) {
	ctx := context.Background()

	t.Run("写入成功并回填缓存", func(t *testing.T) {
		d := newFakeLedgerDAO()
		c := newFakeRedeemedCache()
		repo := NewLedgerRepository(d, c)

		require.NoError(t, repo.Append(ctx, "INV-001"))
		assert.True(t, c.redeemed["INV-001"])

		total, err := repo.Total(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
	})

	t.Run("重复写入返回哨兵错误", func(t *testing.T) {
		d := newFakeLedgerDAO()
		c := newFakeRedeemedCache()
		repo := NewLedgerRepository(d, c)

		require.NoError(t, repo.Append(ctx, "INV-001"))
		err := repo.Append(ctx, "INV-001")
		assert.ErrorIs(t, err, ErrDuplicatedInvoice)
	})

	t.Run("回填缓存失败不影响写入", func(t *testing.T) {
		d := newFakeLedgerDAO()
		c := newFakeRedeemedCache()
		c.setErr = errors.New("mock err")
		repo := NewLedgerRepository(d, c)

		require.NoError(t, repo.Append(ctx, "INV-001"))
		exist, err := repo.Contains(ctx, "INV-001")
		require.NoError(t, err)
		assert.True(t, exist)
	})
}
