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

package dao

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileLedgerDAO_MissingFileIsEmpty(t *testing.T) {
	dao := NewFileLedgerDAO(filepath.Join(t.TempDir(), "used_invoices.json"))

	exist, err := dao.Exist(context.Background(), "INV-001")
	require.NoError(t, err)
	assert.False(t, exist)

	cnt, err := dao.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(0), cnt)

	list, err := dao.List(context.Background(), 0, 10)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestFileLedgerDAO_InsertAndExist(t *testing.T) {
	path := filepath.Join(t.TempDir(), "used_invoices.json")
	dao := NewFileLedgerDAO(path)
	ctx := context.Background()

	require.NoError(t, dao.Insert(ctx, RedeemedInvoice{InvoiceId: "INV-001"}))
	require.NoError(t, dao.Insert(ctx, RedeemedInvoice{InvoiceId: "INV-002"}))

	exist, err := dao.Exist(ctx, "INV-001")
	require.NoError(t, err)
	assert.True(t, exist)

	exist, err = dao.Exist(ctx, "INV-999")
	require.NoError(t, err)
	assert.False(t, exist)

	// 重复写入返回哨兵错误
	err = dao.Insert(ctx, RedeemedInvoice{InvoiceId: "INV-001"})
	assert.ErrorIs(t, err, ErrDuplicatedInvoice)

	cnt, err := dao.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), cnt)
}

func TestFileLedgerDAO_ListNewestFirst(t *testing.T) {
	path := filepath.Join(t.TempDir(), "used_invoices.json")
	dao := NewFileLedgerDAO(path)
	ctx := context.Background()

	for _, id := range []string{"INV-001", "INV-002", "INV-003"} {
		require.NoError(t, dao.Insert(ctx, RedeemedInvoice{InvoiceId: id}))
	}

	list, err := dao.List(ctx, 0, 2)
	require.NoError(t, err)
	assert.Equal(t, []RedeemedInvoice{
		{InvoiceId: "INV-003"},
		{InvoiceId: "INV-002"},
	}, list)

	list, err = dao.List(ctx, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, []RedeemedInvoice{
		{InvoiceId: "INV-001"},
	}, list)

	list, err = dao.List(ctx, 10, 2)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestFileLedgerDAO_LegacyFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "used_invoices.json")
	// 旧版程序写出来的文件原样可读
	require.NoError(t, os.WriteFile(path, []byte(`[
  "INV-001",
  "INV-002"
]`), 0644))

	dao := NewFileLedgerDAO(path)
	exist, err := dao.Exist(context.Background(), "INV-002")
	require.NoError(t, err)
	assert.True(t, exist)
}

func TestFileLedgerDAO_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "used_invoices.json")
	require.NoError(t, os.WriteFile(path, []byte(`{not json`), 0644))

	dao := NewFileLedgerDAO(path)
	_, err := dao.Exist(context.Background(), "INV-001")
	assert.Error(t, err)

	err = dao.Insert(context.Background(), RedeemedInvoice{InvoiceId: "INV-001"})
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrDuplicatedInvoice)
}

func TestFileLedgerDAO_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "used_invoices.json")
	ctx := context.Background()

	dao := NewFileLedgerDAO(path)
	require.NoError(t, dao.Insert(ctx, RedeemedInvoice{InvoiceId: "INV-001"}))

	// 重新打开同一个文件, 数据还在
	reopened := NewFileLedgerDAO(path)
	exist, err := reopened.Exist(ctx, "INV-001")
	require.NoError(t, err)
	assert.True(t, exist)
}
