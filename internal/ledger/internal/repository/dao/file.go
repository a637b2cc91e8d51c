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
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/ecodeclub/ekit/slice"
)

// fileLedgerDAO 文件后端。整个台账是一个 JSON 字符串数组,
// 与旧版 used_invoices.json 的格式完全兼容, 每次追加都整体重写。
// 文件不存在视为空台账, 内容损坏视为存储不可用
type fileLedgerDAO struct {
	path string
	mu   sync.Mutex
}

func NewFileLedgerDAO(path string) LedgerDAO {
	return &fileLedgerDAO{path: path}
}

func (f *fileLedgerDAO) Exist(ctx context.Context, invoiceId string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	ids, err := f.load()
	if err != nil {
		return false, err
	}
	return slice.Contains(ids, invoiceId), nil
}

func (f *fileLedgerDAO) Insert(ctx context.Context, r RedeemedInvoice) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	ids, err := f.load()
	if err != nil {
		return err
	}
	if slice.Contains(ids, r.InvoiceId) {
		return ErrDuplicatedInvoice
	}
	return f.save(append(ids, r.InvoiceId))
}

func (f *fileLedgerDAO) List(ctx context.Context, offset int, limit int) ([]RedeemedInvoice, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	ids, err := f.load()
	if err != nil {
		return nil, err
	}
	// 新写入的在文件末尾, 对外按最近兑换优先返回
	ids = slice.Reverse(ids)
	if offset >= len(ids) {
		return []RedeemedInvoice{}, nil
	}
	end := offset + limit
	if end > len(ids) {
		end = len(ids)
	}
	return slice.Map(ids[offset:end], func(idx int, src string) RedeemedInvoice {
		return RedeemedInvoice{InvoiceId: src}
	}), nil
}

func (f *fileLedgerDAO) Count(ctx context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	ids, err := f.load()
	if err != nil {
		return 0, err
	}
	return int64(len(ids)), nil
}

func (f *fileLedgerDAO) load() ([]string, error) {
	data, err := os.ReadFile(f.path)
	if os.IsNotExist(err) {
		return []string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("读取台账文件失败: %w", err)
	}
	var ids []string
	if err = json.Unmarshal(data, &ids); err != nil {
		return nil, fmt.Errorf("台账文件内容损坏: %w", err)
	}
	return ids, nil
}

func (f *fileLedgerDAO) save(ids []string) error {
	data, err := json.MarshalIndent(ids, "", "  ")
	if err != nil {
		return fmt.Errorf("序列化台账失败: %w", err)
	}
	if err = os.WriteFile(f.path, data, 0644); err != nil {
		return fmt.Errorf("写入台账文件失败: %w", err)
	}
	return nil
}
