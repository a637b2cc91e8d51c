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

//go:build wireinject

package ledger

import (
	"sync"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/ogsware/redeembot/internal/ledger/internal/domain"
	"github.com/ogsware/redeembot/internal/ledger/internal/repository"
	"github.com/ogsware/redeembot/internal/ledger/internal/repository/cache"
	"github.com/ogsware/redeembot/internal/ledger/internal/repository/dao"
	"github.com/ogsware/redeembot/internal/ledger/internal/service"
)

type Module struct {
	Svc service.Service
}

type Service = service.Service
type Entry = domain.Entry

var ErrDuplicatedInvoice = service.ErrDuplicatedInvoice

const cacheExpiration = 7 * 24 * time.Hour

func InitModule(db *egorm.Component, ec ecache.Cache) (*Module, error) {
	wire.Build(wire.Struct(new(Module), "*"),
		InitService,
	)
	return new(Module), nil
}

var (
	once = &sync.Once{}
	svc  service.Service
)

// InitService MySQL 后端, used_invoices 表上的唯一索引负责兜底去重
func InitService(db *egorm.Component, ec ecache.Cache) Service {
	once.Do(func() {
		_ = dao.InitTables(db)
		d := dao.NewGORMLedgerDAO(db)
		c := cache.NewRedeemedECache(ec, cacheExpiration)
		r := repository.NewLedgerRepository(d, c)
		svc = service.NewLedgerService(r)
	})
	return svc
}

// InitFileModule 文件后端, 兼容旧版 used_invoices.json
func InitFileModule(path string, ec ecache.Cache) (*Module, error) {
	d := dao.NewFileLedgerDAO(path)
	c := cache.NewRedeemedECache(ec, cacheExpiration)
	r := repository.NewLedgerRepository(d, c)
	return &Module{Svc: service.NewLedgerService(r)}, nil
}
