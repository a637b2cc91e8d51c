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
	"errors"
	"time"

	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

var (
	// ErrDuplicatedInvoice 发票ID已在台账中。并发兑换同一张发票时由唯一索引兜底
	ErrDuplicatedInvoice = errors.New("发票已兑换")
)

type LedgerDAO interface {
	Exist(ctx context.Context, invoiceId string) (bool, error)
	Insert(ctx context.Context, r RedeemedInvoice) error
	List(ctx context.Context, offset int, limit int) ([]RedeemedInvoice, error)
	Count(ctx context.Context) (int64, error)
}

type gormLedgerDAO struct {
	db *egorm.Component
}

func NewGORMLedgerDAO(db *egorm.Component) LedgerDAO {
	return &gormLedgerDAO{db: db}
}

func (g *gormLedgerDAO) Exist(ctx context.Context, invoiceId string) (bool, error) {
	var r RedeemedInvoice
	err := g.db.WithContext(ctx).First(&r, "invoice_id = ?", invoiceId).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (g *gormLedgerDAO) Insert(ctx context.Context, r RedeemedInvoice) error {
	now := time.Now().UnixMilli()
	r.Ctime, r.Utime = now, now
	err := g.db.WithContext(ctx).Create(&r).Error
	if err != nil {
		var me *mysql.MySQLError
		if errors.As(err, &me) {
			const uniqueIndexErrNo uint16 = 1062
			if me.Number == uniqueIndexErrNo {
				return ErrDuplicatedInvoice
			}
		}
		return err
	}
	return nil
}

func (g *gormLedgerDAO) List(ctx context.Context, offset int, limit int) ([]RedeemedInvoice, error) {
	var rs []RedeemedInvoice
	err := g.db.WithContext(ctx).
		Order("ctime DESC, id DESC").
		Offset(offset).Limit(limit).
		Find(&rs).Error
	return rs, err
}

func (g *gormLedgerDAO) Count(ctx context.Context) (int64, error) {
	var count int64
	err := g.db.WithContext(ctx).Model(&RedeemedInvoice{}).Count(&count).Error
	return count, err
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&RedeemedInvoice{})
}

type RedeemedInvoice struct {
	Id        int64  `gorm:"primaryKey;autoIncrement;comment:自增ID"`
	InvoiceId string `gorm:"type:varchar(255);not null;uniqueIndex:uniq_invoice_id;comment:SellAuth发票唯一ID"`
	Ctime     int64
	Utime     int64
}

func (RedeemedInvoice) TableName() string {
	return "used_invoices"
}
