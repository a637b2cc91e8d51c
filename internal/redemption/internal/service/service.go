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
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/ecodeclub/ekit/syncx"
	"github.com/gotomicro/ego/core/elog"
	"github.com/ogsware/redeembot/internal/invoice"
	"github.com/ogsware/redeembot/internal/ledger"
	"github.com/ogsware/redeembot/internal/redemption/internal/domain"
	"github.com/ogsware/redeembot/internal/redemption/internal/event"
)

var (
	// ErrRoleNotFound 服务器角色列表里没有配置的角色
	ErrRoleNotFound = errors.New("角色不存在")
)

// RoleGranter 授予角色的平台侧协作者, 由 bot 模块实现。
// 配置的角色在服务器里不存在时返回 ErrRoleNotFound
type RoleGranter interface {
	GrantRole(ctx context.Context, guildId string, userId string) error
}

//go:generate mockgen -source=./service.go -package=redemptionmocks -destination=../../mocks/redemption.mock.go -typed Service
type Service interface {
	// Redeem 执行一次完整的兑换流程。任何内部错误都不外泄,
	// 调用方只根据 Attempt.Outcome 决定回复内容
	Redeem(ctx context.Context, req domain.RedemptionRequest) domain.Attempt
}

type service struct {
	ledgerSvc  ledger.Service
	invoiceSvc invoice.Service
	granter    RoleGranter
	producer   event.RedemptionEventProducer
	// completedStatus 唯一放行的发票状态。refunded/disputed 之类的终态
	// 是否也该拒绝没有定论, 所以做成配置而不是写死
	completedStatus    string
	attemptIDGenerator func() int64
	eventKeyGenerator  func() string
	// locks 按发票ID互斥。同一张发票被连点两次时, 后到的一次
	// 会在锁上排队, 等先到的落账后在去重检查处短路
	locks  *syncx.Map[string, *sync.Mutex]
	logger *elog.Component
}

func NewService(
	ledgerSvc ledger.Service,
	invoiceSvc invoice.Service,
	granter RoleGranter,
	producer event.RedemptionEventProducer,
	completedStatus string,
	attemptIDGenerator func() int64,
	eventKeyGenerator func() string,
) Service {
	return &service{
		ledgerSvc:          ledgerSvc,
		invoiceSvc:         invoiceSvc,
		granter:            granter,
		producer:           producer,
		completedStatus:    completedStatus,
		attemptIDGenerator: attemptIDGenerator,
		eventKeyGenerator:  eventKeyGenerator,
		locks:              &syncx.Map[string, *sync.Mutex]{},
		logger:             elog.DefaultLogger,
	}
}

func (s *service) Redeem(ctx context.Context, req domain.RedemptionRequest) domain.Attempt {
	// 收到输入立刻归一化, 后续所有比较和查询都用同一个值
	req.InvoiceID = strings.TrimSpace(req.InvoiceID)
	att := domain.Attempt{
		ID:      s.attemptIDGenerator(),
		Request: req,
	}

	mu := s.lockFor(req.InvoiceID)
	mu.Lock()
	defer mu.Unlock()

	used, err := s.ledgerSvc.Contains(ctx, req.InvoiceID)
	if err != nil {
		// 查不了台账就不能放行, 否则会漏掉重复兑换
		s.logger.Error("去重检查失败",
			elog.FieldErr(err),
			elog.String("invoice_id", req.InvoiceID),
			elog.String("user_id", req.UserID))
		att.Outcome = domain.OutcomeInternalFailed
		return att
	}
	if used {
		att.Outcome = domain.OutcomeDuplicate
		return att
	}

	inv, err := s.invoiceSvc.FindByUniqueID(ctx, req.InvoiceID)
	if errors.Is(err, invoice.ErrInvoiceNotFound) {
		att.Outcome = domain.OutcomeNotFound
		return att
	}
	if err != nil {
		s.logger.Error("校验发票失败",
			elog.FieldErr(err),
			elog.String("invoice_id", req.InvoiceID),
			elog.String("user_id", req.UserID))
		att.Outcome = domain.OutcomeUpstreamFailed
		return att
	}

	att.InvoiceStatus = inv.Status
	if inv.Status != s.completedStatus {
		att.Outcome = domain.OutcomeNotCompleted
		return att
	}

	err = s.granter.GrantRole(ctx, req.GuildID, req.UserID)
	if errors.Is(err, ErrRoleNotFound) {
		att.Outcome = domain.OutcomeRoleMissing
		return att
	}
	if err != nil {
		// 授予失败绝不落账, 否则用户没拿到角色发票却作废了
		s.logger.Error("授予角色失败",
			elog.FieldErr(err),
			elog.String("invoice_id", req.InvoiceID),
			elog.String("user_id", req.UserID))
		att.Outcome = domain.OutcomeInternalFailed
		return att
	}

	err = s.ledgerSvc.Append(ctx, req.InvoiceID)
	if errors.Is(err, ledger.ErrDuplicatedInvoice) {
		// 存储层唯一索引兜底: 并发场景下另一次尝试先落账了
		att.Outcome = domain.OutcomeDuplicate
		return att
	}
	if err != nil {
		// 角色已授予但没记上账。不做补偿回收, 宁可少拦一次
		// 也不坑已经拿到角色的用户, 只把不一致明确记下来
		s.logger.Error("台账写入失败, 角色已授予但发票未记账",
			elog.FieldErr(err),
			elog.String("invoice_id", req.InvoiceID),
			elog.String("user_id", req.UserID))
		att.Outcome = domain.OutcomeInternalFailed
		return att
	}

	att.Outcome = domain.OutcomeCompleted
	s.produceRedemptionEvent(ctx, att)
	return att
}

// produceRedemptionEvent 尽力而为。投递失败只记日志, 不影响已完成的兑换
func (s *service) produceRedemptionEvent(ctx context.Context, att domain.Attempt) {
	evt := event.RedemptionEvent{
		Key:        s.eventKeyGenerator(),
		AttemptID:  att.ID,
		UserID:     att.Request.UserID,
		Username:   att.Request.Username,
		GuildID:    att.Request.GuildID,
		InvoiceID:  att.Request.InvoiceID,
		Status:     att.InvoiceStatus,
		RedeemedAt: time.Now().UnixMilli(),
	}
	if err := s.producer.Produce(ctx, evt); err != nil {
		s.logger.Error("发送兑换成功事件失败",
			elog.FieldErr(err),
			elog.Any("event", evt))
	}
}

func (s *service) lockFor(invoiceId string) *sync.Mutex {
	mu, _ := s.locks.LoadOrStore(invoiceId, &sync.Mutex{})
	return mu
}
