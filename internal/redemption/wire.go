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

package redemption

import (
	"github.com/ecodeclub/mq-api"
	"github.com/google/wire"
	"github.com/ogsware/redeembot/internal/invoice"
	"github.com/ogsware/redeembot/internal/ledger"
	"github.com/ogsware/redeembot/internal/redemption/internal/domain"
	"github.com/ogsware/redeembot/internal/redemption/internal/event"
	"github.com/ogsware/redeembot/internal/redemption/internal/service"
	"github.com/ogsware/redeembot/internal/redemption/internal/web"
)

type Module struct {
	Svc service.Service
	Hdl *web.Handler
}

type Service = service.Service
type RoleGranter = service.RoleGranter
type RedemptionRequest = domain.RedemptionRequest
type Attempt = domain.Attempt
type Outcome = domain.Outcome
type Interaction = event.Interaction
type InteractionType = event.InteractionType
type RedemptionEvent = event.RedemptionEvent

const (
	OutcomeCompleted      = domain.OutcomeCompleted
	OutcomeDuplicate      = domain.OutcomeDuplicate
	OutcomeNotFound       = domain.OutcomeNotFound
	OutcomeNotCompleted   = domain.OutcomeNotCompleted
	OutcomeRoleMissing    = domain.OutcomeRoleMissing
	OutcomeUpstreamFailed = domain.OutcomeUpstreamFailed
	OutcomeInternalFailed = domain.OutcomeInternalFailed

	InteractionTypeButtonActivated = event.InteractionTypeButtonActivated
	InteractionTypeFormSubmitted   = event.InteractionTypeFormSubmitted

	RedemptionEventName = event.RedemptionEventName
	ButtonRedeemID      = event.ButtonRedeemID
	ModalRedeemID       = event.ModalRedeemID
	FieldInvoiceID      = event.FieldInvoiceID
)

var ErrRoleNotFound = service.ErrRoleNotFound

// Config 工作流配置。生成器做成函数注入, 方便测试时固定值
type Config struct {
	CompletedStatus    string
	AttemptIDGenerator func() int64
	EventKeyGenerator  func() string
}

func InitModule(ledgerModule *ledger.Module, invoiceModule *invoice.Module,
	granter service.RoleGranter, q mq.MQ, cfg Config) (*Module, error) {
	wire.Build(wire.Struct(new(Module), "*"),
		wire.FieldsOf(new(*ledger.Module), "Svc"),
		wire.FieldsOf(new(*invoice.Module), "Svc"),
		event.NewRedemptionEventProducer,
		initService,
		web.NewHandler,
	)
	return new(Module), nil
}

func initService(cfg Config, ledgerSvc ledger.Service, invoiceSvc invoice.Service,
	granter service.RoleGranter, p event.RedemptionEventProducer) service.Service {
	return service.NewService(ledgerSvc, invoiceSvc, granter, p,
		cfg.CompletedStatus, cfg.AttemptIDGenerator, cfg.EventKeyGenerator)
}
