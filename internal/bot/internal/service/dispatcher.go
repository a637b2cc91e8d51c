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

	"github.com/gotomicro/ego/core/elog"
	"github.com/ogsware/redeembot/internal/redemption"
)

// Action 入站事件处理完后需要对用户做出的动作
type Action uint8

const (
	ActionNone Action = iota
	// ActionShowModal 弹出发票ID输入框
	ActionShowModal
	// ActionReply 发一条仅提交者可见的回复
	ActionReply
)

type Reaction struct {
	Action  Action
	Message string
}

// Dispatcher 入站交互事件的唯一入口。按钮只负责弹输入框,
// 表单提交才会进入兑换流程
type Dispatcher struct {
	svc    redemption.Service
	logger *elog.Component
}

func NewDispatcher(svc redemption.Service) *Dispatcher {
	return &Dispatcher{
		svc:    svc,
		logger: elog.DefaultLogger,
	}
}

func (d *Dispatcher) Dispatch(ctx context.Context, it redemption.Interaction) Reaction {
	switch it.Type {
	case redemption.InteractionTypeButtonActivated:
		if it.CustomID != redemption.ButtonRedeemID {
			return Reaction{Action: ActionNone}
		}
		return Reaction{Action: ActionShowModal}
	case redemption.InteractionTypeFormSubmitted:
		if it.CustomID != redemption.ModalRedeemID {
			return Reaction{Action: ActionNone}
		}
		att := d.svc.Redeem(ctx, redemption.RedemptionRequest{
			UserID:    it.UserID,
			Username:  it.Username,
			GuildID:   it.GuildID,
			InvoiceID: it.Fields[redemption.FieldInvoiceID],
		})
		d.logger.Info("兑换尝试结束",
			elog.Any("attempt_id", att.ID),
			elog.String("invoice_id", att.Request.InvoiceID),
			elog.String("user_id", att.Request.UserID),
			elog.Any("outcome", att.Outcome))
		return Reaction{
			Action:  ActionReply,
			Message: outcomeMessage(att.Outcome),
		}
	default:
		return Reaction{Action: ActionNone}
	}
}

// outcomeMessage 终态和用户可见文案一一对应。
// 上游故障和内部故障对用户只呈现同一句兜底话术, 细节在日志里
func outcomeMessage(o redemption.Outcome) string {
	switch o {
	case redemption.OutcomeCompleted:
		return "✅ Invoice verified. You have been given the Client role!"
	case redemption.OutcomeDuplicate:
		return "⚠️ This invoice has already been redeemed."
	case redemption.OutcomeNotFound:
		return "❌ Invoice not found."
	case redemption.OutcomeNotCompleted:
		return "⏳ This invoice is not completed yet."
	case redemption.OutcomeRoleMissing:
		return "⚠️ \"Client\" role not found."
	default:
		return "❌ An error occurred while checking your invoice. Please try again later."
	}
}
