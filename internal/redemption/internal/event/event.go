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

package event

const (
	// RedemptionEventName 兑换完成后对外广播的主题
	RedemptionEventName = "redemption_events"

	// ButtonRedeemID 公告消息上的领取按钮
	ButtonRedeemID = "redeem_button"
	// ModalRedeemID 发票ID输入弹窗
	ModalRedeemID = "redeem_modal"
	// FieldInvoiceID 弹窗里的发票ID输入框
	FieldInvoiceID = "invoice_id"
)

// InteractionType 入站交互事件的类型标签
type InteractionType uint8

const (
	InteractionTypeUnknown InteractionType = iota
	// InteractionTypeButtonActivated 用户点了领取按钮, 尚未进入兑换流程
	InteractionTypeButtonActivated
	// InteractionTypeFormSubmitted 用户提交了发票ID, 触发兑换流程
	InteractionTypeFormSubmitted
)

// Interaction 平台回调事件的统一入站表示, 屏蔽 Discord 的事件分发细节
type Interaction struct {
	Type     InteractionType
	CustomID string
	UserID   string
	Username string
	GuildID  string
	// Fields 表单提交携带的字段, 按钮事件为空
	Fields map[string]string
}

// RedemptionEvent 兑换成功事件。仅在 Completed 之后尽力投递,
// 投递失败不影响已提交的兑换结果
type RedemptionEvent struct {
	Key        string `json:"key"`
	AttemptID  int64  `json:"attemptId"`
	UserID     string `json:"userId"`
	Username   string `json:"username"`
	GuildID    string `json:"guildId"`
	InvoiceID  string `json:"invoiceId"`
	Status     string `json:"status"`
	RedeemedAt int64  `json:"redeemedAt"`
}
