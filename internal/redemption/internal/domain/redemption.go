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

package domain

// Outcome 一次兑换尝试的终态。每次尝试有且只有一个终态,
// 用户可见的回复和终态一一对应
type Outcome uint8

const (
	OutcomeUnknown Outcome = iota
	// OutcomeCompleted 校验通过、角色已授予、台账已落账
	OutcomeCompleted
	// OutcomeDuplicate 发票已被兑换过
	OutcomeDuplicate
	// OutcomeNotFound 店铺发票列表里没有这个ID
	OutcomeNotFound
	// OutcomeNotCompleted 发票存在但未完成支付
	OutcomeNotCompleted
	// OutcomeRoleMissing 服务器里找不到配置的角色
	OutcomeRoleMissing
	// OutcomeUpstreamFailed SellAuth 不可用或响应异常
	OutcomeUpstreamFailed
	// OutcomeInternalFailed 台账或角色授予等内部操作失败
	OutcomeInternalFailed
)

// RedemptionRequest 一次兑换请求。只在内存中流转, 回复发出后即丢弃
type RedemptionRequest struct {
	UserID    string
	Username  string
	GuildID   string
	InvoiceID string
}

// Attempt 兑换尝试的结果
type Attempt struct {
	ID      int64
	Request RedemptionRequest
	// InvoiceStatus 校验到的发票状态, 没查到发票时为空
	InvoiceStatus string
	Outcome       Outcome
}
