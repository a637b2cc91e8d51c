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

package web

import "github.com/ecodeclub/ginx"

var systemErrorResult = ginx.Result{
	Code: 501001,
	Msg:  "系统错误",
}

type ListRedemptionsReq struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

type Redemption struct {
	InvoiceID string `json:"invoiceId"`
	// RedeemedAt 落账时间, UTC Unix毫秒数。文件后端没有时间, 为 0
	RedeemedAt int64 `json:"redeemedAt"`
}

type ListRedemptionsResp struct {
	Total       int64        `json:"total"`
	Redemptions []Redemption `json:"redemptions"`
}
