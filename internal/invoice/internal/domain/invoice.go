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

const (
	// StatusCompleted SellAuth 侧表示已付款完成的状态值,
	// 其余状态(pending/refunded等)一律不放行
	StatusCompleted = "completed"
)

// Invoice SellAuth 发票。属于外部商城系统, 只在单次校验的内存里流转, 不落库
type Invoice struct {
	UniqueID string
	Status   string
	Email    string
}
