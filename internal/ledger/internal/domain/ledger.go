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

// Entry 台账中的一条已兑换记录。只增不改不删
type Entry struct {
	InvoiceID string
	// Ctime 写入台账的时间, UTC Unix毫秒数。文件后端不保存时间, 此时为 0
	Ctime int64
}
