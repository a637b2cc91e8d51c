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

package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/ecodeclub/ecache"
)

type RedeemedCache interface {
	GetRedeemed(ctx context.Context, invoiceId string) (bool, error)
	SetRedeemed(ctx context.Context, invoiceId string) error
}

// RedeemedECache 只缓存"已兑换"这一个事实。台账只增不删,
// 正向缓存永远不会过期失效出错, 反向结论必须回源查库
type RedeemedECache struct {
	ec         ecache.Cache
	expiration time.Duration
}

func NewRedeemedECache(ec ecache.Cache, expiration time.Duration) RedeemedCache {
	return &RedeemedECache{
		ec: &ecache.NamespaceCache{
			Namespace: "ledger:redeemed:",
			C:         ec,
		},
		expiration: expiration,
	}
}

func (r *RedeemedECache) GetRedeemed(ctx context.Context, invoiceId string) (bool, error) {
	val, err := r.ec.Get(ctx, r.key(invoiceId)).AsString()
	if err != nil {
		return false, err
	}
	return val == "1", nil
}

func (r *RedeemedECache) SetRedeemed(ctx context.Context, invoiceId string) error {
	return r.ec.Set(ctx, r.key(invoiceId), "1", r.expiration)
}

func (r *RedeemedECache) key(invoiceId string) string {
	return fmt.Sprintf("invoice:%s", invoiceId)
}
