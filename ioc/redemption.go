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

package ioc

import (
	"github.com/bwmarrin/snowflake"
	"github.com/ecodeclub/mq-api"
	"github.com/gotomicro/ego/core/econf"
	"github.com/lithammer/shortuuid/v4"
	"github.com/ogsware/redeembot/internal/invoice"
	"github.com/ogsware/redeembot/internal/ledger"
	"github.com/ogsware/redeembot/internal/redemption"
)

func InitRedemptionModule(
	ledgerModule *ledger.Module,
	invoiceModule *invoice.Module,
	granter redemption.RoleGranter,
	q mq.MQ) *redemption.Module {
	status := econf.GetString("sellauth.completedStatus")
	if status == "" {
		status = invoice.StatusCompleted
	}
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	m, err := redemption.InitModule(ledgerModule, invoiceModule, granter, q, redemption.Config{
		CompletedStatus: status,
		AttemptIDGenerator: func() int64 {
			return node.Generate().Int64()
		},
		EventKeyGenerator: func() string {
			return shortuuid.New()
		},
	})
	if err != nil {
		panic(err)
	}
	return m
}
