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

import (
	"fmt"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
	"github.com/ogsware/redeembot/internal/ledger"
	"golang.org/x/sync/errgroup"
)

var _ ginx.Handler = &Handler{}

// Handler 运营侧查询接口, 给管理员看已兑换的发票
type Handler struct {
	ledgerSvc ledger.Service
}

func NewHandler(ledgerSvc ledger.Service) *Handler {
	return &Handler{ledgerSvc: ledgerSvc}
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/redemptions")
	g.POST("/list", ginx.B[ListRedemptionsReq](h.ListRedemptions))
}

func (h *Handler) ListRedemptions(ctx *ginx.Context, req ListRedemptionsReq) (ginx.Result, error) {
	var (
		eg      errgroup.Group
		entries []ledger.Entry
		total   int64
	)
	eg.Go(func() error {
		var err error
		entries, err = h.ledgerSvc.List(ctx.Request.Context(), req.Offset, req.Limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = h.ledgerSvc.Total(ctx.Request.Context())
		return err
	})
	if err := eg.Wait(); err != nil {
		return systemErrorResult, fmt.Errorf("获取兑换记录失败: %w", err)
	}
	return ginx.Result{
		Data: ListRedemptionsResp{
			Total: total,
			Redemptions: slice.Map(entries, func(idx int, src ledger.Entry) Redemption {
				return Redemption{
					InvoiceID:  src.InvoiceID,
					RedeemedAt: src.Ctime,
				}
			}),
		},
	}, nil
}
