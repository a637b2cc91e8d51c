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

package invoice

import (
	"net/http"
	"time"

	"github.com/google/wire"
	"github.com/ogsware/redeembot/internal/invoice/internal/domain"
	"github.com/ogsware/redeembot/internal/invoice/internal/service"
)

type Module struct {
	Svc service.Service
}

type Service = service.Service
type Invoice = domain.Invoice

const StatusCompleted = domain.StatusCompleted

// Config SellAuth 店铺凭证, 由启动配置注入
type Config struct {
	ShopID string
	APIKey string
}

var (
	ErrInvoiceNotFound     = service.ErrInvoiceNotFound
	ErrUpstreamUnavailable = service.ErrUpstreamUnavailable
	ErrMalformedResponse   = service.ErrMalformedResponse
	ErrBadCredentials      = service.ErrBadCredentials
)

const (
	defaultBaseURL = "https://api.sellauth.com"
	// 唯一一次出网调用必须有界, 宁可报上游不可用也不挂起
	defaultTimeout = 10 * time.Second
)

func InitModule(cfg Config) (*Module, error) {
	wire.Build(wire.Struct(new(Module), "*"),
		InitService,
	)
	return new(Module), nil
}

func InitService(cfg Config) Service {
	return service.NewSellAuthService(defaultBaseURL, cfg.ShopID, cfg.APIKey, &http.Client{
		Timeout: defaultTimeout,
	})
}
