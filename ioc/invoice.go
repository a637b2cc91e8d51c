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
	"fmt"

	"github.com/gotomicro/ego/core/econf"
	"github.com/ogsware/redeembot/internal/invoice"
)

func InitInvoiceModule() *invoice.Module {
	type Config struct {
		ShopID string `yaml:"shopId"`
		APIKey string `yaml:"apiKey"`
	}
	var cfg Config
	err := econf.UnmarshalKey("sellauth", &cfg)
	if err != nil {
		panic(err)
	}
	required := map[string]string{
		"sellauth.shopId": cfg.ShopID,
		"sellauth.apiKey": cfg.APIKey,
	}
	for key, val := range required {
		if val == "" {
			panic(fmt.Sprintf("缺少必要的配置项: %s", key))
		}
	}
	m, err := invoice.InitModule(invoice.Config{
		ShopID: cfg.ShopID,
		APIKey: cfg.APIKey,
	})
	if err != nil {
		panic(err)
	}
	return m
}
