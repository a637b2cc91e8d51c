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
	"github.com/ecodeclub/ecache"
	"github.com/gotomicro/ego/core/econf"
	"github.com/ogsware/redeembot/internal/ledger"
)

// InitLedgerModule 根据配置选择台账的存储后端。
// file 后端兼容老版本的 used_invoices.json,默认走 MySQL。
func InitLedgerModule(ec ecache.Cache) *ledger.Module {
	type Config struct {
		Backend string `yaml:"backend"`
		Path    string `yaml:"path"`
	}
	var cfg Config
	err := econf.UnmarshalKey("ledger", &cfg)
	if err != nil {
		panic(err)
	}
	if cfg.Backend == "file" {
		path := cfg.Path
		if path == "" {
			path = "used_invoices.json"
		}
		m, err := ledger.InitFileModule(path, ec)
		if err != nil {
			panic(err)
		}
		return m
	}
	m, err := ledger.InitModule(InitDB(), ec)
	if err != nil {
		panic(err)
	}
	return m
}
