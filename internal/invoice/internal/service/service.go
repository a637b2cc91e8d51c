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

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gotomicro/ego/core/elog"
	"github.com/ogsware/redeembot/internal/invoice/internal/domain"
)

var (
	// ErrInvoiceNotFound 店铺发票列表里没有这个ID。这是预期内的结果, 不算上游故障
	ErrInvoiceNotFound = errors.New("发票不存在")
	// ErrUpstreamUnavailable 网络失败或非 2xx 响应。单次调用不重试, 由调用方决定
	ErrUpstreamUnavailable = errors.New("SellAuth 服务不可用")
	// ErrMalformedResponse 响应体不是预期的 JSON 结构
	ErrMalformedResponse = errors.New("SellAuth 响应格式错误")
	// ErrBadCredentials 店铺ID或API Key为空。启动时已校验过, 这里兜底防止发出非法请求
	ErrBadCredentials = errors.New("SellAuth 凭证缺失")
)

// HTTPClient 便于测试时 mock
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

//go:generate mockgen -source=./service.go -package=invoicemocks -destination=../../mocks/invoice.mock.go -typed Service
type Service interface {
	// FindByUniqueID 拉取店铺发票列表, 精确匹配 unique_id。
	// 找不到返回 ErrInvoiceNotFound
	FindByUniqueID(ctx context.Context, uniqueId string) (domain.Invoice, error)
}

type SellAuthService struct {
	baseURL string
	shopId  string
	apiKey  string
	client  HTTPClient
	logger  *elog.Component
}

var _ Service = (*SellAuthService)(nil)

func NewSellAuthService(baseURL string, shopId string, apiKey string, client HTTPClient) *SellAuthService {
	return &SellAuthService{
		baseURL: baseURL,
		shopId:  shopId,
		apiKey:  apiKey,
		client:  client,
		logger:  elog.DefaultLogger,
	}
}

type invoicePayload struct {
	UniqueId string `json:"unique_id"`
	Status   string `json:"status"`
	Email    string `json:"email"`
}

type listInvoicesResp struct {
	Data []invoicePayload `json:"data"`
}

func (s *SellAuthService) FindByUniqueID(ctx context.Context, uniqueId string) (domain.Invoice, error) {
	if strings.TrimSpace(s.shopId) == "" || strings.TrimSpace(s.apiKey) == "" {
		return domain.Invoice{}, ErrBadCredentials
	}

	url := fmt.Sprintf("%s/v1/shops/%s/invoices", s.baseURL, s.shopId)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return domain.Invoice{}, fmt.Errorf("%w: 创建请求失败: %v", ErrUpstreamUnavailable, err)
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return domain.Invoice{}, fmt.Errorf("%w: 请求失败: %v", ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.Invoice{}, fmt.Errorf("%w: 读取响应失败: %v", ErrUpstreamUnavailable, err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		s.logger.Error("拉取发票列表失败",
			elog.Int("status_code", resp.StatusCode),
			elog.String("shop_id", s.shopId))
		return domain.Invoice{}, fmt.Errorf("%w: 状态码 %d", ErrUpstreamUnavailable, resp.StatusCode)
	}

	var res listInvoicesResp
	if err = json.Unmarshal(body, &res); err != nil {
		return domain.Invoice{}, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	// 能解析但没有 data 列表的响应不符合约定的结构,
	// 不能当成"发票不存在", 空列表才是
	if res.Data == nil {
		return domain.Invoice{}, fmt.Errorf("%w: 缺少 data 列表", ErrMalformedResponse)
	}

	for _, inv := range res.Data {
		if inv.UniqueId == uniqueId {
			return domain.Invoice{
				UniqueID: inv.UniqueId,
				Status:   inv.Status,
				Email:    inv.Email,
			}, nil
		}
	}
	return domain.Invoice{}, ErrInvoiceNotFound
}
