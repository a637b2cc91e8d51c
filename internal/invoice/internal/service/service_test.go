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
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ogsware/redeembot/internal/invoice/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSellAuthService_FindByUniqueID(t *testing.T) {
	testCases := []struct {
		name     string
		handler  http.HandlerFunc
		uniqueId string
		wantInv  domain.Invoice
		wantErr  error
	}{
		{
			name: "命中发票",
			handler: func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/v1/shops/shop-1/invoices", r.URL.Path)
				assert.Equal(t, "Bearer key-1", r.Header.Get("Authorization"))
				_, _ = w.Write([]byte(`{"data":[
					{"unique_id":"INV-001","status":"completed","email":"a@b.com"},
					{"unique_id":"INV-002","status":"pending","email":"c@d.com"}
				]}`))
			},
			uniqueId: "INV-002",
			wantInv: domain.Invoice{
				UniqueID: "INV-002",
				Status:   "pending",
				Email:    "c@d.com",
			},
		},
		{
			name: "发票不存在",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"data":[{"unique_id":"INV-001","status":"completed"}]}`))
			},
			uniqueId: "INV-999",
			wantErr:  ErrInvoiceNotFound,
		},
		{
			name: "不做前缀或大小写匹配",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"data":[{"unique_id":"INV-001","status":"completed"}]}`))
			},
			uniqueId: "inv-001",
			wantErr:  ErrInvoiceNotFound,
		},
		{
			name: "上游返回非 2xx",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
			uniqueId: "INV-001",
			wantErr:  ErrUpstreamUnavailable,
		},
		{
			name: "鉴权失败也算上游不可用",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"message":"Unauthenticated."}`))
			},
			uniqueId: "INV-001",
			wantErr:  ErrUpstreamUnavailable,
		},
		{
			name: "合法 JSON 但没有 data 列表",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"message":"ok"}`))
			},
			uniqueId: "INV-001",
			wantErr:  ErrMalformedResponse,
		},
		{
			name: "data 为 null",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"data":null}`))
			},
			uniqueId: "INV-001",
			wantErr:  ErrMalformedResponse,
		},
		{
			name: "响应不是合法 JSON",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`<html>not json</html>`))
			},
			uniqueId: "INV-001",
			wantErr:  ErrMalformedResponse,
		},
		{
			name: "空的发票列表",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"data":[]}`))
			},
			uniqueId: "INV-001",
			wantErr:  ErrInvoiceNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(tc.handler)
			defer server.Close()

			svc := NewSellAuthService(server.URL, "shop-1", "key-1", http.DefaultClient)
			inv, err := svc.FindByUniqueID(context.Background(), tc.uniqueId)
			assert.True(t, errors.Is(err, tc.wantErr))
			assert.Equal(t, tc.wantInv, inv)
		})
	}
}

func TestSellAuthService_FindByUniqueID_BadCredentials(t *testing.T) {
	testCases := []struct {
		name   string
		shopId string
		apiKey string
	}{
		{
			name:   "店铺ID为空",
			shopId: "",
			apiKey: "key-1",
		},
		{
			name:   "API Key 为空白",
			shopId: "shop-1",
			apiKey: "   ",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := NewSellAuthService("http://localhost", tc.shopId, tc.apiKey, http.DefaultClient)
			_, err := svc.FindByUniqueID(context.Background(), "INV-001")
			assert.ErrorIs(t, err, ErrBadCredentials)
		})
	}
}

func TestSellAuthService_FindByUniqueID_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	// 关掉服务再请求, 模拟网络失败
	server.Close()

	svc := NewSellAuthService(server.URL, "shop-1", "key-1", http.DefaultClient)
	_, err := svc.FindByUniqueID(context.Background(), "INV-001")
	require.ErrorIs(t, err, ErrUpstreamUnavailable)
}
