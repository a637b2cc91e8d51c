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
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/ogsware/redeembot/internal/ledger"
	ledgermocks "github.com/ogsware/redeembot/internal/ledger/mocks"
	"github.com/ogsware/redeembot/internal/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestHandler_ListRedemptions(t *testing.T) {
	testCases := []struct {
		name     string
		mock     func(ctrl *gomock.Controller) ledger.Service
		req      ListRedemptionsReq
		wantCode int
		wantResp ListRedemptionsResp
	}{
		{
			name: "查询成功",
			mock: func(ctrl *gomock.Controller) ledger.Service {
				svc := ledgermocks.NewMockService(ctrl)
				svc.EXPECT().List(gomock.Any(), 0, 10).Return([]ledger.Entry{
					{InvoiceID: "INV-002", Ctime: 1700000002000},
					{InvoiceID: "INV-001", Ctime: 1700000001000},
				}, nil)
				svc.EXPECT().Total(gomock.Any()).Return(int64(2), nil)
				return svc
			},
			req:      ListRedemptionsReq{Offset: 0, Limit: 10},
			wantCode: http.StatusOK,
			wantResp: ListRedemptionsResp{
				Total: 2,
				Redemptions: []Redemption{
					{InvoiceID: "INV-002", RedeemedAt: 1700000002000},
					{InvoiceID: "INV-001", RedeemedAt: 1700000001000},
				},
			},
		},
		{
			name: "空台账",
			mock: func(ctrl *gomock.Controller) ledger.Service {
				svc := ledgermocks.NewMockService(ctrl)
				svc.EXPECT().List(gomock.Any(), 0, 10).Return([]ledger.Entry{}, nil)
				svc.EXPECT().Total(gomock.Any()).Return(int64(0), nil)
				return svc
			},
			req:      ListRedemptionsReq{Offset: 0, Limit: 10},
			wantCode: http.StatusOK,
			wantResp: ListRedemptionsResp{
				Total:       0,
				Redemptions: []Redemption{},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			server := gin.Default()
			hdl := NewHandler(tc.mock(ctrl))
			hdl.PrivateRoutes(server)

			reqBody, err := json.Marshal(tc.req)
			require.NoError(t, err)
			req, err := http.NewRequest(http.MethodPost,
				"/redemptions/list", bytes.NewBuffer(reqBody))
			require.NoError(t, err)
			req.Header.Set("content-type", "application/json")

			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, req)
			require.Equal(t, tc.wantCode, recorder.Code)

			var result test.Result[ListRedemptionsResp]
			require.NoError(t, json.NewDecoder(recorder.Body).Decode(&result))
			assert.Equal(t, tc.wantResp, result.Data)
		})
	}
}

func TestHandler_ListRedemptions_Failed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := ledgermocks.NewMockService(ctrl)
	svc.EXPECT().List(gomock.Any(), 0, 10).Return(nil, errors.New("mock err"))
	svc.EXPECT().Total(gomock.Any()).Return(int64(0), nil).AnyTimes()

	server := gin.Default()
	hdl := NewHandler(svc)
	hdl.PrivateRoutes(server)

	req, err := http.NewRequest(http.MethodPost,
		"/redemptions/list", bytes.NewBuffer([]byte(`{"offset":0,"limit":10}`)))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")

	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, req)

	var result test.Result[any]
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&result))
	assert.Equal(t, systemErrorResult.Code, result.Code)
}
