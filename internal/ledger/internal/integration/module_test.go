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

//go:build e2e

package integration

import (
	"context"
	"fmt"
	"testing"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ego-component/egorm"
	"github.com/lithammer/shortuuid/v4"
	"github.com/ogsware/redeembot/internal/ledger"
	testioc "github.com/ogsware/redeembot/internal/test/ioc"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

func TestLedgerModule(t *testing.T) {
	suite.Run(t, new(ModuleTestSuite))
}

type ModuleTestSuite struct {
	suite.Suite
	db  *egorm.Component
	svc ledger.Service
}

func (s *ModuleTestSuite) SetupSuite() {
	s.db = testioc.InitDB()
	m, err := ledger.InitModule(s.db, testioc.InitCache())
	require.NoError(s.T(), err)
	s.svc = m.Svc
}

func (s *ModuleTestSuite) TearDownTest() {
	err := s.db.Exec("TRUNCATE TABLE `used_invoices`").Error
	require.NoError(s.T(), err)
}

func (s *ModuleTestSuite) TestAppendAndContains() {
	t := s.T()
	ctx := context.Background()
	// 正向结论会进缓存, 用不重复的ID避免跨次运行互相污染
	id := fmt.Sprintf("INV-%s", shortuuid.New())

	used, err := s.svc.Contains(ctx, id)
	require.NoError(t, err)
	require.False(t, used)

	require.NoError(t, s.svc.Append(ctx, id))

	used, err = s.svc.Contains(ctx, id)
	require.NoError(t, err)
	require.True(t, used)
}

func (s *ModuleTestSuite) TestAppendDuplicated() {
	t := s.T()
	ctx := context.Background()

	require.NoError(t, s.svc.Append(ctx, "INV-001"))
	err := s.svc.Append(ctx, "INV-001")
	require.ErrorIs(t, err, ledger.ErrDuplicatedInvoice)

	total, err := s.svc.Total(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(1), total)
}

func (s *ModuleTestSuite) TestListNewestFirst() {
	t := s.T()
	ctx := context.Background()

	ids := []string{"INV-001", "INV-002", "INV-003"}
	for _, id := range ids {
		require.NoError(t, s.svc.Append(ctx, id))
	}

	entries, err := s.svc.List(ctx, 0, 2)
	require.NoError(t, err)
	require.Equal(t, 2, len(entries))
	got := slice.Map(entries, func(idx int, src ledger.Entry) string {
		return src.InvoiceID
	})
	require.Equal(t, []string{"INV-003", "INV-002"}, got)
	for _, e := range entries {
		require.True(t, e.Ctime > 0)
	}

	total, err := s.svc.Total(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(3), total)
}
