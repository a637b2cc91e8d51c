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

package bot

import (
	"context"

	"github.com/bwmarrin/discordgo"
	"github.com/ecodeclub/mq-api"
	"github.com/google/wire"
	"github.com/ogsware/redeembot/internal/bot/internal/event"
	"github.com/ogsware/redeembot/internal/bot/internal/service"
	"github.com/ogsware/redeembot/internal/redemption"
)

type Module struct {
	Gateway       *service.InteractionGateway
	Announcer     *service.Announcer
	AuditConsumer *event.AuditEventConsumer
}

// Start 注册 Discord 事件处理器并启动审计消费者。
// 必须在 Session.Open 之前调用, 否则会漏掉 Ready 事件
func (m *Module) Start(ctx context.Context) {
	m.Gateway.Register()
	m.Announcer.Register()
	m.AuditConsumer.Start(ctx)
}

// Config 机器人侧的 Discord 资源配置
type Config struct {
	GuildID         string
	RoleID          string
	RedeemChannelID string
	AuditChannelID  string
}

// NewRoleGranter 给兑换工作流用的角色授予协作者。
// 单独暴露是因为它要先于 redemption 模块构造
func NewRoleGranter(sess *discordgo.Session, roleId string) redemption.RoleGranter {
	return service.NewDiscordRoleGranter(sess, roleId)
}

func InitModule(sess *discordgo.Session, svc redemption.Service, q mq.MQ, cfg Config) (*Module, error) {
	wire.Build(wire.Struct(new(Module), "*"),
		service.NewDispatcher,
		service.NewInteractionGateway,
		initAnnouncer,
		initAuditConsumer,
	)
	return new(Module), nil
}

func initAnnouncer(sess *discordgo.Session, cfg Config) *service.Announcer {
	return service.NewAnnouncer(sess, cfg.GuildID, cfg.RedeemChannelID)
}

func initAuditConsumer(sess *discordgo.Session, q mq.MQ, cfg Config) (*event.AuditEventConsumer, error) {
	return event.NewAuditEventConsumer(sess, q, cfg.AuditChannelID)
}
