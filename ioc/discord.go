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

	"github.com/bwmarrin/discordgo"
	"github.com/gotomicro/ego/core/econf"
)

type DiscordConfig struct {
	Token           string `yaml:"token"`
	GuildID         string `yaml:"guildId"`
	RoleID          string `yaml:"roleId"`
	RedeemChannelID string `yaml:"redeemChannelId"`
	AuditChannelID  string `yaml:"auditChannelId"`
}

func InitDiscordConfig() DiscordConfig {
	var cfg DiscordConfig
	err := econf.UnmarshalKey("discord", &cfg)
	if err != nil {
		panic(err)
	}
	// 任何一项缺失都直接拒绝启动
	required := map[string]string{
		"discord.token":           cfg.Token,
		"discord.guildId":         cfg.GuildID,
		"discord.roleId":          cfg.RoleID,
		"discord.redeemChannelId": cfg.RedeemChannelID,
		"discord.auditChannelId":  cfg.AuditChannelID,
	}
	for key, val := range required {
		if val == "" {
			panic(fmt.Sprintf("缺少必要的配置项: %s", key))
		}
	}
	return cfg
}

func InitDiscord(cfg DiscordConfig) *discordgo.Session {
	sess, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		panic(err)
	}
	sess.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMembers |
		discordgo.IntentsGuildMessages
	return sess
}
