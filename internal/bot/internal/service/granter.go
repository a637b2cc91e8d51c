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
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/ogsware/redeembot/internal/redemption"
)

// DiscordRoleGranter 在服务器里授予配置的客户角色。
// 先查角色是否存在, 配置错了要报 ErrRoleNotFound 而不是内部错误
type DiscordRoleGranter struct {
	sess   *discordgo.Session
	roleId string
}

var _ redemption.RoleGranter = (*DiscordRoleGranter)(nil)

func NewDiscordRoleGranter(sess *discordgo.Session, roleId string) *DiscordRoleGranter {
	return &DiscordRoleGranter{
		sess: sess,
		// roleId 来自启动配置, 这里不校验非空, 启动时已经拦过
		roleId: roleId,
	}
}

func (g *DiscordRoleGranter) GrantRole(ctx context.Context, guildId string, userId string) error {
	roles, err := g.sess.GuildRoles(guildId, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("获取服务器角色列表失败: %w", err)
	}
	found := false
	for _, r := range roles {
		if r.ID == g.roleId {
			found = true
			break
		}
	}
	if !found {
		return redemption.ErrRoleNotFound
	}
	if err = g.sess.GuildMemberRoleAdd(guildId, userId, g.roleId, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("添加角色失败: %w", err)
	}
	return nil
}
