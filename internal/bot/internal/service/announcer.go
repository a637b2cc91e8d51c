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
	"github.com/bwmarrin/discordgo"
	"github.com/gotomicro/ego/core/elog"
	"github.com/ogsware/redeembot/internal/redemption"
)

const announcementDescription = `
If you have purchased through **CoreX**, please use our bot to claim the Customer role.

__**How to Claim Your Customer Role:**__
• Click the **Claim Role** button below
• Enter your **Invoice ID** when prompted
• The bot will automatically grant you the role if your invoice is **completed.**
`

// Announcer 机器人上线后在兑换频道发领取入口。
// 发不出去只记日志, 不影响兑换流程本身
type Announcer struct {
	sess      *discordgo.Session
	guildId   string
	channelId string
	logger    *elog.Component
}

func NewAnnouncer(sess *discordgo.Session, guildId string, channelId string) *Announcer {
	return &Announcer{
		sess:      sess,
		guildId:   guildId,
		channelId: channelId,
		logger:    elog.DefaultLogger,
	}
}

func (a *Announcer) Register() {
	a.sess.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
		a.announce()
	})
}

func (a *Announcer) announce() {
	if _, err := a.sess.Guild(a.guildId); err != nil {
		a.logger.Error("获取服务器失败", elog.FieldErr(err), elog.String("guild_id", a.guildId))
		return
	}
	ch, err := a.sess.Channel(a.channelId)
	if err != nil {
		a.logger.Error("获取兑换频道失败", elog.FieldErr(err), elog.String("channel_id", a.channelId))
		return
	}
	if ch.Type != discordgo.ChannelTypeGuildText {
		a.logger.Error("兑换频道不是文本频道", elog.String("channel_id", a.channelId))
		return
	}
	_, err = a.sess.ChannelMessageSendComplex(a.channelId, &discordgo.MessageSend{
		Embeds: []*discordgo.MessageEmbed{
			{
				Title:       "Claim Your Customer Role",
				Description: announcementDescription,
				Color:       0xFF006A,
			},
		},
		Components: []discordgo.MessageComponent{
			discordgo.ActionsRow{
				Components: []discordgo.MessageComponent{
					discordgo.Button{
						CustomID: redemption.ButtonRedeemID,
						Label:    "Claim Role",
						Style:    discordgo.SecondaryButton,
					},
				},
			},
		},
	})
	if err != nil {
		a.logger.Error("发送领取入口失败", elog.FieldErr(err), elog.String("channel_id", a.channelId))
		return
	}
	a.logger.Info("领取入口已发送", elog.String("channel_id", a.channelId))
}
