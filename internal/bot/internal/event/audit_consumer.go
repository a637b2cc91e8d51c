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

package event

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/ecodeclub/mq-api"
	"github.com/gotomicro/ego/core/elog"
	"github.com/ogsware/redeembot/internal/redemption"
)

// EmbedSender 便于测试时 mock, *discordgo.Session 天然实现
type EmbedSender interface {
	ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed,
		options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// AuditEventConsumer 消费兑换成功事件, 往审计频道发一条记录。
// 纯旁路操作: 任何失败都只记日志, 不重试也不影响已完成的兑换
type AuditEventConsumer struct {
	sender    EmbedSender
	consumer  mq.Consumer
	channelId string
	logger    *elog.Component
}

func NewAuditEventConsumer(sender EmbedSender, q mq.MQ, channelId string) (*AuditEventConsumer, error) {
	const groupID = "bot-audit"
	consumer, err := q.Consumer(redemption.RedemptionEventName, groupID)
	if err != nil {
		return nil, err
	}
	return &AuditEventConsumer{
		sender:    sender,
		consumer:  consumer,
		channelId: channelId,
		logger:    elog.DefaultLogger,
	}, nil
}

// Start 后面要考虑借助 ctx 来优雅退出
func (c *AuditEventConsumer) Start(ctx context.Context) {
	go func() {
		for {
			err := c.Consume(ctx)
			if err != nil {
				c.logger.Error("消费兑换成功事件失败", elog.FieldErr(err))
			}
			if ctx.Err() != nil {
				return
			}
		}
	}()
}

func (c *AuditEventConsumer) Consume(ctx context.Context) error {
	msg, err := c.consumer.Consume(ctx)
	if err != nil {
		return fmt.Errorf("获取消息失败: %w", err)
	}

	var evt redemption.RedemptionEvent
	if err = json.Unmarshal(msg.Value, &evt); err != nil {
		return fmt.Errorf("解析消息失败: %w", err)
	}

	_, err = c.sender.ChannelMessageSendEmbed(c.channelId, auditEmbed(evt))
	if err != nil {
		return fmt.Errorf("发送审计消息失败: %w", err)
	}
	return nil
}

func auditEmbed(evt redemption.RedemptionEvent) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title: "📥 Invoice Redeemed",
		Fields: []*discordgo.MessageEmbedField{
			{Name: "User", Value: fmt.Sprintf("%s (%s)", evt.Username, evt.UserID), Inline: true},
			{Name: "Invoice ID", Value: evt.InvoiceID, Inline: true},
			{Name: "Status", Value: evt.Status, Inline: true},
		},
		Color:     0x00FF00,
		Timestamp: time.UnixMilli(evt.RedeemedAt).UTC().Format(time.RFC3339),
		Footer: &discordgo.MessageEmbedFooter{
			Text: "OGSWare | Invoice Log",
		},
	}
}
