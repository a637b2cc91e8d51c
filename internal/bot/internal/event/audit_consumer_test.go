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
	"errors"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/mq-api/memory"
	"github.com/ogsware/redeembot/internal/redemption"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEmbedSender struct {
	channelId string
	embed     *discordgo.MessageEmbed
	err       error
}

func (f *fakeEmbedSender) ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed,
	options ...discordgo.RequestOption) (*discordgo.Message, error) {
	f.channelId = channelID
	f.embed = embed
	return &discordgo.Message{}, f.err
}

func initTestMQ(t *testing.T) mq.MQ {
	t.Helper()
	q := memory.NewMQ()
	require.NoError(t, q.CreateTopic(context.Background(), redemption.RedemptionEventName, 1))
	return q
}

func produceEvent(t *testing.T, q mq.MQ, evt redemption.RedemptionEvent) {
	t.Helper()
	producer, err := q.Producer(redemption.RedemptionEventName)
	require.NoError(t, err)
	data, err := json.Marshal(evt)
	require.NoError(t, err)
	_, err = producer.Produce(context.Background(), &mq.Message{
		Key:   []byte(evt.Key),
		Value: data,
	})
	require.NoError(t, err)
}

func TestAuditEventConsumer_Consume(t *testing.T) {
	q := initTestMQ(t)
	sender := &fakeEmbedSender{}
	consumer, err := NewAuditEventConsumer(sender, q, "audit-channel")
	require.NoError(t, err)

	produceEvent(t, q, redemption.RedemptionEvent{
		Key:        "key-1",
		AttemptID:  1,
		UserID:     "user-123",
		Username:   "tester",
		GuildID:    "guild-456",
		InvoiceID:  "INV-001",
		Status:     "completed",
		RedeemedAt: time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC).UnixMilli(),
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	require.NoError(t, consumer.Consume(ctx))

	assert.Equal(t, "audit-channel", sender.channelId)
	require.NotNil(t, sender.embed)
	assert.Equal(t, "📥 Invoice Redeemed", sender.embed.Title)
	assert.Equal(t, []*discordgo.MessageEmbedField{
		{Name: "User", Value: "tester (user-123)", Inline: true},
		{Name: "Invoice ID", Value: "INV-001", Inline: true},
		{Name: "Status", Value: "completed", Inline: true},
	}, sender.embed.Fields)
	assert.Equal(t, "2025-01-02T03:04:05Z", sender.embed.Timestamp)
}

func TestAuditEventConsumer_Consume_BadPayload(t *testing.T) {
	q := initTestMQ(t)
	producer, err := q.Producer(redemption.RedemptionEventName)
	require.NoError(t, err)
	_, err = producer.Produce(context.Background(), &mq.Message{
		Value: []byte(`not json`),
	})
	require.NoError(t, err)

	sender := &fakeEmbedSender{}
	consumer, err := NewAuditEventConsumer(sender, q, "audit-channel")
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	assert.Error(t, consumer.Consume(ctx))
	assert.Nil(t, sender.embed)
}

func TestAuditEventConsumer_Consume_SendFailed(t *testing.T) {
	q := initTestMQ(t)
	sender := &fakeEmbedSender{err: errors.New("mock err")}
	consumer, err := NewAuditEventConsumer(sender, q, "audit-channel")
	require.NoError(t, err)

	produceEvent(t, q, redemption.RedemptionEvent{Key: "key-1", InvoiceID: "INV-001"})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	assert.Error(t, consumer.Consume(ctx))
}
