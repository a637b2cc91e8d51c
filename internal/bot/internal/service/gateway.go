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

	"github.com/bwmarrin/discordgo"
	"github.com/gotomicro/ego/core/elog"
	"github.com/ogsware/redeembot/internal/redemption"
)

// InteractionGateway 把 Discord 的回调事件翻译成统一的入站事件,
// 再把 Dispatcher 的决定翻译回 Discord 的响应
type InteractionGateway struct {
	sess       *discordgo.Session
	dispatcher *Dispatcher
	logger     *elog.Component
}

func NewInteractionGateway(sess *discordgo.Session, dispatcher *Dispatcher) *InteractionGateway {
	return &InteractionGateway{
		sess:       sess,
		dispatcher: dispatcher,
		logger:     elog.DefaultLogger,
	}
}

func (g *InteractionGateway) Register() {
	g.sess.AddHandler(g.handleInteraction)
}

func (g *InteractionGateway) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	it, ok := toInteraction(i)
	if !ok {
		return
	}
	reaction := g.dispatcher.Dispatch(context.Background(), it)

	var err error
	switch reaction.Action {
	case ActionShowModal:
		err = s.InteractionRespond(i.Interaction, invoiceModal())
	case ActionReply:
		err = s.InteractionRespond(i.Interaction, ephemeralReply(reaction.Message))
	default:
		return
	}
	if err != nil {
		g.logger.Error("响应交互失败",
			elog.FieldErr(err),
			elog.String("custom_id", it.CustomID),
			elog.String("user_id", it.UserID))
	}
}

func toInteraction(i *discordgo.InteractionCreate) (redemption.Interaction, bool) {
	user := interactionUser(i)
	if user == nil {
		return redemption.Interaction{}, false
	}
	switch i.Type {
	case discordgo.InteractionMessageComponent:
		return redemption.Interaction{
			Type:     redemption.InteractionTypeButtonActivated,
			CustomID: i.MessageComponentData().CustomID,
			UserID:   user.ID,
			Username: user.String(),
			GuildID:  i.GuildID,
		}, true
	case discordgo.InteractionModalSubmit:
		data := i.ModalSubmitData()
		return redemption.Interaction{
			Type:     redemption.InteractionTypeFormSubmitted,
			CustomID: data.CustomID,
			UserID:   user.ID,
			Username: user.String(),
			GuildID:  i.GuildID,
			Fields:   textInputValues(data),
		}, true
	default:
		return redemption.Interaction{}, false
	}
}

func interactionUser(i *discordgo.InteractionCreate) *discordgo.User {
	if i.Member != nil {
		return i.Member.User
	}
	return i.User
}

func textInputValues(data discordgo.ModalSubmitInteractionData) map[string]string {
	fields := make(map[string]string)
	for _, c := range data.Components {
		row, ok := c.(*discordgo.ActionsRow)
		if !ok {
			continue
		}
		for _, rc := range row.Components {
			if input, ok := rc.(*discordgo.TextInput); ok {
				fields[input.CustomID] = input.Value
			}
		}
	}
	return fields
}

func invoiceModal() *discordgo.InteractionResponse {
	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseModal,
		Data: &discordgo.InteractionResponseData{
			CustomID: redemption.ModalRedeemID,
			Title:    "Enter Your Invoice ID",
			Components: []discordgo.MessageComponent{
				discordgo.ActionsRow{
					Components: []discordgo.MessageComponent{
						discordgo.TextInput{
							CustomID: redemption.FieldInvoiceID,
							Label:    "SellAuth Invoice ID",
							Style:    discordgo.TextInputShort,
							Required: true,
						},
					},
				},
			},
		},
	}
}

func ephemeralReply(content string) *discordgo.InteractionResponse {
	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	}
}
