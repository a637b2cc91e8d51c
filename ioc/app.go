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
	"github.com/bwmarrin/discordgo"
	"github.com/gotomicro/ego/server/egin"
	"github.com/ogsware/redeembot/internal/bot"
)

type App struct {
	Web  *egin.Component
	Sess *discordgo.Session
	Bot  *bot.Module
}
