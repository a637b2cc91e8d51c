//go:build wireinject

package ioc

import (
	"github.com/google/wire"
)

var BaseSet = wire.NewSet(InitRedis, InitCache)

func InitApp() (*App, error) {
	wire.Build(wire.Struct(new(App), "*"),
		BaseSet,
		InitMQ,
		InitDiscordConfig,
		InitDiscord,
		InitRoleGranter,
		InitLedgerModule,
		InitInvoiceModule,
		InitRedemptionModule,
		InitBotModule,
		initGinxServer)
	return new(App), nil
}
