package telegramimpl

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/bizbuddy/idea-pipeline/internal/telegram"
	"github.com/bizbuddy/idea-pipeline/pkg/config"
	"github.com/bizbuddy/idea-pipeline/pkg/logger"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	Config *config.Config
	Logger logger.Logger
}

type TelegramImpl struct {
	TgBot  *tgbotapi.BotAPI
	Logger logger.Logger
	Config *config.Config
}

// New connects the bot when Telegram notifications are enabled. With
// notifications disabled the client is constructed without a bot and every
// send is a logged no-op, so the rest of the app never branches on it.
func New(opts Opts) (*TelegramImpl, error) {
	impl := &TelegramImpl{
		Logger: opts.Logger.WithComponent("Telegram"),
		Config: opts.Config,
	}

	if !opts.Config.Telegram.Enabled {
		impl.Logger.Info("Telegram notifications disabled")
		return impl, nil
	}

	tgBot, err := tgbotapi.NewBotAPI(opts.Config.Telegram.Token)
	if err != nil {
		opts.Logger.Error("Error creating bot", "Error", err)
		return nil, err
	}
	impl.TgBot = tgBot

	return impl, nil
}

var _ telegram.Client = (*TelegramImpl)(nil)

// SendToChannel posts text to the configured channel.
func (tg *TelegramImpl) SendToChannel(text string) error {
	if tg.TgBot == nil {
		tg.Logger.Debug("Dropping notification, telegram disabled", "length", len(text))
		return nil
	}

	channelName := "@" + tg.Config.Telegram.Channel
	msg := tgbotapi.NewMessageToChannel(channelName, text)

	if _, err := tg.TgBot.Send(msg); err != nil {
		tg.Logger.Error("Error sending message to channel", "channel", channelName, "error", err)
		return fmt.Errorf("failed to send message to channel: %w", err)
	}

	return nil
}
