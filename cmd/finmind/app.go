package finmind

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/finmindlabs/finmind/pkg/chat"
	"github.com/finmindlabs/finmind/pkg/config"
	"github.com/finmindlabs/finmind/pkg/history"
	"github.com/finmindlabs/finmind/pkg/logging"
	"github.com/finmindlabs/finmind/pkg/store"
	"github.com/finmindlabs/finmind/pkg/voice"
)

// conversationClient is the backend surface the chat loop depends on.
// chat.Client is the production implementation.
type conversationClient interface {
	SendText(ctx context.Context, userID int64, text string) (chat.Reply, error)
	SendVoice(ctx context.Context, userID int64, clip voice.Clip) (chat.Reply, error)
	AudioURL(path string) string
}

// app bundles the pieces every command needs.
type app struct {
	cfg     *config.AppConfig
	log     zerolog.Logger
	store   *store.Store
	user    store.Identity
	client  conversationClient
	history *history.Service
}

func newApp() (*app, error) {
	cfg, err := config.LoadAppConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	st, err := store.New()
	if err != nil {
		return nil, err
	}

	user, err := st.Identity()
	if err != nil {
		return nil, err
	}

	return &app{
		cfg:     cfg,
		log:     logging.Setup(cfg.LogLevel),
		store:   st,
		user:    user,
		client:  chat.NewClient(cfg.APIURL),
		history: history.NewService(cfg.APIURL),
	}, nil
}
