package whatsappclient

import (
	"net/http"
	"time"

	"github.com/dfcastro/commission-tracker-api/internal/config"
)

type Client interface {
	SendText(params SendTextParams) error
}

type WhatsAppClient struct {
	httpClient *http.Client
	config     *config.Config
}

func NewClient(cfg *config.Config) Client {
	return &WhatsAppClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		config: cfg,
	}
}
