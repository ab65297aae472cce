// Package whatsapp integra o serviço com o gateway de envio de mensagens.
package whatsapp

import (
	"github.com/dfcastro/commission-tracker-api/infrastructure/integrator/whatsapp/whatsappclient"
	"github.com/dfcastro/commission-tracker-api/internal/config"
)

// WhatsAppIntegrator é a porta usada pelo despachante de mensagens.
type WhatsAppIntegrator interface {
	SendTextMessage(phone, body string) error
}

type Integrator struct {
	cfg    *config.Config
	client whatsappclient.Client
}

func New(cfg *config.Config, client whatsappclient.Client) *Integrator {
	return &Integrator{
		cfg:    cfg,
		client: client,
	}
}

func (i *Integrator) SendTextMessage(phone, body string) error {
	return i.client.SendText(whatsappclient.SendTextParams{
		Phone:   phone,
		Message: body,
	})
}
