package whatsappclient

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"time"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type SendTextParams struct {
	Phone   string
	Message string
}

type sendTextRequest struct {
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

type sendTextResponse struct {
	MessageID string `json:"messageId"`
	Error     string `json:"error"`
}

// SendText envia uma mensagem de texto pela instância configurada do
// gateway (formato Z-API: /instances/{id}/token/{token}/send-text).
func (c *WhatsAppClient) SendText(params SendTextParams) error {
	ctx, cancel := context.WithTimeout(context.Background(), 45*time.Second)
	defer cancel()

	// Construir a URL da requisição.
	endpoint, err := url.Parse(c.config.WhatsApp.URL)
	if err != nil {
		return fmt.Errorf("erro ao analisar a URL base: %w", err)
	}
	endpoint.Path = path.Join(
		endpoint.Path,
		"instances", c.config.WhatsApp.InstanceID,
		"token", c.config.WhatsApp.InstanceToken,
		"send-text",
	)

	payload, err := json.Marshal(sendTextRequest{
		Phone:   params.Phone,
		Message: params.Message,
	})
	if err != nil {
		return fmt.Errorf("erro ao serializar o corpo da requisição: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("requisição falhou com status: %s", resp.Status)
	}

	var response sendTextResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	if response.Error != "" {
		return fmt.Errorf("gateway recusou o envio: %s", response.Error)
	}

	return nil
}
