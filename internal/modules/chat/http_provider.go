package chat

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// HTTPProvider posts the prompt (and optional inline image) to a
// generative image endpoint and expects a base64 image back.
type HTTPProvider struct {
	Endpoint string
	APIKey   string
	Client   *http.Client
}

func NewHTTPProvider(endpoint, apiKey string, timeout time.Duration) *HTTPProvider {
	return &HTTPProvider{
		Endpoint: endpoint,
		APIKey:   apiKey,
		Client:   &http.Client{Timeout: timeout},
	}
}

type generateRequest struct {
	Prompt string       `json:"prompt"`
	Image  *inlineImage `json:"image,omitempty"`
}

type inlineImage struct {
	Data     string `json:"data"` // base64
	MimeType string `json:"mime_type"`
}

type generateResponse struct {
	Image *inlineImage `json:"image"`
	Error string       `json:"error,omitempty"`
}

func (p *HTTPProvider) Generate(ctx context.Context, req Request) (Image, error) {
	body := generateRequest{Prompt: req.Prompt}
	if body.Prompt == "" {
		body.Prompt = "Please describe the image."
	}
	if req.Image != nil {
		body.Image = &inlineImage{
			Data:     base64.StdEncoding.EncodeToString(req.Image.Data),
			MimeType: req.Image.MimeType,
		}
	}
	raw, err := json.Marshal(body)
	if err != nil {
		return Image{}, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.Endpoint, bytes.NewReader(raw))
	if err != nil {
		return Image{}, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if p.APIKey != "" {
		httpReq.Header.Set("x-goog-api-key", p.APIKey)
	}

	resp, err := p.Client.Do(httpReq)
	if err != nil {
		return Image{}, err
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(io.LimitReader(resp.Body, 32<<20))
	if err != nil {
		return Image{}, err
	}
	if resp.StatusCode != http.StatusOK {
		return Image{}, fmt.Errorf("image api: status %d", resp.StatusCode)
	}

	var out generateResponse
	if err := json.Unmarshal(payload, &out); err != nil {
		return Image{}, fmt.Errorf("image api: bad response: %w", err)
	}
	if out.Error != "" {
		return Image{}, fmt.Errorf("image api: %s", out.Error)
	}
	if out.Image == nil || out.Image.Data == "" {
		return Image{}, fmt.Errorf("image api: no image data in response")
	}
	data, err := base64.StdEncoding.DecodeString(out.Image.Data)
	if err != nil {
		return Image{}, fmt.Errorf("image api: bad image encoding: %w", err)
	}
	mime := out.Image.MimeType
	if mime == "" {
		mime = "image/png"
	}
	return Image{Data: data, MimeType: mime}, nil
}
