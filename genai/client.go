package genai

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	defaultBaseURL     = "https://generativelanguage.googleapis.com/v1beta"
	defaultVectorModel = "gemini-2.0-flash"
	defaultImageModel  = "gemini-2.0-flash-preview-image-generation"

	maxResponseBytes = 32 << 20

	// vectorPreamble keeps text-mode models from chatting around the markup.
	vectorPreamble = "Respond with one complete SVG document sized for a " +
		"500 by 500 viewBox and nothing else. No commentary. Draw: "
)

// Client calls a generateContent style endpoint. The exported fields may be
// overridden before first use, mostly by tests pointing BaseURL at a fake.
type Client struct {
	BaseURL     string
	VectorModel string
	ImageModel  string
	HTTPClient  *http.Client

	apiKey string
}

// NewClient returns a ready client for the given API key.
func NewClient(apiKey string) *Client {
	return &Client{
		BaseURL:     defaultBaseURL,
		VectorModel: defaultVectorModel,
		ImageModel:  defaultImageModel,
		HTTPClient:  &http.Client{Timeout: 90 * time.Second},
		apiKey:      apiKey,
	}
}

type inlineData struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"` // base64
}

type part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inlineData,omitempty"`
}

type content struct {
	Parts []part `json:"parts"`
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type apiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
	Error *apiError `json:"error,omitempty"`
}

// GenerateVector asks the vector model for a single SVG document. A wrapping
// markdown fence is stripped, the markup is otherwise returned untouched.
func (c *Client) GenerateVector(ctx context.Context, prompt string) (string, error) {
	req := generateRequest{Contents: []content{{Parts: []part{
		{Text: vectorPreamble + prompt},
	}}}}
	resp, err := c.generate(ctx, c.VectorModel, req)
	if err != nil {
		return "", err
	}
	for _, p := range resp.parts() {
		if p.Text != "" {
			return StripFences(p.Text), nil
		}
	}
	return "", errors.New("no text in model response")
}

// EditImage sends the raw image inline with the prompt and returns the first
// image the model answers with.
func (c *Client) EditImage(ctx context.Context, img []byte, mime, prompt string) ([]byte, error) {
	req := generateRequest{Contents: []content{{Parts: []part{
		{InlineData: &inlineData{MimeType: mime, Data: base64.StdEncoding.EncodeToString(img)}},
		{Text: prompt},
	}}}}
	resp, err := c.generate(ctx, c.ImageModel, req)
	if err != nil {
		return nil, err
	}
	for _, p := range resp.parts() {
		if p.InlineData != nil {
			out, err := base64.StdEncoding.DecodeString(p.InlineData.Data)
			if err != nil {
				return nil, fmt.Errorf("decoding image data: %w", err)
			}
			return out, nil
		}
	}
	return nil, errors.New("no image in model response")
}

// parts flattens the first candidate's content.
func (r *generateResponse) parts() []part {
	if len(r.Candidates) == 0 {
		return nil
	}
	return r.Candidates[0].Content.Parts
}

func (c *Client) generate(ctx context.Context, model string, payload generateRequest) (*generateResponse, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encoding request: %w", err)
	}
	url := fmt.Sprintf("%s/models/%s:generateContent",
		strings.TrimSuffix(c.BaseURL, "/"), model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling %s: %w", model, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}
	var out generateResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decoding response (%s): %w", resp.Status, err)
	}
	// The API reports failures both in the status and as a JSON error
	// payload; prefer the payload, it carries the useful message.
	if out.Error != nil {
		return nil, fmt.Errorf("model error %d: %s", out.Error.Code, out.Error.Message)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}
	return &out, nil
}

// StripFences removes one wrapping markdown code fence, which models love
// to add around markup no matter the instructions.
func StripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if i := strings.Index(s, "\n"); i >= 0 {
		s = s[i+1:] // drop the language tag line
	}
	if i := strings.LastIndex(s, "```"); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}
