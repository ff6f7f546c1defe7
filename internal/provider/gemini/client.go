// Package gemini implements pipeline.ContentProvider against a Gemini-style
// generateContent HTTP API.
package gemini

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/geniastudio/genia/internal/models"
	"github.com/geniastudio/genia/internal/pipeline"
)

const (
	textModel  = "gemini-2.5-flash"
	imageModel = "gemini-2.5-flash-image"
)

// Client talks to the content provider over HTTP. It is safe for use from a
// single pipeline run; the underlying http.Client handles its own pooling.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

var _ pipeline.ContentProvider = (*Client)(nil)

// NewClient builds a Client for the given API base URL and key. The timeout
// applies per provider call.
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: timeout},
	}
}

type genRequest struct {
	Contents         []content         `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inlineData,omitempty"`
}

type inlineData struct {
	MIMEType string `json:"mimeType"`
	Data     string `json:"data"`
}

type generationConfig struct {
	ResponseMIMEType   string   `json:"responseMimeType,omitempty"`
	ResponseModalities []string `json:"responseModalities,omitempty"`
}

type genResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// Outline asks the provider for the ordered section structure as JSON.
func (c *Client) Outline(ctx context.Context, p pipeline.OutlineParams) ([]models.Section, error) {
	kindLabel := "livre"
	if p.Kind == models.KindPPT {
		kindLabel = "présentation"
	}

	prompt := fmt.Sprintf(
		"Tu es un auteur expert. Propose la structure d'un %s sur le sujet « %s », en %s, avec exactement %d sections.",
		kindLabel, p.Subject, p.Language, p.SectionCount)
	if p.Kind == models.KindPPT && p.Style != "" {
		prompt += fmt.Sprintf(" Style visuel attendu : %s.", p.Style)
	}
	prompt += ` Réponds uniquement avec un tableau JSON d'objets {"title", "brief", "image_prompt"} : "title" est le titre de la section, "brief" une consigne de rédaction, "image_prompt" une description d'illustration en anglais.`

	resp, err := c.generate(ctx, textModel, genRequest{
		Contents:         []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: &generationConfig{ResponseMIMEType: "application/json"},
	})
	if err != nil {
		return nil, fmt.Errorf("outline request: %w", err)
	}

	text := firstText(resp)
	if text == "" {
		return nil, fmt.Errorf("outline request: empty response")
	}

	var sections []models.Section
	if err := json.Unmarshal([]byte(text), &sections); err != nil {
		return nil, fmt.Errorf("outline request: bad structure: %w", err)
	}
	return sections, nil
}

// WriteSection asks the provider for one section's prose.
func (c *Client) WriteSection(ctx context.Context, p pipeline.SectionParams) (string, error) {
	depthLabel := map[models.Depth]string{
		models.DepthStandard: "clair et accessible",
		models.DepthDetailed: "détaillé, avec des exemples concrets",
		models.DepthExpert:   "expert, approfondi et technique",
	}[p.Depth]

	prompt := fmt.Sprintf(
		"Rédige la section « %s » en %s. Consigne : %s. Niveau de rédaction : %s. Réponds uniquement avec le texte de la section, sans titre ni balisage.",
		p.Title, p.Language, p.Brief, depthLabel)

	resp, err := c.generate(ctx, textModel, genRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return "", fmt.Errorf("section request: %w", err)
	}

	text := firstText(resp)
	if text == "" {
		return "", fmt.Errorf("section request: empty response")
	}
	return text, nil
}

// RenderImage asks the image model for an illustration. A response without
// an image part yields a zero (absent) Image and no error.
func (c *Client) RenderImage(ctx context.Context, prompt string) (models.Image, error) {
	resp, err := c.generate(ctx, imageModel, genRequest{
		Contents:         []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: &generationConfig{ResponseModalities: []string{"IMAGE"}},
	})
	if err != nil {
		return models.Image{}, fmt.Errorf("image request: %w", err)
	}

	for _, cand := range resp.Candidates {
		for _, pt := range cand.Content.Parts {
			if pt.InlineData == nil {
				continue
			}
			data, err := base64.StdEncoding.DecodeString(pt.InlineData.Data)
			if err != nil {
				return models.Image{}, fmt.Errorf("image request: bad payload: %w", err)
			}
			return models.Image{MIME: pt.InlineData.MIMEType, Data: data}, nil
		}
	}
	return models.Image{}, nil
}

func (c *Client) generate(ctx context.Context, model string, reqBody genRequest) (*genResponse, error) {
	body, err := json.Marshal(reqBody)
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", c.baseURL, model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("provider returned %d: %s", resp.StatusCode, b)
	}

	var out genResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}
	return &out, nil
}

func firstText(r *genResponse) string {
	for _, cand := range r.Candidates {
		for _, pt := range cand.Content.Parts {
			if pt.Text != "" {
				return pt.Text
			}
		}
	}
	return ""
}
