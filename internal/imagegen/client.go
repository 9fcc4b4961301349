// Package imagegen calls a remote Gemini-style image-generation API: one
// prompt, one aspect ratio, exactly one returned image.
package imagegen

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/fixgalleria/fixgalleria/internal/config"
)

const (
	// DefaultBaseURL is the Gemini API endpoint.
	DefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

	// Model is the fixed image-generation model id.
	Model = "gemini-2.5-flash-image"

	// requestTimeout bounds a single generation call. No retry; the user
	// retries by resubmitting.
	requestTimeout = 30 * time.Second
)

// AspectRatio is one of the fixed aspect-ratio selections.
type AspectRatio string

const (
	AspectSquare AspectRatio = "1:1"
	AspectWide   AspectRatio = "16:9"
	AspectTall   AspectRatio = "9:16"
)

// AspectRatios lists the selectable ratios in display order.
func AspectRatios() []AspectRatio {
	return []AspectRatio{AspectSquare, AspectWide, AspectTall}
}

// ParseAspectRatio validates a user-supplied ratio string.
func ParseAspectRatio(s string) (AspectRatio, error) {
	switch AspectRatio(s) {
	case AspectSquare, AspectWide, AspectTall:
		return AspectRatio(s), nil
	}
	return "", fmt.Errorf("invalid aspect ratio %q (expected 1:1|16:9|9:16)", s)
}

// ErrNoAPIKey is returned before any network I/O when the credential is not
// configured.
var ErrNoAPIKey = errors.New("missing GEMINI_API_KEY")

// Image is one decoded generation result.
type Image struct {
	Data     []byte
	MIMEType string
}

type Client struct {
	apiKey  string
	baseURL string
	httpc   *http.Client
}

func New(cfg *config.Config) *Client {
	base := cfg.APIBase
	if base == "" {
		base = DefaultBaseURL
	}
	return &Client{
		apiKey:  cfg.APIKey,
		baseURL: base,
		httpc:   &http.Client{Timeout: requestTimeout},
	}
}

// Wire types, trimmed to the fields this client uses.

type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
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
	ResponseModalities []string    `json:"responseModalities"`
	CandidateCount     int         `json:"candidateCount"`
	ImageConfig        imageConfig `json:"imageConfig"`
}

type imageConfig struct {
	AspectRatio string `json:"aspectRatio"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
	Error *apiError `json:"error"`
}

type apiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  string `json:"status"`
}

// Generate performs a single generation call and decodes the inline image
// from the first candidate. Callers enforce at-most-one-in-flight by
// disabling their trigger while a request is outstanding.
func (c *Client) Generate(ctx context.Context, prompt string, aspect AspectRatio) (Image, error) {
	if c.apiKey == "" {
		return Image{}, ErrNoAPIKey
	}

	reqBody := generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: generationConfig{
			ResponseModalities: []string{"IMAGE"},
			CandidateCount:     1,
			ImageConfig:        imageConfig{AspectRatio: string(aspect)},
		},
	}
	b, err := json.Marshal(reqBody)
	if err != nil {
		return Image{}, err
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, Model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return Image{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return Image{}, fmt.Errorf("image generation request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 64<<20))
	if err != nil {
		return Image{}, fmt.Errorf("read image generation response: %w", err)
	}

	var out generateResponse
	if err := json.Unmarshal(body, &out); err != nil {
		if resp.StatusCode != http.StatusOK {
			return Image{}, fmt.Errorf("image generation failed: %s", resp.Status)
		}
		return Image{}, fmt.Errorf("decode image generation response: %w", err)
	}
	if out.Error != nil {
		return Image{}, fmt.Errorf("image generation failed: %s", out.Error.Message)
	}
	if resp.StatusCode != http.StatusOK {
		return Image{}, fmt.Errorf("image generation failed: %s", resp.Status)
	}

	for _, cand := range out.Candidates {
		for _, p := range cand.Content.Parts {
			if p.InlineData == nil || p.InlineData.Data == "" {
				continue
			}
			data, err := base64.StdEncoding.DecodeString(p.InlineData.Data)
			if err != nil {
				return Image{}, fmt.Errorf("decode image data: %w", err)
			}
			mt := p.InlineData.MIMEType
			if mt == "" {
				mt = "image/png"
			}
			return Image{Data: data, MIMEType: mt}, nil
		}
	}
	return Image{}, errors.New("image generation returned no image")
}
