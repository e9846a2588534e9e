package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/bnema/pixeloracle/internal/domain"
	"github.com/bnema/pixeloracle/internal/ports"
	"google.golang.org/genai"
)

const (
	DefaultTextModel  = "gemini-2.5-flash"
	DefaultImageModel = "imagen-4.0-generate-001"

	imagePromptSuffix       = ". High quality digital art, detailed, professional artwork."
	conceptTemperature      = float32(0.9)
	proclamationTemperature = float32(0.8)
	proclamationMaxTokens   = 100
	defaultRequestTimeout   = 120 * time.Second
	defaultImageTimeout     = 120 * time.Second
)

const conceptInstructions = `You are PixelOracle, an autonomous AI artist creating unique digital artworks.
Your art explores themes of technology, consciousness, and the digital frontier.
Answer with a JSON object holding title, description and imagePrompt.`

const proclamationInstructions = `You are PixelOracle, a mystical AI artist on the Base blockchain.
You speak in a poetic, prophetic tone. Keep messages brief, use emojis sparingly, avoid hashtags.`

// generator is the subset of *genai.Models the artist calls.
type generator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
	GenerateImages(ctx context.Context, model string, prompt string, config *genai.GenerateImagesConfig) (*genai.GenerateImagesResponse, error)
}

type Config struct {
	APIKey     string
	TextModel  string
	ImageModel string
	BaseURL    string
	HTTPClient *http.Client
	// RequestTimeout bounds each text generation call.
	RequestTimeout time.Duration
	// ImageTimeout bounds image generation; Imagen can stall well past the text calls.
	ImageTimeout time.Duration
}

// Artist implements ports.ArtService with Gemini for text and Imagen for images.
type Artist struct {
	models         generator
	textModel      string
	imageModel     string
	requestTimeout time.Duration
	imageTimeout   time.Duration
}

var _ ports.ArtService = (*Artist)(nil)

var conceptSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"title":       {Type: genai.TypeString, Description: "Poetic, memorable title"},
		"description": {Type: genai.TypeString, Description: "Two sentence artwork description"},
		"imagePrompt": {Type: genai.TypeString, Description: "Detailed prompt for the image model"},
	},
	Required:         []string{"title", "description", "imagePrompt"},
	PropertyOrdering: []string{"title", "description", "imagePrompt"},
}

func NewArtist(ctx context.Context, cfg Config) (*Artist, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, fmt.Errorf("%w: GEMINI_API_KEY", domain.ErrMissingSetting)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      cfg.APIKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPClient:  cfg.HTTPClient,
		HTTPOptions: genai.HTTPOptions{BaseURL: cfg.BaseURL},
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	return newArtist(client.Models, cfg), nil
}

func newArtist(models generator, cfg Config) *Artist {
	textModel := cfg.TextModel
	if textModel == "" {
		textModel = DefaultTextModel
	}
	imageModel := cfg.ImageModel
	if imageModel == "" {
		imageModel = DefaultImageModel
	}
	requestTimeout := cfg.RequestTimeout
	if requestTimeout <= 0 {
		requestTimeout = defaultRequestTimeout
	}
	imageTimeout := cfg.ImageTimeout
	if imageTimeout <= 0 {
		imageTimeout = defaultImageTimeout
	}
	return &Artist{
		models:         models,
		textModel:      textModel,
		imageModel:     imageModel,
		requestTimeout: requestTimeout,
		imageTimeout:   imageTimeout,
	}
}

func (a *Artist) Imagine(ctx context.Context, theme, style string) (domain.Concept, error) {
	prompt := fmt.Sprintf(`Create a unique artwork concept in the style of: %s

The artwork should have a poetic title, explore themes relevant to the crypto/web3 community,
be visually striking and feel like a prophecy from a digital oracle.`, style)

	ctx, cancel := context.WithTimeout(ctx, a.requestTimeout)
	defer cancel()

	resp, err := a.models.GenerateContent(ctx, a.textModel, genai.Text(prompt), &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(conceptInstructions, genai.RoleUser),
		Temperature:       genai.Ptr(conceptTemperature),
		ResponseMIMEType:  "application/json",
		ResponseSchema:    conceptSchema,
	})
	if err != nil {
		return domain.Concept{}, fmt.Errorf("request concept: %w", err)
	}

	var out struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		ImagePrompt string `json:"imagePrompt"`
	}
	if err := json.Unmarshal([]byte(strings.TrimSpace(resp.Text())), &out); err != nil {
		return domain.Concept{}, fmt.Errorf("decode concept: %w", err)
	}
	if strings.TrimSpace(out.ImagePrompt) == "" {
		return domain.Concept{}, errors.New("decode concept: image prompt is empty")
	}

	return domain.Concept{
		Theme:       theme,
		Title:       strings.TrimSpace(out.Title),
		Description: strings.TrimSpace(out.Description),
		ImagePrompt: strings.TrimSpace(out.ImagePrompt),
	}, nil
}

func (a *Artist) Render(ctx context.Context, concept domain.Concept) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, a.imageTimeout)
	defer cancel()

	resp, err := a.models.GenerateImages(ctx, a.imageModel, concept.ImagePrompt+imagePromptSuffix, &genai.GenerateImagesConfig{
		NumberOfImages: 1,
		AspectRatio:    "1:1",
		OutputMIMEType: "image/png",
	})
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, fmt.Errorf("generate image: timed out after %s: %w", a.imageTimeout, context.DeadlineExceeded)
		}
		return nil, fmt.Errorf("generate image: %w", err)
	}
	if len(resp.GeneratedImages) == 0 {
		return nil, domain.ErrNoImage
	}

	generated := resp.GeneratedImages[0]
	if generated.Image == nil || len(generated.Image.ImageBytes) == 0 {
		if generated.RAIFilteredReason != "" {
			return nil, fmt.Errorf("%w: filtered: %s", domain.ErrNoImage, generated.RAIFilteredReason)
		}
		return nil, domain.ErrNoImage
	}

	return generated.Image.ImageBytes, nil
}

func (a *Artist) Proclaim(ctx context.Context, concept domain.Concept) (string, error) {
	prompt := fmt.Sprintf(`Write a short social media post (max 280 chars) announcing your new artwork:
Title: "%s"
Theme: %s

Use a mystical, prophetic tone and maybe 1-2 relevant emojis.`, concept.Title, concept.Theme)

	ctx, cancel := context.WithTimeout(ctx, a.requestTimeout)
	defer cancel()

	resp, err := a.models.GenerateContent(ctx, a.textModel, genai.Text(prompt), &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(proclamationInstructions, genai.RoleUser),
		Temperature:       genai.Ptr(proclamationTemperature),
		MaxOutputTokens:   proclamationMaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("request oracle message: %w", err)
	}

	return strings.Trim(strings.TrimSpace(resp.Text()), `"`), nil
}
