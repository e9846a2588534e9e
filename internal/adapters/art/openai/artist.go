package openai

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/bnema/pixeloracle/internal/domain"
	"github.com/bnema/pixeloracle/internal/ports"
	openaisdk "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/responses"
)

const (
	DefaultTextModel = "gpt-4o"

	imagePromptSuffix       = ". High quality digital art, 4K resolution, detailed, professional artwork."
	defaultDownloadTimeout  = 60 * time.Second
	defaultRequestTimeout   = 120 * time.Second
	maxImageBytes           = 32 << 20
	conceptTemperature      = 0.9
	proclamationTemperature = 0.8
	proclamationMaxTokens   = 100
)

const conceptInstructions = `You are PixelOracle, an autonomous AI artist creating unique digital artworks.
Your art explores themes of technology, consciousness, and the digital frontier.
Generate creative, evocative art prompts that will produce stunning visuals.`

const proclamationInstructions = `You are PixelOracle, a mystical AI artist on the Base blockchain.
You speak in a poetic, prophetic tone, part artist and part digital sage.
Your messages are brief but memorable, mixing crypto culture with artistic wisdom.
Use emojis sparingly but effectively. Never use hashtags excessively.`

type Config struct {
	APIKey          string
	TextModel       string
	BaseURL         string
	HTTPClient      *http.Client
	DownloadTimeout time.Duration
}

// Artist implements ports.ArtService with the Responses API for text and DALL-E 3 for images.
type Artist struct {
	client          openaisdk.Client
	textModel       string
	httpClient      *http.Client
	downloadTimeout time.Duration
}

var _ ports.ArtService = (*Artist)(nil)

func NewArtist(cfg Config) (*Artist, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, fmt.Errorf("%w: OPENAI_API_KEY", domain.ErrMissingSetting)
	}

	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
		option.WithRequestTimeout(defaultRequestTimeout),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	} else {
		opts = append(opts, option.WithHTTPClient(httpClient))
	}

	model := cfg.TextModel
	if model == "" {
		model = DefaultTextModel
	}
	timeout := cfg.DownloadTimeout
	if timeout <= 0 {
		timeout = defaultDownloadTimeout
	}

	return &Artist{
		client:          openaisdk.NewClient(opts...),
		textModel:       model,
		httpClient:      httpClient,
		downloadTimeout: timeout,
	}, nil
}

func (a *Artist) Imagine(ctx context.Context, theme, style string) (domain.Concept, error) {
	input := fmt.Sprintf(`Create a unique artwork concept in the style of: %s

The artwork should:
- Have a poetic, memorable title
- Explore themes relevant to the crypto/web3 community
- Be visually striking and unique
- Feel like a prophecy or vision from a digital oracle`, style)

	params := responses.ResponseNewParams{
		Model:        a.textModel,
		Instructions: openaisdk.String(conceptInstructions),
		Temperature:  openaisdk.Float(conceptTemperature),
		Input: responses.ResponseNewParamsInputUnion{
			OfInputItemList: []responses.ResponseInputItemUnionParam{
				responses.ResponseInputItemParamOfMessage(input, responses.EasyInputMessageRoleUser),
			},
		},
		Text: responses.ResponseTextConfigParam{
			Format: responses.ResponseFormatTextConfigUnionParam{
				OfJSONSchema: &responses.ResponseFormatTextJSONSchemaConfigParam{
					Name:        "ArtworkConcept",
					Schema:      conceptSchema,
					Strict:      openaisdk.Bool(true),
					Description: openaisdk.String("Artwork concept JSON"),
					Type:        "json_schema",
				},
			},
		},
	}

	resp, err := a.client.Responses.New(ctx, params)
	if err != nil {
		return domain.Concept{}, fmt.Errorf("request concept: %w", err)
	}

	var out conceptResponse
	if err := decodeModelJSON(resp.OutputText(), &out); err != nil {
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
	resp, err := a.client.Images.Generate(ctx, openaisdk.ImageGenerateParams{
		Model:          openaisdk.ImageModelDallE3,
		Prompt:         concept.ImagePrompt + imagePromptSuffix,
		N:              openaisdk.Int(1),
		Size:           openaisdk.ImageGenerateParamsSize1024x1024,
		Quality:        openaisdk.ImageGenerateParamsQualityHD,
		Style:          openaisdk.ImageGenerateParamsStyleVivid,
		ResponseFormat: openaisdk.ImageGenerateParamsResponseFormatURL,
	})
	if err != nil {
		return nil, fmt.Errorf("generate image: %w", err)
	}
	if len(resp.Data) == 0 || resp.Data[0].URL == "" {
		return nil, domain.ErrNoImage
	}

	return a.download(ctx, resp.Data[0].URL)
}

func (a *Artist) Proclaim(ctx context.Context, concept domain.Concept) (string, error) {
	input := fmt.Sprintf(`Write a short social media post (max 280 chars) announcing your new artwork:
Title: "%s"
Theme: %s

Include:
- A mystical/prophetic tone
- Reference to the artwork
- Maybe 1-2 relevant emojis
- A sense of being an autonomous AI creating art`, concept.Title, concept.Theme)

	resp, err := a.client.Responses.New(ctx, responses.ResponseNewParams{
		Model:           a.textModel,
		Instructions:    openaisdk.String(proclamationInstructions),
		Temperature:     openaisdk.Float(proclamationTemperature),
		MaxOutputTokens: openaisdk.Int(proclamationMaxTokens),
		Input: responses.ResponseNewParamsInputUnion{
			OfInputItemList: []responses.ResponseInputItemUnionParam{
				responses.ResponseInputItemParamOfMessage(input, responses.EasyInputMessageRoleUser),
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("request oracle message: %w", err)
	}

	return strings.Trim(strings.TrimSpace(resp.OutputText()), `"`), nil
}

func (a *Artist) download(ctx context.Context, url string) ([]byte, error) {
	downloadCtx, cancel := context.WithTimeout(ctx, a.downloadTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(downloadCtx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create image download request: %w", err)
	}

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download image: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("download image: status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxImageBytes))
	if err != nil {
		return nil, fmt.Errorf("read image: %w", err)
	}
	if len(data) == 0 {
		return nil, domain.ErrNoImage
	}

	return data, nil
}
