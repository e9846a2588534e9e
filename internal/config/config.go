package config

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bnema/pixeloracle/internal/domain"
	"github.com/bnema/pixeloracle/internal/ports"
	"github.com/spf13/viper"
)

const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"

	LogFormatJSON    = "json"
	LogFormatConsole = "console"

	secretPrefix = "pixeloracle/"
)

const (
	keyPrivateKey       = "private_key"
	keyContractAddress  = "nft_contract_address"
	keyNetwork          = "network"
	keyRPCURL           = "rpc_url"
	keyArtProvider      = "art_provider"
	keyOpenAIAPIKey     = "openai_api_key"
	keyOpenAIModel      = "openai_model"
	keyGeminiAPIKey     = "gemini_api_key"
	keyPinataAPIKey     = "pinata_api_key"
	keyPinataSecretKey  = "pinata_secret_key"
	keyNeynarAPIKey     = "neynar_api_key"
	keySignerUUID       = "farcaster_signer_uuid"
	keyFarcasterUser    = "farcaster_username"
	keyTwitterAPIKey    = "twitter_api_key"
	keyTwitterAPISecret = "twitter_api_secret"
	keyTwitterToken     = "twitter_access_token"
	keyTwitterSecret    = "twitter_access_secret"
	keyIntervalMinutes  = "creation_interval_minutes"
	keyThemes           = "art_themes"
	keyMinBalance       = "min_balance_eth"
	keyExternalURL      = "external_url"
	keyStatusAddr       = "status_addr"
	keyMintPoll         = "mint_poll_interval"
	keyFarcasterPoll    = "farcaster_poll_interval"
	keyTwitterPoll      = "twitter_poll_interval"
	keyStateFile        = "state_file"
	keyLogLevel         = "log_level"
	keyLogFormat        = "log_format"
)

var DefaultThemes = []string{"surreal", "cyberpunk", "abstract", "cosmic", "dreamscape"}

type Farcaster struct {
	APIKey     string
	SignerUUID string
	Username   string
}

func (f Farcaster) Configured() bool {
	return f.APIKey != "" && f.SignerUUID != ""
}

type Twitter struct {
	APIKey       string
	APISecret    string
	AccessToken  string
	AccessSecret string
}

func (t Twitter) Configured() bool {
	return t.APIKey != "" && t.APISecret != "" && t.AccessToken != "" && t.AccessSecret != ""
}

type Config struct {
	Network         domain.Network
	RPCURL          string
	PrivateKey      string
	ContractAddress string

	ArtProvider  string
	OpenAIAPIKey string
	OpenAIModel  string
	GeminiAPIKey string

	PinataAPIKey    string
	PinataSecretKey string

	Farcaster Farcaster
	Twitter   Twitter

	Interval    time.Duration
	Themes      []string
	MinBalance  *big.Int
	ExternalURL string

	StatusAddr            string
	MintPollInterval      time.Duration
	FarcasterPollInterval time.Duration
	TwitterPollInterval   time.Duration
	StateFile             string

	LogLevel  string
	LogFormat string

	// ConfigFile is the file that was read, empty when none existed.
	ConfigFile string

	secretErrs []error
}

type Options struct {
	// ConfigFile overrides ~/.pixeloracle/config.toml. A missing file is not an error.
	ConfigFile string
	// Secrets backs credentials that are absent from the environment and config file.
	Secrets ports.SecretStore
}

func DefaultConfigFile() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".pixeloracle", "config.toml"), nil
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("toml")
	v.AutomaticEnv()

	v.SetDefault(keyNetwork, string(domain.NetworkBaseSepolia))
	v.SetDefault(keyArtProvider, ProviderOpenAI)
	v.SetDefault(keyFarcasterUser, "pixeloracle")
	v.SetDefault(keyIntervalMinutes, 60)
	v.SetDefault(keyThemes, strings.Join(DefaultThemes, ","))
	v.SetDefault(keyMinBalance, "0.00003")
	v.SetDefault(keyExternalURL, "https://pixeloracle.art")
	v.SetDefault(keyStatusAddr, ":3000")
	v.SetDefault(keyMintPoll, 2*time.Minute)
	v.SetDefault(keyFarcasterPoll, 2*time.Minute)
	v.SetDefault(keyTwitterPoll, 8*time.Hour)
	v.SetDefault(keyLogLevel, "info")
	v.SetDefault(keyLogFormat, LogFormatJSON)
	return v
}

// Load reads the environment and the optional config file, then fills absent credentials
// from opts.Secrets. It validates shape only; see RequireLedger and RequireCycle.
func Load(ctx context.Context, opts Options) (Config, error) {
	v := newViper()

	path := opts.ConfigFile
	if path == "" {
		defaultPath, err := DefaultConfigFile()
		if err != nil {
			return Config{}, err
		}
		path = defaultPath
	}

	cfg := Config{}
	if _, err := os.Stat(path); err == nil {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
		cfg.ConfigFile = path
	} else if !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("stat config %s: %w", path, err)
	}

	network, err := domain.ParseNetwork(v.GetString(keyNetwork))
	if err != nil {
		return Config{}, err
	}

	minBalance, ok := domain.ParseEther(v.GetString(keyMinBalance))
	if !ok {
		return Config{}, fmt.Errorf("%w: MIN_BALANCE_ETH %q", domain.ErrInvalidSetting, v.GetString(keyMinBalance))
	}

	cfg.Network = network
	cfg.RPCURL = strings.TrimSpace(v.GetString(keyRPCURL))
	cfg.PrivateKey = strings.TrimSpace(v.GetString(keyPrivateKey))
	cfg.ContractAddress = strings.TrimSpace(v.GetString(keyContractAddress))
	cfg.ArtProvider = strings.ToLower(strings.TrimSpace(v.GetString(keyArtProvider)))
	cfg.OpenAIAPIKey = strings.TrimSpace(v.GetString(keyOpenAIAPIKey))
	cfg.OpenAIModel = strings.TrimSpace(v.GetString(keyOpenAIModel))
	cfg.GeminiAPIKey = strings.TrimSpace(v.GetString(keyGeminiAPIKey))
	cfg.PinataAPIKey = strings.TrimSpace(v.GetString(keyPinataAPIKey))
	cfg.PinataSecretKey = strings.TrimSpace(v.GetString(keyPinataSecretKey))
	cfg.Farcaster = Farcaster{
		APIKey:     strings.TrimSpace(v.GetString(keyNeynarAPIKey)),
		SignerUUID: strings.TrimSpace(v.GetString(keySignerUUID)),
		Username:   strings.TrimSpace(v.GetString(keyFarcasterUser)),
	}
	cfg.Twitter = Twitter{
		APIKey:       strings.TrimSpace(v.GetString(keyTwitterAPIKey)),
		APISecret:    strings.TrimSpace(v.GetString(keyTwitterAPISecret)),
		AccessToken:  strings.TrimSpace(v.GetString(keyTwitterToken)),
		AccessSecret: strings.TrimSpace(v.GetString(keyTwitterSecret)),
	}
	cfg.Interval = time.Duration(v.GetInt(keyIntervalMinutes)) * time.Minute
	cfg.Themes = parseList(v.Get(keyThemes))
	cfg.MinBalance = minBalance
	cfg.ExternalURL = strings.TrimSpace(v.GetString(keyExternalURL))
	cfg.StatusAddr = strings.TrimSpace(v.GetString(keyStatusAddr))
	cfg.MintPollInterval = v.GetDuration(keyMintPoll)
	cfg.FarcasterPollInterval = v.GetDuration(keyFarcasterPoll)
	cfg.TwitterPollInterval = v.GetDuration(keyTwitterPoll)
	cfg.StateFile = strings.TrimSpace(v.GetString(keyStateFile))
	cfg.LogLevel = strings.TrimSpace(v.GetString(keyLogLevel))
	cfg.LogFormat = strings.ToLower(strings.TrimSpace(v.GetString(keyLogFormat)))

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	if opts.Secrets != nil {
		if err := cfg.resolveSecrets(ctx, opts.Secrets); err != nil {
			return Config{}, err
		}
	}

	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error

	switch c.ArtProvider {
	case ProviderOpenAI, ProviderGemini:
	default:
		errs = append(errs, fmt.Errorf("%w: ART_PROVIDER %q (want openai or gemini)", domain.ErrInvalidSetting, c.ArtProvider))
	}
	if c.Interval <= 0 {
		errs = append(errs, fmt.Errorf("%w: CREATION_INTERVAL_MINUTES must be positive", domain.ErrInvalidSetting))
	}
	if len(c.Themes) == 0 {
		errs = append(errs, fmt.Errorf("%w: ART_THEMES is empty", domain.ErrInvalidSetting))
	}
	for name, interval := range map[string]time.Duration{
		"MINT_POLL_INTERVAL":      c.MintPollInterval,
		"FARCASTER_POLL_INTERVAL": c.FarcasterPollInterval,
		"TWITTER_POLL_INTERVAL":   c.TwitterPollInterval,
	} {
		if interval <= 0 {
			errs = append(errs, fmt.Errorf("%w: %s must be positive", domain.ErrInvalidSetting, name))
		}
	}
	switch c.LogFormat {
	case LogFormatJSON, LogFormatConsole:
	default:
		errs = append(errs, fmt.Errorf("%w: LOG_FORMAT %q (want json or console)", domain.ErrInvalidSetting, c.LogFormat))
	}

	return errors.Join(errs...)
}

// RequireLedger checks what read-only chain access needs.
func (c Config) RequireLedger() error {
	if c.PrivateKey == "" {
		return errors.Join(append([]error{fmt.Errorf("%w: PRIVATE_KEY", domain.ErrMissingSetting)}, c.secretErrs...)...)
	}
	return nil
}

// RequireCycle checks every credential a creation cycle needs.
func (c Config) RequireCycle() error {
	var missing []string
	for _, field := range c.requiredFields() {
		if *field.value == "" {
			missing = append(missing, field.env)
		}
	}
	if len(missing) > 0 {
		missingErr := fmt.Errorf("%w: %s", domain.ErrMissingSetting, strings.Join(missing, ", "))
		return errors.Join(append([]error{missingErr}, c.secretErrs...)...)
	}
	return nil
}

type credentialField struct {
	env   string
	value *string
}

func (c *Config) requiredFields() []credentialField {
	fields := []credentialField{{env: "PRIVATE_KEY", value: &c.PrivateKey}}
	switch c.ArtProvider {
	case ProviderGemini:
		fields = append(fields, credentialField{env: "GEMINI_API_KEY", value: &c.GeminiAPIKey})
	default:
		fields = append(fields, credentialField{env: "OPENAI_API_KEY", value: &c.OpenAIAPIKey})
	}
	return append(fields,
		credentialField{env: "PINATA_API_KEY", value: &c.PinataAPIKey},
		credentialField{env: "PINATA_SECRET_KEY", value: &c.PinataSecretKey},
	)
}

func (c *Config) resolveSecrets(ctx context.Context, store ports.SecretStore) error {
	for _, field := range c.requiredFields() {
		if *field.value != "" {
			continue
		}

		value, err := store.Get(ctx, SecretKey(field.env))
		if err != nil {
			if errors.Is(err, domain.ErrSecretNotFound) {
				continue
			}
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}
			// Reported only if the credential ends up required and missing.
			c.secretErrs = append(c.secretErrs, fmt.Errorf("resolve %s from secret store: %w", field.env, err))
			continue
		}
		*field.value = strings.TrimSpace(value)
	}
	return nil
}

// SecretKey maps an environment variable name to its secret store key.
func SecretKey(env string) string {
	return secretPrefix + strings.ToLower(env)
}

func parseList(raw any) []string {
	var parts []string
	switch value := raw.(type) {
	case string:
		parts = strings.Split(value, ",")
	case []string:
		parts = value
	case []any:
		for _, item := range value {
			parts = append(parts, fmt.Sprint(item))
		}
	}

	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
