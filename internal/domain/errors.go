package domain

import "errors"

var (
	ErrMissingSetting   = errors.New("missing required setting")
	ErrInvalidSetting   = errors.New("invalid setting")
	ErrNotConfigured    = errors.New("channel not configured")
	ErrNoImage          = errors.New("art service returned no image")
	ErrMintReverted     = errors.New("mint transaction reverted")
	ErrTokenIDNotFound  = errors.New("token id not found in receipt")
	ErrContractNotSet   = errors.New("contract address not set")
	ErrSecretNotFound   = errors.New("secret not found")
	ErrUnsupportedStage = errors.New("unsupported cycle stage")
)
