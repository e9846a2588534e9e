package domain

import (
	"fmt"
	"time"
)

type TokenAttribute struct {
	TraitType string `json:"trait_type"`
	Value     any    `json:"value"`
}

// TokenMetadata is the ERC-721 metadata document pinned next to the image.
type TokenMetadata struct {
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Image       string           `json:"image"`
	ExternalURL string           `json:"external_url,omitempty"`
	Attributes  []TokenAttribute `json:"attributes"`
}

func NewTokenMetadata(concept Concept, imageURI, externalURL, signature string, generation uint64, createdAt time.Time) TokenMetadata {
	description := concept.Description
	if signature != "" {
		description += "\n\n" + signature
	}

	return TokenMetadata{
		Name:        concept.Title,
		Description: description,
		Image:       imageURI,
		ExternalURL: externalURL,
		Attributes: []TokenAttribute{
			{TraitType: "Theme", Value: concept.Theme},
			{TraitType: "Artist", Value: "PixelOracle AI"},
			{TraitType: "Generation", Value: generation},
			{TraitType: "Chain", Value: "Base"},
			{TraitType: "Created", Value: createdAt.UTC().Format(time.DateOnly)},
		},
	}
}

func ImageFileName(generation uint64) string {
	return fmt.Sprintf("pixeloracle-%d.png", generation)
}

func MetadataFileName(generation uint64) string {
	return fmt.Sprintf("pixeloracle-metadata-%d.json", generation)
}
