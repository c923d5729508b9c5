package utils

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/translate"
	"golang.org/x/text/language"
	"google.golang.org/api/option"
)

type TranslationResult struct {
	OriginalText           string `json:"originalText"`
	TranslatedText         string `json:"translatedText"`
	DetectedSourceLanguage string `json:"detectedSourceLanguage"`
}

// TranslatorInterface is the capability boundary to the external translation
// service, fakeable in tests.
type TranslatorInterface interface {
	Translate(ctx context.Context, text string, targetLang string) (*TranslationResult, error)
}

// GoogleTranslator implements TranslatorInterface on the Cloud Translation
// v2 API.
type GoogleTranslator struct {
	client *translate.Client
}

func NewGoogleTranslator(ctx context.Context, apiKey string) (*GoogleTranslator, error) {
	client, err := translate.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create translate client: %w", err)
	}
	return &GoogleTranslator{client: client}, nil
}

func (t *GoogleTranslator) Translate(ctx context.Context, text string, targetLang string) (*TranslationResult, error) {
	target, err := language.Parse(targetLang)
	if err != nil {
		return nil, fmt.Errorf("invalid target language %q: %w", targetLang, err)
	}

	translations, err := t.client.Translate(ctx, []string{text}, target, nil)
	if err != nil {
		return nil, fmt.Errorf("translate: %w", err)
	}
	if len(translations) == 0 {
		return nil, errors.New("translate: empty result")
	}

	return &TranslationResult{
		OriginalText:           text,
		TranslatedText:         translations[0].Text,
		DetectedSourceLanguage: translations[0].Source.String(),
	}, nil
}
