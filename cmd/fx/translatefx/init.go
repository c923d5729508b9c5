package translatefx

import (
	"context"
	"log"
	"os"

	"go.uber.org/fx"

	"trekzaa/pkg/utils"
)

var Module = fx.Provide(
	ProvideTranslator)

func ProvideTranslator() (utils.TranslatorInterface, error) {
	apiKey := os.Getenv("GOOGLE_TRANSLATE_API_KEY")
	if apiKey == "" {
		log.Fatal("GOOGLE_TRANSLATE_API_KEY is required")
	}

	return utils.NewGoogleTranslator(context.Background(), apiKey)
}
