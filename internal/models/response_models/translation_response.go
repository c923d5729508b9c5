package response_models

import "trekzaa/pkg/utils"

type GuideTranslation struct {
	Bio         *utils.TranslationResult  `json:"bio,omitempty"`
	Specialties []utils.TranslationResult `json:"specialties"`
}
