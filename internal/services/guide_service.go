package services

import (
	"context"
	"log"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"trekzaa/internal/infra"
	"trekzaa/internal/models/db_models"
	"trekzaa/internal/models/request_models"
	"trekzaa/internal/models/response_models"
	"trekzaa/internal/repositories"
	"trekzaa/pkg/utils"
)

type GuideServiceInterface interface {
	ListGuides(ctx context.Context, location string) ([]*db_models.Guide, error)
	GetGuide(ctx context.Context, id uuid.UUID) (*db_models.Guide, error)
	RegisterGuide(ctx context.Context, userID uuid.UUID, request request_models.RegisterGuideRequest) (*db_models.Guide, error)
	TranslateGuide(ctx context.Context, id uuid.UUID, targetLang string) (*response_models.GuideTranslation, error)
}

type GuideService struct {
	db         *gorm.DB
	userRepo   repositories.UserRepository
	guideRepo  repositories.GuideRepository
	translator utils.TranslatorInterface
}

func NewGuideService(
	db *gorm.DB,
	userRepo repositories.UserRepository,
	guideRepo repositories.GuideRepository,
	translator utils.TranslatorInterface,
) GuideServiceInterface {
	return &GuideService{
		db:         db,
		userRepo:   userRepo,
		guideRepo:  guideRepo,
		translator: translator,
	}
}

// ListGuides returns all guides, or only those serving location when it is
// non-empty.
func (s *GuideService) ListGuides(ctx context.Context, location string) ([]*db_models.Guide, error) {
	var (
		guides []*db_models.Guide
		err    error
	)
	if location == "" {
		guides, err = s.guideRepo.ListAll(ctx)
	} else {
		guides, err = s.guideRepo.ListByLocation(ctx, location)
	}
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return guides, nil
}

func (s *GuideService) GetGuide(ctx context.Context, id uuid.UUID) (*db_models.Guide, error) {
	guide, err := s.guideRepo.FindByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if guide == nil {
		return nil, utils.ErrGuideNotFound
	}
	return guide, nil
}

// RegisterGuide creates the guide profile and flips the user's guide flag in
// one transaction.
func (s *GuideService) RegisterGuide(ctx context.Context, userID uuid.UUID, request request_models.RegisterGuideRequest) (*db_models.Guide, error) {
	existing, err := s.guideRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrInvalidInput
	}

	guide := &db_models.Guide{
		UserID:      userID,
		Specialties: pq.StringArray(request.Specialties),
		Locations:   pq.StringArray(request.Locations),
		Rating:      "0.0",
	}

	tx := infra.StartTransaction(s.db.WithContext(ctx))
	txErr := s.guideRepo.InsertTx(tx, guide)
	if txErr == nil {
		txErr = s.userRepo.SetGuideProfile(tx, userID, request.Bio)
	}
	txErr = infra.ReleaseTransaction(tx, txErr)
	if txErr != nil {
		log.Printf("Guide registration failed for user %s: %v", userID, txErr)
		return nil, utils.ErrDatabaseError
	}

	created, err := s.guideRepo.FindByID(ctx, guide.ID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return created, nil
}

// TranslateGuide translates the guide's bio and each specialty into the
// target language.
func (s *GuideService) TranslateGuide(ctx context.Context, id uuid.UUID, targetLang string) (*response_models.GuideTranslation, error) {
	guide, err := s.guideRepo.FindByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if guide == nil {
		return nil, utils.ErrGuideNotFound
	}

	out := &response_models.GuideTranslation{}

	if guide.User.Bio != "" {
		bio, err := s.translator.Translate(ctx, guide.User.Bio, targetLang)
		if err != nil {
			log.Printf("Bio translation failed for guide %s: %v", id, err)
			return nil, utils.ErrUpstreamTranslation
		}
		out.Bio = bio
	}

	for _, specialty := range guide.Specialties {
		translated, err := s.translator.Translate(ctx, specialty, targetLang)
		if err != nil {
			log.Printf("Specialty translation failed for guide %s: %v", id, err)
			return nil, utils.ErrUpstreamTranslation
		}
		out.Specialties = append(out.Specialties, *translated)
	}

	return out, nil
}
