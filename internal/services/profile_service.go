package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/collabmatch/backend/internal/models"
	"github.com/collabmatch/backend/internal/repositories"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ProfileService struct {
	profileRepo  *repositories.ProfileRepo
	userRepo     *repositories.UserRepo
	categoryRepo *repositories.CategoryRepo
	auditRepo    *repositories.AuditRepo
	log          *zap.Logger
}

func NewProfileService(
	profileRepo *repositories.ProfileRepo,
	userRepo *repositories.UserRepo,
	categoryRepo *repositories.CategoryRepo,
	auditRepo *repositories.AuditRepo,
	log *zap.Logger,
) *ProfileService {
	return &ProfileService{
		profileRepo:  profileRepo,
		userRepo:     userRepo,
		categoryRepo: categoryRepo,
		auditRepo:    auditRepo,
		log:          log,
	}
}

// ProfileInput carries both the base profile fields and the specialization
// fields; which specialization is created depends only on the caller's
// stored user type, never on the request.
type ProfileInput struct {
	Bio      string
	Website  string
	Location string

	CategoryIDs []uuid.UUID
	SocialLinks models.SocialLinks

	// Company specialization
	CompanySize string
	Description string

	// Influencer specialization
	Platforms    string
	AudienceSize string
	AboutMe      string
}

// ProfileUpdate is a partial update: nil fields keep their current values.
type ProfileUpdate struct {
	Bio      *string
	Website  *string
	Location *string

	CategoryIDs []uuid.UUID // nil keeps the current set
	SocialLinks *models.SocialLinks

	CompanySize *string
	Description *string

	Platforms    *string
	AudienceSize *string
	AboutMe      *string
}

func (s *ProfileService) Create(ctx context.Context, userID uuid.UUID, in ProfileInput) (*models.ProfileView, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("user %w", ErrNotFound)
	}

	exists, err := s.profileRepo.ExistsForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("%w: profile already exists", ErrConflict)
	}

	switch user.UserType {
	case models.UserTypeCompany:
		if !models.IsValidCompanySize(in.CompanySize) {
			return nil, fmt.Errorf("%w: invalid company size %q", ErrInvalid, in.CompanySize)
		}
	case models.UserTypeInfluencer:
		if !models.IsValidAudienceSize(in.AudienceSize) {
			return nil, fmt.Errorf("%w: invalid audience size %q", ErrInvalid, in.AudienceSize)
		}
	default:
		return nil, fmt.Errorf("%w: unknown user type %q", ErrInvalid, user.UserType)
	}

	cats, err := s.categoryRepo.GetByIDs(ctx, in.CategoryIDs)
	if err != nil {
		return nil, err
	}
	if len(cats) != len(in.CategoryIDs) {
		return nil, fmt.Errorf("%w: unknown category id", ErrInvalid)
	}

	// Base row and specialization commit in one transaction; a failed
	// create leaves nothing behind and stays retryable.
	base := &models.Profile{
		UserID:   userID,
		Bio:      in.Bio,
		Website:  in.Website,
		Location: in.Location,
	}
	switch user.UserType {
	case models.UserTypeCompany:
		cp := &models.CompanyProfile{
			CompanySize: in.CompanySize,
			Description: in.Description,
			SocialLinks: in.SocialLinks,
		}
		err = s.profileRepo.CreateCompanyProfile(ctx, base, cp, in.CategoryIDs)
	case models.UserTypeInfluencer:
		ip := &models.InfluencerProfile{
			Platforms:    in.Platforms,
			AudienceSize: in.AudienceSize,
			Bio:          in.AboutMe,
			SocialLinks:  in.SocialLinks,
		}
		err = s.profileRepo.CreateInfluencerProfile(ctx, base, ip, in.CategoryIDs)
	}
	if err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			// Lost a concurrent create race past the ExistsForUser check.
			return nil, fmt.Errorf("%w: profile already exists", ErrConflict)
		}
		return nil, err
	}

	_ = s.auditRepo.Log(ctx, models.AuditLog{
		ActorUserID: &userID,
		ActorType:   "user",
		Action:      "profile_created",
		EntityType:  "profile",
		EntityID:    &base.ID,
		Meta:        map[string]any{"user_type": user.UserType},
	})

	return s.View(ctx, userID)
}

// Edit merges the posted fields into the base and specific profile; absent
// fields keep their existing values.
func (s *ProfileService) Edit(ctx context.Context, userID uuid.UUID, in ProfileUpdate) (*models.ProfileView, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("user %w", ErrNotFound)
	}

	base, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("profile %w", ErrNotFound)
	}

	if in.Bio != nil {
		base.Bio = *in.Bio
	}
	if in.Website != nil {
		base.Website = *in.Website
	}
	if in.Location != nil {
		base.Location = *in.Location
	}
	if err := s.profileRepo.UpdateBase(ctx, base); err != nil {
		return nil, err
	}

	if in.CategoryIDs != nil {
		cats, err := s.categoryRepo.GetByIDs(ctx, in.CategoryIDs)
		if err != nil {
			return nil, err
		}
		if len(cats) != len(in.CategoryIDs) {
			return nil, fmt.Errorf("%w: unknown category id", ErrInvalid)
		}
	}

	switch user.UserType {
	case models.UserTypeCompany:
		cp, err := s.profileRepo.GetCompanyByProfileID(ctx, base.ID)
		if err != nil {
			return nil, fmt.Errorf("company profile %w", ErrNotFound)
		}
		if in.CompanySize != nil {
			if !models.IsValidCompanySize(*in.CompanySize) {
				return nil, fmt.Errorf("%w: invalid company size %q", ErrInvalid, *in.CompanySize)
			}
			cp.CompanySize = *in.CompanySize
		}
		if in.Description != nil {
			cp.Description = *in.Description
		}
		if in.SocialLinks != nil {
			cp.SocialLinks = *in.SocialLinks
		}
		catIDs := in.CategoryIDs
		if catIDs == nil {
			catIDs = categoryIDList(cp.Categories)
		}
		if err := s.profileRepo.UpdateCompany(ctx, cp, catIDs); err != nil {
			return nil, err
		}
	case models.UserTypeInfluencer:
		ip, err := s.profileRepo.GetInfluencerByProfileID(ctx, base.ID)
		if err != nil {
			return nil, fmt.Errorf("influencer profile %w", ErrNotFound)
		}
		if in.Platforms != nil {
			ip.Platforms = *in.Platforms
		}
		if in.AudienceSize != nil {
			if !models.IsValidAudienceSize(*in.AudienceSize) {
				return nil, fmt.Errorf("%w: invalid audience size %q", ErrInvalid, *in.AudienceSize)
			}
			ip.AudienceSize = *in.AudienceSize
		}
		if in.AboutMe != nil {
			ip.Bio = *in.AboutMe
		}
		if in.SocialLinks != nil {
			ip.SocialLinks = *in.SocialLinks
		}
		catIDs := in.CategoryIDs
		if catIDs == nil {
			catIDs = categoryIDList(ip.Categories)
		}
		if err := s.profileRepo.UpdateInfluencer(ctx, ip, catIDs); err != nil {
			return nil, err
		}
	}

	_ = s.auditRepo.Log(ctx, models.AuditLog{
		ActorUserID: &userID,
		ActorType:   "user",
		Action:      "profile_updated",
		EntityType:  "profile",
		EntityID:    &base.ID,
	})

	return s.View(ctx, userID)
}

// View combines the base profile with whichever specialization exists.
func (s *ProfileService) View(ctx context.Context, userID uuid.UUID) (*models.ProfileView, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("user %w", ErrNotFound)
	}

	base, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("profile %w", ErrNotFound)
	}

	view := &models.ProfileView{
		Profile:  *base,
		UserName: user.Name,
		UserType: user.UserType,
	}

	switch user.UserType {
	case models.UserTypeCompany:
		if cp, err := s.profileRepo.GetCompanyByProfileID(ctx, base.ID); err == nil {
			view.Company = cp
		}
	case models.UserTypeInfluencer:
		if ip, err := s.profileRepo.GetInfluencerByProfileID(ctx, base.ID); err == nil {
			view.Influencer = ip
		}
	}

	return view, nil
}

// ViewByProfileID is the public profile detail lookup.
func (s *ProfileService) ViewByProfileID(ctx context.Context, profileID uuid.UUID) (*models.ProfileView, error) {
	base, err := s.profileRepo.GetByID(ctx, profileID)
	if err != nil {
		return nil, fmt.Errorf("profile %w", ErrNotFound)
	}
	return s.View(ctx, base.UserID)
}

func (s *ProfileService) Companies(ctx context.Context) ([]models.DirectoryEntry, error) {
	return s.profileRepo.ListCompanies(ctx)
}

func (s *ProfileService) Influencers(ctx context.Context) ([]models.DirectoryEntry, error) {
	return s.profileRepo.ListInfluencers(ctx)
}

func categoryIDList(cats []models.Category) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(cats))
	for _, c := range cats {
		ids = append(ids, c.ID)
	}
	return ids
}
