package repositories

import (
	"context"

	"github.com/collabmatch/backend/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ProfileRepo struct {
	pool *pgxpool.Pool
}

func NewProfileRepo(pool *pgxpool.Pool) *ProfileRepo {
	return &ProfileRepo{pool: pool}
}

func insertBase(ctx context.Context, tx pgx.Tx, p *models.Profile) error {
	return tx.QueryRow(ctx, `
		INSERT INTO profiles (user_id, bio, website, location)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`, p.UserID, p.Bio, p.Website, p.Location).Scan(&p.ID, &p.CreatedAt)
}

func (r *ProfileRepo) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Profile, error) {
	var p models.Profile
	err := r.pool.QueryRow(ctx, `
		SELECT id, user_id, bio, website, location, created_at
		FROM profiles WHERE user_id = $1
	`, userID).Scan(&p.ID, &p.UserID, &p.Bio, &p.Website, &p.Location, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProfileRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Profile, error) {
	var p models.Profile
	err := r.pool.QueryRow(ctx, `
		SELECT id, user_id, bio, website, location, created_at
		FROM profiles WHERE id = $1
	`, id).Scan(&p.ID, &p.UserID, &p.Bio, &p.Website, &p.Location, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// ExistsForUser is the soft pre-create check; the user_id unique
// constraint is the real guard.
func (r *ProfileRepo) ExistsForUser(ctx context.Context, userID uuid.UUID) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM profiles WHERE user_id = $1)`, userID).Scan(&exists)
	return exists, err
}

func (r *ProfileRepo) UpdateBase(ctx context.Context, p *models.Profile) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE profiles SET bio = $1, website = $2, location = $3 WHERE id = $4
	`, p.Bio, p.Website, p.Location, p.ID)
	return err
}

// ---- Company profiles ----

// CreateCompanyProfile inserts the base profile and the company
// specialization in one transaction. A failure anywhere leaves no base row
// behind, so a retry is not blocked by a half-created profile.
func (r *ProfileRepo) CreateCompanyProfile(ctx context.Context, base *models.Profile, cp *models.CompanyProfile, categoryIDs []uuid.UUID) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if err := insertBase(ctx, tx, base); err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return err
	}
	cp.ProfileID = base.ID

	err = tx.QueryRow(ctx, `
		INSERT INTO company_profiles (profile_id, company_size, description, instagram_url, youtube_url, facebook_url, x_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`, cp.ProfileID, cp.CompanySize, cp.Description,
		cp.SocialLinks.InstagramURL, cp.SocialLinks.YouTubeURL, cp.SocialLinks.FacebookURL, cp.SocialLinks.XURL,
	).Scan(&cp.ID)
	if err != nil {
		return err
	}

	if err := insertCompanyCategories(ctx, tx, cp.ID, categoryIDs); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (r *ProfileRepo) UpdateCompany(ctx context.Context, cp *models.CompanyProfile, categoryIDs []uuid.UUID) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
		UPDATE company_profiles SET company_size = $1, description = $2,
		       instagram_url = $3, youtube_url = $4, facebook_url = $5, x_url = $6
		WHERE id = $7
	`, cp.CompanySize, cp.Description,
		cp.SocialLinks.InstagramURL, cp.SocialLinks.YouTubeURL, cp.SocialLinks.FacebookURL, cp.SocialLinks.XURL, cp.ID)
	if err != nil {
		return err
	}

	if _, err := tx.Exec(ctx, `DELETE FROM company_profile_categories WHERE company_profile_id = $1`, cp.ID); err != nil {
		return err
	}
	if err := insertCompanyCategories(ctx, tx, cp.ID, categoryIDs); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func insertCompanyCategories(ctx context.Context, tx pgx.Tx, companyProfileID uuid.UUID, categoryIDs []uuid.UUID) error {
	for _, catID := range categoryIDs {
		if _, err := tx.Exec(ctx, `
			INSERT INTO company_profile_categories (company_profile_id, category_id)
			VALUES ($1, $2) ON CONFLICT DO NOTHING
		`, companyProfileID, catID); err != nil {
			return err
		}
	}
	return nil
}

func (r *ProfileRepo) GetCompanyByProfileID(ctx context.Context, profileID uuid.UUID) (*models.CompanyProfile, error) {
	var cp models.CompanyProfile
	err := r.pool.QueryRow(ctx, `
		SELECT id, profile_id, company_size, description, instagram_url, youtube_url, facebook_url, x_url
		FROM company_profiles WHERE profile_id = $1
	`, profileID).Scan(&cp.ID, &cp.ProfileID, &cp.CompanySize, &cp.Description,
		&cp.SocialLinks.InstagramURL, &cp.SocialLinks.YouTubeURL, &cp.SocialLinks.FacebookURL, &cp.SocialLinks.XURL)
	if err != nil {
		return nil, err
	}

	cats, err := r.companyCategories(ctx, cp.ID)
	if err != nil {
		return nil, err
	}
	cp.Categories = cats
	return &cp, nil
}

func (r *ProfileRepo) companyCategories(ctx context.Context, companyProfileID uuid.UUID) ([]models.Category, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT c.id, c.name
		FROM company_profile_categories cpc
		JOIN categories c ON c.id = cpc.category_id
		WHERE cpc.company_profile_id = $1
		ORDER BY c.name
	`, companyProfileID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanCategories(rows)
}

// ---- Influencer profiles ----

// CreateInfluencerProfile is the influencer counterpart of
// CreateCompanyProfile: base row and specialization commit together.
func (r *ProfileRepo) CreateInfluencerProfile(ctx context.Context, base *models.Profile, ip *models.InfluencerProfile, categoryIDs []uuid.UUID) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if err := insertBase(ctx, tx, base); err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return err
	}
	ip.ProfileID = base.ID

	err = tx.QueryRow(ctx, `
		INSERT INTO influencer_profiles (profile_id, platforms, audience_size, bio, instagram_url, youtube_url, facebook_url, x_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`, ip.ProfileID, ip.Platforms, ip.AudienceSize, ip.Bio,
		ip.SocialLinks.InstagramURL, ip.SocialLinks.YouTubeURL, ip.SocialLinks.FacebookURL, ip.SocialLinks.XURL,
	).Scan(&ip.ID)
	if err != nil {
		return err
	}

	if err := insertInfluencerCategories(ctx, tx, ip.ID, categoryIDs); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (r *ProfileRepo) UpdateInfluencer(ctx context.Context, ip *models.InfluencerProfile, categoryIDs []uuid.UUID) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
		UPDATE influencer_profiles SET platforms = $1, audience_size = $2, bio = $3,
		       instagram_url = $4, youtube_url = $5, facebook_url = $6, x_url = $7
		WHERE id = $8
	`, ip.Platforms, ip.AudienceSize, ip.Bio,
		ip.SocialLinks.InstagramURL, ip.SocialLinks.YouTubeURL, ip.SocialLinks.FacebookURL, ip.SocialLinks.XURL, ip.ID)
	if err != nil {
		return err
	}

	if _, err := tx.Exec(ctx, `DELETE FROM influencer_profile_categories WHERE influencer_profile_id = $1`, ip.ID); err != nil {
		return err
	}
	if err := insertInfluencerCategories(ctx, tx, ip.ID, categoryIDs); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func insertInfluencerCategories(ctx context.Context, tx pgx.Tx, influencerProfileID uuid.UUID, categoryIDs []uuid.UUID) error {
	for _, catID := range categoryIDs {
		if _, err := tx.Exec(ctx, `
			INSERT INTO influencer_profile_categories (influencer_profile_id, category_id)
			VALUES ($1, $2) ON CONFLICT DO NOTHING
		`, influencerProfileID, catID); err != nil {
			return err
		}
	}
	return nil
}

func (r *ProfileRepo) GetInfluencerByProfileID(ctx context.Context, profileID uuid.UUID) (*models.InfluencerProfile, error) {
	var ip models.InfluencerProfile
	err := r.pool.QueryRow(ctx, `
		SELECT id, profile_id, platforms, audience_size, bio, instagram_url, youtube_url, facebook_url, x_url
		FROM influencer_profiles WHERE profile_id = $1
	`, profileID).Scan(&ip.ID, &ip.ProfileID, &ip.Platforms, &ip.AudienceSize, &ip.Bio,
		&ip.SocialLinks.InstagramURL, &ip.SocialLinks.YouTubeURL, &ip.SocialLinks.FacebookURL, &ip.SocialLinks.XURL)
	if err != nil {
		return nil, err
	}

	cats, err := r.influencerCategories(ctx, ip.ID)
	if err != nil {
		return nil, err
	}
	ip.Categories = cats
	return &ip, nil
}

func (r *ProfileRepo) influencerCategories(ctx context.Context, influencerProfileID uuid.UUID) ([]models.Category, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT c.id, c.name
		FROM influencer_profile_categories ipc
		JOIN categories c ON c.id = ipc.category_id
		WHERE ipc.influencer_profile_id = $1
		ORDER BY c.name
	`, influencerProfileID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanCategories(rows)
}

// GetInfluencerByUserID resolves a user's influencer specialization through
// their base profile.
func (r *ProfileRepo) GetInfluencerByUserID(ctx context.Context, userID uuid.UUID) (*models.InfluencerProfile, error) {
	p, err := r.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return r.GetInfluencerByProfileID(ctx, p.ID)
}

// ---- Directory listings ----

func (r *ProfileRepo) ListCompanies(ctx context.Context) ([]models.DirectoryEntry, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT u.id, u.name, p.location,
		       cp.id, cp.profile_id, cp.company_size, cp.description,
		       cp.instagram_url, cp.youtube_url, cp.facebook_url, cp.x_url
		FROM company_profiles cp
		JOIN profiles p ON p.id = cp.profile_id
		JOIN users u ON u.id = p.user_id
		ORDER BY u.name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []models.DirectoryEntry
	for rows.Next() {
		var e models.DirectoryEntry
		var cp models.CompanyProfile
		if err := rows.Scan(&e.UserID, &e.UserName, &e.Location,
			&cp.ID, &cp.ProfileID, &cp.CompanySize, &cp.Description,
			&cp.SocialLinks.InstagramURL, &cp.SocialLinks.YouTubeURL, &cp.SocialLinks.FacebookURL, &cp.SocialLinks.XURL); err != nil {
			return nil, err
		}
		e.Company = &cp
		entries = append(entries, e)
	}

	for _, e := range entries {
		cats, err := r.companyCategories(ctx, e.Company.ID)
		if err != nil {
			return nil, err
		}
		e.Company.Categories = cats
	}
	return entries, nil
}

func (r *ProfileRepo) ListInfluencers(ctx context.Context) ([]models.DirectoryEntry, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT u.id, u.name, p.location,
		       ip.id, ip.profile_id, ip.platforms, ip.audience_size, ip.bio,
		       ip.instagram_url, ip.youtube_url, ip.facebook_url, ip.x_url
		FROM influencer_profiles ip
		JOIN profiles p ON p.id = ip.profile_id
		JOIN users u ON u.id = p.user_id
		ORDER BY u.name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []models.DirectoryEntry
	for rows.Next() {
		var e models.DirectoryEntry
		var ip models.InfluencerProfile
		if err := rows.Scan(&e.UserID, &e.UserName, &e.Location,
			&ip.ID, &ip.ProfileID, &ip.Platforms, &ip.AudienceSize, &ip.Bio,
			&ip.SocialLinks.InstagramURL, &ip.SocialLinks.YouTubeURL, &ip.SocialLinks.FacebookURL, &ip.SocialLinks.XURL); err != nil {
			return nil, err
		}
		e.Influencer = &ip
		entries = append(entries, e)
	}

	for _, e := range entries {
		cats, err := r.influencerCategories(ctx, e.Influencer.ID)
		if err != nil {
			return nil, err
		}
		e.Influencer.Categories = cats
	}
	return entries, nil
}

func scanCategories(rows pgx.Rows) ([]models.Category, error) {
	var cats []models.Category
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, err
		}
		cats = append(cats, c)
	}
	return cats, nil
}
