package repositories

import (
	"context"

	"github.com/collabmatch/backend/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ApplicationRepo struct {
	pool *pgxpool.Pool
}

func NewApplicationRepo(pool *pgxpool.Pool) *ApplicationRepo {
	return &ApplicationRepo{pool: pool}
}

func (r *ApplicationRepo) Create(ctx context.Context, a *models.Application) error {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO applications (campaign_id, influencer_user_id, message)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`, a.CampaignID, a.InfluencerUserID, a.Message).Scan(&a.ID, &a.CreatedAt)

	if isUniqueViolation(err) {
		return ErrDuplicate
	}
	return err
}

func (r *ApplicationRepo) GetByIDWithCampaign(ctx context.Context, id uuid.UUID) (*models.ApplicationWithCampaign, error) {
	var a models.ApplicationWithCampaign
	err := r.pool.QueryRow(ctx, `
		SELECT a.id, a.campaign_id, a.influencer_user_id, a.message, a.created_at,
		       c.name, c.company_user_id, u.name
		FROM applications a
		JOIN campaigns c ON c.id = a.campaign_id
		JOIN users u ON u.id = a.influencer_user_id
		WHERE a.id = $1
	`, id).Scan(&a.ID, &a.CampaignID, &a.InfluencerUserID, &a.Message, &a.CreatedAt,
		&a.CampaignName, &a.CompanyUserID, &a.InfluencerName)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *ApplicationRepo) ListByCampaign(ctx context.Context, campaignID uuid.UUID) ([]models.ApplicationWithCampaign, error) {
	return r.list(ctx, `a.campaign_id = $1`, campaignID)
}

func (r *ApplicationRepo) ListByInfluencer(ctx context.Context, influencerUserID uuid.UUID) ([]models.ApplicationWithCampaign, error) {
	return r.list(ctx, `a.influencer_user_id = $1`, influencerUserID)
}

func (r *ApplicationRepo) list(ctx context.Context, where string, arg any) ([]models.ApplicationWithCampaign, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT a.id, a.campaign_id, a.influencer_user_id, a.message, a.created_at,
		       c.name, c.company_user_id, u.name
		FROM applications a
		JOIN campaigns c ON c.id = a.campaign_id
		JOIN users u ON u.id = a.influencer_user_id
		WHERE `+where+`
		ORDER BY a.created_at, a.id
	`, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var apps []models.ApplicationWithCampaign
	for rows.Next() {
		var a models.ApplicationWithCampaign
		if err := rows.Scan(&a.ID, &a.CampaignID, &a.InfluencerUserID, &a.Message, &a.CreatedAt,
			&a.CampaignName, &a.CompanyUserID, &a.InfluencerName); err != nil {
			return nil, err
		}
		apps = append(apps, a)
	}
	return apps, rows.Err()
}

// ---- Responses ----

func (r *ApplicationRepo) CreateResponse(ctx context.Context, resp *models.Response) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO responses (application_id, user_id, content)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`, resp.ApplicationID, resp.UserID, resp.Content).Scan(&resp.ID, &resp.CreatedAt)
}

// ListResponses returns the full flat thread, oldest first.
func (r *ApplicationRepo) ListResponses(ctx context.Context, applicationID uuid.UUID) ([]models.Response, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, application_id, user_id, content, created_at
		FROM responses
		WHERE application_id = $1
		ORDER BY created_at, id
	`, applicationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var responses []models.Response
	for rows.Next() {
		var resp models.Response
		if err := rows.Scan(&resp.ID, &resp.ApplicationID, &resp.UserID, &resp.Content, &resp.CreatedAt); err != nil {
			return nil, err
		}
		responses = append(responses, resp)
	}
	return responses, rows.Err()
}
