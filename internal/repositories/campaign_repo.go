package repositories

import (
	"context"
	"fmt"

	"github.com/collabmatch/backend/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CampaignRepo struct {
	pool *pgxpool.Pool
}

func NewCampaignRepo(pool *pgxpool.Pool) *CampaignRepo {
	return &CampaignRepo{pool: pool}
}

func (r *CampaignRepo) Create(ctx context.Context, c *models.Campaign, categoryIDs []uuid.UUID) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx, `
		INSERT INTO campaigns (company_user_id, name, description, budget, deadline)
		VALUES ($1, $2, $3, $4::numeric, $5)
		RETURNING id, views, likes, created_at, updated_at
	`, c.CompanyUserID, c.Name, c.Description, c.Budget, c.Deadline,
	).Scan(&c.ID, &c.Views, &c.Likes, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return err
	}

	if err := replaceCampaignCategories(ctx, tx, c.ID, categoryIDs, false); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (r *CampaignRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Campaign, error) {
	var c models.Campaign
	err := r.pool.QueryRow(ctx, `
		SELECT id, company_user_id, name, description, budget::text, deadline,
		       views, likes, created_at, updated_at
		FROM campaigns WHERE id = $1
	`, id).Scan(&c.ID, &c.CompanyUserID, &c.Name, &c.Description, &c.Budget, &c.Deadline,
		&c.Views, &c.Likes, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}

	cats, err := r.campaignCategories(ctx, c.ID)
	if err != nil {
		return nil, err
	}
	c.Categories = cats
	return &c, nil
}

// Update mutates the owner-editable fields. created_at and the counters are
// never touched here.
func (r *CampaignRepo) Update(ctx context.Context, c *models.Campaign, categoryIDs []uuid.UUID) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
		UPDATE campaigns SET name = $1, description = $2, budget = $3::numeric, deadline = $4, updated_at = now()
		WHERE id = $5
	`, c.Name, c.Description, c.Budget, c.Deadline, c.ID)
	if err != nil {
		return err
	}

	if err := replaceCampaignCategories(ctx, tx, c.ID, categoryIDs, true); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func replaceCampaignCategories(ctx context.Context, tx pgx.Tx, campaignID uuid.UUID, categoryIDs []uuid.UUID, clear bool) error {
	if clear {
		if _, err := tx.Exec(ctx, `DELETE FROM campaign_categories WHERE campaign_id = $1`, campaignID); err != nil {
			return err
		}
	}
	for _, catID := range categoryIDs {
		if _, err := tx.Exec(ctx, `
			INSERT INTO campaign_categories (campaign_id, category_id)
			VALUES ($1, $2) ON CONFLICT DO NOTHING
		`, campaignID, catID); err != nil {
			return err
		}
	}
	return nil
}

func (r *CampaignRepo) campaignCategories(ctx context.Context, campaignID uuid.UUID) ([]models.Category, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT c.id, c.name
		FROM campaign_categories cc
		JOIN categories c ON c.id = cc.category_id
		WHERE cc.campaign_id = $1
		ORDER BY c.name
	`, campaignID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanCategories(rows)
}

// ListByCompany returns every campaign the company owns, unfiltered by
// deadline, in insertion order.
func (r *CampaignRepo) ListByCompany(ctx context.Context, companyUserID uuid.UUID) ([]models.Campaign, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, company_user_id, name, description, budget::text, deadline,
		       views, likes, created_at, updated_at
		FROM campaigns
		WHERE company_user_id = $1
		ORDER BY created_at, id
	`, companyUserID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var campaigns []models.Campaign
	for rows.Next() {
		var c models.Campaign
		if err := rows.Scan(&c.ID, &c.CompanyUserID, &c.Name, &c.Description, &c.Budget, &c.Deadline,
			&c.Views, &c.Likes, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		campaigns = append(campaigns, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range campaigns {
		cats, err := r.campaignCategories(ctx, campaigns[i].ID)
		if err != nil {
			return nil, err
		}
		campaigns[i].Categories = cats
	}
	return campaigns, nil
}

// ListMatching selects campaigns whose category set intersects the
// influencer's, annotated with comment count, applied and liked flags for
// that influencer. No deadline filter; insertion order. An optional search
// term narrows by name/description substring, case-insensitive.
func (r *CampaignRepo) ListMatching(ctx context.Context, influencerUserID uuid.UUID, search string) ([]models.FeedCampaign, error) {
	query := `
		SELECT DISTINCT c.id, c.company_user_id, c.name, c.description, c.budget::text, c.deadline,
		       c.views, c.likes, c.created_at, c.updated_at,
		       (SELECT COUNT(*) FROM comments cm WHERE cm.campaign_id = c.id) AS comment_count,
		       EXISTS(SELECT 1 FROM applications a WHERE a.campaign_id = c.id AND a.influencer_user_id = $1) AS has_applied,
		       EXISTS(SELECT 1 FROM campaign_likes cl WHERE cl.campaign_id = c.id AND cl.user_id = $1) AS liked
		FROM campaigns c
		JOIN campaign_categories cc ON cc.campaign_id = c.id
		JOIN influencer_profile_categories ipc ON ipc.category_id = cc.category_id
		JOIN influencer_profiles ip ON ip.id = ipc.influencer_profile_id
		JOIN profiles p ON p.id = ip.profile_id
		WHERE p.user_id = $1
	`
	args := []any{influencerUserID}
	if search != "" {
		query += ` AND (c.name ILIKE $2 OR c.description ILIKE $2)`
		args = append(args, fmt.Sprintf("%%%s%%", search))
	}
	query += ` ORDER BY c.created_at, c.id`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var feed []models.FeedCampaign
	for rows.Next() {
		var f models.FeedCampaign
		if err := rows.Scan(&f.ID, &f.CompanyUserID, &f.Name, &f.Description, &f.Budget, &f.Deadline,
			&f.Views, &f.Likes, &f.CreatedAt, &f.UpdatedAt,
			&f.CommentCount, &f.HasApplied, &f.Liked); err != nil {
			return nil, err
		}
		feed = append(feed, f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range feed {
		cats, err := r.campaignCategories(ctx, feed[i].ID)
		if err != nil {
			return nil, err
		}
		feed[i].Categories = cats
	}
	return feed, nil
}

// RecordView counts a (campaign, user) pair toward the view counter at most
// once for the campaign's lifetime. The insert and the counter update run as
// one statement, so concurrent requests from the same user cannot
// double-count. Returns whether this call was the one that counted.
func (r *CampaignRepo) RecordView(ctx context.Context, campaignID, userID uuid.UUID) (bool, error) {
	tag, err := r.pool.Exec(ctx, `
		WITH ins AS (
			INSERT INTO campaign_views (campaign_id, user_id)
			VALUES ($1, $2)
			ON CONFLICT (campaign_id, user_id) DO NOTHING
			RETURNING 1
		)
		UPDATE campaigns SET views = views + 1
		WHERE id = $1 AND EXISTS(SELECT 1 FROM ins)
	`, campaignID, userID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// ToggleLike flips the user's membership in the liked-by set and adjusts the
// counter inside one transaction, keyed on the insert/delete outcome, so
// likes == |liked_by| holds under concurrent toggles.
func (r *CampaignRepo) ToggleLike(ctx context.Context, campaignID, userID uuid.UUID) (liked bool, likes int, err error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return false, 0, err
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, `
		INSERT INTO campaign_likes (campaign_id, user_id)
		VALUES ($1, $2)
		ON CONFLICT (campaign_id, user_id) DO NOTHING
	`, campaignID, userID)
	if err != nil {
		return false, 0, err
	}

	if tag.RowsAffected() == 1 {
		liked = true
		err = tx.QueryRow(ctx, `
			UPDATE campaigns SET likes = likes + 1 WHERE id = $1 RETURNING likes
		`, campaignID).Scan(&likes)
	} else {
		liked = false
		if _, err = tx.Exec(ctx, `
			DELETE FROM campaign_likes WHERE campaign_id = $1 AND user_id = $2
		`, campaignID, userID); err != nil {
			return false, 0, err
		}
		err = tx.QueryRow(ctx, `
			UPDATE campaigns SET likes = likes - 1 WHERE id = $1 RETURNING likes
		`, campaignID).Scan(&likes)
	}
	if err != nil {
		return false, 0, err
	}

	if err := tx.Commit(ctx); err != nil {
		return false, 0, err
	}
	return liked, likes, nil
}

func (r *CampaignRepo) CreateComment(ctx context.Context, cm *models.Comment) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO comments (campaign_id, user_id, content)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`, cm.CampaignID, cm.UserID, cm.Content).Scan(&cm.ID, &cm.CreatedAt)
}

func (r *CampaignRepo) CountComments(ctx context.Context, campaignID uuid.UUID) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM comments WHERE campaign_id = $1`, campaignID).Scan(&n)
	return n, err
}
