package rbac

import (
	"testing"

	"github.com/collabmatch/backend/internal/models"
)

func TestHasPermission(t *testing.T) {
	tests := []struct {
		name       string
		userType   string
		permission string
		expected   bool
	}{
		{"company creates campaign", models.UserTypeCompany, PermCreateCampaign, true},
		{"company views applications", models.UserTypeCompany, PermViewApplications, true},
		{"company cannot apply", models.UserTypeCompany, PermApply, false},
		{"company cannot like", models.UserTypeCompany, PermLikeCampaign, false},
		{"influencer applies", models.UserTypeInfluencer, PermApply, true},
		{"influencer likes", models.UserTypeInfluencer, PermLikeCampaign, true},
		{"influencer cannot create campaign", models.UserTypeInfluencer, PermCreateCampaign, false},
		{"influencer cannot view applications", models.UserTypeInfluencer, PermViewApplications, false},
		{"both respond", models.UserTypeInfluencer, PermRespond, true},
		{"both comment", models.UserTypeCompany, PermComment, true},
		{"unknown type", "admin", PermComment, false},
		{"unknown permission", models.UserTypeCompany, "delete_everything", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasPermission(tt.userType, tt.permission); got != tt.expected {
				t.Errorf("HasPermission(%q, %q) = %v, want %v", tt.userType, tt.permission, got, tt.expected)
			}
		})
	}
}
