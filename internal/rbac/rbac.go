package rbac

import "github.com/collabmatch/backend/internal/models"

// Permission constants
const (
	PermCreateCampaign   = "create_campaign"
	PermEditCampaign     = "edit_campaign"
	PermViewApplications = "view_applications"
	PermApply            = "apply"
	PermLikeCampaign     = "like_campaign"
	PermComment          = "comment"
	PermRespond          = "respond"
	PermCreateProfile    = "create_profile"
)

// TypePermissions defines what each user type can do. Thread-level checks
// (campaign ownership, application participation) stay in the services; this
// only gates by caller type.
var TypePermissions = map[string][]string{
	models.UserTypeCompany: {
		PermCreateCampaign, PermEditCampaign, PermViewApplications,
		PermComment, PermRespond, PermCreateProfile,
		// Company CANNOT: PermApply, PermLikeCampaign
	},
	models.UserTypeInfluencer: {
		PermApply, PermLikeCampaign,
		PermComment, PermRespond, PermCreateProfile,
	},
}

// HasPermission checks if a user type has a specific permission.
func HasPermission(userType, permission string) bool {
	perms, ok := TypePermissions[userType]
	if !ok {
		return false
	}
	for _, p := range perms {
		if p == permission {
			return true
		}
	}
	return false
}
