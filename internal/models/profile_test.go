package models

import (
	"testing"

	"github.com/google/uuid"
)

func TestIsValidCompanySize(t *testing.T) {
	for _, s := range AllCompanySizes {
		if !IsValidCompanySize(s) {
			t.Errorf("IsValidCompanySize(%q) = false, want true", s)
		}
	}

	for _, s := range []string{"", "10-100", "1000+", "micro"} {
		if IsValidCompanySize(s) {
			t.Errorf("IsValidCompanySize(%q) = true, want false", s)
		}
	}
}

func TestIsValidAudienceSize(t *testing.T) {
	for _, s := range AllAudienceSizes {
		if !IsValidAudienceSize(s) {
			t.Errorf("IsValidAudienceSize(%q) = false, want true", s)
		}
	}

	for _, s := range []string{"", "nano", "huge", "1-10"} {
		if IsValidAudienceSize(s) {
			t.Errorf("IsValidAudienceSize(%q) = true, want false", s)
		}
	}
}

func TestIsValidUserType(t *testing.T) {
	if !IsValidUserType(UserTypeCompany) || !IsValidUserType(UserTypeInfluencer) {
		t.Error("known user types should be valid")
	}
	if IsValidUserType("") || IsValidUserType("admin") {
		t.Error("unknown user types should be invalid")
	}
}

func TestCategoriesIntersect(t *testing.T) {
	fashion := Category{ID: uuid.New(), Name: "Fashion"}
	tech := Category{ID: uuid.New(), Name: "Tech"}
	sports := Category{ID: uuid.New(), Name: "Sports"}

	tests := []struct {
		name     string
		campaign []Category
		profile  []Category
		expected bool
	}{
		{"shared category", []Category{fashion, tech}, []Category{tech, sports}, true},
		{"disjoint", []Category{fashion}, []Category{sports}, false},
		{"empty campaign", nil, []Category{fashion}, false},
		{"empty profile", []Category{fashion}, nil, false},
		{"both empty", nil, nil, false},
		{"identical sets", []Category{fashion, tech}, []Category{fashion, tech}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Campaign{Categories: tt.campaign}
			p := &InfluencerProfile{Categories: tt.profile}
			if got := CategoriesIntersect(c, p); got != tt.expected {
				t.Errorf("CategoriesIntersect() = %v, want %v", got, tt.expected)
			}
		})
	}
}
