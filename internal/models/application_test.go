package models

import (
	"testing"

	"github.com/google/uuid"
)

func TestApplicationIsParticipant(t *testing.T) {
	company := uuid.New()
	influencer := uuid.New()
	stranger := uuid.New()

	a := &ApplicationWithCampaign{
		Application:   Application{InfluencerUserID: influencer},
		CompanyUserID: company,
	}

	if !a.IsParticipant(company) {
		t.Error("campaign owner should be a participant")
	}
	if !a.IsParticipant(influencer) {
		t.Error("applying influencer should be a participant")
	}
	if a.IsParticipant(stranger) {
		t.Error("unrelated user should not be a participant")
	}
}
