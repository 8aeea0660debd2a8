package handlers_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"goodheart/internal/domain"
)

func TestActiveCampaignsListsOnlyActive(t *testing.T) {
	e := newEnv(t, nil)
	seedActive(t, e.campaigns, "c1")
	e.campaigns.Seed(&domain.Campaign{
		ID:         "c2",
		Title:      "Pending",
		NGOID:      "ngo-1",
		GoalAmount: 100,
		Status:     domain.CampaignPending,
		CreatedAt:  time.Now(),
	})

	rec, body := do(t, e.router, http.MethodGet, "/donor/campaigns/active", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	campaigns, ok := body["campaigns"].([]any)
	if !ok || len(campaigns) != 1 {
		t.Fatalf("campaigns = %v", body["campaigns"])
	}
	item := campaigns[0].(map[string]any)
	if item["id"] != "c1" || item["status"] != "active" {
		t.Errorf("campaign = %v", item)
	}
	if _, present := item["donors"]; present {
		t.Error("list view should omit the donor ledger")
	}
}

func TestCampaignByIDIncludesLedger(t *testing.T) {
	e := newEnv(t, nil)
	seedActive(t, e.campaigns, "c1")
	if _, err := e.campaigns.ApplyDonation(context.Background(), "c1", "d1", 75); err != nil {
		t.Fatalf("ApplyDonation: %v", err)
	}

	rec, body := do(t, e.router, http.MethodGet, "/donor/campaigns/c1", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	campaign := body["campaign"].(map[string]any)
	donors, ok := campaign["donors"].([]any)
	if !ok || len(donors) != 1 {
		t.Fatalf("donors = %v", campaign["donors"])
	}
	entry := donors[0].(map[string]any)
	if entry["donorId"] != "d1" || entry["amount"] != float64(75) {
		t.Errorf("ledger entry = %v", entry)
	}
	if campaign["raisedAmount"] != float64(75) {
		t.Errorf("raisedAmount = %v", campaign["raisedAmount"])
	}
}

func TestCampaignByIDNotFound(t *testing.T) {
	e := newEnv(t, nil)

	rec, _ := do(t, e.router, http.MethodGet, "/donor/campaigns/missing", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestCreateCampaign(t *testing.T) {
	e := newEnv(t, nil)

	rec, body := do(t, e.router, http.MethodPost, "/ngo/ngo-1/campaigns/create",
		`{"title":"New Wells","description":"Clean water access.","goalAmount":5000}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	campaign := body["campaign"].(map[string]any)
	if campaign["status"] != "pending" {
		t.Errorf("status = %v, new campaigns must await moderation", campaign["status"])
	}
	if campaign["ngoId"] != "ngo-1" || campaign["goalAmount"] != float64(5000) {
		t.Errorf("campaign = %v", campaign)
	}

	id, _ := campaign["id"].(string)
	stored, err := e.campaigns.GetByID(context.Background(), id)
	if err != nil {
		t.Fatalf("created campaign not stored: %v", err)
	}
	if stored.AcceptsDonations() {
		t.Error("pending campaign accepts donations")
	}
}

func TestCreateCampaignInvalid(t *testing.T) {
	e := newEnv(t, nil)

	cases := []struct {
		name string
		body string
	}{
		{"missing title", `{"description":"d","goalAmount":100}`},
		{"zero goal", `{"title":"T","description":"d","goalAmount":0}`},
		{"malformed json", `{"title":`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec, _ := do(t, e.router, http.MethodPost, "/ngo/ngo-1/campaigns/create", tc.body)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d", rec.Code)
			}
		})
	}
}

func TestCreateCampaignUnknownNGO(t *testing.T) {
	e := newEnv(t, nil)

	rec, _ := do(t, e.router, http.MethodPost, "/ngo/ghost/campaigns/create",
		`{"title":"T","description":"d","goalAmount":100}`)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestNGOCampaigns(t *testing.T) {
	e := newEnv(t, nil)
	seedActive(t, e.campaigns, "c1")

	rec, body := do(t, e.router, http.MethodGet, "/ngo/ngo-1/campaigns", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	campaigns, ok := body["campaigns"].([]any)
	if !ok || len(campaigns) != 1 {
		t.Fatalf("campaigns = %v", body["campaigns"])
	}

	rec, _ = do(t, e.router, http.MethodGet, "/ngo/ghost/campaigns", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("unknown ngo status = %d", rec.Code)
	}
}

func TestHealth(t *testing.T) {
	e := newEnv(t, nil)

	rec, body := do(t, e.router, http.MethodGet, "/health", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if body["success"] != true {
		t.Errorf("body = %v", body)
	}
}

func TestListEndpoints(t *testing.T) {
	e := newEnv(t, nil)

	rec, body := do(t, e.router, http.MethodGet, "/donor/all", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if donors, ok := body["donors"].([]any); !ok || len(donors) != 1 {
		t.Errorf("donors = %v", body["donors"])
	}

	rec, body = do(t, e.router, http.MethodGet, "/ngo/all", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if ngos, ok := body["ngos"].([]any); !ok || len(ngos) != 1 {
		t.Errorf("ngos = %v", body["ngos"])
	}
}
