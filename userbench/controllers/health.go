package controllers

import (
	"net/http"

	httputils "userbench/userbench/utils/http"
)

type HealthStatus struct {
	Status  string `json:"status"`
	APIURL  string `json:"api_url"`
	StubAPI bool   `json:"stub_api"`
}

// HealthController reports liveness and which users API the harness targets.
type HealthController struct {
	apiURL  string
	stubAPI bool
}

func NewHealthController(apiURL string, stubAPI bool) *HealthController {
	return &HealthController{apiURL: apiURL, stubAPI: stubAPI}
}

func (h *HealthController) HealthCheck(w http.ResponseWriter, r *http.Request) {
	httputils.WriteJSON(w, http.StatusOK, HealthStatus{
		Status:  "ok",
		APIURL:  h.apiURL,
		StubAPI: h.stubAPI,
	})
}
