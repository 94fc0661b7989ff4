package trafficplayback

import (
	"encoding/json"
	"net/http"
)

type healthResponse struct {
	Status     string `json:"status"`
	Source     string `json:"source"`
	TotalSteps int    `json:"total_steps"`
	Loading    bool   `json:"loading"`
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	resp := healthResponse{Status: "ok"}
	if controller != nil {
		v := controller.View()
		resp.Source = v.Source
		resp.TotalSteps = v.TotalSteps
		resp.Loading = v.Loading
		if v.LoadError != "" {
			resp.Status = "degraded"
		}
	}
	_ = json.NewEncoder(w).Encode(resp)
}
