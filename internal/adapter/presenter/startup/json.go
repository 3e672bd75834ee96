package startuptext

import (
	"time"

	domain "github.com/berezovskyivalerii/formgateway/internal/domain/startup"
)

type Response struct {
	CreatedAt string          `json:"createdAt"`
	Total     int             `json:"total"`
	Facts     map[string]bool `json:"facts"`
}

func Map(rep domain.Report) Response {
	resp := Response{
		CreatedAt: rep.CreatedAt().UTC().Format(time.RFC3339),
		Total:     rep.Total(),
		Facts:     map[string]bool{},
	}
	for f, ok := range rep.Facts() {
		resp.Facts[string(f)] = ok
	}
	return resp
}
