package dashboard

import "devdash/internal/domain/dashboard"

type statsOutput struct {
	Body dashboard.Stats
}
