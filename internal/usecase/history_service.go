package usecase

import (
	"context"

	"github.com/riskibarqy/afcon-dashboard/internal/domain/history"
)

// Champions is the past-winners view: podium, remaining title holders and the full timeline.
type Champions struct {
	Finals     []history.Final      `json:"finals"`
	Podium     []history.TitleCount `json:"podium"`
	HallOfFame []history.TitleCount `json:"hall_of_fame"`
	Editions   int                  `json:"editions"`
	Countries  int                  `json:"countries"`
	HostWins   int                  `json:"host_wins"`
	FirstYear  int                  `json:"first_year"`
}

const podiumSize = 3

type HistoryService struct{}

func NewHistoryService() *HistoryService {
	return &HistoryService{}
}

func (s *HistoryService) Champions(ctx context.Context) (Champions, error) {
	_, span := startUsecaseSpan(ctx, "usecase.HistoryService.Champions")
	defer span.End()

	finals := history.Finals()
	counts := history.TitleCounts(finals)

	out := Champions{
		Finals:    finals,
		Editions:  len(finals),
		Countries: len(counts),
	}
	split := min(podiumSize, len(counts))
	out.Podium = counts[:split]
	out.HallOfFame = counts[split:]

	for _, f := range finals {
		if f.Champion == f.Host {
			out.HostWins++
		}
		if out.FirstYear == 0 || f.Year < out.FirstYear {
			out.FirstYear = f.Year
		}
	}
	return out, nil
}
