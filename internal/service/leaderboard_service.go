package service

import (
	"fmt"
	"sort"

	"github.com/lshigami/Axolotls/internal/dto"
	"github.com/lshigami/Axolotls/internal/repository"
	"github.com/rs/zerolog/log"
)

// LeaderboardService ranks submissions for reporting. It is stateless and
// recomputes on every call, since submissions are append-only and the
// ranking shifts as new ones arrive.
type LeaderboardService interface {
	Rank(examID *uint) ([]dto.LeaderboardRowDTO, error)
}

type leaderboardService struct {
	submissionRepo repository.SubmissionRepository
}

func NewLeaderboardService(submissionRepo repository.SubmissionRepository) LeaderboardService {
	return &leaderboardService{submissionRepo: submissionRepo}
}

// Rank orders submissions by score descending, then time taken ascending
// (a missing time taken ranks last among equal scores), then submission
// time ascending. The sort is stable, so identical tuples keep their
// relative order across calls.
func (s *leaderboardService) Rank(examID *uint) ([]dto.LeaderboardRowDTO, error) {
	rows, err := s.submissionRepo.ListJoined(examID)
	if err != nil {
		log.Error().Err(err).Msg("Leaderboard: failed to list submissions")
		return nil, fmt.Errorf("error fetching submissions: %w", err)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Score != rows[j].Score {
			return rows[i].Score > rows[j].Score
		}
		ti, tj := timeTakenOrWorst(rows[i].TimeTaken), timeTakenOrWorst(rows[j].TimeTaken)
		if ti != tj {
			return ti < tj
		}
		return rows[i].SubmittedAt.Before(rows[j].SubmittedAt)
	})

	ranked := make([]dto.LeaderboardRowDTO, len(rows))
	for i, row := range rows {
		ranked[i] = dto.LeaderboardRowDTO{
			StudentName:   row.StudentName,
			ExamTitle:     row.ExamTitle,
			Score:         row.Score,
			AttemptNumber: row.AttemptNumber,
			SubmittedAt:   row.SubmittedAt,
			TimeTaken:     row.TimeTaken,
		}
	}
	return ranked, nil
}

// timeTakenOrWorst treats a missing time taken as the maximum possible
// value so legacy rows sort after any row with a recorded time.
func timeTakenOrWorst(t *int) int64 {
	if t == nil {
		return int64(^uint64(0) >> 1)
	}
	return int64(*t)
}
