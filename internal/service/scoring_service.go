package service

import (
	"strconv"

	"github.com/lshigami/Axolotls/internal/model"
)

// ScoringService grades a submitted answer set against an exam's questions.
// It is a pure function of its inputs: no repository access, no side effects.
type ScoringService interface {
	Score(questions []model.Question, answers map[string]string) int
}

type scoringService struct{}

func NewScoringService() ScoringService {
	return &scoringService{}
}

// Score awards one point per question whose submitted option equals the
// stored answer exactly. Questions missing from the answer map count as
// unanswered and score zero; there is no partial credit or penalty.
func (s *scoringService) Score(questions []model.Question, answers map[string]string) int {
	score := 0
	for _, q := range questions {
		submitted, ok := answers[strconv.FormatUint(uint64(q.ID), 10)]
		if ok && submitted == q.Answer {
			score++
		}
	}
	return score
}
