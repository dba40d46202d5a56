package evaluations

import (
	"time"

	"resume-engine/internal/apperrors"
	"resume-engine/internal/cache"
	"resume-engine/internal/evaluation"
	"resume-engine/internal/fit"
	"resume-engine/internal/gaps"
	"resume-engine/internal/resume"
	"resume-engine/internal/shared/metrics"
)

// Service runs resume evaluations and job-fit analyses, caching generic
// evaluation results so a fit request against a new job description reuses
// the already-computed resume scores.
type Service struct {
	generic *evaluation.Evaluator
	fit     *fit.Evaluator
	results *cache.Cache[*evaluation.Result]
	now     func() time.Time
}

// NewService constructs a Service.
func NewService(generic *evaluation.Evaluator, fitEval *fit.Evaluator, results *cache.Cache[*evaluation.Result]) *Service {
	return &Service{
		generic: generic,
		fit:     fitEval,
		results: results,
		now:     time.Now,
	}
}

// Evaluate scores a resume on its own merits. The second return reports
// whether the result came from cache.
func (s *Service) Evaluate(r *resume.ParsedResume, rawText string) (*evaluation.Result, bool, error) {
	metrics.IncEvaluationStarted()
	start := s.now()

	key, keyErr := resultKey(r, rawText)
	if keyErr == nil {
		if cached, ok := s.results.Get(key); ok {
			metrics.IncCacheHit()
			metrics.IncEvaluationCompleted()
			return cached, true, nil
		}
		metrics.IncCacheMiss()
	}

	result, err := s.generic.Evaluate(r, rawText)
	if err != nil {
		metrics.IncEvaluationFailed()
		return nil, false, err
	}
	if keyErr == nil {
		s.results.Set(key, result)
	}
	metrics.IncEvaluationCompleted()
	metrics.ObserveEvaluationDurationMs(float64(s.now().Sub(start).Milliseconds()))
	return result, false, nil
}

// EvaluateFit scores a resume against job requirements. The generic
// evaluation is cached; the fit dimensions are recomputed per job.
func (s *Service) EvaluateFit(r *resume.ParsedResume, rawText string, req gaps.JobRequirements) (*fit.Score, bool, error) {
	result, hit, err := s.Evaluate(r, rawText)
	if err != nil {
		return nil, false, err
	}
	metrics.IncFitEvaluation()
	return s.fit.EvaluateWithResult(r, result, req), hit, nil
}

// Score is a convenience wrapper returning only the overall score and level.
func (s *Service) Score(r *resume.ParsedResume, rawText string) (int, evaluation.Level, error) {
	result, _, err := s.Evaluate(r, rawText)
	if err != nil {
		return 0, "", err
	}
	return result.Score, result.Level, nil
}

// Recommend is a convenience wrapper returning the recommendation triple.
func (s *Service) Recommend(r *resume.ParsedResume, rawText string, req gaps.JobRequirements) (fit.Recommendation, string, int, error) {
	score, _, err := s.EvaluateFit(r, rawText, req)
	if err != nil {
		return "", "", 0, err
	}
	return score.Recommendation, score.Reasoning, score.FitScore, nil
}

// CacheStats returns a snapshot of the result cache counters.
func (s *Service) CacheStats() cache.Stats {
	return s.results.Stats()
}

// ClearCache drops all cached results, keeping counters.
func (s *Service) ClearCache() {
	s.results.Clear()
}

// Invalidate removes a single resume's cached result.
func (s *Service) Invalidate(r *resume.ParsedResume, rawText string) {
	if key, err := resultKey(r, rawText); err == nil {
		s.results.Invalidate(key)
	}
}

// ResolveRequirements picks pre-parsed requirements when supplied, otherwise
// parses the free-text job description.
func ResolveRequirements(req *gaps.JobRequirements, jobDescription string) (gaps.JobRequirements, error) {
	if req != nil && !req.IsEmpty() {
		return *req, nil
	}
	if jobDescription == "" {
		return gaps.JobRequirements{}, apperrors.New(apperrors.CodeMissingJobDescription)
	}
	return gaps.ParseJobDescription(jobDescription)
}

func resultKey(r *resume.ParsedResume, rawText string) (string, error) {
	return cache.Fingerprint(struct {
		Resume  *resume.ParsedResume `json:"resume"`
		RawText string               `json:"rawText"`
	}{r, rawText})
}
