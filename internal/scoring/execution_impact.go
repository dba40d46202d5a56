package scoring

import (
	"resume-engine/internal/resume"
)

// Execution-impact sub-score ceilings: 35 metrics + 35 verbs + 30 scope.
const (
	impactMetricsMax = 35
	impactVerbsMax   = 35
	impactScopeMax   = 30
)

// minMetricRatio is the configured minimum fraction of metric-bearing
// bullets before the no_metrics issue is raised.
const minMetricRatio = 0.2

// weakVerbPenaltyThreshold triggers an extra penalty when more than this
// fraction of bullets lead with a weak verb.
const weakVerbPenaltyThreshold = 0.3

// ExecutionImpact scores how well experience bullets demonstrate
// quantified, owned results. It also returns every bullet that failed the
// metric or verb check, tagged with its issues and source location.
func ExecutionImpact(r *resume.ParsedResume) (DimensionScore, []WeakBullet) {
	total := r.BulletCount()
	if total == 0 {
		return DimensionScore{
			Score:  0,
			Issues: []string{IssueNoExperienceBullets},
		}, nil
	}

	metricBullets := 0
	strongBullets := 0
	weakLeads := 0
	scopedBullets := 0
	var weak []WeakBullet

	for _, exp := range r.Experience {
		for i, bullet := range exp.Bullets {
			hasMetric := HasMetric(bullet)
			if hasMetric {
				metricBullets++
			}
			strength := LeadingVerbStrength(bullet)
			switch strength {
			case VerbStrong:
				strongBullets++
			case VerbWeak:
				weakLeads++
			}
			if ScopeHits(bullet) > 0 {
				scopedBullets++
			}

			var tags []string
			if !hasMetric {
				tags = append(tags, BulletIssueNoMetric)
			}
			if strength == VerbWeak {
				tags = append(tags, BulletIssueWeakVerb)
			}
			if len(tags) > 0 {
				weak = append(weak, WeakBullet{
					Text:   bullet,
					Issues: tags,
					Source: BulletRef{Company: exp.Company, Title: exp.Title, Index: i},
				})
			}
		}
	}

	var issues []string

	metricRatio := float64(metricBullets) / float64(total)
	metrics := ladder5(metricRatio, [5]int{35, 28, 20, 13, 8}, [4]float64{0.60, 0.45, 0.30, 0.15})
	if metricRatio < minMetricRatio {
		issues = append(issues, IssueNoMetrics)
	}

	strongRatio := float64(strongBullets) / float64(total)
	verbs := ladder5(strongRatio, [5]int{35, 28, 20, 13, 8}, [4]float64{0.60, 0.45, 0.30, 0.15})
	weakRatio := float64(weakLeads) / float64(total)
	if weakRatio > weakVerbPenaltyThreshold {
		verbs -= 5
		issues = append(issues, IssueWeakVerbs)
	}
	verbs = clampInt(verbs, 0, impactVerbsMax)

	scopeRatio := float64(scopedBullets) / float64(total)
	scope := ladder5(scopeRatio, [5]int{30, 24, 17, 10, 5}, [4]float64{0.50, 0.35, 0.20, 0.10})

	return DimensionScore{
		Score: clampScore(metrics + verbs + scope),
		Breakdown: map[string]int{
			"metrics": metrics,
			"verbs":   verbs,
			"scope":   scope,
		},
		Issues: issues,
	}, weak
}

// ladder5 maps a ratio onto a 5-tier score ladder. values[0] applies at or
// above bounds[0], values[4] below bounds[3].
func ladder5(ratio float64, values [5]int, bounds [4]float64) int {
	switch {
	case ratio >= bounds[0]:
		return values[0]
	case ratio >= bounds[1]:
		return values[1]
	case ratio >= bounds[2]:
		return values[2]
	case ratio >= bounds[3]:
		return values[3]
	default:
		return values[4]
	}
}
