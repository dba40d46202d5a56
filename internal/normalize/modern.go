package normalize

// modernTech lists canonical skills and tools treated as current-market
// signals by the learning-and-adaptivity recency sub-score.
var modernTech = map[string]bool{
	"Kubernetes":              true,
	"Docker":                  true,
	"Terraform":               true,
	"Go":                      true,
	"Rust":                    true,
	"TypeScript":              true,
	"React":                   true,
	"Next.js":                 true,
	"Svelte":                  true,
	"Vue":                     true,
	"GraphQL":                 true,
	"gRPC":                    true,
	"Serverless":              true,
	"AWS":                     true,
	"Google Cloud":            true,
	"Azure":                   true,
	"Snowflake":               true,
	"Databricks":              true,
	"dbt":                     true,
	"Apache Kafka":            true,
	"Kafka":                   true,
	"Apache Airflow":          true,
	"Airflow":                 true,
	"Apache Spark":            true,
	"Machine Learning":        true,
	"Artificial Intelligence": true,
	"PyTorch":                 true,
	"TensorFlow":              true,
	"Hugging Face":            true,
	"MLflow":                  true,
	"NLP":                     true,
	"Computer Vision":         true,
	"FastAPI":                 true,
	"Flutter":                 true,
	"React Native":            true,
	"Kotlin":                  true,
	"Swift":                   true,
	"Tailwind CSS":            true,
	"Vite":                    true,
	"Playwright":              true,
	"GitHub Actions":          true,
	"ArgoCD":                  true,
	"Istio":                   true,
	"Prometheus":              true,
	"Grafana":                 true,
	"Site Reliability":        true,
	"Supabase":                true,
	"Vercel":                  true,
	"Solidity":                true,
}

// legacyTech lists skills that, when they make up the whole stack with no
// modern signal alongside, indicate stagnation.
var legacyTech = map[string]bool{
	"COBOL":       true,
	"Fortran":     true,
	"Perl":        true,
	"VBA":         true,
	"jQuery":      true,
	"Objective-C": true,
	"Assembly":    true,
	"Apache":      true,
	"SQL Server":  true,
	"Oracle":      true,
	"PHP":         true,
	"Flash":       true,
	"Silverlight": true,
	"ColdFusion":  true,
}

// IsModernTech reports whether a canonical skill or tool counts as modern.
func IsModernTech(name string) bool {
	return modernTech[name]
}

// IsLegacyTech reports whether a canonical skill or tool counts as legacy.
func IsLegacyTech(name string) bool {
	return legacyTech[name]
}

// CountModern counts modern entries among the given canonical names.
func CountModern(names []string) int {
	count := 0
	for _, n := range names {
		if modernTech[n] {
			count++
		}
	}
	return count
}
