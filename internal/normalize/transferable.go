package normalize

// transferGroups are adjacency sets of canonical skills considered close
// enough that experience with one partially substitutes for another.
// Used only by gap detection, never by scoring.
var transferGroups = [][]string{
	{"AWS", "Google Cloud", "Azure"},
	{"React", "Vue", "Angular", "Svelte"},
	{"PostgreSQL", "MySQL", "SQL Server", "Oracle", "SQLite"},
	{"MongoDB", "Cassandra", "Firebase"},
	{"Python", "Ruby"},
	{"Java", "Kotlin", "C#", "Scala"},
	{"JavaScript", "TypeScript"},
	{"Swift", "Objective-C"},
	{"iOS Development", "Android Development", "React Native", "Flutter"},
	{"Django", "Flask", "FastAPI"},
	{"Express", "NestJS", "Node.js"},
	{"Spring", "ASP.NET", "Rails", "Laravel"},
	{"Docker", "Kubernetes", "Container Orchestration"},
	{"Terraform", "Ansible", "CI/CD"},
	{"Jenkins", "GitHub Actions", "GitLab CI", "CircleCI"},
	{"TensorFlow", "PyTorch", "Scikit-learn"},
	{"Apache Kafka", "RabbitMQ"},
	{"Tableau", "Power BI", "Looker", "Data Visualization"},
	{"Apache Spark", "Hadoop"},
	{"Elasticsearch", "Splunk"},
	{"Prometheus", "Grafana", "Datadog", "New Relic", "Monitoring"},
	{"Jira", "Trello", "Asana", "Linear"},
	{"Figma", "Sketch"},
	{"Salesforce", "HubSpot"},
	{"GraphQL", "REST APIs"},
	{"Unit Testing", "Integration Testing"},
	{"Cypress", "Selenium", "Playwright"},
	{"Product Management", "Project Management"},
	{"Data Analysis", "Data Science", "Statistics"},
	{"Digital Marketing", "Sales"},
}

// transferIndex maps each skill to its adjacent skills.
var transferIndex = func() map[string]map[string]bool {
	out := make(map[string]map[string]bool)
	for _, group := range transferGroups {
		for _, a := range group {
			if out[a] == nil {
				out[a] = make(map[string]bool, len(group)-1)
			}
			for _, b := range group {
				if a != b {
					out[a][b] = true
				}
			}
		}
	}
	return out
}()

// Transferable reports whether experience with skill "have" could
// substitute for required skill "want". Both are canonical names.
func Transferable(have, want string) bool {
	return transferIndex[want][have]
}

// TransferSubstitute finds the first skill in have (in order) adjacent to
// the required skill. Returns the substitute and whether one was found.
func TransferSubstitute(have []string, want string) (string, bool) {
	adjacent := transferIndex[want]
	if len(adjacent) == 0 {
		return "", false
	}
	for _, h := range have {
		if adjacent[h] {
			return h, true
		}
	}
	return "", false
}
