package normalize

// SkillCategory names a bucket of related canonical skills, used by the
// skill-capital diversity sub-score.
type SkillCategory string

const (
	CategoryLanguages   SkillCategory = "programming_languages"
	CategoryFrontend    SkillCategory = "frontend"
	CategoryBackend     SkillCategory = "backend"
	CategoryCloud       SkillCategory = "cloud"
	CategoryDatabases   SkillCategory = "databases"
	CategoryDevOps      SkillCategory = "devops"
	CategoryData        SkillCategory = "data_ml"
	CategoryMobile      SkillCategory = "mobile"
	CategoryTesting     SkillCategory = "testing"
	CategorySecurity    SkillCategory = "security"
	CategoryDesign      SkillCategory = "design_product"
	CategoryBusiness    SkillCategory = "business"
	CategorySoftSkills  SkillCategory = "soft_skills"
)

// skillCategories assigns canonical skills to categories. A skill may
// appear in at most one category.
var skillCategories = map[SkillCategory][]string{
	CategoryLanguages: {
		"Python", "JavaScript", "TypeScript", "Java", "Go", "C++", "C#", "C",
		"Ruby", "PHP", "Swift", "Kotlin", "Rust", "Scala", "R", "MATLAB",
		"Perl", "Objective-C", "Dart", "Elixir", "Haskell", "Lua", "Groovy",
		"Shell Scripting", "SQL", "HTML", "CSS", "VBA", "Fortran", "COBOL",
		"Assembly", "Solidity",
	},
	CategoryFrontend: {
		"React", "Angular", "Vue", "Svelte", "Next.js", "Nuxt", "Redux",
		"jQuery", "Tailwind CSS", "Bootstrap", "Webpack", "Vite", "Storybook",
	},
	CategoryBackend: {
		"Node.js", "Express", "NestJS", "Django", "Flask", "FastAPI",
		"Spring", "Rails", "Laravel", "ASP.NET", "Gin", "GraphQL",
		"REST APIs", "gRPC", "WebSockets", "Microservices",
	},
	CategoryCloud: {
		"AWS", "Google Cloud", "Azure", "Heroku", "DigitalOcean", "Vercel",
		"Cloudflare", "Serverless",
	},
	CategoryDatabases: {
		"PostgreSQL", "MySQL", "MongoDB", "Redis", "Elasticsearch",
		"Cassandra", "SQLite", "Oracle", "SQL Server", "Snowflake", "Neo4j",
		"Firebase", "Supabase",
	},
	CategoryDevOps: {
		"Docker", "Kubernetes", "Terraform", "Ansible", "Jenkins", "CI/CD",
		"Git", "Linux", "Nginx", "Apache", "Prometheus", "Grafana",
		"Datadog", "Monitoring", "Site Reliability", "Container Orchestration",
	},
	CategoryData: {
		"Machine Learning", "Artificial Intelligence", "TensorFlow",
		"PyTorch", "Scikit-learn", "Pandas", "NumPy", "Data Analysis",
		"Data Science", "Data Engineering", "Data Visualization",
		"Apache Spark", "Apache Kafka", "Apache Airflow", "Hadoop", "dbt",
		"NLP", "Computer Vision", "Statistics",
	},
	CategoryMobile: {
		"iOS Development", "Android Development", "React Native", "Flutter",
	},
	CategoryTesting: {
		"Unit Testing", "Integration Testing", "QA",
	},
	CategorySecurity: {
		"Security", "OAuth", "Encryption",
	},
	CategoryDesign: {
		"UI/UX Design", "Figma", "Product Management", "Agile",
		"Project Management",
	},
	CategoryBusiness: {
		"Business Analysis", "Financial Modeling", "Digital Marketing",
		"Sales", "Customer Success", "Operations", "Excel",
	},
	CategorySoftSkills: {
		"Leadership", "Communication", "Collaboration", "Problem Solving",
		"Time Management", "Adaptability", "Stakeholder Management",
		"Negotiation", "Decision Making", "Creativity",
	},
}

// categoryBySkill is the inverted index of skillCategories.
var categoryBySkill = func() map[string]SkillCategory {
	out := make(map[string]SkillCategory, 256)
	for category, skills := range skillCategories {
		for _, skill := range skills {
			out[skill] = category
		}
	}
	return out
}()

// CategoryCount is the number of defined skill categories.
func CategoryCount() int {
	return len(skillCategories)
}

// CategoryOf returns the category of a canonical skill, if it has one.
func CategoryOf(skill string) (SkillCategory, bool) {
	c, ok := categoryBySkill[skill]
	return c, ok
}

// CategoriesCovered reports which categories have at least one hit among
// the given canonical skill names.
func CategoriesCovered(skills []string) map[SkillCategory]bool {
	covered := make(map[SkillCategory]bool)
	for _, skill := range skills {
		if c, ok := categoryBySkill[skill]; ok {
			covered[c] = true
		}
	}
	return covered
}

// IsSoftSkill reports whether a canonical skill is a soft skill.
func IsSoftSkill(skill string) bool {
	return categoryBySkill[skill] == CategorySoftSkills
}
