package normalize

// skillSynonyms maps each canonical skill name to the variant spellings it
// may appear under. Matching is case-insensitive and whole-word; the
// canonical name itself is always a valid variant.
var skillSynonyms = map[string][]string{
	// Programming languages
	"Python":      {"python", "python3", "py"},
	"JavaScript":  {"javascript", "js", "ecmascript", "es6", "es2015"},
	"TypeScript":  {"typescript", "ts"},
	"Java":        {"java", "java8", "java11", "java17"},
	"Go":          {"golang", "go lang"},
	"C++":         {"c++", "cpp", "cplusplus"},
	"C#":          {"c#", "csharp", "c sharp", ".net c#"},
	"C":           {"c programming", "ansi c", "embedded c"},
	"Ruby":        {"ruby"},
	"PHP":         {"php", "php7", "php8"},
	"Swift":       {"swift", "swiftui"},
	"Kotlin":      {"kotlin"},
	"Rust":        {"rust", "rustlang"},
	"Scala":       {"scala"},
	"R":           {"r programming", "r language", "rstats"},
	"MATLAB":      {"matlab"},
	"Perl":        {"perl"},
	"Objective-C": {"objective-c", "objective c", "objc"},
	"Dart":        {"dart"},
	"Elixir":      {"elixir"},
	"Haskell":     {"haskell"},
	"Lua":         {"lua"},
	"Groovy":      {"groovy"},
	"Shell Scripting": {
		"shell scripting", "shell script", "bash", "bash scripting", "zsh",
		"powershell", "shell",
	},
	"SQL":    {"sql", "structured query language", "t-sql", "tsql", "pl/sql", "plsql"},
	"HTML":   {"html", "html5"},
	"CSS":    {"css", "css3", "scss", "sass", "less"},
	"VBA":    {"vba", "visual basic", "visual basic for applications"},
	"Fortran": {"fortran"},
	"COBOL":  {"cobol"},
	"Assembly": {"assembly", "asm", "x86 assembly"},
	"Solidity": {"solidity"},

	// Frontend frameworks and libraries
	"React":       {"react", "reactjs", "react.js", "react js"},
	"Angular":     {"angular", "angularjs", "angular.js", "angular 2+"},
	"Vue":         {"vue", "vuejs", "vue.js", "vue js", "vue 3"},
	"Svelte":      {"svelte", "sveltekit"},
	"Next.js":     {"next.js", "nextjs", "next js"},
	"Nuxt":        {"nuxt", "nuxtjs", "nuxt.js"},
	"Redux":       {"redux", "redux toolkit"},
	"jQuery":      {"jquery"},
	"Tailwind CSS": {"tailwind", "tailwindcss", "tailwind css"},
	"Bootstrap":   {"bootstrap"},
	"Webpack":     {"webpack"},
	"Vite":        {"vite"},
	"Storybook":   {"storybook"},

	// Backend frameworks
	"Node.js":       {"node.js", "nodejs", "node js", "node"},
	"Express":       {"express", "expressjs", "express.js"},
	"NestJS":        {"nestjs", "nest.js"},
	"Django":        {"django", "django rest framework", "drf"},
	"Flask":         {"flask"},
	"FastAPI":       {"fastapi", "fast api"},
	"Spring":        {"spring", "spring boot", "springboot", "spring framework", "spring mvc"},
	"Rails":         {"rails", "ruby on rails", "ror"},
	"Laravel":       {"laravel"},
	"ASP.NET":       {".net", "asp.net", "aspnet", "dotnet", ".net core", "dotnet core"},
	"Gin":           {"gin framework", "gin-gonic"},
	"GraphQL":       {"graphql", "graph ql", "apollo graphql"},
	"REST APIs":     {"rest", "rest api", "rest apis", "restful", "restful api", "restful apis", "rest services"},
	"gRPC":          {"grpc", "grpc-go", "protocol buffers", "protobuf"},
	"WebSockets":    {"websocket", "websockets", "socket.io"},
	"Microservices": {"microservices", "microservice", "micro-services", "service oriented architecture", "soa"},

	// Cloud platforms
	"AWS": {
		"aws", "amazon web services", "ec2", "aws lambda", "amazon s3",
		"cloudformation", "aws cdk", "ecs", "eks", "dynamodb", "cloudwatch",
	},
	"Google Cloud": {
		"gcp", "google cloud", "google cloud platform", "bigquery",
		"cloud run", "app engine", "gke",
	},
	"Azure": {
		"azure", "microsoft azure", "azure devops", "azure functions",
		"cosmos db", "aks",
	},
	"Heroku":       {"heroku"},
	"DigitalOcean": {"digitalocean", "digital ocean"},
	"Vercel":       {"vercel"},
	"Cloudflare":   {"cloudflare", "cloudflare workers"},
	"Serverless":   {"serverless", "serverless framework", "faas"},

	// Databases
	"PostgreSQL":    {"postgresql", "postgres", "psql", "pgsql"},
	"MySQL":         {"mysql", "mariadb"},
	"MongoDB":       {"mongodb", "mongo"},
	"Redis":         {"redis"},
	"Elasticsearch": {"elasticsearch", "elastic search", "opensearch", "elk"},
	"Cassandra":     {"cassandra", "apache cassandra"},
	"SQLite":        {"sqlite", "sqlite3"},
	"Oracle":        {"oracle", "oracle db", "oracle database"},
	"SQL Server":    {"sql server", "mssql", "microsoft sql server"},
	"Snowflake":     {"snowflake"},
	"Neo4j":         {"neo4j", "graph database"},
	"Firebase":      {"firebase", "firestore"},
	"Supabase":      {"supabase"},

	// DevOps and infrastructure
	"Docker":     {"docker", "docker compose", "docker-compose", "containerization", "containers"},
	"Kubernetes": {"kubernetes", "k8s", "kubectl", "helm"},
	"Terraform":  {"terraform", "infrastructure as code", "iac"},
	"Ansible":    {"ansible"},
	"Jenkins":    {"jenkins"},
	"CI/CD": {
		"ci/cd", "cicd", "ci cd", "continuous integration",
		"continuous deployment", "continuous delivery", "github actions",
		"gitlab ci", "circleci", "travis ci",
	},
	"Git":              {"git", "github", "gitlab", "bitbucket", "version control"},
	"Linux":            {"linux", "unix", "ubuntu", "centos", "debian", "red hat", "rhel"},
	"Nginx":            {"nginx"},
	"Apache":           {"apache", "apache http", "httpd"},
	"Prometheus":       {"prometheus"},
	"Grafana":          {"grafana"},
	"Datadog":          {"datadog"},
	"Monitoring":       {"monitoring", "observability", "alerting", "apm"},
	"Site Reliability": {"sre", "site reliability", "site reliability engineering"},
	"Container Orchestration": {"container orchestration", "orchestration"},

	// Data and machine learning
	"Machine Learning": {
		"machine learning", "ml", "deep learning", "neural networks",
		"supervised learning", "unsupervised learning",
	},
	"Artificial Intelligence": {"artificial intelligence", "ai", "generative ai", "genai", "llm", "llms", "large language models"},
	"TensorFlow":       {"tensorflow", "tf", "keras"},
	"PyTorch":          {"pytorch", "torch"},
	"Scikit-learn":     {"scikit-learn", "sklearn", "scikit learn"},
	"Pandas":           {"pandas"},
	"NumPy":            {"numpy"},
	"Data Analysis":    {"data analysis", "data analytics", "analytics", "exploratory data analysis", "eda"},
	"Data Science":     {"data science", "data scientist"},
	"Data Engineering": {"data engineering", "data pipelines", "etl", "elt"},
	"Data Visualization": {
		"data visualization", "data viz", "tableau", "power bi", "powerbi",
		"looker", "matplotlib", "seaborn",
	},
	"Apache Spark":    {"spark", "apache spark", "pyspark"},
	"Apache Kafka":    {"kafka", "apache kafka", "event streaming"},
	"Apache Airflow":  {"airflow", "apache airflow"},
	"Hadoop":          {"hadoop", "hdfs", "mapreduce"},
	"dbt":             {"dbt", "data build tool"},
	"NLP":             {"nlp", "natural language processing", "text mining"},
	"Computer Vision": {"computer vision", "cv", "image processing", "opencv"},
	"Statistics":      {"statistics", "statistical analysis", "statistical modeling", "a/b testing", "ab testing", "hypothesis testing"},

	// Mobile
	"iOS Development":     {"ios", "ios development", "iphone development"},
	"Android Development": {"android", "android development"},
	"React Native":        {"react native", "react-native"},
	"Flutter":             {"flutter"},

	// Testing and quality
	"Unit Testing": {
		"unit testing", "unit tests", "jest", "pytest", "junit", "mocha",
		"rspec", "tdd", "test driven development", "test-driven development",
	},
	"Integration Testing": {"integration testing", "integration tests", "end-to-end testing", "e2e testing", "cypress", "selenium", "playwright"},
	"QA":                  {"qa", "quality assurance", "quality engineering", "manual testing"},

	// Security
	"Security": {
		"security", "application security", "appsec", "cybersecurity",
		"information security", "infosec", "penetration testing", "pentesting",
	},
	"OAuth":      {"oauth", "oauth2", "oauth 2.0", "openid connect", "oidc", "sso", "single sign-on"},
	"Encryption": {"encryption", "cryptography", "tls", "ssl"},

	// Design and product
	"UI/UX Design":       {"ui/ux", "ui design", "ux design", "user experience", "user interface design", "interaction design"},
	"Figma":              {"figma"},
	"Product Management": {"product management", "product strategy", "roadmap planning", "product discovery"},
	"Agile": {
		"agile", "scrum", "kanban", "agile methodologies", "sprint planning",
		"safe", "scaled agile",
	},
	"Project Management": {
		"project management", "program management", "pmp",
		"project planning", "project delivery",
	},

	// Business and domain
	"Business Analysis":  {"business analysis", "business analyst", "requirements gathering", "requirements analysis"},
	"Financial Modeling": {"financial modeling", "financial analysis", "valuation", "forecasting"},
	"Digital Marketing": {
		"digital marketing", "seo", "sem", "content marketing",
		"email marketing", "social media marketing", "google ads", "ppc",
	},
	"Sales":            {"sales", "business development", "account management", "lead generation", "crm"},
	"Customer Success": {"customer success", "customer support", "customer service", "client relations"},
	"Operations":       {"operations", "operations management", "process improvement", "supply chain"},
	"Excel":            {"excel", "microsoft excel", "advanced excel", "spreadsheets", "pivot tables"},

	// Soft skills
	"Leadership": {
		"leadership", "team leadership", "people management", "mentoring",
		"mentorship", "coaching", "team building",
	},
	"Communication": {
		"communication", "communication skills", "presentation skills",
		"public speaking", "technical writing", "documentation",
	},
	"Collaboration":    {"collaboration", "teamwork", "cross-functional collaboration", "team player"},
	"Problem Solving":  {"problem solving", "problem-solving", "critical thinking", "analytical thinking", "analytical skills", "troubleshooting"},
	"Time Management":  {"time management", "prioritization", "organization", "organizational skills", "multitasking"},
	"Adaptability":     {"adaptability", "flexibility", "learning agility", "fast learner", "quick learner"},
	"Stakeholder Management": {
		"stakeholder management", "stakeholder communication",
		"stakeholder engagement", "client management",
	},
	"Negotiation":     {"negotiation", "conflict resolution", "persuasion"},
	"Decision Making": {"decision making", "decision-making", "strategic thinking", "strategic planning"},
	"Creativity":      {"creativity", "innovation", "creative thinking"},
}

// skillIndex maps every lowercase variant to its canonical skill. Built
// once at package load; read-only afterwards.
var skillIndex = buildVariantIndex(skillSynonyms)

// certificationImplications maps a keyword found in a certification name
// to the skills that certification demonstrates.
var certificationImplications = map[string][]string{
	"kubernetes":    {"Kubernetes", "Docker", "Container Orchestration"},
	"cka":           {"Kubernetes", "Docker", "Container Orchestration"},
	"ckad":          {"Kubernetes", "Docker", "Container Orchestration"},
	"aws":           {"AWS", "Serverless"},
	"solutions architect": {"AWS", "Microservices"},
	"azure":         {"Azure"},
	"google cloud":  {"Google Cloud"},
	"gcp":           {"Google Cloud"},
	"terraform":     {"Terraform"},
	"docker":        {"Docker"},
	"security+":     {"Security"},
	"cissp":         {"Security", "Encryption"},
	"ceh":           {"Security"},
	"scrum":         {"Agile"},
	"csm":           {"Agile"},
	"safe":          {"Agile"},
	"pmp":           {"Project Management"},
	"prince2":       {"Project Management"},
	"capm":          {"Project Management"},
	"data engineer": {"Data Engineering", "SQL"},
	"data analyst":  {"Data Analysis", "SQL"},
	"machine learning": {"Machine Learning", "Python"},
	"tensorflow":    {"TensorFlow", "Machine Learning"},
	"databricks":    {"Apache Spark", "Data Engineering"},
	"snowflake":     {"Snowflake", "SQL"},
	"tableau":       {"Data Visualization"},
	"power bi":      {"Data Visualization"},
	"salesforce":    {"Sales", "Business Analysis"},
	"oracle":        {"Oracle", "SQL"},
	"java":          {"Java"},
	"python":        {"Python"},
	"ccna":          {"Linux", "Security"},
	"red hat":       {"Linux"},
	"rhce":          {"Linux"},
	"itil":          {"Operations"},
	"six sigma":     {"Operations", "Process Improvement"},
	"cfa":           {"Financial Modeling"},
	"cpa":           {"Financial Modeling"},
	"google analytics": {"Digital Marketing"},
	"hubspot":       {"Digital Marketing", "Sales"},
}
