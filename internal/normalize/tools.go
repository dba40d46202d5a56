package normalize

// toolVariants maps each canonical tool name to the phrases it may appear
// under in resume text. Tools are narrower than skills: concrete,
// installable software a candidate works with day to day.
var toolVariants = map[string][]string{
	"Kubernetes":     {"k8s", "kubernetes", "kubectl"},
	"Docker":         {"docker", "docker compose", "docker-compose", "podman"},
	"Helm":           {"helm", "helm charts"},
	"Terraform":      {"terraform"},
	"Ansible":        {"ansible"},
	"Jenkins":        {"jenkins"},
	"GitHub Actions": {"github actions", "gh actions"},
	"GitLab CI":      {"gitlab ci", "gitlab-ci", "gitlab pipelines"},
	"CircleCI":       {"circleci", "circle ci"},
	"ArgoCD":         {"argocd", "argo cd"},
	"Git":            {"git", "github", "gitlab", "bitbucket"},
	"Jira":           {"jira", "atlassian jira"},
	"Confluence":     {"confluence"},
	"Slack":          {"slack"},
	"Notion":         {"notion"},
	"Trello":         {"trello"},
	"Asana":          {"asana"},
	"Linear":         {"linear app"},
	"Figma":          {"figma"},
	"Sketch":         {"sketch app"},
	"Adobe Photoshop": {"photoshop", "adobe photoshop"},
	"Adobe Illustrator": {"illustrator", "adobe illustrator"},
	"VS Code":        {"vs code", "vscode", "visual studio code"},
	"IntelliJ":       {"intellij", "intellij idea", "pycharm", "goland", "webstorm"},
	"Vim":            {"vim", "neovim"},
	"Postman":        {"postman"},
	"Insomnia":       {"insomnia rest"},
	"Swagger":        {"swagger", "openapi"},
	"Tableau":        {"tableau"},
	"Power BI":       {"power bi", "powerbi"},
	"Looker":         {"looker", "looker studio"},
	"Excel":          {"excel", "microsoft excel"},
	"Google Sheets":  {"google sheets"},
	"Airflow":        {"airflow", "apache airflow"},
	"dbt":            {"dbt"},
	"Snowflake":      {"snowflake"},
	"Databricks":     {"databricks"},
	"Kafka":          {"kafka", "apache kafka"},
	"RabbitMQ":       {"rabbitmq", "rabbit mq"},
	"Redis":          {"redis"},
	"PostgreSQL":     {"postgresql", "postgres", "psql"},
	"MySQL":          {"mysql"},
	"MongoDB":        {"mongodb", "mongo"},
	"Elasticsearch":  {"elasticsearch", "kibana", "opensearch"},
	"Prometheus":     {"prometheus"},
	"Grafana":        {"grafana"},
	"Datadog":        {"datadog"},
	"New Relic":      {"new relic", "newrelic"},
	"Sentry":         {"sentry"},
	"PagerDuty":      {"pagerduty"},
	"Splunk":         {"splunk"},
	"Nginx":          {"nginx"},
	"Salesforce":     {"salesforce", "sfdc"},
	"HubSpot":        {"hubspot"},
	"Zendesk":        {"zendesk"},
	"Google Analytics": {"google analytics", "ga4"},
	"Segment":        {"segment io"},
	"Amplitude":      {"amplitude"},
	"Mixpanel":       {"mixpanel"},
	"SAP":            {"sap", "sap erp", "sap hana"},
	"Workday":        {"workday"},
	"QuickBooks":     {"quickbooks"},
	"Webpack":        {"webpack"},
	"Vite":           {"vite"},
	"npm":            {"npm", "yarn", "pnpm"},
	"Jest":           {"jest"},
	"Cypress":        {"cypress"},
	"Selenium":       {"selenium"},
	"Playwright":     {"playwright"},
	"Pytest":         {"pytest"},
	"Unity":          {"unity", "unity3d"},
	"Unreal Engine":  {"unreal", "unreal engine"},
	"AutoCAD":        {"autocad"},
	"MATLAB":         {"matlab"},
	"Jupyter":        {"jupyter", "jupyter notebook", "jupyter notebooks"},
	"Colab":          {"google colab", "colab"},
	"Hugging Face":   {"hugging face", "huggingface"},
	"MLflow":         {"mlflow"},
	"Vault":          {"hashicorp vault"},
	"Consul":         {"hashicorp consul"},
	"Istio":          {"istio", "service mesh"},
	"Vercel":         {"vercel"},
	"Netlify":        {"netlify"},
	"Firebase":       {"firebase"},
	"Supabase":       {"supabase"},
	"Stripe":         {"stripe api", "stripe"},
	"Twilio":         {"twilio"},
}

// toolIndex maps every lowercase variant to its canonical tool name.
var toolIndex = buildVariantIndex(toolVariants)
