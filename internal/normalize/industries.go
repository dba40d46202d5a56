package normalize

import "strings"

// companyIndustries maps well-known employers to their primary industry.
// Lookup is case-insensitive on the normalized company name.
var companyIndustries = map[string]string{
	// Technology
	"google":     "Technology",
	"alphabet":   "Technology",
	"microsoft":  "Technology",
	"apple":      "Technology",
	"amazon":     "Technology",
	"meta":       "Technology",
	"facebook":   "Technology",
	"netflix":    "Technology",
	"ibm":        "Technology",
	"oracle":     "Technology",
	"sap":        "Technology",
	"salesforce": "Technology",
	"adobe":      "Technology",
	"intel":      "Technology",
	"nvidia":     "Technology",
	"amd":        "Technology",
	"cisco":      "Technology",
	"dell":       "Technology",
	"hp":         "Technology",
	"vmware":     "Technology",
	"atlassian":  "Technology",
	"shopify":    "Technology",
	"stripe":     "Technology",
	"square":     "Technology",
	"block":      "Technology",
	"twilio":     "Technology",
	"datadog":    "Technology",
	"snowflake":  "Technology",
	"databricks": "Technology",
	"openai":     "Technology",
	"anthropic":  "Technology",
	"uber":       "Technology",
	"lyft":       "Technology",
	"airbnb":     "Technology",
	"doordash":   "Technology",
	"instacart":  "Technology",
	"spotify":    "Technology",
	"slack":      "Technology",
	"zoom":       "Technology",
	"dropbox":    "Technology",
	"github":     "Technology",
	"gitlab":     "Technology",
	"mongodb":    "Technology",
	"elastic":    "Technology",
	"palantir":   "Technology",
	"cloudflare": "Technology",
	"twitter":    "Technology",
	"x corp":     "Technology",
	"linkedin":   "Technology",
	"pinterest":  "Technology",
	"reddit":     "Technology",
	"snap":       "Technology",
	"tiktok":     "Technology",
	"bytedance":  "Technology",
	"tencent":    "Technology",
	"alibaba":    "Technology",
	"baidu":      "Technology",
	"samsung":    "Technology",
	"sony":       "Technology",
	"accenture":  "Consulting",
	"deloitte":   "Consulting",
	"kpmg":       "Consulting",
	"ey":         "Consulting",
	"ernst & young": "Consulting",
	"pwc":        "Consulting",
	"mckinsey":   "Consulting",
	"bain":       "Consulting",
	"boston consulting group": "Consulting",
	"bcg":        "Consulting",
	"capgemini":  "Consulting",
	"infosys":    "Consulting",
	"wipro":      "Consulting",
	"tcs":        "Consulting",
	"tata consultancy services": "Consulting",
	"cognizant":  "Consulting",
	"thoughtworks": "Consulting",

	// Finance
	"goldman sachs":    "Finance",
	"morgan stanley":   "Finance",
	"jpmorgan":         "Finance",
	"jp morgan":        "Finance",
	"jpmorgan chase":   "Finance",
	"bank of america":  "Finance",
	"citigroup":        "Finance",
	"citi":             "Finance",
	"wells fargo":      "Finance",
	"hsbc":             "Finance",
	"barclays":         "Finance",
	"ubs":              "Finance",
	"credit suisse":    "Finance",
	"deutsche bank":    "Finance",
	"blackrock":        "Finance",
	"fidelity":         "Finance",
	"vanguard":         "Finance",
	"charles schwab":   "Finance",
	"american express": "Finance",
	"visa":             "Finance",
	"mastercard":       "Finance",
	"paypal":           "Finance",
	"robinhood":        "Finance",
	"coinbase":         "Finance",
	"plaid":            "Finance",
	"chime":            "Finance",
	"sofi":             "Finance",
	"capital one":      "Finance",
	"discover":         "Finance",
	"bloomberg":        "Finance",
	"two sigma":        "Finance",
	"citadel":          "Finance",
	"jane street":      "Finance",
	"de shaw":          "Finance",
	"point72":          "Finance",

	// Healthcare
	"unitedhealth":        "Healthcare",
	"unitedhealth group":  "Healthcare",
	"cvs health":          "Healthcare",
	"anthem":              "Healthcare",
	"elevance":            "Healthcare",
	"cigna":               "Healthcare",
	"humana":              "Healthcare",
	"kaiser permanente":   "Healthcare",
	"pfizer":              "Healthcare",
	"moderna":             "Healthcare",
	"johnson & johnson":   "Healthcare",
	"merck":               "Healthcare",
	"abbvie":              "Healthcare",
	"eli lilly":           "Healthcare",
	"novartis":            "Healthcare",
	"roche":               "Healthcare",
	"astrazeneca":         "Healthcare",
	"gsk":                 "Healthcare",
	"medtronic":           "Healthcare",
	"epic systems":        "Healthcare",
	"cerner":              "Healthcare",
	"teladoc":             "Healthcare",
	"oscar health":        "Healthcare",

	// Retail and consumer
	"walmart":    "Retail",
	"target":     "Retail",
	"costco":     "Retail",
	"home depot": "Retail",
	"lowes":      "Retail",
	"best buy":   "Retail",
	"ikea":       "Retail",
	"nike":       "Retail",
	"adidas":     "Retail",
	"starbucks":  "Retail",
	"mcdonald's": "Retail",
	"wayfair":    "Retail",
	"etsy":       "Retail",
	"ebay":       "Retail",
	"chewy":      "Retail",
	"procter & gamble": "Consumer Goods",
	"unilever":         "Consumer Goods",
	"coca-cola":        "Consumer Goods",
	"pepsico":          "Consumer Goods",
	"nestle":           "Consumer Goods",

	// Manufacturing, energy, automotive, aerospace
	"general electric": "Manufacturing",
	"ge":               "Manufacturing",
	"siemens":          "Manufacturing",
	"honeywell":        "Manufacturing",
	"3m":               "Manufacturing",
	"caterpillar":      "Manufacturing",
	"john deere":       "Manufacturing",
	"tesla":            "Automotive",
	"ford":             "Automotive",
	"general motors":   "Automotive",
	"gm":               "Automotive",
	"toyota":           "Automotive",
	"honda":            "Automotive",
	"bmw":              "Automotive",
	"volkswagen":       "Automotive",
	"rivian":           "Automotive",
	"boeing":           "Aerospace",
	"airbus":           "Aerospace",
	"lockheed martin":  "Aerospace",
	"northrop grumman": "Aerospace",
	"spacex":           "Aerospace",
	"blue origin":      "Aerospace",
	"raytheon":         "Aerospace",
	"exxonmobil":       "Energy",
	"chevron":          "Energy",
	"shell":            "Energy",
	"bp":               "Energy",
	"schlumberger":     "Energy",
	"duke energy":      "Energy",
	"nextera":          "Energy",

	// Media, telecom, education, government
	"disney":        "Media",
	"warner bros":   "Media",
	"comcast":       "Media",
	"nbcuniversal":  "Media",
	"paramount":     "Media",
	"the new york times": "Media",
	"at&t":          "Telecommunications",
	"verizon":       "Telecommunications",
	"t-mobile":      "Telecommunications",
	"vodafone":      "Telecommunications",
	"coursera":      "Education",
	"udemy":         "Education",
	"duolingo":      "Education",
	"chegg":         "Education",
	"pearson":       "Education",
	"khan academy":  "Education",
}

// industryKeywords maps an industry to the vocabulary that signals it in
// free text. An industry is only inferred from text when at least
// industryKeywordThreshold distinct keywords hit, preventing one-word
// false positives.
var industryKeywords = map[string][]string{
	"Technology": {
		"software", "saas", "platform", "api", "cloud", "startup",
		"engineering", "infrastructure", "deployment", "web application",
		"mobile app", "technology",
	},
	"Finance": {
		"banking", "trading", "investment", "portfolio", "fintech",
		"payments", "lending", "brokerage", "hedge fund", "asset management",
		"compliance", "regulatory", "capital markets", "underwriting",
	},
	"Healthcare": {
		"patient", "clinical", "hospital", "medical", "healthcare",
		"pharma", "pharmaceutical", "ehr", "hipaa", "telehealth",
		"biotech", "diagnostics", "health insurance",
	},
	"E-commerce": {
		"e-commerce", "ecommerce", "marketplace", "checkout", "cart",
		"fulfillment", "merchandising", "storefront", "conversion rate",
		"order management",
	},
	"Retail": {
		"retail", "store", "pos", "point of sale", "inventory",
		"merchandise", "omnichannel", "shopper",
	},
	"Education": {
		"education", "students", "curriculum", "learning platform",
		"edtech", "course", "instruction", "classroom", "lms",
	},
	"Media": {
		"media", "streaming", "content production", "publishing",
		"advertising", "broadcast", "editorial", "audience",
	},
	"Manufacturing": {
		"manufacturing", "factory", "production line", "assembly",
		"quality control", "lean", "supply chain", "plant",
	},
	"Energy": {
		"energy", "oil", "gas", "renewable", "solar", "wind", "utility",
		"grid", "drilling",
	},
	"Automotive": {
		"automotive", "vehicle", "autonomous driving", "ev", "powertrain",
		"dealership",
	},
	"Aerospace": {
		"aerospace", "aircraft", "satellite", "spacecraft", "avionics",
		"defense",
	},
	"Telecommunications": {
		"telecom", "telecommunications", "wireless", "broadband", "5g",
		"network operator", "carrier",
	},
	"Consulting": {
		"consulting", "client engagement", "advisory", "engagement team",
		"deliverables", "practice",
	},
	"Government": {
		"government", "federal", "public sector", "municipal", "agency",
		"policy", "procurement",
	},
	"Real Estate": {
		"real estate", "property", "leasing", "tenant", "brokerage",
		"proptech", "mortgage",
	},
	"Logistics": {
		"logistics", "shipping", "freight", "warehouse", "last mile",
		"distribution", "fleet",
	},
	"Gaming": {
		"gaming", "game", "player", "monetization", "game engine",
		"multiplayer", "live ops",
	},
	"Insurance": {
		"insurance", "claims", "actuarial", "policyholder", "premiums",
		"insurtech",
	},
}

// industryKeywordThreshold is the minimum number of distinct keyword hits
// before an industry is inferred from text.
const industryKeywordThreshold = 2

// IndustryForCompany looks up the industry of a known employer.
func IndustryForCompany(company string) (string, bool) {
	key := strings.ToLower(strings.TrimSpace(company))
	key = strings.TrimSuffix(key, ", inc.")
	key = strings.TrimSuffix(key, ", inc")
	key = strings.TrimSuffix(key, " inc.")
	key = strings.TrimSuffix(key, " inc")
	key = strings.TrimSuffix(key, " llc")
	key = strings.TrimSuffix(key, " ltd")
	key = strings.TrimSuffix(key, " corp")
	key = strings.TrimSuffix(key, " corporation")
	key = strings.TrimSpace(strings.TrimSuffix(key, ","))
	industry, ok := companyIndustries[key]
	return industry, ok
}

// DetectIndustries infers industries from free text by keyword density.
// An industry is accepted only when at least two distinct keywords from
// its set appear. Results are sorted alphabetically for determinism.
func DetectIndustries(text string) []string {
	lower := strings.ToLower(text)
	var out []string
	for industry, keywords := range industryKeywords {
		hits := 0
		for _, kw := range keywords {
			if containsWholePhrase(lower, kw) {
				hits++
				if hits >= industryKeywordThreshold {
					break
				}
			}
		}
		if hits >= industryKeywordThreshold {
			out = append(out, industry)
		}
	}
	sortStrings(out)
	return out
}
