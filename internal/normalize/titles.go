package normalize

// titleAbbreviations expands common title shorthand. Keys are matched as
// whole words, case-insensitively, and replaced in place.
var titleAbbreviations = map[string]string{
	"sr":        "Senior",
	"sr.":       "Senior",
	"snr":       "Senior",
	"jr":        "Junior",
	"jr.":       "Junior",
	"mgr":       "Manager",
	"eng":       "Engineer",
	"engr":      "Engineer",
	"dev":       "Developer",
	"swe":       "Software Engineer",
	"sde":       "Software Development Engineer",
	"pm":        "Product Manager",
	"tpm":       "Technical Program Manager",
	"em":        "Engineering Manager",
	"qa":        "Quality Assurance",
	"ba":        "Business Analyst",
	"da":        "Data Analyst",
	"ds":        "Data Scientist",
	"ml":        "Machine Learning",
	"ai":        "AI",
	"ui":        "UI",
	"ux":        "UX",
	"vp":        "Vice President",
	"svp":       "Senior Vice President",
	"evp":       "Executive Vice President",
	"avp":       "Assistant Vice President",
	"cto":       "Chief Technology Officer",
	"ceo":       "Chief Executive Officer",
	"coo":       "Chief Operating Officer",
	"cfo":       "Chief Financial Officer",
	"cio":       "Chief Information Officer",
	"cpo":       "Chief Product Officer",
	"ciso":      "Chief Information Security Officer",
	"dir":       "Director",
	"dir.":      "Director",
	"assoc":     "Associate",
	"assoc.":    "Associate",
	"asst":      "Assistant",
	"asst.":     "Assistant",
	"mktg":      "Marketing",
	"biz":       "Business",
	"ops":       "Operations",
	"devops":    "DevOps",
	"sre":       "Site Reliability Engineer",
	"dba":       "Database Administrator",
	"sysadmin":  "Systems Administrator",
	"fe":        "Frontend",
	"be":        "Backend",
	"fullstack": "Full Stack",
	"hr":        "Human Resources",
	"acct":      "Account",
	"exec":      "Executive",
	"mgmt":      "Management",
	"spec":      "Specialist",
	"coord":     "Coordinator",
	"admin":     "Administrator",
	"rep":       "Representative",
	"cons":      "Consultant",
	"arch":      "Architect",
	"tech":      "Technical",
	"ii":        "II",
	"iii":       "III",
	"iv":        "IV",
}

// SeniorityLevel is a rung of the 9-level title ladder, intern to chief.
type SeniorityLevel int

const (
	SeniorityUnknown SeniorityLevel = iota
	SeniorityIntern
	SeniorityJunior
	SeniorityMid
	SenioritySenior
	SeniorityStaff
	SeniorityLead
	SeniorityManager
	SeniorityDirector
	SeniorityExecutive
)

func (l SeniorityLevel) String() string {
	switch l {
	case SeniorityIntern:
		return "intern"
	case SeniorityJunior:
		return "junior"
	case SeniorityMid:
		return "mid"
	case SenioritySenior:
		return "senior"
	case SeniorityStaff:
		return "staff"
	case SeniorityLead:
		return "lead"
	case SeniorityManager:
		return "manager"
	case SeniorityDirector:
		return "director"
	case SeniorityExecutive:
		return "chief"
	default:
		return "unknown"
	}
}

// seniorityKeywords maps title keywords to ladder rungs. Higher rungs are
// checked first so "senior engineering manager" resolves to manager, not
// senior.
var seniorityKeywords = []struct {
	Level    SeniorityLevel
	Keywords []string
}{
	{SeniorityExecutive, []string{
		"chief", "ceo", "cto", "coo", "cfo", "cio", "cpo", "ciso",
		"president", "founder", "co-founder", "cofounder", "owner",
		"partner", "vp", "vice president",
	}},
	{SeniorityDirector, []string{"director", "head of"}},
	{SeniorityManager, []string{"manager", "management", "supervisor"}},
	{SeniorityLead, []string{"lead", "principal", "tech lead", "team lead"}},
	{SeniorityStaff, []string{"staff", "distinguished", "fellow"}},
	{SenioritySenior, []string{"senior", "sr.", "sr ", "iii", "iv"}},
	{SeniorityJunior, []string{"junior", "jr.", "jr ", "entry", "entry-level", "associate", "graduate", "trainee"}},
	{SeniorityIntern, []string{"intern", "internship", "co-op", "coop", "apprentice"}},
}
