// Package vocab holds the static lookup tables that drive query
// normalization, auto-tagging, and issue classification. All tables are
// initialized once at process start and never mutated.
package vocab

import "strings"

// Stopwords removed from queries and case text before matching.
var Stopwords = map[string]struct{}{}

var stopwordList = []string{
	"a", "an", "the", "and", "or", "but", "if", "then", "else", "when",
	"at", "by", "for", "with", "about", "against", "between", "into",
	"through", "during", "before", "after", "above", "below", "to", "from",
	"up", "down", "in", "out", "on", "off", "over", "under", "again",
	"further", "once", "here", "there", "all", "any", "both", "each",
	"few", "more", "most", "other", "some", "such", "no", "nor", "not",
	"only", "own", "same", "so", "than", "too", "very", "can", "will",
	"just", "should", "now", "i", "me", "my", "myself", "we", "our",
	"ours", "you", "your", "yours", "he", "him", "his", "she", "her",
	"it", "its", "they", "them", "their", "what", "which", "who", "whom",
	"this", "that", "these", "those", "am", "is", "are", "was", "were",
	"be", "been", "being", "have", "has", "had", "having", "do", "does",
	"did", "doing", "of", "as", "until", "while", "how", "why", "where",
	"wont", "doesnt", "didnt", "cant", "please",
}

// Synonyms expands citizen vocabulary into legal search terms.
// Values are appended to the token list in declaration order.
var Synonyms = map[string][]string{
	"landlord":  {"tenant", "lease", "rent"},
	"tenant":    {"landlord", "lease", "eviction"},
	"deposit":   {"security deposit", "refund"},
	"rent":      {"lease", "tenancy"},
	"evicted":   {"eviction", "possession"},
	"fired":     {"termination", "dismissal", "retrenchment"},
	"sacked":    {"termination", "dismissal"},
	"salary":    {"wages", "employment"},
	"boss":      {"employer", "workplace"},
	"cheated":   {"cheating", "fraud"},
	"scam":      {"fraud", "cheating"},
	"stolen":    {"theft"},
	"beaten":    {"assault"},
	"polluted":  {"pollution", "environment"},
	"divorce":   {"matrimonial", "maintenance"},
	"husband":   {"matrimonial", "domestic"},
	"wife":      {"matrimonial", "domestic"},
	"online":    {"cyber", "internet"},
	"hacked":    {"hacking", "unauthorized access"},
	"refund":    {"consumer", "deficiency"},
	"defective": {"consumer", "product"},
	"builder":   {"real estate", "possession"},
	"arrested":  {"arrest", "bail"},
	"police":    {"fir", "arrest"},
}

// IssueArea is one legal domain with its detection keywords. Order matters:
// a tie in keyword-hit scoring is broken by declaration order.
type IssueArea struct {
	Name     string
	Keywords []string
}

// GeneralDomain is returned when no issue area scores above zero.
const GeneralDomain = "General Legal Issue"

// IssueAreas maps coarse legal domains to their keyword phrases.
var IssueAreas = []IssueArea{
	{"Constitutional Law", []string{
		"fundamental rights", "constitution", "article 14", "article 19",
		"article 21", "right to equality", "free speech", "liberty",
		"writ petition", "constitutional", "directive principles",
	}},
	{"Criminal Law", []string{
		"murder", "theft", "assault", "criminal", "ipc", "crpc", "bail",
		"fir", "arrest", "imprisonment", "culpable homicide", "robbery",
		"kidnapping", "fraud", "cheating", "forgery", "dowry",
	}},
	{"Property Law", []string{
		"property", "land", "tenant", "landlord", "eviction", "rent",
		"possession", "title", "deed", "encroachment", "trespass",
		"security deposit", "lease",
	}},
	{"Consumer Protection", []string{
		"consumer", "deficiency", "service", "product", "complaint",
		"unfair trade", "compensation", "defective", "goods",
		"consumer protection act",
	}},
	{"Labor Law", []string{
		"employment", "worker", "wages", "termination", "industrial",
		"labour", "labor", "retrenchment", "gratuity", "provident fund",
		"workplace", "dismissal", "employer",
	}},
	{"Cyber Law", []string{
		"cyber", "data", "privacy", "online", "internet", "hacking",
		"information technology", "it act", "digital", "electronic",
		"social media",
	}},
	{"Environmental Law", []string{
		"environment", "pollution", "forest", "wildlife", "ngt",
		"green tribunal", "waste", "emission", "ecological", "climate",
	}},
	{"Family Law", []string{
		"divorce", "custody", "alimony", "maintenance", "marriage",
		"domestic violence", "child", "adoption", "guardianship",
		"matrimonial",
	}},
}

// IsKnownDomain reports whether name is one of the configured issue areas.
func IsKnownDomain(name string) bool {
	for _, area := range IssueAreas {
		if area.Name == name {
			return true
		}
	}
	return false
}

// LegalPhrases are multi-word phrases scanned for literally during keyword
// extraction.
var LegalPhrases = []string{
	"basic structure", "fundamental rights", "right to life",
	"personal liberty", "due process", "natural justice",
	"sexual harassment", "domestic violence", "data protection",
	"unfair trade", "public interest", "habeas corpus",
	"preventive detention", "death sentence", "medical negligence",
	"wrongful termination", "consumer protection", "data localization",
	"financial inclusion", "right to privacy", "right to equality",
	"free speech", "speedy trial", "rent control", "industrial dispute",
	"product liability", "workplace harassment", "amendment power",
	"basic structure doctrine", "women rights", "economic abuse",
	"protection order", "trade secrets", "unauthorized access",
	"secured assets", "delayed possession", "writ petition",
}

// legalVocab is the single-word legal vocabulary used by keyword extraction.
// Seeded from IssueAreas keywords, extended with hand-picked terms.
var legalVocab = map[string]struct{}{}

var extraLegalTerms = []string{
	"constitution", "constitutional", "fundamental", "writ", "petition",
	"appeal", "plaintiff", "defendant", "respondent", "petitioner",
	"judgement", "judgment", "order", "decree", "injunction",
	"negligence", "liability", "damages", "compensation", "penalty",
	"conviction", "acquittal", "sentence", "bail", "arrest",
	"eviction", "tenant", "landlord", "lease", "possession",
	"divorce", "custody", "maintenance", "alimony", "guardianship",
	"pollution", "environment", "forest", "wildlife", "ecological",
	"privacy", "data", "cyber", "hacking", "digital", "surveillance",
	"harassment", "discrimination", "equality", "liberty", "freedom",
	"conspiracy", "terrorism", "detention", "habeas", "corpus",
	"retrenchment", "termination", "industrial", "wages", "employment",
	"consumer", "deficiency", "defective", "warranty", "refund",
	"property", "land", "construction", "demolition", "encroachment",
	"medical", "hospital", "patient", "doctor",
	"customs", "import", "tariff", "assessment", "excise",
	"bank", "loan", "secured", "credit", "mortgage",
	"pension", "welfare", "widow", "social", "scheme",
	"criminal", "cruelty", "desertion", "matrimonial", "family",
	"factory", "emission", "waste", "goods", "product", "service",
	"flat", "commercial", "trade", "secrets", "unauthorized", "access",
	"municipal", "trespass", "worker", "employer", "workplace",
	"dismissal", "forgery", "fraud", "speedy", "trial", "amendment",
	"doctrine", "protection", "violence", "economic", "abuse",
	"women", "gender", "pil", "public", "interest",
}

// IsLegalTerm reports whether a lowercased token is in the curated legal
// vocabulary.
func IsLegalTerm(token string) bool {
	_, ok := legalVocab[token]
	return ok
}

// SubIssue maps a fine-grained phrase to its issue label. Matched in
// declaration order; labels already present are not appended twice.
type SubIssue struct {
	Phrase string
	Label  string
}

var SubIssues = []SubIssue{
	{"basic structure doctrine", "Basic structure doctrine"},
	{"basic structure", "Basic structure doctrine"},
	{"right to life", "Right to life and personal liberty"},
	{"right to privacy", "Right to privacy"},
	{"right to equality", "Right to equality"},
	{"sexual harassment", "Sexual harassment at workplace"},
	{"domestic violence", "Domestic violence"},
	{"wrongful termination", "Wrongful termination"},
	{"preventive detention", "Preventive detention"},
	{"environmental clearance", "Environmental clearance"},
	{"data protection", "Data protection"},
	{"consumer complaint", "Consumer rights dispute"},
	{"bail application", "Bail jurisprudence"},
	{"eviction", "Tenant eviction"},
	{"divorce", "Matrimonial dispute"},
	{"custody", "Child custody"},
	{"customs duty", "Customs/tariff dispute"},
	{"customs assessment", "Customs/tariff dispute"},
	{"imported goods", "Customs/tariff dispute"},
	{"retrenchment", "Industrial labor dispute"},
	{"widow pension", "Social welfare / pension rights"},
	{"pension", "Social welfare / pension"},
	{"habeas corpus", "Habeas corpus / personal liberty"},
	{"unauthorized construction", "Property / construction dispute"},
	{"demolition", "Property / construction dispute"},
	{"cheating and forgery", "Criminal fraud"},
	{"cheating", "Criminal fraud"},
	{"data localization", "Data governance"},
	{"micro-credit", "Financial inclusion"},
	{"self-help group", "Financial inclusion"},
	{"homosexual", "LGBTQ+ rights"},
	{"section 377", "Decriminalization of homosexuality"},
	{"decriminalized", "LGBTQ+ rights"},
	{"protection order", "Domestic violence / protection orders"},
	{"trade secrets", "Trade secret misappropriation"},
	{"hacking", "Cyber crime"},
	{"unauthorized access", "Cyber crime"},
	{"terrorism", "Terrorism / national security"},
	{"conspiracy", "Criminal conspiracy"},
	{"defective", "Consumer - defective product"},
	{"delayed possession", "Consumer - delayed delivery"},
	{"medical negligence", "Medical negligence / standard of care"},
	{"pollution clearance", "Environmental violation"},
	{"forest", "Forest conservation"},
}

// Subcategory refines a broad domain into an actionable label using
// weighted phrase matching (multi-word phrase = 3, single word = 1).
type Subcategory struct {
	Name     string
	Keywords []string
}

// PropertySubcategories refine "Property Law" for the empowerment pipeline.
var PropertySubcategories = []Subcategory{
	{"Security Deposit Recovery", []string{
		"security deposit", "deposit", "advance", "refund deposit",
	}},
	{"Tenancy Dispute", []string{
		"tenant", "landlord", "rent", "eviction", "lease", "tenancy",
	}},
	{"Land Title Dispute", []string{
		"title", "deed", "ownership", "registration", "sale agreement",
	}},
	{"Encroachment / Trespass", []string{
		"encroachment", "trespass", "illegal construction", "boundary",
	}},
}

// CaseExclusionKeywords disqualify a case from empowerment precedents when
// found in its name or summary. These topics mislead ordinary disputes.
var CaseExclusionKeywords = []string{
	"terrorism", "terrorist", "habeas corpus", "preventive detention",
	"parliament attack", "death sentence", "public safety act",
}

// StatuteBlacklistPatterns filter statutes out of empowerment guidance by
// lowercase substring match.
var StatuteBlacklistPatterns = []string{
	"prevention of terrorism", "public safety act", "evidence act",
	"unlawful activities",
}

func init() {
	for _, w := range stopwordList {
		Stopwords[w] = struct{}{}
	}
	for _, area := range IssueAreas {
		for _, kw := range area.Keywords {
			for _, word := range strings.Fields(strings.ToLower(kw)) {
				legalVocab[word] = struct{}{}
			}
		}
	}
	for _, t := range extraLegalTerms {
		legalVocab[t] = struct{}{}
	}
}
