package vocab

// StatuteShorthand resolves an informal reference to a canonical statute
// name. Scanned in declaration order so output stays stable across runs.
type StatuteShorthand struct {
	Shorthand string
	FullName  string
}

var StatuteShorthands = []StatuteShorthand{
	{"ipc", "Indian Penal Code, 1860"},
	{"indian penal code", "Indian Penal Code, 1860"},
	{"crpc", "Code of Criminal Procedure, 1973"},
	{"cpc", "Code of Civil Procedure, 1908"},
	{"sarfaesi", "SARFAESI Act, 2002"},
	{"it act", "Information Technology Act, 2000"},
	{"posh", "Sexual Harassment of Women at Workplace Act, 2013"},
	{"consumer protection", "Consumer Protection Act, 2019"},
	{"consumer complaint", "Consumer Protection Act, 2019"},
	{"rera", "Real Estate (Regulation and Development) Act, 2016"},
	{"real estate developer", "Real Estate (Regulation and Development) Act, 2016"},
	{"ngt", "National Green Tribunal Act, 2010"},
	{"green tribunal", "National Green Tribunal Act, 2010"},
	{"passport", "Passport Act, 1967"},
}

// ContextStatute infers statutes from a topic the text discusses even when
// the statute is never cited verbatim.
type ContextStatute struct {
	Trigger  string
	Statutes []string
}

var ContextStatutes = []ContextStatute{
	{"basic structure", []string{
		"Constitution of India, Article 368",
		"Constitution of India, Article 14",
		"Constitution of India, Article 19",
	}},
	{"right to life", []string{"Constitution of India, Article 21"}},
	{"personal liberty", []string{"Constitution of India, Article 21"}},
	{"right to privacy", []string{
		"Constitution of India, Article 21",
		"Constitution of India, Article 14",
	}},
	{"sexual harassment", []string{
		"Sexual Harassment of Women at Workplace Act, 2013",
		"Constitution of India, Article 14",
		"Constitution of India, Article 19(1)(g)",
		"Constitution of India, Article 21",
	}},
	{"domestic violence", []string{
		"Protection of Women from Domestic Violence Act, 2005",
		"Indian Penal Code, Section 498A",
	}},
	{"eviction", []string{"Transfer of Property Act, 1882"}},
	{"rent control", []string{"Transfer of Property Act, 1882"}},
	{"security deposit", []string{"Transfer of Property Act, 1882"}},
	{"retrenchment", []string{"Industrial Disputes Act, 1947"}},
	{"wrongful termination", []string{"Industrial Disputes Act, 1947"}},
	{"industrial dispute", []string{"Industrial Disputes Act, 1947"}},
	{"cheating", []string{"Indian Penal Code, Section 420"}},
	{"forgery", []string{"Indian Penal Code, Section 468"}},
	{"bail", []string{"Code of Criminal Procedure, Section 439"}},
	{"customs duty", []string{"Customs Act, 1962", "Customs Tariff Act, 1975"}},
	{"customs assessment", []string{"Customs Act, 1962", "Customs Tariff Act, 1975"}},
	{"imported goods", []string{"Customs Act, 1962", "Customs Tariff Act, 1975"}},
	{"environmental", []string{"Environment Protection Act, 1986"}},
	{"protected forest", []string{
		"Forest Conservation Act, 1980",
		"Environment Protection Act, 1986",
	}},
	{"pollution clearance", []string{"Environment Protection Act, 1986"}},
	{"factory operating", []string{"Environment Protection Act, 1986"}},
	{"defective", []string{"Consumer Protection Act, 2019"}},
	{"delayed possession", []string{
		"Consumer Protection Act, 2019",
		"Real Estate (Regulation and Development) Act, 2016",
	}},
	{"medical negligence", []string{"Consumer Protection Act, 2019"}},
	{"data localization", []string{
		"Information Technology Act, 2000",
		"Digital Personal Data Protection Act, 2023",
	}},
	{"habeas corpus", []string{
		"Constitution of India, Article 21",
		"Constitution of India, Article 22",
	}},
	{"preventive detention", []string{
		"Constitution of India, Article 22",
		"Constitution of India, Article 21",
	}},
	{"public safety act", []string{"Jammu & Kashmir Public Safety Act, 1978"}},
	{"terrorism", []string{
		"Indian Penal Code, Section 120B",
		"Prevention of Terrorism Act, 2002",
		"Evidence Act, 1872",
	}},
	{"conspiracy", []string{"Indian Penal Code, Section 120B"}},
	{"homosexual", []string{
		"Indian Penal Code, Section 377",
		"Constitution of India, Article 14",
		"Constitution of India, Article 15",
		"Constitution of India, Article 21",
	}},
	{"decriminalized", []string{"Indian Penal Code, Section 377"}},
	{"widow pension", []string{
		"Constitution of India, Article 21",
		"Constitution of India, Article 226",
	}},
	{"writ petition", []string{"Constitution of India, Article 226"}},
	{"demolition", []string{"Constitution of India, Article 300A"}},
	{"unauthorized construction", []string{"Constitution of India, Article 300A"}},
	{"aadhaar", []string{"Aadhaar Act, 2016"}},
	{"self-help group", []string{
		"Constitution of India, Article 14",
		"Constitution of India, Article 21",
	}},
	{"micro-credit", []string{
		"Constitution of India, Article 14",
		"Constitution of India, Article 21",
	}},
	{"divorce", []string{"Hindu Marriage Act, 1955"}},
	{"cruelty and desertion", []string{"Hindu Marriage Act, 1955"}},
	{"child custody", []string{"Guardians and Wards Act, 1890"}},
	{"guardianship", []string{"Guardians and Wards Act, 1890"}},
	{"hacking", []string{"Information Technology Act, 2000, Section 66"}},
	{"unauthorized access", []string{"Information Technology Act, 2000, Section 43"}},
	{"trade secrets", []string{"Indian Penal Code, Section 379"}},
}
