package vocab

// RoadmapStep is one entry in an action roadmap template.
type RoadmapStep struct {
	Title       string
	Description string
}

// ActionRoadmaps are deterministic step templates keyed by legal area.
var ActionRoadmaps = map[string][]RoadmapStep{
	"Constitutional Law": {
		{"Document the Violation", "Collect evidence of the fundamental rights violation."},
		{"Consult a Constitutional Lawyer", "Seek legal counsel specializing in constitutional matters."},
		{"File a Writ Petition", "Approach the High Court or Supreme Court under Article 226 or Article 32."},
		{"Follow Up on Hearings", "Attend scheduled court dates and comply with directions."},
	},
	"Criminal Law": {
		{"File an FIR", "Report the crime at the nearest police station."},
		{"Collect Evidence", "Preserve all physical and digital evidence related to the crime."},
		{"Engage a Criminal Lawyer", "Hire an advocate experienced in criminal proceedings."},
		{"Attend Court Proceedings", "Cooperate with the investigation and attend all hearings."},
	},
	"Property Law": {
		{"Gather Property Documents", "Collect title deeds, sale agreements, and registration papers."},
		{"Serve a Legal Notice", "Send a formal notice to the opposing party demanding resolution."},
		{"Attempt Mediation", "Try to resolve the dispute through an authorized mediator."},
		{"File a Civil Suit", "Approach the appropriate civil court for relief."},
	},
	"Consumer Protection": {
		{"Send a Written Complaint", "Send a formal complaint to the service provider or manufacturer."},
		{"File with Consumer Forum", "Lodge a complaint with the District Consumer Disputes Redressal Forum."},
		{"Attach Evidence", "Include bills, receipts, warranties, and correspondence."},
		{"Attend Hearings", "Follow up on the complaint and attend scheduled hearings."},
	},
	"Labor Law": {
		{"Document Workplace Issue", "Keep records of employment terms, communications, and violations."},
		{"File Complaint with Labor Commissioner", "Approach the labor commissioner or inspector in your jurisdiction."},
		{"Seek Conciliation", "Request conciliation through the industrial disputes mechanism."},
		{"Approach the Labor Court", "If unresolved, file a case before the Labor Court or Industrial Tribunal."},
	},
	"Cyber Law": {
		{"Report the Incident", "File a complaint on the National Cyber Crime Reporting Portal."},
		{"Preserve Digital Evidence", "Take screenshots, save URLs, and keep communication records."},
		{"File an FIR", "Lodge an FIR at the nearest cyber crime police station."},
		{"Engage a Cyber Law Expert", "Consult an advocate skilled in IT Act and data privacy cases."},
	},
	"Environmental Law": {
		{"Document the Violation", "Photograph or record evidence of the environmental damage."},
		{"Complain to Pollution Control Board", "File a complaint with the State or Central Pollution Control Board."},
		{"Approach the NGT", "File an application before the National Green Tribunal."},
		{"Follow Up", "Monitor compliance with any orders issued."},
	},
	"Family Law": {
		{"Document Your Situation", "Gather marriage certificates, communications, and evidence of issues."},
		{"Consult a Family Lawyer", "Seek advice from an advocate specializing in family law."},
		{"Attempt Mediation", "Try to resolve disputes through family court counseling or mediation."},
		{"File the Appropriate Petition", "Approach the Family Court with the relevant application."},
	},
	"Security Deposit Recovery": {
		{"Review the Rental Agreement", "Check the deposit clause, deductions allowed, and notice period."},
		{"Demand Refund in Writing", "Send the landlord a written demand with a clear deadline."},
		{"Serve a Legal Notice", "Have an advocate issue a formal notice for recovery of the deposit."},
		{"File a Civil Suit or Consumer Complaint", "Approach the civil court or rent authority for recovery."},
	},
	"Tenancy Dispute": {
		{"Gather Tenancy Records", "Collect the rent agreement, receipts, and correspondence."},
		{"Serve a Legal Notice", "Send a formal notice stating the dispute and relief sought."},
		{"Approach the Rent Authority", "File before the rent controller or authority in your state."},
		{"File a Civil Suit", "Escalate to the civil court if the dispute remains unresolved."},
	},
}

// DefaultRoadmap is used when no issue-specific template exists.
var DefaultRoadmap = []RoadmapStep{
	{"Understand Your Rights", "Research the legal provisions applicable to your situation."},
	{"Consult a Lawyer", "Seek professional legal advice from a qualified advocate."},
	{"Send a Legal Notice", "Issue a formal notice to the concerned parties."},
	{"File in Court", "Approach the appropriate court or tribunal for relief."},
}
