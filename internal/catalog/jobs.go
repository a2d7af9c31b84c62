package catalog

// Jobs is the fallback job board, newest first.
var Jobs = []Job{
	{
		Slug:           "senior-hr-business-partner",
		Title:          "Senior HR Business Partner",
		Location:       "Chicago, IL",
		EmploymentType: "Full-time",
		Department:     "Consulting",
		RemoteType:     "Hybrid",
		Summary:        "Shape people strategies for high-growth clients by delivering thoughtful advisory and operational excellence across the employee lifecycle.",
		Description:    "Linque Resourcing is searching for a Senior HR Business Partner to lead strategic engagements with growth-stage and enterprise clients. You will design and execute programs across workforce planning, employee experience, and change management while guiding HR leaders through pivotal moments.",
		Responsibilities: []string{
			"Lead discovery, strategy design, and roadmap development for client engagements.",
			"Partner with executive stakeholders to translate business goals into people initiatives.",
			"Oversee HR program activation spanning talent, performance, and employee relations.",
			"Coach HR teams on change enablement, communications, and measurement best practices.",
			"Surface insights through analytics, dashboards, and executive-ready narratives.",
		},
		Qualifications: []string{
			"8+ years in HR business partnering or strategic people consulting.",
			"Demonstrated experience guiding transformations or complex change initiatives.",
			"Strong facilitation, executive presence, and stakeholder management skills.",
			"Confidence working across HR disciplines including talent, operations, and compliance.",
			"PHR/SPHR, SHRM-SCP, or similar certification preferred.",
		},
		SalaryRange: "$135,000 - $155,000 base + bonus",
		ApplyEmail:  "careers@linqueresourcing.com",
		PostedAt:    utc(2024, 2, 26),
	},
	{
		Slug:           "talent-acquisition-lead",
		Title:          "Talent Acquisition Lead",
		Location:       "Remote - USA",
		EmploymentType: "Full-time",
		Department:     "Talent",
		RemoteType:     "Remote",
		Summary:        "Design recruiting strategies, lead searches across critical roles, and coach hiring teams to deliver best-in-class candidate experiences.",
		Description:    "As a Talent Acquisition Lead you will manage senior and niche searches while consulting with clients on candidate experience, employer brand, and recruitment operations.",
		Responsibilities: []string{
			"Partner with hiring leaders to define search strategies, scorecards, and interview plans.",
			"Source, engage, and assess candidates with a focus on equity and inclusion.",
			"Deliver talent market insights and dashboards that inform decision-making.",
			"Coach interview teams on structured assessment and feedback loops.",
			"Support employer brand storytelling and recruitment marketing initiatives.",
		},
		Qualifications: []string{
			"6+ years of full-cycle recruiting experience within high-growth environments.",
			"Comfort across executive, technical, and corporate function searches.",
			"Proficiency with modern ATS/CRM tools and sourcing platforms.",
			"Strong storytelling and stakeholder coaching capabilities.",
		},
		SalaryRange: "$110,000 - $130,000 base + incentives",
		ApplyEmail:  "talent@linqueresourcing.com",
		PostedAt:    utc(2024, 2, 20),
	},
	{
		Slug:           "learning-experience-designer",
		Title:          "Learning Experience Designer",
		Location:       "Atlanta, GA",
		EmploymentType: "Contract",
		Department:     "Learning & Development",
		RemoteType:     "Hybrid",
		Summary:        "Craft blended learning journeys, curricula, and enablement toolkits that help employees build capabilities and thrive.",
		Description:    "Join the Linque Learning team to develop workshop content, microlearning assets, and measurement plans for enterprise learning programs.",
		Responsibilities: []string{
			"Collaborate with subject matter experts to translate business needs into learning outcomes.",
			"Design learner-centered experiences across virtual, in-person, and asynchronous modalities.",
			"Build enablement resources, guides, and communications that reinforce adoption.",
			"Measure effectiveness using feedback loops, surveys, and performance data.",
		},
		Qualifications: []string{
			"5+ years of instructional design or learning experience design.",
			"Portfolio showcasing learning assets across modalities.",
			"Expertise with authoring tools and learning technologies (Storyline, Rise, etc.).",
			"Comfort facilitating working sessions with stakeholders and learners.",
		},
		SalaryRange: "$75 - $90 / hour",
		ApplyEmail:  "learning@linqueresourcing.com",
		PostedAt:    utc(2024, 2, 12),
	},
	{
		Slug:           "people-operations-specialist",
		Title:          "People Operations Specialist",
		Location:       "New York, NY",
		EmploymentType: "Full-time",
		Department:     "Operations",
		RemoteType:     "Hybrid",
		Summary:        "Deliver high-touch HR support by managing onboarding, data integrity, and policy operations for our client portfolio.",
		Description:    "This role keeps people operations running smoothly by coordinating onboarding, managing employee data, and solving day-to-day HR requests.",
		Responsibilities: []string{
			"Manage onboarding workflows, background checks, and documentation.",
			"Maintain HRIS data accuracy, reporting, and compliance records.",
			"Serve as the first point of contact for employee questions and case routing.",
			"Support policy updates, audits, and knowledge base documentation.",
		},
		Qualifications: []string{
			"3+ years in HR operations, shared services, or people coordination.",
			"Working knowledge of HR systems and data integrity best practices.",
			"Detail orientation with a passion for excellent employee support.",
			"Ability to juggle multiple priorities in a fast-paced environment.",
		},
		ApplyEmail: "operations@linqueresourcing.com",
		PostedAt:   utc(2024, 1, 30),
	},
}
