package catalog

// Posts is the fallback blog, newest first.
var Posts = []Post{
	{
		Slug:            "future-of-hr-digital-transformation",
		Title:           "The Future of HR: Embracing Digital Transformation",
		Category:        "Technology",
		Tags:            []string{"Digital HR", "Automation", "People Analytics"},
		Excerpt:         "Digital-first experiences and connected data ecosystems are redefining how HR teams deliver value. Here is how to modernize without losing the human element.",
		Description:     "Digital-first HR programs unlock elevated employee experiences, analytics-driven decisions, and resilient operations. Learn the pillars for transforming your HR tech stack.",
		PublishedAt:     utc(2024, 3, 15),
		ReadTimeMinutes: 7,
		HeroImage:       "/assets/blog-digital-transformation.svg",
		Content: []Section{
			{
				Body: []string{
					"HR teams are moving beyond point solutions to orchestrate connected digital ecosystems. From onboarding flows to AI-assisted workforce planning, the future of HR is defined by how seamlessly experiences are delivered.",
					"Successful transformation is not about more technology. It is about intentionally modernizing the employee journey while protecting the humanity that sits at the core of great workplaces.",
				},
			},
			{
				Heading: "Anchor on Value Moments First",
				Body: []string{
					"Prioritize redesigning moments that directly affect employee trust and productivity. Offer guided onboarding checklists, mobile-friendly knowledge bases, and frictionless talent mobility tools before layering in advanced automation.",
				},
				Bullets: []string{
					"Audit the employee lifecycle to uncover top friction points.",
					"Co-create service blueprints with HR, IT, and employee stakeholders.",
					"Treat technology as an enabler of decisions, not a replacement for them.",
				},
			},
			{
				Heading: "Build a Unified Data Story",
				Body: []string{
					"Integrated systems accelerate decision-making and scenario planning. Invest in an analytics layer that gives leaders a single view of workforce health, compliance posture, and talent pipelines.",
				},
			},
			{
				Heading: "Activate Change with Enablement",
				Body: []string{
					"Transformation succeeds when teams understand the why. Pair system rollouts with role-based enablement, feedback loops, and executive storytelling that celebrates quick wins.",
				},
			},
		},
	},
	{
		Slug:            "culture-in-hybrid-teams",
		Title:           "Building a Strong Company Culture in Hybrid Teams",
		Category:        "Culture",
		Tags:            []string{"Hybrid Work", "Belonging", "Leadership"},
		Excerpt:         "Distributed workplaces demand intentional rituals and communication rhythms. Explore how to nurture connection, clarity, and inclusion even when teams are apart.",
		Description:     "Culture no longer lives inside a single office. Learn the rituals, leadership behaviors, and enablement programs that help hybrid teams feel connected and inspired.",
		PublishedAt:     utc(2024, 3, 10),
		ReadTimeMinutes: 6,
		HeroImage:       "/assets/blog-culture.svg",
		Content: []Section{
			{
				Body: []string{
					"Culture is the expression of how work happens—behaviors, decisions, and rituals. In hybrid models, leaders must design deliberately for connection, clarity, and inclusion.",
				},
			},
			{
				Heading: "Design Shared Rituals",
				Body: []string{
					"Intentional recurring touchpoints foster belonging. Rotate facilitation across teams, create asynchronous spaces for brainstorming, and keep celebrations visible to everyone.",
				},
			},
			{
				Heading: "Equip Managers",
				Body: []string{
					"Managers are the primary translators of culture. Invest in coaching and playbooks that help them run inclusive meetings, offer developmental feedback, and champion wellbeing.",
				},
			},
			{
				Heading: "Make Recognition Effortless",
				Body: []string{
					"Recognition reinforces the values you want to scale. Blend peer-to-peer shoutouts, leadership spotlights, and embedded rewards that align with your mission.",
				},
			},
		},
	},
	{
		Slug:            "strategic-workforce-planning-2024",
		Title:           "Strategic Workforce Planning: A Guide for 2024",
		Category:        "Strategy",
		Tags:            []string{"Workforce Planning", "Scenario Modeling", "People Analytics"},
		Excerpt:         "Winning organizations treat workforce planning as a continuous, data-informed discipline. Here is how to map skills, align demand, and stay agile in 2024.",
		Description:     "Strategic workforce planning blends demand forecasting with actionable insights about skills, location strategies, and talent readiness. Build a model that adapts to market signal.",
		PublishedAt:     utc(2024, 3, 5),
		ReadTimeMinutes: 8,
		HeroImage:       "/assets/blog-strategy.svg",
		Content: []Section{
			{
				Body: []string{
					"The planning horizon continues to compress, pushing HR and Finance to collaborate in new ways. Leaders need visibility across skills, succession, and scenario-based headcount modeling.",
				},
			},
			{
				Heading: "Bring Cross-Functional Leaders to the Table",
				Body: []string{
					"Design planning cadences that include HR, Finance, and Business leaders. Align on macro assumptions, internal supply, and investment guardrails so decisions move faster.",
				},
			},
			{
				Heading: "Create a Skills Inventory",
				Body: []string{
					"Layer internal talent data with market insights to understand capability strengths and gaps. Use the inventory to inform build/buy/borrow decisions and reskilling priorities.",
				},
			},
			{
				Heading: "Scenario-Test the Roadmap",
				Body: []string{
					"Run headcount and cost models for optimistic, baseline, and constrained conditions. Scenario thinking helps leaders respond quickly without sacrificing employee experience.",
				},
			},
		},
	},
	{
		Slug:            "roi-of-employee-development-programs",
		Title:           "The ROI of Employee Development Programs",
		Category:        "Learning & Development",
		Tags:            []string{"L&D", "Career Growth", "Enablement"},
		Excerpt:         "Development is more than courses. A thoughtful capability strategy strengthens engagement, productivity, and retention. Measure impact the same way you would any investment.",
		Description:     "High-performing organizations connect development to business outcomes. Build L&D roadmaps that drive performance, retention, and innovation with clear measurement strategies.",
		PublishedAt:     utc(2024, 2, 28),
		ReadTimeMinutes: 5,
		HeroImage:       "/assets/blog-development.svg",
		Content: []Section{
			{
				Body: []string{
					"Employee development is one of the strongest predictors of retention. Yet many programs fail to connect learning experiences to role expectations or measurable outcomes.",
				},
			},
			{
				Heading: "Start with Capability Gaps",
				Body: []string{
					"Identify the competencies that unlock business goals. Build pathways tailored to roles and critical moments, blending learning modalities to suit different styles.",
				},
			},
			{
				Heading: "Measure What Matters",
				Body: []string{
					"Track engagement, completion, and performance deltas alongside employee sentiment. Partner with Finance to validate productivity and retention gains.",
				},
			},
			{
				Heading: "Scale Coaching & Feedback",
				Body: []string{
					"Development sticks when it is reinforced by feedback and coaching. Equip managers with toolkits to embed learning into 1:1s, team meetings, and peer learning circles.",
				},
			},
		},
	},
	{
		Slug:            "navigating-hr-compliance-2024",
		Title:           "Navigating HR Compliance: What You Need to Know",
		Category:        "Compliance",
		Tags:            []string{"Compliance", "Risk Management", "Policies"},
		Excerpt:         "Compliance requirements are evolving faster than ever. Discover how to future-proof your policies, training, and auditing practices for peace of mind.",
		Description:     "Stay ahead of emerging regulations by embedding compliance readiness into policy design, training, and audits. Protect your teams without slowing innovation.",
		PublishedAt:     utc(2024, 2, 20),
		ReadTimeMinutes: 6,
		HeroImage:       "/assets/blog-compliance.svg",
		Content: []Section{
			{
				Body: []string{
					"Companies expanding across states or countries face a patchwork of legislation. Proactive compliance programs reduce risk while enabling agile ways of working.",
				},
			},
			{
				Heading: "Map Requirements Quarterly",
				Body: []string{
					"Establish a cadence for monitoring employment law updates, data privacy changes, and wage guidelines. Document owners for each policy area to maintain accountability.",
				},
			},
			{
				Heading: "Close the Training Loop",
				Body: []string{
					"Compliance enablement should be role-based and scenario-driven. Blend microlearning, simulations, and attestations so knowledge becomes habit.",
				},
			},
			{
				Heading: "Audit for Confidence",
				Body: []string{
					"Use internal audits to validate documentation, security protocols, and record-keeping before regulators do. Turn findings into action plans with clear deadlines.",
				},
			},
		},
	},
	{
		Slug:            "human-centered-performance-management",
		Title:           "Human-Centered Performance Management in Modern Workplaces",
		Category:        "Performance",
		Tags:            []string{"Performance", "Employee Experience", "Leadership"},
		Excerpt:         "Replace annual reviews with a culture of continuous coaching. Learn how to shape performance programs that are fair, future-focused, and motivating.",
		Description:     "Continuous performance management relies on coaching, clarity, and data. Redesign programs to boost transparency while empowering employees to grow.",
		PublishedAt:     utc(2024, 2, 15),
		ReadTimeMinutes: 5,
		HeroImage:       "/assets/blog-strategy.svg",
		Content: []Section{
			{
				Body: []string{
					"Modern performance enablement blends goal transparency, in-the-moment feedback, and frequent development conversations. Employees expect clarity, fairness, and agency.",
				},
			},
			{
				Heading: "Make Feedback Ongoing",
				Body: []string{
					"Normalize lightweight check-ins and feedback rituals with prompts that make it easy for managers to coach. Capture insights in shared tools for visibility.",
				},
			},
			{
				Heading: "Calibrate Fairly",
				Body: []string{
					"Use calibration sessions and data reviews to reduce bias. Provide managers with decision frameworks anchored in competencies and documented examples.",
				},
			},
			{
				Heading: "Link Goals to Growth",
				Body: []string{
					"Employees stay engaged when they see how their work ladders into organizational priorities. Pair goal reviews with ongoing development planning.",
				},
			},
		},
	},
	{
		Slug:            "people-analytics-foundations",
		Title:           "People Analytics Foundations for Scaling Organizations",
		Category:        "Analytics",
		Tags:            []string{"People Analytics", "Data", "Transformation"},
		Excerpt:         "Data fluency is now a core HR capability. Discover the foundational metrics, governance practices, and tools needed to build a trusted analytics program.",
		Description:     "Standing up people analytics requires the right data infrastructure, guardrails, and storytelling. Learn the building blocks for scaling responsibly.",
		PublishedAt:     utc(2024, 2, 5),
		ReadTimeMinutes: 7,
		HeroImage:       "/assets/blog-digital-transformation.svg",
		Content: []Section{
			{
				Body: []string{
					"People analytics programs thrive when anchored in business questions. Start with stakeholder listening to determine what decisions leaders need to make faster.",
				},
			},
			{
				Heading: "Invest in Data Governance",
				Body: []string{
					"Clear ownership, data dictionaries, and privacy standards build trust. Document how data flows across systems and who can access sensitive information.",
				},
			},
			{
				Heading: "Tell Stories with Insight",
				Body: []string{
					"Dashboards should pair metrics with narratives. Teach HRBPs to translate insights into recommended actions that leaders can apply immediately.",
				},
			},
		},
	},
	{
		Slug:            "elevating-employer-brand",
		Title:           "Elevating Employer Brand with Talent Insights",
		Category:        "Talent",
		Tags:            []string{"Employer Brand", "Talent Acquisition", "Experience"},
		Excerpt:         "Employer brand is not just marketing—it is the promise you deliver from first touch through onboarding. Use talent insights to shape magnetic candidate experiences.",
		Description:     "High-performing brands align talent marketing with real employee experiences. Learn how to embed insights, employee stories, and feedback loops into your strategy.",
		PublishedAt:     utc(2024, 1, 25),
		ReadTimeMinutes: 6,
		HeroImage:       "/assets/blog-culture.svg",
		Content: []Section{
			{
				Body: []string{
					"Your employer value proposition should reflect authentic experiences. Gather feedback from new hires, alumni, and candidates to understand what makes your culture compelling.",
				},
			},
			{
				Heading: "Connect Brand to Systems",
				Body: []string{
					"Ensure the promises made in talent marketing show up in onboarding, enablement, and recognition programs. Consistency is the foundation of trust.",
				},
			},
			{
				Heading: "Activate Employee Voices",
				Body: []string{
					"Create storytelling programs, ambassador networks, and social toolkits that empower employees to share impact stories in their own words.",
				},
			},
		},
	},
}
