package catalog

// Seed catalog mirrored from the marketplace mock data. Immutable for
// the life of the process.

var seedCategories = []Category{
	{Slug: "marketing", Name: "Marketing", Description: "Content, SEO, and social media templates", Icon: "📣", Count: 24},
	{Slug: "development", Name: "Development", Description: "Code review, DevOps, and engineering templates", Icon: "💻", Count: 18},
	{Slug: "data", Name: "Data & Analytics", Description: "Data analysis, reporting, and visualization", Icon: "📊", Count: 15},
	{Slug: "design", Name: "Design", Description: "Design systems, UI kits, and brand guides", Icon: "🎨", Count: 12},
	{Slug: "sales", Name: "Sales", Description: "Lead gen, CRM, and outreach templates", Icon: "💼", Count: 20},
	{Slug: "legal", Name: "Legal", Description: "Contract review, compliance, and policy templates", Icon: "⚖️", Count: 9},
	{Slug: "hr", Name: "HR & People", Description: "Hiring, onboarding, and team management", Icon: "👥", Count: 11},
	{Slug: "productivity", Name: "Productivity", Description: "Task management, note-taking, and planning", Icon: "⚡", Count: 22},
}

var seedTemplates = []Template{
	{
		Slug:             "seo-content-agent",
		Name:             "SEO Content Agent Team",
		ShortDescription: "Automate your entire content pipeline — from keyword research to published articles.",
		Description: "A complete SEO content system powered by AI agents that work together to produce high-quality, search-optimized content at scale.\n\n## What's included\n\n- **Keyword Research Agent** — Identifies high-value keywords with traffic potential and low competition.\n- **Content Writer Agent** — Drafts long-form articles using your brand voice and SEO best practices.\n- **Editor Agent** — Reviews, fact-checks, and polishes drafts before publishing.\n- **15 document templates** — Briefs, outlines, style guides, and editorial calendars.\n- **2 automated workflows** — End-to-end content pipeline and weekly content audits.\n\n## Who it's for\n\nContent teams, SEO agencies, and solo marketers who want to scale output without sacrificing quality.",
		Category:         "marketing",
		Price:            49,
		Currency:         "USD",
		Rating:           4.9,
		ReviewCount:      234,
		Screenshots:      []string{},
		Creator:          Creator{Name: "Sarah Chen"},
		AgentsCount:      3,
		DocsCount:        15,
		WorkflowsCount:   2,
		Featured:         true,
		Trending:         true,
		Tags:             []string{"seo", "content", "marketing", "automation"},
		CreatedAt:        "2025-11-15",
		UpdatedAt:        "2026-02-10",
	},
	{
		Slug:             "legal-contract-reviewer",
		Name:             "Legal Contract Reviewer",
		ShortDescription: "AI-powered contract analysis with clause extraction, risk scoring, and redline suggestions.",
		Description: "Streamline contract review with an agent that reads, analyses, and flags issues in legal documents.\n\n## What's included\n\n- **Contract Analyzer Agent** — Parses contracts and extracts key clauses, dates, and obligations.\n- **Risk Scorer Agent** — Evaluates risk levels for non-standard or missing clauses.\n- **Redline Suggestion Agent** — Proposes alternative language aligned with your standards.\n- **8 document templates** — Playbooks, clause libraries, and approval checklists.\n- **1 workflow** — Automated intake-to-review pipeline.\n\n## Who it's for\n\nLegal teams, startup founders, and procurement professionals.",
		Category:         "legal",
		Price:            99,
		Currency:         "USD",
		Rating:           4.8,
		ReviewCount:      89,
		Screenshots:      []string{},
		Creator:          Creator{Name: "Marcus Rivera"},
		AgentsCount:      3,
		DocsCount:        8,
		WorkflowsCount:   1,
		Featured:         true,
		Trending:         true,
		Tags:             []string{"legal", "contracts", "compliance"},
		CreatedAt:        "2025-12-01",
		UpdatedAt:        "2026-01-28",
	},
	{
		Slug:             "social-media-manager",
		Name:             "Social Media Manager",
		ShortDescription: "Plan, create, and schedule social content across platforms with AI assistance.",
		Description: "A social media command center that helps you maintain a consistent presence across all channels.\n\n## What's included\n\n- **Content Planner Agent** — Generates weekly content calendars based on trends and your brand.\n- **Copywriter Agent** — Writes platform-specific posts tailored for engagement.\n- **10 document templates** — Content calendars, brand voice guides, and analytics reports.\n- **2 workflows** — Weekly planning cycle and engagement monitoring.\n\n## Who it's for\n\nSocial media managers, brand marketers, and agency teams.",
		Category:         "marketing",
		Price:            29,
		Currency:         "USD",
		Rating:           4.7,
		ReviewCount:      156,
		Screenshots:      []string{},
		Creator:          Creator{Name: "Jamie Nguyen"},
		AgentsCount:      2,
		DocsCount:        10,
		WorkflowsCount:   2,
		Trending:         true,
		Tags:             []string{"social-media", "content", "marketing"},
		CreatedAt:        "2025-10-20",
		UpdatedAt:        "2026-02-01",
	},
	{
		Slug:             "data-analyst-toolkit",
		Name:             "Data Analyst Toolkit",
		ShortDescription: "Transform raw data into insights with automated analysis, visualization, and reporting.",
		Description: "Everything a data analyst needs to go from raw data to executive-ready reports.\n\n## What's included\n\n- **Data Explorer Agent** — Profiles datasets, finds anomalies, and suggests analyses.\n- **Visualization Agent** — Creates charts and dashboards from your data.\n- **Report Writer Agent** — Generates narrative reports with key findings.\n- **12 document templates** — Analysis frameworks, report templates, and data dictionaries.\n- **2 workflows** — Automated weekly reports and ad-hoc analysis pipeline.\n\n## Who it's for\n\nData analysts, business intelligence teams, and data-driven managers.",
		Category:         "data",
		Price:            39,
		Currency:         "USD",
		Rating:           4.8,
		ReviewCount:      112,
		Screenshots:      []string{},
		Creator:          Creator{Name: "Alex Park"},
		AgentsCount:      3,
		DocsCount:        12,
		WorkflowsCount:   2,
		Featured:         true,
		Tags:             []string{"data", "analytics", "visualization", "reporting"},
		CreatedAt:        "2025-09-10",
		UpdatedAt:        "2026-01-15",
	},
	{
		Slug:             "code-review-assistant",
		Name:             "Code Review Assistant",
		ShortDescription: "Automated code reviews with best-practice enforcement, security scanning, and improvement suggestions.",
		Description: "Speed up code reviews without sacrificing quality or security.\n\n## What's included\n\n- **Code Reviewer Agent** — Analyses PRs for bugs, performance issues, and style violations.\n- **Security Scanner Agent** — Identifies vulnerabilities and suggests fixes.\n- **6 document templates** — Review checklists, coding standards, and architecture decision records.\n- **1 workflow** — Automated PR review pipeline.\n\n## Who it's for\n\nEngineering teams, tech leads, and solo developers.",
		Category:         "development",
		Price:            29,
		Currency:         "USD",
		Rating:           4.7,
		ReviewCount:      198,
		Screenshots:      []string{},
		Creator:          Creator{Name: "Jordan Mills"},
		AgentsCount:      2,
		DocsCount:        6,
		WorkflowsCount:   1,
		Featured:         true,
		Tags:             []string{"code-review", "development", "security"},
		CreatedAt:        "2025-08-25",
		UpdatedAt:        "2026-02-05",
	},
	{
		Slug:             "design-system-builder",
		Name:             "Design System Builder",
		ShortDescription: "Create and maintain a living design system with token generation and component documentation.",
		Description: "Build a cohesive design system that stays in sync across design and engineering.\n\n## What's included\n\n- **Token Generator Agent** — Generates design tokens from your brand guidelines.\n- **Component Documenter Agent** — Creates living documentation for UI components.\n- **Documentation Writer Agent** — Maintains usage guidelines and best-practice docs.\n- **14 document templates** — Color palettes, typography scales, spacing systems, and component specs.\n- **1 workflow** — Automated design audit and token sync.\n\n## Who it's for\n\nDesign teams, design engineers, and product teams.",
		Category:         "design",
		Price:            49,
		Currency:         "USD",
		Rating:           4.9,
		ReviewCount:      87,
		Screenshots:      []string{},
		Creator:          Creator{Name: "Mia Thompson"},
		AgentsCount:      3,
		DocsCount:        14,
		WorkflowsCount:   1,
		Featured:         true,
		Tags:             []string{"design", "design-system", "tokens", "documentation"},
		CreatedAt:        "2025-11-01",
		UpdatedAt:        "2026-01-20",
	},
	{
		Slug:             "sales-outreach-engine",
		Name:             "Sales Outreach Engine",
		ShortDescription: "Personalised outreach at scale — research prospects, craft messages, and track engagement.",
		Description: "Turn cold outreach into warm conversations with AI-powered personalisation.\n\n## What's included\n\n- **Prospect Researcher Agent** — Gathers intel on leads from public sources.\n- **Message Crafter Agent** — Writes personalised emails and LinkedIn messages.\n- **8 document templates** — Email sequences, objection handlers, and CRM playbooks.\n- **2 workflows** — Outreach cadence automation and lead scoring.\n\n## Who it's for\n\nSDRs, account executives, and sales teams.",
		Category:         "sales",
		Price:            59,
		Currency:         "USD",
		Rating:           4.6,
		ReviewCount:      143,
		Screenshots:      []string{},
		Creator:          Creator{Name: "David Kim"},
		AgentsCount:      2,
		DocsCount:        8,
		WorkflowsCount:   2,
		Tags:             []string{"sales", "outreach", "crm", "lead-gen"},
		CreatedAt:        "2025-10-05",
		UpdatedAt:        "2026-02-15",
	},
	{
		Slug:             "hiring-pipeline",
		Name:             "Hiring Pipeline Manager",
		ShortDescription: "Streamline your hiring process from job posting to offer letter with AI assistance.",
		Description: "A complete hiring toolkit that helps you find, evaluate, and close candidates faster.\n\n## What's included\n\n- **Job Description Writer Agent** — Creates compelling, inclusive job postings.\n- **Resume Screener Agent** — Evaluates applications against your requirements.\n- **10 document templates** — Scorecards, interview guides, and offer templates.\n- **1 workflow** — End-to-end candidate pipeline automation.\n\n## Who it's for\n\nHR teams, hiring managers, and recruiters.",
		Category:         "hr",
		Price:            39,
		Currency:         "USD",
		Rating:           4.5,
		ReviewCount:      67,
		Screenshots:      []string{},
		Creator:          Creator{Name: "Priya Patel"},
		AgentsCount:      2,
		DocsCount:        10,
		WorkflowsCount:   1,
		Tags:             []string{"hr", "hiring", "recruiting"},
		CreatedAt:        "2025-12-10",
		UpdatedAt:        "2026-02-20",
	},
	{
		Slug:             "meeting-notes-automator",
		Name:             "Meeting Notes Automator",
		ShortDescription: "Automatically capture, summarise, and distribute meeting notes with action items.",
		Description: "Never miss an action item again. This template automates your entire meeting documentation workflow.\n\n## What's included\n\n- **Note Taker Agent** — Captures and organises meeting discussions in real-time.\n- **Action Tracker Agent** — Extracts and assigns action items with deadlines.\n- **7 document templates** — Meeting agendas, minutes, and weekly summaries.\n- **1 workflow** — Post-meeting distribution and follow-up automation.\n\n## Who it's for\n\nProject managers, team leads, and anyone drowning in meetings.",
		Category:         "productivity",
		Price:            19,
		Currency:         "USD",
		Rating:           4.8,
		ReviewCount:      312,
		Screenshots:      []string{},
		Creator:          Creator{Name: "Chris Lee"},
		AgentsCount:      2,
		DocsCount:        7,
		WorkflowsCount:   1,
		Trending:         true,
		Tags:             []string{"meetings", "productivity", "notes", "automation"},
		CreatedAt:        "2025-07-15",
		UpdatedAt:        "2026-02-22",
	},
}

var seedReviews = map[string][]Review{
	"seo-content-agent": {
		{ID: "r1", Author: "Lisa M.", Rating: 5, Body: "Saved me 10 hours a week. The content pipeline just works.", Date: "2026-01-15"},
		{ID: "r2", Author: "Tom B.", Rating: 5, Body: "Best workflow I've found for scaling content. The agents collaborate beautifully.", Date: "2026-01-02"},
		{ID: "r3", Author: "Nadia K.", Rating: 5, Body: "Our organic traffic doubled in 3 months after setting this up.", Date: "2025-12-20"},
		{ID: "r4", Author: "Ryan P.", Rating: 4, Body: "Great foundation — customised the writer agent's voice and it's perfect now.", Date: "2025-12-05"},
	},
	"legal-contract-reviewer": {
		{ID: "r5", Author: "Amy L.", Rating: 5, Body: "Caught a liability clause our team missed. Already paid for itself.", Date: "2026-02-01"},
		{ID: "r6", Author: "Daniel S.", Rating: 5, Body: "Reduced our contract review time from days to hours.", Date: "2026-01-18"},
	},
	"social-media-manager": {
		{ID: "r7", Author: "Kara J.", Rating: 5, Body: "Finally, a tool that understands platform-specific content.", Date: "2026-01-25"},
		{ID: "r8", Author: "Ben C.", Rating: 4, Body: "The content calendar alone is worth the price.", Date: "2026-01-10"},
	},
}
