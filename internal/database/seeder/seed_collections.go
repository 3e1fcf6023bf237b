package seeder

import (
	"context"
	"strings"
	"time"

	"sitebuilder/internal/domain/content"
	"sitebuilder/internal/domain/resume"
	"sitebuilder/internal/repository"
)

type TestimonialsSeeder struct{}

func (TestimonialsSeeder) Name() string { return "testimonials" }

func (TestimonialsSeeder) Run(ctx context.Context, store *repository.Store) error {
	existing, err := store.Testimonials.ListTestimonials(ctx)
	if err != nil || len(existing) > 0 {
		return err
	}
	for _, t := range []content.Testimonial{
		{ID: "t1", Client: "GreenMart", Quote: "Mastersolis built our chatbot - response rates improved dramatically.", Author: "Priya S."},
		{ID: "t2", Client: "TravelCo", Quote: "Their analytics platform helped us optimize promotions.", Author: "Arjun V."},
	} {
		if err := store.Testimonials.CreateTestimonial(ctx, t); err != nil {
			return err
		}
	}
	return nil
}

type PostsSeeder struct{}

func (PostsSeeder) Name() string { return "blog_posts" }

func (PostsSeeder) Run(ctx context.Context, store *repository.Store) error {
	existing, err := store.Posts.ListPosts(ctx)
	if err != nil || len(existing) > 0 {
		return err
	}
	for _, p := range []content.BlogPost{
		{
			ID:    "b1",
			Title: "How AI Improves Customer Support",
			Content: paragraphs(
				"In today's digital age, AI-powered customer support is revolutionizing how businesses interact with their customers. Here are key benefits we've observed:",
				"1. 24/7 Availability\n- Instant responses at any time\n- No wait times or queues\n- Global customer coverage",
				"2. Consistent Quality\n- Standardized responses\n- No human mood variations\n- Multi-language support",
				"3. Cost Efficiency\n- Reduced support staff needs\n- Handle multiple queries simultaneously\n- Lower operational costs",
				"4. Data-Driven Insights\n- Track common issues\n- Identify improvement areas\n- Measure customer satisfaction",
				"Our clients have seen:\n- 45% reduction in response time\n- 30% cost savings\n- 25% increase in customer satisfaction",
				"Ready to transform your customer support? Contact us to learn more.",
			),
			Summary: "AI reduces response time and improves CSAT scores dramatically through 24/7 availability and consistent service quality.",
			Date:    "2024-11-01",
		},
		{
			ID:    "b2",
			Title: "Top 5 Automation Ideas for SMEs",
			Content: paragraphs(
				"Small and Medium Enterprises can benefit greatly from automation. Here are our top 5 recommendations:",
				"1. Customer Service Automation\n- AI chatbots for common queries\n- Automated email responses\n- Appointment scheduling bots",
				"2. Invoice Processing\n- Automated data extraction\n- Digital approval workflows\n- Payment reconciliation",
				"3. Social Media Management\n- Scheduled posts\n- Automated engagement\n- Analytics reporting",
				"4. Inventory Management\n- Automated stock alerts\n- Purchase order generation\n- Supplier communication",
				"5. HR Process Automation\n- Resume screening\n- Interview scheduling\n- Onboarding workflows",
				"Each of these can save 5-10 hours per week for your team. Start small, measure results, and scale what works.",
			),
			Summary: "Practical automation ideas to save time and cost for small and medium businesses.",
			Date:    "2024-11-05",
		},
		{
			ID:    "b3",
			Title: "The Future of AI in Business",
			Content: paragraphs(
				"As we look towards 2025 and beyond, AI is set to transform business operations in unprecedented ways:",
				"Key Trends:\n1. Generative AI\n- Content creation\n- Code generation\n- Design automation",
				"2. Predictive Analytics\n- Sales forecasting\n- Inventory optimization\n- Risk assessment",
				"3. Process Automation\n- Workflow optimization\n- Document processing\n- Quality control",
				"4. Intelligent Decision Support\n- Data-driven insights\n- Scenario analysis\n- Real-time recommendations",
				"The businesses that adapt early will gain significant competitive advantages. Let us help you stay ahead.",
			),
			Summary: "Explore upcoming AI trends and their impact on business operations.",
			Date:    "2024-11-08",
		},
	} {
		if err := store.Posts.CreatePost(ctx, p); err != nil {
			return err
		}
	}
	return nil
}

type JobsSeeder struct{}

func (JobsSeeder) Name() string { return "jobs" }

func (JobsSeeder) Run(ctx context.Context, store *repository.Store) error {
	existing, err := store.Jobs.ListJobs(ctx)
	if err != nil || len(existing) > 0 {
		return err
	}
	for _, j := range []content.Job{
		{
			ID:     "job-frontend",
			Title:  "Senior Frontend Developer",
			Skills: "React, TypeScript, Tailwind CSS, Next.js",
			Description: paragraphs(
				"We're looking for a Senior Frontend Developer to join our growing team.",
				"Key Responsibilities:\n- Build responsive, performant user interfaces for our AI-powered applications\n- Collaborate with UX designers and backend engineers\n- Mentor junior developers and contribute to architecture decisions",
				"Requirements:\n- 3+ years of React experience\n- Strong TypeScript skills\n- Experience with modern CSS frameworks (Tailwind preferred)\n- Understanding of web performance optimization",
				"Benefits:\n- Competitive salary\n- Remote work options\n- Learning and development budget\n- Health insurance",
			),
			Location:    "Remote / Hybrid",
			Type:        "Full-time",
			SalaryRange: "$90,000 - $130,000",
		},
		{
			ID:     "job-ml",
			Title:  "Machine Learning Engineer",
			Skills: "Python, TensorFlow, PyTorch, MLOps, AWS/Azure",
			Description: paragraphs(
				"Join our AI team to build and deploy cutting-edge ML models.",
				"Key Responsibilities:\n- Design and implement ML models for various use cases\n- Build and maintain ML pipelines\n- Optimize model performance and deployment\n- Collaborate with data scientists and engineers",
				"Requirements:\n- Masters/PhD in CS, ML, or related field\n- 2+ years ML engineering experience\n- Strong Python and deep learning framework expertise\n- Experience with MLOps and cloud platforms",
				"Benefits:\n- Competitive compensation\n- Remote work flexibility\n- Conference attendance budget\n- Premium healthcare",
			),
			Location:    "Remote / Hybrid",
			Type:        "Full-time",
			SalaryRange: "$100,000 - $160,000",
		},
		{
			ID:     "job-data",
			Title:  "Data Engineer",
			Skills: "Python, SQL, Spark, Airflow, AWS",
			Description: paragraphs(
				"We're seeking a Data Engineer to build robust data pipelines.",
				"Key Responsibilities:\n- Design and implement data pipelines\n- Optimize data warehouse performance\n- Ensure data quality and reliability\n- Support ML team with data needs",
				"Requirements:\n- 3+ years data engineering experience\n- Expert in SQL and Python\n- Experience with big data tools\n- Strong problem-solving skills",
				"Benefits:\n- Competitive package\n- Flexible work hours\n- Learning allowance\n- Health benefits",
			),
			Location:    "Remote",
			Type:        "Full-time",
			SalaryRange: "$85,000 - $140,000",
		},
	} {
		if err := store.Jobs.CreateJob(ctx, j); err != nil {
			return err
		}
	}
	return nil
}

type ApplicationsSeeder struct{}

func (ApplicationsSeeder) Name() string { return "applications" }

func (ApplicationsSeeder) Run(ctx context.Context, store *repository.Store) error {
	existing, err := store.Applications.ListApplications(ctx)
	if err != nil || len(existing) > 0 {
		return err
	}
	for _, a := range []content.Application{
		seededApplication("app1", "Riya Sharma", "riya@example.com", "Frontend Developer", []string{"react", "flask", "python"}, 3, 82.0),
		seededApplication("app2", "Siddharth Rao", "sid@example.com", "Machine Learning Engineer", []string{"python", "tensorflow", "aws"}, 4, 88.0),
	} {
		if err := store.Applications.CreateApplication(ctx, a); err != nil {
			return err
		}
	}
	return nil
}

func seededApplication(id, name, email, jobTitle string, skills []string, years int, match float64) content.Application {
	return content.Application{
		ID:       id,
		Name:     name,
		Email:    email,
		JobTitle: jobTitle,
		Parsed:   &resume.ParsedResume{Name: name, Skills: skills, ExperienceYears: years},
		Score:    &resume.ScoreResult{MatchPercent: match, MatchedSkills: []string{}},
	}
}

type FAQSeeder struct{}

func (FAQSeeder) Name() string { return "faq" }

func (FAQSeeder) Run(ctx context.Context, store *repository.Store) error {
	existing, err := store.FAQ.ListFAQ(ctx)
	if err != nil || len(existing) > 0 {
		return err
	}
	for _, e := range []content.FAQEntry{
		{Q: "What services do you offer?", A: "We offer AI chatbots, automation ops, and data analytics."},
		{Q: "How to contact?", A: "Use the Contact page or email contact@mastersolis.com"},
	} {
		if err := store.FAQ.AppendFAQ(ctx, e); err != nil {
			return err
		}
	}
	return nil
}

type ThemesSeeder struct{}

func (ThemesSeeder) Name() string { return "themes" }

func (ThemesSeeder) Run(ctx context.Context, store *repository.Store) error {
	existing, err := store.Themes.ListThemes(ctx)
	if err != nil || len(existing) > 0 {
		return err
	}
	return store.Themes.PutTheme(ctx, content.Theme{
		Tone:    "default",
		Palette: map[string]any{"primary": "#0b72ff", "accent": "#ffb400", "bg": "#ffffff", "text": "#0f172a"},
	})
}

type PortfoliosSeeder struct{}

func (PortfoliosSeeder) Name() string { return "portfolios" }

func (PortfoliosSeeder) Run(ctx context.Context, store *repository.Store) error {
	n, err := store.Portfolios.CountPortfolios(ctx)
	if err != nil || n > 0 {
		return err
	}
	return store.Portfolios.CreatePortfolio(ctx, content.Portfolio{
		ID:   "sample-portfolio-1",
		HTML: "<html><body><h1>Riya Sharma</h1><p>Frontend developer (React, Tailwind)</p></body></html>",
		Meta: resume.ParsedResume{Name: "Riya Sharma", Skills: []string{"react", "tailwind"}, ExperienceYears: 3},
	})
}

const (
	MetricsKey = "site_metrics"
	MetaKey    = "_meta"
)

// MetricsSeeder rewrites the dashboard metrics and seed timestamp on every run.
type MetricsSeeder struct {
	Now func() time.Time
}

func (MetricsSeeder) Name() string { return "analytics" }

func (s MetricsSeeder) Run(ctx context.Context, store *repository.Store) error {
	apps, err := store.Applications.ListApplications(ctx)
	if err != nil {
		return err
	}
	if err := store.Analytics.PutAnalytics(ctx, content.Analytics{
		Key: MetricsKey,
		Value: map[string]any{
			"visitors":      1240,
			"applications":  len(apps),
			"popular_pages": []any{"careers", "home", "projects"},
		},
	}); err != nil {
		return err
	}

	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	return store.Analytics.PutAnalytics(ctx, content.Analytics{
		Key:   MetaKey,
		Value: map[string]any{"seeded_at": now().UTC().Format(time.RFC3339Nano)},
	})
}

func paragraphs(parts ...string) string {
	return strings.Join(parts, "\n\n")
}
