package seeder

import (
	"context"
	"errors"

	"sitebuilder/internal/domain/content"
	"sitebuilder/internal/repository"
)

const CompanyName = "Mastersolis Infotech"

type PagesSeeder struct{}

func (PagesSeeder) Name() string { return "pages" }

func (PagesSeeder) Run(ctx context.Context, store *repository.Store) error {
	pages := []struct {
		name string
		body func() map[string]any
	}{
		{"home", homePage},
		{"about", aboutPage},
		{"services", servicesPage},
		{"projects", projectsPage},
	}

	for _, p := range pages {
		existing, err := store.Pages.GetPage(ctx, p.name)
		if err != nil && !errors.Is(err, repository.ErrNotFound) {
			return err
		}
		if err == nil && len(existing.Content) > 0 {
			continue
		}
		if err := store.Pages.PutPage(ctx, content.Page{Name: p.name, Content: p.body()}); err != nil {
			return err
		}
	}
	return nil
}

func homePage() map[string]any {
	return map[string]any{
		"title":   CompanyName,
		"hero":    "We build AI-driven digital solutions for businesses",
		"tagline": "Automate. Analyze. Accelerate.",
	}
}

func aboutPage() map[string]any {
	return map[string]any{
		"mission": "Empower organizations using intelligent automation and actionable insights.",
		"vision":  "To be the trusted AI partner for small and medium enterprises.",
		"values":  []any{"Innovation", "Integrity", "Customer-first"},
		"team": []any{
			map[string]any{"name": "Asha Patel", "role": "CEO", "bio": "Product leader with 10+ years in AI"},
			map[string]any{"name": "Rajan Kumar", "role": "CTO", "bio": "ML engineer and cloud architect"},
			map[string]any{"name": "Nisha Rao", "role": "Head of Design", "bio": "Design thinker and UX lead"},
		},
		"milestones": []any{
			map[string]any{"year": 2022, "event": "Founded"},
			map[string]any{"year": 2023, "event": "Launched first AI automation product"},
			map[string]any{"year": 2024, "event": "Served 100+ SME customers"},
		},
	}
}

type service struct {
	id, title, desc, image, price, category string
	features, benefits                      []string
	testimonial                             map[string]any
}

func (s service) toMap() map[string]any {
	m := map[string]any{
		"id":       s.id,
		"title":    s.title,
		"desc":     s.desc,
		"features": toAnySlice(s.features),
		"benefits": toAnySlice(s.benefits),
		"image":    s.image,
		"price":    s.price,
	}
	if s.category != "" {
		m["category"] = s.category
	}
	if s.testimonial != nil {
		m["testimonial"] = s.testimonial
	}
	return m
}

func servicesPage() map[string]any {
	services := []service{
		{
			id:       "svc_ai_chat",
			title:    "AI Chatbots & Virtual Assistants",
			desc:     "Build intelligent conversational assistants for customer support and sales.",
			features: []string{"24/7 Customer Support Automation", "Multi-language Support", "Natural Language Processing", "Integration with CRM Systems"},
			benefits: []string{"Reduce Response Time by 45%", "Handle Multiple Queries Simultaneously", "Improve Customer Satisfaction", "Lower Operational Costs"},
			image:    "https://source.unsplash.com/random/800x600/?ai",
			price:    "Starting from $499/month",
			category: "AI Solutions",
			testimonial: map[string]any{
				"text":    "The chatbot reduced our support tickets by 60% in the first month!",
				"author":  "Sarah Chen",
				"company": "TechStart Inc.",
			},
		},
		{
			id:       "svc_auto_ops",
			title:    "Business Process Automation",
			desc:     "Transform your operations with intelligent automation and AI-driven workflows.",
			features: []string{"Custom Workflow Automation", "Document Processing & OCR", "Email & Calendar Automation", "Integration with Enterprise Systems"},
			benefits: []string{"Save 20+ Hours Per Week", "Eliminate Manual Data Entry", "Reduce Error Rates by 99%", "Scale Operations Efficiently"},
			image:    "https://source.unsplash.com/random/800x600/?automation",
			price:    "Starting from $999/month",
		},
		{
			id:       "svc_data_analytics",
			title:    "Business Intelligence & Analytics",
			desc:     "Transform raw data into actionable insights with our advanced analytics solutions.",
			features: []string{"Real-time Data Dashboards", "Predictive Analytics", "Custom Report Generation", "Data Visualization"},
			benefits: []string{"Make Data-Driven Decisions", "Forecast Market Trends", "Optimize Business Processes", "Track KPIs in Real-time"},
			image:    "https://source.unsplash.com/random/800x600/?data",
			price:    "Starting from $799/month",
		},
		{
			id:       "svc_ai_consulting",
			title:    "AI Strategy Consulting",
			desc:     "Expert guidance on implementing AI solutions in your business.",
			features: []string{"AI Readiness Assessment", "Technology Stack Planning", "ROI Analysis", "Implementation Roadmap"},
			benefits: []string{"Clear AI Strategy", "Competitive Advantage", "Risk Mitigation", "Expert Guidance"},
			image:    "https://source.unsplash.com/random/800x600/?consulting",
			price:    "Custom Quote",
			category: "Consulting",
			testimonial: map[string]any{
				"text":    "Their strategic guidance helped us implement AI across our entire organization.",
				"author":  "Michael Rodriguez",
				"company": "Global Retail Solutions",
			},
		},
		{
			id:       "svc_ai_website",
			title:    "AI-Powered Website Builder",
			desc:     "Create and maintain dynamic websites with AI-driven content and personalization.",
			features: []string{"AI Content Generation", "Dynamic Personalization", "SEO Optimization", "Analytics Dashboard", "Mobile-First Design"},
			benefits: []string{"Launch Website in Days", "Always Fresh Content", "Higher Conversion Rates", "SEO-Optimized Pages", "24/7 AI Updates"},
			image:    "https://source.unsplash.com/random/800x600/?website",
			price:    "Starting from $299/month",
			category: "Web Solutions",
			testimonial: map[string]any{
				"text":    "Our website traffic increased by 200% after implementing their AI solutions!",
				"author":  "Emily Watson",
				"company": "Digital First Media",
			},
		},
		{
			id:       "svc_ai_marketing",
			title:    "AI Marketing Automation",
			desc:     "Transform your marketing with AI-powered campaign optimization and personalization.",
			features: []string{"Smart Campaign Management", "Customer Journey Optimization", "Predictive Analytics", "Multi-channel Automation", "A/B Testing with AI"},
			benefits: []string{"2x Marketing ROI", "Personalized Customer Experience", "Data-Driven Decisions", "Automated Campaign Optimization", "Real-time Performance Tracking"},
			image:    "https://source.unsplash.com/random/800x600/?marketing",
			price:    "Starting from $899/month",
			category: "Marketing",
			testimonial: map[string]any{
				"text":    "We saw a 150% increase in conversion rates within 3 months!",
				"author":  "Lisa Thompson",
				"company": "Growth Marketing Pro",
			},
		},
		{
			id:       "svc_ml_models",
			title:    "Custom ML Model Development",
			desc:     "Develop and deploy custom machine learning models for your specific needs.",
			features: []string{"Custom Model Development", "Model Training & Optimization", "MLOps Setup", "Performance Monitoring"},
			benefits: []string{"Tailored AI Solutions", "High Accuracy Models", "Scalable Architecture", "Continuous Improvement"},
			image:    "https://source.unsplash.com/random/800x600/?machine-learning",
			price:    "Starting from $2,499/month",
			category: "AI Development",
			testimonial: map[string]any{
				"text":    "Their custom ML models helped us achieve 99.9% accuracy in prediction!",
				"author":  "David Park",
				"company": "FinTech Solutions",
			},
		},
	}

	list := make([]any, 0, len(services))
	for _, s := range services {
		list = append(list, s.toMap())
	}

	return map[string]any{
		"services":   list,
		"categories": []any{"AI Solutions", "Consulting", "Web Solutions", "Marketing", "AI Development"},
		"summary": map[string]any{
			"title":       "Transform Your Business with AI",
			"description": "We offer end-to-end AI solutions to help businesses innovate and grow. From chatbots to custom ML models, our services are designed to deliver measurable results.",
			"stats": []any{
				map[string]any{"label": "Clients Served", "value": "100+"},
				map[string]any{"label": "Success Rate", "value": "95%"},
				map[string]any{"label": "ROI Average", "value": "3x"},
			},
		},
	}
}

func projectsPage() map[string]any {
	return map[string]any{
		"projects": []any{
			map[string]any{"id": "prj_1", "title": "SupportBot", "tags": []any{"chatbot", "automation"}, "summary": "Reduced support load by 45% for a retail client."},
			map[string]any{"id": "prj_2", "title": "SalesInsights", "tags": []any{"analytics", "dashboard"}, "summary": "Actionable sales dashboards for 20 stores."},
			map[string]any{"id": "prj_3", "title": "ResumeAI", "tags": []any{"hr", "nlp"}, "summary": "Automated resume scoring and ATS formatting service."},
		},
	}
}

func toAnySlice(in []string) []any {
	out := make([]any, len(in))
	for i, s := range in {
		out[i] = s
	}
	return out
}
