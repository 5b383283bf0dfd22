// internal/seed/seed.go
package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/garasilabs/maganghub/internal/auth"
	"github.com/garasilabs/maganghub/internal/model"
	"github.com/garasilabs/maganghub/internal/repository"
)

// Stores groups every repository the seed writes into.
type Stores struct {
	Users        repository.UserRepositoryIface
	Internships  repository.InternshipRepositoryIface
	Applications repository.ApplicationRepositoryIface
	Reviews      repository.ReviewRepositoryIface
	Articles     repository.ArticleRepositoryIface
}

// Load populates the repositories with the fixed startup dataset. This is the
// only "persisted state" the system has; a restart rebuilds exactly this.
func Load(ctx context.Context, stores Stores, hasher *auth.PasswordHasher) error {
	password, err := hasher.Hash("password")
	if err != nil {
		return fmt.Errorf("hashing seed password: %w", err)
	}
	adminPassword, err := hasher.Hash("admin")
	if err != nil {
		return fmt.Errorf("hashing seed password: %w", err)
	}

	now := time.Now()
	date := func(s string) time.Time {
		t, _ := time.Parse("2006-01-02", s)
		return t
	}

	users := []*model.User{
		{
			ID:           1,
			Email:        "johndoe@email.com",
			PasswordHash: password,
			Role:         model.RoleStudent,
			Name:         "John Doe",
			Major:        "Computer Science",
			Skills:       []string{"React", "TypeScript", "Node.js"},
			CVLink:       "https://example.com/johndoe_cv.pdf",
			University:   "Universitas Indonesia",
		},
		{
			ID:           2,
			Email:        "techcorp@email.com",
			PasswordHash: password,
			Role:         model.RoleCompany,
			Name:         "TechCorp",
			Field:        "Technology",
			Description:  "A leading technology company innovating for the future.",
			Location:     "Jakarta",
			CompanySize:  "51-200 employees",
			TechStack:    []string{"Go", "React", "PostgreSQL"},
		},
		{
			ID:           3,
			Email:        "admin@email.com",
			PasswordHash: adminPassword,
			Role:         model.RoleAdmin,
			Name:         "Admin User",
		},
		{
			ID:           4,
			Email:        "janesmith@email.com",
			PasswordHash: password,
			Role:         model.RoleStudent,
			Name:         "Jane Smith",
			Major:        "Marketing",
			Skills:       []string{"SEO", "Content Creation", "Social Media"},
			CVLink:       "https://example.com/janesmith_cv.pdf",
			University:   "Institut Teknologi Bandung",
		},
		{
			ID:           5,
			Email:        "innovateinc@email.com",
			PasswordHash: password,
			Role:         model.RoleCompany,
			Name:         "Innovate Inc.",
			Field:        "Software Development",
			Description:  "Building innovative software solutions for businesses.",
			Location:     "Bandung",
			CompanySize:  "11-50 employees",
			TechStack:    []string{"Node.js", "Vue", "MySQL"},
		},
	}
	for _, user := range users {
		user.CreatedAt = now
		user.UpdatedAt = now
		if err := stores.Users.Create(ctx, user); err != nil {
			return fmt.Errorf("seeding user %d: %w", user.ID, err)
		}
	}

	internships := []*model.Internship{
		{
			ID:           1,
			CompanyID:    2,
			CompanyName:  "TechCorp",
			Title:        "Frontend Developer Intern",
			Description:  "Work with our frontend team to build amazing user experiences.",
			Location:     "Jakarta",
			Duration:     "3 Months",
			JobType:      model.JobTypeHybrid,
			PostedDate:   date("2025-07-01"),
			ClosingDate:  date("2025-09-30"),
			Requirements: []string{"HTML", "CSS", "JavaScript", "React"},
			Field:        "Software Engineering",
		},
		{
			ID:           2,
			CompanyID:    5,
			CompanyName:  "Innovate Inc.",
			Title:        "Backend Developer Intern",
			Description:  "Join our backend team to work on scalable server-side applications.",
			Location:     "Bandung",
			Duration:     "6 Months",
			JobType:      model.JobTypeOnSite,
			PostedDate:   date("2025-07-15"),
			ClosingDate:  date("2025-10-15"),
			Requirements: []string{"Node.js", "Express", "SQL", "REST APIs"},
			Field:        "Software Engineering",
		},
		{
			ID:           3,
			CompanyID:    2,
			CompanyName:  "TechCorp",
			Title:        "Digital Marketing Intern",
			Description:  "Assist our marketing team with social media campaigns and SEO.",
			Location:     "Surabaya",
			Duration:     "3 Months",
			JobType:      model.JobTypeRemote,
			PostedDate:   date("2025-08-01"),
			ClosingDate:  date("2025-09-15"),
			Requirements: []string{"Marketing knowledge", "Good communication skills"},
			Field:        "Marketing",
		},
	}
	for _, internship := range internships {
		if err := stores.Internships.Create(ctx, internship); err != nil {
			return fmt.Errorf("seeding internship %d: %w", internship.ID, err)
		}
	}

	applications := []*model.Application{
		{
			ID:              1,
			InternshipID:    2,
			StudentID:       1,
			Status:          model.StatusApplied,
			ApplicationDate: date("2025-08-02"),
			FullName:        "John Doe",
			ActiveEmail:     "johndoe@email.com",
			GPA:             3.5,
		},
		{
			ID:              2,
			InternshipID:    3,
			StudentID:       4,
			Status:          model.StatusAccepted,
			ApplicationDate: date("2025-08-05"),
			FullName:        "Jane Smith",
			ActiveEmail:     "janesmith@email.com",
			GPA:             3.7,
		},
		{
			ID:              3,
			InternshipID:    1,
			StudentID:       4,
			Status:          model.StatusRejected,
			ApplicationDate: date("2025-08-06"),
			FullName:        "Jane Smith",
			ActiveEmail:     "janesmith@email.com",
			GPA:             3.7,
		},
	}
	for _, application := range applications {
		if err := stores.Applications.Create(ctx, application); err != nil {
			return fmt.Errorf("seeding application %d: %w", application.ID, err)
		}
	}

	reviews := []*model.Review{
		{
			ID:          1,
			CompanyID:   2,
			StudentID:   4,
			StudentName: "Jane Smith",
			Rating:      4,
			Comment:     "Supportive mentors and real responsibility from week one.",
			Date:        date("2025-08-20"),
		},
		{
			ID:          2,
			CompanyID:   2,
			StudentID:   1,
			StudentName: "John Doe",
			Rating:      5,
			Comment:     "Great engineering culture, learned a lot about code review.",
			Date:        date("2025-08-22"),
		},
	}
	for _, review := range reviews {
		if err := stores.Reviews.Create(ctx, review); err != nil {
			return fmt.Errorf("seeding review %d: %w", review.ID, err)
		}
	}

	articles := []*model.Article{
		{
			ID:          1,
			Title:       "Writing a CV That Gets Read",
			Category:    model.CategoryResume,
			Summary:     "One page, concrete numbers, no buzzwords.",
			Content:     "Recruiters skim. Lead with outcomes: what you built, what changed because of it. Keep formatting boring and consistent, and tailor the top third of the page to the posting you are applying for.",
			PublishedAt: date("2025-06-10"),
		},
		{
			ID:          2,
			Title:       "Surviving Your First Technical Interview",
			Category:    model.CategoryInterview,
			Summary:     "Think out loud and ask clarifying questions.",
			Content:     "Interviewers grade your reasoning, not just the final answer. Restate the problem, state your assumptions, and narrate the trade-offs as you go. Practicing two problems a day for two weeks beats cramming thirty the night before.",
			PublishedAt: date("2025-06-24"),
		},
		{
			ID:          3,
			Title:       "Turning an Internship into a Job Offer",
			Category:    model.CategoryCareer,
			Summary:     "Ship visibly, ask for feedback early.",
			Content:     "Treat the internship as a months-long interview. Close the loop on every task, write down what you learned, and ask your mentor for feedback in week two instead of the final review.",
			PublishedAt: date("2025-07-08"),
		},
		{
			ID:          4,
			Title:       "How MagangHub Applications Work",
			Category:    model.CategoryGeneral,
			Summary:     "From browsing to offer, step by step.",
			Content:     "Search postings, complete the five-step application form once per posting, and track the status from your dashboard. Companies see your submitted profile exactly as you entered it, so keep it current.",
			PublishedAt: date("2025-05-30"),
		},
	}
	for _, article := range articles {
		if err := stores.Articles.Create(ctx, article); err != nil {
			return fmt.Errorf("seeding article %d: %w", article.ID, err)
		}
	}

	return nil
}
