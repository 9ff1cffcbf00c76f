package service

import (
	"time"

	"github.com/folio/internal/db"
)

// 以下样例数据仅在公开列表查询失败或结果为空时返回，从不写回存储。
// 每次调用都构造新的切片，调用方可以随意修改。

const fallbackGithubURL = "https://github.com/kartiknavpute"

// FallbackClients returns the sample client list shown when no client is approved.
func FallbackClients(now time.Time) []db.Client {
	return []db.Client{
		{
			Record:      db.Record{ID: "1", CreatedAt: now},
			Name:        "TechInnovate",
			Industry:    "Software Development",
			Description: "Enterprise software solutions provider",
			Logo:        "https://api.dicebear.com/7.x/shapes/svg?seed=techinnovate",
			Approved:    true,
		},
		{
			Record:      db.Record{ID: "2", CreatedAt: now},
			Name:        "EcoSmart",
			Industry:    "Green Technology",
			Description: "Sustainable technology solutions",
			Logo:        "https://api.dicebear.com/7.x/shapes/svg?seed=ecosmart",
			Approved:    true,
		},
		{
			Record:      db.Record{ID: "3", CreatedAt: now},
			Name:        "HealthPlus",
			Industry:    "Healthcare",
			Description: "Digital healthcare platform",
			Logo:        "https://api.dicebear.com/7.x/shapes/svg?seed=healthplus",
			Approved:    true,
		},
	}
}

// FallbackReviews returns the sample review list shown when no review is approved.
func FallbackReviews(now time.Time) []db.Review {
	return []db.Review{
		{
			Record:   db.Record{ID: "1", CreatedAt: now},
			Name:     "Alex Johnson",
			Position: "CTO at TechInnovate",
			Image:    "https://api.dicebear.com/7.x/initials/svg?seed=a",
			Content:  "Exceptional work on our enterprise software. The attention to detail and clean code made all the difference. Highly recommended for any development project.",
			Rating:   5,
			Approved: true,
		},
		{
			Record:   db.Record{ID: "2", CreatedAt: now},
			Name:     "Sarah Williams",
			Position: "Product Manager at EcoSmart",
			Image:    "https://api.dicebear.com/7.x/initials/svg?seed=s",
			Content:  "Great communication throughout the project. Delivered on time and exceeded our expectations with additional optimizations.",
			Rating:   5,
			Approved: true,
		},
		{
			Record:   db.Record{ID: "3", CreatedAt: now},
			Name:     "Michael Chen",
			Position: "Director at HealthPlus",
			Image:    "https://api.dicebear.com/7.x/initials/svg?seed=m",
			Content:  "Transformed our healthcare platform with innovative solutions. Very responsive to our needs and quick to implement changes.",
			Rating:   4,
			Approved: true,
		},
	}
}

// FallbackProjects returns the sample project list shown when the projects table is empty or unreachable.
func FallbackProjects(now time.Time) []db.Project {
	github := func() *string {
		v := fallbackGithubURL
		return &v
	}

	return []db.Project{
		{
			Record:      db.Record{ID: "1", CreatedAt: now},
			Title:       "Hospital Management System",
			Description: "Developed an end-to-end management system for hospitals, integrating patient, doctor, and billing modules using MVC .NET.",
			Image:       "https://images.unsplash.com/photo-1587351021759-3e566b3db4f1?ixlib=rb-4.0.3&ixid=M3wxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8fA%3D%3D&auto=format&fit=crop&w=2089&q=80",
			TechStack:   []string{".NET Core", "MVC", "C#", "SQL Server"},
			GithubURL:   github(),
		},
		{
			Record:      db.Record{ID: "2", CreatedAt: now},
			Title:       "Ganpati Aarti App",
			Description: "Created an app listing Ashtavinayak temples with navigation details and aarti lyrics using .NET MAUI.",
			Image:       "https://images.unsplash.com/photo-1541430988689-0429ad5923b0?ixlib=rb-4.0.3&ixid=M3wxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8fA%3D%3D&auto=format&fit=crop&w=2096&q=80",
			TechStack:   []string{".NET MAUI", "C#", "XAML"},
			GithubURL:   github(),
		},
		{
			Record:      db.Record{ID: "3", CreatedAt: now},
			Title:       "Bhagwat Gita App",
			Description: "Developed an application for exploring the slokas and chapters of Bhagwat Gita using .NET MAUI.",
			Image:       "https://images.unsplash.com/photo-1585504198200-26a1bc8757dc?ixlib=rb-4.0.3&ixid=M3wxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8fA%3D%3D&auto=format&fit=crop&w=2070&q=80",
			TechStack:   []string{".NET MAUI", "C#", "XAML"},
			GithubURL:   github(),
		},
		{
			Record:      db.Record{ID: "4", CreatedAt: now},
			Title:       "Local to Global (E-commerce)",
			Description: "A marketplace to connect local sellers with buyers, integrating negotiation features.",
			Image:       "https://images.unsplash.com/photo-1607082349566-187342175e2f?ixlib=rb-4.0.3&ixid=M3wxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8fA%3D%3D&auto=format&fit=crop&w=2055&q=80",
			TechStack:   []string{"React", ".NET Core", "MongoDB"},
			GithubURL:   github(),
		},
	}
}
