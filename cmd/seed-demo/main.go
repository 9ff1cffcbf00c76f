package main

import (
	"context"
	"fmt"
	"log"

	"github.com/folio/internal/config"
	"github.com/folio/internal/db"
	"github.com/folio/internal/service"
	"gorm.io/gorm"
)

// 演示数据生成器：写入一批待审核的客户与评价、若干作品和留言，便于本地调试后台。
func main() {
	cfg := config.Load()

	// 初始化数据库
	gdb, err := db.Init(cfg.DatabaseDriver, cfg.DSN())
	if err != nil {
		log.Fatal("数据库初始化失败:", err)
	}

	fmt.Println("开始生成演示数据...")

	summary, err := seedDemo(context.Background(), gdb, cfg.AvatarBaseURL)
	if err != nil {
		log.Fatal("生成演示数据失败:", err)
	}

	fmt.Println("演示数据生成完成！")
	fmt.Printf("客户: %d（待审核）\n", summary.clients)
	fmt.Printf("评价: %d（待审核）\n", summary.reviews)
	fmt.Printf("作品: %d\n", summary.projects)
	fmt.Printf("留言: %d\n", summary.messages)
}

type seedSummary struct {
	clients  int
	reviews  int
	projects int
	messages int
}

var demoClients = []service.ClientInput{
	{Name: "Acme Labs", Industry: "Manufacturing", Description: "Industrial IoT dashboards for factory floors."},
	{Name: "Blue Harbor", Industry: "Logistics", Description: "Shipment tracking portal with live ETA updates."},
	{Name: "Nimbus Health", Industry: "Healthcare", Description: "Patient intake forms and appointment reminders."},
}

var demoReviews = []service.ReviewInput{
	{Name: "Priya Patel", Position: "CTO, Acme Labs", Content: "Delivered the dashboard ahead of schedule.", Rating: 5},
	{Name: "Daniel Ortiz", Position: "Ops Lead, Blue Harbor", Content: "Clear communication and solid code.", Rating: 4},
}

var demoProjects = []service.ProjectInput{
	{
		Title:       "Folio Admin",
		Description: "Moderation console for the portfolio site with **session login** and one-click approval.",
		Image:       "https://images.unsplash.com/photo-1460925895917-afdab827c52f",
		TechStack:   []string{"Go", "Gin", "GORM", "SQLite"},
		GithubURL:   "https://github.com/kartiknavpute",
	},
	{
		Title:       "Fleet Tracker",
		Description: "Real-time vehicle map fed by GPS webhooks and rendered with WebSockets.",
		Image:       "https://images.unsplash.com/photo-1494412574643-ff11b0a5c1c3",
		TechStack:   []string{"Go", "PostgreSQL", "React"},
		LiveURL:     "https://example.com/fleet",
	},
}

var demoMessages = []service.ContactInput{
	{Name: "Lena Fischer", Email: "lena@example.com", Message: "Are you available for a short contract in March?"},
}

// seedDemo 通过服务层写入演示数据，跳过已有同名记录的类型以便重复执行。
func seedDemo(ctx context.Context, gdb *gorm.DB, avatarBaseURL string) (seedSummary, error) {
	repos := service.NewRepositories(gdb)
	submissions := service.NewSubmissionService(repos, service.NewAvatarService(avatarBaseURL))
	contacts := service.NewContactService(repos.Messages)

	var summary seedSummary

	total, err := repos.Clients.Count(ctx, false)
	if err != nil {
		return summary, err
	}
	if total == 0 {
		for _, input := range demoClients {
			if err := submissions.SubmitClient(ctx, input); err != nil {
				return summary, fmt.Errorf("client %q: %w", input.Name, err)
			}
			summary.clients++
		}
	}

	total, err = repos.Reviews.Count(ctx, false)
	if err != nil {
		return summary, err
	}
	if total == 0 {
		for _, input := range demoReviews {
			if err := submissions.SubmitReview(ctx, input); err != nil {
				return summary, fmt.Errorf("review %q: %w", input.Name, err)
			}
			summary.reviews++
		}
	}

	total, err = repos.Projects.Count(ctx, false)
	if err != nil {
		return summary, err
	}
	if total == 0 {
		for _, input := range demoProjects {
			if err := submissions.SubmitProject(ctx, input); err != nil {
				return summary, fmt.Errorf("project %q: %w", input.Title, err)
			}
			summary.projects++
		}
	}

	total, err = repos.Messages.Count(ctx, false)
	if err != nil {
		return summary, err
	}
	if total == 0 {
		for _, input := range demoMessages {
			if err := contacts.Submit(ctx, input); err != nil {
				return summary, fmt.Errorf("message from %q: %w", input.Name, err)
			}
			summary.messages++
		}
	}

	return summary, nil
}
