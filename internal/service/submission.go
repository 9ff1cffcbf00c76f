package service

import (
	"context"

	"github.com/folio/internal/db"
	"github.com/folio/internal/store"
	"gorm.io/gorm"
)

const (
	// MinRating 与 MaxRating 限定评价分值的闭区间。
	MinRating = 1
	MaxRating = 5
	// DefaultRating 是表单未选择评分时的默认值。
	DefaultRating = 5
)

// Repositories 汇总四张内容表的仓储。
type Repositories struct {
	Messages store.Repository[db.ContactMessage]
	Clients  store.Repository[db.Client]
	Reviews  store.Repository[db.Review]
	Projects store.Repository[db.Project]
}

// NewRepositories 基于同一个 gorm 连接构造全部仓储。
func NewRepositories(gdb *gorm.DB) Repositories {
	return Repositories{
		Messages: store.NewRepository[db.ContactMessage](gdb),
		Clients:  store.NewRepository[db.Client](gdb),
		Reviews:  store.NewRepository[db.Review](gdb),
		Projects: store.NewRepository[db.Project](gdb),
	}
}

// ClientInput 描述前台“添加公司”表单。
type ClientInput struct {
	Name        string `json:"name" validate:"required"`
	Industry    string `json:"industry" validate:"required"`
	Description string `json:"description" validate:"required"`
}

// ReviewInput 描述前台评价表单。
type ReviewInput struct {
	Name     string `json:"name" validate:"required"`
	Position string `json:"position" validate:"required"`
	Content  string `json:"content" validate:"required"`
	Rating   int    `json:"rating" validate:"gte=1,lte=5"`
}

// ProjectInput 描述后台新增作品表单。
type ProjectInput struct {
	Title       string   `json:"title" validate:"required,min=2"`
	Description string   `json:"description" validate:"required,min=10"`
	Image       string   `json:"image" validate:"required,url"`
	TechStack   []string `json:"tech_stack" validate:"min=1,dive,required"`
	GithubURL   string   `json:"github_url" validate:"omitempty,url"`
	LiveURL     string   `json:"live_url" validate:"omitempty,url"`
}

// SubmissionService 校验并写入待审核内容。
// 成功时恰好写入一行；校验失败或存储失败时不写入。
type SubmissionService struct {
	repos   Repositories
	avatars *AvatarService
}

// NewSubmissionService 构造 SubmissionService。
func NewSubmissionService(repos Repositories, avatars *AvatarService) *SubmissionService {
	if avatars == nil {
		avatars = NewAvatarService("")
	}
	return &SubmissionService{repos: repos, avatars: avatars}
}

// SubmitClient 写入一条 approved=false 的客户记录。
func (s *SubmissionService) SubmitClient(ctx context.Context, input ClientInput) error {
	input = ClientInput{
		Name:        cleanText(input.Name),
		Industry:    cleanText(input.Industry),
		Description: cleanText(input.Description),
	}
	if err := validateInput(input); err != nil {
		return err
	}

	client := db.Client{
		Name:        input.Name,
		Industry:    input.Industry,
		Description: input.Description,
		Logo:        s.avatars.ClientLogo(input.Name),
		Approved:    false,
	}
	if err := s.repos.Clients.Insert(ctx, &client); err != nil {
		return storeError("submit client", err)
	}
	return nil
}

// SubmitReview 写入一条 approved=false 的评价，超出 [1,5] 的评分直接拒绝。
func (s *SubmissionService) SubmitReview(ctx context.Context, input ReviewInput) error {
	input = ReviewInput{
		Name:     cleanText(input.Name),
		Position: cleanText(input.Position),
		Content:  cleanText(input.Content),
		Rating:   input.Rating,
	}
	if err := validateInput(input); err != nil {
		return err
	}

	review := db.Review{
		Name:     input.Name,
		Position: input.Position,
		Content:  input.Content,
		Rating:   input.Rating,
		Image:    s.avatars.ReviewImage(input.Name),
		Approved: false,
	}
	if err := s.repos.Reviews.Insert(ctx, &review); err != nil {
		return storeError("submit review", err)
	}
	return nil
}

// SubmitProject 写入一个作品，作品没有审核状态，写入后立即公开。
func (s *SubmissionService) SubmitProject(ctx context.Context, input ProjectInput) error {
	input = ProjectInput{
		Title:       cleanText(input.Title),
		Description: cleanText(input.Description),
		Image:       cleanText(input.Image),
		TechStack:   cleanList(input.TechStack),
		GithubURL:   cleanText(input.GithubURL),
		LiveURL:     cleanText(input.LiveURL),
	}
	if err := validateInput(input); err != nil {
		return err
	}

	project := db.Project{
		Title:       input.Title,
		Description: input.Description,
		Image:       input.Image,
		TechStack:   input.TechStack,
		GithubURL:   optionalURL(input.GithubURL),
		LiveURL:     optionalURL(input.LiveURL),
	}
	if err := s.repos.Projects.Insert(ctx, &project); err != nil {
		return storeError("submit project", err)
	}
	return nil
}
