package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"

	"poros-portal/cmd/api/auth"
	"poros-portal/cmd/api/services"
	"poros-portal/cmd/internal/logger"
	"poros-portal/config"
	"poros-portal/db"
	"poros-portal/models"
	"poros-portal/repositories"
)

type seedFile struct {
	Admin struct {
		Email    string `yaml:"email"`
		Name     string `yaml:"name"`
		Password string `yaml:"password"`
	} `yaml:"admin"`
	Categories []struct {
		Name        string `yaml:"name"`
		Description string `yaml:"description"`
	} `yaml:"categories"`
	Articles []struct {
		Title       string `yaml:"title"`
		Content     string `yaml:"content"`
		Excerpt     string `yaml:"excerpt"`
		Author      string `yaml:"author"`
		AuthorEmail string `yaml:"author_email"`
		Category    string `yaml:"category"`
		Status      string `yaml:"status"`
		Featured    bool   `yaml:"featured"`
		PublishedAt string `yaml:"published_at"`
	} `yaml:"articles"`
}

// Seeds the database from a YAML file. Re-running is safe: categories and
// articles are matched by slug, the admin user by email.
func main() {
	var path string
	flag.StringVar(&path, "file", "seed.yaml", "path to the seed file")
	flag.Parse()

	config.InitApp()
	cfg := config.GetConfig()
	logger.Init(cfg.Logging.Level)

	ctx := context.Background()
	if err := db.Init(ctx); err != nil {
		log.Fatal(err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		log.Fatal(err)
	}
	var seed seedFile
	if err := yaml.Unmarshal(raw, &seed); err != nil {
		log.Fatal(err)
	}

	categoryRepo := repositories.NewCategoryRepository(db.Database())
	articleRepo := repositories.NewArticleRepository(db.Database())
	userRepo := repositories.NewUserRepository(db.Database())

	categoryBySlug := map[string]*models.Category{}
	for _, c := range seed.Categories {
		slug := services.Slugify(c.Name)
		cat, err := categoryRepo.UpsertBySlug(ctx, &models.Category{
			Name:        c.Name,
			Slug:        slug,
			Description: c.Description,
		})
		if err != nil {
			log.Fatalf("seed category %q: %v", c.Name, err)
		}
		categoryBySlug[slug] = cat
	}
	logger.InfoWithFields("seeded categories", logger.Fields{"count": len(categoryBySlug)})

	articleCount := 0
	for _, a := range seed.Articles {
		cat, ok := categoryBySlug[services.Slugify(a.Category)]
		if !ok {
			log.Fatalf("seed article %q: unknown category %q", a.Title, a.Category)
		}

		status := models.ArticleStatus(a.Status)
		if status == "" {
			status = models.StatusPublished
		}
		publishedAt := time.Now()
		if a.PublishedAt != "" {
			publishedAt, err = time.Parse(time.RFC3339, a.PublishedAt)
			if err != nil {
				log.Fatalf("seed article %q: bad published_at: %v", a.Title, err)
			}
		}

		_, err := articleRepo.UpsertBySlug(ctx, &models.Article{
			Title:       a.Title,
			Slug:        services.Slugify(a.Title),
			Content:     a.Content,
			Excerpt:     a.Excerpt,
			Author:      a.Author,
			AuthorEmail: a.AuthorEmail,
			Status:      status,
			IsFeatured:  a.Featured,
			PublishedAt: publishedAt,
			CategoryID:  cat.ID,
		})
		if err != nil {
			log.Fatalf("seed article %q: %v", a.Title, err)
		}
		articleCount++
	}
	logger.InfoWithFields("seeded articles", logger.Fields{"count": articleCount})

	if seed.Admin.Email != "" {
		password := seed.Admin.Password
		if env := os.Getenv("SEED_ADMIN_PASSWORD"); env != "" {
			password = env
		}
		if password == "" {
			log.Fatal("admin password required: set it in the seed file or SEED_ADMIN_PASSWORD")
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatal(err)
		}
		if _, err := userRepo.UpsertByEmail(ctx, &models.User{
			Email:        seed.Admin.Email,
			Name:         seed.Admin.Name,
			PasswordHash: string(hash),
			Role:         auth.RoleAdmin,
			IsActive:     true,
		}); err != nil {
			log.Fatal(err)
		}
		logger.InfoWithFields("seeded admin user", logger.Fields{"email": seed.Admin.Email})
	}
}
