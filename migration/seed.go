package migration

import (
	"context"
	"errors"
	"fmt"
	"time"

	"newsportal/helper"
	"newsportal/models"

	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type seedCategory struct {
	Name        string
	Description string
}

type seedArticle struct {
	Title         string
	Summary       string
	Paragraphs    []string
	FeaturedImage string
	Category      string
}

var seedCategories = []seedCategory{
	{"Politics", "Political news and updates"},
	{"Sports", "Sports news and coverage"},
	{"International", "World news and global affairs"},
	{"Technology", "Tech news and innovations"},
	{"Business", "Business and finance news"},
	{"Entertainment", "Entertainment and celebrity news"},
}

var seedArticles = []seedArticle{
	{
		Title:         "Government Announces New Economic Policy",
		Summary:       "The government unveiled a comprehensive economic reform package aimed at boosting growth and creating jobs.",
		Paragraphs:    []string{"The new framework combines tax incentives for small businesses with a large infrastructure fund.", "Analysts expect the package to lift market confidence over the coming quarters."},
		FeaturedImage: "https://images.unsplash.com/photo-1526304640581-d334cdbbf45e?w=1200",
		Category:      "politics",
	},
	{
		Title:         "National Team Wins Historic Championship",
		Summary:       "In a thrilling final match, the national football team secured their first international championship in 20 years.",
		Paragraphs:    []string{"The team came back from a one goal deficit and won 3-2 with a goal in the 89th minute.", "Fans celebrated in the capital until the early hours of the morning."},
		FeaturedImage: "https://images.unsplash.com/photo-1579952363873-27f3bade9f55?w=1200",
		Category:      "sports",
	},
	{
		Title:         "Global Climate Summit Reaches Landmark Agreement",
		Summary:       "World leaders have committed to ambitious new targets to combat climate change at the international summit.",
		Paragraphs:    []string{"Delegates from 195 countries agreed to halve emissions by 2035.", "Environmental groups welcomed the accord and stressed that implementation is what counts."},
		FeaturedImage: "https://images.unsplash.com/photo-1569163139599-0f4517e36f31?w=1200",
		Category:      "international",
	},
	{
		Title:         "Revolutionary AI Technology Transforms Healthcare",
		Summary:       "New artificial intelligence systems are enabling earlier disease detection and personalized treatment plans.",
		Paragraphs:    []string{"Hospitals using the system report diagnoses in hours instead of weeks.", "Regulators have cleared the technology for clinical use."},
		FeaturedImage: "https://images.unsplash.com/photo-1576091160399-112ba8d25d1d?w=1200",
		Category:      "technology",
	},
	{
		Title:         "Stock Markets Reach All-Time High",
		Summary:       "Major indices surged to record levels as investor confidence grows following positive economic data.",
		Paragraphs:    []string{"The benchmark index gained 2.5% in a single session, led by technology and healthcare.", "Some analysts warn that valuations are stretched."},
		FeaturedImage: "https://images.unsplash.com/photo-1611974789855-9c2a0a7236a3?w=1200",
		Category:      "business",
	},
	{
		Title:         "Award-Winning Film Breaks Box Office Records",
		Summary:       "The critically acclaimed drama has become the highest-grossing film of the year in just two weeks.",
		Paragraphs:    []string{"The film earned $500 million worldwide in its opening weekend.", "Critics praised its storytelling and its cast."},
		FeaturedImage: "https://images.unsplash.com/photo-1489599849927-2ee91cede3ba?w=1200",
		Category:      "entertainment",
	},
	{
		Title:         "New Education Reform Bill Passes Legislature",
		Summary:       "Comprehensive education reforms will increase funding and modernize curriculum across public schools.",
		Paragraphs:    []string{"The bill raises the education budget by a quarter and updates the STEM curriculum.", "The reforms roll out over the next three years."},
		FeaturedImage: "https://images.unsplash.com/photo-1503676260728-1c00da094a0b?w=1200",
		Category:      "politics",
	},
	{
		Title:         "Tennis Star Announces Retirement",
		Summary:       "After two decades of professional play and numerous Grand Slam titles, the legendary player bids farewell.",
		Paragraphs:    []string{"The champion retires with 23 Grand Slam titles and 310 weeks at world number one.", "A farewell tour is being planned."},
		FeaturedImage: "https://images.unsplash.com/photo-1554068865-24cecd4e34b8?w=1200",
		Category:      "sports",
	},
	{
		Title:         "Space Agency Launches Mars Mission",
		Summary:       "The ambitious mission aims to land the first humans on Mars within the next decade.",
		Paragraphs:    []string{"The spacecraft carries habitat equipment and life support experiments.", "The first crewed mission is planned for the end of the decade."},
		FeaturedImage: "https://images.unsplash.com/photo-1614728894747-a83421e2b9c9?w=1200",
		Category:      "technology",
	},
	{
		Title:         "Central Bank Adjusts Interest Rates",
		Summary:       "The monetary policy committee voted to maintain rates amid signs of stable inflation.",
		Paragraphs:    []string{"Inflation sits at 2.3%, inside the target range.", "The next policy review is scheduled for next quarter."},
		FeaturedImage: "https://images.unsplash.com/photo-1526304640581-d334cdbbf45e?w=1200",
		Category:      "business",
	},
}

// SeedResult reports how many rows Seed inserted.
type SeedResult struct {
	AdminCreated bool
	Categories   int
	Articles     int
}

// Seed provisions the admin account, the default categories and a set of
// published demo articles. Rows that already exist, matched by email or
// slug, are left untouched, so Seed can run on every start.
func Seed(ctx context.Context, db *gorm.DB, adminEmail, adminPassword string) (*SeedResult, error) {
	result := &SeedResult{}

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		admin, created, err := seedAdmin(tx, adminEmail, adminPassword)
		if err != nil {
			return err
		}
		result.AdminCreated = created

		categoryIDs := make(map[string]uint, len(seedCategories))
		for _, sc := range seedCategories {
			description := sc.Description
			category := models.Category{Name: sc.Name, Slug: helper.Slugify(sc.Name), Description: &description}
			created, err := createMissing(tx, &category, category.Slug)
			if err != nil {
				return fmt.Errorf("seed category %s: %w", category.Slug, err)
			}
			if created {
				result.Categories++
			}
			categoryIDs[category.Slug] = category.ID
		}

		now := time.Now().UTC().Truncate(time.Microsecond)
		for i, sa := range seedArticles {
			categoryID, ok := categoryIDs[sa.Category]
			if !ok {
				continue
			}
			image := sa.FeaturedImage
			// Stagger publication times so the demo feed has a stable order.
			publishedAt := now.Add(-time.Duration(len(seedArticles)-i) * time.Hour)
			article := models.Article{
				Title:         sa.Title,
				Slug:          helper.Slugify(sa.Title),
				Summary:       sa.Summary,
				Content:       paragraphs(sa.Paragraphs),
				FeaturedImage: &image,
				Status:        models.StatusPublished,
				PublishedAt:   &publishedAt,
				CategoryID:    categoryID,
				AuthorID:      admin.ID,
			}
			created, err := createMissing(tx, &article, article.Slug)
			if err != nil {
				return fmt.Errorf("seed article %s: %w", article.Slug, err)
			}
			if created {
				result.Articles++
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"admin_created": result.AdminCreated,
		"categories":    result.Categories,
		"articles":      result.Articles,
	}).Info("database seeded")
	return result, nil
}

func seedAdmin(tx *gorm.DB, email, password string) (*models.User, bool, error) {
	var admin models.User
	err := tx.Where("email = ?", email).First(&admin).Error
	if err == nil {
		return &admin, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, fmt.Errorf("find admin: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	if err != nil {
		return nil, false, fmt.Errorf("hash admin password: %w", err)
	}
	admin = models.User{
		Email:    email,
		Password: string(hashed),
		Name:     "Admin User",
		Role:     models.RoleAdmin,
	}
	if err := tx.Create(&admin).Error; err != nil {
		return nil, false, fmt.Errorf("create admin: %w", err)
	}
	return &admin, true, nil
}

// createMissing inserts row unless a row with the same slug exists, in which
// case row is loaded from the database instead.
func createMissing(tx *gorm.DB, row interface{}, slug string) (bool, error) {
	err := tx.Where("slug = ?", slug).First(row).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}
	return true, tx.Create(row).Error
}

func paragraphs(lines []string) string {
	content := ""
	for _, line := range lines {
		content += "<p>" + line + "</p>"
	}
	return content
}
