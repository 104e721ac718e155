package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/go-faker/faker/v4"
	_ "github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/ashermunn/portfolio-backend/domain"
	"github.com/ashermunn/portfolio-backend/internal/repository/mysql/model"
)

// ddlPause keeps a little air between schema statements so a managed
// database's rate limiter stays quiet on re-runs.
const ddlPause = 500 * time.Millisecond

const seedPostCount = 5

type table struct {
	name  string
	model any
}

var tables = []table{
	{"post", &model.Post{}},
	{"engagement", &model.Engagement{}},
	{"comment", &model.Comment{}},
	{"project", &model.Project{}},
	{"skill", &model.Skill{}},
	{"experience", &model.Experience{}},
	{"profile", &model.Profile{}},
	{"contact_message", &model.ContactMessage{}},
}

func main() {
	seed := flag.Bool("seed", false, "insert sample content after provisioning")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, relying on environment")
	}

	dbHost := os.Getenv("DATABASE_HOST")
	dbPort := os.Getenv("DATABASE_PORT")
	dbUser := os.Getenv("DATABASE_USER")
	dbPass := os.Getenv("DATABASE_PASS")
	dbName := os.Getenv("DATABASE_NAME")
	if dbHost == "" || dbName == "" {
		log.Fatal("DATABASE_HOST and DATABASE_NAME are required")
	}

	connection := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s", dbUser, dbPass, dbHost, dbPort, dbName)
	val := url.Values{}
	val.Add("parseTime", "1")
	dsn := fmt.Sprintf("%s?%s", connection, val.Encode())

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal("could not connect to database: ", err)
	}

	created, skipped, failed := 0, 0, 0
	for _, t := range tables {
		switch err := createTable(db, t); {
		case err == nil:
			log.Printf("created table %q", t.name)
			created++
		case errors.Is(err, domain.ErrConflict):
			log.Printf("table %q already exists, skipping", t.name)
			skipped++
		default:
			// keep going, a partially provisioned schema is still
			// better than none and the run is safe to repeat
			log.Printf("failed to create table %q: %v", t.name, err)
			failed++
		}

		time.Sleep(ddlPause)
	}

	log.Printf("provisioning done: %d created, %d existing, %d failed", created, skipped, failed)

	if *seed {
		if err := seedContent(db); err != nil {
			log.Printf("seeding failed: %v", err)
			return
		}
		log.Println("seeded sample content")
	}
}

func createTable(db *gorm.DB, t table) error {
	if db.Migrator().HasTable(t.model) {
		return domain.ErrConflict
	}

	err := db.Migrator().CreateTable(t.model)
	if err != nil && strings.Contains(err.Error(), "already exists") {
		return domain.ErrConflict
	}
	return err
}

// seedContent fills the content tables with faker data for local dev.
func seedContent(db *gorm.DB) error {
	for i := 0; i < seedPostCount; i++ {
		post := model.Post{
			Title:    faker.Sentence(),
			Slug:     fmt.Sprintf("sample-post-%d", i+1),
			Content:  faker.Paragraph(),
			Status:   string(domain.PostStatusPublished),
			ReadTime: int64(i%7 + 2),
		}
		if err := db.Create(&post).Error; err != nil {
			return err
		}
	}

	project := model.Project{
		Title:       faker.Sentence(),
		Description: faker.Paragraph(),
		Tags:        "go,mysql,redis",
		Featured:    true,
	}
	if err := db.Create(&project).Error; err != nil {
		return err
	}

	skill := model.Skill{
		Name:     "Go",
		Category: "backend",
		Level:    85,
	}
	return db.Create(&skill).Error
}
