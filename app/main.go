package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	_ "github.com/go-sql-driver/mysql"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/ashermunn/portfolio-backend/internal/repository"
	mysqlRepo "github.com/ashermunn/portfolio-backend/internal/repository/mysql"
	myRedisCache "github.com/ashermunn/portfolio-backend/internal/repository/redis"
	"github.com/ashermunn/portfolio-backend/internal/session"
	"github.com/ashermunn/portfolio-backend/internal/workers"

	"github.com/ashermunn/portfolio-backend/internal/rest"
	"github.com/ashermunn/portfolio-backend/internal/rest/middleware"
	"github.com/ashermunn/portfolio-backend/internal/usecase/comment"
	"github.com/ashermunn/portfolio-backend/internal/usecase/content"
	"github.com/ashermunn/portfolio-backend/internal/usecase/engagement"
	"github.com/ashermunn/portfolio-backend/internal/usecase/post"
	"github.com/joho/godotenv"
)

const (
	defaultTimeout      = 30
	defaultAddress      = ":9090"
	defaultCacheDB      = 0
	defaultBloomBitSize = 10000000
	dbMaxRetry          = 10
	dbRetryIntervalSec  = 2
)

func init() {
	err := godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file")
	}
}

func main() {
	//prepare database
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

	var (
		db  *gorm.DB
		err error
	)

	for i := 0; i < dbMaxRetry; i++ {
		db, err = gorm.Open(mysql.Open(dsn), &gorm.Config{TranslateError: true})
		if err != nil {
			log.Printf("failed to open connection to database (attempt %d/%d): %v", i+1, dbMaxRetry, err)
		} else {
			sqlDB, err := db.DB()
			if err != nil {
				log.Printf("failed to get sql.DB from gorm.DB (attempt %d/%d): %v", i+1, dbMaxRetry, err)
				continue
			}
			err = sqlDB.Ping()
			if err == nil {
				break
			}
			log.Printf("failed to ping database (attempt %d/%d): %v", i+1, dbMaxRetry, err)
			_ = sqlDB.Close()
		}

		time.Sleep(dbRetryIntervalSec * time.Second)
	}

	if err != nil {
		log.Fatal("could not connect to database after retries:", err)
	}

	defer func() {
		sqlDB, err := db.DB()
		if err != nil {
			log.Fatal("got error when getting sql.DB from gorm.DB", err)
		}
		if err := sqlDB.Close(); err != nil {
			log.Fatal("got error when closing the DB connection", err)
		}
	}()

	// prepare cache
	cacheHost := os.Getenv("CACHE_HOST")
	cachePort := os.Getenv("CACHE_PORT")
	cachePass := os.Getenv("CACHE_PASS")
	cacheDBStr := os.Getenv("CACHE_DB")
	cacheDB, err := strconv.Atoi(cacheDBStr)
	if err != nil {
		log.Println("failed to parse cacheDB, using default cacheDB")
		cacheDB = defaultCacheDB
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cacheHost + ":" + cachePort,
		Password: cachePass,
		DB:       cacheDB,
	})
	defer func() {
		err = client.Close()
		if err != nil {
			log.Fatal("got error when closing the cache connection", err)
		}
	}()

	_, err = client.Ping(context.Background()).Result()
	if err != nil {
		log.Fatal("failed to open connection to cache", err)
		return
	}

	// prepare gin
	route := gin.Default()
	route.Use(middleware.CORS())
	timeoutStr := os.Getenv("CONTEXT_TIMEOUT")
	timeout, err := strconv.Atoi(timeoutStr)
	if err != nil {
		log.Println("failed to parse timeout, using default timeout")
		timeout = defaultTimeout
	}
	timeoutContext := time.Duration(timeout) * time.Second
	route.Use(middleware.SetRequestContextWithTimeout(timeoutContext))

	// Prepare Repository
	commentRepo := mysqlRepo.NewCommentRepository(db)
	contentRepo := mysqlRepo.NewContentRepository(db)
	engagementRepo := mysqlRepo.NewEngagementRepository(db)

	// Post相关的三层架构
	// 1. DB层
	postDBRepo := mysqlRepo.NewPostRepository(db)
	// 2. Cache层
	postCache := myRedisCache.NewPostCache(client)
	engagementCache := myRedisCache.NewEngagementCache(client)
	// 3. Repository协调层
	postRepo := repository.NewPostRepository(postDBRepo, postCache)

	bloomBitSizeStr := os.Getenv("BLOOM_FILTER_SIZE")
	bloomBitSize, err := strconv.ParseUint(bloomBitSizeStr, 10, 64)
	if err != nil {
		log.Printf("failed to parse bloom bit size, using default size")
		bloomBitSize = defaultBloomBitSize
	}
	bloomRepo := myRedisCache.NewRedisBloomRepo(client, bloomBitSize)

	// Prepare session identity
	sessionStore, err := session.NewStore(session.StoreTypeRedis, session.WithRedisClient(client))
	if err != nil {
		log.Fatal("failed to build session store: ", err)
	}
	sessionProvider := session.NewProvider(sessionStore)

	// Start workers
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	viewsSyncer := workers.NewSyncViewsWorker(postDBRepo, postCache)
	go viewsSyncer.Start(ctx)

	engagementSyncer := workers.NewSyncEngagementWorker(engagementRepo)
	go engagementSyncer.Start(ctx)

	// Build service Layer
	postSvc := post.NewService(postRepo, postCache, bloomRepo)
	engagementSvc := engagement.NewService(engagementRepo, engagementCache, postRepo, bloomRepo, engagementSyncer)
	commentSvc := comment.NewService(commentRepo, postRepo, bloomRepo)
	contentSvc := content.NewService(contentRepo)

	postHandler := rest.NewPostHandler(postSvc)
	engagementHandler := rest.NewEngagementHandler(engagementSvc)
	commentHandler := rest.NewCommentHandler(commentSvc)
	contentHandler := rest.NewContentHandler(contentSvc)

	sessionMiddleware := middleware.Session(sessionProvider)

	// Prepare bloom filter
	if err := postSvc.InitBloomFilter(ctx); err != nil {
		log.Printf("failed to init bloom filter: %v\n", err)
		return
	}

	// Register routes
	route.GET("/posts", postHandler.FetchPosts)
	route.GET("/posts/:id", postHandler.GetByID)
	route.GET("/posts/slug/:slug", postHandler.GetBySlug)
	route.POST("/posts", postHandler.Store)
	route.PUT("/posts/:id", postHandler.Update)
	route.DELETE("/posts/:id", postHandler.Delete)

	route.GET("/posts/:id/comments", commentHandler.FetchCommentsByPost)

	route.GET("/projects", contentHandler.FetchProjects)
	route.POST("/projects", contentHandler.StoreProject)
	route.PUT("/projects/:id", contentHandler.UpdateProject)
	route.DELETE("/projects/:id", contentHandler.DeleteProject)

	route.GET("/skills", contentHandler.FetchSkills)
	route.POST("/skills", contentHandler.StoreSkill)
	route.DELETE("/skills/:id", contentHandler.DeleteSkill)

	route.GET("/experience", contentHandler.FetchExperience)
	route.POST("/experience", contentHandler.StoreExperience)
	route.DELETE("/experience/:id", contentHandler.DeleteExperience)

	route.GET("/profile", contentHandler.GetProfile)
	route.PUT("/profile", contentHandler.UpsertProfile)

	route.GET("/contact", contentHandler.FetchContactMessages)

	sessioned := route.Group("/")
	sessioned.Use(sessionMiddleware)
	{
		sessioned.POST("/posts/:id/engagements/:kind/toggle", engagementHandler.Toggle)
		sessioned.GET("/posts/:id/engagements/:kind", engagementHandler.Status)
		sessioned.POST("/posts/:id/comments", commentHandler.CreateComment)
		sessioned.POST("/contact", contentHandler.SubmitContactMessage)
	}

	// Start Server
	address := os.Getenv("SERVER_ADDRESS")
	if address == "" {
		address = defaultAddress
	}
	srv := &http.Server{
		Addr:    address,
		Handler: route,
	}
	go func() {
		log.Printf("Server is running on %s\n", address)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err) // nolint
		}
	}()

	// shutdown
	<-ctx.Done()
	log.Println("Shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown: ", err)
	}

	log.Println("Waiting for workers to cleanup...")
	time.Sleep(2 * time.Second)

	log.Println("Server exiting")
}
