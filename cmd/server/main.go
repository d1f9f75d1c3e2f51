package main

import (
	"fmt"
	"log"
	"os"

	"github.com/Zaker237/projectboard/internal/config"
	"github.com/Zaker237/projectboard/internal/events"
	"github.com/Zaker237/projectboard/internal/handler"
	"github.com/Zaker237/projectboard/internal/model"
	"github.com/Zaker237/projectboard/internal/notify"
	"github.com/Zaker237/projectboard/internal/router"
	"github.com/Zaker237/projectboard/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func main() {
	// Load config
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	// Database
	db, err := gorm.Open(mysql.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("connect database: %v", err)
	}

	// Auto migrate
	if err := db.AutoMigrate(
		&model.User{},
		&model.Project{},
		&model.Step{},
		&model.ProjectStep{},
		&model.ProjectMember{},
		&model.Card{},
		&model.Comment{},
	); err != nil {
		log.Fatalf("auto migrate: %v", err)
	}

	// Board event hub; redis backs the replay buffer when enabled
	var rdb *redis.Client
	if cfg.Redis.Enabled {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
	}
	hub := events.NewHub(rdb)

	// Notifier
	var notifier notify.Notifier = notify.NoopNotifier{}
	if cfg.Notify.WebhookURL != "" {
		notifier = notify.NewWebhookNotifier(cfg.Notify.WebhookURL)
	}

	// Services
	userService := service.NewUserService(db)
	projectService := service.NewProjectService(db)
	projectStepService := service.NewProjectStepService(db)
	stepService := service.NewStepService(db, projectStepService)
	memberService := service.NewProjectMemberService(db)
	cardService := service.NewCardService(db)
	commentService := service.NewCommentService(db)

	// Inject event sinks
	projectStepService.SetHub(hub)
	projectStepService.SetNotifier(notifier)
	memberService.SetHub(hub)
	memberService.SetNotifier(notifier)
	cardService.SetHub(hub)
	cardService.SetNotifier(notifier)

	// Handlers
	userHandler := handler.NewUserHandler(userService, projectService, stepService, cardService, commentService)
	projectHandler := handler.NewProjectHandler(projectService, memberService, cardService)
	boardHandler := handler.NewBoardHandler(projectStepService, cardService, hub)
	stepHandler := handler.NewStepHandler(stepService)
	cardHandler := handler.NewCardHandler(cardService, commentService)
	commentHandler := handler.NewCommentHandler(commentService)

	// Gin engine
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	// Setup routes
	router.Setup(r, router.Deps{
		UserHandler:    userHandler,
		ProjectHandler: projectHandler,
		BoardHandler:   boardHandler,
		StepHandler:    stepHandler,
		CardHandler:    cardHandler,
		CommentHandler: commentHandler,
	})

	// Start server
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("Server starting on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server run: %v", err)
	}
}
