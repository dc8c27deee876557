package main

import (
	"context"
	"net/http"

	"github.com/renewed-app/backend/config"
	"github.com/renewed-app/backend/internal/domain"
	"github.com/renewed-app/backend/internal/domain/achieve"
	"github.com/renewed-app/backend/internal/model"
	"github.com/renewed-app/backend/internal/repository"
	"github.com/renewed-app/backend/pkg/jwt"
	"github.com/renewed-app/backend/pkg/logger"
	"github.com/renewed-app/backend/pkg/router"
	"github.com/renewed-app/backend/pkg/xcontext"
	"github.com/renewed-app/backend/pkg/xredis"

	"github.com/urfave/cli/v2"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

type srv struct {
	app *cli.App
	ctx context.Context

	configs *config.Configs
	logger  logger.Logger
	db      *gorm.DB

	redisClient xredis.Client
	tokenEngine *jwt.Engine[model.AccessToken]

	userRepo            repository.UserRepository
	progressRepo        repository.UserProgressRepository
	dailyLogRepo        repository.DailyLogRepository
	xpLogRepo           repository.XPLogRepository
	achievementRepo     repository.AchievementRepository
	userAchievementRepo repository.UserAchievementRepository

	achieveEngine *achieve.Engine

	checkInDomain     domain.CheckInDomain
	xpDomain          domain.XPDomain
	achievementDomain domain.AchievementDomain
	leaderBoardDomain domain.LeaderBoardDomain

	router *router.Router
	server *http.Server
}

func (s *srv) loadApp() {
	s.app = cli.NewApp()
	s.app.Name = "renewed"
	s.app.Usage = "Progression backend of the Renewed app"
	s.app.Action = cli.ShowAppHelp
	s.app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:  "config",
			Value: "config.toml",
			Usage: "Load configuration from `FILE`",
		},
	}
	s.app.Commands = []*cli.Command{
		{
			Action:      s.startApi,
			Name:        "api",
			Usage:       "Start the api service",
			Description: "Serve check-in, xp, achievement, and leader board apis.",
		},
		{
			Action: s.startMigrate,
			Name:   "migrate",
			Usage:  "Migrate the database schema and seed data",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "version",
					Usage: "Run a single data migration `VERSION` instead of all",
				},
			},
		},
	}
}

func (s *srv) loadConfig(cctx *cli.Context) {
	configs, err := config.Load(cctx.String("config"))
	if err != nil {
		panic(err)
	}

	s.configs = &configs
	s.ctx = xcontext.WithConfigs(context.Background(), configs)
}

func (s *srv) loadLogger() {
	level := logger.INFO
	if s.configs.Env == "local" {
		level = logger.DEBUG
	}

	s.logger = logger.NewLogger(level)
	s.ctx = xcontext.WithLogger(s.ctx, s.logger)
}

func (s *srv) loadDatabase() {
	db, err := gorm.Open(mysql.Open(s.configs.Database.ConnectionString()), &gorm.Config{})
	if err != nil {
		panic(err)
	}

	s.db = db
	s.ctx = xcontext.WithDB(s.ctx, db)
}

func (s *srv) loadRedis() {
	if s.configs.Redis.Addr == "" {
		return
	}

	redisClient, err := xredis.NewClient(s.ctx)
	if err != nil {
		// The leader board still works from its in-process memo.
		s.logger.Warnf("Cannot connect to redis: %v", err)
		return
	}

	s.redisClient = redisClient
}

func (s *srv) loadRepos() {
	s.userRepo = repository.NewUserRepository()
	s.progressRepo = repository.NewUserProgressRepository()
	s.dailyLogRepo = repository.NewDailyLogRepository()
	s.xpLogRepo = repository.NewXPLogRepository()
	s.achievementRepo = repository.NewAchievementRepository()
	s.userAchievementRepo = repository.NewUserAchievementRepository()
}

func (s *srv) loadEngine() {
	s.achieveEngine = achieve.NewEngine(
		s.achievementRepo,
		s.userAchievementRepo,
		s.xpLogRepo,
		achieve.NewStreakChecker(s.progressRepo),
		achieve.NewMoodLogChecker(s.dailyLogRepo),
		achieve.NewForumPostChecker(s.xpLogRepo),
		achieve.NewResetChecker(s.progressRepo),
		achieve.NewActivityChecker(),
	)
}

func (s *srv) loadDomains() {
	s.tokenEngine = jwt.NewEngine[model.AccessToken](
		s.configs.Auth.TokenSecret, s.configs.Auth.TokenExpiration)

	s.checkInDomain = domain.NewCheckInDomain(
		s.dailyLogRepo, s.progressRepo, s.xpLogRepo, s.achieveEngine)
	s.xpDomain = domain.NewXPDomain(s.xpLogRepo)
	s.achievementDomain = domain.NewAchievementDomain(
		s.achievementRepo, s.userAchievementRepo, s.achieveEngine)
	s.leaderBoardDomain = domain.NewLeaderBoardDomain(
		s.xpLogRepo, s.progressRepo, s.redisClient)
}
