package main

import (
	"fmt"
	"net/http"

	"github.com/renewed-app/backend/internal/middleware"
	"github.com/renewed-app/backend/pkg/router"

	"github.com/rs/cors"
	"github.com/urfave/cli/v2"
)

func (s *srv) startApi(cctx *cli.Context) error {
	s.loadConfig(cctx)
	s.loadLogger()
	s.loadDatabase()
	s.loadRedis()
	s.loadRepos()
	s.loadEngine()
	s.loadDomains()
	s.loadRouter()

	s.server = &http.Server{
		Addr:    fmt.Sprintf("%s:%s", s.configs.ApiServer.Host, s.configs.ApiServer.Port),
		Handler: cors.AllowAll().Handler(s.router.Handler()),
	}

	s.logger.Infof("Starting server on port %s", s.configs.ApiServer.Port)
	if err := s.server.ListenAndServe(); err != nil {
		panic(err)
	}

	return nil
}

func (s *srv) loadRouter() {
	s.router = router.New(s.db, *s.configs, s.logger)
	s.router.AddCloser(middleware.Logger())

	authRouter := s.router.Branch()
	authRouter.Before(middleware.AuthVerifier(s.tokenEngine))
	{
		// Check-in API
		router.POST(authRouter, "/recordCheckIn", s.checkInDomain.RecordCheckIn)
		router.GET(authRouter, "/getDailyLog", s.checkInDomain.GetDailyLog)
		router.GET(authRouter, "/getProgress", s.checkInDomain.GetProgress)
		router.POST(authRouter, "/resetStreak", s.checkInDomain.ResetStreak)

		// XP API
		router.POST(authRouter, "/grantXP", s.xpDomain.Grant)
		router.GET(authRouter, "/getXPStats", s.xpDomain.GetStats)

		// Achievement API
		router.POST(authRouter, "/evaluateAchievements", s.achievementDomain.Evaluate)
		router.GET(authRouter, "/getAchievementCatalog", s.achievementDomain.GetCatalog)
		router.GET(authRouter, "/getMyAchievements", s.achievementDomain.GetMyAchievements)

		// Leader board API
		router.GET(authRouter, "/getLeaderBoard", s.leaderBoardDomain.GetLeaderBoard)
	}
}
