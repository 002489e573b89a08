package main

import (
	"fmt"
	"net/http"

	"github.com/jobly-app/jobly-backend-go/internal/config"
	appHTTP "github.com/jobly-app/jobly-backend-go/internal/handler/http"
	"github.com/jobly-app/jobly-backend-go/internal/pkg/database"
	"github.com/jobly-app/jobly-backend-go/internal/pkg/jwt"
	"github.com/jobly-app/jobly-backend-go/internal/repository/postgresql"
	authService "github.com/jobly-app/jobly-backend-go/internal/service/auth"
	companyService "github.com/jobly-app/jobly-backend-go/internal/service/company"
	jobService "github.com/jobly-app/jobly-backend-go/internal/service/job"
	userService "github.com/jobly-app/jobly-backend-go/internal/service/user"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	userRepo := postgresql.NewUserRepository(db)
	companyRepo := postgresql.NewCompanyRepository(db)
	jobRepo := postgresql.NewJobRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.Expiration)

	authSvc := authService.NewAuthService(userRepo, JWTService)
	companySvc := companyService.NewCompanyService(companyRepo, jobRepo)
	jobSvc := jobService.NewJobService(jobRepo)
	userSvc := userService.NewUserService(userRepo)

	authHandler := appHTTP.NewAuthHandler(authSvc)
	companyHandler := appHTTP.NewCompanyHandler(companySvc)
	jobHandler := appHTTP.NewJobHandler(jobSvc)
	userHandler := appHTTP.NewUserHandler(userSvc)

	router := appHTTP.NewRouter(
		JWTService,
		authHandler,
		companyHandler,
		jobHandler,
		userHandler,
		cfg.App.FrontendURL,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
