package main

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/Anklebracelet24/movieApp-ruiz/config"
	"github.com/Anklebracelet24/movieApp-ruiz/controllers"
	"github.com/Anklebracelet24/movieApp-ruiz/data_access"
	"github.com/Anklebracelet24/movieApp-ruiz/helper"
	"github.com/Anklebracelet24/movieApp-ruiz/middleware"
	"github.com/Anklebracelet24/movieApp-ruiz/services"
)

func setupCORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, PATCH, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

func setupRouter(authController *controllers.AuthController, movieController *controllers.MovieController, tokens *services.TokenService) *gin.Engine {
	r := gin.Default()
	r.Use(setupCORS())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	users := r.Group("/users")
	{
		users.POST("/register", authController.Register)
		users.POST("/login", authController.Login)
		users.POST("/logout", authController.Logout)
	}

	movies := r.Group("/movies")
	movies.Use(middleware.Authenticated(tokens))
	{
		movies.GET("/getMovies", movieController.GetMovies)
		movies.GET("/getMovie/:id", movieController.GetMovie)
		movies.PATCH("/addComment/:id", movieController.AddComment)
		movies.GET("/getComments/:id", movieController.GetComments)

		admin := movies.Group("")
		admin.Use(middleware.AdminOnly())
		{
			admin.POST("/addMovie", movieController.AddMovie)
			admin.PUT("/updateMovie/:id", movieController.UpdateMovie)
			admin.DELETE("/deleteMovie/:id", movieController.DeleteMovie)
		}
	}

	return r
}

func seedCatalog(ctx context.Context, path string, movieService *services.MovieService, movieRepo *data_access.MovieRepository) error {
	rows, err := helper.LoadMoviesFromCSV(path)
	if err != nil {
		return err
	}

	imported := 0
	for i := range rows {
		existing, err := movieRepo.FindByTitle(ctx, rows[i].Title)
		if err != nil {
			return err
		}
		if existing != nil {
			continue
		}
		if _, err := movieService.Create(ctx, &rows[i]); err != nil {
			if errors.Is(err, services.ErrInvalidYear) {
				log.Printf("skipping %q: %v", rows[i].Title, err)
				continue
			}
			return err
		}
		imported++
	}

	log.Printf("catalog seed: imported %d of %d movies from %s", imported, len(rows), path)
	return nil
}

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load configuration: ", err)
	}

	log.Println("Configuration loaded for environment:", cfg.Env)

	// Initialize MongoDB connection
	mongodb, err := data_access.NewMongoDB(cfg.MongoURI, cfg.DBName)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB: ", err)
	}
	defer mongodb.Close(context.Background())

	if err := mongodb.EnsureIndexes(context.Background()); err != nil {
		log.Fatal("Failed to create indexes: ", err)
	}

	// Initialize repositories
	userRepo := data_access.NewUserRepository(mongodb)
	movieRepo := data_access.NewMovieRepository(mongodb)

	// Initialize services
	tokenService := services.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	authService := services.NewAuthService(userRepo, tokenService, cfg.AdminEmail)
	movieService := services.NewMovieService(movieRepo)

	// Initialize controllers
	authController := controllers.NewAuthController(authService)
	movieController := controllers.NewMovieController(movieService)

	if cfg.SeedFile != "" {
		if err := seedCatalog(context.Background(), cfg.SeedFile, movieService, movieRepo); err != nil {
			log.Fatal("Failed to seed catalog: ", err)
		}
	}

	r := setupRouter(authController, movieController, tokenService)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
