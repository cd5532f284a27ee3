package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/Anklebracelet24/movieApp-ruiz/models"
	"github.com/Anklebracelet24/movieApp-ruiz/services"
)

type MovieController struct {
	movieService *services.MovieService
}

func NewMovieController(movieService *services.MovieService) *MovieController {
	return &MovieController{
		movieService: movieService,
	}
}

func bindErrorMessage(err error) string {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return "Invalid request format"
	}
	for _, e := range ve {
		if e.Tag() == "required" {
			return "All fields are required"
		}
	}
	return "Invalid input data"
}

func movieErrorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, services.ErrMovieNotFound):
		return http.StatusNotFound, "Movie not found"
	case errors.Is(err, services.ErrInvalidYear):
		return http.StatusBadRequest, err.Error()
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}

func (c *MovieController) AddMovie(ctx *gin.Context) {
	var req models.AddMovieRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": bindErrorMessage(err)})
		return
	}

	movie, err := c.movieService.Create(ctx.Request.Context(), &req)
	if err != nil {
		status, message := movieErrorStatus(err)
		ctx.JSON(status, gin.H{"error": message})
		return
	}

	ctx.JSON(http.StatusCreated, movie)
}

func (c *MovieController) GetMovies(ctx *gin.Context) {
	movies, err := c.movieService.List(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve movies"})
		return
	}

	ctx.JSON(http.StatusOK, models.MovieListResponse{Movies: movies})
}

func (c *MovieController) GetMovie(ctx *gin.Context) {
	movie, err := c.movieService.GetByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		status, message := movieErrorStatus(err)
		ctx.JSON(status, gin.H{"error": message})
		return
	}

	ctx.JSON(http.StatusOK, movie)
}

func (c *MovieController) UpdateMovie(ctx *gin.Context) {
	var req models.UpdateMovieRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	movie, err := c.movieService.Update(ctx.Request.Context(), ctx.Param("id"), &req)
	if err != nil {
		status, message := movieErrorStatus(err)
		ctx.JSON(status, gin.H{"error": message})
		return
	}

	ctx.JSON(http.StatusOK, models.MovieUpdatedResponse{
		Message:      "Movie updated successfully",
		UpdatedMovie: *movie,
	})
}

func (c *MovieController) DeleteMovie(ctx *gin.Context) {
	if err := c.movieService.Delete(ctx.Request.Context(), ctx.Param("id")); err != nil {
		status, message := movieErrorStatus(err)
		ctx.JSON(status, gin.H{"error": message})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Movie deleted successfully"})
}

func (c *MovieController) AddComment(ctx *gin.Context) {
	var req models.AddCommentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "User ID and comment are required"})
		return
	}

	movie, err := c.movieService.AddComment(ctx.Request.Context(), ctx.Param("id"), &req)
	if err != nil {
		status, message := movieErrorStatus(err)
		ctx.JSON(status, gin.H{"error": message})
		return
	}

	ctx.JSON(http.StatusOK, models.MovieUpdatedResponse{
		Message:      "comment added successfully",
		UpdatedMovie: *movie,
	})
}

func (c *MovieController) GetComments(ctx *gin.Context) {
	comments, err := c.movieService.ListComments(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		status, message := movieErrorStatus(err)
		ctx.JSON(status, gin.H{"error": message})
		return
	}

	ctx.JSON(http.StatusOK, models.CommentListResponse{Comments: comments})
}
