package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Anklebracelet24/movieApp-ruiz/models"
)

var (
	ErrMovieNotFound = errors.New("movie not found")
	ErrInvalidYear   = errors.New("year must be between 1900 and the current year")
)

// MovieStore is the persistence contract the movie service depends on,
// implemented by data_access.MovieRepository.
type MovieStore interface {
	Insert(ctx context.Context, movie *models.Movie) error
	FindAll(ctx context.Context) ([]models.Movie, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Movie, error)
	FindByTitle(ctx context.Context, title string) (*models.Movie, error)
	Replace(ctx context.Context, movie *models.Movie) error
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
}

type MovieService struct {
	movieRepo MovieStore
}

func NewMovieService(movieRepo MovieStore) *MovieService {
	return &MovieService{
		movieRepo: movieRepo,
	}
}

func validateYear(year int) error {
	if year < 1900 || year > time.Now().Year() {
		return ErrInvalidYear
	}
	return nil
}

func (s *MovieService) Create(ctx context.Context, req *models.AddMovieRequest) (*models.Movie, error) {
	if err := validateYear(req.Year); err != nil {
		return nil, err
	}

	movie := &models.Movie{
		Title:       req.Title,
		Director:    req.Director,
		Year:        req.Year,
		Description: req.Description,
		Genre:       req.Genre,
		Comments:    []models.Comment{},
	}

	if err := s.movieRepo.Insert(ctx, movie); err != nil {
		return nil, fmt.Errorf("inserting movie: %w", err)
	}
	return movie, nil
}

func (s *MovieService) List(ctx context.Context) ([]models.Movie, error) {
	movies, err := s.movieRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if movies == nil {
		movies = []models.Movie{}
	}
	return movies, nil
}

// GetByID resolves a movie from its hex id. A malformed id is reported the
// same way as an unknown one.
func (s *MovieService) GetByID(ctx context.Context, id string) (*models.Movie, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrMovieNotFound
	}

	movie, err := s.movieRepo.FindByID(ctx, objID)
	if err != nil {
		return nil, err
	}
	if movie == nil {
		return nil, ErrMovieNotFound
	}
	return movie, nil
}

// Update overwrites only the fields present in the request. A pointer that is
// set but points at a zero value still overwrites, so clearing a field is
// expressible.
func (s *MovieService) Update(ctx context.Context, id string, req *models.UpdateMovieRequest) (*models.Movie, error) {
	movie, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	applyMovieUpdate(movie, req)

	if err := validateYear(movie.Year); err != nil {
		return nil, err
	}

	if err := s.movieRepo.Replace(ctx, movie); err != nil {
		return nil, fmt.Errorf("updating movie: %w", err)
	}
	return movie, nil
}

func applyMovieUpdate(movie *models.Movie, req *models.UpdateMovieRequest) {
	if req.Title != nil {
		movie.Title = *req.Title
	}
	if req.Director != nil {
		movie.Director = *req.Director
	}
	if req.Year != nil {
		movie.Year = *req.Year
	}
	if req.Description != nil {
		movie.Description = *req.Description
	}
	if req.Genre != nil {
		movie.Genre = *req.Genre
	}
}

// Delete removes a movie and reports not-found when nothing matched, keeping
// delete consistent with the other id-addressed operations.
func (s *MovieService) Delete(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrMovieNotFound
	}

	deleted, err := s.movieRepo.Delete(ctx, objID)
	if err != nil {
		return fmt.Errorf("deleting movie: %w", err)
	}
	if deleted == 0 {
		return ErrMovieNotFound
	}
	return nil
}

// AddComment upserts a comment keyed by the commenting user: an existing
// comment from the same user is replaced in place, keeping its id and its
// position in the thread, otherwise the comment is appended.
func (s *MovieService) AddComment(ctx context.Context, movieID string, req *models.AddCommentRequest) (*models.Movie, error) {
	movie, err := s.GetByID(ctx, movieID)
	if err != nil {
		return nil, err
	}

	movie.Comments = upsertComment(movie.Comments, req.UserID, req.Comment)

	if err := s.movieRepo.Replace(ctx, movie); err != nil {
		return nil, fmt.Errorf("saving comment: %w", err)
	}
	return movie, nil
}

func upsertComment(comments []models.Comment, userID, text string) []models.Comment {
	for i := range comments {
		if comments[i].UserID == userID {
			comments[i].Comment = text
			return comments
		}
	}
	return append(comments, models.Comment{
		ID:      primitive.NewObjectID(),
		UserID:  userID,
		Comment: text,
	})
}

// ListComments returns a movie's comments in insertion order.
func (s *MovieService) ListComments(ctx context.Context, movieID string) ([]models.Comment, error) {
	movie, err := s.GetByID(ctx, movieID)
	if err != nil {
		return nil, err
	}
	if movie.Comments == nil {
		return []models.Comment{}, nil
	}
	return movie.Comments, nil
}
