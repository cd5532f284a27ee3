package models

type AddMovieRequest struct {
	Title       string `json:"title" binding:"required"`
	Director    string `json:"director" binding:"required"`
	Year        int    `json:"year" binding:"required"`
	Description string `json:"description" binding:"required"`
	Genre       string `json:"genre" binding:"required"`
}

// UpdateMovieRequest carries a partial overwrite. Nil means the field was
// absent from the payload; a non-nil pointer overwrites, even with a zero
// value.
type UpdateMovieRequest struct {
	Title       *string `json:"title"`
	Director    *string `json:"director"`
	Year        *int    `json:"year"`
	Description *string `json:"description"`
	Genre       *string `json:"genre"`
}

type AddCommentRequest struct {
	UserID  string `json:"userId" binding:"required"`
	Comment string `json:"comment" binding:"required"`
}

type MovieListResponse struct {
	Movies []Movie `json:"movies"`
}

type MovieUpdatedResponse struct {
	Message      string `json:"message"`
	UpdatedMovie Movie  `json:"updatedMovie"`
}

type CommentListResponse struct {
	Comments []Comment `json:"comments"`
}
