package helper

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/Anklebracelet24/movieApp-ruiz/models"
)

var movieColumns = []string{"title", "director", "year", "description", "genre"}

// LoadMoviesFromCSV reads a catalog export with a
// title,director,year,description,genre header and returns the movie rows.
func LoadMoviesFromCSV(path string) ([]models.AddMovieRequest, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	reader := csv.NewReader(file)

	header, err := reader.Read()
	if err != nil {
		return nil, err
	}

	// Map each expected column to its position in the header
	index := make(map[string]int, len(header))
	for i, column := range header {
		index[column] = i
	}
	for _, column := range movieColumns {
		if _, ok := index[column]; !ok {
			return nil, errors.New(column + " column not found in CSV")
		}
	}

	var movies []models.AddMovieRequest
	line := 1
	for {
		row, err := reader.Read()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, err
		}
		line++

		year, err := strconv.Atoi(row[index["year"]])
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid year %q", line, row[index["year"]])
		}

		movies = append(movies, models.AddMovieRequest{
			Title:       row[index["title"]],
			Director:    row[index["director"]],
			Year:        year,
			Description: row[index["description"]],
			Genre:       row[index["genre"]],
		})
	}

	return movies, nil
}
