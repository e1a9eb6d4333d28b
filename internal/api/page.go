package api

import (
	"net/url"
	"strconv"
)

// Default page sizes per collection, matching what the web client asks for.
const (
	DefaultPlayersLimit  = 50
	DefaultGamesLimit    = 20
	DefaultStadiumsLimit = 50
)

// Page is a skip/limit window for list operations.
// The zero value means "first page with the collection's default size".
type Page struct {
	Offset int
	Limit  int
}

func (p Page) normalize(defaultLimit int) (Page, error) {
	var ferrs []FieldError
	if p.Offset < 0 {
		ferrs = append(ferrs, FieldError{Field: "skip", Message: "must be >= 0"})
	}
	if p.Limit < 0 {
		ferrs = append(ferrs, FieldError{Field: "limit", Message: "must be > 0"})
	}
	if err := NewInvalidInputError(ferrs); err != nil {
		return Page{}, err
	}
	if p.Limit == 0 {
		p.Limit = defaultLimit
	}
	return p, nil
}

func (p Page) query() url.Values {
	return url.Values{
		"skip":  {strconv.Itoa(p.Offset)},
		"limit": {strconv.Itoa(p.Limit)},
	}
}
