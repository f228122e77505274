package types

import (
	"fmt"
	"unicode/utf8"
)

// Length bounds, inclusive, counted in characters.
const (
	MagazineNameMin = 2
	MagazineNameMax = 16
	TitleMin        = 5
	TitleMax        = 50
)

func validateAuthorName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: author name must not be empty", ErrInvalidName)
	}
	return nil
}

func validateMagazineName(name string) error {
	if n := utf8.RuneCountInString(name); n < MagazineNameMin || n > MagazineNameMax {
		return fmt.Errorf("%w: magazine name must be %d to %d characters, got %d",
			ErrInvalidName, MagazineNameMin, MagazineNameMax, n)
	}
	return nil
}

func validateCategory(category string) error {
	if category == "" {
		return fmt.Errorf("%w: category must not be empty", ErrInvalidCategory)
	}
	return nil
}

func validateTitle(title string) error {
	if n := utf8.RuneCountInString(title); n < TitleMin || n > TitleMax {
		return fmt.Errorf("%w: title must be %d to %d characters, got %d",
			ErrInvalidTitle, TitleMin, TitleMax, n)
	}
	return nil
}
