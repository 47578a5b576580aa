package entity

import (
	"fmt"
	"net/mail"
	"regexp"
)

// Field length limits enforced before persistence.
const (
	TitleMinLength    = 3
	TitleMaxLength    = 255
	SummaryMaxLength  = 500
	ContentMinLength  = 10
	ContentMaxLength  = 65535
	NameMinLength     = 2
	NameMaxLength     = 100
	CategoryNameMin   = 2
	CategoryNameMax   = 50
	PasswordMinLength = 8
)

var (
	slugPattern  = regexp.MustCompile(`^[a-z0-9-]+$`)
	colorPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)
)

// ValidateTitle checks the article title length constraints.
func ValidateTitle(title string) error {
	if title == "" {
		return &ValidationError{Field: "title", Message: "is required"}
	}
	if len(title) < TitleMinLength || len(title) > TitleMaxLength {
		return &ValidationError{
			Field:   "title",
			Message: fmt.Sprintf("must be between %d and %d characters", TitleMinLength, TitleMaxLength),
		}
	}
	return nil
}

// ValidateSummary checks the optional article summary length.
func ValidateSummary(summary string) error {
	if len(summary) > SummaryMaxLength {
		return &ValidationError{
			Field:   "summary",
			Message: fmt.Sprintf("must not exceed %d characters", SummaryMaxLength),
		}
	}
	return nil
}

// ValidateContent checks the article body length constraints.
func ValidateContent(content string) error {
	if content == "" {
		return &ValidationError{Field: "content", Message: "is required"}
	}
	if len(content) < ContentMinLength || len(content) > ContentMaxLength {
		return &ValidationError{
			Field:   "content",
			Message: fmt.Sprintf("must be between %d and %d characters", ContentMinLength, ContentMaxLength),
		}
	}
	return nil
}

// ValidateStatus checks that the status is a recognized publication state.
func ValidateStatus(s Status) error {
	if !IsValidStatus(s) {
		return &ValidationError{Field: "status", Message: "must be draft, pending, published or archived"}
	}
	return nil
}

// ValidateSlug checks that an explicitly supplied slug is URL-safe.
func ValidateSlug(slug string) error {
	if slug == "" {
		return &ValidationError{Field: "slug", Message: "title yields no usable slug"}
	}
	if !slugPattern.MatchString(slug) {
		return &ValidationError{Field: "slug", Message: "must contain only lowercase letters, digits and hyphens"}
	}
	return nil
}

// ValidateUserName checks the user display name length constraints.
func ValidateUserName(name string) error {
	if name == "" {
		return &ValidationError{Field: "name", Message: "is required"}
	}
	if len(name) < NameMinLength || len(name) > NameMaxLength {
		return &ValidationError{
			Field:   "name",
			Message: fmt.Sprintf("must be between %d and %d characters", NameMinLength, NameMaxLength),
		}
	}
	return nil
}

// ValidateEmail checks that the address parses as RFC 5322.
func ValidateEmail(email string) error {
	if email == "" {
		return &ValidationError{Field: "email", Message: "is required"}
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return &ValidationError{Field: "email", Message: "must be a valid email address"}
	}
	return nil
}

// ValidateRole checks that the role is one of the recognized roles.
func ValidateRole(r Role) error {
	if !IsValidRole(r) {
		return &ValidationError{Field: "role", Message: "must be admin, editor or author"}
	}
	return nil
}

// ValidateCategoryName checks the category name length constraints.
func ValidateCategoryName(name string) error {
	if name == "" {
		return &ValidationError{Field: "name", Message: "is required"}
	}
	if len(name) < CategoryNameMin || len(name) > CategoryNameMax {
		return &ValidationError{
			Field:   "name",
			Message: fmt.Sprintf("must be between %d and %d characters", CategoryNameMin, CategoryNameMax),
		}
	}
	return nil
}

// ValidateColor checks the hex color format used by the admin UI (#RRGGBB).
func ValidateColor(color string) error {
	if color == "" {
		return nil // default applied by the caller
	}
	if !colorPattern.MatchString(color) {
		return &ValidationError{Field: "color", Message: "must be a hex color in #RRGGBB format"}
	}
	return nil
}
