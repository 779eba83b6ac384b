package posting

import (
	"strings"

	"github.com/heartmarshall/hiretrack-backend/internal/domain"
)

const (
	maxTitleLen       = 200
	maxShortFieldLen  = 200
	maxDescriptionLen = 20000
	maxURLLen         = 2048
)

// SalaryInput is the pay range as entered. Empty currency/interval fall back
// to USD per YEAR.
type SalaryInput struct {
	Minimum  float64
	Maximum  float64
	Currency domain.Currency
	Interval domain.SalaryInterval
}

func (s SalaryInput) validate(errs []domain.FieldError) []domain.FieldError {
	if s.Minimum < 0 {
		errs = append(errs, domain.FieldError{Field: "salary.minimum", Message: "must be non-negative"})
	}
	if s.Maximum < 0 {
		errs = append(errs, domain.FieldError{Field: "salary.maximum", Message: "must be non-negative"})
	}
	if s.Maximum > 0 && s.Minimum > s.Maximum {
		errs = append(errs, domain.FieldError{Field: "salary.minimum", Message: "must not exceed maximum"})
	}
	if s.Currency != "" && !s.Currency.IsValid() {
		errs = append(errs, domain.FieldError{Field: "salary.currency", Message: "must be one of USD, EUR, GBP"})
	}
	if s.Interval != "" && !s.Interval.IsValid() {
		errs = append(errs, domain.FieldError{Field: "salary.interval", Message: "must be one of HOUR, DAY, WEEK, MONTH, YEAR"})
	}
	return errs
}

func (s SalaryInput) toDomain() domain.Salary {
	out := domain.Salary{
		Minimum:  s.Minimum,
		Maximum:  s.Maximum,
		Currency: s.Currency,
		Interval: s.Interval,
	}
	if out.Currency == "" {
		out.Currency = domain.CurrencyUSD
	}
	if out.Interval == "" {
		out.Interval = domain.SalaryIntervalYear
	}
	return out
}

// CreatePostingInput holds the parameters for creating a job posting.
type CreatePostingInput struct {
	Title          string
	Department     string
	Location       string
	Description    string
	JobType        string
	CompanyName    string
	ExternalID     string
	ApplicationURL string
	Salary         SalaryInput
	Status         string
}

// Validate checks all fields and collects all errors.
func (i CreatePostingInput) Validate() error {
	var errs []domain.FieldError

	title := strings.TrimSpace(i.Title)
	if title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if len(title) > maxTitleLen {
		errs = append(errs, domain.FieldError{Field: "title", Message: "max 200 characters"})
	}

	errs = validateText(errs, map[string]string{
		"department":   i.Department,
		"location":     i.Location,
		"job_type":     i.JobType,
		"company_name": i.CompanyName,
		"external_id":  i.ExternalID,
		"status":       i.Status,
	})
	if len(i.Description) > maxDescriptionLen {
		errs = append(errs, domain.FieldError{Field: "description", Message: "max 20000 characters"})
	}
	if len(i.ApplicationURL) > maxURLLen {
		errs = append(errs, domain.FieldError{Field: "application_url", Message: "max 2048 characters"})
	}

	errs = i.Salary.validate(errs)

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdatePostingInput replaces the editable fields of a posting. Nil fields
// are left unchanged.
type UpdatePostingInput struct {
	ID             int64
	Title          *string
	Department     *string
	Location       *string
	Description    *string
	JobType        *string
	CompanyName    *string
	ExternalID     *string
	ApplicationURL *string
	Salary         *SalaryInput
	Status         *string
}

// Validate checks all fields and collects all errors.
func (i UpdatePostingInput) Validate() error {
	var errs []domain.FieldError

	if i.ID <= 0 {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if i.Title != nil {
		title := strings.TrimSpace(*i.Title)
		if title == "" {
			errs = append(errs, domain.FieldError{Field: "title", Message: "must not be empty"})
		}
		if len(title) > maxTitleLen {
			errs = append(errs, domain.FieldError{Field: "title", Message: "max 200 characters"})
		}
	}
	if i.Status != nil && strings.TrimSpace(*i.Status) == "" {
		errs = append(errs, domain.FieldError{Field: "status", Message: "must not be empty"})
	}

	short := map[string]string{}
	for field, v := range map[string]*string{
		"department":   i.Department,
		"location":     i.Location,
		"job_type":     i.JobType,
		"company_name": i.CompanyName,
		"external_id":  i.ExternalID,
		"status":       i.Status,
	} {
		if v != nil {
			short[field] = *v
		}
	}
	errs = validateText(errs, short)

	if i.Description != nil && len(*i.Description) > maxDescriptionLen {
		errs = append(errs, domain.FieldError{Field: "description", Message: "max 20000 characters"})
	}
	if i.ApplicationURL != nil && len(*i.ApplicationURL) > maxURLLen {
		errs = append(errs, domain.FieldError{Field: "application_url", Message: "max 2048 characters"})
	}
	if i.Salary != nil {
		errs = i.Salary.validate(errs)
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// validateText applies the length limit to short free-text fields, in a
// stable field order so error lists are deterministic.
func validateText(errs []domain.FieldError, fields map[string]string) []domain.FieldError {
	for _, name := range []string{"department", "location", "job_type", "company_name", "external_id", "status"} {
		v, ok := fields[name]
		if ok && len(v) > maxShortFieldLen {
			errs = append(errs, domain.FieldError{Field: name, Message: "max 200 characters"})
		}
	}
	return errs
}
