package validation

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode"

	"github.com/shopspring/decimal"
)

// Result is the outcome of a validation rule. Every rule evaluates all of its
// sub-checks and reports every violation, so callers can render a combined
// message instead of forcing the user to fix one problem at a time.
type Result struct {
	IsValid bool
	Errors  []string
}

func newResult(errs []string) Result {
	return Result{IsValid: len(errs) == 0, Errors: errs}
}

// ErrorText joins all violations into a single user-facing string.
func (r Result) ErrorText() string {
	return strings.Join(r.Errors, ", ")
}

// DateFormat is the wire format for all document dates.
const DateFormat = "2006-01-02"

var (
	slugAllowedRe  = regexp.MustCompile(`^[a-z0-9-]+$`)
	slugStartRe    = regexp.MustCompile(`^[a-z]`)
	slugEndRe      = regexp.MustCompile(`[a-z0-9]$`)
	codeAllowedRe  = regexp.MustCompile(`^[A-Z0-9\-_]+$`)
	codeStartRe    = regexp.MustCompile(`^[A-Z]`)
	emailRe        = regexp.MustCompile(`^[a-zA-Z0-9.!#$%&'*+/=?^_` + "`" + `{|}~-]+@[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(?:\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)+$`)
	panRe          = regexp.MustCompile(`^[A-Z]{5}[0-9]{4}[A-Z]$`)
	gstinRe        = regexp.MustCompile(`^[0-9]{2}[A-Z]{5}[0-9]{4}[A-Z][1-9A-Z]Z[0-9A-Z]$`)
	whitespaceRe   = regexp.MustCompile(`\s`)
	doubleDashRe   = regexp.MustCompile(`--`)
	passwordSpecRe = regexp.MustCompile(`[!@#$%^&*()\-_=+\[\]{};:'",.<>/?\\|` + "`" + `~]`)
)

// Slug validates an organization subdomain style slug: lowercase alphanumerics
// and hyphens, starting with a letter, ending with a letter or digit, and no
// consecutive hyphens.
func Slug(slug string) Result {
	var errs []string

	if whitespaceRe.MatchString(slug) {
		errs = append(errs, "slug should not contain spaces")
	}
	if slug != strings.ToLower(slug) {
		errs = append(errs, "slug should only contain lowercase letters")
	}
	if !slugAllowedRe.MatchString(slug) {
		errs = append(errs, "slug contains invalid characters, only a-z, 0-9 and '-' are allowed")
	}
	if !slugStartRe.MatchString(slug) {
		errs = append(errs, "slug must start with a lowercase letter")
	}
	if !slugEndRe.MatchString(slug) {
		errs = append(errs, "slug must end with a lowercase letter or digit")
	}
	if doubleDashRe.MatchString(slug) {
		errs = append(errs, "slug should not contain multiple consecutive dashes")
	}

	return newResult(errs)
}

// Code validates a document/business code such as an invoice number or project
// code: 2 to 10 characters from [A-Z0-9-_], starting with a letter.
func Code(code string) Result {
	var errs []string

	if len(code) < 2 || len(code) > 10 {
		errs = append(errs, "code must be between 2 and 10 characters long")
	}
	if !codeAllowedRe.MatchString(code) {
		errs = append(errs, "code contains invalid characters, only A-Z, 0-9, '-' and '_' are allowed")
	}
	if !codeStartRe.MatchString(code) {
		errs = append(errs, "code must start with an uppercase letter")
	}

	return newResult(errs)
}

// Email validates an email address format.
func Email(email string) Result {
	var errs []string

	if whitespaceRe.MatchString(email) {
		errs = append(errs, "email should not contain spaces")
	}
	if !emailRe.MatchString(email) {
		errs = append(errs, "email is not in a valid format")
	}

	return newResult(errs)
}

// PAN validates the format of an Indian Permanent Account Number. The value is
// an opaque identifier to this system; only the pattern is checked.
func PAN(pan string) Result {
	var errs []string

	if len(pan) != 10 {
		errs = append(errs, "PAN must be exactly 10 characters long")
	}
	if !panRe.MatchString(pan) {
		errs = append(errs, "PAN is not in a valid format")
	}

	return newResult(errs)
}

// GSTIN validates the format of an Indian GST identification number.
func GSTIN(gstin string) Result {
	var errs []string

	if len(gstin) != 15 {
		errs = append(errs, "GSTIN must be exactly 15 characters long")
	}
	if !gstinRe.MatchString(gstin) {
		errs = append(errs, "GSTIN is not in a valid format")
	}

	return newResult(errs)
}

// Password validates password strength. All rules are checked independently so
// the caller can present the complete list of unmet requirements.
func Password(password string) Result {
	var errs []string

	if len(password) < 8 || len(password) > 25 {
		errs = append(errs, "password must be between 8 and 25 characters long")
	}

	var hasUpper, hasLower, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasUpper {
		errs = append(errs, "password must contain at least one uppercase letter")
	}
	if !hasLower {
		errs = append(errs, "password must contain at least one lowercase letter")
	}
	if !hasDigit {
		errs = append(errs, "password must contain at least one digit")
	}
	if !passwordSpecRe.MatchString(password) {
		errs = append(errs, "password must contain at least one special character")
	}
	if whitespaceRe.MatchString(password) {
		errs = append(errs, "password should not contain whitespace")
	}

	return newResult(errs)
}

// Integer validates that value is at least min.
func Integer(value int, min int) Result {
	var errs []string

	if value < min {
		errs = append(errs, fmt.Sprintf("value must be at least %d", min))
	}

	return newResult(errs)
}

// Decimal validates that value is at least min and has no more than
// maxDecimalPlaces digits after the decimal point.
func Decimal(value decimal.Decimal, min decimal.Decimal, maxDecimalPlaces int32) Result {
	var errs []string

	if value.LessThan(min) {
		errs = append(errs, fmt.Sprintf("value must be at least %s", min.String()))
	}
	if !value.Equal(value.Round(maxDecimalPlaces)) {
		errs = append(errs, fmt.Sprintf("value must not have more than %d decimal places", maxDecimalPlaces))
	}

	return newResult(errs)
}

// DateString validates that s is a parseable date in the wire format.
func DateString(s string) Result {
	var errs []string

	if _, err := time.Parse(DateFormat, s); err != nil {
		errs = append(errs, fmt.Sprintf("date must be a valid date in %s format", "YYYY-MM-DD"))
	}

	return newResult(errs)
}
