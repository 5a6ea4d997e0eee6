// Package validate provides submission input validation for FPT Pray.
//
// Validation is pure: the same input always yields the same result, and
// nothing here touches the network or the store. Both the client pipeline
// and the HTTP handler run the same rules; the server never trusts the
// client's result.
package validate

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/vyyka/fptpray/internal/errors"
	"github.com/vyyka/fptpray/internal/model"
)

const (
	// MaxEmailLength is the maximum total length of the email address.
	MaxEmailLength = 64
	// MinWishLength is the minimum wish length after trimming.
	MinWishLength = 5
	// MaxWishLength is the maximum wish length after trimming.
	MaxWishLength = 1200
)

// User-facing rejection messages, in the site's original voice.
const (
	MsgIncomplete   = "Bạn chưa nhập đầy đủ email và lời nguyện."
	MsgInvalidEmail = "Email không hợp lệ. Hãy nhập đúng định dạng ví dụ name@fpt.com.vn (tối đa 64 ký tự)."
	MsgWishTooShort = "Lời nguyện phải ít nhất 5 ký tự."
	MsgWishTooLong  = "Lời nguyện tối đa 1200 ký tự."
)

// emailRegex is a bounded address pattern: local part must start and end with
// an alphanumeric, domain labels likewise, at least one dot-separated TLD of
// letters. Case-insensitive.
var emailRegex = regexp.MustCompile(`(?i)^[A-Za-z0-9](?:[A-Za-z0-9._%+-]{0,62}[A-Za-z0-9])?@[A-Za-z0-9](?:[A-Za-z0-9-]{0,61}[A-Za-z0-9])?(?:\.[A-Za-z]{2,})+$`)

// Email validates a trimmed email address.
func Email(email string) error {
	if !emailRegex.MatchString(email) || len(email) > MaxEmailLength {
		return errors.NewRejectionWithField(errors.InvalidEmail, "email", MsgInvalidEmail)
	}
	return nil
}

// Wish validates a trimmed wish. Length is counted in runes so Vietnamese
// text is not penalized for multi-byte characters.
func Wish(wish string) error {
	n := utf8.RuneCountInString(wish)
	if n < MinWishLength {
		return errors.NewRejectionWithField(errors.TooShort, "wish", MsgWishTooShort)
	}
	if n > MaxWishLength {
		return errors.NewRejectionWithField(errors.TooLong, "wish", MsgWishTooLong)
	}
	return nil
}

// Prayer validates a raw submission and returns the normalized payload.
// Empty fields are rejected before any format check.
func Prayer(email, wish string) (model.Prayer, error) {
	email = strings.TrimSpace(email)
	wish = strings.TrimSpace(wish)

	if email == "" || wish == "" {
		return model.Prayer{}, errors.NewRejection(errors.IncompleteInput, MsgIncomplete)
	}
	if err := Email(email); err != nil {
		return model.Prayer{}, err
	}
	if err := Wish(wish); err != nil {
		return model.Prayer{}, err
	}

	return model.Prayer{Email: email, Wish: wish}, nil
}
