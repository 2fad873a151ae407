package validation

import (
	"strconv"
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// MobileNumberValue is the canonical form of a validated mobile number:
// the country code with a leading '+' and the national number without
// formatting characters.
type MobileNumberValue struct {
	CountryCode    string
	NationalNumber string
}

// MobileNumber validates a country-code/number pair. The country code must map
// to a known territory, the number must be valid for that territory, and the
// country code re-derived from the parsed number must match the declared one
// (rejects mismatched country/number pairs). On success the canonical value is
// returned alongside the result.
func MobileNumber(countryCode, number string) (Result, MobileNumberValue) {
	var errs []string

	trimmed := strings.TrimPrefix(strings.TrimSpace(countryCode), "+")
	codeNum, err := strconv.Atoi(trimmed)
	if err != nil || codeNum <= 0 {
		errs = append(errs, "mobile country code is not valid")
		return newResult(errs), MobileNumberValue{}
	}

	region := phonenumbers.GetRegionCodeForCountryCode(codeNum)
	if region == "" || region == phonenumbers.UNKNOWN_REGION {
		errs = append(errs, "mobile country code does not match any known territory")
		return newResult(errs), MobileNumberValue{}
	}

	parsed, err := phonenumbers.Parse(number, region)
	if err != nil {
		errs = append(errs, "mobile number could not be parsed")
		return newResult(errs), MobileNumberValue{}
	}

	if !phonenumbers.IsValidNumber(parsed) {
		errs = append(errs, "mobile number is not valid for the given country code")
	}
	if int(parsed.GetCountryCode()) != codeNum {
		errs = append(errs, "mobile number does not belong to the given country code")
	}
	if len(errs) > 0 {
		return newResult(errs), MobileNumberValue{}
	}

	value := MobileNumberValue{
		CountryCode:    "+" + strconv.Itoa(int(parsed.GetCountryCode())),
		NationalNumber: strconv.FormatUint(parsed.GetNationalNumber(), 10),
	}
	return newResult(nil), value
}
