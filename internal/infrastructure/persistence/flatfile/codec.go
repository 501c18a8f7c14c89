// Package flatfile stores members as pipe-delimited text, one record per
// line, behind a fixed comment header.
//
// Record layout:
//
//	TYPE|ID|NAME|LOCATION|PHONE|EMAIL|GENDER|DOB|MEMBERSHIP_START|REFERRAL|PAID_AMOUNT|ACTIVE|ATTENDANCE|LOYALTY|ADDITIONAL_DATA
//
// ADDITIONAL_DATA is comma-delimited: "plan,price" for regular members and
// "trainer,isFullPayment,discountAmount,cumulativePaid" for premium members.
// Everything after the first sub-field is optional on read.
package flatfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/orris-inc/gymdesk/internal/domain/member"
	vo "github.com/orris-inc/gymdesk/internal/domain/member/valueobjects"
)

const (
	HeaderTitle  = "# GYM MEMBER DATABASE"
	HeaderFormat = "# FORMAT: TYPE|ID|NAME|LOCATION|PHONE|EMAIL|GENDER|DOB|MEMBERSHIP_START|REFERRAL|PAID_AMOUNT|ACTIVE|ATTENDANCE|LOYALTY|ADDITIONAL_DATA"

	fieldDelimiter    = "|"
	subFieldDelimiter = ","
	commentPrefix     = "#"
)

// Field positions within a record.
const (
	fieldType = iota
	fieldID
	fieldName
	fieldLocation
	fieldPhone
	fieldEmail
	fieldGender
	fieldDOB
	fieldMembershipStart
	fieldReferral
	fieldPaidAmount
	fieldActive
	fieldAttendance
	fieldLoyalty
	fieldAdditional

	// MinFields is the number of fields a record must have. Extra trailing
	// fields are ignored.
	MinFields
)

var ErrMalformedRecord = errors.New("malformed member record")

// Encode writes the header followed by one record per member.
func Encode(w io.Writer, members []*member.Member) error {
	bw := bufio.NewWriter(w)

	for _, line := range []string{HeaderTitle, HeaderFormat, ""} {
		if _, err := bw.WriteString(line + "\n"); err != nil {
			return err
		}
	}

	for _, m := range members {
		record, err := EncodeMember(m)
		if err != nil {
			return err
		}
		if _, err := bw.WriteString(record + "\n"); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// EncodeMember renders a single record without a trailing newline.
func EncodeMember(m *member.Member) (string, error) {
	fields := make([]string, MinFields)
	fields[fieldType] = m.Type().String()
	fields[fieldID] = m.ID()
	fields[fieldName] = m.Name()
	fields[fieldLocation] = m.Location()
	fields[fieldPhone] = m.Phone()
	fields[fieldEmail] = m.Email()
	fields[fieldGender] = m.Gender().String()
	fields[fieldDOB] = m.DOB()
	fields[fieldMembershipStart] = m.MembershipStartDate()
	fields[fieldReferral] = m.ReferralSource()
	fields[fieldPaidAmount] = m.PaidAmount().String()
	fields[fieldActive] = strconv.FormatBool(m.IsActive())
	fields[fieldAttendance] = strconv.Itoa(m.Attendance())
	fields[fieldLoyalty] = strconv.FormatInt(m.LoyaltyPoints(), 10)

	switch m.Type() {
	case vo.MemberTypeRegular:
		r := m.Regular()
		fields[fieldAdditional] = joinSubFields(r.Plan().String(), r.Price().String())
	case vo.MemberTypePremium:
		p := m.Premium()
		fields[fieldAdditional] = joinSubFields(
			p.PersonalTrainer(),
			strconv.FormatBool(p.IsFullPayment()),
			p.DiscountAmount().String(),
			p.PaidAmount().String(),
		)
	default:
		return "", fmt.Errorf("%w: member %s has unknown type %q", ErrMalformedRecord, m.ID(), m.Type())
	}

	for i, f := range fields {
		if strings.ContainsAny(f, "|\r\n") {
			return "", fmt.Errorf("%w: member %s field %d contains a delimiter", ErrMalformedRecord, m.ID(), i)
		}
	}

	return strings.Join(fields, fieldDelimiter), nil
}

func joinSubFields(parts ...string) string {
	return strings.Join(parts, subFieldDelimiter)
}

// IsSkippable reports whether a line carries no record.
func IsSkippable(line string) bool {
	trimmed := strings.TrimSpace(line)
	return trimmed == "" || strings.HasPrefix(trimmed, commentPrefix)
}

// DecodeLine parses one record. Errors wrap ErrMalformedRecord or
// member.ErrInvalidMember.
func DecodeLine(line string) (*member.Member, error) {
	fields := strings.Split(line, fieldDelimiter)
	if len(fields) < MinFields {
		return nil, fmt.Errorf("%w: expected at least %d fields, got %d", ErrMalformedRecord, MinFields, len(fields))
	}

	memberType, err := vo.ParseMemberType(fields[fieldType])
	if err != nil {
		return nil, malformed(err)
	}
	gender, err := vo.ParseGender(fields[fieldGender])
	if err != nil {
		return nil, malformed(err)
	}
	paid, err := vo.ParseMoney(fields[fieldPaidAmount])
	if err != nil {
		return nil, malformed(fmt.Errorf("paid amount: %w", err))
	}
	active, err := strconv.ParseBool(strings.TrimSpace(fields[fieldActive]))
	if err != nil {
		return nil, malformed(fmt.Errorf("active flag: %w", err))
	}
	attendance, err := strconv.Atoi(strings.TrimSpace(fields[fieldAttendance]))
	if err != nil {
		return nil, malformed(fmt.Errorf("attendance: %w", err))
	}
	loyalty, err := parseWholeNumber(fields[fieldLoyalty])
	if err != nil {
		return nil, malformed(fmt.Errorf("loyalty points: %w", err))
	}

	params := member.ReconstructParams{
		Type: memberType,
		Profile: member.Profile{
			ID:                  fields[fieldID],
			Name:                fields[fieldName],
			Location:            fields[fieldLocation],
			Phone:               fields[fieldPhone],
			Email:               fields[fieldEmail],
			Gender:              gender,
			DOB:                 fields[fieldDOB],
			MembershipStartDate: fields[fieldMembershipStart],
			ReferralSource:      fields[fieldReferral],
			PaidAmount:          paid,
		},
		Active:        active,
		Attendance:    attendance,
		LoyaltyPoints: loyalty,
	}

	sub := strings.Split(fields[fieldAdditional], subFieldDelimiter)
	switch memberType {
	case vo.MemberTypeRegular:
		err = decodeRegular(sub, &params)
	case vo.MemberTypePremium:
		err = decodePremium(sub, &params)
	}
	if err != nil {
		return nil, err
	}

	return member.ReconstructMember(params)
}

func decodeRegular(sub []string, params *member.ReconstructParams) error {
	params.Plan = sub[0]
	if len(sub) > 1 && strings.TrimSpace(sub[1]) != "" {
		// The price is derived from the plan; the stored copy only has to parse.
		if _, err := vo.ParseMoney(sub[1]); err != nil {
			return malformed(fmt.Errorf("plan price: %w", err))
		}
	}
	return nil
}

func decodePremium(sub []string, params *member.ReconstructParams) error {
	params.PersonalTrainer = sub[0]

	if len(sub) > 1 {
		full, err := strconv.ParseBool(strings.TrimSpace(sub[1]))
		if err != nil {
			return malformed(fmt.Errorf("full payment flag: %w", err))
		}
		params.IsFullPayment = &full
	}
	if len(sub) > 2 {
		discount, err := vo.ParseMoney(sub[2])
		if err != nil {
			return malformed(fmt.Errorf("discount amount: %w", err))
		}
		params.DiscountAmount = discount
	}
	if len(sub) > 3 {
		cumulative, err := vo.ParseMoney(sub[3])
		if err != nil {
			return malformed(fmt.Errorf("cumulative paid amount: %w", err))
		}
		params.CumulativePaid = &cumulative
	}
	return nil
}

// parseWholeNumber accepts "150" as well as "150.0", which older files
// contain for loyalty points.
func parseWholeNumber(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if f != math.Trunc(f) || math.IsInf(f, 0) || math.Abs(f) > 1<<53 {
		return 0, fmt.Errorf("%q is not a whole number", s)
	}
	return int64(f), nil
}

func malformed(err error) error {
	return fmt.Errorf("%w: %v", ErrMalformedRecord, err)
}
