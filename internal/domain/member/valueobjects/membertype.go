package valueobjects

import "fmt"

// MemberType is the variant tag of a member. The values double as the
// record type tags of the member file.
type MemberType string

const (
	MemberTypeRegular MemberType = "REGULAR"
	MemberTypePremium MemberType = "PREMIUM"
)

func ParseMemberType(s string) (MemberType, error) {
	t := MemberType(s)
	if !t.IsValid() {
		return "", fmt.Errorf("unknown member type: %q", s)
	}
	return t, nil
}

func (t MemberType) IsValid() bool {
	return t == MemberTypeRegular || t == MemberTypePremium
}

func (t MemberType) String() string {
	return string(t)
}

// Label returns a human readable name, e.g. "Regular".
func (t MemberType) Label() string {
	switch t {
	case MemberTypeRegular:
		return "Regular"
	case MemberTypePremium:
		return "Premium"
	default:
		return string(t)
	}
}
