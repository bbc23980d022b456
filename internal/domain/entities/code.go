package entities

import (
	"crypto/rand"
	"math/big"
	"regexp"
	"strings"
	"time"
)

const (
	codePrefix     = "OS-"
	codeDateLayout = "20060102"
	codeSuffixLen  = 6
	codeAlphabet   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

var codePattern = regexp.MustCompile(`^OS-\d{8}-[A-Z0-9]{6}$`)

// OrderCode is the human-readable order identifier, e.g. OS-20240115-A1B2C3.
type OrderCode string

// ParseCode validates s and normalizes it to upper case.
func ParseCode(s string) (OrderCode, error) {
	c := strings.ToUpper(strings.TrimSpace(s))
	if !codePattern.MatchString(c) {
		return "", NewInvalidInput("invalid order code %q", s)
	}
	return OrderCode(c), nil
}

// GenerateCode builds a random candidate for the UTC day of now. Uniqueness is
// not guaranteed here; callers check it against the repository.
func GenerateCode(now time.Time) (OrderCode, error) {
	var sb strings.Builder
	sb.Grow(len(codePrefix) + len(codeDateLayout) + 1 + codeSuffixLen)
	sb.WriteString(codePrefix)
	sb.WriteString(now.UTC().Format(codeDateLayout))
	sb.WriteByte('-')

	max := big.NewInt(int64(len(codeAlphabet)))
	for i := 0; i < codeSuffixLen; i++ {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		sb.WriteByte(codeAlphabet[n.Int64()])
	}
	return OrderCode(sb.String()), nil
}

func (c OrderCode) String() string {
	return string(c)
}

func (c OrderCode) IsValid() bool {
	return codePattern.MatchString(string(c))
}
