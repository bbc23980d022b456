package entities

import (
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateCode_Format(t *testing.T) {
	re := regexp.MustCompile(`^OS-\d{8}-[A-Z0-9]{6}$`)
	now := time.Date(2024, 1, 15, 23, 30, 0, 0, time.FixedZone("BRT", -3*3600))

	for i := 0; i < 500; i++ {
		c, err := GenerateCode(now)
		require.NoError(t, err)
		assert.Regexp(t, re, c.String())
		// 23:30 at UTC-3 is already the next day in UTC.
		assert.Equal(t, "OS-20240116-", c.String()[:12])
		assert.True(t, c.IsValid())
	}
}

func TestParseCode(t *testing.T) {
	c, err := ParseCode("  os-20240115-a1b2c3 ")
	require.NoError(t, err)
	assert.Equal(t, OrderCode("OS-20240115-A1B2C3"), c)

	for _, bad := range []string{"", "OS-2024011-A1B2C3", "OS-20240115-A1B2C", "XX-20240115-A1B2C3", "OS-20240115-A1B2C$"} {
		_, err := ParseCode(bad)
		assert.True(t, errors.Is(err, ErrInvalidInput), bad)
	}
}
