package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEnv(t *testing.T) {
	t.Setenv("SONGFORM_TEST_A", "a")
	t.Setenv("SONGFORM_TEST_EMPTY", "")

	env, err := LoadEnv([]string{"SONGFORM_TEST_A"})
	require.NoError(t, err)
	assert.Equal(t, "a", env["SONGFORM_TEST_A"])

	_, err = LoadEnv([]string{"SONGFORM_TEST_A", "SONGFORM_TEST_EMPTY"})
	assert.EqualError(t, err, "missing required environment variable: SONGFORM_TEST_EMPTY")
}

func TestGetEnv(t *testing.T) {
	t.Setenv("SONGFORM_TEST_ADDR", "")
	assert.Equal(t, ":8080", GetEnv("SONGFORM_TEST_ADDR", ":8080"))

	t.Setenv("SONGFORM_TEST_ADDR", ":9090")
	assert.Equal(t, ":9090", GetEnv("SONGFORM_TEST_ADDR", ":8080"))
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"sukalov", "olakotr"}, SplitList(" @sukalov, ,olakotr "))
	assert.Nil(t, SplitList(""))
}

func TestConvertToMoscowTime(t *testing.T) {
	at := time.Date(2026, 5, 1, 21, 15, 0, 0, time.UTC)
	assert.Equal(t, "02.05.2026 00:15", ConvertToMoscowTime(at))
}
