package database

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDatabaseConfigDSN(t *testing.T) {
	testCases := []struct {
		name     string
		config   DatabaseConfig
		expected string
	}{
		{
			name:     "sqlite file enables foreign keys",
			config:   DatabaseConfig{Driver: "sqlite", Path: "catalog.sqlite"},
			expected: "catalog.sqlite?_foreign_keys=on",
		},
		{
			name:     "sqlite keeps explicit options",
			config:   DatabaseConfig{Driver: "sqlite", Path: "catalog.sqlite?_busy_timeout=5000"},
			expected: "catalog.sqlite?_busy_timeout=5000",
		},
		{
			name:     "sqlite in memory",
			config:   DatabaseConfig{Driver: "", Path: ":memory:"},
			expected: ":memory:",
		},
		{
			name: "postgres from fields",
			config: DatabaseConfig{
				Driver: "postgres", Host: "db", Port: "5432", User: "catalog",
				Password: "pw", Name: "pizzeria", SSLMode: "disable",
			},
			expected: "host=db user=catalog password=pw dbname=pizzeria port=5432 sslmode=disable",
		},
		{
			name:     "postgres url wins over fields",
			config:   DatabaseConfig{Driver: "PostgreSQL", URL: "postgres://u:p@h:5432/d", Host: "ignored"},
			expected: "postgres://u:p@h:5432/d",
		},
		{
			name:     "unknown driver",
			config:   DatabaseConfig{Driver: "mysql"},
			expected: "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.config.DSN())
		})
	}
}

func TestDatabaseConfigStringMasksPasswords(t *testing.T) {
	config := DatabaseConfig{
		Driver:   "postgres",
		URL:      "postgres://catalog:url-secret@db:5432/pizzeria",
		Password: "field-secret",
	}

	out := config.String()
	assert.False(t, strings.Contains(out, "url-secret"))
	assert.False(t, strings.Contains(out, "field-secret"))
	assert.Contains(t, out, "catalog:REDACTED@db:5432")
}
