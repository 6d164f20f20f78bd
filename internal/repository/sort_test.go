package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderBy(t *testing.T) {
	allowed := map[string]string{
		"username":   "username",
		"created_at": "users.created_at",
	}

	tests := []struct {
		name string
		sort string
		want string
	}{
		{name: "whitelisted ascending", sort: "username", want: "username asc"},
		{name: "whitelisted descending", sort: "username,desc", want: "username desc"},
		{name: "direction case insensitive", sort: "username,DESC", want: "username desc"},
		{name: "mapped column", sort: "created_at,desc", want: "users.created_at desc"},
		{name: "whitespace trimmed", sort: " username , desc ", want: "username desc"},
		{name: "empty falls back", sort: "", want: "username asc"},
		{name: "unknown key falls back", sort: "password", want: "username asc"},
		{name: "unknown direction stays ascending", sort: "username,sideways", want: "username asc"},
		{name: "raw sql falls back", sort: "username; DROP TABLE users", want: "username asc"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, orderBy(tc.sort, allowed, "username asc"))
		})
	}
}
