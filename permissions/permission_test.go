package permissions_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"classbook/permissions"
)

func TestGet(t *testing.T) {
	data := permissions.Get()

	assert.NotNil(t, data)
	assert.False(t, data.Skip)
	assert.NotEmpty(t, data.Endpoints)
}

func TestFindPermissions(t *testing.T) {
	data := permissions.Get()

	tests := []struct {
		name      string
		path      string
		method    string
		wantSkip  bool
		wantRoles []string
	}{
		{
			name:     "register is public",
			path:     "/api/auth/register",
			method:   "POST",
			wantSkip: true,
		},
		{
			name:     "availability is public",
			path:     "/api/rooms/available",
			method:   "GET",
			wantSkip: true,
		},
		{
			name:   "profile requires authentication only",
			path:   "/api/user/me",
			method: "GET",
		},
		{
			name:      "subrouter root resolves with trailing slash",
			path:      "/api/admin/users/",
			method:    "GET",
			wantRoles: []string{"admin"},
		},
		{
			name:      "admin booking delete is role gated",
			path:      "/api/admin/bookings/{id}",
			method:    "DELETE",
			wantRoles: []string{"admin"},
		},
		{
			name:   "unknown endpoint yields empty permission",
			path:   "/api/unknown",
			method: "GET",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			permission := data.FindPermissions(tt.path, tt.method)

			assert.Equal(t, tt.wantSkip, permission.Skip)
			assert.ElementsMatch(t, tt.wantRoles, permission.Permissions)
		})
	}
}
