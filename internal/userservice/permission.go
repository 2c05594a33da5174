package userservice

import (
	"slices"

	"github.com/sushihentaime/inkpost/internal/memdb"
)

type Permission string

const (
	PermissionWritePost        Permission = "post:write"
	PermissionModerateComments Permission = "comment:moderate"
	PermissionManageCategories Permission = "category:manage"
	PermissionManageUsers      Permission = "user:manage"
	PermissionViewAnalytics    Permission = "analytics:view"
)

var rolePermissions = map[memdb.Role][]Permission{
	memdb.RoleAdmin: {
		PermissionWritePost,
		PermissionModerateComments,
		PermissionManageCategories,
		PermissionManageUsers,
		PermissionViewAnalytics,
	},
	memdb.RoleEditor: {
		PermissionWritePost,
		PermissionModerateComments,
		PermissionManageCategories,
	},
	memdb.RoleUser: {
		PermissionWritePost,
	},
}

// HasPermission reports whether the user's role grants p. A nil user has no permissions.
func HasPermission(u *memdb.User, p Permission) bool {
	if u == nil {
		return false
	}
	return slices.Contains(rolePermissions[u.Role], p)
}

// AnonymousUser stands for a request with no logged-in user.
var AnonymousUser = memdb.User{}

func IsAnonymous(u *memdb.User) bool {
	return u == nil || u.ID == ""
}
