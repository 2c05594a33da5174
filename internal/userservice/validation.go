package userservice

import (
	"regexp"

	"github.com/sushihentaime/inkpost/internal/common"
	"github.com/sushihentaime/inkpost/internal/memdb"
)

var EmailRX = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Usernames are free-form display names.
func validateUsername(v *common.Validator, username string) {
	v.Check(common.NotBlank(username), "username", "must be provided")
	v.Check(v.CheckStringLength(username, 0, 100), "username", "must not be more than 100 characters long")
}

func validateEmail(v *common.Validator, email string) {
	v.Check(email != "", "email", "must be provided")
	v.Check(EmailRX.MatchString(email), "email", "must be a valid email address")
}

func validateRole(v *common.Validator, role memdb.Role) {
	v.Check(common.PermittedValue(role, memdb.Roles...), "role", "must be admin, editor or user")
}

func validateID(v *common.Validator, id, name string) {
	v.Check(common.NotBlank(id), name, "must be provided")
}
