package blogservice

import (
	"time"

	"github.com/sushihentaime/inkpost/internal/common"
	"github.com/sushihentaime/inkpost/internal/memdb"
)

func validateTitle(v *common.Validator, title string) {
	v.Check(common.NotBlank(title), "title", "must be provided")
	v.Check(v.CheckStringLength(title, 0, 200), "title", "must not be more than 200 characters long")
}

func validateContent(v *common.Validator, content string) {
	v.Check(common.NotBlank(content), "content", "must be provided")
}

func validateID(v *common.Validator, id, name string) {
	v.Check(common.NotBlank(id), name, "must be provided")
}

func validateStatus(v *common.Validator, status memdb.PostStatus) {
	v.Check(common.PermittedValue(status, memdb.PostStatuses...), "status", "must be draft, published or scheduled")
}

func validatePostType(v *common.Validator, t memdb.PostType) {
	v.Check(common.PermittedValue(t, memdb.PostTypes...), "post_type", "must be blog or article")
}

func validateSchedule(v *common.Validator, status memdb.PostStatus, at *time.Time) {
	if status == memdb.StatusScheduled {
		v.Check(at != nil, "scheduled_publish_time", "must be provided when status is scheduled")
	}
}

func validateReaction(v *common.Validator, t memdb.ReactionType) {
	v.Check(common.PermittedValue(t, memdb.ReactionTypes...), "type", "must be a known reaction")
}

func validateCategory(v *common.Validator, name string) {
	v.Check(common.NotBlank(name), "name", "must be provided")
	v.Check(v.CheckStringLength(name, 0, 50), "name", "must not be more than 50 characters long")
}
