package memdb

import (
	"fmt"
	"time"
)

func actorOf(u *User) Actor {
	return Actor{ID: u.ID, Username: u.Username, ProfilePictureURL: u.ProfilePictureURL}
}

func newNotification(recipientID string, actor *User, t NotificationType, message, link string, now time.Time) *Notification {
	return &Notification{
		ID:          NewID(),
		RecipientID: recipientID,
		Actor:       actorOf(actor),
		Type:        t,
		Message:     message,
		Link:        link,
		CreatedAt:   now,
	}
}

func postLink(postID string) string {
	return "#/blog/" + postID
}

func authorLink(userID string) string {
	return "#/author/" + userID
}

// ReactionNotification tells the author of post that actor reacted to it.
func ReactionNotification(actor *User, post *Post, now time.Time) *Notification {
	msg := fmt.Sprintf("%s reacted to your post \"%s\"", actor.Username, post.Title)
	return newNotification(post.AuthorID, actor, NotificationReaction, msg, postLink(post.ID), now)
}

// CommentNotification tells the author of post that actor commented on it.
func CommentNotification(actor *User, post *Post, now time.Time) *Notification {
	msg := fmt.Sprintf("%s commented on your post \"%s\"", actor.Username, post.Title)
	return newNotification(post.AuthorID, actor, NotificationComment, msg, postLink(post.ID), now)
}

// ReplyNotification tells the author of parent that actor replied to it.
func ReplyNotification(actor *User, parent *Comment, post *Post, now time.Time) *Notification {
	msg := fmt.Sprintf("%s replied to your comment on \"%s\"", actor.Username, post.Title)
	return newNotification(parent.UserID, actor, NotificationReply, msg, postLink(post.ID), now)
}

// FollowNotification tells target that actor started following them.
func FollowNotification(actor *User, targetID string, now time.Time) *Notification {
	msg := fmt.Sprintf("%s started following you.", actor.Username)
	return newNotification(targetID, actor, NotificationFollow, msg, authorLink(actor.ID), now)
}
