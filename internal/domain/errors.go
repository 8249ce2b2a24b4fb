package domain

import "errors"

// Sentinel errors shared across the service and repository layers. Handlers
// translate these into HTTP responses.
var (
	ErrNotFound         = errors.New("not found")
	ErrUserExists       = errors.New("user already exists")
	ErrForbidden        = errors.New("forbidden")
	ErrOwnArticle       = errors.New("author cannot comment on own article")
	ErrDuplicateComment = errors.New("author already commented on this article")
	ErrBadCredentials   = errors.New("invalid username or password")
)

// User-visible messages. The comment and registration messages are part of
// the workflow contract and asserted verbatim in tests.
const (
	MsgCannotCommentOwnPost = "You cannot comment on your own post."
	MsgAlreadyCommented     = "You have already commented on this post."
	MsgPasswordMismatch     = "The two password fields didn't match."
	MsgFieldRequired        = "This field is required."
)
