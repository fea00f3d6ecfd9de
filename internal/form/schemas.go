package form

import (
	"errors"
	"strconv"

	"github.com/d60-Lab/yatube/internal/model"
)

var errInvalidChoice = errors.New(MsgInvalidChoice)

// PostSchema maps the post form: text is required, group must be one of groups
// or empty. The image field is a file and is bound separately.
func PostSchema(groups []*model.Group) Schema[model.Post] {
	return Schema[model.Post]{
		{
			Name: "text",
			Rule: "required",
			Apply: func(p *model.Post, v string) error {
				p.Text = v
				return nil
			},
		},
		{
			Name: "group",
			Rule: "omitempty,numeric",
			Apply: func(p *model.Post, v string) error {
				if v == "" {
					p.GroupID, p.Group = nil, nil
					return nil
				}
				id, err := strconv.ParseUint(v, 10, 64)
				if err != nil {
					return errInvalidChoice
				}
				for _, g := range groups {
					if uint64(g.ID) == id {
						gid := g.ID
						p.GroupID, p.Group = &gid, g
						return nil
					}
				}
				return errInvalidChoice
			},
		},
	}
}

// CommentSchema maps the comment form.
func CommentSchema() Schema[model.Comment] {
	return Schema[model.Comment]{
		{
			Name: "text",
			Rule: "required",
			Apply: func(c *model.Comment, v string) error {
				c.Text = v
				return nil
			},
		},
	}
}

// SignupInput is the target of the sign-up form.
type SignupInput struct {
	Username string
	Email    string
	Password string
}

// SignupSchema maps the sign-up form.
func SignupSchema() Schema[SignupInput] {
	return Schema[SignupInput]{
		{
			Name:  "username",
			Rule:  "required,min=3,max=150,username",
			Apply: func(in *SignupInput, v string) error { in.Username = v; return nil },
		},
		{
			Name:  "email",
			Rule:  "omitempty,email,max=254",
			Apply: func(in *SignupInput, v string) error { in.Email = v; return nil },
		},
		{
			Name:   "password",
			Rule:   "required,min=8,max=128",
			NoTrim: true,
			Apply:  func(in *SignupInput, v string) error { in.Password = v; return nil },
		},
	}
}
