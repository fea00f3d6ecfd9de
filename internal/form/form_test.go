package form

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/d60-Lab/yatube/internal/model"
)

func groups() []*model.Group {
	return []*model.Group{{ID: 1, Title: "Cats", Slug: "cats"}, {ID: 7, Title: "Dogs", Slug: "dogs"}}
}

func TestPostSchemaValid(t *testing.T) {
	var p model.Post
	errs := PostSchema(groups()).Bind(url.Values{"text": {"  hello  "}, "group": {"7"}}, &p)

	require.True(t, errs.Valid(), errs)
	assert.Equal(t, "hello", p.Text)
	require.NotNil(t, p.GroupID)
	assert.Equal(t, uint(7), *p.GroupID)
	assert.Equal(t, "dogs", p.Group.Slug)
}

func TestPostSchemaClearsGroup(t *testing.T) {
	gid := uint(1)
	p := model.Post{Text: "old", GroupID: &gid}
	errs := PostSchema(groups()).Bind(url.Values{"text": {"new"}}, &p)

	require.True(t, errs.Valid())
	assert.Nil(t, p.GroupID)
	assert.Nil(t, p.Group)
}

func TestPostSchemaErrors(t *testing.T) {
	tests := []struct {
		name   string
		values url.Values
		field  string
		msg    string
	}{
		{"missing text", url.Values{}, "text", MsgRequired},
		{"blank text", url.Values{"text": {"   \n\t"}}, "text", MsgRequired},
		{"unknown group", url.Values{"text": {"x"}, "group": {"99"}}, "group", MsgInvalidChoice},
		{"non numeric group", url.Values{"text": {"x"}, "group": {"cats"}}, "group", MsgInvalidChoice},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p model.Post
			errs := PostSchema(groups()).Bind(tt.values, &p)
			assert.False(t, errs.Valid())
			assert.Equal(t, tt.msg, errs.First(tt.field))
		})
	}
}

func TestCommentSchema(t *testing.T) {
	var c model.Comment
	errs := CommentSchema().Bind(url.Values{"text": {"nice"}}, &c)
	require.True(t, errs.Valid())
	assert.Equal(t, "nice", c.Text)

	errs = CommentSchema().Bind(url.Values{"text": {""}}, &model.Comment{})
	assert.True(t, errs.Has("text"))
}

func TestSignupSchema(t *testing.T) {
	var in SignupInput
	errs := SignupSchema().Bind(url.Values{
		"username": {"leo.tolstoy"},
		"email":    {"leo@example.com"},
		"password": {"war-and-peace"},
	}, &in)
	require.True(t, errs.Valid(), errs)
	assert.Equal(t, "leo.tolstoy", in.Username)

	errs = SignupSchema().Bind(url.Values{
		"username": {"bad name!"},
		"email":    {"not-an-email"},
		"password": {"short"},
	}, &SignupInput{})
	assert.True(t, strings.HasPrefix(errs.First("username"), "Enter a valid username"))
	assert.Equal(t, "Enter a valid email address.", errs.First("email"))
	assert.Equal(t, "Ensure this value has at least 8 characters.", errs.First("password"))
}

func TestInitialAndNonField(t *testing.T) {
	values := url.Values{"text": {"draft"}, "extra": {"ignored"}}
	initial := PostSchema(nil).Initial(values)
	assert.Equal(t, map[string]string{"text": "draft", "group": ""}, initial)

	errs := Errors{}
	errs.Add(NonField, "invalid credentials")
	assert.Equal(t, "invalid credentials", errs.First(NonField))
	assert.Equal(t, "", errs.First("text"))
}

func TestSignupSchemaKeepsPasswordWhitespace(t *testing.T) {
	var in SignupInput
	errs := SignupSchema().Bind(url.Values{
		"username": {"  leo  "},
		"password": {"  war and peace  "},
	}, &in)
	require.True(t, errs.Valid(), errs)
	assert.Equal(t, "leo", in.Username)
	assert.Equal(t, "  war and peace  ", in.Password)
}
