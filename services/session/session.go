package session

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// RoleAdmin is the role the catalog assigns to administrators.
const RoleAdmin = "ROLE_ADMIN"

const (
	tokenKey    = "token"
	roleKey     = "role"
	usernameKey = "username"
)

// User is the authenticated identity persisted across page loads. It is
// written once at login, cleared at logout and read everywhere else.
type User struct {
	Token    string
	Role     string
	Username string
}

func (u *User) HasToken() bool {
	return u != nil && u.Token != ""
}

func (u *User) IsAdmin() bool {
	return u.HasToken() && u.Role == RoleAdmin
}

func FromContext(c *gin.Context) *User {
	s := sessions.Default(c)
	u := &User{}
	if v, ok := s.Get(tokenKey).(string); ok {
		u.Token = v
	}
	if v, ok := s.Get(roleKey).(string); ok {
		u.Role = v
	}
	if v, ok := s.Get(usernameKey).(string); ok {
		u.Username = v
	}
	return u
}

func Set(c *gin.Context, u *User) error {
	s := sessions.Default(c)
	s.Set(tokenKey, u.Token)
	s.Set(roleKey, u.Role)
	s.Set(usernameKey, u.Username)
	return s.Save()
}

func Clear(c *gin.Context) error {
	s := sessions.Default(c)
	s.Delete(tokenKey)
	s.Delete(roleKey)
	s.Delete(usernameKey)
	return s.Save()
}
