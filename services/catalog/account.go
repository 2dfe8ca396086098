package catalog

import (
	"context"
	"net/http"
)

const loginPath = "/api/auth/login"

type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResult struct {
	Token string `json:"token"`
	Role  string `json:"role"`
}

// Login exchanges credentials for a token and a role. The role string is
// whatever the catalog says it is; admission decisions happen elsewhere.
func (api *Api) Login(ctx context.Context, username string, password string) (*LoginResult, error) {
	out := &LoginResult{}
	err := api.do(ctx, http.MethodPost, loginPath, &Credentials{
		Username: username,
		Password: password,
	}, out)
	if err != nil {
		return nil, err
	}
	return out, nil
}
