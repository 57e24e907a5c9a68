package account

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/lexcard/lexcard-client/internal/graphql"
	"github.com/lexcard/lexcard-client/internal/storage"
)

const loginMutation = `
  mutation Login($input: LoginInput!) {
    login(input: $input) {
      access_token
      user {
        id
        displayName
        email
        roles
        verified
      }
    }
  }
`

const registerMutation = `
  mutation Register($input: RegisterInput!) {
    register(input: $input) {
      access_token
      user {
        id
        displayName
        email
        roles
        verified
      }
    }
  }
`

const profileQuery = `
  query GetProfile {
    me {
      id
      displayName
      email
      roles
      verified
    }
  }
`

const logoutMutation = `
  mutation Logout {
    logout
  }
`

const resetPasswordMutation = `
  mutation ResetPassword($input: ResetPasswordInput!) {
    resetPassword(input: $input)
  }
`

const changePasswordMutation = `
  mutation ChangePassword($newPassword: String!) {
    changePassword(newPassword: $newPassword)
  }
`

const changePasswordWithTokenMutation = `
  mutation ChangePasswordWithToken($token: String!, $newPassword: String!) {
    changePasswordWithToken(token: $token, newPassword: $newPassword)
  }
`

const verifyEmailMutation = `
  mutation VerifyEmail($token: String!) {
    verifyEmail(token: $token)
  }
`

// ErrNotLoggedIn reports that no usable token is stored for the
// session.
var ErrNotLoggedIn = errors.New("not logged in")

type Profile struct {
	ID          int      `json:"id"`
	DisplayName string   `json:"displayName"`
	Email       string   `json:"email"`
	Roles       []string `json:"roles"`
	Verified    bool     `json:"verified"`
}

type authPayload struct {
	AccessToken string  `json:"access_token"`
	User        Profile `json:"user"`
}

// Service owns the account flows. All credential checks happen on the
// backend; this layer's job is calling the mutations and keeping the
// access token in the right local store. Prefs is passed per call —
// storage routing belongs to the calling session, not the service.
type Service struct {
	gql *graphql.Client
}

func NewService(gql *graphql.Client) *Service {
	return &Service{gql: gql}
}

// Login authenticates against the backend and stores the access token
// durably or session-only per remember.
func (s *Service) Login(ctx context.Context, p storage.Prefs, email, password string, remember bool) (Profile, error) {
	var out struct {
		Login authPayload `json:"login"`
	}
	in := map[string]any{"email": email, "password": password}
	if err := s.gql.Do(ctx, loginMutation, map[string]any{"input": in}, &out); err != nil {
		return Profile{}, err
	}
	if err := p.SetRememberMe(remember); err != nil {
		return Profile{}, err
	}
	if err := p.SetItem(tokenKey, out.Login.AccessToken); err != nil {
		return Profile{}, err
	}
	return out.Login.User, nil
}

// Register creates the account and logs it straight in.
func (s *Service) Register(ctx context.Context, p storage.Prefs, displayName, email, password string) (Profile, error) {
	var out struct {
		Register authPayload `json:"register"`
	}
	in := map[string]any{"displayName": displayName, "email": email, "password": password}
	if err := s.gql.Do(ctx, registerMutation, map[string]any{"input": in}, &out); err != nil {
		return Profile{}, err
	}
	if err := p.SetItem(tokenKey, out.Register.AccessToken); err != nil {
		return Profile{}, err
	}
	return out.Register.User, nil
}

// Logout tells the backend, then clears local state either way — the
// user must always be able to log out of this client.
func (s *Service) Logout(ctx context.Context, p storage.Prefs) error {
	if err := s.gql.Do(ctx, logoutMutation, nil, nil); err != nil {
		logrus.WithError(err).Warn("backend logout failed, clearing local session anyway")
	}
	return p.ClearAll()
}

func (s *Service) Profile(ctx context.Context) (Profile, error) {
	var out struct {
		Me Profile `json:"me"`
	}
	err := s.gql.Do(ctx, profileQuery, nil, &out)
	return out.Me, err
}

// VerifySession checks that the stored token still works: locally for
// expiry first, then against the backend.
func (s *Service) VerifySession(ctx context.Context, p storage.Prefs) error {
	tok, ok := p.GetItem(tokenKey)
	if !ok {
		return ErrNotLoggedIn
	}
	if c, err := ParseClaims(tok); err == nil && c.Expired() {
		p.RemoveItem(tokenKey)
		return ErrNotLoggedIn
	}
	_, err := s.Profile(ctx)
	return err
}

func (s *Service) ResetPassword(ctx context.Context, email string) error {
	in := map[string]any{"email": email}
	return s.gql.Do(ctx, resetPasswordMutation, map[string]any{"input": in}, nil)
}

func (s *Service) ChangePassword(ctx context.Context, newPassword string) error {
	return s.gql.Do(ctx, changePasswordMutation, map[string]any{"newPassword": newPassword}, nil)
}

func (s *Service) ChangePasswordWithToken(ctx context.Context, token, newPassword string) error {
	vars := map[string]any{"token": token, "newPassword": newPassword}
	return s.gql.Do(ctx, changePasswordWithTokenMutation, vars, nil)
}

func (s *Service) VerifyEmail(ctx context.Context, token string) error {
	return s.gql.Do(ctx, verifyEmailMutation, map[string]any{"token": token}, nil)
}
