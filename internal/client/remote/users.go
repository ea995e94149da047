package remote

import (
	"context"
	"net/url"

	"github.com/dmitrijs2005/jobkeeper/internal/client/models"
)

const usersPath = "/users"

// Users is the typed user-collection surface of the record store, covering
// the lookups the session store needs.
type Users interface {
	// FindByCredentials returns the users matching both username and
	// password. The equality check happens store-side; this client attaches
	// no security meaning to it.
	FindByCredentials(ctx context.Context, username, password string) ([]models.User, error)
	// FindByUsername returns the users matching the username, for
	// duplicate checks during registration.
	FindByUsername(ctx context.Context, username string) ([]models.User, error)
	// Create registers a new user record.
	Create(ctx context.Context, username, password string) (models.User, error)
}

// UsersAPI implements Users over a Client.
type UsersAPI struct {
	c *Client
}

func NewUsersAPI(c *Client) *UsersAPI {
	return &UsersAPI{c: c}
}

func (a *UsersAPI) FindByCredentials(ctx context.Context, username, password string) ([]models.User, error) {
	v := url.Values{}
	v.Set("username", username)
	v.Set("password", password)
	var users []models.User
	if err := a.c.List(ctx, usersPath, v, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (a *UsersAPI) FindByUsername(ctx context.Context, username string) ([]models.User, error) {
	v := url.Values{}
	v.Set("username", username)
	var users []models.User
	if err := a.c.List(ctx, usersPath, v, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (a *UsersAPI) Create(ctx context.Context, username, password string) (models.User, error) {
	body := map[string]string{"username": username, "password": password}
	var created models.User
	if err := a.c.Create(ctx, usersPath, body, &created); err != nil {
		return models.User{}, err
	}
	return created, nil
}
