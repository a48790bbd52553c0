package services

import (
	"blogapi/models"
)

// AuthorizationGuard decides whether an authenticated identity may mutate a
// resource. Ownership only: a valid token belonging to a different user is
// a permission failure, never an authentication failure.
type AuthorizationGuard struct{}

func (AuthorizationGuard) AuthorizeMutation(identity models.Identity, resourceOwnerID uint) error {
	if identity.UserID != resourceOwnerID {
		return models.ErrorForbidden{Message: "you are not the owner of this resource"}
	}
	return nil
}
