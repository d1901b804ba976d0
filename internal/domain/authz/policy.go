package authz

import "github.com/BruksfildServices01/stay-listings/internal/httperr"

// Principal is the authenticated identity attached to a request.
type Principal struct {
	UserID  string
	IsAdmin bool
}

// ===============================
// Place rules
// ===============================

// ResolvePlaceOwner decides who the created place belongs to. Ownership
// is forced to the caller; only admins may create on behalf of someone
// else by supplying an explicit owner id.
func ResolvePlaceOwner(p Principal, requestedOwnerID string) string {
	if p.IsAdmin && requestedOwnerID != "" {
		return requestedOwnerID
	}
	return p.UserID
}

func CanMutatePlace(p Principal, ownerID string) error {
	if p.IsAdmin || p.UserID == ownerID {
		return nil
	}
	return httperr.ErrForbidden("unauthorized_action", "only the owner may modify this place")
}

// ===============================
// Review rules
// ===============================

// ResolveReviewAuthor rejects non-admins trying to author a review as
// someone else. An empty requested id defaults to the caller.
func ResolveReviewAuthor(p Principal, requestedUserID string) (string, error) {
	if requestedUserID == "" {
		return p.UserID, nil
	}
	if !p.IsAdmin && requestedUserID != p.UserID {
		return "", httperr.ErrForbidden("unauthorized_action", "cannot create a review for another user")
	}
	return requestedUserID, nil
}

func CanMutateReview(p Principal, authorID string) error {
	if p.IsAdmin || p.UserID == authorID {
		return nil
	}
	return httperr.ErrForbidden("unauthorized_action", "only the author may modify this review")
}

// ===============================
// User rules
// ===============================

func CanUpdateUser(p Principal, targetUserID string) error {
	if p.IsAdmin || p.UserID == targetUserID {
		return nil
	}
	return httperr.ErrForbidden("unauthorized_action", "cannot modify another user")
}

// CanChangeCredentials gates email and password updates. Even on their
// own record, non-admins may only touch names.
func CanChangeCredentials(p Principal) error {
	if p.IsAdmin {
		return nil
	}
	return httperr.ErrForbidden("protected_fields", "you cannot modify email or password")
}

func CanDeleteUser(p Principal) error {
	if p.IsAdmin {
		return nil
	}
	return httperr.ErrForbidden("admin_only", "admin privileges required")
}

func CanManageAmenities(p Principal) error {
	if p.IsAdmin {
		return nil
	}
	return httperr.ErrForbidden("admin_only", "admin privileges required")
}
