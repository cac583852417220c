package account

import "errors"

var (
	ErrOrganizationNotFound = errors.New("organization not found")
	ErrActivityNotFound     = errors.New("activity not found")
	ErrNotAnAgency          = errors.New("organization is not an agency")
)
