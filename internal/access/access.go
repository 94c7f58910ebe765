package access

import "github.com/GlebRadaev/fundraiser/internal/domain"

// Owner gates campaign mutations behind the identity recorded at creation.
type Owner struct {
	owner string
}

func NewOwner(owner string) Owner {
	return Owner{owner: owner}
}

func (o Owner) Owner() string {
	return o.owner
}

func (o Owner) Authorize(caller string) error {
	if caller == "" || caller != o.owner {
		return domain.ErrNotOwner
	}
	return nil
}
