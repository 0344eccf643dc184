package handler

import (
	"strings"

	"clubrelay/internal/domain/entity"
)

// UserKeyQuery identifies the calling member, from the query string or a JSON body.
type UserKeyQuery struct {
	ExternalID string `query:"externalId" json:"externalId" validate:"omitempty,max=255"`
	Email      string `query:"email" json:"email" validate:"omitempty,max=320"`
}

func (q UserKeyQuery) key() entity.UserKey {
	return entity.UserKey{
		ExternalID: strings.TrimSpace(q.ExternalID),
		Email:      strings.TrimSpace(q.Email),
	}
}
