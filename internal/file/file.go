package file

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrOrganizationNotFound = errors.New("organization not found")

// File is the metadata record of an uploaded asset. It describes the asset's
// identity, owner and URL; the byte content lives on the filestore.
// ID, URL and OrganizationID are assigned once at creation and never change.
type File struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	CreatedAt      time.Time `json:"created_at"`
	URL            string    `json:"url"`
	OrganizationID uuid.UUID `json:"organization_id"`
}
