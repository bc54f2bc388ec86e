// Package sheet contains technical sheets and their assignment to customers.
package sheet

import (
	"errors"
	"strings"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

// ErrSheetIsNotConstructed is returned when a Sheet was not created through
// the NewSheet or RestoreSheet factory methods.
var ErrSheetIsNotConstructed = errors.New("Sheet must be created via NewSheet or RestoreSheet")

// Sheet is a technical document uploaded by staff and assignable to customers.
type Sheet struct {
	id         kernel.UUID
	name       string
	url        string
	uploadedBy kernel.UUID
	createdAt  time.Time

	isConstructed bool
}

// NewSheet creates a technical sheet.
func NewSheet(id kernel.UUID, name, url string, uploadedBy kernel.UUID, createdAt time.Time) (*Sheet, error) {
	s := &Sheet{
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		s.setID(id),
		s.setName(name),
		s.setURL(url),
		s.setUploadedBy(uploadedBy),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreSheet reconstructs a sheet from persistence.
func RestoreSheet(id kernel.UUID, name, url string, uploadedBy kernel.UUID, createdAt time.Time) (*Sheet, error) {
	return NewSheet(id, name, url, uploadedBy, createdAt)
}

// Validate ensures the Sheet was created through a factory method.
func (s *Sheet) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrSheetIsNotConstructed
	}
	return nil
}

// ID returns the sheet's unique identifier.
func (s *Sheet) ID() kernel.UUID { return s.id }

// Name returns the sheet's name.
func (s *Sheet) Name() string { return s.name }

// URL returns the sheet's document location.
func (s *Sheet) URL() string { return s.url }

// UploadedBy returns the identifier of the uploading staff user.
func (s *Sheet) UploadedBy() kernel.UUID { return s.uploadedBy }

// CreatedAt returns the upload timestamp.
func (s *Sheet) CreatedAt() time.Time { return s.createdAt }

// ApplyUpdate performs a partial update with coalesce semantics.
func (s *Sheet) ApplyUpdate(name, url *string) error {
	if name != nil {
		if err := s.setName(*name); err != nil {
			return err
		}
	}
	if url != nil {
		if err := s.setURL(*url); err != nil {
			return err
		}
	}
	return nil
}

func (s *Sheet) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Sheet) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	s.name = name
	return nil
}

func (s *Sheet) setURL(url string) error {
	if strings.TrimSpace(url) == "" {
		return errs.NewValueIsRequiredError("url")
	}
	s.url = url
	return nil
}

func (s *Sheet) setUploadedBy(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("uploadedBy", err)
	}
	s.uploadedBy = id
	return nil
}

// Assignment links a sheet to a customer. A sheet may be assigned to a
// customer at most once.
type Assignment struct {
	CustomerID kernel.UUID
	SheetID    kernel.UUID
	AssignedAt time.Time
}
