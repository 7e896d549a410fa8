package mmu

import (
	"errors"
	"fmt"

	"github.com/thelolagemann/goboy/internal/types"
)

// ErrUnsupportedAccess is returned for accesses to a region of the
// address space that has no backing component attached, such as
// VRAM and OAM, or an I/O register nothing serves.
var ErrUnsupportedAccess = errors.New("unsupported bus access")

// AccessError records a failed bus access and the address that
// caused it.
type AccessError struct {
	Op      string
	Address uint16
	Region  types.Region
	Err     error
}

func (e *AccessError) Error() string {
	return fmt.Sprintf("mmu: %s 0x%04X (%s): %v", e.Op, e.Address, e.Region, e.Err)
}

func (e *AccessError) Unwrap() error {
	return e.Err
}
