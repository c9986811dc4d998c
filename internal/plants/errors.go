package plants

import (
	"errors"

	"github.com/dmitrijs2005/plantparent/internal/common"
)

var (
	ErrNotFound          = common.ErrNotFound
	ErrPlantLimitReached = common.ErrLimitReached

	// ErrPersist wraps any failure to write the plants document.
	ErrPersist = errors.New("failed to persist plants")

	ErrClosed = errors.New("plant store closed")

	// errUnchanged aborts a mutation that would not alter the document.
	errUnchanged = errors.New("unchanged")
)
