package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-conf-keeper/internal/store"
)

var errorStatusMap = map[error]int{
	ErrEmptyKey:      http.StatusBadRequest,
	ErrInvalidBody:   http.StatusBadRequest,
	ErrEntryNotFound: http.StatusNotFound,

	store.ErrEncodingValue:      http.StatusBadRequest,
	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrDecodingValue:      http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
