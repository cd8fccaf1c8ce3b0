package request

import (
	"errors"
	"strconv"
	"strings"
)

var ErrInvalidVersion = errors.New("invalid order version")

type UpdateOrderStatusRequest struct {
	Status  string `json:"status" binding:"required"`
	Version int64  `json:"version"`
}

// ResolveExpectedVersion prefers the If-Match header over the body version.
// Both "3" and W/"3" forms are accepted. Zero means unconditional.
func (r UpdateOrderStatusRequest) ResolveExpectedVersion(ifMatch string) (int64, error) {
	tag := strings.TrimSpace(ifMatch)
	if tag == "" || tag == "*" {
		if r.Version < 0 {
			return 0, ErrInvalidVersion
		}
		return r.Version, nil
	}
	tag = strings.TrimPrefix(tag, "W/")
	tag = strings.Trim(tag, `"`)
	v, err := strconv.ParseInt(tag, 10, 64)
	if err != nil || v <= 0 {
		return 0, ErrInvalidVersion
	}
	return v, nil
}
