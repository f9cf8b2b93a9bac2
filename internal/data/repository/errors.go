// Package repository holds the raw-SQL data access layer. The sentinel
// values below let higher layers distinguish failure scenarios without
// inspecting driver errors: ErrNotFound means the referenced row does not
// exist, ErrConflict means a write was refused because it would overlap an
// active booking.
package repository

import "errors"

var ErrNotFound = errors.New("not found")

var ErrConflict = errors.New("conflict")
