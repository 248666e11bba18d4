package database_test

import (
	"errors"
	"fmt"
	"testing"

	"camera-rental-service/internal/pkg/database"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestConstraintViolations(t *testing.T) {
	unique := &pq.Error{Code: "23505", Constraint: "payments_booking_id_key"}
	exclusion := &pq.Error{Code: "23P01", Constraint: "bookings_no_overlap"}
	fk := &pq.Error{Code: "23503", Constraint: "cameras_brand_id_fkey"}

	t.Run("unique", func(t *testing.T) {
		assert.True(t, database.IsUniqueViolation(unique))
		assert.True(t, database.IsUniqueViolation(unique, "payments_booking_id_key"))
		assert.False(t, database.IsUniqueViolation(unique, "users_email_key"))
		assert.True(t, database.IsUniqueViolation(fmt.Errorf("insert: %w", unique)))
	})

	t.Run("exclusion", func(t *testing.T) {
		assert.True(t, database.IsExclusionViolation(exclusion, "bookings_no_overlap"))
		assert.False(t, database.IsExclusionViolation(unique))
	})

	t.Run("foreign key", func(t *testing.T) {
		assert.True(t, database.IsForeignKeyViolation(fk))
		assert.False(t, database.IsForeignKeyViolation(errors.New("boom")))
	})
}
