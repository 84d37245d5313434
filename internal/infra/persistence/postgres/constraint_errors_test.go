package postgres

import (
	"testing"

	domainerrors "roster/internal/domain/errors"
	"roster/internal/errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestConstraintViolationDetection(t *testing.T) {
	pgErr := func(code string) error {
		return errors.Wrap(&pgconn.PgError{Code: code, Message: "constraint"}, "insert")
	}

	t.Run("unique violation from pgx", func(t *testing.T) {
		assert.True(t, isUniqueConstraintViolation(pgErr(pgerrcode.UniqueViolation)))
		assert.False(t, isUniqueConstraintViolation(pgErr(pgerrcode.ForeignKeyViolation)))
	})

	t.Run("unique violation translated by gorm", func(t *testing.T) {
		assert.True(t, isUniqueConstraintViolation(gorm.ErrDuplicatedKey))
	})

	t.Run("not null violation", func(t *testing.T) {
		assert.True(t, isNotNullConstraintViolation(pgErr(pgerrcode.NotNullViolation)))
		assert.True(t, isNotNullConstraintViolation(errors.New(`null value in column "email"`)))
		assert.False(t, isNotNullConstraintViolation(errors.New("connection refused")))
	})

	t.Run("check violation", func(t *testing.T) {
		assert.False(t, isCheckConstraintViolation(pgErr(pgerrcode.ForeignKeyViolation)))
		assert.True(t, isCheckConstraintViolation(pgErr(pgerrcode.CheckViolation)))
		assert.False(t, isCheckConstraintViolation(errors.New("other")))
	})
}

func TestMapUserWriteError(t *testing.T) {
	err := mapUserWriteError(&pgconn.PgError{Code: pgerrcode.UniqueViolation}, "create")
	assert.True(t, errors.Is(err, domainerrors.ErrEmailTaken))

	err = mapUserWriteError(errors.New("connection reset"), "update")
	var dbErr *domainerrors.DatabaseExecuteError
	assert.True(t, errors.As(err, &dbErr))
}
