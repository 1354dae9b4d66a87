package types

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFlexBool(t *testing.T) {
	truthy := []interface{}{true, "on", "ON", " true ", "1", "yes", "checked", []string{"on", "off"}, 1.0, 2}
	for _, v := range truthy {
		assert.True(t, ParseFlexBool(v).Bool(), "%#v", v)
	}

	falsy := []interface{}{nil, false, "", "off", "false", "0", "no", []string{}, 0.0, 0, struct{}{}}
	for _, v := range falsy {
		assert.False(t, ParseFlexBool(v).Bool(), "%#v", v)
	}
}

func TestQueryError(t *testing.T) {
	cause := errors.New("connection refused")
	err := fmt.Errorf("wrapped: %w", &QueryError{Op: "fetchTrailById", Message: "Failed to fetch trail by ID.", Err: cause})

	assert.True(t, IsQueryError(err))
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "fetchTrailById")
	assert.False(t, IsQueryError(cause))

	assert.Equal(t, "Failed.", (&QueryError{Message: "Failed."}).Error())
}

func TestStoreErrors(t *testing.T) {
	err := fmt.Errorf("trail x does not exist: %w", ErrForeignKeyViolation)
	assert.ErrorIs(t, err, ErrForeignKeyViolation)
	assert.NotErrorIs(t, err, ErrConstraintViolation)

	custom := &CustomError{Code: 403, Message: "Forbidden", Type: "data.authorization.user"}
	assert.Equal(t, "403: Forbidden [type: data.authorization.user]", custom.Error())
}
