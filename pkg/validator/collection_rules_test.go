package validator_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/notifykit/pkg/validator"
)

func TestNotNilSlice(t *testing.T) {
	assert.False(t, validator.NotNilSlice[string]("Tags", nil).Passes())
	assert.True(t, validator.NotNilSlice("Tags", []string{}).Passes())
	assert.True(t, validator.NotNilSlice("Tags", []string{"a"}).Passes())
}

func TestNotEmptySlice(t *testing.T) {
	assert.False(t, validator.NotEmptySlice[int]("IDs", nil).Passes())
	assert.False(t, validator.NotEmptySlice("IDs", []int{}).Passes())
	assert.True(t, validator.NotEmptySlice("IDs", []int{1}).Passes())
}

func TestNilAndNotNil(t *testing.T) {
	n := 42

	assert.True(t, validator.NotNil("ReferrerID", &n).Passes())
	assert.False(t, validator.NotNil[int]("ReferrerID", nil).Passes())

	assert.True(t, validator.Nil[int]("DeletedBy", nil).Passes())
	assert.False(t, validator.Nil("DeletedBy", &n).Passes())
}

func TestNotZeroTime(t *testing.T) {
	assert.False(t, validator.NotZeroTime("BirthDate", time.Time{}).Passes())
	assert.True(t, validator.NotZeroTime("BirthDate", time.Now()).Passes())
}
