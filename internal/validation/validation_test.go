package validation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTags(t *testing.T) {
	type form struct {
		Start string `validate:"required,clock"`
		From  string `validate:"omitempty,date"`
	}

	v := New(time.Now)

	assert.NoError(t, v.Struct(form{Start: "8:30 AM", From: "9/1/2025"}))
	assert.NoError(t, v.Struct(form{Start: "12:05 pm"}))
	assert.Error(t, v.Struct(form{Start: "13:00 AM"}))
	assert.Error(t, v.Struct(form{Start: "8:30"}))
	assert.Error(t, v.Struct(form{}))
	assert.Error(t, v.Struct(form{Start: "8:30 AM", From: "qwerty"}))
}
