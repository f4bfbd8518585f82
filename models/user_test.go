package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserDisplayNameAndInitial(t *testing.T) {
	u := User{Name: "Ágata Silva", Username: "agata"}
	assert.Equal(t, "Ágata Silva", u.DisplayName())
	assert.Equal(t, "Á", u.Initial())

	u = User{Username: "bruno"}
	assert.Equal(t, "bruno", u.DisplayName())
	assert.Equal(t, "B", u.Initial())

	u = User{}
	assert.Equal(t, "?", u.Initial())
}

func TestCanManageRecordsFor(t *testing.T) {
	admin := User{ID: 1, IsAdmin: true}
	employee := User{ID: 2}

	assert.True(t, admin.CanManageRecordsFor(99))
	assert.True(t, employee.CanManageRecordsFor(2))
	assert.False(t, employee.CanManageRecordsFor(3))
}
