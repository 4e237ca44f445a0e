package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFullName(t *testing.T) {
	tests := []struct {
		name    string
		student Student
		want    string
	}{
		{name: "both names", student: Student{FirstName: "Asha", LastName: "Patel"}, want: "Asha Patel"},
		{name: "first only", student: Student{FirstName: "Asha"}, want: "Asha"},
		{name: "last only", student: Student{LastName: "Patel"}, want: "Patel"},
		{name: "both empty", student: Student{}, want: ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.student.FullName())
		})
	}
}

func TestValidGender(t *testing.T) {
	assert.True(t, ValidGender(GenderMale))
	assert.True(t, ValidGender(GenderFemale))
	assert.True(t, ValidGender(GenderOther))
	assert.False(t, ValidGender("X"))
	assert.False(t, ValidGender("m"))
	assert.False(t, ValidGender(""))
}
