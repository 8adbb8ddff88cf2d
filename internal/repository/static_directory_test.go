package repository

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticDirectory(t *testing.T) {
	dir := NewStaticDirectory()
	ctx := context.Background()

	classes, err := dir.ListClassNames(ctx)
	require.NoError(t, err)
	assert.Len(t, classes, 23)
	assert.Contains(t, classes, "7V")

	teachers, err := dir.ListClassTeachers(ctx, "9D")
	require.NoError(t, err)
	require.NotEmpty(t, teachers)
	for i := 1; i < len(teachers); i++ {
		assert.LessOrEqual(t, teachers[i-1].Name, teachers[i].Name)
	}

	none, err := dir.ListClassTeachers(ctx, "12Z")
	require.NoError(t, err)
	assert.Empty(t, none)

	byClass, err := dir.ListAssignments(ctx)
	require.NoError(t, err)
	assert.Len(t, byClass, len(classes))

	all, err := dir.ListTeachers(ctx)
	require.NoError(t, err)
	assert.Len(t, all, len(staticTeachers))

	found, err := dir.FindTeacher(ctx, all[0].ID)
	require.NoError(t, err)
	assert.Equal(t, all[0], *found)

	_, err = dir.FindTeacher(ctx, "nobody")
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestStaticDirectoryReturnsCopies(t *testing.T) {
	dir := NewStaticDirectory()
	classes, _ := dir.ListClassNames(context.Background())
	classes[0] = "mutated"

	again, _ := dir.ListClassNames(context.Background())
	assert.NotEqual(t, "mutated", again[0])
}
