package service

import (
	"context"
	"database/sql"
	"errors"

	"go.uber.org/zap"

	"github.com/noah-isme/teacher-eval-api/internal/models"
	"github.com/noah-isme/teacher-eval-api/internal/stats"
	appErrors "github.com/noah-isme/teacher-eval-api/pkg/errors"
)

// directoryStore is satisfied by repository.SQLDirectory and repository.StaticDirectory.
type directoryStore interface {
	ListTeachers(ctx context.Context) ([]models.Teacher, error)
	FindTeacher(ctx context.Context, id string) (*models.Teacher, error)
	ListClassNames(ctx context.Context) ([]string, error)
	ListClassTeachers(ctx context.Context, className string) ([]models.Teacher, error)
	ListAssignments(ctx context.Context) (models.TeachersByClass, error)
}

// DirectoryService resolves classes and their teachers. List reads never fail:
// a store error is logged and an empty result is returned.
type DirectoryService struct {
	store  directoryStore
	logger *zap.Logger
}

// NewDirectoryService constructs a DirectoryService.
func NewDirectoryService(store directoryStore, logger *zap.Logger) *DirectoryService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DirectoryService{store: store, logger: logger}
}

// Classes returns class names ordered by grade number, then name.
func (s *DirectoryService) Classes(ctx context.Context) []string {
	names, err := s.store.ListClassNames(ctx)
	if err != nil {
		s.logger.Error("fetch classes failed", zap.Error(err))
		return []string{}
	}
	stats.SortClassNames(names)
	return names
}

// TeachersByClass returns the teachers assigned to className.
func (s *DirectoryService) TeachersByClass(ctx context.Context, className string) []models.Teacher {
	teachers, err := s.store.ListClassTeachers(ctx, className)
	if err != nil {
		s.logger.Error("fetch class teachers failed", zap.String("class", className), zap.Error(err))
		return []models.Teacher{}
	}
	if teachers == nil {
		return []models.Teacher{}
	}
	return teachers
}

// AllTeachers returns the whole teacher directory.
func (s *DirectoryService) AllTeachers(ctx context.Context) []models.Teacher {
	teachers, err := s.store.ListTeachers(ctx)
	if err != nil {
		s.logger.Error("fetch teachers failed", zap.Error(err))
		return []models.Teacher{}
	}
	if teachers == nil {
		return []models.Teacher{}
	}
	return teachers
}

// TeachersByClassMap returns every class -> teachers association.
func (s *DirectoryService) TeachersByClassMap(ctx context.Context) models.TeachersByClass {
	byClass, err := s.store.ListAssignments(ctx)
	if err != nil {
		s.logger.Error("fetch class assignments failed", zap.Error(err))
		return models.TeachersByClass{}
	}
	if byClass == nil {
		return models.TeachersByClass{}
	}
	return byClass
}

// Teacher looks up a single teacher.
func (s *DirectoryService) Teacher(ctx context.Context, id string) (*models.Teacher, error) {
	if id == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "teacher id is required")
	}
	teacher, err := s.store.FindTeacher(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "teacher not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load teacher")
	}
	return teacher, nil
}
