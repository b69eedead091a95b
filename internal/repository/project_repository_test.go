package repository

import (
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/haojie/dochub-api/internal/database"
	"github.com/haojie/dochub-api/internal/models"
	"github.com/haojie/dochub-api/internal/utils"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, database.Migrate(db))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	return db
}

func seedProjectWithViewers(t *testing.T, db *gorm.DB, viewerIDs ...uint64) *models.Project {
	t.Helper()

	project := &models.Project{Name: "demo", OwnerID: 1}
	require.NoError(t, db.Create(project).Error)

	for _, id := range viewerIDs {
		require.NoError(t, db.Create(&models.ProjectViewer{
			ProjectID: project.ID,
			UserID:    id,
		}).Error)
	}
	return project
}

func viewerRow(t *testing.T, db *gorm.DB, projectID, userID uint64) models.ProjectViewer {
	t.Helper()

	var row models.ProjectViewer
	err := db.Where("project_id = ? AND user_id = ?", projectID, userID).First(&row).Error
	require.NoError(t, err)
	return row
}

func TestReconcileViewers_AddRemoveKeep(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProjectRepository(db)

	project := seedProjectWithViewers(t, db, 1, 2, 3)

	before2 := viewerRow(t, db, project.ID, 2)
	before3 := viewerRow(t, db, project.ID, 3)

	time.Sleep(10 * time.Millisecond)
	require.NoError(t, repo.ReconcileViewers(project.ID, []uint64{2, 3, 4}))

	active, err := repo.ActiveViewerIDs(project.ID)
	require.NoError(t, err)
	require.Equal(t, []uint64{2, 3, 4}, active)

	// user 1 is soft-deleted, not gone
	removed := viewerRow(t, db, project.ID, 1)
	require.True(t, removed.IsDeleted)

	// users 2 and 3 were not rewritten
	require.True(t, before2.UpdateTime.Equal(viewerRow(t, db, project.ID, 2).UpdateTime))
	require.True(t, before3.UpdateTime.Equal(viewerRow(t, db, project.ID, 3).UpdateTime))
}

func TestReconcileViewers_Idempotent(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProjectRepository(db)

	project := seedProjectWithViewers(t, db, 1, 2, 3)
	desired := []uint64{2, 3, 4}

	require.NoError(t, repo.ReconcileViewers(project.ID, desired))

	var after []models.ProjectViewer
	require.NoError(t, db.Where("project_id = ?", project.ID).Order("user_id").Find(&after).Error)

	time.Sleep(10 * time.Millisecond)
	require.NoError(t, repo.ReconcileViewers(project.ID, desired))

	var again []models.ProjectViewer
	require.NoError(t, db.Where("project_id = ?", project.ID).Order("user_id").Find(&again).Error)

	require.Equal(t, len(after), len(again))
	for i := range after {
		require.Equal(t, after[i].UserID, again[i].UserID)
		require.Equal(t, after[i].IsDeleted, again[i].IsDeleted)
		// second call produced zero writes
		require.True(t, after[i].UpdateTime.Equal(again[i].UpdateTime))
	}
}

func TestReconcileViewers_RestorePreservesCreateTime(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProjectRepository(db)

	project := seedProjectWithViewers(t, db, 7)
	original := viewerRow(t, db, project.ID, 7)

	time.Sleep(10 * time.Millisecond)
	require.NoError(t, repo.ReconcileViewers(project.ID, nil))

	deleted := viewerRow(t, db, project.ID, 7)
	require.True(t, deleted.IsDeleted)
	require.True(t, deleted.UpdateTime.After(original.UpdateTime))

	time.Sleep(10 * time.Millisecond)
	require.NoError(t, repo.ReconcileViewers(project.ID, []uint64{7}))

	restored := viewerRow(t, db, project.ID, 7)
	require.False(t, restored.IsDeleted)
	require.True(t, restored.CreateTime.Equal(original.CreateTime))
	require.True(t, restored.UpdateTime.After(deleted.UpdateTime))

	// still a single row for the pair
	var count int64
	require.NoError(t, db.Model(&models.ProjectViewer{}).
		Where("project_id = ? AND user_id = ?", project.ID, 7).
		Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestReconcileViewers_EmptyDesiredRemovesAll(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProjectRepository(db)

	project := seedProjectWithViewers(t, db, 1, 2)

	require.NoError(t, repo.ReconcileViewers(project.ID, []uint64{}))

	active, err := repo.ActiveViewerIDs(project.ID)
	require.NoError(t, err)
	require.Empty(t, active)

	var count int64
	require.NoError(t, db.Model(&models.ProjectViewer{}).
		Where("project_id = ?", project.ID).
		Count(&count).Error)
	require.EqualValues(t, 2, count, "rows must be soft-deleted, not dropped")
}

func TestReconcileViewers_RollsBackOnFailure(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	now := time.Now()
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM `project_viewers`").
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "project_id", "user_id", "create_time", "update_time", "is_deleted"},
		).AddRow(1, 1, 7, now, now, false))
	mock.ExpectExec("UPDATE `project_viewers`").
		WillReturnError(errors.New("connection lost"))
	mock.ExpectRollback()

	repo := NewProjectRepository(db)
	err = repo.ReconcileViewers(1, nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "soft delete viewers")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestProjectList_FilterAndPagination(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProjectRepository(db)

	require.NoError(t, db.Create(&models.Project{Name: "alpha report", OwnerID: 1}).Error)
	require.NoError(t, db.Create(&models.Project{Name: "beta report", OwnerID: 1}).Error)
	require.NoError(t, db.Create(&models.Project{Name: "gamma", OwnerID: 2}).Error)

	deleted := &models.Project{Name: "deleted report", OwnerID: 1}
	deleted.IsDeleted = true
	require.NoError(t, db.Create(deleted).Error)

	params := utils.PaginationParams{PageNum: 1, PageSize: 10}

	projects, total, err := repo.List("report", params)
	require.NoError(t, err)
	require.EqualValues(t, 2, total)
	require.Len(t, projects, 2)

	projects, total, err = repo.List("", utils.PaginationParams{PageNum: 2, PageSize: 2, Offset: 2})
	require.NoError(t, err)
	require.EqualValues(t, 3, total)
	require.Len(t, projects, 1)
	require.Equal(t, "gamma", projects[0].Name)
}

func TestExistsByNameAndOwner(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProjectRepository(db)

	require.NoError(t, db.Create(&models.Project{Name: "mine", OwnerID: 1}).Error)

	taken, err := repo.ExistsByNameAndOwner("mine", 1)
	require.NoError(t, err)
	require.True(t, taken)

	taken, err = repo.ExistsByNameAndOwner("mine", 2)
	require.NoError(t, err)
	require.False(t, taken)

	taken, err = repo.ExistsByNameAndOwner("other", 1)
	require.NoError(t, err)
	require.False(t, taken)
}
