package repo

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"seller-desk/internal/core/database"
	"seller-desk/internal/domain"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.NewGorm(database.Opts{Driver: "sqlite", DSN: "file::memory:", LogLevel: "silent"})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func mustDepartment(t *testing.T, r *DepartmentRepo, name string) *domain.Department {
	t.Helper()
	d := &domain.Department{Name: name}
	require.NoError(t, r.Insert(context.Background(), d))
	require.NotNil(t, d.ID)
	return d
}

func mustSeller(t *testing.T, r *SellerRepo, name string, dep *domain.Department) *domain.Seller {
	t.Helper()
	s := &domain.Seller{Name: name, Department: dep}
	require.NoError(t, r.Insert(context.Background(), s))
	require.NotNil(t, s.ID)
	return s
}

func TestDepartmentRoundTrip(t *testing.T) {
	ctx := context.Background()
	deps := NewDepartmentRepo(newTestDB(t))

	d := mustDepartment(t, deps, "Sales")

	got, err := deps.FindByID(ctx, *d.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, *d.ID, *got.ID)
	require.Equal(t, "Sales", got.Name)

	d.Name = "Books"
	require.NoError(t, deps.Update(ctx, d))
	got, err = deps.FindByID(ctx, *d.ID)
	require.NoError(t, err)
	require.Equal(t, "Books", got.Name)
}

func TestDepartmentFindAllKeepsStorageOrder(t *testing.T) {
	deps := NewDepartmentRepo(newTestDB(t))
	for _, n := range []string{"Computers", "Electronics", "Fashion"} {
		mustDepartment(t, deps, n)
	}

	list, err := deps.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 3)
	require.Equal(t, "Computers", list[0].Name)
	require.Equal(t, "Fashion", list[2].Name)
}

func TestDepartmentMissingIDs(t *testing.T) {
	ctx := context.Background()
	deps := NewDepartmentRepo(newTestDB(t))

	got, err := deps.FindByID(ctx, 404)
	require.NoError(t, err)
	require.Nil(t, got)

	// 已知限制：不存在的 id 更新/删除都视为成功
	require.NoError(t, deps.DeleteByID(ctx, 404))
	missing := 404
	require.NoError(t, deps.Update(ctx, &domain.Department{ID: &missing, Name: "Ghost"}))

	err = deps.Update(ctx, &domain.Department{Name: "NoID"})
	require.True(t, domain.IsStorageError(err))
}

func TestDepartmentDeleteReferencedFails(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	deps, sellers := NewDepartmentRepo(db), NewSellerRepo(db)

	d := mustDepartment(t, deps, "Sales")
	mustSeller(t, sellers, "Bob", d)

	err := deps.DeleteByID(ctx, *d.ID)
	require.Error(t, err)
	require.True(t, domain.IsStorageError(err))

	still, err := deps.FindByID(ctx, *d.ID)
	require.NoError(t, err)
	require.NotNil(t, still)
}

func TestSellerRoundTrip(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	deps, sellers := NewDepartmentRepo(db), NewSellerRepo(db)

	d := mustDepartment(t, deps, "Electronics")
	birth := time.Date(1990, time.May, 14, 0, 0, 0, 0, time.UTC)
	salary := 3000.5
	s := &domain.Seller{
		Name:       "Maria Green",
		Email:      "maria@gmail.com",
		BirthDate:  &birth,
		BaseSalary: &salary,
		Department: d,
	}
	require.NoError(t, sellers.Insert(ctx, s))
	require.NotNil(t, s.ID)

	got, err := sellers.FindByID(ctx, *s.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, "Maria Green", got.Name)
	require.Equal(t, "maria@gmail.com", got.Email)
	require.NotNil(t, got.BirthDate)
	require.Equal(t, 1990, got.BirthDate.Year())
	require.Equal(t, time.May, got.BirthDate.Month())
	require.Equal(t, 14, got.BirthDate.Day())
	require.NotNil(t, got.BaseSalary)
	require.InDelta(t, 3000.5, *got.BaseSalary, 1e-9)
	require.Equal(t, *d.ID, *got.Department.ID)
	require.Equal(t, "Electronics", got.Department.Name)

	got.Email = ""
	got.BaseSalary = nil
	require.NoError(t, sellers.Update(ctx, got))
	again, err := sellers.FindByID(ctx, *s.ID)
	require.NoError(t, err)
	require.Empty(t, again.Email)
	require.Nil(t, again.BaseSalary)

	require.NoError(t, sellers.DeleteByID(ctx, *s.ID))
	gone, err := sellers.FindByID(ctx, *s.ID)
	require.NoError(t, err)
	require.Nil(t, gone)
}

func TestSellerJoinSharesDepartment(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	deps, sellers := NewDepartmentRepo(db), NewSellerRepo(db)

	d := mustDepartment(t, deps, "Books")
	other := mustDepartment(t, deps, "Fashion")
	mustSeller(t, sellers, "Anna", d)
	mustSeller(t, sellers, "Zed", other)
	mustSeller(t, sellers, "Carl", d)
	mustSeller(t, sellers, "Bob", d)

	all, err := sellers.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 4)
	require.Same(t, all[0].Department, all[2].Department)
	require.Same(t, all[0].Department, all[3].Department)
	require.NotSame(t, all[0].Department, all[1].Department)

	byDep, err := sellers.FindByDepartment(ctx, d)
	require.NoError(t, err)
	require.Len(t, byDep, 3)
	require.Same(t, byDep[0].Department, byDep[1].Department)
	require.Same(t, byDep[1].Department, byDep[2].Department)
}

func TestFindByDepartmentOrdersByNameIgnoringCase(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	deps, sellers := NewDepartmentRepo(db), NewSellerRepo(db)

	d := mustDepartment(t, deps, "Sales")
	for _, n := range []string{"Bob", "alice", "Carl"} {
		mustSeller(t, sellers, n, d)
	}

	list, err := sellers.FindByDepartment(ctx, d)
	require.NoError(t, err)
	names := make([]string, 0, len(list))
	for _, s := range list {
		names = append(names, s.Name)
	}
	require.Equal(t, []string{"alice", "Bob", "Carl"}, names)

	_, err = sellers.FindByDepartment(ctx, &domain.Department{Name: "unsaved"})
	require.True(t, domain.IsStorageError(err))
}

func TestSellerInsertFailureLeavesIDUnset(t *testing.T) {
	missing := 999
	s := &domain.Seller{Name: "Orphan", Department: &domain.Department{ID: &missing}}

	err := NewSellerRepo(newTestDB(t)).Insert(context.Background(), s)
	require.Error(t, err)
	require.True(t, domain.IsStorageError(err))
	require.Nil(t, s.ID)
}

func TestStorageFailureWrapsDriverError(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, db.Migrator().DropTable("seller"))

	_, err := NewSellerRepo(db).FindAll(context.Background())
	var se *domain.StorageError
	require.ErrorAs(t, err, &se)
	require.NotEmpty(t, se.Message)
	require.NotNil(t, se.Unwrap())
}
