package postgresql_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/corepay/payroll-backend-go/internal/domain/timeentry"
	"github.com/corepay/payroll-backend-go/internal/pkg/database"
	"github.com/corepay/payroll-backend-go/internal/repository/postgresql"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testDB *database.DB

func TestMain(m *testing.M) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn != "" {
		var err error
		testDB, err = database.NewPostgreSQLDB(dsn, database.PoolSettings{})
		if err != nil {
			panic("Failed to connect to test database: " + err.Error())
		}

		migrationsDir := filepath.Join("..", "..", "..", "..", "db", "migrations")
		if err := database.Migrate(context.Background(), testDB, migrationsDir); err != nil {
			panic("Failed to migrate test database: " + err.Error())
		}
	}

	os.Exit(m.Run())
}

func requireTestDB(t *testing.T) {
	t.Helper()
	if testDB == nil {
		t.Skip("TEST_DATABASE_URL not set")
	}
}

// Cleanup function to reset data after each test
func cleanupTestData(t *testing.T) {
	t.Helper()
	ctx := context.Background()

	_, err := testDB.Exec(ctx, "TRUNCATE TABLE time_entries, pay_slips, payrolls, employees, departments CASCADE")
	require.NoError(t, err)
}

// Helper to create an hourly employee for testing
func createTestEmployee(t *testing.T, ctx context.Context) string {
	t.Helper()

	var employeeID string
	err := testDB.QueryRow(ctx, `
		INSERT INTO employees (id, first_name, last_name, email, hire_date, status, employee_type, hourly_rate, overtime_multiplier)
		VALUES (gen_random_uuid(), 'Asha', 'Rao', 'asha@example.com', '2023-06-01', 'Active', 'hourly', 20, 1.5)
		RETURNING id
	`).Scan(&employeeID)
	require.NoError(t, err)
	return employeeID
}

// Helper to create a time entry for testing
func createTestEntry(t *testing.T, ctx context.Context, employeeID, entryDate, regular, overtime string, status timeentry.Status) string {
	t.Helper()

	var entryID string
	err := testDB.QueryRow(ctx, `
		INSERT INTO time_entries (id, employee_id, entry_date, regular_hours, overtime_hours, source, status)
		VALUES (gen_random_uuid(), $1, $2, $3, $4, 'MANUAL', $5)
		RETURNING id
	`, employeeID, entryDate, regular, overtime, status).Scan(&entryID)
	require.NoError(t, err)
	return entryID
}

// ===== TIME ENTRY REPOSITORY TESTS =====

func TestTimeEntryRepository_SumApprovedHours_OnlyApprovedEntriesCount(t *testing.T) {
	requireTestDB(t)
	defer cleanupTestData(t)

	ctx := context.Background()
	employeeID := createTestEmployee(t, ctx)
	repo := postgresql.NewTimeEntryRepository(testDB)

	createTestEntry(t, ctx, employeeID, "2025-01-06", "8", "1", timeentry.StatusApproved)
	createTestEntry(t, ctx, employeeID, "2025-01-07", "8", "0.5", timeentry.StatusApproved)
	createTestEntry(t, ctx, employeeID, "2025-01-08", "7", "2", timeentry.StatusPending)
	createTestEntry(t, ctx, employeeID, "2025-01-09", "6", "3", timeentry.StatusRejected)

	start, _ := time.Parse("2006-01-02", "2025-01-01")
	end, _ := time.Parse("2006-01-02", "2025-01-31")

	totals, err := repo.SumApprovedHours(ctx, employeeID, start, end)

	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("16").Equal(totals.RegularHours), "got %s", totals.RegularHours)
	assert.True(t, decimal.RequireFromString("1.5").Equal(totals.OvertimeHours), "got %s", totals.OvertimeHours)
}

func TestTimeEntryRepository_SumApprovedHours_RangeExcludesOutsideEntries(t *testing.T) {
	requireTestDB(t)
	defer cleanupTestData(t)

	ctx := context.Background()
	employeeID := createTestEmployee(t, ctx)
	repo := postgresql.NewTimeEntryRepository(testDB)

	createTestEntry(t, ctx, employeeID, "2025-01-15", "8", "0", timeentry.StatusApproved)
	createTestEntry(t, ctx, employeeID, "2024-12-31", "8", "0", timeentry.StatusApproved)
	createTestEntry(t, ctx, employeeID, "2025-02-01", "8", "0", timeentry.StatusApproved)

	start, _ := time.Parse("2006-01-02", "2025-01-01")
	end, _ := time.Parse("2006-01-02", "2025-01-31")

	totals, err := repo.SumApprovedHours(ctx, employeeID, start, end)

	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("8").Equal(totals.RegularHours), "got %s", totals.RegularHours)
}

func TestTimeEntryRepository_SumApprovedHours_NoEntriesYieldsZero(t *testing.T) {
	requireTestDB(t)
	defer cleanupTestData(t)

	ctx := context.Background()
	employeeID := createTestEmployee(t, ctx)
	repo := postgresql.NewTimeEntryRepository(testDB)

	start, _ := time.Parse("2006-01-02", "2025-01-01")
	end, _ := time.Parse("2006-01-02", "2025-01-31")

	totals, err := repo.SumApprovedHours(ctx, employeeID, start, end)

	require.NoError(t, err)
	assert.True(t, totals.RegularHours.IsZero())
	assert.True(t, totals.OvertimeHours.IsZero())
}

func TestTimeEntryRepository_UpdateStatus_ApproveStampsApproval(t *testing.T) {
	requireTestDB(t)
	defer cleanupTestData(t)

	ctx := context.Background()
	employeeID := createTestEmployee(t, ctx)
	repo := postgresql.NewTimeEntryRepository(testDB)

	entryID := createTestEntry(t, ctx, employeeID, "2025-01-06", "8", "0", timeentry.StatusPending)

	approver := "manager@example.com"
	approved, err := repo.UpdateStatus(ctx, entryID, timeentry.StatusApproved, &approver)

	require.NoError(t, err)
	assert.Equal(t, timeentry.StatusApproved, approved.Status)
	require.NotNil(t, approved.ApprovedAt)
	require.NotNil(t, approved.ApprovedBy)
	assert.Equal(t, approver, *approved.ApprovedBy)
}

func TestTimeEntryRepository_UpdateStatus_RejectClearsApproval(t *testing.T) {
	requireTestDB(t)
	defer cleanupTestData(t)

	ctx := context.Background()
	employeeID := createTestEmployee(t, ctx)
	repo := postgresql.NewTimeEntryRepository(testDB)

	entryID := createTestEntry(t, ctx, employeeID, "2025-01-06", "8", "0", timeentry.StatusPending)

	approver := "manager@example.com"
	_, err := repo.UpdateStatus(ctx, entryID, timeentry.StatusApproved, &approver)
	require.NoError(t, err)

	rejected, err := repo.UpdateStatus(ctx, entryID, timeentry.StatusRejected, nil)

	require.NoError(t, err)
	assert.Equal(t, timeentry.StatusRejected, rejected.Status)
	assert.Nil(t, rejected.ApprovedAt)
	assert.Nil(t, rejected.ApprovedBy)
}

func TestTimeEntryRepository_UpdateStatus_NotFound(t *testing.T) {
	requireTestDB(t)
	defer cleanupTestData(t)

	ctx := context.Background()
	repo := postgresql.NewTimeEntryRepository(testDB)

	_, err := repo.UpdateStatus(ctx, "00000000-0000-0000-0000-000000000000", timeentry.StatusApproved, nil)

	assert.ErrorIs(t, err, timeentry.ErrTimeEntryNotFound)
}
