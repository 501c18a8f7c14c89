package flatfile

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orris-inc/gymdesk/internal/domain/member"
	vo "github.com/orris-inc/gymdesk/internal/domain/member/valueobjects"
	"github.com/orris-inc/gymdesk/internal/shared/config"
	"github.com/orris-inc/gymdesk/internal/shared/logger"
)

const (
	goodRegular = "REGULAR|1|Sita|Ktm|98|s@x.com|Female|7-March-1999|1-January-2025|friend|0.00|true|3|15|basic,6500.00"
	goodPremium = "PREMIUM|2|Hari|Ltp|98|h@x.com|Male|1-May-1990|1-May-2024|ad|50000.00|false|0|0|Alex,true,0.00,50000.00"
	badNumber   = "REGULAR|3|Ram|Pkr|98|r@x.com|Male|1-May-1990|1-May-2024|ad|0.00|false|many|0|basic"
	duplicateID = "REGULAR|1|Other|Ktm|98|o@x.com|Male|1-May-1990|1-May-2024|ad|0.00|false|0|0|basic"
)

func newTestStore(t *testing.T, strict bool) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gym_members.txt")
	return NewStore(config.StoreConfig{Path: path, StrictLoad: strict}, logger.NewNopLogger())
}

func writeFile(t *testing.T, path string, lines ...string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644))
}

func TestStore_SaveLoad(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t, false)

	registry := member.NewRegistry()
	regular := newTestRegular(t, "1", "Deluxe")
	regular.Activate()
	regular.MarkAttendance()
	require.NoError(t, registry.Add(regular))
	require.NoError(t, registry.Add(newTestPremium(t, "5", vo.MoneyFromUnits(1200))))

	require.NoError(t, store.Save(ctx, registry))

	loaded, report, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, report.Loaded)
	assert.Empty(t, report.Skipped)
	require.Equal(t, 2, loaded.Len())

	got := loaded.List()
	assert.Equal(t, "1", got[0].ID())
	assert.Equal(t, vo.PlanDeluxe, got[0].Regular().Plan())
	assert.Equal(t, 1, got[0].Attendance())
	assert.Equal(t, int64(5), got[0].LoyaltyPoints())
	assert.Equal(t, "5", got[1].ID())
	assert.Equal(t, vo.MoneyFromUnits(1200), got[1].Premium().PaidAmount())

	assert.Equal(t, "6", loaded.NextID())
}

func TestStore_SaveReplacesFile(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t, false)
	writeFile(t, store.Path(), goodRegular, goodPremium)

	registry := member.NewRegistry()
	require.NoError(t, registry.Add(newTestRegular(t, "9", "")))
	require.NoError(t, store.Save(ctx, registry))

	data, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	content := string(data)
	assert.True(t, strings.HasPrefix(content, HeaderTitle+"\n"+HeaderFormat+"\n\n"))
	assert.Contains(t, content, "REGULAR|9|")
	assert.NotContains(t, content, "Hari")

	entries, err := os.ReadDir(filepath.Dir(store.Path()))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temporary files left behind")
}

func TestStore_SaveEmptyRegistry(t *testing.T) {
	store := newTestStore(t, false)
	require.NoError(t, store.Save(context.Background(), member.NewRegistry()))

	loaded, report, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Zero(t, loaded.Len())
	assert.Zero(t, report.Loaded)
}

func TestStore_SaveUnwritableLocation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "gym_members.txt")
	store := NewStore(config.StoreConfig{Path: path}, logger.NewNopLogger())

	err := store.Save(context.Background(), member.NewRegistry())
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestStore_LoadMissingFile(t *testing.T) {
	store := newTestStore(t, true)

	loaded, report, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Zero(t, loaded.Len())
	assert.Equal(t, store.Path(), report.Source)
}

func TestStore_LoadSkipsBadRecords(t *testing.T) {
	store := newTestStore(t, false)
	writeFile(t, store.Path(),
		HeaderTitle,
		HeaderFormat,
		"",
		goodRegular,
		badNumber,
		"garbage",
		duplicateID,
		goodPremium,
	)

	loaded, report, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, loaded.Len())
	assert.Equal(t, 2, report.Loaded)

	require.Len(t, report.Skipped, 3)
	assert.Equal(t, 5, report.Skipped[0].Line)
	assert.Equal(t, 6, report.Skipped[1].Line)
	assert.Equal(t, 7, report.Skipped[2].Line)
	assert.Contains(t, report.Skipped[2].Reason, "already exists")

	first, err := loaded.Find("1")
	require.NoError(t, err)
	assert.Equal(t, "Sita", first.Name(), "the first record with an id wins")
}

func TestStore_LoadStrict(t *testing.T) {
	store := newTestStore(t, true)
	writeFile(t, store.Path(), HeaderTitle, goodRegular, badNumber, goodPremium)

	loaded, report, err := store.Load(context.Background())
	require.Error(t, err)
	assert.Nil(t, loaded)
	assert.Nil(t, report)

	var lineErr *LineError
	require.True(t, errors.As(err, &lineErr))
	assert.Equal(t, 3, lineErr.Line)
	assert.ErrorIs(t, err, ErrMalformedRecord)
}

func TestStore_LoadStrictDuplicate(t *testing.T) {
	store := newTestStore(t, true)
	writeFile(t, store.Path(), goodRegular, duplicateID)

	_, _, err := store.Load(context.Background())
	assert.ErrorIs(t, err, member.ErrDuplicateID)
}

func TestStore_LoadWindowsLineEndings(t *testing.T) {
	store := newTestStore(t, true)
	content := "\ufeff" + HeaderTitle + "\r\n" + goodRegular + "\r\n" + goodPremium + "\r\n"
	require.NoError(t, os.WriteFile(store.Path(), []byte(content), 0o644))

	loaded, _, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, loaded.Len())
}

func TestStore_CanceledContext(t *testing.T) {
	store := newTestStore(t, false)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, store.Save(ctx, member.NewRegistry()), context.Canceled)
}
