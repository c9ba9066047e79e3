package services

import (
	"testing"

	"github.com/TanzilIslam/dev-home-sub000/internal/models"
	"github.com/TanzilIslam/dev-home-sub000/internal/pagination"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestClientService_ListPagination(t *testing.T) {
	db := setupTestDB(t)
	svc := NewClientService(db, nil)
	user := createUser(t, db, "a@example.com")
	seedClients(t, db, user.ID, 22)

	items, meta, err := svc.List(user.ID, pagination.ListQuery{Page: 3, PageSize: 10})
	require.NoError(t, err)

	assert.Len(t, items, 2)
	assert.Equal(t, int64(22), meta.Total)
	assert.Equal(t, 3, meta.TotalPages)
	assert.Equal(t, 3, meta.Page)
	assert.False(t, meta.HasNext)
	assert.True(t, meta.HasPrev)
}

func TestClientService_ListOutOfRangePage(t *testing.T) {
	db := setupTestDB(t)
	svc := NewClientService(db, nil)
	user := createUser(t, db, "a@example.com")
	seedClients(t, db, user.ID, 22)

	// The fetch runs with the raw offset and returns nothing; meta points
	// at the nearest valid page instead of erroring.
	items, meta, err := svc.List(user.ID, pagination.ListQuery{Page: 5, PageSize: 10})
	require.NoError(t, err)

	assert.Empty(t, items)
	assert.Equal(t, 3, meta.Page)
	assert.Equal(t, int64(22), meta.Total)
}

func TestClientService_ListAllMode(t *testing.T) {
	db := setupTestDB(t)
	svc := NewClientService(db, nil)
	user := createUser(t, db, "a@example.com")
	seedClients(t, db, user.ID, 15)

	items, meta, err := svc.List(user.ID, pagination.ListQuery{Page: 1, PageSize: 10, All: true})
	require.NoError(t, err)

	assert.Len(t, items, 15)
	assert.Equal(t, 1, meta.Page)
	assert.Equal(t, 15, meta.PageSize)
}

func TestClientService_ListSearchCaseInsensitive(t *testing.T) {
	db := setupTestDB(t)
	svc := NewClientService(db, nil)
	user := createUser(t, db, "a@example.com")
	createClient(t, db, user.ID, "Acme Corp")
	createClient(t, db, user.ID, "Globex")

	items, meta, err := svc.List(user.ID, pagination.ListQuery{Page: 1, PageSize: 10, Search: "ACME"})
	require.NoError(t, err)

	require.Len(t, items, 1)
	assert.Equal(t, "Acme Corp", items[0].Name)
	assert.Equal(t, int64(1), meta.Total)
}

func TestClientService_ListOptionsAlphabetical(t *testing.T) {
	db := setupTestDB(t)
	svc := NewClientService(db, nil)
	user := createUser(t, db, "a@example.com")
	createClient(t, db, user.ID, "Zeta")
	createClient(t, db, user.ID, "Alpha")
	createClient(t, db, user.ID, "Midway")

	options, _, err := svc.ListOptions(user.ID, pagination.ListQuery{Page: 1, PageSize: 10, All: true})
	require.NoError(t, err)

	require.Len(t, options, 3)
	assert.Equal(t, "Alpha", options[0].Name)
	assert.Equal(t, "Midway", options[1].Name)
	assert.Equal(t, "Zeta", options[2].Name)
}

func TestClientService_TenantIsolation(t *testing.T) {
	db := setupTestDB(t)
	svc := NewClientService(db, nil)
	userA := createUser(t, db, "a@example.com")
	userB := createUser(t, db, "b@example.com")
	theirs := createClient(t, db, userB.ID, "Their Client")

	items, meta, err := svc.List(userA.ID, pagination.ListQuery{Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.Equal(t, int64(0), meta.Total)

	_, err = svc.Get(userA.ID, theirs.ID)
	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "Client not found.", nf.Message)

	_, err = svc.Update(userA.ID, theirs.ID, models.ClientRequest{
		Name:           "Hijacked",
		EngagementType: models.EngagementProjectBased,
	})
	require.ErrorAs(t, err, &nf)

	err = svc.Delete(userA.ID, theirs.ID)
	require.ErrorAs(t, err, &nf)

	// The row is untouched.
	var current models.Client
	require.NoError(t, db.First(&current, "id = ?", theirs.ID).Error)
	assert.Equal(t, "Their Client", current.Name)
}

func TestClientService_ProjectBasedForcesNullWorkingFields(t *testing.T) {
	db := setupTestDB(t)
	svc := NewClientService(db, nil)
	user := createUser(t, db, "a@example.com")

	dto, err := svc.Create(user.ID, models.ClientRequest{
		Name:               "Acme",
		EngagementType:     models.EngagementProjectBased,
		WorkingDaysPerWeek: intPtr(5),
		WorkingHoursPerDay: intPtr(8),
	})
	require.NoError(t, err)

	assert.Nil(t, dto.WorkingDaysPerWeek)
	assert.Nil(t, dto.WorkingHoursPerDay)

	var stored models.Client
	require.NoError(t, db.First(&stored, "id = ?", dto.ID).Error)
	assert.Nil(t, stored.WorkingDaysPerWeek)
	assert.Nil(t, stored.WorkingHoursPerDay)
}

func TestClientService_TimeBasedRequiresWorkingFields(t *testing.T) {
	db := setupTestDB(t)
	svc := NewClientService(db, nil)
	user := createUser(t, db, "a@example.com")

	_, err := svc.Create(user.ID, models.ClientRequest{
		Name:           "Acme",
		EngagementType: models.EngagementTimeBased,
	})

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Fields, "workingDaysPerWeek")
	assert.Contains(t, ve.Fields, "workingHoursPerDay")
}

func TestClientService_UpdateIdempotent(t *testing.T) {
	db := setupTestDB(t)
	svc := NewClientService(db, nil)
	user := createUser(t, db, "a@example.com")
	client := createClient(t, db, user.ID, "Before")

	req := models.ClientRequest{
		Name:               "After",
		EngagementType:     models.EngagementTimeBased,
		WorkingDaysPerWeek: intPtr(4),
		WorkingHoursPerDay: intPtr(6),
	}

	first, err := svc.Update(user.ID, client.ID, req)
	require.NoError(t, err)
	second, err := svc.Update(user.ID, client.ID, req)
	require.NoError(t, err)

	// Same stored state and same response fields both times (timestamps
	// aside).
	assert.Equal(t, first.Name, second.Name)
	assert.Equal(t, first.EngagementType, second.EngagementType)
	assert.Equal(t, first.WorkingDaysPerWeek, second.WorkingDaysPerWeek)
	assert.Equal(t, first.WorkingHoursPerDay, second.WorkingHoursPerDay)
	assert.Equal(t, "After", second.Name)
	assert.Equal(t, 4, *second.WorkingDaysPerWeek)
}
