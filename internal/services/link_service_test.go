package services

import (
	"testing"

	"github.com/TanzilIslam/dev-home-sub000/internal/models"
	"github.com/TanzilIslam/dev-home-sub000/internal/pagination"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinkService_CreateSetsOwnerFromSession(t *testing.T) {
	db := setupTestDB(t)
	svc := NewLinkService(db)
	user := createUser(t, db, "a@example.com")
	project := createProject(t, db, createClient(t, db, user.ID, "C").ID, "P")

	dto, err := svc.Create(user.ID, models.LinkRequest{
		ProjectID: project.ID,
		Title:     "Repo",
		URL:       "https://github.com/acme/api",
		Category:  models.LinkCategoryRepository,
	})
	require.NoError(t, err)

	var stored models.Link
	require.NoError(t, db.First(&stored, "id = ?", dto.ID).Error)
	assert.Equal(t, user.ID, stored.UserID)
}

func TestLinkService_CreateRejectsCrossProjectCodebase(t *testing.T) {
	db := setupTestDB(t)
	svc := NewLinkService(db)
	user := createUser(t, db, "a@example.com")
	client := createClient(t, db, user.ID, "C")
	p1 := createProject(t, db, client.ID, "P1")
	p2 := createProject(t, db, client.ID, "P2")
	cbInP2 := createCodebase(t, db, p2.ID, "api")

	// Both parents belong to the caller, but the codebase sits under a
	// different project than the link targets.
	_, err := svc.Create(user.ID, models.LinkRequest{
		ProjectID:  p1.ID,
		CodebaseID: &cbInP2.ID,
		Title:      "Repo",
		URL:        "https://example.com",
		Category:   models.LinkCategoryRepository,
	})

	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "Codebase not found for the selected project.", nf.Message)
}

func TestLinkService_CreateRequiresOwnedProject(t *testing.T) {
	db := setupTestDB(t)
	svc := NewLinkService(db)
	userA := createUser(t, db, "a@example.com")
	userB := createUser(t, db, "b@example.com")
	theirs := createProject(t, db, createClient(t, db, userB.ID, "Theirs").ID, "P")

	_, err := svc.Create(userA.ID, models.LinkRequest{
		ProjectID: theirs.ID,
		Title:     "Sneaky",
		URL:       "https://example.com",
		Category:  models.LinkCategoryOther,
	})

	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "Project not found.", nf.Message)
}

func TestLinkService_ListDenormalizedIsolation(t *testing.T) {
	db := setupTestDB(t)
	svc := NewLinkService(db)
	userA := createUser(t, db, "a@example.com")
	userB := createUser(t, db, "b@example.com")
	mine := createProject(t, db, createClient(t, db, userA.ID, "Mine").ID, "P1")
	theirs := createProject(t, db, createClient(t, db, userB.ID, "Theirs").ID, "P2")
	createLink(t, db, userA.ID, mine.ID, nil, "mine")
	createLink(t, db, userB.ID, theirs.ID, nil, "theirs")

	items, meta, err := svc.List(userA.ID, pagination.ListQuery{Page: 1, PageSize: 10}, "", "")
	require.NoError(t, err)

	require.Len(t, items, 1)
	assert.Equal(t, "mine", items[0].Title)
	assert.Equal(t, int64(1), meta.Total)
}

func TestLinkService_SearchMatchesProjectName(t *testing.T) {
	db := setupTestDB(t)
	svc := NewLinkService(db)
	user := createUser(t, db, "a@example.com")
	project := createProject(t, db, createClient(t, db, user.ID, "C").ID, "Billing Platform")
	createLink(t, db, user.ID, project.ID, nil, "dashboard")

	items, _, err := svc.List(user.ID, pagination.ListQuery{Page: 1, PageSize: 10, Search: "billing"}, "", "")
	require.NoError(t, err)

	require.Len(t, items, 1)
	assert.Equal(t, "dashboard", items[0].Title)
}

func TestLinkService_DropdownAliasesTitleToName(t *testing.T) {
	db := setupTestDB(t)
	svc := NewLinkService(db)
	user := createUser(t, db, "a@example.com")
	project := createProject(t, db, createClient(t, db, user.ID, "C").ID, "P")
	createLink(t, db, user.ID, project.ID, nil, "Zulu")
	createLink(t, db, user.ID, project.ID, nil, "Alpha")

	options, _, err := svc.ListOptions(user.ID, pagination.ListQuery{Page: 1, PageSize: 10, All: true}, "", "")
	require.NoError(t, err)

	require.Len(t, options, 2)
	assert.Equal(t, "Alpha", options[0].Name)
	assert.Equal(t, "Zulu", options[1].Name)
}

func TestLinkService_UpdateGuardsNewParents(t *testing.T) {
	db := setupTestDB(t)
	svc := NewLinkService(db)
	user := createUser(t, db, "a@example.com")
	client := createClient(t, db, user.ID, "C")
	p1 := createProject(t, db, client.ID, "P1")
	p2 := createProject(t, db, client.ID, "P2")
	cbInP1 := createCodebase(t, db, p1.ID, "api")
	link := createLink(t, db, user.ID, p1.ID, &cbInP1.ID, "repo")

	// Moving the link to P2 while keeping a P1 codebase must fail.
	_, err := svc.Update(user.ID, link.ID, models.LinkRequest{
		ProjectID:  p2.ID,
		CodebaseID: &cbInP1.ID,
		Title:      "repo",
		URL:        "https://example.com",
		Category:   models.LinkCategoryRepository,
	})

	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "Codebase not found for the selected project.", nf.Message)

	// Dropping the codebase reference makes the move legal.
	dto, err := svc.Update(user.ID, link.ID, models.LinkRequest{
		ProjectID: p2.ID,
		Title:     "repo",
		URL:       "https://example.com",
		Category:  models.LinkCategoryRepository,
	})
	require.NoError(t, err)
	assert.Equal(t, p2.ID, dto.ProjectID)
	assert.Nil(t, dto.CodebaseID)
}

func TestLinkService_FilterByCodebase(t *testing.T) {
	db := setupTestDB(t)
	svc := NewLinkService(db)
	user := createUser(t, db, "a@example.com")
	project := createProject(t, db, createClient(t, db, user.ID, "C").ID, "P")
	cb := createCodebase(t, db, project.ID, "api")
	createLink(t, db, user.ID, project.ID, &cb.ID, "tagged")
	createLink(t, db, user.ID, project.ID, nil, "untagged")

	items, meta, err := svc.List(user.ID, pagination.ListQuery{Page: 1, PageSize: 10}, "", cb.ID)
	require.NoError(t, err)

	require.Len(t, items, 1)
	assert.Equal(t, "tagged", items[0].Title)
	assert.Equal(t, int64(1), meta.Total)
}
