package services

import (
	"testing"

	"github.com/TanzilIslam/dev-home-sub000/internal/models"
	"github.com/TanzilIslam/dev-home-sub000/internal/pagination"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodebaseService_ListScopedTwoHops(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCodebaseService(db, nil)
	userA := createUser(t, db, "a@example.com")
	userB := createUser(t, db, "b@example.com")
	mine := createProject(t, db, createClient(t, db, userA.ID, "Mine").ID, "P1")
	theirs := createProject(t, db, createClient(t, db, userB.ID, "Theirs").ID, "P2")
	createCodebase(t, db, mine.ID, "visible-api")
	createCodebase(t, db, theirs.ID, "hidden-api")

	items, meta, err := svc.List(userA.ID, pagination.ListQuery{Page: 1, PageSize: 10}, "", "")
	require.NoError(t, err)

	require.Len(t, items, 1)
	assert.Equal(t, "visible-api", items[0].Name)
	assert.Equal(t, "P1", items[0].ProjectName)
	assert.Equal(t, "Mine", items[0].ClientName)
	assert.Equal(t, int64(1), meta.Total)
}

func TestCodebaseService_DropdownProjection(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCodebaseService(db, nil)
	user := createUser(t, db, "a@example.com")
	project := createProject(t, db, createClient(t, db, user.ID, "C").ID, "P")
	createCodebase(t, db, project.ID, "zHook")
	createCodebase(t, db, project.ID, "aHook")

	options, _, err := svc.ListOptions(user.ID, pagination.ListQuery{Page: 1, PageSize: 10, All: true}, "", "")
	require.NoError(t, err)

	require.Len(t, options, 2)
	assert.Equal(t, "aHook", options[0].Name)
	assert.Equal(t, "zHook", options[1].Name)
	assert.NotEmpty(t, options[0].ID)
}

func TestCodebaseService_ReassignmentCascadesLinks(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCodebaseService(db, nil)
	user := createUser(t, db, "a@example.com")
	client := createClient(t, db, user.ID, "Acme")
	p1 := createProject(t, db, client.ID, "P1")
	p2 := createProject(t, db, client.ID, "P2")
	codebase := createCodebase(t, db, p1.ID, "api")
	link := createLink(t, db, user.ID, p1.ID, &codebase.ID, "repo")

	dto, err := svc.Update(user.ID, codebase.ID, models.CodebaseRequest{
		ProjectID: p2.ID,
		Name:      "api",
		Type:      models.CodebaseTypeBackend,
	})
	require.NoError(t, err)
	assert.Equal(t, p2.ID, dto.ProjectID)

	// The referencing link followed the codebase into the new project.
	var updated models.Link
	require.NoError(t, db.First(&updated, "id = ?", link.ID).Error)
	assert.Equal(t, p2.ID, updated.ProjectID)
}

func TestCodebaseService_ReassignmentDeniedLeavesLinksUntouched(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCodebaseService(db, nil)
	userA := createUser(t, db, "a@example.com")
	userB := createUser(t, db, "b@example.com")
	myProject := createProject(t, db, createClient(t, db, userA.ID, "Mine").ID, "MyP")
	theirProject := createProject(t, db, createClient(t, db, userB.ID, "Theirs").ID, "TheirP")
	theirCodebase := createCodebase(t, db, theirProject.ID, "their-api")
	theirLink := createLink(t, db, userB.ID, theirProject.ID, &theirCodebase.ID, "their repo")

	// The guard accepts A's own target project, but the codebase update
	// affects zero rows, so the whole transaction rolls back.
	_, err := svc.Update(userA.ID, theirCodebase.ID, models.CodebaseRequest{
		ProjectID: myProject.ID,
		Name:      "grabbed",
		Type:      models.CodebaseTypeBackend,
	})

	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "Codebase not found.", nf.Message)

	var cb models.Codebase
	require.NoError(t, db.First(&cb, "id = ?", theirCodebase.ID).Error)
	assert.Equal(t, theirProject.ID, cb.ProjectID)
	assert.Equal(t, "their-api", cb.Name)

	var l models.Link
	require.NoError(t, db.First(&l, "id = ?", theirLink.ID).Error)
	assert.Equal(t, theirProject.ID, l.ProjectID)
}

func TestCodebaseService_CreateRequiresOwnedProject(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCodebaseService(db, nil)
	userA := createUser(t, db, "a@example.com")
	userB := createUser(t, db, "b@example.com")
	theirs := createProject(t, db, createClient(t, db, userB.ID, "Theirs").ID, "P")

	_, err := svc.Create(userA.ID, models.CodebaseRequest{
		ProjectID: theirs.ID,
		Name:      "sneaky",
		Type:      models.CodebaseTypeBackend,
	})

	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "Project not found.", nf.Message)
}

func TestCodebaseService_SearchMatchesParentProjectName(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCodebaseService(db, nil)
	user := createUser(t, db, "a@example.com")
	project := createProject(t, db, createClient(t, db, user.ID, "C").ID, "Billing Platform")
	createCodebase(t, db, project.ID, "worker")

	items, _, err := svc.List(user.ID, pagination.ListQuery{Page: 1, PageSize: 10, Search: "billing"}, "", "")
	require.NoError(t, err)

	require.Len(t, items, 1)
	assert.Equal(t, "worker", items[0].Name)
}
