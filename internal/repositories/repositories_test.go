package repositories

import (
	"testing"
	"time"

	"portfolio_backend/internal/models"
	"portfolio_backend/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func titles[T any](items []T, title func(T) string) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, title(it))
	}
	return out
}

func expTitle(e models.Experience) string { return e.Title }
func projTitle(p models.Project) string   { return p.Title }

func TestJobs_SortedByOrderThenStartDateDesc(t *testing.T) {
	db := testutil.OpenTestDB(t)
	repo := NewExperienceRepository()

	// вставка в "неправильном" порядке
	testutil.CreateJob(t, db, "old-second", 2, testutil.Date(2015, time.January, 1))
	testutil.CreateJob(t, db, "new-first", 1, testutil.Date(2023, time.January, 1))
	testutil.CreateJob(t, db, "older-first", 1, testutil.Date(2019, time.January, 1))
	hidden := testutil.CreateJob(t, db, "hidden", 0, testutil.Date(2024, time.January, 1))
	require.NoError(t, db.Model(hidden).Update("visible", false).Error)
	testutil.CreateSkill(t, db, "Go", 0)

	jobs, err := repo.Jobs(true).Find(db)
	require.NoError(t, err)
	assert.Equal(t, []string{"new-first", "older-first", "old-second"}, titles(jobs, expTitle))

	all, err := repo.Jobs(false).Find(db)
	require.NoError(t, err)
	assert.Len(t, all, 4)
	assert.Equal(t, "hidden", all[0].Title)
}

func TestSkills_SortedByOrderThenTitle(t *testing.T) {
	db := testutil.OpenTestDB(t)
	repo := NewExperienceRepository()

	testutil.CreateSkill(t, db, "Python", 1)
	testutil.CreateSkill(t, db, "Docker", 2)
	testutil.CreateSkill(t, db, "Go", 1)
	testutil.CreateJob(t, db, "job", 0, testutil.Date(2020, time.January, 1))

	skills, err := repo.Skills(true).Find(db)
	require.NoError(t, err)
	assert.Equal(t, []string{"Go", "Python", "Docker"}, titles(skills, expTitle))
}

func TestListQuery_IsRestartable(t *testing.T) {
	db := testutil.OpenTestDB(t)
	repo := NewExperienceRepository()

	q := repo.Skills(true)
	first, err := q.Find(db)
	require.NoError(t, err)
	assert.Empty(t, first)
	assert.NotNil(t, first)

	testutil.CreateSkill(t, db, "Rust", 0)

	second, err := q.Find(db)
	require.NoError(t, err)
	assert.Len(t, second, 1)

	// производный запрос не меняет исходный
	narrowed := q.Where("title = ?", "Nope")
	none, err := narrowed.Find(db)
	require.NoError(t, err)
	assert.Empty(t, none)

	again, err := q.Find(db)
	require.NoError(t, err)
	assert.Len(t, again, 1)
}

func TestProjects_OrderDescThenCreatedDesc(t *testing.T) {
	db := testutil.OpenTestDB(t)
	repo := NewProjectRepository()
	base := time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)

	testutil.CreateProject(t, db, "low-old", 1, base)
	testutil.CreateProject(t, db, "high", 5, base)
	testutil.CreateProject(t, db, "low-new", 1, base.Add(time.Hour))

	projects, err := repo.List(true).Find(db)
	require.NoError(t, err)
	assert.Equal(t, []string{"high", "low-new", "low-old"}, titles(projects, projTitle))
}

func TestProjects_PageBeyondLastReturnsLastPage(t *testing.T) {
	db := testutil.OpenTestDB(t)
	repo := NewProjectRepository()
	testutil.CreateProjects(t, db, 20)

	items, page, err := repo.List(true).Page(db, 9, 42)
	require.NoError(t, err)

	assert.Equal(t, 3, page.Number)
	assert.Equal(t, 3, page.TotalPages)
	assert.False(t, page.HasNext)
	assert.True(t, page.HasPrevious)
	assert.Equal(t, []string{"Project 19", "Project 20"}, titles(items, projTitle))
}

func TestProjects_PageEmpty(t *testing.T) {
	db := testutil.OpenTestDB(t)

	items, page, err := NewProjectRepository().List(true).Page(db, 9, 3)
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.Equal(t, 1, page.TotalPages)
	assert.Equal(t, 1, page.Number)
}

func TestFindByID_NotFound(t *testing.T) {
	db := testutil.OpenTestDB(t)
	repo := NewProjectRepository()

	_, err := repo.FindByID(db, "00000000-0000-0000-0000-000000000000")
	assert.ErrorIs(t, err, ErrProjectNotFound)

	p := testutil.CreateProject(t, db, "exists", 0, time.Now())
	p.TechStack = "Django, Python, Bootstrap"
	require.NoError(t, repo.Update(db, p))

	found, err := repo.FindByID(db, p.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Django", "Python", "Bootstrap"}, found.Tech())
}

func TestBulkSetVisible_OnlyTouchesSelected(t *testing.T) {
	db := testutil.OpenTestDB(t)
	repo := NewExperienceRepository()

	var selected, others []string
	for i := 0; i < 8; i++ {
		exp := testutil.CreateSkill(t, db, string(rune('A'+i)), i)
		if i < 5 {
			selected = append(selected, exp.ID)
		} else {
			others = append(others, exp.ID)
		}
	}

	updated, err := repo.BulkSetVisible(db, selected, false)
	require.NoError(t, err)
	assert.Equal(t, int64(5), updated)

	var hidden int64
	require.NoError(t, db.Model(&models.Experience{}).Where("id IN ? AND visible = ?", selected, false).Count(&hidden).Error)
	assert.Equal(t, int64(5), hidden)

	var stillVisible int64
	require.NoError(t, db.Model(&models.Experience{}).Where("id IN ? AND visible = ?", others, true).Count(&stillVisible).Error)
	assert.Equal(t, int64(3), stillVisible)
}

func TestBulkSetKind_NoValidation(t *testing.T) {
	db := testutil.OpenTestDB(t)
	repo := NewExperienceRepository()
	skill := testutil.CreateSkill(t, db, "Go", 0)

	updated, err := repo.BulkSetKind(db, []string{skill.ID}, models.ExperienceKindJob)
	require.NoError(t, err)
	assert.Equal(t, int64(1), updated)

	got, err := repo.FindByID(db, skill.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ExperienceKindJob, got.Kind)
	// у записи нет компании, хранилище это не проверяет
	assert.Error(t, got.Validate())
}

func TestBulkUpdate_EmptySelection(t *testing.T) {
	db := testutil.OpenTestDB(t)

	updated, err := NewContactRepository().BulkSetRead(db, nil, true)
	require.NoError(t, err)
	assert.Zero(t, updated)
}

func TestUpdate_KeepsZeroValues(t *testing.T) {
	db := testutil.OpenTestDB(t)
	repo := NewServiceRepository()
	svc := testutil.CreateService(t, db, "Consulting", 4)

	svc.Visible = false
	svc.Order = 0
	require.NoError(t, repo.Update(db, svc))

	got, err := repo.FindByID(db, svc.ID)
	require.NoError(t, err)
	assert.False(t, got.Visible)
	assert.Zero(t, got.Order)
}

func TestUpdateFields_And_Delete(t *testing.T) {
	db := testutil.OpenTestDB(t)
	repo := NewEducationRepository()
	edu := testutil.CreateEducation(t, db, "BSc", 0, testutil.Date(2016, time.September, 1))

	require.NoError(t, repo.UpdateFields(db, edu.ID, map[string]any{"display_order": 7}))
	got, err := repo.FindByID(db, edu.ID)
	require.NoError(t, err)
	assert.Equal(t, 7, got.Order)

	require.NoError(t, repo.Delete(db, edu.ID))
	assert.ErrorIs(t, repo.Delete(db, edu.ID), ErrEducationNotFound)
	assert.ErrorIs(t, repo.UpdateFields(db, edu.ID, map[string]any{"display_order": 1}), ErrEducationNotFound)
}

func TestContacts_NewestFirstAndSearch(t *testing.T) {
	db := testutil.OpenTestDB(t)
	repo := NewContactRepository()
	base := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)

	testutil.CreateContact(t, db, "Alice", base)
	bob := testutil.CreateContact(t, db, "Bob", base.Add(time.Minute))

	msgs, err := repo.Filtered(ContactFilter{}).Find(db)
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, "Bob", msgs[0].Name)

	found, err := repo.Filtered(ContactFilter{Search: "ALI"}).Find(db)
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Alice", found[0].Name)

	_, err = repo.BulkSetRead(db, []string{bob.ID}, true)
	require.NoError(t, err)
	unread, err := repo.CountUnread(db)
	require.NoError(t, err)
	assert.Equal(t, int64(1), unread)
}

func TestExperienceFilter(t *testing.T) {
	db := testutil.OpenTestDB(t)
	repo := NewExperienceRepository()

	testutil.CreateSkill(t, db, "Go", 0)
	testutil.CreateJob(t, db, "Engineer", 0, testutil.Date(2021, time.January, 1))

	skills, err := repo.Filtered(ExperienceFilter{Kind: models.ExperienceKindSkill}).Find(db)
	require.NoError(t, err)
	assert.Equal(t, []string{"Go"}, titles(skills, expTitle))

	byCompany, err := repo.Filtered(ExperienceFilter{Search: "company engineer"}).Find(db)
	require.NoError(t, err)
	assert.Equal(t, []string{"Engineer"}, titles(byCompany, expTitle))
}
