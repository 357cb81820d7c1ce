package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/profissaovlog/profissaovlog-api/internal/domain/entity"
	"github.com/profissaovlog/profissaovlog-api/internal/infrastructure/memory"
)

type catalogFixture struct {
	store *memory.Store
	svc   *CatalogService
}

func newCatalogFixture(t *testing.T) *catalogFixture {
	t.Helper()
	store := memory.NewStore()
	svc := NewCatalogService(store.Users, store.Categories, store.Videos, store.Ratings, nil, nil, "", nil, "")
	return &catalogFixture{store: store, svc: svc}
}

func (f *catalogFixture) addCategory(t *testing.T, name string) *entity.Category {
	t.Helper()
	c := &entity.Category{Name: name, DisplayName: name, Color: "#3A86FF"}
	require.NoError(t, f.store.Categories.Create(c))
	return c
}

func (f *catalogFixture) addProfessional(t *testing.T, username string) *entity.User {
	t.Helper()
	u := &entity.User{
		Email:    username + "@example.com",
		Username: username,
		Name:     username,
		UserType: entity.UserTypeProfessional,
	}
	require.NoError(t, f.store.Users.Create(u))
	return u
}

func (f *catalogFixture) addVideo(t *testing.T, userID, categoryID int, title string) *entity.Video {
	t.Helper()
	v := &entity.Video{
		Title:       title,
		Description: "desc",
		VideoURL:    "https://example.com/v",
		Price:       29.99,
		Duration:    600,
		UserID:      userID,
		CategoryID:  categoryID,
	}
	require.NoError(t, f.store.Videos.Create(v))
	return v
}

func (f *catalogFixture) addRating(t *testing.T, userID, videoID, stars int) {
	t.Helper()
	require.NoError(t, f.store.Ratings.Create(&entity.Rating{UserID: userID, VideoID: videoID, Rating: stars}))
}

func TestVideoWithDetailsAggregatesRatings(t *testing.T) {
	f := newCatalogFixture(t)
	cat := f.addCategory(t, "technology")
	pro := f.addProfessional(t, "ricardodev")
	v := f.addVideo(t, pro.ID, cat.ID, "daily life in tech")
	f.addRating(t, 100, v.ID, 5)
	f.addRating(t, 101, v.ID, 4)

	view, err := f.svc.VideoWithDetails(v.ID)
	require.NoError(t, err)
	require.Equal(t, v.ID, view.ID)
	require.Equal(t, cat.Name, view.Category.Name)
	require.Equal(t, pro.ID, view.Professional.ID)
	require.InDelta(t, 4.5, view.AverageRating, 1e-9)
	require.Equal(t, 2, view.RatingCount)
}

func TestVideoWithDetailsUnratedVideoHasZeroStats(t *testing.T) {
	f := newCatalogFixture(t)
	cat := f.addCategory(t, "health")
	pro := f.addProfessional(t, "carlosmed")
	v := f.addVideo(t, pro.ID, cat.ID, "hospital rounds")

	view, err := f.svc.VideoWithDetails(v.ID)
	require.NoError(t, err)
	require.Zero(t, view.AverageRating)
	require.Zero(t, view.RatingCount)
}

func TestVideoWithDetailsMissingVideo(t *testing.T) {
	f := newCatalogFixture(t)

	_, err := f.svc.VideoWithDetails(99)
	require.ErrorIs(t, err, ErrVideoNotFound)
}

func TestVideoListingDropsDanglingReferences(t *testing.T) {
	f := newCatalogFixture(t)
	cat := f.addCategory(t, "technology")
	pro := f.addProfessional(t, "ricardodev")
	good := f.addVideo(t, pro.ID, cat.ID, "resolvable")
	orphanCategory := f.addVideo(t, pro.ID, 999, "dangling category")
	orphanOwner := f.addVideo(t, 999, cat.ID, "dangling owner")

	views, err := f.svc.VideosWithDetails(nil)
	require.NoError(t, err)
	require.Len(t, views, 1)
	require.Equal(t, good.ID, views[0].ID)

	// Direct lookups of the dropped videos report not found.
	_, err = f.svc.VideoWithDetails(orphanCategory.ID)
	require.ErrorIs(t, err, ErrVideoNotFound)
	_, err = f.svc.VideoWithDetails(orphanOwner.ID)
	require.ErrorIs(t, err, ErrVideoNotFound)
}

func TestVideosWithDetailsCategoryFilter(t *testing.T) {
	f := newCatalogFixture(t)
	tech := f.addCategory(t, "technology")
	health := f.addCategory(t, "health")
	pro := f.addProfessional(t, "ricardodev")
	f.addVideo(t, pro.ID, tech.ID, "tech one")
	f.addVideo(t, pro.ID, health.ID, "health one")
	f.addVideo(t, pro.ID, tech.ID, "tech two")

	views, err := f.svc.VideosWithDetails(&tech.ID)
	require.NoError(t, err)
	require.Len(t, views, 2)
	require.Equal(t, "tech one", views[0].Title)
	require.Equal(t, "tech two", views[1].Title)

	unknown := 999
	views, err = f.svc.VideosWithDetails(&unknown)
	require.NoError(t, err)
	require.Empty(t, views)
}

func TestProfessionalRollupExcludesUnratedVideos(t *testing.T) {
	f := newCatalogFixture(t)
	cat := f.addCategory(t, "technology")
	pro := f.addProfessional(t, "ricardodev")
	rated := f.addVideo(t, pro.ID, cat.ID, "rated")
	f.addVideo(t, pro.ID, cat.ID, "unrated")
	f.addRating(t, 100, rated.ID, 4)

	view, err := f.svc.ProfessionalWithVideos(pro.ID)
	require.NoError(t, err)
	require.Len(t, view.Videos, 2)
	// Unrated videos stay out of the mean rather than dragging it to 2.0.
	require.InDelta(t, 4.0, view.AverageRating, 1e-9)
}

func TestProfessionalWithVideosRejectsNonProfessionals(t *testing.T) {
	f := newCatalogFixture(t)
	student := &entity.User{Email: "maria@example.com", Username: "mariaest", UserType: entity.UserTypeStudent}
	require.NoError(t, f.store.Users.Create(student))

	_, err := f.svc.ProfessionalWithVideos(student.ID)
	require.ErrorIs(t, err, ErrProfessionalNotFound)

	_, err = f.svc.ProfessionalWithVideos(999)
	require.ErrorIs(t, err, ErrProfessionalNotFound)
}

func TestAllProfessionalsWithVideosSkipsStudents(t *testing.T) {
	f := newCatalogFixture(t)
	cat := f.addCategory(t, "technology")
	a := f.addProfessional(t, "ricardodev")
	student := &entity.User{Email: "maria@example.com", Username: "mariaest", UserType: entity.UserTypeStudent}
	require.NoError(t, f.store.Users.Create(student))
	b := f.addProfessional(t, "anaeng")
	f.addVideo(t, a.ID, cat.ID, "one")

	views, err := f.svc.AllProfessionalsWithVideos()
	require.NoError(t, err)
	require.Len(t, views, 2)
	require.Equal(t, a.ID, views[0].ID)
	require.Equal(t, b.ID, views[1].ID)
	require.Empty(t, views[1].Videos)
}

func TestCreateVideoPersists(t *testing.T) {
	f := newCatalogFixture(t)
	cat := f.addCategory(t, "technology")
	pro := f.addProfessional(t, "ricardodev")

	v, err := f.svc.CreateVideo(context.Background(), CreateVideoInput{
		Title:       "new video",
		Description: "desc",
		VideoURL:    "https://example.com/v",
		Price:       19.99,
		Duration:    1320,
		UserID:      pro.ID,
		CategoryID:  cat.ID,
	})
	require.NoError(t, err)
	require.Equal(t, 1, v.ID)

	view, err := f.svc.VideoWithDetails(v.ID)
	require.NoError(t, err)
	require.Equal(t, "new video", view.Title)
}

func TestSearchVideosUnconfiguredReturnsEmpty(t *testing.T) {
	f := newCatalogFixture(t)

	hits, err := f.svc.SearchVideos(context.Background(), "tecnologia", 10)
	require.NoError(t, err)
	require.Empty(t, hits)
}
