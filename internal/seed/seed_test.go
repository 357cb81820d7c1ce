package seed

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/profissaovlog/profissaovlog-api/internal/infrastructure/memory"
	"github.com/profissaovlog/profissaovlog-api/pkg/helpers"
)

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func TestCategoriesSeedOnce(t *testing.T) {
	store := memory.NewStore()
	logger := quietLogger()

	require.NoError(t, Categories(store, logger))
	require.NoError(t, Categories(store, logger))

	all, err := store.Categories.GetAll()
	require.NoError(t, err)
	require.Len(t, all, 8)
	require.Equal(t, "technology", all[0].Name)
	require.Equal(t, "Tecnologia", all[0].DisplayName)
	require.Equal(t, "arts", all[7].Name)
}

func TestDemoDataIsIdempotent(t *testing.T) {
	store := memory.NewStore()
	logger := quietLogger()
	require.NoError(t, Categories(store, logger))

	require.NoError(t, DemoData(store, logger))
	require.NoError(t, DemoData(store, logger))

	users, err := store.Users.GetAll()
	require.NoError(t, err)
	require.Len(t, users, 4)

	videos, err := store.Videos.GetAll()
	require.NoError(t, err)
	require.Len(t, videos, 4)

	student, err := store.Users.GetByUsername("mariaest")
	require.NoError(t, err)
	require.NotNil(t, student)
	require.True(t, student.IsStudent())
	require.True(t, helpers.CompareHashAndPassword(student.Password, "password123"))

	purchases, err := store.Purchases.GetByUser(student.ID)
	require.NoError(t, err)
	require.Len(t, purchases, 2)

	ratings, err := store.Ratings.GetByUser(student.ID)
	require.NoError(t, err)
	require.Len(t, ratings, 2)
	// Every demo rating belongs to a purchased video.
	for _, r := range ratings {
		p, err := store.Purchases.GetByUserAndVideo(r.UserID, r.VideoID)
		require.NoError(t, err)
		require.NotNil(t, p)
	}
}

func TestDemoDataVideosResolve(t *testing.T) {
	store := memory.NewStore()
	logger := quietLogger()
	require.NoError(t, Categories(store, logger))
	require.NoError(t, DemoData(store, logger))

	videos, err := store.Videos.GetAll()
	require.NoError(t, err)
	for _, v := range videos {
		owner, err := store.Users.GetByID(v.UserID)
		require.NoError(t, err)
		require.NotNil(t, owner)
		require.True(t, owner.IsProfessional())

		cat, err := store.Categories.GetByID(v.CategoryID)
		require.NoError(t, err)
		require.NotNil(t, cat)
	}
}
