package provider_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smokifit/smokifit/internal/provider"
)

func TestClient_SearchExercises(t *testing.T) {
	var gotPath, gotKey string
	var gotQuery map[string][]string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("X-Api-Key")
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"name":"Barbell Squat","type":"strength","muscle":"quadriceps",
			 "equipment":"barbell","difficulty":"intermediate","instructions":"Squat down."}
		]`))
	}))
	defer srv.Close()

	c := provider.New(srv.URL, "test-key", srv.Client(), zerolog.Nop())
	records, err := c.SearchExercises(context.Background(), provider.ExerciseQuery{
		Muscle:     "quadriceps",
		Difficulty: "intermediate",
	})
	require.NoError(t, err)

	assert.Equal(t, "/v1/exercises", gotPath)
	assert.Equal(t, "test-key", gotKey)
	assert.Equal(t, []string{"quadriceps"}, gotQuery["muscle"])
	assert.Equal(t, []string{"intermediate"}, gotQuery["difficulty"])
	assert.NotContains(t, gotQuery, "name")

	require.Len(t, records, 1)
	assert.Equal(t, "Barbell Squat", records[0].Name)
	assert.Equal(t, "barbell", records[0].Equipment)
}

func TestClient_SearchNutrition(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/nutrition", r.URL.Path)
		assert.Equal(t, "peanut butter", r.URL.Query().Get("query"))
		w.Header().Set("Content-Type", "application/json")
		// serving_size_g and most numerics deliberately missing.
		_, _ = w.Write([]byte(`[{"name":"peanut butter","calories":589.4}]`))
	}))
	defer srv.Close()

	c := provider.New(srv.URL, "test-key", srv.Client(), zerolog.Nop())
	records, err := c.SearchNutrition(context.Background(), "peanut butter")
	require.NoError(t, err)

	require.Len(t, records, 1)
	assert.InDelta(t, 589.4, records[0].Calories, 1e-9)
	// Missing fields decode to zero values; normalization happens at
	// aggregation time.
	assert.Zero(t, records[0].ServingSizeG)
	assert.Zero(t, records[0].ProteinG)
	assert.InDelta(t, 100.0, records[0].EffectiveServingSizeG(), 1e-9)
}

func TestClient_SearchNutrition_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "bad key", http.StatusBadRequest)
	}))
	defer srv.Close()

	c := provider.New(srv.URL, "bad", srv.Client(), zerolog.Nop())
	_, err := c.SearchNutrition(context.Background(), "rice")
	require.ErrorIs(t, err, provider.ErrRequestFailed)
}

func TestClient_VerifyKey(t *testing.T) {
	t.Run("valid key returns the joke", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1/dadjokes", r.URL.Path)
			assert.Equal(t, "good-key", r.Header.Get("X-Api-Key"))
			_, _ = w.Write([]byte(`[{"joke":"I only know 25 letters of the alphabet. I don't know y."}]`))
		}))
		defer srv.Close()

		c := provider.New(srv.URL, "", srv.Client(), zerolog.Nop())
		ok, joke, err := c.VerifyKey(context.Background(), "good-key")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Contains(t, joke, "25 letters")
	})

	t.Run("rejected key is not an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "forbidden", http.StatusForbidden)
		}))
		defer srv.Close()

		c := provider.New(srv.URL, "", srv.Client(), zerolog.Nop())
		ok, joke, err := c.VerifyKey(context.Background(), "bad-key")
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Empty(t, joke)
	})
}
